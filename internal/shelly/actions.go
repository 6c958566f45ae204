package shelly

import (
	"context"
	"fmt"
)

// RPC paths for the Gen 2/3 local API.
const (
	pathDeviceInfo   = "/rpc/Shelly.GetDeviceInfo"
	pathSwitchSet    = "/rpc/Switch.Set"
	pathSwitchToggle = "/rpc/Switch.Toggle"
	pathSwitchStatus = "/rpc/Switch.GetStatus"
	pathLEDConfig    = "/rpc/PLUGS_UI.SetConfig"
)

// Status is the subset of Switch.GetStatus plugctl reports: relay state,
// instantaneous power draw, and cumulative energy.
type Status struct {
	Output      bool    `json:"output"`
	APower      float64 `json:"apower"`
	EnergyTotal float64 `json:"aenergy_total"`
}

// LEDMode is a Plug S LED ring mode.
type LEDMode string

// Valid LED ring modes.
const (
	LEDModeSwitch LEDMode = "switch" // LED follows relay state
	LEDModePower  LEDMode = "power"  // LED indicates power draw
	LEDModeOff    LEDMode = "off"
)

// ParseLEDMode validates a user-supplied LED mode string.
func ParseLEDMode(s string) (LEDMode, error) {
	switch LEDMode(s) {
	case LEDModeSwitch, LEDModePower, LEDModeOff:
		return LEDMode(s), nil
	default:
		return "", fmt.Errorf("invalid LED mode %q, must be one of switch, power, off", s)
	}
}

// DeviceID queries a device for its hardware id.
//
// The id is assigned by the device itself and is the registry's strong
// key; a response without one fails with ErrBadResponse.
func (c *Client) DeviceID(ctx context.Context, ip string) (string, error) {
	payload, err := c.Get(ctx, ip, pathDeviceInfo)
	if err != nil {
		return "", err
	}
	id, ok := payload["id"].(string)
	if !ok || id == "" {
		return "", fmt.Errorf("%w: device info from %s missing id field", ErrBadResponse, ip)
	}
	return id, nil
}

// SwitchSet drives the relay to the requested state.
func (c *Client) SwitchSet(ctx context.Context, ip string, on bool) error {
	_, err := c.Get(ctx, ip, fmt.Sprintf("%s?id=0&on=%t", pathSwitchSet, on))
	return err
}

// SwitchToggle inverts the relay state.
func (c *Client) SwitchToggle(ctx context.Context, ip string) error {
	_, err := c.Get(ctx, ip, pathSwitchToggle+"?id=0")
	return err
}

// SwitchStatus reads the relay status. Fields absent from the device
// response are left at their zero values.
func (c *Client) SwitchStatus(ctx context.Context, ip string) (*Status, error) {
	payload, err := c.Get(ctx, ip, pathSwitchStatus+"?id=0")
	if err != nil {
		return nil, err
	}

	status := &Status{}
	if v, ok := payload["output"].(bool); ok {
		status.Output = v
	}
	if v, ok := payload["apower"].(float64); ok {
		status.APower = v
	}
	if aenergy, ok := payload["aenergy"].(map[string]any); ok {
		if v, ok := aenergy["total"].(float64); ok {
			status.EnergyTotal = v
		}
	}
	return status, nil
}

// SetLEDMode configures the LED ring.
func (c *Client) SetLEDMode(ctx context.Context, ip string, mode LEDMode) error {
	body := map[string]any{
		"config": map[string]any{
			"leds": map[string]any{"mode": string(mode)},
		},
	}
	_, err := c.Post(ctx, ip, pathLEDConfig, body)
	return err
}
