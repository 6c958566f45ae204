package influxdb

import (
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

// WriteEnergyMetric writes an energy consumption measurement.
//
// Called on every status read when telemetry is enabled, with the
// instantaneous power and lifetime energy counter the plug reports.
// The write is non-blocking; data is batched and sent asynchronously.
//
// Parameters:
//   - deviceID: Hardware identifier of the plug
//   - alias: Human-readable name, empty when none is set
//   - powerWatts: Current power draw in watts
//   - energyKWh: Cumulative energy consumption in kWh (0 if unknown)
func (c *Client) WriteEnergyMetric(deviceID string, alias string, powerWatts float64, energyKWh float64) {
	if !c.IsConnected() {
		return
	}

	tags := map[string]string{
		"device_id": deviceID,
	}
	if alias != "" {
		tags["alias"] = alias
	}

	fields := map[string]interface{}{
		"power_watts": powerWatts,
	}
	if energyKWh > 0 {
		fields["energy_kwh"] = energyKWh
	}

	point := write.NewPoint("energy", tags, fields, time.Now())

	c.writeAPI.WritePoint(point)
}

// WriteSwitchState records a relay state observation.
//
// The state is stored as an integer field (1 on, 0 off) so queries can
// aggregate duty cycles without string parsing.
func (c *Client) WriteSwitchState(deviceID string, alias string, on bool) {
	if !c.IsConnected() {
		return
	}

	tags := map[string]string{
		"device_id": deviceID,
	}
	if alias != "" {
		tags["alias"] = alias
	}

	state := 0
	if on {
		state = 1
	}

	point := write.NewPoint(
		"switch_state",
		tags,
		map[string]interface{}{
			"on": state,
		},
		time.Now(),
	)

	c.writeAPI.WritePoint(point)
}
