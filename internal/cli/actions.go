package cli

import (
	"context"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/nerrad567/plugctl/internal/shelly"
)

// actionResult is the per-device outcome of a relay or LED command.
type actionResult struct {
	HWID    string `json:"hw_id"`
	Alias   string `json:"alias,omitempty"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// runDeviceAction resolves the target and applies fn to each device
// sequentially, in resolution order. One device failing never stops
// the rest; failures surface in the per-device records and the exit
// code.
func runDeviceAction(cmd *cobra.Command, action, target string, fn func(ctx context.Context, ip string) error) error {
	ctx := cmd.Context()

	reg, err := env.store.Load()
	if err != nil {
		return err
	}
	devices, err := env.resolver.Resolve(reg, target)
	if err != nil {
		return err
	}

	results := make([]actionResult, 0, len(devices))
	failures := 0
	for _, dev := range devices {
		res := actionResult{HWID: dev.HardwareID, Alias: dev.Alias, Success: true}
		if err := fn(ctx, dev.IP); err != nil {
			res.Success = false
			res.Error = err.Error()
			failures++
			env.log.Warn("device command failed",
				"action", action, "hw_id", dev.HardwareID, "ip", dev.IP, "error", err)
		}
		results = append(results, res)
	}

	env.recordHistory(ctx, action, target, map[string]any{
		"devices":  len(devices),
		"failures": failures,
	})

	if err := emitActionResults(results); err != nil {
		return err
	}
	if failures > 0 {
		return fmt.Errorf("%d of %d devices failed", failures, len(devices))
	}
	return nil
}

func emitActionResults(results []actionResult) error {
	if outputFormat != "table" {
		return printJSON(results)
	}

	rows := make([]table.Row, 0, len(results))
	for _, res := range results {
		status := "ok"
		if !res.Success {
			status = res.Error
		}
		rows = append(rows, table.Row{res.HWID, res.Alias, status})
	}
	renderRows(table.Row{"HW ID", "ALIAS", "RESULT"}, rows)
	return nil
}

func newOnCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "on <target>",
		Short: "Switch the target's relay on",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeviceAction(cmd, "on", args[0], func(ctx context.Context, ip string) error {
				return env.gateway.SwitchSet(ctx, ip, true)
			})
		},
	}
}

func newOffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "off <target>",
		Short: "Switch the target's relay off",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeviceAction(cmd, "off", args[0], func(ctx context.Context, ip string) error {
				return env.gateway.SwitchSet(ctx, ip, false)
			})
		},
	}
}

func newToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <target>",
		Short: "Toggle the target's relay",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeviceAction(cmd, "toggle", args[0], func(ctx context.Context, ip string) error {
				return env.gateway.SwitchToggle(ctx, ip)
			})
		},
	}
}

func newLedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "led <target> <mode>",
		Short: "Set the LED ring mode (switch, power, off)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := shelly.ParseLEDMode(args[1])
			if err != nil {
				return err
			}
			return runDeviceAction(cmd, "led", args[0], func(ctx context.Context, ip string) error {
				return env.gateway.SetLEDMode(ctx, ip, mode)
			})
		},
	}
}
