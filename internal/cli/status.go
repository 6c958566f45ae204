package cli

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// statusResult is the per-device outcome of a status query. The relay
// fields are only present when the device answered.
type statusResult struct {
	HWID        string   `json:"hw_id"`
	Alias       string   `json:"alias,omitempty"`
	Online      bool     `json:"online"`
	Output      *bool    `json:"output,omitempty"`
	APower      *float64 `json:"apower,omitempty"`
	EnergyTotal *float64 `json:"aenergy_total,omitempty"`
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <target>",
		Short: "Report relay state and power draw for the target's devices",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			reg, err := env.store.Load()
			if err != nil {
				return err
			}
			devices, err := env.resolver.Resolve(reg, args[0])
			if err != nil {
				return err
			}

			tsdb := env.telemetry()
			if tsdb != nil {
				defer tsdb.Close()
			}

			results := make([]statusResult, 0, len(devices))
			for _, dev := range devices {
				res := statusResult{HWID: dev.HardwareID, Alias: dev.Alias}
				st, err := env.gateway.SwitchStatus(ctx, dev.IP)
				if err != nil {
					env.log.Warn("status query failed",
						"hw_id", dev.HardwareID, "ip", dev.IP, "error", err)
				} else {
					res.Online = true
					res.Output = &st.Output
					res.APower = &st.APower
					res.EnergyTotal = &st.EnergyTotal

					if tsdb != nil {
						tsdb.WriteEnergyMetric(dev.HardwareID, dev.Alias, st.APower, st.EnergyTotal)
						tsdb.WriteSwitchState(dev.HardwareID, dev.Alias, st.Output)
					}
				}
				results = append(results, res)
			}

			return emitStatusResults(results)
		},
	}
}

func emitStatusResults(results []statusResult) error {
	if outputFormat != "table" {
		return printJSON(results)
	}

	rows := make([]table.Row, 0, len(results))
	for _, res := range results {
		if !res.Online {
			rows = append(rows, table.Row{res.HWID, res.Alias, "offline", "", ""})
			continue
		}
		state := "off"
		if *res.Output {
			state = "on"
		}
		rows = append(rows, table.Row{
			res.HWID, res.Alias, state,
			fmt.Sprintf("%.1f W", *res.APower),
			fmt.Sprintf("%.3f kWh", *res.EnergyTotal),
		})
	}
	renderRows(table.Row{"HW ID", "ALIAS", "STATE", "POWER", "ENERGY"}, rows)
	return nil
}
