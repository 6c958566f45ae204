package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <ip> [alias]",
		Short: "Register a plug by IP address",
		Long: `Register the plug at the given IP, optionally with an alias.

The device is queried for its hardware id first; if it cannot be
reached the registry is left untouched. Registering a hardware id that
already exists updates its IP and alias in place.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ip := args[0]
			alias := ""
			if len(args) == 2 {
				alias = args[1]
			}

			hwID, err := env.gateway.DeviceID(ctx, ip)
			if err != nil {
				return fmt.Errorf("querying device at %s: %w", ip, err)
			}

			reg, err := env.store.Load()
			if err != nil {
				return err
			}
			dev := reg.Register(hwID, ip, alias)
			if err := env.store.Save(reg); err != nil {
				return err
			}

			env.recordHistory(ctx, "add", ip, map[string]any{
				"hw_id": dev.HardwareID,
				"alias": dev.Alias,
			})
			return emitObject(map[string]any{
				"ok":    true,
				"hw_id": dev.HardwareID,
				"ip":    dev.IP,
				"alias": dev.Alias,
			})
		},
	}
}
