package cli

import (
	"github.com/spf13/cobra"
)

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <target>",
		Short: "Remove a single plug from the registry",
		Long: `Remove the device the target resolves to. The target must resolve
to exactly one device. Its hardware id and alias are also purged from
every group.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			target := args[0]

			reg, err := env.store.Load()
			if err != nil {
				return err
			}
			hwID, err := reg.RemoveDevice(env.resolver, target)
			if err != nil {
				return err
			}
			if err := env.store.Save(reg); err != nil {
				return err
			}

			env.recordHistory(ctx, "remove", target, map[string]any{"hw_id": hwID})
			return emitObject(map[string]any{"ok": true, "hw_id": hwID})
		},
	}
}
