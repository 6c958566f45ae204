package cli

import (
	"github.com/spf13/cobra"
)

func newRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <target> <new-alias>",
		Short: "Change a plug's alias",
		Long: `Set a new alias on the device the target resolves to. The target
must resolve to exactly one device. Group members referring to the old
alias are not rewritten; they go dangling and are skipped at
resolution time.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			target, newAlias := args[0], args[1]

			reg, err := env.store.Load()
			if err != nil {
				return err
			}
			dev, err := reg.RenameDevice(env.resolver, target, newAlias)
			if err != nil {
				return err
			}
			if err := env.store.Save(reg); err != nil {
				return err
			}

			env.recordHistory(ctx, "rename", target, map[string]any{
				"hw_id": dev.HardwareID,
				"alias": dev.Alias,
			})
			return emitObject(map[string]any{
				"ok":    true,
				"hw_id": dev.HardwareID,
				"alias": dev.Alias,
			})
		},
	}
}
