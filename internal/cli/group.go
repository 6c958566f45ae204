package cli

import (
	"github.com/spf13/cobra"
)

func newGroupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "group",
		Short: "Manage named device groups",
		Long: `Groups hold soft references (aliases or hardware ids) to registered
devices. Members that no longer resolve are skipped with a warning
when the group is used as a target.`,
	}
	cmd.AddCommand(
		newGroupCreateCmd(),
		newGroupDeleteCmd(),
		newGroupAddCmd(),
		newGroupRemoveCmd(),
	)
	return cmd
}

func newGroupCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Create an empty group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name := args[0]

			reg, err := env.store.Load()
			if err != nil {
				return err
			}
			if err := reg.CreateGroup(name); err != nil {
				return err
			}
			if err := env.store.Save(reg); err != nil {
				return err
			}

			env.recordHistory(ctx, "group-create", name, nil)
			return emitObject(map[string]any{"ok": true, "group": name})
		},
	}
}

func newGroupDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a group (devices are untouched)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name := args[0]

			reg, err := env.store.Load()
			if err != nil {
				return err
			}
			if err := reg.DeleteGroup(name); err != nil {
				return err
			}
			if err := env.store.Save(reg); err != nil {
				return err
			}

			env.recordHistory(ctx, "group-delete", name, nil)
			return emitObject(map[string]any{"ok": true, "group": name})
		},
	}
}

func newGroupAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name> <target>",
		Short: "Add the target's devices to a group",
		Long: `Resolve the target and add each resolved device to the group,
preferring its alias as the stored reference. Devices already present
are skipped.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name, target := args[0], args[1]

			reg, err := env.store.Load()
			if err != nil {
				return err
			}
			added, err := reg.AddGroupMembers(env.resolver, name, target)
			if err != nil {
				return err
			}
			if err := env.store.Save(reg); err != nil {
				return err
			}

			env.recordHistory(ctx, "group-add", target, map[string]any{
				"group": name,
				"added": len(added),
			})
			return emitObject(map[string]any{"ok": true, "group": name, "added": added})
		},
	}
}

func newGroupRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name> <target>",
		Short: "Remove the target's devices from a group",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name, target := args[0], args[1]

			reg, err := env.store.Load()
			if err != nil {
				return err
			}
			removed, err := reg.RemoveGroupMembers(env.resolver, name, target)
			if err != nil {
				return err
			}
			if err := env.store.Save(reg); err != nil {
				return err
			}

			env.recordHistory(ctx, "group-remove", target, map[string]any{
				"group":   name,
				"removed": len(removed),
			})
			return emitObject(map[string]any{"ok": true, "group": name, "removed": removed})
		},
	}
}
