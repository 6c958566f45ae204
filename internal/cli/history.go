package cli

import (
	"encoding/json"
	"errors"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/nerrad567/plugctl/internal/history"
	"github.com/nerrad567/plugctl/internal/infrastructure/database"
)

func newHistoryCmd() *cobra.Command {
	var (
		limit        int
		offset       int
		actionFilter string
		targetFilter string
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recently executed commands, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !env.cfg.History.Enabled {
				return errors.New("command history is disabled in configuration")
			}

			ctx := cmd.Context()
			db, err := database.Open(database.Config{
				Path:        env.cfg.History.Path,
				WALMode:     env.cfg.History.WALMode,
				BusyTimeout: env.cfg.History.BusyTimeout,
			})
			if err != nil {
				return err
			}
			defer db.Close()

			repo := history.NewSQLiteRepository(db.DB)
			if err := repo.EnsureSchema(ctx); err != nil {
				return err
			}

			result, err := repo.List(ctx, history.Filter{
				Action: actionFilter,
				Target: targetFilter,
				Limit:  limit,
				Offset: offset,
			})
			if err != nil {
				return err
			}

			return emitHistory(result)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "maximum entries to return (default 50, max 200)")
	cmd.Flags().IntVar(&offset, "offset", 0, "pagination offset")
	cmd.Flags().StringVar(&actionFilter, "action", "", "only entries for this action (on, off, toggle, led, add, ...)")
	cmd.Flags().StringVar(&targetFilter, "target", "", "only entries for this target")
	return cmd
}

func emitHistory(result *history.ListResult) error {
	if outputFormat != "table" {
		return printJSON(result)
	}

	rows := make([]table.Row, 0, len(result.Entries))
	for _, entry := range result.Entries {
		details := ""
		if entry.Details != nil {
			if b, err := json.Marshal(entry.Details); err == nil {
				details = string(b)
			}
		}
		rows = append(rows, table.Row{
			entry.CreatedAt.Format("2006-01-02 15:04:05"),
			entry.Action,
			entry.Target,
			details,
		})
	}
	renderRows(table.Row{"TIME", "ACTION", "TARGET", "DETAILS"}, rows)
	return nil
}
