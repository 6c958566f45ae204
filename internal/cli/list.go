package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the registered devices and groups",
		Long: `Print the registry. The default JSON output is the registry
document itself, devices and groups in insertion order. With
--output table, devices and groups render as separate tables.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			reg, err := env.store.Load()
			if err != nil {
				return err
			}

			if outputFormat != "table" {
				data, err := json.MarshalIndent(reg, "", "  ")
				if err != nil {
					return fmt.Errorf("encoding registry: %w", err)
				}
				data = append(data, '\n')
				_, err = os.Stdout.Write(data)
				return err
			}

			deviceRows := make([]table.Row, 0, reg.Devices.Len())
			for pair := reg.Devices.Oldest(); pair != nil; pair = pair.Next() {
				deviceRows = append(deviceRows, table.Row{pair.Key, pair.Value.IP, pair.Value.Alias})
			}
			renderRows(table.Row{"HW ID", "IP", "ALIAS"}, deviceRows)

			groupRows := make([]table.Row, 0, reg.Groups.Len())
			for pair := reg.Groups.Oldest(); pair != nil; pair = pair.Next() {
				groupRows = append(groupRows, table.Row{pair.Key, strings.Join(pair.Value, ", ")})
			}
			renderRows(table.Row{"GROUP", "MEMBERS"}, groupRows)
			return nil
		},
	}
}
