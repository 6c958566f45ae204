package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
)

// printJSON writes v to stdout as a single compact JSON line.
// This is the default output format and the one meant for scripting.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}

// newTable creates a table writer with standard styling.
func newTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	return t
}

// renderRows renders a header and rows as a styled table on stdout.
func renderRows(header table.Row, rows []table.Row) {
	t := newTable()
	t.AppendHeader(header)
	for _, row := range rows {
		t.AppendRow(row)
	}
	t.Render()
}

// emitObject prints a single result object: compact JSON by default,
// or a key/value table when --output table is set.
func emitObject(v map[string]any) error {
	if outputFormat != "table" {
		return printJSON(v)
	}

	t := newTable()
	t.AppendHeader(table.Row{"KEY", "VALUE"})
	for _, key := range sortedKeys(v) {
		t.AppendRow(table.Row{key, fmt.Sprintf("%v", v[key])})
	}
	t.Render()
	return nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	// Stable ordering for table output.
	sort.Strings(keys)
	return keys
}
