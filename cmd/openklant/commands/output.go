package commands

import (
	"encoding/json"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/open-inwoner/openklant/internal/constants"
)

// tableView is the table rendering of a value.
type tableView struct {
	header []string
	rows   [][]string
}

// render writes value in the configured output format. table is only
// evaluated for table output.
func (a *app) render(cmd *cobra.Command, value any, table func() tableView) error {
	out := cmd.OutOrStdout()

	switch format := a.v.GetString(keyOutput); format {
	case constants.FormatJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")

		return encoder.Encode(value)
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(2)
		defer func() { _ = encoder.Close() }()

		return encoder.Encode(value)
	case constants.FormatTable, "":
		view := table()

		writer := tablewriter.NewWriter(out)
		writer.Header(toAny(view.header)...)

		for _, row := range view.rows {
			_ = writer.Append(row)
		}

		err := writer.Render()
		if err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	default:
		return fmt.Errorf("%w: %s", constants.ErrInvalidOutput, format)
	}
}

// propertyTable renders label/value pairs as a two column table.
func propertyTable(pairs ...string) tableView {
	view := tableView{header: []string{"Property", "Value"}}

	for i := 0; i+1 < len(pairs); i += 2 {
		view.rows = append(view.rows, []string{pairs[i], pairs[i+1]})
	}

	return view
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, value := range values {
		out[i] = value
	}

	return out
}

func orNA(value string) string {
	if value == "" {
		return constants.NotAvailable
	}

	return value
}

func boolString(value bool) string {
	if value {
		return constants.BooleanTrue
	}

	return constants.BooleanFalse
}
