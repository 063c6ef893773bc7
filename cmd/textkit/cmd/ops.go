package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/msto63/textkit/internal/pipeline"
)

func newOpsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List the operations available to batch jobs",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			th := newTheme(cmd.OutOrStdout(), a.cfg.Output.Color)

			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(th.Border).
				Headers("Operation", "Description", "Parameters").
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == table.HeaderRow {
						return th.Header
					}
					return th.Cell
				})

			for _, name := range pipeline.Operations() {
				op, _ := pipeline.Lookup(name)
				t.Row(op.Name, op.Description, describeParams(op))
			}

			fmt.Fprintln(cmd.OutOrStdout(), t.String())
			return nil
		},
	}
}

func describeParams(op *pipeline.Operation) string {
	names := op.ParameterNames()
	if len(names) == 0 {
		return "-"
	}
	parts := make([]string, len(names))
	for i, name := range names {
		def := op.Parameters[name]
		parts[i] = fmt.Sprintf("%s (%s)", name, def.Type)
		if def.Required {
			parts[i] += " required"
		}
	}
	return strings.Join(parts, "\n")
}
