package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/msto63/textkit/foundation/utils/stringx"
)

const explainLabelWidth = 8

func newExplainCmd(a *app) *cobra.Command {
	opts := &abbreviateOptions{}

	explainCmd := &cobra.Command{
		Use:   "explain [text...]",
		Short: "Show how an abbreviation was produced",
		Long: `Abbreviates each input like the abbreviate command and shows which
rule produced the result and which code points [start, end) of the
input stayed visible.

Examples:
  textkit explain --width 10 --offset 5 abcdefghijklmno`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runExplain(cmd, args, opts)
		},
	}

	explainCmd.Flags().IntVarP(&opts.width, "width", "w", 0, "maximum width in code points (default from config)")
	explainCmd.Flags().StringVarP(&opts.marker, "marker", "m", "", "marker for elided content (default from config)")
	explainCmd.Flags().IntVarP(&opts.offset, "offset", "o", 0, "keep the content at this code point visible")

	return explainCmd
}

func (a *app) runExplain(cmd *cobra.Command, args []string, opts *abbreviateOptions) error {
	width := a.cfg.Abbreviate.Width
	if cmd.Flags().Changed("width") {
		width = opts.width
	}
	marker := a.cfg.Abbreviate.Marker
	if cmd.Flags().Changed("marker") {
		marker = opts.marker
	}
	offset := a.cfg.Abbreviate.Offset
	if cmd.Flags().Changed("offset") {
		offset = opts.offset
	}

	inputs, err := readInputs(cmd, args)
	if err != nil {
		return err
	}

	explanations := make([]stringx.Abbreviation, 0, len(inputs))
	for _, input := range inputs {
		ex, err := stringx.Explain(input, marker, offset, width)
		if err != nil {
			return err
		}
		explanations = append(explanations, ex)
	}

	out := cmd.OutOrStdout()
	th := newTheme(out, a.cfg.Output.Color)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(th.Border).
		Headers("#", "Input", "Result", "Branch", "Window", "Width").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return th.Header
			}
			return th.Cell
		})
	for i, ex := range explanations {
		t.Row(
			fmt.Sprint(i+1),
			inputs[i],
			ex.Result,
			ex.Branch.String(),
			fmt.Sprintf("[%d, %d)", ex.Start, ex.End),
			fmt.Sprintf("%d/%d", stringx.Length(ex.Result), width),
		)
	}
	fmt.Fprintln(out, t.String())

	for i, ex := range explanations {
		fmt.Fprintln(out)
		fmt.Fprint(out, windowDiagram(th, inputs[i], ex))
	}
	return nil
}

// windowDiagram draws the input with a caret line under the visible window.
// Offsets are terminal columns so wide characters line up.
func windowDiagram(th theme, input string, ex stringx.Abbreviation) string {
	text := stringx.NewText(input)
	before, _ := text.Substring(0, ex.Start)
	window, _ := text.Substring(ex.Start, ex.End)

	var b strings.Builder
	b.WriteString(th.Muted.Render(stringx.FillDisplay("input", explainLabelWidth)))
	b.WriteString(input)
	b.WriteString("\n")
	b.WriteString(th.Muted.Render(stringx.FillDisplay("window", explainLabelWidth)))
	b.WriteString(strings.Repeat(" ", stringx.DisplayWidth(before)))
	b.WriteString(th.Window.Render(strings.Repeat("^", stringx.DisplayWidth(window))))
	b.WriteString("\n")
	b.WriteString(th.Muted.Render(stringx.FillDisplay("result", explainLabelWidth)))
	b.WriteString(ex.Result)
	b.WriteString("\n")
	return b.String()
}
