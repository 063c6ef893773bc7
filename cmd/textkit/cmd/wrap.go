package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/textkit/foundation/utils/stringx"
)

type wrapOptions struct {
	width     int
	newline   string
	longWords bool
}

func newWrapCmd(a *app) *cobra.Command {
	opts := &wrapOptions{}

	wrapCmd := &cobra.Command{
		Use:   "wrap [text...]",
		Short: "Word wrap text at a width",
		Long: `Wraps each input at --width code points, breaking on spaces. Words
longer than the width stay whole unless --long-words is set. Escape
sequences \n and \t in --newline are interpreted.

Examples:
  textkit wrap --width 20 "Here is one line of text that is too long"
  textkit wrap --width 4 --long-words abcdefghij
  textkit wrap --width 10 --newline "<br/>" "some html text"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			width := a.cfg.Wrap.Width
			if cmd.Flags().Changed("width") {
				width = opts.width
			}
			newline := a.cfg.Wrap.Newline
			if cmd.Flags().Changed("newline") {
				newline = unescape(opts.newline)
			}
			longWords := a.cfg.Wrap.LongWords
			if cmd.Flags().Changed("long-words") {
				longWords = opts.longWords
			}

			inputs, err := readInputs(cmd, args)
			if err != nil {
				return err
			}

			results := make([]string, len(inputs))
			for i, input := range inputs {
				results[i] = stringx.Wrap(input, width, newline, longWords)
			}
			return writeLines(cmd.OutOrStdout(), results)
		},
	}

	wrapCmd.Flags().IntVarP(&opts.width, "width", "w", 0, "line width in code points (default from config: 80)")
	wrapCmd.Flags().StringVar(&opts.newline, "newline", "", `line separator (default from config: "\n")`)
	wrapCmd.Flags().BoolVar(&opts.longWords, "long-words", false, "break words longer than the width")

	return wrapCmd
}

var escapes = strings.NewReplacer(`\n`, "\n", `\t`, "\t", `\r`, "\r")

func unescape(s string) string {
	return escapes.Replace(s)
}
