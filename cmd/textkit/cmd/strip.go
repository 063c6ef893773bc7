package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/textkit/foundation/utils/stringx"
)

type stripOptions struct {
	chars     string
	accents   bool
	normalize bool
}

func newStripCmd(a *app) *cobra.Command {
	opts := &stripOptions{}

	stripCmd := &cobra.Command{
		Use:   "strip [text...]",
		Short: "Remove characters from both ends",
		Long: `Removes the code points in --chars from both ends of each input,
or Unicode whitespace when --chars is empty. --accents also removes
diacritical marks and --normalize collapses inner whitespace runs.

Examples:
  textkit strip "  padded  "
  textkit strip --chars "xy" xyxhixyy      # hi
  textkit strip --accents "  Crème brûlée " # Creme brulee`,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := readInputs(cmd, args)
			if err != nil {
				return err
			}

			results := make([]string, len(inputs))
			for i, input := range inputs {
				s := stringx.Strip(input, opts.chars)
				if opts.normalize {
					s = stringx.NormalizeSpace(s)
				}
				if opts.accents {
					s = stringx.StripAccents(s)
				}
				results[i] = s
			}
			return writeLines(cmd.OutOrStdout(), results)
		},
	}

	stripCmd.Flags().StringVarP(&opts.chars, "chars", "c", "", "code points to strip (default: whitespace)")
	stripCmd.Flags().BoolVar(&opts.accents, "accents", false, "remove diacritical marks")
	stripCmd.Flags().BoolVar(&opts.normalize, "normalize", false, "collapse whitespace runs to one space")

	return stripCmd
}
