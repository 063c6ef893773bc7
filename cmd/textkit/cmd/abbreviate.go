package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/textkit/foundation/utils/stringx"
)

type abbreviateOptions struct {
	width  int
	marker string
	offset int
	middle bool
}

func newAbbreviateCmd(a *app) *cobra.Command {
	opts := &abbreviateOptions{}

	abbreviateCmd := &cobra.Command{
		Use:     "abbreviate [text...]",
		Aliases: []string{"abbr"},
		Short:   "Shorten text to a maximum width",
		Long: `Shortens each input to at most --width code points and marks the
elided part with --marker. With --offset the content at that code point
stays visible, which may elide text on both sides. With --middle the
middle of the input is replaced instead and the result has exactly
--width code points.

An empty marker cuts the input without marking it.

Examples:
  textkit abbreviate --width 10 "The quick brown fox"
  textkit abbreviate --width 10 --offset 12 "abcdefghijklmnopqrstuvwxyz"
  textkit abbreviate --width 9 --middle --marker "…" very-long-file-name.txt
  cat titles.txt | textkit abbreviate --width 40`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runAbbreviate(cmd, args, opts)
		},
	}

	abbreviateCmd.Flags().IntVarP(&opts.width, "width", "w", 0, "maximum width in code points (default from config: 40)")
	abbreviateCmd.Flags().StringVarP(&opts.marker, "marker", "m", "", `marker for elided content (default from config: "...")`)
	abbreviateCmd.Flags().IntVarP(&opts.offset, "offset", "o", 0, "keep the content at this code point visible")
	abbreviateCmd.Flags().BoolVar(&opts.middle, "middle", false, "replace the middle instead of the end")

	return abbreviateCmd
}

func (a *app) runAbbreviate(cmd *cobra.Command, args []string, opts *abbreviateOptions) error {
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

	results := make([]string, 0, len(inputs))
	for _, input := range inputs {
		if opts.middle {
			results = append(results, stringx.AbbreviateMiddle(input, marker, width))
			continue
		}
		result, err := stringx.AbbreviateFull(input, marker, offset, width)
		if err != nil {
			return err
		}
		results = append(results, result)
	}

	a.logger.Debug("Abbreviated", "inputs", len(inputs), "width", width, "marker", marker, "offset", offset)
	return writeLines(cmd.OutOrStdout(), results)
}
