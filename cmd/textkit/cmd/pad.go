package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/textkit/foundation/core/errors"
	"github.com/msto63/textkit/foundation/utils/stringx"
)

type padOptions struct {
	width int
	pad   string
	side  string
}

func newPadCmd(a *app) *cobra.Command {
	opts := &padOptions{}

	padCmd := &cobra.Command{
		Use:   "pad [text...]",
		Short: "Pad text to a width",
		Long: `Pads each input to --width code points by cycling through --pad.
Inputs that are already wide enough are left unchanged.

Examples:
  textkit pad --width 8 --pad yz bat        # yzyzybat
  textkit pad --width 5 --side center ab    # " ab  "
  textkit pad --width 10 --side right --pad . name`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPad(cmd, args, opts)
		},
	}

	padCmd.Flags().IntVarP(&opts.width, "width", "w", 0, "target width in code points (default from config: 20)")
	padCmd.Flags().StringVarP(&opts.pad, "pad", "p", "", `pad string (default from config: " ")`)
	padCmd.Flags().StringVarP(&opts.side, "side", "s", "left", "where to pad: left, right or center")

	return padCmd
}

func (a *app) runPad(cmd *cobra.Command, args []string, opts *padOptions) error {
	width := a.cfg.Pad.Width
	if cmd.Flags().Changed("width") {
		width = opts.width
	}
	pad := a.cfg.Pad.Pad
	if cmd.Flags().Changed("pad") {
		pad = opts.pad
	}

	var fn func(string, int, string) string
	switch opts.side {
	case "left":
		fn = stringx.LeftPad
	case "right":
		fn = stringx.RightPad
	case "center", "centre":
		fn = stringx.Center
	default:
		return errors.InvalidArgument(errors.ModuleCLI, "pad",
			fmt.Sprintf("unknown side %q, expected left, right or center", opts.side))
	}

	inputs, err := readInputs(cmd, args)
	if err != nil {
		return err
	}

	results := make([]string, len(inputs))
	for i, input := range inputs {
		results[i] = fn(input, width, pad)
	}
	return writeLines(cmd.OutOrStdout(), results)
}
