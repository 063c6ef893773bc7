package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
	"github.com/msto63/textkit/foundation/core/errors"
	"github.com/msto63/textkit/foundation/utils/stringx"
	"github.com/msto63/textkit/internal/pipeline"
)

const batchCellWidth = 40

type batchOptions struct {
	file  string
	table bool
}

func newBatchCmd(a *app) *cobra.Command {
	opts := &batchOptions{}

	batchCmd := &cobra.Command{
		Use:   "batch --file <job> [text...]",
		Short: "Run a pipeline job file",
		Long: `Runs the steps of a YAML or TOML job file over its inputs. Arguments
or stdin lines replace the inputs of the job when the job lists none or
when arguments are given.

A failing step stops only the input it failed on. Successful results
are printed in order, failures are reported on stderr, and the command
fails when any input failed.

Job file:
  name: headlines
  inputs: ["  Hello World  "]
  steps:
    - op: strip
    - op: abbreviate
      params: {width: 8}

Operations are listed by "textkit ops".`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBatch(cmd, args, opts)
		},
	}

	batchCmd.Flags().StringVarP(&opts.file, "file", "f", "", "job file (.yaml, .yml or .toml)")
	batchCmd.Flags().BoolVar(&opts.table, "table", false, "print a table of inputs and results")

	return batchCmd
}

func (a *app) runBatch(cmd *cobra.Command, args []string, opts *batchOptions) error {
	if opts.file == "" {
		return errors.InvalidArgument(errors.ModuleCLI, "batch", "--file is required")
	}

	job, err := pipeline.Load(opts.file)
	if err != nil {
		return err
	}
	if len(args) > 0 || len(job.Inputs) == 0 {
		inputs, err := readInputs(cmd, args)
		if err != nil {
			return err
		}
		job = job.WithInputs(inputs)
	}

	results, err := pipeline.NewRunner(a.logger).Run(cmd.Context(), job)
	if err != nil {
		return err
	}

	if opts.table {
		fmt.Fprintln(cmd.OutOrStdout(), resultTable(newTheme(cmd.OutOrStdout(), a.cfg.Output.Color), results))
	} else {
		for _, r := range results {
			if r.OK() {
				fmt.Fprintln(cmd.OutOrStdout(), r.Output)
			}
		}
	}

	var firstErr error
	for i, r := range results {
		if r.OK() {
			continue
		}
		if firstErr == nil {
			firstErr = r.Err
		}
		if !opts.table {
			fmt.Fprintf(cmd.ErrOrStderr(), "input %d: %v\n", i+1, r.Err)
		}
	}

	if firstErr != nil {
		succeeded, failed := pipeline.Summary(results)
		return errors.NewErrorBuilder(errors.ModuleCLI).
			Operation("batch").
			Code(mdwerror.GetCode(firstErr)).
			Messagef("%d of %d inputs failed", failed, succeeded+failed).
			Detail("failed", failed).
			Build()
	}
	return nil
}

func resultTable(th theme, results []pipeline.Result) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(th.Border).
		Headers("#", "Input", "Output", "Status").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return th.Header
			case col == 3 && row >= 0 && row < len(results) && results[row].OK():
				return th.OK.Padding(0, 1)
			case col == 3:
				return th.Fail.Padding(0, 1)
			default:
				return th.Cell
			}
		})

	for i, r := range results {
		output, status := r.Output, "ok"
		if !r.OK() {
			output = r.Err.Error()
			status = fmt.Sprintf("failed at step %d", r.FailedStep+1)
		}
		t.Row(
			fmt.Sprint(i+1),
			stringx.TruncateDisplay(r.Input, batchCellWidth, "…"),
			stringx.TruncateDisplay(output, batchCellWidth, "…"),
			status,
		)
	}
	return t.String()
}
