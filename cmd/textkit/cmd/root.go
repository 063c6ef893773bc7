package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
	"github.com/msto63/textkit/foundation/core/errors"
	mdwlog "github.com/msto63/textkit/foundation/core/log"
	"github.com/msto63/textkit/pkg/core/config"
	"github.com/msto63/textkit/pkg/core/logging"
)

// app carries the state shared by all commands of one invocation
type app struct {
	cfgFile  string
	logLevel string
	color    string

	cfg    *config.Config
	logger *logging.Logger
}

// NewRootCmd builds the textkit command tree
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{})
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "textkit",
		Short: "textkit - code point safe string tools",
		Long: `textkit shortens, pads, wraps and converts text. All widths and
offsets count Unicode code points, never bytes.

Input comes from the arguments, one value per argument, or from stdin,
one value per line. Results go to stdout, logs and errors to stderr.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: ./configs/textkit.toml, ./textkit.toml, ~/.config/textkit/textkit.toml)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&a.color, "color", "", "color output (auto, always, never)")

	rootCmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return errors.InvalidArgument(errors.ModuleCLI, c.Name(), err.Error())
	})

	rootCmd.AddCommand(
		newAbbreviateCmd(a),
		newExplainCmd(a),
		newPadCmd(a),
		newCaseCmd(a),
		newStripCmd(a),
		newWrapCmd(a),
		newBatchCmd(a),
		newOpsCmd(a),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute runs the command line and returns the process exit status
func Execute() int {
	a := &app{}
	rootCmd := newRootCmd(a)
	if err := rootCmd.Execute(); err != nil {
		a.reportError(rootCmd.ErrOrStderr(), err)
		return exitCode(err)
	}
	return 0
}

// reportError prints err for the user. At debug level the logger also
// records its code, operation and details.
func (a *app) reportError(w io.Writer, err error) {
	if a.logger != nil && a.logger.IsLevelEnabled(mdwlog.LevelDebug) {
		a.logger.LogError(err)
	}
	printError(w, err)
}

// setup loads the configuration and creates the logger
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, path, err := config.Resolve(a.cfgFile)
	if err != nil {
		return err
	}

	if a.logLevel != "" {
		if _, err := mdwlog.ParseLevel(a.logLevel); err != nil {
			return errors.InvalidArgument(errors.ModuleCLI, "log-level", err.Error())
		}
		cfg.General.LogLevel = a.logLevel
	}
	if a.color != "" {
		cfg.Output.Color = a.color
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	a.cfg = cfg
	a.logger = logging.Wrap(logging.NewLogger(logging.LoggerConfig{
		Name:   "textkit",
		Level:  cfg.General.LogLevel,
		Format: cfg.General.LogFormat,
		Output: cmd.ErrOrStderr(),
	}), "textkit").With("command", cmd.Name())

	if path != "" {
		a.logger.Debug("Config loaded", "path", path)
	} else {
		a.logger.Debug("No config file found, using defaults")
	}
	return nil
}

// readInputs returns the arguments, or the lines of stdin when there are
// none. A terminal on stdin without arguments is an error.
func readInputs(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return nil, errors.InvalidArgument(errors.ModuleCLI, cmd.Name(),
			"no input: pass values as arguments or pipe lines on stdin")
	}

	var lines []string
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.NewErrorBuilder(errors.ModuleCLI).
			Operation(cmd.Name()).
			Code(mdwerror.CodeInvalidInput).
			Message("failed to read stdin").
			Cause(err).
			Build()
	}
	return lines, nil
}

// noArgs rejects positional arguments with a usage error
func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return errors.InvalidArgument(errors.ModuleCLI, cmd.Name(),
			fmt.Sprintf("unexpected argument %q", args[0]))
	}
	return nil
}

// writeLines prints one result per line
func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// exitCode maps an error to the process exit status: 2 for argument,
// validation and configuration errors, 1 for everything else
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	return mdwerror.GetCode(err).ExitCode()
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}
