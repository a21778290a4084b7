// Package cmd provides the root command and CLI setup for stylefit.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"stylefit.dev/pkg/stylefit/internal/adapter"
	"stylefit.dev/pkg/stylefit/internal/controller"
	"stylefit.dev/pkg/stylefit/internal/domain"
	m "stylefit.dev/pkg/stylefit/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var optionStore adapter.OptionStore
var reportStore adapter.ReportStore
var workflow domain.Workflow
var ui controller.UI

// outputFlag is a root-level flag shared by commands that read/write reports.
var outputFlag string

// excludePatterns is a root-level flag that filters files for applicable commands.
var excludePatterns []string

// optionsFileFlag points at a custom option catalogue.
var optionsFileFlag string

var logFileFlag string
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	optionStore = adapter.NewLocalOptionStore(fsAdapter)
	reportStore = adapter.NewLocalReportStore(fsAdapter)
	workflow = domain.NewWorkflow(
		fsAdapter,
		optionStore,
		reportStore,
		ui,
		newFormatter,
	)
}

func newFormatter(spec adapter.FormatterSpec) (adapter.Formatter, error) {
	return adapter.NewFormatter(fsAdapter, spec)
}

const pathPatternsHelp = `Supports Go-style path patterns:
  - ./...          recursively scan current directory
  - ./src/...      recursively scan src directory
  - ./src ./lib    scan multiple directories (one level deep)
  - main.c         a single file`

const rootLongDescription = `Stylefit infers the formatter configuration that best reproduces the
existing style of a codebase. It scores the formatter presets against your
files, then tunes one setting at a time until the formatter changes as
little as possible.

` + pathPatternsHelp

const inferLongDescription = `Infer a formatter configuration for the given paths (default: ./...).

The search stops at --timeout and keeps the best configuration found so far.

` + pathPatternsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stylefit",
		Short: "Formatter configuration inference tool",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&outputFlag, outputFlagName, "o",
			viper.GetString(outputConfigKey),
			"report file written by infer and read by view",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputConfigKey)

	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude files matching regex (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().StringVar(&optionsFileFlag, optionsFlagName, viper.GetString(optionsConfigKey), "option catalogue YAML (default: builtin formatter catalogue)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(optionsFlagName), optionsConfigKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
// An interrupt cancels the running command, which for infer ends the search
// with the best configuration found so far.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
