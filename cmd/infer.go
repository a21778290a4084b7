package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"stylefit.dev/pkg/stylefit/internal/domain"
	m "stylefit.dev/pkg/stylefit/internal/model"
)

// defaultInferPath is searched when infer gets no path.
const defaultInferPath = "./..."

var (
	styleOutputFlag      string
	extensionsFlag       []string
	timeoutFlag          time.Duration
	parallelFlag         int
	passesFlag           int
	cacheSizeFlag        int
	formatterFlag        string
	formatterCommandFlag string
	formatterTimeoutFlag time.Duration
)

// inferCmd represents the infer command.
var inferCmd = newInferCmd()

func newInferCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "infer [paths...]",
		Short: "Infer the formatter configuration of existing code",
		Long:  inferLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := parsePaths(args)
			if len(paths) == 0 {
				paths = []m.Path{defaultInferPath}
			}

			return workflow.Infer(cmd.Context(), domain.InferArgs{
				Paths:       paths,
				Exclude:     viper.GetStringSlice(excludeConfigKey),
				Extensions:  viper.GetStringSlice(extensionsConfigKey),
				Output:      m.Path(viper.GetString(outputConfigKey)),
				StyleOutput: m.Path(viper.GetString(styleOutputConfigKey)),
				OptionsFile: m.Path(viper.GetString(optionsConfigKey)),
				Formatter:   formatterSpec(),
				Timeout:     viper.GetDuration(timeoutConfigKey),
				Threads:     viper.GetInt(parallelConfigKey),
				MaxPasses:   viper.GetInt(passesConfigKey),
				CacheSize:   viper.GetInt(cacheSizeConfigKey),
				JournalDir:  viper.GetString(journalDirConfigKey),
			})
		},
	}

	configureInferFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(inferCmd)
}

func configureInferFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&styleOutputFlag, styleOutputFlagName, viper.GetString(styleOutputConfigKey), "also write the inferred settings alone to this YAML file")
	bindFlagToConfig(cmd.Flags().Lookup(styleOutputFlagName), styleOutputConfigKey)

	cmd.Flags().StringSliceVar(&extensionsFlag, extensionsFlagName, viper.GetStringSlice(extensionsConfigKey), "only read files with these extensions (e.g. c,h)")
	bindFlagToConfig(cmd.Flags().Lookup(extensionsFlagName), extensionsConfigKey)

	cmd.Flags().DurationVarP(&timeoutFlag, timeoutFlagName, "t", viper.GetDuration(timeoutConfigKey), "search deadline (0 searches until convergence)")
	bindFlagToConfig(cmd.Flags().Lookup(timeoutFlagName), timeoutConfigKey)

	cmd.Flags().IntVarP(&parallelFlag, parallelFlagName, "p", viper.GetInt(parallelConfigKey), "number of files formatted concurrently (0 uses all CPUs)")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), parallelConfigKey)

	cmd.Flags().IntVar(&passesFlag, passesFlagName, viper.GetInt(passesConfigKey), "maximum local search passes (0 repeats until no improvement)")
	bindFlagToConfig(cmd.Flags().Lookup(passesFlagName), passesConfigKey)

	cmd.Flags().IntVar(&cacheSizeFlag, cacheSizeFlagName, viper.GetInt(cacheSizeConfigKey), "maximum memoized diff costs")
	bindFlagToConfig(cmd.Flags().Lookup(cacheSizeFlagName), cacheSizeConfigKey)

	cmd.Flags().StringVarP(&formatterFlag, formatterFlagName, "f", viper.GetString(formatterKindConfigKey), "formatter kind: builtin or command")
	bindFlagToConfig(cmd.Flags().Lookup(formatterFlagName), formatterKindConfigKey)

	cmd.Flags().StringVar(&formatterCommandFlag, formatterCommandFlagName, "", "external formatter command; {config} is replaced by the configuration file")
	bindFlagToConfig(cmd.Flags().Lookup(formatterCommandFlagName), formatterCommandConfigKey)

	cmd.Flags().DurationVar(&formatterTimeoutFlag, formatterTimeoutFlagName, viper.GetDuration(formatterTimeoutConfigKey), "timeout of one external formatter call")
	bindFlagToConfig(cmd.Flags().Lookup(formatterTimeoutFlagName), formatterTimeoutConfigKey)
}
