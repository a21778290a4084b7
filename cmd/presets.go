package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"stylefit.dev/pkg/stylefit/internal/domain"
	m "stylefit.dev/pkg/stylefit/internal/model"
)

// presetsCmd represents the presets command.
var presetsCmd = newPresetsCmd()

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the formatter options and presets",
		Long:  "List the tunable formatter options with their candidate values and the presets the search starts from.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Presets(cmd.Context(), domain.PresetsArgs{
				OptionsFile: m.Path(viper.GetString(optionsConfigKey)),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}
