package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"stylefit.dev/pkg/stylefit/internal/domain"
	m "stylefit.dev/pkg/stylefit/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [report]",
		Short: "View a previously generated inference report",
		Long:  "View a report written by infer. Without an argument the --output path is used.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reportPath := m.Path(viper.GetString(outputConfigKey))
			if len(args) == 1 {
				reportPath = m.Path(args[0])
			}

			return workflow.View(cmd.Context(), domain.ViewArgs{Report: reportPath})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
