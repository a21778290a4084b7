package cmd

import (
	"github.com/spf13/cobra"

	"stylefit.dev/pkg/stylefit/internal/domain"
	m "stylefit.dev/pkg/stylefit/internal/model"
)

// costCmd represents the cost command.
var costCmd = newCostCmd()

func newCostCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cost ORIGINAL FORMATTED",
		Short: "Print the diff cost between two files",
		Long:  "Print how much FORMATTED differs from ORIGINAL, using the cost the search minimizes.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Cost(cmd.Context(), domain.CostArgs{
				Original:  m.Path(args[0]),
				Formatted: m.Path(args[1]),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(costCmd)
}
