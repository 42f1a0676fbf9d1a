package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/gridkit/internal/report"
)

var regionsDetails bool

var regionsCmd = &cobra.Command{
	Use:   "regions FILE...",
	Short: "Price the fences of every same-letter region",
	Long: `Split each grid into connected regions of equal letters and report
the fence price by perimeter (area × perimeter) and by sides
(area × number of straight sides). Files are processed concurrently.

Examples:
  gridkit regions garden.txt
  gridkit regions a.txt b.txt --details -o yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRegions,
}

func init() {
	regionsCmd.Flags().BoolVar(&regionsDetails, "details", false,
		"List every region")
}

func runRegions(cmd *cobra.Command, args []string) error {
	reps, err := report.RegionsFiles(cmd.Context(), logger, args, regionsDetails)
	if err != nil {
		return err
	}
	logger.Info("regions done", zap.Int("files", len(reps)))

	return report.Render(cmd.OutOrStdout(), cfg.Output.Format, report.Reports(reps))
}
