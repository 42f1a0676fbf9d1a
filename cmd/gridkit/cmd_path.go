package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridkit/internal/report"
)

var pathCmd = &cobra.Command{
	Use:   "path FILE",
	Short: "Find the cheapest walk through a maze",
	Long: `Find the cheapest walk from the start marker to the end marker.
Wall cells are impassable. With --turn-cost the walker starts facing
east and every 90° turn costs extra.

Reports the cost, the number of cheapest walks, the number of tiles on
any of them, and one cheapest walk.

Examples:
  gridkit path maze.txt
  gridkit path maze.txt --turn-cost 1000`,
	Args: cobra.ExactArgs(1),
	RunE: runPath,
}

func init() {
	pathCmd.Flags().String("wall", "#", "Wall character")
	pathCmd.Flags().String("start", "S", "Start character")
	pathCmd.Flags().String("end", "E", "End character")
	pathCmd.Flags().Bool("diagonals", false, "Allow diagonal steps")
	pathCmd.Flags().Int64("step-cost", 1, "Cost of one step")
	pathCmd.Flags().Int64("turn-cost", 0, "Cost of a 90° turn (0 ignores facing)")
}

func runPath(cmd *cobra.Command, args []string) error {
	g, err := report.ReadGrid(args[0])
	if err != nil {
		return err
	}
	rep, err := report.Maze(g, cfg.Maze, logger)
	if err != nil {
		return err
	}
	rep.File = args[0]

	return report.Render(cmd.OutOrStdout(), cfg.Output.Format, rep)
}
