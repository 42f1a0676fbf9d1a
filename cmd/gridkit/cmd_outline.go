package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridkit/geom"
	"github.com/katalvlaran/gridkit/internal/report"
)

var outlineAt string

var outlineCmd = &cobra.Command{
	Use:   "outline FILE",
	Short: "Draw the boundary of one region",
	Long: `Draw the outline of the region containing the cell given by --at
(column,row, zero based) using box-drawing characters.

Examples:
  gridkit outline garden.txt --at 3,1`,
	Args: cobra.ExactArgs(1),
	RunE: runOutline,
}

func init() {
	outlineCmd.Flags().StringVar(&outlineAt, "at", "0,0", "Cell inside the region, as x,y")
}

func runOutline(cmd *cobra.Command, args []string) error {
	at, err := geom.ParsePoint(outlineAt)
	if err != nil {
		return err
	}
	g, err := report.ReadGrid(args[0])
	if err != nil {
		return err
	}
	rep, err := report.Outline(g, at)
	if err != nil {
		return err
	}
	rep.File = args[0]

	return report.Render(cmd.OutOrStdout(), cfg.Output.Format, rep)
}
