package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/katalvlaran/gridkit/config"
	"github.com/katalvlaran/gridkit/observability"
)

var (
	cfgPath string
	cfg     config.Config
	logger  = zap.NewNop()
)

// flagKeys maps command-line flags onto configuration keys.
var flagKeys = map[string]string{
	"log-level":  "logging.level",
	"log-format": "logging.format",
	"output":     "output.format",
	"wall":       "maze.wall",
	"start":      "maze.start",
	"end":        "maze.end",
	"diagonals":  "maze.diagonals",
	"step-cost":  "maze.step_cost",
	"turn-cost":  "maze.turn_cost",
}

var rootCmd = &cobra.Command{
	Use:   "gridkit",
	Short: "Grid regions, mazes and outlines",
	Long: `gridkit reads rectangular character grids from files.

Subcommands:
  regions   Price the fences of every same-letter region
  path      Find the cheapest walk through a maze
  outline   Draw the boundary of one region

Configuration comes from --config (YAML), GRIDKIT_* environment
variables and flags, in increasing priority.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(*cobra.Command, []string) { _ = logger.Sync() },
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "",
		"Path to a YAML configuration file")
	rootCmd.PersistentFlags().String("log-level", "info",
		"Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "console",
		"Log format: json, console")
	rootCmd.PersistentFlags().StringP("output", "o", "text",
		"Report format: text, yaml")

	rootCmd.AddCommand(regionsCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(outlineCmd)
}

// setup loads configuration with flag overrides and builds the logger.
func setup(cmd *cobra.Command, _ []string) error {
	v, err := config.NewViper(cfgPath)
	if err != nil {
		return err
	}
	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok && bindErr == nil {
			bindErr = v.BindPFlag(key, f)
		}
	})
	if bindErr != nil {
		return fmt.Errorf("binding flags: %w", bindErr)
	}

	if cfg, err = config.LoadFromViper(v); err != nil {
		return err
	}
	if logger, err = observability.NewLogger(cfg.Logging); err != nil {
		return err
	}
	logger.Debug("configuration loaded",
		zap.String("command", cmd.Name()),
		zap.String("config", cfgPath),
		zap.String("output", cfg.Output.Format),
	)

	return nil
}
