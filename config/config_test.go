package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/katalvlaran/gridkit/errkind"
)

func validConfig() Config {
	return Config{
		Logging: LoggingConfig{Level: "info", Format: "json"},
		Maze: MazeConfig{
			Wall:     "#",
			Start:    "S",
			End:      "E",
			StepCost: 1,
			TurnCost: 1000,
		},
		Output: OutputConfig{Format: "text"},
	}
}

func TestValidConfig(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, '#', cfg.Maze.WallRune())
	assert.Equal(t, 'S', cfg.Maze.StartRune())
	assert.Equal(t, 'E', cfg.Maze.EndRune())
	assert.Equal(t, int64(1), cfg.Maze.StepCost)
	assert.Equal(t, "text", cfg.Output.Format)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gridkit.yaml")
	err := os.WriteFile(path, []byte(`
logging:
  level: debug
  format: console
maze:
  wall: "█"
  turn_cost: 1000
output:
  format: yaml
`), 0644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, '█', cfg.Maze.WallRune())
	assert.Equal(t, "S", cfg.Maze.Start, "unset keys keep defaults")
	assert.Equal(t, int64(1000), cfg.Maze.TurnCost)
	assert.Equal(t, "yaml", cfg.Output.Format)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("GRIDKIT_MAZE_STEP_COST", "7")
	t.Setenv("GRIDKIT_OUTPUT_FORMAT", "yaml")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.Maze.StepCost)
	assert.Equal(t, "yaml", cfg.Output.Format)
}

func TestLoadInvalidPath(t *testing.T) {
	_, err := Load("/nonexistent/path.yaml")
	assert.Error(t, err)
}

func TestLoadFromViperInvalid(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("output.format", "xml")
	_, err := LoadFromViper(v)
	require.Error(t, err)
	assert.ErrorIs(t, err, errkind.ErrConfiguration)
}

func TestValidateLoggingLevel(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		cfg := validConfig()
		cfg.Logging.Level = level
		assert.NoError(t, cfg.Validate(), "level %q should be valid", level)
	}
	cfg := validConfig()
	cfg.Logging.Level = "trace"
	assert.Error(t, cfg.Validate())
}

func TestValidateMazeChars(t *testing.T) {
	cfg := validConfig()
	cfg.Maze.Wall = "##"
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Maze.Start = ""
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Maze.End = "S"
	assert.Error(t, cfg.Validate())
}

func TestValidateTurnCostWithDiagonals(t *testing.T) {
	cfg := validConfig()
	cfg.Maze.Diagonals = true
	assert.Error(t, cfg.Validate())

	cfg.Maze.TurnCost = 0
	assert.NoError(t, cfg.Validate())
}

func TestValidateCollectsAllViolations(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Format = "xml"
	cfg.Maze.StepCost = 0
	cfg.Output.Format = "html"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.format")
	assert.Contains(t, err.Error(), "maze.step_cost")
	assert.Contains(t, err.Error(), "output.format")
}

// Property-based tests

func TestPropertyStepCost(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cost := rapid.Int64Range(-100, 100).Draw(t, "step_cost")
		cfg := validConfig()
		cfg.Maze.StepCost = cost
		err := cfg.Validate()
		if (cost >= 1) != (err == nil) {
			t.Fatalf("step_cost %d: err = %v", cost, err)
		}
	})
}
