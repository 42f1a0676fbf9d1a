package report

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridkit/config"
	"github.com/katalvlaran/gridkit/errkind"
	"github.com/katalvlaran/gridkit/geom"
	"github.com/katalvlaran/gridkit/grid"
)

const smallGarden = "AAAA\nBBCD\nBBCC\nEEEC"

const reindeerMaze = `###############
#.......#....E#
#.#.###.#.###.#
#.....#.#...#.#
#.###.#####.#.#
#.#.#.......#.#
#.#.#####.###.#
#...........#.#
###.#.#####.#.#
#...#.....#.#.#
#.#.#.###.#.#.#
#.....#...#.#.#
#.###.#.#.#.#.#
#S..#.....#...#
###############`

func mustRead(t *testing.T, text string) *grid.Grid[rune] {
	t.Helper()
	g, err := grid.Read(text)
	require.NoError(t, err)
	return g
}

func writeFile(t *testing.T, dir, name, text string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(text+"\n"), 0644))
	return path
}

func mazeConfig(turn int64) config.MazeConfig {
	cfg := config.Default().Maze
	cfg.TurnCost = turn
	return cfg
}

func TestRegions(t *testing.T) {
	rep := Regions(mustRead(t, smallGarden), true)
	assert.Equal(t, 5, rep.Regions)
	assert.Equal(t, int64(140), rep.PriceByPerimeter)
	assert.Equal(t, int64(80), rep.PriceBySides)
	require.Len(t, rep.Details, 5)
	assert.Equal(t, Region{Value: "A", Origin: "0,0", Area: 4, Perimeter: 10, Sides: 4}, rep.Details[0])
	assert.Equal(t, "D", rep.Details[3].Value)
}

func TestRegionsFiles(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeFile(t, dir, "small.txt", smallGarden),
		writeFile(t, dir, "enclosed.txt", "OOOOO\nOXOXO\nOOOOO\nOXOXO\nOOOOO"),
	}
	obsCore, logs := observer.New(zap.DebugLevel)

	reps, err := RegionsFiles(context.Background(), zap.New(obsCore), paths, false)
	require.NoError(t, err)
	require.Len(t, reps, 2)
	assert.Equal(t, paths[0], reps[0].File)
	assert.Equal(t, int64(772), reps[1].PriceByPerimeter)
	assert.Equal(t, int64(436), reps[1].PriceBySides)
	assert.Equal(t, 2, logs.FilterMessage("regions reported").Len())

	total := Totals(reps)
	assert.Equal(t, int64(140+772), total.PriceByPerimeter)
	assert.Equal(t, 5+5, total.Regions)
}

func TestRegionsFilesMissing(t *testing.T) {
	dir := t.TempDir()
	paths := []string{writeFile(t, dir, "ok.txt", "AB"), filepath.Join(dir, "missing.txt")}
	_, err := RegionsFiles(context.Background(), nil, paths, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.txt")
}

func TestReadGridRagged(t *testing.T) {
	path := writeFile(t, t.TempDir(), "ragged.txt", "AAA\nAA")
	_, err := ReadGrid(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, errkind.ErrConfiguration)
}

func TestMazePlain(t *testing.T) {
	rep, err := Maze(mustRead(t, "S.#\n#.#\n..E"), mazeConfig(0), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(4), rep.Cost)
	assert.Equal(t, "1", rep.Paths)
	assert.Equal(t, 5, rep.Tiles)
	assert.Equal(t, 6, rep.Reach, "0,2 is open but off the path")
	assert.Equal(t, []string{"0,0", "1,0", "1,1", "1,2", "2,2"}, rep.Path)
}

func TestMazePlainTies(t *testing.T) {
	rep, err := Maze(mustRead(t, "S..\n...\n..E"), mazeConfig(0), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(4), rep.Cost)
	assert.Equal(t, "6", rep.Paths)
	assert.Equal(t, 9, rep.Tiles)
}

func TestMazeDiagonals(t *testing.T) {
	cfg := mazeConfig(0)
	cfg.Diagonals = true
	rep, err := Maze(mustRead(t, "S..\n...\n..E"), cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), rep.Cost)
	assert.Equal(t, "1", rep.Paths)
	assert.Equal(t, []string{"0,0", "1,1", "2,2"}, rep.Path)
}

func TestMazeFacing(t *testing.T) {
	rep, err := Maze(mustRead(t, "S.\n.E"), mazeConfig(1000), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1002), rep.Cost)
	assert.Equal(t, "2", rep.Paths)
	assert.Equal(t, 4, rep.Tiles)
	assert.Equal(t, 4, rep.Reach)
	assert.Len(t, rep.Path, 3, "turns in place collapse to one tile")
}

func TestMazeReindeer(t *testing.T) {
	rep, err := Maze(mustRead(t, reindeerMaze), mazeConfig(1000), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(7036), rep.Cost)
	assert.Equal(t, 45, rep.Tiles)
	assert.Equal(t, "1,13", rep.Start)
	assert.Equal(t, "13,1", rep.End)
	assert.Equal(t, rep.Start, rep.Path[0])
	assert.Equal(t, rep.End, rep.Path[len(rep.Path)-1])
}

func TestMazeErrors(t *testing.T) {
	_, err := Maze(mustRead(t, "S.."), mazeConfig(0), nil)
	assert.ErrorIs(t, err, ErrMissingMarker)

	_, err = Maze(mustRead(t, "S.S\n..E"), mazeConfig(0), nil)
	assert.ErrorIs(t, err, ErrDuplicateMarker)

	_, err = Maze(mustRead(t, "S#E"), mazeConfig(0), nil)
	assert.ErrorIs(t, err, ErrUnsolvable)
	assert.ErrorIs(t, err, errkind.ErrNotFound)

	_, err = Maze(mustRead(t, "S#E"), mazeConfig(5), nil)
	assert.ErrorIs(t, err, ErrUnsolvable)
}

func TestOutline(t *testing.T) {
	rep, err := Outline(mustRead(t, "AB\nAA"), geom.Pt(0, 1))
	require.NoError(t, err)
	assert.Equal(t, "A", rep.Value)
	assert.Equal(t, 3, rep.Area)
	assert.Equal(t, 8, rep.Perimeter)
	assert.Equal(t, 6, rep.Sides)
	assert.True(t, rep.Border)
	want := strings.Join([]string{
		"┌─┐",
		"│A│",
		"│ │",
		"│ └──┐",
		"│A  A│",
		"└────┘",
	}, "\n")
	assert.Equal(t, want, rep.Plot)

	_, err = Outline(mustRead(t, "AB"), geom.Pt(5, 0))
	assert.ErrorIs(t, err, grid.ErrOutOfRange)
}

func TestRender(t *testing.T) {
	rep := Regions(mustRead(t, smallGarden), false)

	var text bytes.Buffer
	require.NoError(t, Render(&text, "text", rep))
	assert.Contains(t, text.String(), "price by perimeter: 140")

	var out bytes.Buffer
	require.NoError(t, Render(&out, "yaml", rep))
	var back RegionReport
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &back))
	assert.Equal(t, rep, back)

	assert.ErrorIs(t, Render(&out, "xml", rep), ErrUnknownFormat)
}

func TestReportsText(t *testing.T) {
	rs := Reports{{File: "a", Regions: 1, PriceByPerimeter: 4}, {File: "b", Regions: 2, PriceByPerimeter: 6}}
	text := rs.Text()
	assert.Contains(t, text, "total\n")
	assert.Contains(t, text, "price by perimeter: 10")
	assert.NotContains(t, Reports{rs[0]}.Text(), "total")
}
