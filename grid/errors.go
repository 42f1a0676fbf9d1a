package grid

import "github.com/katalvlaran/gridkit/errkind"

// Sentinel errors for grid operations.
var (
	// ErrRowWidth indicates a row whose length differs from the grid's column count.
	ErrRowWidth = errkind.New(errkind.ErrConfiguration, "grid: row width mismatch")

	// ErrEmptyPoints indicates FromPoints was called without points.
	ErrEmptyPoints = errkind.New(errkind.ErrConfiguration, "grid: no points given")

	// ErrNegativePoint indicates FromPoints got a negative coordinate while offsets are disallowed.
	ErrNegativePoint = errkind.New(errkind.ErrConfiguration, "grid: negative coordinate without offset")

	// ErrInvertedSection indicates a section whose end lies before its start.
	ErrInvertedSection = errkind.New(errkind.ErrConfiguration, "grid: inverted section bounds")

	// ErrOutOfRange indicates a coordinate or index outside the grid, row or column.
	ErrOutOfRange = errkind.New(errkind.ErrOutOfBounds, "grid: coordinate out of range")

	// ErrNotDiagonal indicates a corner lookup with a non-diagonal direction.
	ErrNotDiagonal = errkind.New(errkind.ErrPrecondition, "grid: only diagonal directions point to a corner")

	// ErrDiagonalPath indicates DrawPath between points that share neither row nor column.
	ErrDiagonalPath = errkind.New(errkind.ErrPrecondition, "grid: only horizontal and vertical paths can be drawn")
)
