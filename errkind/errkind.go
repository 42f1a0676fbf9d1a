// SPDX-License-Identifier: MIT
// Package errkind defines the error categories shared by every gridkit package.
//
// Each package exposes its own sentinel errors (core.ErrDuplicateEdge,
// grid.ErrOutOfRange, ...). Every such sentinel wraps exactly one of the
// categories below, so callers can branch either on the precise failure or
// on its class:
//
//	if errors.Is(err, errkind.ErrConfiguration) { /* caller built bad input */ }
//
// All failures are deterministic caller/input defects. Nothing in gridkit is
// retryable.
package errkind

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration marks malformed construction arguments: inconsistent
	// row widths, duplicate vertices or edges, an empty source set, inverted
	// section bounds.
	ErrConfiguration = errors.New("configuration error")

	// ErrOutOfBounds marks coordinate or index access outside a grid, row or column.
	ErrOutOfBounds = errors.New("out of bounds")

	// ErrPrecondition marks a violated algorithm precondition, e.g. an edge
	// cost below 1 reached during a shortest-path run.
	ErrPrecondition = errors.New("precondition violation")

	// ErrNotFound marks a missing vertex, edge or lookup key.
	ErrNotFound = errors.New("not found")
)

// New returns a sentinel whose text is msg followed by the category, and
// which matches kind under errors.Is. msg carries the package prefix, e.g.
// errkind.New(errkind.ErrNotFound, "core: vertex not found").
func New(kind error, msg string) error {
	return fmt.Errorf("%s: %w", msg, kind)
}
