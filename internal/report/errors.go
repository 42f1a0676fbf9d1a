package report

import "github.com/katalvlaran/gridkit/errkind"

var (
	// ErrMissingMarker indicates a maze without its start or end character.
	ErrMissingMarker = errkind.New(errkind.ErrConfiguration, "report: maze marker not found")

	// ErrDuplicateMarker indicates a maze with more than one start or end.
	ErrDuplicateMarker = errkind.New(errkind.ErrConfiguration, "report: maze marker appears more than once")

	// ErrUnsolvable indicates that the end cannot be reached from the start.
	ErrUnsolvable = errkind.New(errkind.ErrNotFound, "report: end is unreachable")

	// ErrUnknownFormat indicates an output format other than text or yaml.
	ErrUnknownFormat = errkind.New(errkind.ErrConfiguration, "report: unknown output format")
)
