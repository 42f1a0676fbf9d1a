package geom

import (
	"fmt"

	"github.com/katalvlaran/gridkit/errkind"
)

// ErrNoCombination indicates two directions that do not combine into a diagonal.
var ErrNoCombination = errkind.New(errkind.ErrPrecondition, "geom: directions do not combine")

// Direction is one of the eight compass directions or one of the two
// vertical directions.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
	NorthEast
	NorthWest
	SouthEast
	SouthWest
	Up
	Down
)

var (
	straight = [...]Direction{North, East, South, West}
	diagonal = [...]Direction{NorthEast, NorthWest, SouthWest, SouthEast}
	vertical = [...]Direction{Up, Down}
)

// Straight returns the four cardinal directions in clockwise order, starting north.
func Straight() []Direction { return append([]Direction(nil), straight[:]...) }

// Diagonal returns the four diagonal directions.
func Diagonal() []Direction { return append([]Direction(nil), diagonal[:]...) }

// Vertical returns Up and Down.
func Vertical() []Direction { return append([]Direction(nil), vertical[:]...) }

// IsStraight reports whether d is a cardinal direction.
func (d Direction) IsStraight() bool { return d <= West }

// IsDiagonal reports whether d is one of the four diagonals.
func (d Direction) IsDiagonal() bool { return d >= NorthEast && d <= SouthWest }

// IsVertical reports whether d is Up or Down.
func (d Direction) IsVertical() bool { return d == Up || d == Down }

// XStep is the column delta of a unit step.
func (d Direction) XStep() int {
	switch d {
	case West, NorthWest, SouthWest:
		return -1
	case East, NorthEast, SouthEast:
		return 1
	}
	return 0
}

// YStep is the row delta of a unit step. North is -1.
func (d Direction) YStep() int {
	switch d {
	case North, NorthEast, NorthWest:
		return -1
	case South, SouthEast, SouthWest:
		return 1
	}
	return 0
}

// ZStep is the height delta of a unit step.
func (d Direction) ZStep() int {
	switch d {
	case Up:
		return 1
	case Down:
		return -1
	}
	return 0
}

// clockwise ring of the planar directions; index arithmetic implements turns.
var ring = [...]Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

var ringIndex = func() [10]int {
	var idx [10]int
	for i := range idx {
		idx[i] = -1
	}
	for i, d := range ring {
		idx[d] = i
	}
	return idx
}()

func (d Direction) rotate(eighths int) Direction {
	if int(d) >= len(ringIndex) || ringIndex[d] < 0 {
		return d // Up/Down have no planar rotation
	}
	return ring[(ringIndex[d]+eighths+len(ring))%len(ring)]
}

// TurnRight rotates 90° clockwise. Vertical directions are returned unchanged.
func (d Direction) TurnRight() Direction { return d.rotate(2) }

// TurnLeft rotates 90° counter-clockwise. Inverse of TurnRight.
func (d Direction) TurnLeft() Direction { return d.rotate(-2) }

// TurnRightHalf rotates 45° clockwise.
func (d Direction) TurnRightHalf() Direction { return d.rotate(1) }

// TurnLeftHalf rotates 45° counter-clockwise.
func (d Direction) TurnLeftHalf() Direction { return d.rotate(-1) }

// TurnAround returns the opposite direction, Up and Down included.
func (d Direction) TurnAround() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	}
	return d.rotate(4)
}

// Combine merges two orthogonal cardinal directions into the diagonal
// between them (North+East = NorthEast). Order does not matter.
func (d Direction) Combine(other Direction) (Direction, error) {
	if d.IsStraight() && other.IsStraight() && (other == d.TurnLeft() || other == d.TurnRight()) {
		if d.TurnRight() == other {
			return d.TurnRightHalf(), nil
		}
		return d.TurnLeftHalf(), nil
	}
	return d, fmt.Errorf("%w: %s and %s", ErrNoCombination, d, other)
}

var names = [...]string{
	North:     "north",
	East:      "east",
	South:     "south",
	West:      "west",
	NorthEast: "north-east",
	NorthWest: "north-west",
	SouthEast: "south-east",
	SouthWest: "south-west",
	Up:        "up",
	Down:      "down",
}

// String returns the kebab-case name, e.g. "north-east".
func (d Direction) String() string {
	if int(d) < len(names) {
		return names[d]
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

var arrows = map[Direction]rune{North: '^', East: '>', South: 'v', West: '<'}

// byArrow is the reverse of arrows. Built once, never written afterwards.
var byArrow map[rune]Direction

func init() {
	byArrow = make(map[rune]Direction, len(arrows))
	for d, r := range arrows {
		byArrow[r] = d
	}
}

// Char returns the arrow character of a cardinal direction ('^', '>', 'v',
// '<') and 0 for any other direction.
func (d Direction) Char() rune { return arrows[d] }

// DirectionFromChar maps an arrow character back to its direction.
func DirectionFromChar(r rune) (Direction, bool) {
	d, ok := byArrow[r]
	return d, ok
}
