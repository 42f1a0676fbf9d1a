package geom

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridkit/errkind"
)

// Sentinel errors for point operations.
var (
	// ErrBadPoint indicates a string that is not "x,y" or "x,y,z".
	ErrBadPoint = errkind.New(errkind.ErrConfiguration, "geom: malformed point")

	// ErrMixedDimensions indicates an operation mixing a 2D and a 3D point,
	// or a Z move on a point without Z.
	ErrMixedDimensions = errkind.New(errkind.ErrPrecondition, "geom: mixed 2D/3D points")
)

// Point is an integer coordinate with an optional Z component.
//
// The zero value is the 2D origin. Two points are equal (==) iff all of
// X, Y, HasZ and Z are equal, so (1,2) and (1,2,0) are distinct.
type Point struct {
	X, Y int
	Z    int
	HasZ bool
}

// Pt returns the 2D point (x, y).
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Pt3 returns the 3D point (x, y, z).
func Pt3(x, y, z int) Point { return Point{X: x, Y: y, Z: z, HasZ: true} }

// ParsePoint parses the canonical form produced by String.
func ParsePoint(s string) (Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 && len(parts) != 3 {
		return Point{}, fmt.Errorf("%w: %q", ErrBadPoint, s)
	}
	var xyz [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return Point{}, fmt.Errorf("%w: %q", ErrBadPoint, s)
		}
		xyz[i] = n
	}
	if len(parts) == 3 {
		return Pt3(xyz[0], xyz[1], xyz[2]), nil
	}
	return Pt(xyz[0], xyz[1]), nil
}

// Column is an alias for X.
func (p Point) Column() int { return p.X }

// Row is an alias for Y.
func (p Point) Row() int { return p.Y }

// String returns "x,y" or "x,y,z". It is the point's canonical identity.
func (p Point) String() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(p.X))
	b.WriteByte(',')
	b.WriteString(strconv.Itoa(p.Y))
	if p.HasZ {
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(p.Z))
	}
	return b.String()
}

// MoveXY shifts the point in the plane, keeping Z.
func (p Point) MoveXY(dx, dy int) Point {
	p.X += dx
	p.Y += dy
	return p
}

// MoveXYZ shifts the point in all three axes. A non-zero dz on a 2D point
// returns ErrMixedDimensions.
func (p Point) MoveXYZ(dx, dy, dz int) (Point, error) {
	if dz != 0 && !p.HasZ {
		return p, fmt.Errorf("%w: can't move %s along z", ErrMixedDimensions, p)
	}
	p = p.MoveXY(dx, dy)
	p.Z += dz
	return p, nil
}

// Move takes steps unit steps in direction d. Vertical directions only
// affect 3D points; on a 2D point they leave the point unchanged.
func (p Point) Move(d Direction, steps int) Point {
	p = p.MoveXY(d.XStep()*steps, d.YStep()*steps)
	if p.HasZ {
		p.Z += d.ZStep() * steps
	}
	return p
}

// Step is Move(d, 1).
func (p Point) Step(d Direction) Point { return p.Move(d, 1) }

// Offset adds the planar components of o.
func (p Point) Offset(o Point) Point { return p.MoveXY(o.X, o.Y) }

// Multiply scales every component by n.
func (p Point) Multiply(n int) Point {
	p.X *= n
	p.Y *= n
	p.Z *= n
	return p
}

// Mirror reflects p through the point around.
func (p Point) Mirror(around Point) Point {
	out := Point{X: 2*around.X - p.X, Y: 2*around.Y - p.Y, HasZ: p.HasZ}
	if p.HasZ {
		out.Z = 2*around.Z - p.Z
	}
	return out
}

// To turns p into a DirectedPoint facing d.
func (p Point) To(d Direction) DirectedPoint { return DirectedPoint{Point: p, Direction: d} }

func (p Point) diffZ(q Point) (int, error) {
	switch {
	case !p.HasZ && !q.HasZ:
		return 0, nil
	case p.HasZ != q.HasZ:
		return 0, fmt.Errorf("%w: %s and %s", ErrMixedDimensions, p, q)
	}
	return p.Z - q.Z, nil
}

// ManhattanDistance is |dx|+|dy|(+|dz|).
func (p Point) ManhattanDistance(q Point) (int, error) {
	dz, err := p.diffZ(q)
	if err != nil {
		return 0, err
	}
	return abs(p.X-q.X) + abs(p.Y-q.Y) + abs(dz), nil
}

// Distance is the euclidean distance between p and q.
func (p Point) Distance(q Point) (float64, error) {
	dz, err := p.diffZ(q)
	if err != nil {
		return 0, err
	}
	dx, dy := float64(p.X-q.X), float64(p.Y-q.Y)
	return math.Sqrt(dx*dx + dy*dy + float64(dz*dz)), nil
}

// Bounds is an inclusive axis-aligned box. Z bounds apply to 3D points only.
type Bounds struct {
	MinX, MaxX int
	MinY, MaxY int
	MinZ, MaxZ int
}

// Within reports whether p lies inside b (inclusive).
func (p Point) Within(b Bounds) bool {
	if p.X < b.MinX || p.X > b.MaxX || p.Y < b.MinY || p.Y > b.MaxY {
		return false
	}
	return !p.HasZ || (p.Z >= b.MinZ && p.Z <= b.MaxZ)
}

// Normalize wraps p into b as if b's edges were glued together.
func (p Point) Normalize(b Bounds) Point {
	if p.Within(b) {
		return p
	}
	p.X = wrap(p.X, b.MinX, b.MaxX)
	p.Y = wrap(p.Y, b.MinY, b.MaxY)
	if p.HasZ {
		p.Z = wrap(p.Z, b.MinZ, b.MaxZ)
	}
	return p
}

func wrap(v, lo, hi int) int {
	span := hi - lo + 1
	n := (v - lo) % span
	if n < 0 {
		n += span
	}
	return lo + n
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
