package geom

// DirectedPoint is a Point with a facing. As a perimeter edge it means
// "the boundary on the Direction side of Point".
type DirectedPoint struct {
	Point
	Direction Direction
}

// TurnLeft keeps the position and rotates the facing 90° counter-clockwise.
func (dp DirectedPoint) TurnLeft() DirectedPoint {
	dp.Direction = dp.Direction.TurnLeft()
	return dp
}

// TurnRight keeps the position and rotates the facing 90° clockwise.
func (dp DirectedPoint) TurnRight() DirectedPoint {
	dp.Direction = dp.Direction.TurnRight()
	return dp
}

// TurnAround keeps the position and reverses the facing.
func (dp DirectedPoint) TurnAround() DirectedPoint {
	dp.Direction = dp.Direction.TurnAround()
	return dp
}

// Forward moves steps along the current facing.
func (dp DirectedPoint) Forward(steps int) DirectedPoint {
	dp.Point = dp.Point.Move(dp.Direction, steps)
	return dp
}

// Shift moves the position in direction d without changing the facing.
func (dp DirectedPoint) Shift(d Direction) DirectedPoint {
	dp.Point = dp.Point.Step(d)
	return dp
}

// String renders "x,y facing north".
func (dp DirectedPoint) String() string {
	return dp.Point.String() + " facing " + dp.Direction.String()
}
