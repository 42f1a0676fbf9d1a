// Package geom holds the coordinate primitives every other gridkit package
// is built on: Point, Direction and DirectedPoint.
//
// All three are small comparable values. Operations never mutate; they
// return new values, so Points can be used freely as map keys.
//
// Coordinate convention (screen style):
//
//	X = column, growing east
//	Y = row,    growing south
//	Z = height, growing up (optional)
//
//	   NW  N  NE
//	     \ | /
//	   W - · - E
//	     / | \
//	   SW  S  SE
//
// Point.String() ("x,y" or "x,y,z") is the canonical identity used as a
// vertex ID by gridgraph.
package geom
