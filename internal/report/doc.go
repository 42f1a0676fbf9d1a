// Package report computes the reports behind the gridkit commands.
//
// Regions partitions a character grid into same-letter regions and prices
// their fences two ways: area × perimeter and area × number of sides.
// Maze finds the cheapest walk from a start marker to an end marker, either
// as plain steps on the grid graph or, when a turn cost is configured, on a
// (tile, facing) state graph. Outline plots the boundary of one region.
//
// Every report renders as text or YAML through Render.
package report
