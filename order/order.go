package order

import "fmt"

// GridLocation is a cell address with the origin at the top-left corner.
type GridLocation struct {
	X, Y int
}

// String formats the location as "(x,y)".
func (l GridLocation) String() string {
	return fmt.Sprintf("(%d,%d)", l.X, l.Y)
}

// CompareLocations orders locations by ascending Y, then ascending X.
// It returns a negative number when a precedes b, zero when equal and a
// positive number otherwise.
func CompareLocations(a, b GridLocation) int {
	if a.Y != b.Y {
		return a.Y - b.Y
	}

	return a.X - b.X
}

// SeedCandidate is a potential seed for a path. CoarseRow counts eligible
// scanlines: the seed's row in the grid is CoarseRow*G.
type SeedCandidate struct {
	Column    int
	CoarseRow int
	Strength  int
}

// String formats the candidate as "(column,coarseRow,strength)".
func (s SeedCandidate) String() string {
	return fmt.Sprintf("(%d,%d,%d)", s.Column, s.CoarseRow, s.Strength)
}

// CompareSeeds orders candidates strongest first; ties go to the smaller
// coarse row, then to the smaller column.
func CompareSeeds(a, b SeedCandidate) int {
	if a.Strength != b.Strength {
		if a.Strength > b.Strength {
			return -1
		}
		return 1
	}
	if a.CoarseRow != b.CoarseRow {
		return a.CoarseRow - b.CoarseRow
	}

	return a.Column - b.Column
}
