// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = " "
)

// Int is a dense W×H grid of ints stored x-major (offset = x*h + y).
type Int struct {
	w, h int
	data []int
}

// NewInt allocates a zero-filled w×h grid.
// Returns ErrBadShape when w<=0 or h<=0.
func NewInt(w, h int) (*Int, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrBadShape
	}

	return &Int{w: w, h: h, data: make([]int, w*h)}, nil
}

// FromColumns builds a grid from x-major input: cols[x][y].
// It deep-copies the input.
func FromColumns(cols [][]int) (*Int, error) {
	if len(cols) == 0 || len(cols[0]) == 0 {
		return nil, ErrBadShape
	}
	w, h := len(cols), len(cols[0])
	for _, col := range cols {
		if len(col) != h {
			return nil, ErrNonRectangular
		}
	}
	g, _ := NewInt(w, h)
	for x := 0; x < w; x++ {
		copy(g.data[x*h:(x+1)*h], cols[x])
	}

	return g, nil
}

// FromRows builds a grid from row-major input: rows[y][x], the way a
// picture is usually written down in tests and examples.
func FromRows(rows [][]int) (*Int, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadShape
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g, _ := NewInt(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.data[x*h+y] = rows[y][x]
		}
	}

	return g, nil
}

// Width returns the number of columns.
func (g *Int) Width() int { return g.w }

// Height returns the number of rows.
func (g *Int) Height() int { return g.h }

// InBounds reports whether (x,y) lies inside the grid.
func (g *Int) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// At returns the value at (x,y) or ErrOutOfRange.
func (g *Int) At(x, y int) (int, error) {
	if !g.InBounds(x, y) {
		return 0, gridErrorf("Int.At", x, y, ErrOutOfRange)
	}

	return g.data[x*g.h+y], nil
}

// Set stores v at (x,y) or returns ErrOutOfRange.
func (g *Int) Set(x, y, v int) error {
	if !g.InBounds(x, y) {
		return gridErrorf("Int.Set", x, y, ErrOutOfRange)
	}
	g.data[x*g.h+y] = v

	return nil
}

// Get is the unchecked form of At for hot loops. Callers guarantee bounds.
func (g *Int) Get(x, y int) int { return g.data[x*g.h+y] }

// Put is the unchecked form of Set for hot loops. Callers guarantee bounds.
func (g *Int) Put(x, y, v int) { g.data[x*g.h+y] = v }

// Fill sets every cell to v.
func (g *Int) Fill(v int) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Min returns the smallest stored value.
func (g *Int) Min() int {
	m := g.data[0]
	for _, v := range g.data[1:] {
		if v < m {
			m = v
		}
	}

	return m
}

// Clone returns an independent deep copy.
func (g *Int) Clone() *Int {
	data := make([]int, len(g.data))
	copy(data, g.data)

	return &Int{w: g.w, h: g.h, data: data}
}

// Transpose returns a new h×w grid t with t(y,x) == g(x,y).
func (g *Int) Transpose() *Int {
	t := &Int{w: g.h, h: g.w, data: make([]int, len(g.data))}
	for x := 0; x < g.w; x++ {
		for y := 0; y < g.h; y++ {
			t.data[y*t.h+x] = g.data[x*g.h+y]
		}
	}

	return t
}

// Rows returns a row-major copy: rows[y][x].
func (g *Int) Rows() [][]int {
	rows := make([][]int, g.h)
	for y := 0; y < g.h; y++ {
		rows[y] = make([]int, g.w)
		for x := 0; x < g.w; x++ {
			rows[y][x] = g.data[x*g.h+y]
		}
	}

	return rows
}

// Equal reports whether both grids have the same shape and contents.
func (g *Int) Equal(o *Int) bool {
	if o == nil || g.w != o.w || g.h != o.h {
		return false
	}
	for i, v := range g.data {
		if o.data[i] != v {
			return false
		}
	}

	return true
}

// String renders the grid row by row.
func (g *Int) String() string {
	var sb strings.Builder
	for y := 0; y < g.h; y++ {
		sb.WriteString(_fmtRowOpen)
		for x := 0; x < g.w; x++ {
			if x > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%d", g.data[x*g.h+y])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// Bool is a dense W×H grid of flags with the same layout as Int.
type Bool struct {
	w, h int
	data []bool
}

// NewBool allocates an all-false w×h grid.
func NewBool(w, h int) (*Bool, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrBadShape
	}

	return &Bool{w: w, h: h, data: make([]bool, w*h)}, nil
}

// Width returns the number of columns.
func (g *Bool) Width() int { return g.w }

// Height returns the number of rows.
func (g *Bool) Height() int { return g.h }

// InBounds reports whether (x,y) lies inside the grid.
func (g *Bool) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// At returns the flag at (x,y) or ErrOutOfRange.
func (g *Bool) At(x, y int) (bool, error) {
	if !g.InBounds(x, y) {
		return false, gridErrorf("Bool.At", x, y, ErrOutOfRange)
	}

	return g.data[x*g.h+y], nil
}

// Set stores v at (x,y) or returns ErrOutOfRange.
func (g *Bool) Set(x, y int, v bool) error {
	if !g.InBounds(x, y) {
		return gridErrorf("Bool.Set", x, y, ErrOutOfRange)
	}
	g.data[x*g.h+y] = v

	return nil
}

// Get is the unchecked form of At.
func (g *Bool) Get(x, y int) bool { return g.data[x*g.h+y] }

// Put is the unchecked form of Set.
func (g *Bool) Put(x, y int, v bool) { g.data[x*g.h+y] = v }

// Clear resets every cell to false.
func (g *Bool) Clear() {
	for i := range g.data {
		g.data[i] = false
	}
}

// Count returns the number of true cells.
func (g *Bool) Count() int {
	n := 0
	for _, v := range g.data {
		if v {
			n++
		}
	}

	return n
}

// Clone returns an independent deep copy.
func (g *Bool) Clone() *Bool {
	data := make([]bool, len(g.data))
	copy(data, g.data)

	return &Bool{w: g.w, h: g.h, data: data}
}

// Transpose returns a new h×w grid t with t(y,x) == g(x,y).
func (g *Bool) Transpose() *Bool {
	t := &Bool{w: g.h, h: g.w, data: make([]bool, len(g.data))}
	for x := 0; x < g.w; x++ {
		for y := 0; y < g.h; y++ {
			t.data[y*t.h+x] = g.data[x*g.h+y]
		}
	}

	return t
}

// Or sets every cell that is true in o. Shapes must match.
func (g *Bool) Or(o *Bool) error {
	if o == nil || g.w != o.w || g.h != o.h {
		return ErrDimensionMismatch
	}
	for i, v := range o.data {
		if v {
			g.data[i] = true
		}
	}

	return nil
}

// Rows returns a row-major copy: rows[y][x].
func (g *Bool) Rows() [][]bool {
	rows := make([][]bool, g.h)
	for y := 0; y < g.h; y++ {
		rows[y] = make([]bool, g.w)
		for x := 0; x < g.w; x++ {
			rows[y][x] = g.data[x*g.h+y]
		}
	}

	return rows
}

// String renders the grid row by row as 0/1 cells.
func (g *Bool) String() string {
	var sb strings.Builder
	for y := 0; y < g.h; y++ {
		sb.WriteString(_fmtRowOpen)
		for x := 0; x < g.w; x++ {
			if x > 0 {
				sb.WriteString(_fmtSep)
			}
			if g.data[x*g.h+y] {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
