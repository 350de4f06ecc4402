// Package grid models words placed on an unbounded integer grid.
package grid

import (
	"fmt"
	"math"
	"strings"
)

type Point struct {
	X, Y int
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

type Size struct {
	Width, Height int
}

type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Unit is the one-cell step along o.
func (o Orientation) Unit() Point {
	if o == Vertical {
		return Point{0, 1}
	}
	return Point{1, 0}
}

// At returns the letter occupying p, scanning every cell of every word.
// The second return value is false when no word covers p.
func At(words []*Word, p Point) (rune, bool) {
	for _, w := range words {
		for i, c := range w.cells {
			if c == p {
				return w.letters[i], true
			}
		}
	}
	return 0, false
}

// Bounds returns the smallest and largest coordinates covered by words.
func Bounds(words []*Word) (lo, hi Point) {
	lo = Point{math.MaxInt, math.MaxInt}
	hi = Point{math.MinInt, math.MinInt}
	for _, w := range words {
		for _, c := range w.cells {
			lo.X = min(lo.X, c.X)
			lo.Y = min(lo.Y, c.Y)
			hi.X = max(hi.X, c.X)
			hi.Y = max(hi.Y, c.Y)
		}
	}
	return lo, hi
}

// Normalize shifts every word so the smallest x and y become 0 and
// returns the size of the resulting bounding box.
func Normalize(words []*Word) Size {
	if len(words) == 0 {
		return Size{}
	}
	lo, hi := Bounds(words)
	delta := Point{-lo.X, -lo.Y}
	for _, w := range words {
		w.moveBy(delta)
	}
	return Size{hi.X - lo.X + 1, hi.Y - lo.Y + 1}
}

// Letters flattens words into a cell map.
func Letters(words []*Word) map[Point]rune {
	cells := make(map[Point]rune)
	for _, w := range words {
		for i, c := range w.cells {
			cells[c] = w.letters[i]
		}
	}
	return cells
}

// Repr draws a normalized cell map as text, one row per line, with '.'
// for empty cells.
func Repr(cells map[Point]rune, size Size) string {
	lines := make([]string, size.Height)
	row := make([]rune, size.Width)
	for y := range size.Height {
		for x := range size.Width {
			if r, ok := cells[Point{x, y}]; ok {
				row[x] = r
			} else {
				row[x] = '.'
			}
		}
		lines[y] = string(row)
	}
	return strings.Join(lines, "\n")
}
