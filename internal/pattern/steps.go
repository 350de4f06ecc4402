package pattern

import "github.com/domino14/anagrid/internal/grid"

// Step describes step i of a fixed-geometry variant: the orientation of the
// word placed at the cursor, and where the cursor goes once that word is
// down. l is the internal word length (letters - 1). ok is false for
// Twisty, whose placement is found by searching the grid instead.
func Step(v Variant, i int, cur grid.Point, l int) (o grid.Orientation, next grid.Point, ok bool) {
	h, vert := grid.Horizontal, grid.Vertical
	switch v {
	case Chain:
		switch i {
		case 0:
			return vert, cur, true
		case 1:
			return h, cur.Add(grid.Point{X: l}), true
		case 2:
			return vert, cur.Add(grid.Point{X: -l, Y: l}), true
		case 3:
			return h, cur.Add(grid.Point{X: l - 1, Y: -l / 2}), true
		case 4:
			return h, grid.Point{X: cur.X + l - 1, Y: 0}, true
		}
	case Fence:
		switch i {
		case 0:
			return vert, cur.Add(grid.Point{Y: 1}), true
		case 1:
			return h, cur.Add(grid.Point{Y: 2}), true
		case 2:
			return h, cur.Add(grid.Point{X: l, Y: -3}), true
		case 3:
			return vert, cur, true
		case 4:
			return h, cur.Add(grid.Point{Y: 2}), true
		case 5:
			return h, cur.Add(grid.Point{X: l, Y: -2}), true
		}
	case Rings:
		switch i {
		case 0:
			return h, cur, true
		case 1:
			return vert, cur.Add(grid.Point{Y: l}), true
		case 2:
			return h, cur.Add(grid.Point{X: l, Y: -l}), true
		case 3:
			y := 0
			if cur.Y == 0 {
				y = l - 2
			}
			return vert, grid.Point{X: cur.X - 2, Y: y}, true
		}
	case Stairs:
		switch i {
		case 0:
			return h, cur.Add(grid.Point{X: l - 1}), true
		case 1:
			return vert, cur.Add(grid.Point{Y: l}), true
		}
	case Wave:
		switch i {
		case 0:
			return h, cur.Add(grid.Point{X: l}), true
		case 1:
			return vert, cur.Add(grid.Point{Y: l}), true
		case 2:
			return h, cur.Add(grid.Point{X: l, Y: -l}), true
		case 3:
			return vert, cur, true
		}
	}
	return h, cur, false
}
