package pattern

import "github.com/domino14/anagrid/internal/grid"

// twistyStep places a word across the one placed by the previous step.
// Step 0 picks an anchor on the vertical line below the cursor and lays a
// horizontal word through it; step 1 is the mirror image.
func (p *Pattern) twistyStep(i int) *grid.Word {
	if i == 0 {
		return p.searchFreeSpan(grid.Vertical, grid.Horizontal)
	}
	return p.searchFreeSpan(grid.Horizontal, grid.Vertical)
}

// searchFreeSpan tries anchors along the line from the cursor in the
// across direction, in random order. For each anchor it measures how far a
// word in orientation o could extend before it would touch another word
// (checking the anchor's row or column and both neighbours), then places a
// word in the free span if one fits and the dictionary has a match.
func (p *Pattern) searchFreeSpan(across, o grid.Orientation) *grid.Word {
	l := p.length
	step := across.Unit()
	unit := o.Unit()

	anchors := make([]grid.Point, 0, l+1)
	pos := p.cursor
	for range l + 1 {
		anchors = append(anchors, pos)
		pos = pos.Add(step)
	}

	for len(anchors) > 0 {
		n := p.rng.IntN(len(anchors))
		anchor := anchors[n]
		anchors = append(anchors[:n], anchors[n+1:]...)

		hi := p.freeExtent(anchor, unit, step, 1)
		lo := p.freeExtent(anchor, unit, step, -1)

		offset := hi - lo - l
		if offset < 0 {
			continue
		}
		if offset > 0 {
			lo += p.rng.IntN(offset)
		}
		p.cursor = grid.Point{X: anchor.X + lo*unit.X, Y: anchor.Y + lo*unit.Y}
		if w := p.addRandomWord(o); w != nil {
			return w
		}
	}
	return nil
}

// freeExtent walks away from anchor along unit in direction dir (+1 or -1)
// and returns the signed offset of the furthest cell a word may reach. A
// word may extend l cells when nothing is in the way; a filled cell at
// distance d, or beside that cell, pulls the limit back to d-2.
func (p *Pattern) freeExtent(anchor, unit, side grid.Point, dir int) int {
	l := p.length
	for d := 1; d <= l; d++ {
		along := grid.Point{X: anchor.X + dir*d*unit.X, Y: anchor.Y + dir*d*unit.Y}
		for k := -1; k <= 1; k++ {
			test := grid.Point{X: along.X + k*side.X, Y: along.Y + k*side.Y}
			if _, filled := grid.At(p.solution, test); filled {
				return dir * (d - 2)
			}
		}
	}
	return dir * l
}
