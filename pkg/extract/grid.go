package extract

import "github.com/rehmanul/CAD-Analysis/pkg/geo"

// occupancyGrid is a boolean raster over the floor plan bounds.
// A true cell is occupied by an obstacle or its clearance zone.
type occupancyGrid struct {
	origin geo.Point2D
	res    float64
	cols   int
	rows   int
	cells  []bool
}

func newOccupancyGrid(bounds geo.Rect, res float64) *occupancyGrid {
	cols := int(bounds.Width()/res) + 1
	rows := int(bounds.Height()/res) + 1
	return &occupancyGrid{
		origin: bounds.Min,
		res:    res,
		cols:   cols,
		rows:   rows,
		cells:  make([]bool, cols*rows),
	}
}

func (g *occupancyGrid) idx(col, row int) int {
	return row*g.cols + col
}

func (g *occupancyGrid) occupied(col, row int) bool {
	return g.cells[g.idx(col, row)]
}

func (g *occupancyGrid) set(col, row int) {
	g.cells[g.idx(col, row)] = true
}

// cellCenter returns the world-space center of a cell.
func (g *occupancyGrid) cellCenter(col, row int) geo.Point2D {
	return geo.Pt(
		g.origin.X+(float64(col)+0.5)*g.res,
		g.origin.Y+(float64(row)+0.5)*g.res,
	)
}

// cellRange returns the grid cells covered by a world-space rectangle,
// clamped to the grid.
func (g *occupancyGrid) cellRange(r geo.Rect) (c0, r0, c1, r1 int) {
	c0 = int((r.Min.X - g.origin.X) / g.res)
	r0 = int((r.Min.Y - g.origin.Y) / g.res)
	c1 = int((r.Max.X - g.origin.X) / g.res)
	r1 = int((r.Max.Y - g.origin.Y) / g.res)
	if c0 < 0 {
		c0 = 0
	}
	if r0 < 0 {
		r0 = 0
	}
	if c1 >= g.cols {
		c1 = g.cols - 1
	}
	if r1 >= g.rows {
		r1 = g.rows - 1
	}
	return c0, r0, c1, r1
}

// markRect occupies every cell whose center lies inside the rectangle.
func (g *occupancyGrid) markRect(r geo.Rect) {
	c0, r0, c1, r1 := g.cellRange(r)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if r.Contains(g.cellCenter(col, row)) {
				g.set(col, row)
			}
		}
	}
}

// markDisk occupies every cell whose center lies within radius of c.
func (g *occupancyGrid) markDisk(center geo.Point2D, radius float64) {
	box := geo.RectFromCenter(center, radius*2, radius*2)
	c0, r0, c1, r1 := g.cellRange(box)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if g.cellCenter(col, row).Distance(center) <= radius {
				g.set(col, row)
			}
		}
	}
}

// markThickSegment occupies every cell whose center lies within
// halfWidth of the segment centerline.
func (g *occupancyGrid) markThickSegment(s geo.Segment, halfWidth float64) {
	box := s.Bounds().Expand(halfWidth + g.res)
	c0, r0, c1, r1 := g.cellRange(box)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if s.DistanceToPoint(g.cellCenter(col, row)) <= halfWidth {
				g.set(col, row)
			}
		}
	}
}

// dilate occupies every free cell within radiusCells (Chebyshev) of an
// occupied cell. This is how walkway clearance is enforced implicitly.
func (g *occupancyGrid) dilate(radiusCells int) {
	if radiusCells <= 0 {
		return
	}
	out := make([]bool, len(g.cells))
	copy(out, g.cells)
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			if !g.occupied(col, row) {
				continue
			}
			r0, r1 := row-radiusCells, row+radiusCells
			c0, c1 := col-radiusCells, col+radiusCells
			if r0 < 0 {
				r0 = 0
			}
			if c0 < 0 {
				c0 = 0
			}
			if r1 >= g.rows {
				r1 = g.rows - 1
			}
			if c1 >= g.cols {
				c1 = g.cols - 1
			}
			for rr := r0; rr <= r1; rr++ {
				for cc := c0; cc <= c1; cc++ {
					out[rr*g.cols+cc] = true
				}
			}
		}
	}
	g.cells = out
}

// component is one 8-connected region of free cells.
type component struct {
	minCol, minRow int
	maxCol, maxRow int
	cellCount      int
}

// floodFillFree finds all 8-connected components of free cells.
// Scan order is row-major, so the result order is deterministic.
func (g *occupancyGrid) floodFillFree() []component {
	visited := make([]bool, len(g.cells))
	var comps []component

	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			i := g.idx(col, row)
			if g.cells[i] || visited[i] {
				continue
			}
			comp := component{minCol: col, minRow: row, maxCol: col, maxRow: row}
			stack := []int{i}
			visited[i] = true
			for len(stack) > 0 {
				cur := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				cc, cr := cur%g.cols, cur/g.cols
				comp.cellCount++
				if cc < comp.minCol {
					comp.minCol = cc
				}
				if cc > comp.maxCol {
					comp.maxCol = cc
				}
				if cr < comp.minRow {
					comp.minRow = cr
				}
				if cr > comp.maxRow {
					comp.maxRow = cr
				}
				for dr := -1; dr <= 1; dr++ {
					for dc := -1; dc <= 1; dc++ {
						if dr == 0 && dc == 0 {
							continue
						}
						nc, nr := cc+dc, cr+dr
						if nc < 0 || nr < 0 || nc >= g.cols || nr >= g.rows {
							continue
						}
						ni := g.idx(nc, nr)
						if g.cells[ni] || visited[ni] {
							continue
						}
						visited[ni] = true
						stack = append(stack, ni)
					}
				}
			}
			comps = append(comps, comp)
		}
	}
	return comps
}

// bounds returns the world-space bounding rectangle of a component.
func (g *occupancyGrid) bounds(c component) geo.Rect {
	return geo.NewRect(
		geo.Pt(g.origin.X+float64(c.minCol)*g.res, g.origin.Y+float64(c.minRow)*g.res),
		geo.Pt(g.origin.X+float64(c.maxCol+1)*g.res, g.origin.Y+float64(c.maxRow+1)*g.res),
	)
}
