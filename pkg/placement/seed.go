package placement

import (
	"math"

	"github.com/rehmanul/CAD-Analysis/pkg/geo"
	"github.com/rehmanul/CAD-Analysis/pkg/plan"
)

// gene is one block of a candidate configuration. The area index ties
// the block to the usable area it must stay inside.
type gene struct {
	areaIdx int
	center  geo.Point2D
	width   float64
	height  float64
	class   plan.SizeClass
}

func (g gene) bounds() geo.Rect {
	return geo.RectFromCenter(g.center, g.width, g.height)
}

// classSpec is the footprint of one block size class.
type classSpec struct {
	class  plan.SizeClass
	width  float64
	height float64
}

// Footprints ordered large to small. Areas: 11.52 m², 8.96 m², 4.8 m².
var classSpecs = []classSpec{
	{plan.SizeLarge, 3200, 3600},
	{plan.SizeMedium, 2800, 3200},
	{plan.SizeSmall, 2000, 2400},
}

// chooseClass picks the largest size class that fits the available cell
// and does not exceed the target density by more than a quarter.
func chooseClass(availW, availH, density float64) (classSpec, bool) {
	for _, cs := range classSpecs {
		if cs.width > availW || cs.height > availH {
			continue
		}
		if cs.width*cs.height > density*1.25 {
			continue
		}
		return cs, true
	}
	// Nothing respects density; fall back to the smallest class that fits.
	smallest := classSpecs[len(classSpecs)-1]
	if smallest.width <= availW && smallest.height <= availH {
		return smallest, true
	}
	return classSpec{}, false
}

// seedArea produces the deterministic seed layout for one usable area.
// The heuristic is chosen by aspect ratio: wide areas get rows, tall
// areas get columns, the rest a grid. Too-small areas seed zero blocks.
func seedArea(areaIdx int, area plan.UsableArea, opts Options) []gene {
	w, h := area.Bounds.Width(), area.Bounds.Height()
	switch {
	case w > 1.5*h:
		return seedRows(areaIdx, area.Bounds, opts)
	case h > 1.5*w:
		return seedColumns(areaIdx, area.Bounds, opts)
	default:
		return seedGrid(areaIdx, area.Bounds, opts)
	}
}

// seedRows tiles horizontal rows of blocks with corridor gaps between
// rows. Blocks within a row are separated by a quarter gap.
func seedRows(areaIdx int, r geo.Rect, opts Options) []gene {
	cs, ok := chooseClass(r.Width(), r.Height(), opts.TargetDensity)
	if !ok {
		return nil
	}
	gap := opts.CorridorGap
	inRow := gap / 4

	rows := tileCount(r.Height(), cs.height, gap)
	cols := tileCount(r.Width(), cs.width, inRow)
	return tile(areaIdx, r, cs, cols, rows, inRow, gap)
}

// seedColumns mirrors seedRows with corridor gaps between columns.
func seedColumns(areaIdx int, r geo.Rect, opts Options) []gene {
	cs, ok := chooseClass(r.Width(), r.Height(), opts.TargetDensity)
	if !ok {
		return nil
	}
	gap := opts.CorridorGap
	inCol := gap / 4

	cols := tileCount(r.Width(), cs.width, gap)
	rows := tileCount(r.Height(), cs.height, inCol)
	return tile(areaIdx, r, cs, cols, rows, gap, inCol)
}

// seedGrid tiles both axes with corridor gaps between cells.
func seedGrid(areaIdx int, r geo.Rect, opts Options) []gene {
	cs, ok := chooseClass(r.Width(), r.Height(), opts.TargetDensity)
	if !ok {
		return nil
	}
	gap := opts.CorridorGap
	cols := tileCount(r.Width(), cs.width, gap)
	rows := tileCount(r.Height(), cs.height, gap)
	return tile(areaIdx, r, cs, cols, rows, gap, gap)
}

// tileCount returns how many blocks of size b fit in extent e with the
// given gap between them.
func tileCount(e, b, gap float64) int {
	if b > e {
		return 0
	}
	return int(math.Floor((e + gap) / (b + gap)))
}

// tile lays out cols × rows blocks centered within the rectangle.
func tile(areaIdx int, r geo.Rect, cs classSpec, cols, rows int, gapX, gapY float64) []gene {
	if cols < 1 || rows < 1 {
		return nil
	}
	usedW := float64(cols)*cs.width + float64(cols-1)*gapX
	usedH := float64(rows)*cs.height + float64(rows-1)*gapY
	offX := r.Min.X + (r.Width()-usedW)/2
	offY := r.Min.Y + (r.Height()-usedH)/2

	genes := make([]gene, 0, cols*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			cx := offX + float64(col)*(cs.width+gapX) + cs.width/2
			cy := offY + float64(row)*(cs.height+gapY) + cs.height/2
			genes = append(genes, gene{
				areaIdx: areaIdx,
				center:  geo.Pt(cx, cy),
				width:   cs.width,
				height:  cs.height,
				class:   cs.class,
			})
		}
	}
	return genes
}

// clampIntoArea moves a block center so its box stays inside the area.
// Returns false if the block cannot fit at all.
func clampIntoArea(g gene, area geo.Rect) (geo.Point2D, bool) {
	if g.width > area.Width() || g.height > area.Height() {
		return g.center, false
	}
	inset := geo.Rect{
		Min: geo.Pt(area.Min.X+g.width/2, area.Min.Y+g.height/2),
		Max: geo.Pt(area.Max.X-g.width/2, area.Max.Y-g.height/2),
	}
	return inset.ClampPoint(g.center), true
}
