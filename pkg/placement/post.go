package placement

import (
	"fmt"
	"sort"

	"github.com/rehmanul/CAD-Analysis/pkg/geo"
	"github.com/rehmanul/CAD-Analysis/pkg/plan"
)

// postProcess makes the winning configuration physically valid:
// overlapping blocks are removed in stable order, centers snap to the
// position grid, and spring relaxation nudges spacing toward the
// proximity optimum.
func postProcess(g genome, areas []plan.UsableArea, opts Options) genome {
	g = removeOverlaps(g)

	for i := range g {
		g[i].center = g[i].center.SnapTo(opts.SnapGrid)
		if c, ok := clampIntoArea(g[i], areas[g[i].areaIdx].Bounds); ok {
			g[i].center = c
		}
	}
	// Snapping can push neighbors into each other; clean up again.
	g = removeOverlaps(g)

	relax(g, areas, opts)
	return g
}

// removeOverlaps accepts blocks in stable scan order, dropping any
// block whose box intersects a previously accepted one.
func removeOverlaps(g genome) genome {
	ordered := g.clone()
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].areaIdx != ordered[j].areaIdx {
			return ordered[i].areaIdx < ordered[j].areaIdx
		}
		if ordered[i].center.Y != ordered[j].center.Y {
			return ordered[i].center.Y < ordered[j].center.Y
		}
		return ordered[i].center.X < ordered[j].center.X
	})

	accepted := make(genome, 0, len(ordered))
	for _, cand := range ordered {
		box := cand.bounds()
		overlap := false
		for _, a := range accepted {
			if box.Intersects(a.bounds()) {
				overlap = true
				break
			}
		}
		if !overlap {
			accepted = append(accepted, cand)
		}
	}
	return accepted
}

// relaxDamping scales the spring displacement per pass to avoid
// oscillation between neighboring blocks.
const relaxDamping = 0.15

// relax applies pairwise spring forces pulling neighbor gaps toward the
// proximity optimum. Moves that would leave the usable area or create
// an overlap are skipped; iteration order is stable, so the result is
// deterministic.
func relax(g genome, areas []plan.UsableArea, opts Options) {
	opt := opts.ProximityOptimum
	for pass := 0; pass < opts.RelaxationPasses; pass++ {
		for i := range g {
			force := geo.Point2D{}
			bi := g[i].bounds()
			for j := range g {
				if j == i || g[j].areaIdx != g[i].areaIdx {
					continue
				}
				gap := bi.GapTo(g[j].bounds())
				if gap > opt*2 {
					continue
				}
				dir := g[i].center.Sub(g[j].center).Normalize()
				if dir == geo.Origin {
					continue // coincident centers, no direction to push
				}
				// Positive when too close: push apart. Negative when
				// too far: pull together.
				force = force.Add(dir.Scale((opt - gap) * relaxDamping))
			}
			if force.Length() < geo.Epsilon {
				continue
			}
			if force.Length() > opts.MutationStep {
				force = force.Normalize().Scale(opts.MutationStep)
			}

			moved := g[i]
			moved.center = g[i].center.Add(force).SnapTo(opts.SnapGrid)
			c, ok := clampIntoArea(moved, areas[moved.areaIdx].Bounds)
			if !ok {
				continue
			}
			moved.center = c
			box := moved.bounds()
			collides := false
			for j := range g {
				if j == i {
					continue
				}
				if box.Intersects(g[j].bounds()) {
					collides = true
					break
				}
			}
			if !collides {
				g[i] = moved
			}
		}
	}
}

// toBlocks converts the final configuration into placement blocks with
// stable IDs and computed accessibility flags.
func toBlocks(g genome, eval *evaluator, opts Options) []plan.PlacementBlock {
	blocks := make([]plan.PlacementBlock, 0, len(g))
	for i, b := range g {
		blocks = append(blocks, plan.PlacementBlock{
			ID:         blockID(i),
			Position:   b.center,
			Width:      b.width,
			Height:     b.height,
			Area:       b.width * b.height,
			SizeClass:  b.class,
			Clearance:  opts.AccessClearance,
			Accessible: eval.clearSides(g, i) >= 2,
		})
	}
	return blocks
}

func blockID(i int) string {
	return fmt.Sprintf("block_%03d", i)
}
