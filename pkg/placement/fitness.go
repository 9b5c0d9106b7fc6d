package placement

import (
	"math"

	"github.com/rehmanul/CAD-Analysis/pkg/geo"
	"github.com/rehmanul/CAD-Analysis/pkg/plan"
)

// evaluator scores configurations against a fixed set of usable areas.
// It is read-only after construction, so evaluations may run in parallel.
type evaluator struct {
	areas     []plan.UsableArea
	totalArea float64
	opts      Options
}

func newEvaluator(areas []plan.UsableArea, opts Options) *evaluator {
	total := 0.0
	for _, a := range areas {
		total += a.Bounds.Area()
	}
	return &evaluator{areas: areas, totalArea: total, opts: opts}
}

// fitness is the weighted sum of the five scoring components, each
// capped to [0,1]. The result is in [0,1].
func (e *evaluator) fitness(g genome) float64 {
	if len(g) == 0 {
		return 0
	}
	w := e.opts.Weights
	totalW := w.Utilization + w.Accessibility + w.Clearance + w.Regularity + w.Proximity
	if totalW < geo.Epsilon {
		return 0
	}
	score := w.Utilization*e.utilization(g) +
		w.Accessibility*e.accessibility(g) +
		w.Clearance*e.clearanceScore(g) +
		w.Regularity*e.regularity(g) +
		w.Proximity*e.proximity(g)
	return score / totalW
}

// utilization is placed area over usable area, capped at 1.
func (e *evaluator) utilization(g genome) float64 {
	if e.totalArea < geo.Epsilon {
		return 0
	}
	placed := 0.0
	for _, b := range g {
		placed += b.width * b.height
	}
	return math.Min(1, placed/e.totalArea)
}

// accessibility is the fraction of blocks with at least two sides clear
// by the access clearance.
func (e *evaluator) accessibility(g genome) float64 {
	accessible := 0
	for i := range g {
		if e.clearSides(g, i) >= 2 {
			accessible++
		}
	}
	return float64(accessible) / float64(len(g))
}

// clearSides counts sides of block i with a clear approach: the probe
// strip beside the side stays inside the block's usable area and
// intersects no other block.
func (e *evaluator) clearSides(g genome, i int) int {
	b := g[i]
	box := b.bounds()
	c := e.opts.AccessClearance
	area := e.areas[b.areaIdx].Bounds

	probes := [4]geo.Rect{
		{Min: geo.Pt(box.Min.X - c, box.Min.Y), Max: geo.Pt(box.Min.X, box.Max.Y)}, // left
		{Min: geo.Pt(box.Max.X, box.Min.Y), Max: geo.Pt(box.Max.X + c, box.Max.Y)}, // right
		{Min: geo.Pt(box.Min.X, box.Min.Y - c), Max: geo.Pt(box.Max.X, box.Min.Y)}, // bottom
		{Min: geo.Pt(box.Min.X, box.Max.Y), Max: geo.Pt(box.Max.X, box.Max.Y + c)}, // top
	}

	clear := 0
	for _, probe := range probes {
		if !area.ContainsRect(probe) {
			continue
		}
		blocked := false
		for j := range g {
			if j == i {
				continue
			}
			if probe.Intersects(g[j].bounds()) {
				blocked = true
				break
			}
		}
		if !blocked {
			clear++
		}
	}
	return clear
}

// clearanceScore is the mean pairwise gap-to-required-clearance ratio,
// each ratio capped at 1.
func (e *evaluator) clearanceScore(g genome) float64 {
	if len(g) < 2 {
		return 1
	}
	required := e.opts.AccessClearance
	sum, pairs := 0.0, 0
	for i := 0; i < len(g); i++ {
		bi := g[i].bounds()
		for j := i + 1; j < len(g); j++ {
			gap := bi.GapTo(g[j].bounds())
			sum += math.Min(1, gap/required)
			pairs++
		}
	}
	return sum / float64(pairs)
}

// regularity rewards shared row/column alignment and penalizes size
// variance across the configuration.
func (e *evaluator) regularity(g genome) float64 {
	if len(g) < 2 {
		return 1
	}
	tol := e.opts.AlignTolerance
	aligned, pairs := 0, 0
	for i := 0; i < len(g); i++ {
		for j := i + 1; j < len(g); j++ {
			if math.Abs(g[i].center.Y-g[j].center.Y) <= tol ||
				math.Abs(g[i].center.X-g[j].center.X) <= tol {
				aligned++
			}
			pairs++
		}
	}
	alignScore := float64(aligned) / float64(pairs)

	mean := 0.0
	for _, b := range g {
		mean += b.width * b.height
	}
	mean /= float64(len(g))
	variance := 0.0
	for _, b := range g {
		d := b.width*b.height - mean
		variance += d * d
	}
	variance /= float64(len(g))
	sizeScore := 0.0
	if mean > geo.Epsilon {
		sizeScore = math.Max(0, 1-math.Sqrt(variance)/mean)
	}

	return 0.5*alignScore + 0.5*sizeScore
}

// proximity rewards nearest-neighbor gaps close to the optimum spacing.
func (e *evaluator) proximity(g genome) float64 {
	if len(g) < 2 {
		return 1
	}
	opt := e.opts.ProximityOptimum
	sum := 0.0
	for i := range g {
		bi := g[i].bounds()
		nearest := math.MaxFloat64
		for j := range g {
			if j == i {
				continue
			}
			if gap := bi.GapTo(g[j].bounds()); gap < nearest {
				nearest = gap
			}
		}
		sum += math.Max(0, 1-math.Abs(nearest-opt)/opt)
	}
	return sum / float64(len(g))
}
