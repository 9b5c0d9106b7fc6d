package pathway

import (
	"github.com/rehmanul/CAD-Analysis/pkg/geo"
	"github.com/rehmanul/CAD-Analysis/pkg/plan"
)

// compact prunes and merges the network: secondary pathways that
// spatially overlap a main spine are dropped, remaining mutually
// overlapping pathways merge into one, and every surviving path is
// simplified. The segment-count ceiling bounds the whole pass.
func compact(pathways []plan.Pathway, cfg Config) []plan.Pathway {
	if len(pathways) > cfg.MaxSegments {
		pathways = pathways[:cfg.MaxSegments]
	}

	// Drop secondaries shadowed by a main spine.
	kept := pathways[:0:0]
	for _, p := range pathways {
		if p.Kind == plan.PathwaySecondary && overlapsAnyMain(p, pathways) {
			continue
		}
		kept = append(kept, p)
	}

	// Merge mutually overlapping survivors. Each pathway is folded into
	// the first earlier pathway it overlaps.
	merged := make([]plan.Pathway, 0, len(kept))
	for _, p := range kept {
		target := -1
		for i := range merged {
			if pathwaysOverlap(merged[i], p) {
				target = i
				break
			}
		}
		if target < 0 {
			merged = append(merged, p)
			continue
		}
		merged[target] = mergePathways(merged[target], p)
	}

	for i := range merged {
		merged[i].Path = geo.SimplifyPath(merged[i].Path, cfg.SimplifyTolerance)
	}
	return merged
}

func overlapsAnyMain(p plan.Pathway, pathways []plan.Pathway) bool {
	for i := range pathways {
		if pathways[i].Kind != plan.PathwayMain {
			continue
		}
		if pathwaysOverlap(p, pathways[i]) {
			return true
		}
	}
	return false
}

// pathwaysOverlap reports spatial overlap: any pair of path points
// closer than the average of the two widths.
func pathwaysOverlap(a, b plan.Pathway) bool {
	threshold := (a.Width + b.Width) / 2
	for _, pa := range a.Path {
		for _, pb := range b.Path {
			if pa.Distance(pb) < threshold {
				return true
			}
		}
	}
	return false
}

// mergePathways folds b into a: the longer polyline becomes the merged
// path, widths take the maximum, and the result is main if either
// contributor was.
func mergePathways(a, b plan.Pathway) plan.Pathway {
	out := a
	if geo.PathLength(b.Path) > geo.PathLength(a.Path) {
		out.Path = append([]geo.Point2D{}, b.Path...)
	}
	if b.Width > out.Width {
		out.Width = b.Width
	}
	if b.Kind == plan.PathwayMain {
		out.Kind = plan.PathwayMain
	}
	return out
}
