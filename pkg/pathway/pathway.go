// Package pathway synthesizes a circulation network connecting placed
// blocks: straight corridors between facing block pairs, main spines
// through block clusters, and connectors for isolated blocks. Every
// candidate segment is validated against walls, restricted areas, and
// buffered block boxes; invalid candidates are dropped without retry,
// which can leave blocks unconnected — a reported outcome, not an error.
package pathway

import (
	"fmt"
	"math"

	"github.com/rehmanul/CAD-Analysis/pkg/geo"
	"github.com/rehmanul/CAD-Analysis/pkg/plan"
	"github.com/rehmanul/CAD-Analysis/pkg/validation"
)

// Generate derives the pathway network for the given blocks.
func Generate(fp *plan.FloorPlan, blocks []plan.PlacementBlock, cfg Config) ([]plan.Pathway, *validation.Report) {
	report := validation.NewReport()
	cfg = cfg.withDefaults()

	if len(blocks) == 0 {
		report.AddInfo(validation.Result{
			Level:   validation.LevelPathway,
			Message: "no blocks to connect; generated 0 pathways",
		})
		return []plan.Pathway{}, report
	}

	idx := buildObstacleIndex(fp, blocks, cfg)

	var pathways []plan.Pathway
	pathways = append(pathways, facingPairs(blocks, idx, cfg)...)
	pathways = append(pathways, spines(blocks, idx, cfg)...)

	var unconnected int
	pathways, unconnected = connectIsolated(blocks, pathways, idx, cfg)

	pathways = compact(pathways, cfg)

	for i := range pathways {
		pathways[i].ID = fmt.Sprintf("pathway_%03d", i)
		pathways[i].Length = geo.PathLength(pathways[i].Path)
		pathways[i].Accessible = cfg.Accessible
	}

	mainCount, secondaryCount := 0, 0
	for _, p := range pathways {
		if p.Kind == plan.PathwayMain {
			mainCount++
		} else {
			secondaryCount++
		}
	}
	report.AddInfo(validation.Result{
		Level: validation.LevelPathway,
		Message: fmt.Sprintf("generated %d pathways (%d main, %d secondary)",
			len(pathways), mainCount, secondaryCount),
	})
	if unconnected > 0 {
		report.AddWarning(validation.Result{
			Level:       validation.LevelPathway,
			Message:     fmt.Sprintf("%d blocks left unconnected", unconnected),
			ActualValue: unconnected,
		})
	}

	return pathways, report
}

// facingPairs builds a straight corridor between every facing block
// pair: aligned within the cross-axis tolerance, separated by a gap the
// corridor fits in, with enough aligned overlap for the corridor swath.
func facingPairs(blocks []plan.PlacementBlock, idx *obstacleIndex, cfg Config) []plan.Pathway {
	var out []plan.Pathway
	for i := 0; i < len(blocks); i++ {
		for j := i + 1; j < len(blocks); j++ {
			seg, ok := facingSegment(blocks[i], blocks[j], cfg)
			if !ok {
				continue
			}
			exclude := map[string]bool{blocks[i].ID: true, blocks[j].ID: true}
			if !idx.validSegment(seg, exclude) {
				continue
			}
			out = append(out, plan.Pathway{
				Path:  []geo.Point2D{seg.A, seg.B},
				Width: cfg.Width,
				Kind:  plan.PathwaySecondary,
			})
		}
	}
	return out
}

// facingSegment classifies a pair as horizontally or vertically facing
// and returns the edge-to-edge corridor segment. Coincident blocks have
// no facing relationship.
func facingSegment(a, b plan.PlacementBlock, cfg Config) (geo.Segment, bool) {
	ab, bb := a.Bounds(), b.Bounds()
	if ab.Intersects(bb) {
		return geo.Segment{}, false
	}

	// Horizontal: aligned in Y, separated in X.
	if math.Abs(a.Position.Y-b.Position.Y) <= cfg.CrossAxisTolerance {
		overlap := math.Min(ab.Max.Y, bb.Max.Y) - math.Max(ab.Min.Y, bb.Min.Y)
		gap := math.Max(bb.Min.X-ab.Max.X, ab.Min.X-bb.Max.X)
		if overlap >= cfg.Width+cfg.ClearMargin && gap >= cfg.MinFacingGap && gap <= cfg.MaxFacingGap {
			y := (math.Max(ab.Min.Y, bb.Min.Y) + math.Min(ab.Max.Y, bb.Max.Y)) / 2
			if ab.Max.X < bb.Min.X {
				return geo.Seg(geo.Pt(ab.Max.X, y), geo.Pt(bb.Min.X, y)), true
			}
			return geo.Seg(geo.Pt(bb.Max.X, y), geo.Pt(ab.Min.X, y)), true
		}
	}

	// Vertical: aligned in X, separated in Y.
	if math.Abs(a.Position.X-b.Position.X) <= cfg.CrossAxisTolerance {
		overlap := math.Min(ab.Max.X, bb.Max.X) - math.Max(ab.Min.X, bb.Min.X)
		gap := math.Max(bb.Min.Y-ab.Max.Y, ab.Min.Y-bb.Max.Y)
		if overlap >= cfg.Width+cfg.ClearMargin && gap >= cfg.MinFacingGap && gap <= cfg.MaxFacingGap {
			x := (math.Max(ab.Min.X, bb.Min.X) + math.Min(ab.Max.X, bb.Max.X)) / 2
			if ab.Max.Y < bb.Min.Y {
				return geo.Seg(geo.Pt(x, ab.Max.Y), geo.Pt(x, bb.Min.Y)), true
			}
			return geo.Seg(geo.Pt(x, bb.Max.Y), geo.Pt(x, ab.Min.Y)), true
		}
	}

	return geo.Segment{}, false
}

// spines fits one main pathway through each cluster of more than two
// blocks, along the axis of greater coordinate spread. Cluster members
// are excluded from the crossing check — the spine summarizes
// circulation through them — but walls and restricted areas still apply.
func spines(blocks []plan.PlacementBlock, idx *obstacleIndex, cfg Config) []plan.Pathway {
	var out []plan.Pathway
	for _, cluster := range clusterBlocks(blocks, cfg.ClusterRadius) {
		if len(cluster) <= 2 {
			continue
		}

		exclude := make(map[string]bool, len(cluster))
		extent := blocks[cluster[0]].Bounds()
		centroid := geo.Point2D{}
		centers := make([]geo.Point2D, 0, len(cluster))
		for _, bi := range cluster {
			b := blocks[bi]
			exclude[b.ID] = true
			extent = extent.Union(b.Bounds())
			centroid = centroid.Add(b.Position)
			centers = append(centers, b.Position)
		}
		centroid = centroid.Scale(1 / float64(len(cluster)))
		centerBox := geo.BoundingRect(centers)

		var seg geo.Segment
		if centerBox.Width() >= centerBox.Height() {
			seg = geo.Seg(
				geo.Pt(extent.Min.X-cfg.SpineExtension, centroid.Y),
				geo.Pt(extent.Max.X+cfg.SpineExtension, centroid.Y),
			)
		} else {
			seg = geo.Seg(
				geo.Pt(centroid.X, extent.Min.Y-cfg.SpineExtension),
				geo.Pt(centroid.X, extent.Max.Y+cfg.SpineExtension),
			)
		}

		if !idx.validSegment(seg, exclude) {
			continue
		}
		out = append(out, plan.Pathway{
			Path:  []geo.Point2D{seg.A, seg.B},
			Width: cfg.Width * cfg.SpineWidthFactor,
			Kind:  plan.PathwayMain,
		})
	}
	return out
}

// clusterBlocks groups blocks into connected components via
// breadth-first search over the center-distance threshold. Scan order
// is stable, so clusters are deterministic.
func clusterBlocks(blocks []plan.PlacementBlock, radius float64) [][]int {
	visited := make([]bool, len(blocks))
	var clusters [][]int
	for i := range blocks {
		if visited[i] {
			continue
		}
		visited[i] = true
		cluster := []int{i}
		queue := []int{i}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for j := range blocks {
				if visited[j] {
					continue
				}
				if blocks[cur].Position.Distance(blocks[j].Position) <= radius {
					visited[j] = true
					cluster = append(cluster, j)
					queue = append(queue, j)
				}
			}
		}
		clusters = append(clusters, cluster)
	}
	return clusters
}

// connectIsolated links every block not already served by the network
// to the nearest pathway or connected block via the shortest valid
// straight segment. Returns the extended network and how many blocks
// remain unconnected.
func connectIsolated(blocks []plan.PlacementBlock, pathways []plan.Pathway, idx *obstacleIndex, cfg Config) ([]plan.Pathway, int) {
	reach := cfg.Width/2 + cfg.CoverageSlack
	unconnected := 0

	for i := range blocks {
		if blockServed(blocks[i], pathways, reach) {
			continue
		}

		best, ok := shortestConnector(blocks[i], blocks, pathways, idx, cfg, reach)
		if !ok {
			unconnected++
			continue
		}
		pathways = append(pathways, plan.Pathway{
			Path:  []geo.Point2D{best.A, best.B},
			Width: cfg.Width,
			Kind:  plan.PathwaySecondary,
		})
	}
	return pathways, unconnected
}

// blockServed reports whether any pathway segment passes within reach
// of the block's box.
func blockServed(b plan.PlacementBlock, pathways []plan.Pathway, reach float64) bool {
	box := b.Bounds()
	for _, p := range pathways {
		for _, seg := range p.Segments() {
			if distanceToBlock(seg, box) <= reach {
				return true
			}
		}
	}
	return false
}

// shortestConnector finds the shortest valid segment from the block's
// boundary to an existing pathway or an already-served block.
func shortestConnector(b plan.PlacementBlock, blocks []plan.PlacementBlock, pathways []plan.Pathway, idx *obstacleIndex, cfg Config, reach float64) (geo.Segment, bool) {
	box := b.Bounds()
	bestLen := cfg.MaxLength
	var best geo.Segment
	found := false

	consider := func(target geo.Point2D, targetBlockID string) {
		start := box.ClampPoint(target)
		seg := geo.Seg(start, target)
		if seg.Length() < geo.Epsilon || seg.Length() > bestLen {
			return
		}
		exclude := map[string]bool{b.ID: true}
		if targetBlockID != "" {
			exclude[targetBlockID] = true
		}
		if !idx.validSegment(seg, exclude) {
			return
		}
		bestLen = seg.Length()
		best = seg
		found = true
	}

	for _, p := range pathways {
		for _, seg := range p.Segments() {
			consider(seg.ClosestPoint(b.Position), "")
		}
	}
	for j := range blocks {
		if blocks[j].ID == b.ID || !blockServed(blocks[j], pathways, reach) {
			continue
		}
		consider(blocks[j].Bounds().ClampPoint(b.Position), blocks[j].ID)
	}

	return best, found
}
