package pathway

import (
	"github.com/dhconnelly/rtreego"

	"github.com/rehmanul/CAD-Analysis/pkg/geo"
	"github.com/rehmanul/CAD-Analysis/pkg/plan"
)

type obstacleKind int

const (
	obstacleWall obstacleKind = iota
	obstacleRestricted
	obstacleBlock
)

// obstacleEntry is one indexed obstacle. The R-tree stores a loose
// bounding box; exact geometry tests run only on candidates it returns.
type obstacleEntry struct {
	kind      obstacleKind
	box       geo.Rect    // query box stored in the tree
	wall      geo.Segment // centerline, walls only
	thickness float64     // walls only
	blockID   string      // blocks only
	blockBox  geo.Rect    // buffered block box, blocks only
	restrict  geo.Rect    // restricted rect, restricted only
}

// Bounds implements the rtreego.Spatial interface.
func (e *obstacleEntry) Bounds() rtreego.Rect {
	w := e.box.Width()
	h := e.box.Height()
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	rect, _ := rtreego.NewRect(
		rtreego.Point{e.box.Min.X, e.box.Min.Y},
		[]float64{w, h},
	)
	return rect
}

// obstacleIndex answers segment-validity queries against walls,
// restricted areas, and placed blocks.
type obstacleIndex struct {
	tree *rtreego.Rtree
	cfg  Config
}

func buildObstacleIndex(fp *plan.FloorPlan, blocks []plan.PlacementBlock, cfg Config) *obstacleIndex {
	tree := rtreego.NewTree(2, 8, 32)

	for _, w := range fp.Walls {
		if w.Start.Distance(w.End) < geo.Epsilon {
			continue
		}
		seg := w.Segment()
		tree.Insert(&obstacleEntry{
			kind:      obstacleWall,
			box:       seg.Bounds().Expand(w.Thickness/2 + cfg.MinClearance),
			wall:      seg,
			thickness: w.Thickness,
		})
	}
	for _, ra := range fp.RestrictedAreas {
		if ra.Bounds.IsEmpty() {
			continue
		}
		tree.Insert(&obstacleEntry{
			kind:     obstacleRestricted,
			box:      ra.Bounds,
			restrict: ra.Bounds,
		})
	}
	for _, b := range blocks {
		buffered := b.Bounds().Expand(cfg.BlockBuffer)
		tree.Insert(&obstacleEntry{
			kind:     obstacleBlock,
			box:      buffered,
			blockID:  b.ID,
			blockBox: buffered,
		})
	}

	return &obstacleIndex{tree: tree, cfg: cfg}
}

// validSegment reports whether a candidate pathway segment keeps wall
// clearance, avoids restricted areas, and crosses no buffered block box.
// Blocks in exclude (the segment's own endpoints or a spine's cluster)
// are not checked.
func (idx *obstacleIndex) validSegment(s geo.Segment, exclude map[string]bool) bool {
	queryBox := s.Bounds().Expand(idx.cfg.MinClearance)
	w := queryBox.Width()
	h := queryBox.Height()
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	query, _ := rtreego.NewRect(
		rtreego.Point{queryBox.Min.X, queryBox.Min.Y},
		[]float64{w, h},
	)

	for _, hit := range idx.tree.SearchIntersect(query) {
		e := hit.(*obstacleEntry)
		switch e.kind {
		case obstacleWall:
			// Clearance is measured to the wall surface.
			if s.DistanceToSegment(e.wall) < idx.cfg.MinClearance+e.thickness/2 {
				return false
			}
		case obstacleRestricted:
			if s.IntersectsRect(e.restrict) {
				return false
			}
		case obstacleBlock:
			if exclude[e.blockID] {
				continue
			}
			if s.IntersectsRect(e.blockBox) {
				return false
			}
		}
	}
	return true
}

// distanceToBlock returns the distance from a segment to a block box,
// zero if they touch.
func distanceToBlock(s geo.Segment, box geo.Rect) float64 {
	if s.IntersectsRect(box) {
		return 0
	}
	best := s.DistanceToPoint(box.Corners()[0])
	for _, e := range box.Edges() {
		if d := s.DistanceToSegment(e); d < best {
			best = d
		}
	}
	return best
}
