// Package analytics condenses a pipeline run into aggregate quality
// metrics. All scores are percentages in [0, 100]; the result record is
// plain serializable data with no behavior of its own.
package analytics

import (
	"fmt"

	"github.com/rehmanul/CAD-Analysis/pkg/geo"
	"github.com/rehmanul/CAD-Analysis/pkg/plan"
	"github.com/rehmanul/CAD-Analysis/pkg/validation"
)

// connectSlack is the extra reach, in mm, beyond a pathway's half width
// when deciding whether it serves a block.
const connectSlack = 100

// AnalysisResult is the terminal output of a pipeline run.
type AnalysisResult struct {
	FloorPlan *plan.FloorPlan       `json:"floor_plan"`
	Areas     []plan.UsableArea     `json:"usable_areas"`
	Blocks    []plan.PlacementBlock `json:"blocks"`
	Pathways  []plan.Pathway        `json:"pathways"`

	SpaceUtilization   float64 `json:"space_utilization"`
	AccessibilityScore float64 `json:"accessibility_score"`
	TotalPathwayLength float64 `json:"total_pathway_length"`
	Efficiency         float64 `json:"efficiency"`
}

// Summarize computes the aggregate metrics for a completed run.
//
// Space utilization is placed block area over usable area. The
// accessibility score averages the fraction of blocks flagged
// accessible by the optimizer with the fraction reachable from the
// pathway network. Efficiency folds both into a single figure with a
// connectivity term, weighted toward utilization.
func Summarize(fp *plan.FloorPlan, areas []plan.UsableArea, blocks []plan.PlacementBlock, pathways []plan.Pathway) (*AnalysisResult, *validation.Report) {
	report := validation.NewReport()

	result := &AnalysisResult{
		FloorPlan: fp,
		Areas:     areas,
		Blocks:    blocks,
		Pathways:  pathways,
	}

	var usable, placed float64
	for _, a := range areas {
		usable += a.Bounds.Area()
	}
	for _, b := range blocks {
		placed += b.Area
	}
	if usable > 0 {
		result.SpaceUtilization = clampPercent(100 * placed / usable)
	}

	for _, p := range pathways {
		result.TotalPathwayLength += p.Length
	}

	connectedFrac := 0.0
	if len(blocks) > 0 {
		accessible, connected := 0, 0
		for _, b := range blocks {
			if b.Accessible {
				accessible++
			}
			if blockConnected(b, pathways) {
				connected++
			}
		}
		accessibleFrac := float64(accessible) / float64(len(blocks))
		connectedFrac = float64(connected) / float64(len(blocks))
		result.AccessibilityScore = clampPercent(100 * (0.5*accessibleFrac + 0.5*connectedFrac))
	}

	result.Efficiency = clampPercent(
		0.5*result.SpaceUtilization + 0.3*result.AccessibilityScore + 0.2*100*connectedFrac)

	report.AddInfo(validation.Result{
		Level: validation.LevelAnalytics,
		Message: fmt.Sprintf("utilization %.1f%%, accessibility %.1f%%, efficiency %.1f%%",
			result.SpaceUtilization, result.AccessibilityScore, result.Efficiency),
	})
	return result, report
}

// blockConnected reports whether any pathway segment passes within the
// pathway's service reach of the block's box.
func blockConnected(b plan.PlacementBlock, pathways []plan.Pathway) bool {
	box := b.Bounds()
	for _, p := range pathways {
		reach := p.Width/2 + connectSlack
		for _, seg := range p.Segments() {
			if segmentToRect(seg, box) <= reach {
				return true
			}
		}
	}
	return false
}

func segmentToRect(s geo.Segment, r geo.Rect) float64 {
	if s.IntersectsRect(r) {
		return 0
	}
	edges := r.Edges()
	min := s.DistanceToSegment(edges[0])
	for _, e := range edges[1:] {
		if d := s.DistanceToSegment(e); d < min {
			min = d
		}
	}
	return min
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
