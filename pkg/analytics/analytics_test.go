package analytics

import (
	"math"
	"testing"

	"github.com/rehmanul/CAD-Analysis/pkg/geo"
	"github.com/rehmanul/CAD-Analysis/pkg/plan"
)

func approx(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func TestSummarizeEmptyRun(t *testing.T) {
	fp := &plan.FloorPlan{Bounds: geo.NewRect(geo.Pt(0, 0), geo.Pt(10000, 10000))}
	result, report := Summarize(fp, nil, nil, nil)
	if !report.Valid {
		t.Fatalf("empty run should be valid: %s", report.Summary)
	}
	approx(t, "SpaceUtilization", result.SpaceUtilization, 0)
	approx(t, "AccessibilityScore", result.AccessibilityScore, 0)
	approx(t, "TotalPathwayLength", result.TotalPathwayLength, 0)
	approx(t, "Efficiency", result.Efficiency, 0)
	if len(report.Info) == 0 {
		t.Error("expected a metrics info entry")
	}
}

func TestSummarizeMetrics(t *testing.T) {
	fp := &plan.FloorPlan{Bounds: geo.NewRect(geo.Pt(0, 0), geo.Pt(10000, 10000))}
	areas := []plan.UsableArea{
		{Bounds: geo.NewRect(geo.Pt(0, 0), geo.Pt(10000, 10000))},
	}
	blocks := []plan.PlacementBlock{
		{
			ID:         "block_000",
			Position:   geo.Pt(2000, 2000),
			Width:      2000,
			Height:     2000,
			Area:       4e6,
			Accessible: true,
		},
		{
			ID:       "block_001",
			Position: geo.Pt(8000, 8000),
			Width:    2000,
			Height:   2000,
			Area:     4e6,
		},
	}
	pathways := []plan.Pathway{
		{
			ID:     "pathway_000",
			Path:   []geo.Point2D{geo.Pt(3000, 2000), geo.Pt(5000, 2000)},
			Width:  1200,
			Kind:   plan.PathwaySecondary,
			Length: 2000,
		},
	}

	result, report := Summarize(fp, areas, blocks, pathways)
	if !report.Valid {
		t.Fatalf("summarize should not fail: %s", report.Summary)
	}

	// 8 m^2 placed in 100 m^2 usable.
	approx(t, "SpaceUtilization", result.SpaceUtilization, 8)
	approx(t, "TotalPathwayLength", result.TotalPathwayLength, 2000)

	// One of two blocks is accessible; the same one is the only one the
	// pathway reaches.
	approx(t, "AccessibilityScore", result.AccessibilityScore, 50)
	approx(t, "Efficiency", result.Efficiency, 0.5*8+0.3*50+0.2*50)
}

func TestSummarizeUtilizationIsCapped(t *testing.T) {
	fp := &plan.FloorPlan{Bounds: geo.NewRect(geo.Pt(0, 0), geo.Pt(10000, 10000))}
	areas := []plan.UsableArea{
		{Bounds: geo.NewRect(geo.Pt(0, 0), geo.Pt(1000, 1000))},
	}
	blocks := []plan.PlacementBlock{
		{ID: "block_000", Position: geo.Pt(500, 500), Width: 2000, Height: 2000, Area: 4e6},
	}
	result, _ := Summarize(fp, areas, blocks, nil)
	approx(t, "SpaceUtilization", result.SpaceUtilization, 100)
	if result.Efficiency < 0 || result.Efficiency > 100 {
		t.Errorf("Efficiency out of range: %v", result.Efficiency)
	}
}

func TestBlockConnectedReach(t *testing.T) {
	b := plan.PlacementBlock{Position: geo.Pt(2000, 2000), Width: 2000, Height: 2000}
	near := plan.Pathway{
		Path:  []geo.Point2D{geo.Pt(3500, 0), geo.Pt(3500, 4000)},
		Width: 1200,
	}
	far := plan.Pathway{
		Path:  []geo.Point2D{geo.Pt(5000, 0), geo.Pt(5000, 4000)},
		Width: 1200,
	}
	if !blockConnected(b, []plan.Pathway{near}) {
		t.Error("block 500mm from a 1200mm pathway should be served")
	}
	if blockConnected(b, []plan.Pathway{far}) {
		t.Error("block 2000mm from a 1200mm pathway should not be served")
	}
}
