package extract

import (
	"reflect"
	"testing"

	"github.com/rehmanul/CAD-Analysis/pkg/geo"
	"github.com/rehmanul/CAD-Analysis/pkg/plan"
)

func openPlan(w, h float64) *plan.FloorPlan {
	return &plan.FloorPlan{Bounds: geo.NewRect(geo.Pt(0, 0), geo.Pt(w, h))}
}

func TestZeroWallsReturnsFullBounds(t *testing.T) {
	fp := openPlan(10000, 8000)
	areas, report := UsableAreas(fp, Options{})
	if !report.Valid {
		t.Fatalf("unexpected errors: %v", report.Errors)
	}
	if len(areas) != 1 {
		t.Fatalf("expected 1 area, got %d", len(areas))
	}
	if areas[0].Bounds != fp.Bounds {
		t.Errorf("expected full bounds %+v, got %+v", fp.Bounds, areas[0].Bounds)
	}
}

func TestCentralWallSplitsSpace(t *testing.T) {
	fp := openPlan(10000, 10000)
	fp.Walls = []plan.Wall{
		{Start: geo.Pt(5000, 0), End: geo.Pt(5000, 10000), Thickness: 100},
	}
	areas, report := UsableAreas(fp, Options{})
	if !report.Valid {
		t.Fatalf("unexpected errors: %v", report.Errors)
	}
	if len(areas) != 2 {
		t.Fatalf("expected 2 areas either side of the wall, got %d", len(areas))
	}
	for _, a := range areas {
		if a.Bounds.Contains(geo.Pt(5000, 5000)) {
			t.Errorf("area %+v overlaps the wall centerline", a.Bounds)
		}
	}
}

func TestRestrictedAreaExcluded(t *testing.T) {
	fp := openPlan(10000, 10000)
	fp.RestrictedAreas = []plan.RestrictedArea{
		{Bounds: geo.NewRect(geo.Pt(0, 0), geo.Pt(5000, 10000)), Kind: "storage"},
	}
	areas, report := UsableAreas(fp, Options{})
	if !report.Valid {
		t.Fatalf("unexpected errors: %v", report.Errors)
	}
	if len(areas) != 1 {
		t.Fatalf("expected 1 remaining area, got %d", len(areas))
	}
	// Restricted half + 1000mm buffer + 1200mm clearance dilation.
	if areas[0].Bounds.Min.X < 6000 {
		t.Errorf("area %+v intrudes into the buffered restricted zone", areas[0].Bounds)
	}
}

func TestTinyRegionDiscarded(t *testing.T) {
	fp := openPlan(1500, 1500) // 2.25 m², below the 4 m² floor
	areas, report := UsableAreas(fp, Options{})
	if !report.Valid {
		t.Fatalf("small plans are degenerate, not errors: %v", report.Errors)
	}
	if len(areas) != 0 {
		t.Errorf("expected no areas, got %d", len(areas))
	}
	if len(report.Warnings) == 0 {
		t.Error("expected a warning about no usable areas")
	}
}

func TestDoorSwingBlocksSpace(t *testing.T) {
	// A door mid-corridor: swing arc plus clearance dilation spans the
	// corridor width and splits it in two.
	fp := openPlan(10000, 3000)
	fp.Openings = []plan.Opening{
		{Position: geo.Pt(5000, 1500), Width: 900, Height: 2100, Kind: plan.OpeningDoor},
	}
	areas, report := UsableAreas(fp, Options{})
	if !report.Valid {
		t.Fatalf("unexpected errors: %v", report.Errors)
	}
	if len(areas) != 2 {
		t.Errorf("expected the door swing to split the corridor, got %d areas", len(areas))
	}
}

func TestExtractionIsDeterministic(t *testing.T) {
	fp := openPlan(15000, 12000)
	fp.Walls = []plan.Wall{
		{Start: geo.Pt(7500, 0), End: geo.Pt(7500, 12000), Thickness: 100},
		{Start: geo.Pt(0, 6000), End: geo.Pt(15000, 6000), Thickness: 100},
	}
	a1, _ := UsableAreas(fp, Options{})
	a2, _ := UsableAreas(fp, Options{})
	if !reflect.DeepEqual(a1, a2) {
		t.Error("extraction must be deterministic for identical inputs")
	}
}

func TestNilPlanFailsFast(t *testing.T) {
	areas, report := UsableAreas(nil, Options{})
	if report.Valid {
		t.Error("nil plan must produce an error")
	}
	if areas != nil {
		t.Errorf("expected nil areas, got %v", areas)
	}
}
