package plan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rehmanul/CAD-Analysis/pkg/geo"
)

const sampleYAML = `
bounds:
  min: {x: 0, y: 0}
  max: {x: 15000, y: 12000}
walls:
  - start: {x: 0, y: 0}
    end: {x: 15000, y: 0}
    thickness: 200
  - start: {x: 7500, y: 0}
    end: {x: 7500, y: 12000}
    thickness: 100
openings:
  - position: {x: 7500, y: 6000}
    width: 900
    height: 2100
    kind: door
restricted_areas:
  - bounds:
      min: {x: 0, y: 0}
      max: {x: 1000, y: 1000}
    kind: utility
`

func writeSample(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "floorplan.yaml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0o644); err != nil {
		t.Fatalf("writing sample: %v", err)
	}
	return dir
}

func TestLoadProject(t *testing.T) {
	dir := writeSample(t)
	fp, err := LoadProject(dir)
	if err != nil {
		t.Fatalf("LoadProject: %v", err)
	}
	if len(fp.Walls) != 2 {
		t.Errorf("expected 2 walls, got %d", len(fp.Walls))
	}
	if fp.Walls[0].Thickness != 200 {
		t.Errorf("expected thickness 200, got %f", fp.Walls[0].Thickness)
	}
	if fp.Openings[0].Kind != OpeningDoor {
		t.Errorf("expected door, got %s", fp.Openings[0].Kind)
	}
	if fp.TotalArea != 15000*12000 {
		t.Errorf("TotalArea not derived from bounds: %f", fp.TotalArea)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := LoadProject(t.TempDir()); err == nil {
		t.Error("expected error for missing floorplan.yaml")
	}
}

func TestValidateZeroBoundsFails(t *testing.T) {
	fp := &FloorPlan{}
	report := Validate(fp)
	if report.Valid {
		t.Error("zero-area bounds must fail validation")
	}
}

func TestValidateZeroWallsIsLegal(t *testing.T) {
	fp := &FloorPlan{Bounds: geo.NewRect(geo.Pt(0, 0), geo.Pt(10000, 8000))}
	report := Validate(fp)
	if !report.Valid {
		t.Errorf("zero walls should be degenerate but legal: %v", report.Errors)
	}
	if len(report.Warnings) == 0 {
		t.Error("expected a warning about missing walls")
	}
}

func TestValidateNegativeThickness(t *testing.T) {
	fp := &FloorPlan{
		Bounds: geo.NewRect(geo.Pt(0, 0), geo.Pt(10000, 8000)),
		Walls: []Wall{
			{Start: geo.Pt(0, 0), End: geo.Pt(5000, 0), Thickness: -10},
		},
	}
	if Validate(fp).Valid {
		t.Error("negative wall thickness must fail validation")
	}
}

func TestBlockBounds(t *testing.T) {
	b := PlacementBlock{Position: geo.Pt(2000, 3000), Width: 1000, Height: 500}
	r := b.Bounds()
	if r.Min.X != 1500 || r.Max.X != 2500 || r.Min.Y != 2750 || r.Max.Y != 3250 {
		t.Errorf("unexpected bounds: %+v", r)
	}
}

func TestOpeningClearanceRadius(t *testing.T) {
	door := Opening{Width: 900, Kind: OpeningDoor}
	if door.ClearanceRadius() != 900 {
		t.Errorf("door swing should reserve full width, got %f", door.ClearanceRadius())
	}
	window := Opening{Width: 1200, Kind: OpeningWindow}
	if window.ClearanceRadius() != 600 {
		t.Errorf("window should reserve half width, got %f", window.ClearanceRadius())
	}
}
