// Package extract derives usable placement regions from a floor plan.
//
// It rasterizes walls, openings, and restricted areas onto a boolean
// occupancy grid, dilates occupied cells by the accessibility clearance,
// and flood-fills the remaining free space. Each connected free region
// is reported as its axis-aligned bounding rectangle; this trades exact
// region outlines for a simple, deterministic representation.
package extract

import (
	"fmt"
	"math"
	"sort"

	"github.com/rehmanul/CAD-Analysis/pkg/geo"
	"github.com/rehmanul/CAD-Analysis/pkg/plan"
	"github.com/rehmanul/CAD-Analysis/pkg/validation"
)

// Options controls usable-area extraction. Zero values fall back to
// the defaults from DefaultOptions.
type Options struct {
	// GridResolution is the raster cell size in mm.
	GridResolution float64 `json:"grid_resolution"`
	// Clearance is the accessibility clearance dilated around
	// obstacles, in mm.
	Clearance float64 `json:"clearance"`
	// RestrictedBuffer is the extra buffer around restricted areas, in mm.
	RestrictedBuffer float64 `json:"restricted_buffer"`
	// MinRegionArea discards free regions smaller than this, in mm².
	MinRegionArea float64 `json:"min_region_area"`
}

// DefaultOptions returns the standard extraction parameters.
func DefaultOptions() Options {
	return Options{
		GridResolution:   100,
		Clearance:        1200,
		RestrictedBuffer: 1000,
		MinRegionArea:    4e6, // 4 m²
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.GridResolution <= 0 {
		o.GridResolution = def.GridResolution
	}
	if o.Clearance <= 0 {
		o.Clearance = def.Clearance
	}
	if o.RestrictedBuffer <= 0 {
		o.RestrictedBuffer = def.RestrictedBuffer
	}
	if o.MinRegionArea <= 0 {
		o.MinRegionArea = def.MinRegionArea
	}
	return o
}

// UsableAreas extracts the usable placement regions of a floor plan.
// The result is deterministic for identical inputs. An empty result is
// a valid outcome, reported as a warning, not an error.
func UsableAreas(fp *plan.FloorPlan, opts Options) ([]plan.UsableArea, *validation.Report) {
	report := validation.NewReport()
	opts = opts.withDefaults()

	if fp == nil || fp.Bounds.IsEmpty() {
		report.AddError(validation.Result{
			Level:   validation.LevelExtraction,
			Message: "cannot extract usable areas from empty bounds",
		})
		return nil, report
	}

	grid := newOccupancyGrid(fp.Bounds, opts.GridResolution)

	for _, w := range fp.Walls {
		if w.Start.Distance(w.End) < geo.Epsilon {
			continue // degenerate wall, already flagged by plan validation
		}
		grid.markThickSegment(w.Segment(), w.Thickness/2)
	}
	for _, o := range fp.Openings {
		grid.markDisk(o.Position, o.ClearanceRadius())
	}
	for _, ra := range fp.RestrictedAreas {
		grid.markRect(ra.Bounds.Expand(opts.RestrictedBuffer))
	}

	grid.dilate(int(math.Ceil(opts.Clearance / opts.GridResolution)))

	comps := grid.floodFillFree()

	var areas []plan.UsableArea
	for _, c := range comps {
		// The component box can overhang the floor bounds by a partial
		// cell, so clamp it back.
		bounds := grid.bounds(c).Intersect(fp.Bounds)
		if bounds.Area() < opts.MinRegionArea {
			continue
		}
		areas = append(areas, plan.UsableArea{Bounds: bounds})
	}

	// Row-major flood fill already yields a stable order; sort anyway so
	// callers can rely on it regardless of grid internals.
	sort.Slice(areas, func(i, j int) bool {
		a, b := areas[i].Bounds.Min, areas[j].Bounds.Min
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})

	if len(areas) == 0 {
		report.AddWarning(validation.Result{
			Level:   validation.LevelExtraction,
			Message: "no usable areas found",
		})
		return areas, report
	}

	total := 0.0
	for _, a := range areas {
		total += a.Bounds.Area()
	}
	report.AddInfo(validation.Result{
		Level: validation.LevelExtraction,
		Message: fmt.Sprintf("extracted %d usable areas totaling %.1f m²",
			len(areas), total/1e6),
	})

	return areas, report
}
