package plan

import (
	"fmt"

	"github.com/rehmanul/CAD-Analysis/pkg/geo"
	"github.com/rehmanul/CAD-Analysis/pkg/validation"
)

// Validate checks the structural contract of a floor plan before any
// pipeline stage runs. A plan with zero-area bounds is an error; a plan
// with zero walls is degenerate but legal.
func Validate(fp *FloorPlan) *validation.Report {
	report := validation.NewReport()

	if fp == nil {
		report.AddError(validation.Result{
			Level:   validation.LevelSchema,
			Message: "floor plan is nil",
		})
		return report
	}

	if fp.Bounds.IsEmpty() {
		report.AddError(validation.Result{
			Level:       validation.LevelSchema,
			Message:     "floor plan bounds have zero area",
			Field:       "bounds",
			ActualValue: fp.Bounds,
			Expected:    "a rectangle with positive width and height",
		})
	}

	for i, w := range fp.Walls {
		if w.Thickness < 0 {
			report.AddError(validation.Result{
				Level:       validation.LevelSchema,
				Message:     fmt.Sprintf("wall %d has negative thickness", i),
				Field:       fmt.Sprintf("walls[%d].thickness", i),
				ActualValue: w.Thickness,
			})
		}
		if w.Start.Distance(w.End) < geo.Epsilon {
			report.AddWarning(validation.Result{
				Level:   validation.LevelSchema,
				Message: fmt.Sprintf("wall %d has coincident endpoints and will be ignored", i),
				Field:   fmt.Sprintf("walls[%d]", i),
			})
		}
	}

	for i, o := range fp.Openings {
		if o.Width < 0 || o.Height < 0 {
			report.AddError(validation.Result{
				Level:   validation.LevelSchema,
				Message: fmt.Sprintf("opening %d has negative dimensions", i),
				Field:   fmt.Sprintf("openings[%d]", i),
			})
		}
	}

	for i, ra := range fp.RestrictedAreas {
		if ra.Bounds.IsEmpty() {
			report.AddWarning(validation.Result{
				Level:   validation.LevelSchema,
				Message: fmt.Sprintf("restricted area %d has zero area", i),
				Field:   fmt.Sprintf("restricted_areas[%d].bounds", i),
			})
		}
	}

	if len(fp.Walls) == 0 {
		report.AddWarning(validation.Result{
			Level:   validation.LevelSchema,
			Message: "floor plan has no walls; treating full bounds as open space",
		})
	}

	return report
}
