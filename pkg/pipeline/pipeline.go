// Package pipeline sequences the analysis stages: floor-plan
// validation, usable-area extraction, placement optimization, pathway
// synthesis, and metric aggregation. Each stage fully consumes the
// previous stage's output; reports from every stage are merged into a
// single run report.
package pipeline

import (
	"fmt"

	"github.com/rehmanul/CAD-Analysis/pkg/analytics"
	"github.com/rehmanul/CAD-Analysis/pkg/extract"
	"github.com/rehmanul/CAD-Analysis/pkg/pathway"
	"github.com/rehmanul/CAD-Analysis/pkg/placement"
	"github.com/rehmanul/CAD-Analysis/pkg/plan"
	"github.com/rehmanul/CAD-Analysis/pkg/validation"
)

// Options bundles the per-stage configuration for a run.
type Options struct {
	Extract   extract.Options   `json:"extract" yaml:"extract"`
	Placement placement.Options `json:"placement" yaml:"placement"`
	Pathway   pathway.Config    `json:"pathway" yaml:"pathway"`
}

// DefaultOptions returns the standard configuration for all stages.
func DefaultOptions() Options {
	return Options{
		Extract:   extract.DefaultOptions(),
		Placement: placement.DefaultOptions(),
		Pathway:   pathway.DefaultConfig(),
	}
}

// Run executes the full pipeline on the floor plan. A schema-invalid
// plan aborts the run with an error; downstream stages never fail —
// empty areas, blocks, or pathways are valid terminal states that flow
// through to the metrics.
func Run(fp *plan.FloorPlan, opts Options) (*analytics.AnalysisResult, *validation.Report, error) {
	report := plan.Validate(fp)
	if !report.Valid {
		return nil, report, fmt.Errorf("floor plan failed validation: %s", report.Summary)
	}

	areas, extractReport := extract.UsableAreas(fp, opts.Extract)
	report.Merge(extractReport)
	if !report.Valid {
		return nil, report, fmt.Errorf("usable-area extraction failed: %s", report.Summary)
	}

	blocks, placeReport := placement.Optimize(fp, areas, opts.Placement)
	report.Merge(placeReport)
	if !report.Valid {
		return nil, report, fmt.Errorf("placement optimization failed: %s", report.Summary)
	}

	pathways, pathReport := pathway.Generate(fp, blocks, opts.Pathway)
	report.Merge(pathReport)
	if !report.Valid {
		return nil, report, fmt.Errorf("pathway generation failed: %s", report.Summary)
	}

	result, metricsReport := analytics.Summarize(fp, areas, blocks, pathways)
	report.Merge(metricsReport)

	return result, report, nil
}
