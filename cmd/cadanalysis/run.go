package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rehmanul/CAD-Analysis/pkg/extract"
	"github.com/rehmanul/CAD-Analysis/pkg/pipeline"
	"github.com/rehmanul/CAD-Analysis/pkg/plan"
	"github.com/rehmanul/CAD-Analysis/pkg/validation"
)

// loadAndValidate loads the project's floor plan and runs schema
// validation.
func loadAndValidate(projectPath string) (*plan.FloorPlan, *validation.Report, error) {
	fp, err := plan.LoadProject(projectPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading floor plan: %w", err)
	}
	return fp, plan.Validate(fp), nil
}

func runValidate(projectPath string) error {
	_, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}

	printValidationReport(report)

	if !report.Valid {
		os.Exit(1)
	}
	return nil
}

func runExtract(projectPath string) error {
	fp, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	if !report.Valid {
		printValidationReport(report)
		return fmt.Errorf("floor plan has validation errors")
	}

	areas, extractReport := extract.UsableAreas(fp, extract.DefaultOptions())
	report.Merge(extractReport)

	output := map[string]any{
		"usable_areas": areas,
		"validation":   report,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

func runAnalyze(projectPath string, opts pipeline.Options) error {
	logger := newLogger()

	fp, err := plan.LoadProject(projectPath)
	if err != nil {
		return fmt.Errorf("loading floor plan: %w", err)
	}
	logger.Debug("floor plan loaded", "walls", len(fp.Walls),
		"openings", len(fp.Openings), "restricted", len(fp.RestrictedAreas))

	result, report, err := pipeline.Run(fp, opts)
	if err != nil {
		printValidationReport(report)
		return err
	}
	logger.Info("analysis complete",
		"areas", len(result.Areas), "blocks", len(result.Blocks), "pathways", len(result.Pathways))

	printAnalysisSummary(os.Stderr, result)

	output := map[string]any{
		"result":     result,
		"validation": report,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}
