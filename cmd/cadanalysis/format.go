package main

import (
	"fmt"
	"io"

	"github.com/rehmanul/CAD-Analysis/pkg/analytics"
	"github.com/rehmanul/CAD-Analysis/pkg/plan"
	"github.com/rehmanul/CAD-Analysis/pkg/validation"
)

func printValidationReport(r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Printf("ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Printf("  [%s] %s\n", e.Level, e.Message)
			if e.Field != "" {
				fmt.Printf("    -> %s = %v\n", e.Field, e.ActualValue)
			}
			if e.Expected != "" {
				fmt.Printf("    expected: %s\n", e.Expected)
			}
			for _, s := range e.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			fmt.Printf("  [%s] %s\n", w.Level, w.Message)
			if w.Field != "" {
				fmt.Printf("    -> %s = %v\n", w.Field, w.ActualValue)
			}
			if w.Expected != "" {
				fmt.Printf("    expected: %s\n", w.Expected)
			}
			for _, s := range w.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Info) > 0 {
		fmt.Printf("INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Printf("  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Println()
	}

	if r.Valid {
		fmt.Printf("Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Printf("Result: INVALID (%s)\n", r.Summary)
	}
}

func printAnalysisSummary(w io.Writer, result *analytics.AnalysisResult) {
	fmt.Fprintln(w, "Analysis Summary")
	fmt.Fprintln(w, "================")
	fmt.Fprintln(w)

	bySize := map[plan.SizeClass]int{}
	for _, b := range result.Blocks {
		bySize[b.SizeClass]++
	}
	byKind := map[plan.PathwayKind]int{}
	for _, p := range result.Pathways {
		byKind[p.Kind]++
	}

	fmt.Fprintf(w, "  Usable areas:     %d (%s)\n", len(result.Areas), formatArea(usableTotal(result.Areas)))
	fmt.Fprintf(w, "  Blocks placed:    %d (%d large, %d medium, %d small)\n",
		len(result.Blocks), bySize[plan.SizeLarge], bySize[plan.SizeMedium], bySize[plan.SizeSmall])
	fmt.Fprintf(w, "  Pathways:         %d (%d main, %d secondary)\n",
		len(result.Pathways), byKind[plan.PathwayMain], byKind[plan.PathwaySecondary])
	fmt.Fprintf(w, "  Pathway length:   %.1f m\n", result.TotalPathwayLength/1000)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Space utilization:   %5.1f%%\n", result.SpaceUtilization)
	fmt.Fprintf(w, "  Accessibility score: %5.1f%%\n", result.AccessibilityScore)
	fmt.Fprintf(w, "  Efficiency:          %5.1f%%\n", result.Efficiency)
}

func usableTotal(areas []plan.UsableArea) float64 {
	total := 0.0
	for _, a := range areas {
		total += a.Bounds.Area()
	}
	return total
}

// formatArea renders square millimeters as square meters.
func formatArea(mm2 float64) string {
	return fmt.Sprintf("%.1f m²", mm2/1e6)
}
