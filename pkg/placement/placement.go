// Package placement arranges rectangular blocks within usable floor
// areas using a genetic search over whole-layout configurations.
//
// Each usable area contributes a deterministic seed layout; the search
// perturbs block positions and scores configurations on utilization,
// accessibility, clearance, regularity, and proximity. A deterministic
// post-processing pass removes overlaps, snaps positions, and relaxes
// spacing. All randomness flows from the explicit seed in Options.
package placement

import (
	"fmt"
	"math/rand"

	"github.com/rehmanul/CAD-Analysis/pkg/plan"
	"github.com/rehmanul/CAD-Analysis/pkg/validation"
)

// Optimize places blocks within the given usable areas. Zero usable
// areas, or areas too small for any block class, yield an empty block
// set: a valid terminal state, not an error.
func Optimize(fp *plan.FloorPlan, areas []plan.UsableArea, opts Options) ([]plan.PlacementBlock, *validation.Report) {
	report := validation.NewReport()
	opts = opts.withDefaults()

	if len(areas) == 0 {
		report.AddInfo(validation.Result{
			Level:   validation.LevelPlacement,
			Message: "no usable areas; placed 0 blocks",
		})
		return []plan.PlacementBlock{}, report
	}

	var seed genome
	for i, area := range areas {
		genes := seedArea(i, area, opts)
		if len(genes) == 0 {
			report.AddWarning(validation.Result{
				Level: validation.LevelPlacement,
				Message: fmt.Sprintf("usable area %d (%.1f m²) too small for any block class",
					i, area.Bounds.Area()/1e6),
			})
			continue
		}
		seed = append(seed, genes...)
	}

	if len(seed) == 0 {
		report.AddInfo(validation.Result{
			Level:   validation.LevelPlacement,
			Message: "no area fits a block; placed 0 blocks",
		})
		return []plan.PlacementBlock{}, report
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	best := evolve(seed, areas, opts, rng)
	best = postProcess(best, areas, opts)

	eval := newEvaluator(areas, opts)
	blocks := toBlocks(best, eval, opts)

	report.AddInfo(validation.Result{
		Level: validation.LevelPlacement,
		Message: fmt.Sprintf("placed %d blocks across %d usable areas (fitness %.3f)",
			len(blocks), len(areas), eval.fitness(best)),
	})

	return blocks, report
}
