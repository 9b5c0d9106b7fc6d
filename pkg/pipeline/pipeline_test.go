package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rehmanul/CAD-Analysis/pkg/geo"
	"github.com/rehmanul/CAD-Analysis/pkg/plan"
)

// testOptions trims the genetic search so the suite stays fast and
// pins the seed for reproducibility.
func testOptions() Options {
	opts := DefaultOptions()
	opts.Placement.PopulationSize = 12
	opts.Placement.Generations = 6
	opts.Placement.Seed = 42
	return opts
}

// quadrantPlan divides a 15m x 12m floor into four rooms and restricts
// two of them, leaving the other two for placement.
func quadrantPlan() *plan.FloorPlan {
	return &plan.FloorPlan{
		Bounds: geo.NewRect(geo.Pt(0, 0), geo.Pt(15000, 12000)),
		Walls: []plan.Wall{
			{Start: geo.Pt(7500, 0), End: geo.Pt(7500, 12000), Thickness: 100},
			{Start: geo.Pt(0, 6000), End: geo.Pt(15000, 6000), Thickness: 100},
		},
		RestrictedAreas: []plan.RestrictedArea{
			{Bounds: geo.NewRect(geo.Pt(0, 0), geo.Pt(7500, 6000)), Kind: "utility"},
			{Bounds: geo.NewRect(geo.Pt(7500, 6000), geo.Pt(15000, 12000)), Kind: "utility"},
		},
	}
}

func TestRunRejectsInvalidPlan(t *testing.T) {
	result, report, err := Run(nil, testOptions())
	require.Error(t, err)
	assert.Nil(t, result)
	require.NotNil(t, report)
	assert.False(t, report.Valid)
}

func TestRunOpenPlan(t *testing.T) {
	fp := &plan.FloorPlan{Bounds: geo.NewRect(geo.Pt(0, 0), geo.Pt(20000, 15000))}
	result, report, err := Run(fp, testOptions())
	require.NoError(t, err)
	require.True(t, report.Valid)
	require.NotNil(t, result)

	// Zero walls is degenerate but legal: the whole floor is one
	// usable area.
	require.Len(t, result.Areas, 1)
	assert.Equal(t, fp.Bounds, result.Areas[0].Bounds)
	assert.NotEmpty(t, result.Blocks)
	assert.GreaterOrEqual(t, result.SpaceUtilization, 0.0)
	assert.LessOrEqual(t, result.SpaceUtilization, 100.0)
}

func TestRunQuadrantScenario(t *testing.T) {
	result, report, err := Run(quadrantPlan(), testOptions())
	require.NoError(t, err)
	require.True(t, report.Valid)
	require.NotNil(t, result)

	require.NotEmpty(t, result.Areas)
	for _, a := range result.Areas {
		// The restricted half of the floor yields no usable area.
		assert.False(t, a.Bounds.Intersects(geo.NewRect(geo.Pt(0, 0), geo.Pt(6000, 4500))),
			"usable area inside the restricted bottom-left room")
	}

	assert.NotEmpty(t, result.Blocks)
	for _, b := range result.Blocks {
		inside := false
		for _, a := range result.Areas {
			if a.Bounds.ContainsRect(b.Bounds()) {
				inside = true
				break
			}
		}
		assert.True(t, inside, "block %s outside every usable area", b.ID)
	}

	assert.Greater(t, result.SpaceUtilization, 0.0)
	assert.LessOrEqual(t, result.SpaceUtilization, 100.0)
	assert.GreaterOrEqual(t, result.Efficiency, 0.0)
	assert.LessOrEqual(t, result.Efficiency, 100.0)
	assert.GreaterOrEqual(t, result.TotalPathwayLength, 0.0)
}

func TestRunIsDeterministic(t *testing.T) {
	opts := testOptions()
	opts.Placement.Workers = 4

	first, _, err := Run(quadrantPlan(), opts)
	require.NoError(t, err)
	second, _, err := Run(quadrantPlan(), opts)
	require.NoError(t, err)

	assert.Equal(t, first.Blocks, second.Blocks)
	assert.Equal(t, first.Pathways, second.Pathways)
	assert.Equal(t, first.SpaceUtilization, second.SpaceUtilization)
	assert.Equal(t, first.Efficiency, second.Efficiency)
}
