package pathway

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rehmanul/CAD-Analysis/pkg/geo"
	"github.com/rehmanul/CAD-Analysis/pkg/plan"
)

func testPlan() *plan.FloorPlan {
	return &plan.FloorPlan{Bounds: geo.NewRect(geo.Pt(0, 0), geo.Pt(12000, 6000))}
}

func block(id string, cx, cy float64) plan.PlacementBlock {
	return plan.PlacementBlock{
		ID:       id,
		Position: geo.Pt(cx, cy),
		Width:    2000,
		Height:   2400,
	}
}

func TestGenerateEmptyBlocksIsValidTerminalState(t *testing.T) {
	pathways, report := Generate(testPlan(), nil, DefaultConfig())
	require.True(t, report.Valid)
	assert.NotNil(t, pathways)
	assert.Empty(t, pathways)
}

func TestGenerateFacingPairCorridor(t *testing.T) {
	blocks := []plan.PlacementBlock{
		block("block_000", 2000, 2000),
		block("block_001", 6000, 2000),
	}
	pathways, report := Generate(testPlan(), blocks, DefaultConfig())
	require.True(t, report.Valid)
	require.Len(t, pathways, 1)

	p := pathways[0]
	assert.Equal(t, "pathway_000", p.ID)
	assert.Equal(t, plan.PathwaySecondary, p.Kind)
	assert.True(t, p.Accessible)
	assert.InDelta(t, 1200, p.Width, geo.Epsilon)

	// Edge to edge between the facing faces, so the length is the gap.
	require.Len(t, p.Path, 2)
	assert.InDelta(t, 3000, p.Path[0].X, geo.Epsilon)
	assert.InDelta(t, 2000, p.Path[0].Y, geo.Epsilon)
	assert.InDelta(t, 5000, p.Path[1].X, geo.Epsilon)
	assert.InDelta(t, 2000, p.Path[1].Y, geo.Epsilon)
	assert.InDelta(t, 2000, p.Length, geo.Epsilon)
}

func TestGenerateWallBlocksCorridor(t *testing.T) {
	fp := testPlan()
	fp.Walls = []plan.Wall{
		{Start: geo.Pt(4000, 0), End: geo.Pt(4000, 4000), Thickness: 100},
	}
	blocks := []plan.PlacementBlock{
		block("block_000", 2000, 2000),
		block("block_001", 6000, 2000),
	}
	pathways, report := Generate(fp, blocks, DefaultConfig())
	require.True(t, report.Valid, "unconnected blocks warn, not fail")
	assert.Empty(t, pathways)
	require.NotEmpty(t, report.Warnings)
	assert.Contains(t, report.Warnings[0].Message, "unconnected")
}

func TestGenerateClusterSpine(t *testing.T) {
	fp := &plan.FloorPlan{Bounds: geo.NewRect(geo.Pt(0, 0), geo.Pt(14000, 6000))}
	blocks := []plan.PlacementBlock{
		block("block_000", 2000, 2000),
		block("block_001", 5000, 2000),
		block("block_002", 8000, 2000),
		block("block_003", 11000, 2000),
	}
	pathways, report := Generate(fp, blocks, DefaultConfig())
	require.True(t, report.Valid)
	require.Len(t, pathways, 1)

	p := pathways[0]
	assert.Equal(t, plan.PathwayMain, p.Kind)
	assert.InDelta(t, 1800, p.Width, geo.Epsilon)

	// The spine runs along the row through the cluster centroid.
	for _, pt := range p.Path {
		assert.InDelta(t, 2000, pt.Y, geo.Epsilon)
	}

	assert.Empty(t, report.Warnings, "every block sits on the spine")
}

func TestGenerateConnectsIsolatedBlock(t *testing.T) {
	fp := &plan.FloorPlan{Bounds: geo.NewRect(geo.Pt(0, 0), geo.Pt(12000, 10000))}
	blocks := []plan.PlacementBlock{
		block("block_000", 2000, 2000),
		block("block_001", 6000, 2000),
		block("block_002", 4000, 8000),
	}
	pathways, report := Generate(fp, blocks, DefaultConfig())
	require.True(t, report.Valid)
	assert.Empty(t, report.Warnings, "the offset block gets a connector")
	require.Len(t, pathways, 2)
	for _, p := range pathways {
		assert.Equal(t, plan.PathwaySecondary, p.Kind)
	}
}

func TestGeneratePathwaysKeepWallClearance(t *testing.T) {
	fp := testPlan()
	fp.Walls = []plan.Wall{
		{Start: geo.Pt(0, 0), End: geo.Pt(12000, 0), Thickness: 100},
		{Start: geo.Pt(12000, 0), End: geo.Pt(12000, 6000), Thickness: 100},
		{Start: geo.Pt(12000, 6000), End: geo.Pt(0, 6000), Thickness: 100},
		{Start: geo.Pt(0, 6000), End: geo.Pt(0, 0), Thickness: 100},
	}
	blocks := []plan.PlacementBlock{
		block("block_000", 2000, 2000),
		block("block_001", 6000, 2000),
	}
	cfg := DefaultConfig()
	pathways, report := Generate(fp, blocks, cfg)
	require.True(t, report.Valid)
	require.NotEmpty(t, pathways)

	for _, p := range pathways {
		for _, seg := range p.Segments() {
			for _, w := range fp.Walls {
				d := seg.DistanceToSegment(w.Segment())
				assert.GreaterOrEqual(t, d, cfg.MinClearance+w.Thickness/2,
					"pathway %s too close to wall", p.ID)
			}
		}
	}
}
