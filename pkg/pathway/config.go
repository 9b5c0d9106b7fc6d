package pathway

// Config controls pathway network generation. The heuristic thresholds
// are configuration, not hardcoded law; zero values fall back to the
// defaults from DefaultConfig.
type Config struct {
	// Width is the pathway width, in mm. Main spines are wider by
	// SpineWidthFactor.
	Width float64 `json:"width"`
	// MinClearance is the minimum distance any pathway segment keeps
	// from every wall, in mm.
	MinClearance float64 `json:"min_clearance"`
	// MaxLength bounds isolated-block connector segments, in mm.
	MaxLength float64 `json:"max_length"`
	// Accessible marks generated pathways as wheelchair accessible.
	Accessible bool `json:"accessible"`

	// CrossAxisTolerance is the alignment tolerance for facing pairs, in mm.
	CrossAxisTolerance float64 `json:"cross_axis_tolerance"`
	// MinFacingGap and MaxFacingGap bound the edge-to-edge separation
	// of a facing pair, in mm.
	MinFacingGap float64 `json:"min_facing_gap"`
	MaxFacingGap float64 `json:"max_facing_gap"`
	// ClearMargin is the extra cross-axis room required beyond Width
	// for a facing-pair corridor, in mm.
	ClearMargin float64 `json:"clear_margin"`

	// ClusterRadius is the proximity threshold for spine clustering, in mm.
	ClusterRadius float64 `json:"cluster_radius"`
	// SpineExtension extends a spine past its group extent, in mm.
	SpineExtension float64 `json:"spine_extension"`
	// SpineWidthFactor scales Width for main spines.
	SpineWidthFactor float64 `json:"spine_width_factor"`

	// BlockBuffer expands block boxes for crossing checks, in mm.
	BlockBuffer float64 `json:"block_buffer"`
	// CoverageSlack is the extra reach beyond Width/2 when deciding
	// whether a block is already served by a pathway, in mm.
	CoverageSlack float64 `json:"coverage_slack"`
	// SimplifyTolerance is the path simplification tolerance, in mm.
	SimplifyTolerance float64 `json:"simplify_tolerance"`
	// MaxSegments caps the network size during compaction.
	MaxSegments int `json:"max_segments"`
}

// DefaultConfig returns the standard pathway parameters.
func DefaultConfig() Config {
	return Config{
		Width:              1200,
		MinClearance:       600,
		MaxLength:          15000,
		Accessible:         true,
		CrossAxisTolerance: 800,
		MinFacingGap:       1500,
		MaxFacingGap:       6000,
		ClearMargin:        600,
		ClusterRadius:      6000,
		SpineExtension:     1000,
		SpineWidthFactor:   1.5,
		BlockBuffer:        200,
		CoverageSlack:      100,
		SimplifyTolerance:  100,
		MaxSegments:        256,
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.Width <= 0 {
		c.Width = def.Width
	}
	if c.MinClearance <= 0 {
		c.MinClearance = def.MinClearance
	}
	if c.MaxLength <= 0 {
		c.MaxLength = def.MaxLength
	}
	if c.CrossAxisTolerance <= 0 {
		c.CrossAxisTolerance = def.CrossAxisTolerance
	}
	if c.MinFacingGap <= 0 {
		c.MinFacingGap = def.MinFacingGap
	}
	if c.MaxFacingGap <= 0 {
		c.MaxFacingGap = def.MaxFacingGap
	}
	if c.ClearMargin <= 0 {
		c.ClearMargin = def.ClearMargin
	}
	if c.ClusterRadius <= 0 {
		c.ClusterRadius = def.ClusterRadius
	}
	if c.SpineExtension <= 0 {
		c.SpineExtension = def.SpineExtension
	}
	if c.SpineWidthFactor <= 0 {
		c.SpineWidthFactor = def.SpineWidthFactor
	}
	if c.BlockBuffer <= 0 {
		c.BlockBuffer = def.BlockBuffer
	}
	if c.CoverageSlack <= 0 {
		c.CoverageSlack = def.CoverageSlack
	}
	if c.SimplifyTolerance <= 0 {
		c.SimplifyTolerance = def.SimplifyTolerance
	}
	if c.MaxSegments <= 0 {
		c.MaxSegments = def.MaxSegments
	}
	return c
}
