package placement

// Weights controls the relative contribution of each fitness component.
// They are normalized by their sum, so only ratios matter.
type Weights struct {
	Utilization   float64 `json:"utilization"`
	Accessibility float64 `json:"accessibility"`
	Clearance     float64 `json:"clearance"`
	Regularity    float64 `json:"regularity"`
	Proximity     float64 `json:"proximity"`
}

// Options controls the placement optimizer. Zero values fall back to
// the defaults from DefaultOptions. Seed is an explicit parameter so
// runs are reproducible; the optimizer never touches global randomness.
type Options struct {
	// TargetDensity is the desired floor area per block, in mm².
	TargetDensity float64 `json:"target_density"`

	PopulationSize  int     `json:"population_size"`
	Generations     int     `json:"generations"`
	MutationRate    float64 `json:"mutation_rate"`
	CrossoverRate   float64 `json:"crossover_rate"`
	ElitismFraction float64 `json:"elitism_fraction"`
	TournamentSize  int     `json:"tournament_size"`
	Seed            int64   `json:"seed"`

	// Workers bounds the fitness-evaluation pool. Zero means GOMAXPROCS.
	Workers int `json:"workers"`

	Weights Weights `json:"weights"`

	// AccessClearance is the clear distance a block side needs to count
	// as accessible, in mm.
	AccessClearance float64 `json:"access_clearance"`
	// AlignTolerance is the row/column alignment tolerance, in mm.
	AlignTolerance float64 `json:"align_tolerance"`
	// ProximityOptimum is the preferred block-to-block gap, in mm.
	ProximityOptimum float64 `json:"proximity_optimum"`
	// MutationStep is the maximum center perturbation per mutation, in mm.
	MutationStep float64 `json:"mutation_step"`
	// SnapGrid is the post-processing position grid, in mm.
	SnapGrid float64 `json:"snap_grid"`
	// RelaxationPasses is the number of spring-relaxation iterations.
	RelaxationPasses int `json:"relaxation_passes"`
	// CorridorGap is the walkway gap left between seeded rows, columns,
	// and grid cells, in mm.
	CorridorGap float64 `json:"corridor_gap"`
}

// DefaultOptions returns the standard optimizer parameters.
func DefaultOptions() Options {
	return Options{
		TargetDensity:    8e6, // 8 m² per block
		PopulationSize:   50,
		Generations:      100,
		MutationRate:     0.1,
		CrossoverRate:    0.7,
		ElitismFraction:  0.2,
		TournamentSize:   3,
		Weights:          Weights{Utilization: 25, Accessibility: 25, Clearance: 20, Regularity: 15, Proximity: 15},
		AccessClearance:  1200,
		AlignTolerance:   500,
		ProximityOptimum: 2000,
		MutationStep:     250,
		SnapGrid:         100,
		RelaxationPasses: 10,
		CorridorGap:      1200,
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.TargetDensity <= 0 {
		o.TargetDensity = def.TargetDensity
	}
	if o.PopulationSize <= 0 {
		o.PopulationSize = def.PopulationSize
	}
	if o.Generations <= 0 {
		o.Generations = def.Generations
	}
	if o.MutationRate <= 0 {
		o.MutationRate = def.MutationRate
	}
	if o.CrossoverRate <= 0 {
		o.CrossoverRate = def.CrossoverRate
	}
	if o.ElitismFraction <= 0 {
		o.ElitismFraction = def.ElitismFraction
	}
	if o.TournamentSize <= 0 {
		o.TournamentSize = def.TournamentSize
	}
	zero := Weights{}
	if o.Weights == zero {
		o.Weights = def.Weights
	}
	if o.AccessClearance <= 0 {
		o.AccessClearance = def.AccessClearance
	}
	if o.AlignTolerance <= 0 {
		o.AlignTolerance = def.AlignTolerance
	}
	if o.ProximityOptimum <= 0 {
		o.ProximityOptimum = def.ProximityOptimum
	}
	if o.MutationStep <= 0 {
		o.MutationStep = def.MutationStep
	}
	if o.SnapGrid <= 0 {
		o.SnapGrid = def.SnapGrid
	}
	if o.RelaxationPasses <= 0 {
		o.RelaxationPasses = def.RelaxationPasses
	}
	if o.CorridorGap <= 0 {
		o.CorridorGap = def.CorridorGap
	}
	return o
}
