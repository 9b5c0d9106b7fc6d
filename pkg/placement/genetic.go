package placement

import (
	"math/rand"
	"runtime"
	"sort"
	"sync"

	"github.com/rehmanul/CAD-Analysis/pkg/plan"
)

// genome is one candidate configuration: a full set of blocks across
// all usable areas.
type genome []gene

func (g genome) clone() genome {
	out := make(genome, len(g))
	copy(out, g)
	return out
}

// evolve runs the genetic search and returns the best configuration
// ever seen. All randomness comes from rng, so a fixed seed reproduces
// the result exactly.
func evolve(seed genome, areas []plan.UsableArea, opts Options, rng *rand.Rand) genome {
	eval := newEvaluator(areas, opts)

	pop := make([]genome, opts.PopulationSize)
	pop[0] = seed.clone()
	for i := 1; i < opts.PopulationSize; i++ {
		pop[i] = jitter(seed, areas, opts, rng)
	}

	best := pop[0].clone()
	bestFit := -1.0

	eliteCount := int(opts.ElitismFraction * float64(opts.PopulationSize))
	if eliteCount < 1 {
		eliteCount = 1
	}

	for gen := 0; gen < opts.Generations; gen++ {
		fits := evaluateAll(eval, pop, opts.Workers)

		order := sortByFitness(fits)
		if fits[order[0]] > bestFit {
			bestFit = fits[order[0]]
			best = pop[order[0]].clone()
		}

		next := make([]genome, 0, opts.PopulationSize)
		for i := 0; i < eliteCount; i++ {
			next = append(next, pop[order[i]].clone())
		}
		for len(next) < opts.PopulationSize {
			a := tournament(pop, fits, opts.TournamentSize, rng)
			b := tournament(pop, fits, opts.TournamentSize, rng)
			child := crossover(a, b, opts, rng)
			mutate(child, areas, opts, rng)
			next = append(next, child)
		}
		pop = next
	}

	// Score the final generation too; the loop above only scores on entry.
	fits := evaluateAll(eval, pop, opts.Workers)
	order := sortByFitness(fits)
	if fits[order[0]] > bestFit {
		best = pop[order[0]].clone()
	}

	return best
}

// evaluateAll computes fitness for each genome on a bounded worker
// pool. Genomes are pure inputs and results land at their own index,
// so the parallelism never affects determinism.
func evaluateAll(eval *evaluator, pop []genome, workers int) []float64 {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(pop) {
		workers = len(pop)
	}

	fits := make([]float64, len(pop))
	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				fits[i] = eval.fitness(pop[i])
			}
		}()
	}
	for i := range pop {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return fits
}

// sortByFitness returns population indices in descending fitness order.
// Ties break on index so the ordering is stable across runs.
func sortByFitness(fits []float64) []int {
	order := make([]int, len(fits))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return fits[order[a]] > fits[order[b]]
	})
	return order
}

// tournament picks the fittest of k random genomes.
func tournament(pop []genome, fits []float64, k int, rng *rand.Rand) genome {
	bestIdx := rng.Intn(len(pop))
	for i := 1; i < k; i++ {
		idx := rng.Intn(len(pop))
		if fits[idx] > fits[bestIdx] {
			bestIdx = idx
		}
	}
	return pop[bestIdx]
}

// crossover picks each block position independently from one parent.
// The parents share gene structure because every genome descends from
// the same seed layout.
func crossover(a, b genome, opts Options, rng *rand.Rand) genome {
	child := a.clone()
	if rng.Float64() >= opts.CrossoverRate {
		return child
	}
	for i := range child {
		if i < len(b) && rng.Float64() < 0.5 {
			child[i] = b[i]
		}
	}
	return child
}

// mutate perturbs block centers by up to ±MutationStep, re-clamping
// into the containing usable area.
func mutate(g genome, areas []plan.UsableArea, opts Options, rng *rand.Rand) {
	for i := range g {
		if rng.Float64() >= opts.MutationRate {
			continue
		}
		step := opts.MutationStep
		g[i].center.X += (rng.Float64()*2 - 1) * step
		g[i].center.Y += (rng.Float64()*2 - 1) * step
		if c, ok := clampIntoArea(g[i], areas[g[i].areaIdx].Bounds); ok {
			g[i].center = c
		}
	}
}

// jitter seeds population diversity: every block shifted by up to twice
// the mutation step.
func jitter(seed genome, areas []plan.UsableArea, opts Options, rng *rand.Rand) genome {
	g := seed.clone()
	for i := range g {
		g[i].center.X += (rng.Float64()*2 - 1) * opts.MutationStep * 2
		g[i].center.Y += (rng.Float64()*2 - 1) * opts.MutationStep * 2
		if c, ok := clampIntoArea(g[i], areas[g[i].areaIdx].Bounds); ok {
			g[i].center = c
		}
	}
	return g
}
