package playoff

import (
	"math/rand"
	"runtime"
	"sync"
)

// DefaultTrials is the standard Monte Carlo trial count.
const DefaultTrials = 1000

// MonteCarloResult aggregates the target team's fate over many sampled
// outcome assignments.
type MonteCarloResult struct {
	// Trials is the number of simulations run.
	Trials int
	// Made is how many trials ended with the target in the playoffs.
	Made int
	// Probability is Made/Trials expressed as a percentage.
	Probability float64
	// SeedCounts is how often the target landed on each seed.
	SeedCounts map[int]int
}

// RunMonteCarlo samples outcomes for every undecided critical game, runs the
// scenario, and tallies the target team's playoff frequency. Locked outcomes
// hold in every trial. The session's win model drives sampling.
//
// Trials are independent over read-only state, so they fan out across
// workers; the result repeats for a given seed, trial count, and worker
// count (the trial split follows GOMAXPROCS).
func (s *Session) RunMonteCarlo(trials int, seed int64) MonteCarloResult {
	if trials <= 0 {
		trials = DefaultTrials
	}
	undecided := s.undecided()

	// Home-win probabilities are the same for every trial.
	probs := make([]float64, len(undecided))
	for i, cg := range undecided {
		probs[i] = s.homeWinProbability(cg.Game)
	}

	nWorkers := runtime.GOMAXPROCS(0)
	if nWorkers > trials {
		nWorkers = trials
	}

	type tally struct {
		made  int
		seeds map[int]int
	}
	results := make(chan tally, nWorkers)

	var wg sync.WaitGroup
	for w := 0; w < nWorkers; w++ {
		n := trials / nWorkers
		if w < trials%nWorkers {
			n++
		}
		wg.Add(1)
		go func(w, n int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed + int64(w)))
			t := tally{seeds: make(map[int]int)}
			outcomes := make(Outcomes, len(undecided))
			for trial := 0; trial < n; trial++ {
				for i, cg := range undecided {
					if rng.Float64() < probs[i] {
						outcomes[cg.ID] = SideHome
					} else {
						outcomes[cg.ID] = SideAway
					}
				}
				res := s.Simulate(outcomes)
				if res.MadePlayoffs {
					t.made++
					t.seeds[res.Seed]++
				}
			}
			results <- t
		}(w, n)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	out := MonteCarloResult{
		Trials:     trials,
		SeedCounts: make(map[int]int),
	}
	for t := range results {
		out.Made += t.made
		for seed, n := range t.seeds {
			out.SeedCounts[seed] += n
		}
	}
	out.Probability = float64(out.Made) / float64(out.Trials) * 100
	return out
}
