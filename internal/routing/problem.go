package routing

import "math/rand/v2"

const (
	// NumDemands is the number of demand cells placed on each problem.
	NumDemands = 12

	// DefaultSeed reproduces the problem layout of the original classroom
	// deployment.
	DefaultSeed uint64 = 42
)

// NewRand returns a rand source for reproducible problem generation.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// NewPuzzle generates a fresh problem instance: the depot at the grid centre
// and NumDemands demand cells drawn without replacement from the remaining
// cells. Deterministic for a deterministically seeded r.
func NewPuzzle(r *rand.Rand) *PuzzleState {
	depot := Coord{GridSize / 2, GridSize / 2}
	candidates := make([]Coord, 0, GridSize*GridSize-1)
	for x := range GridSize {
		for y := range GridSize {
			if c := (Coord{x, y}); c != depot {
				candidates = append(candidates, c)
			}
		}
	}
	r.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	return &PuzzleState{
		Depot:   depot,
		Demands: candidates[:NumDemands:NumDemands],
		Route:   []Coord{depot},
		Visited: map[Coord]bool{},
	}
}
