package routing

import "math/rand/v2"

// Closure count bounds for the re-route phase.
const (
	minClosures = 2
	maxClosures = 4
)

// makeClosures picks the links to close after the first completed tour: the
// route's traversed edges, de-duplicated preserving first occurrence, from
// which clamp(unique/5, 2, 4) are drawn without replacement. A tour with
// fewer unique edges than the lower bound closes them all.
func makeClosures(route []Coord, r *rand.Rand) []Edge {
	seen := make(map[Edge]bool, len(route))
	unique := make([]Edge, 0, len(route))
	for i := 0; i+1 < len(route); i++ {
		e := NewEdge(route[i], route[i+1])
		if !seen[e] {
			seen[e] = true
			unique = append(unique, e)
		}
	}
	k := min(maxClosures, max(minClosures, len(unique)/5))
	if k > len(unique) {
		k = len(unique)
	}
	r.Shuffle(len(unique), func(i, j int) {
		unique[i], unique[j] = unique[j], unique[i]
	})
	return unique[:k:k]
}
