package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// snakeRoute walks a boustrophedon path over the whole grid, traversing 24
// distinct links.
func snakeRoute() []Coord {
	route := make([]Coord, 0, GridSize*GridSize)
	for y := range GridSize {
		if y%2 == 0 {
			for x := range GridSize {
				route = append(route, Coord{x, y})
			}
		} else {
			for x := GridSize - 1; x >= 0; x-- {
				route = append(route, Coord{x, y})
			}
		}
	}
	return route
}

func routeEdges(route []Coord) map[Edge]bool {
	edges := map[Edge]bool{}
	for i := 0; i+1 < len(route); i++ {
		edges[NewEdge(route[i], route[i+1])] = true
	}
	return edges
}

func TestMakeClosuresCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		route []Coord
		want  int
	}{
		{
			// 4 unique edges clamp up to the lower bound.
			name:  "short corridor",
			route: []Coord{{2, 2}, {3, 2}, {4, 2}, {4, 3}, {4, 4}, {4, 3}, {4, 2}, {3, 2}, {2, 2}},
			want:  2,
		},
		{
			// 24 unique edges clamp down to the upper bound.
			name:  "full snake",
			route: snakeRoute(),
			want:  4,
		},
		{
			// 15 unique edges land inside the clamp window: 15/5 = 3.
			name:  "three rows",
			route: snakeRoute()[:16],
			want:  3,
		},
		{
			// Degenerate single-link tour closes everything it has.
			name:  "there and back",
			route: []Coord{{2, 2}, {3, 2}, {2, 2}},
			want:  1,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			closed := makeClosures(test.route, NewRand(7))
			assert.Len(t, closed, test.want)
		})
	}
}

func TestMakeClosuresMembersComeFromRoute(t *testing.T) {
	t.Parallel()

	route := snakeRoute()
	onRoute := routeEdges(route)
	require.Len(t, onRoute, 24)

	closed := makeClosures(route, NewRand(3))

	seen := map[Edge]bool{}
	for _, e := range closed {
		assert.True(t, onRoute[e], "closed link %v was never traversed", e)
		assert.False(t, seen[e], "link %v closed twice", e)
		seen[e] = true
	}
}

func TestMakeClosuresIgnoresRevisitedLinks(t *testing.T) {
	t.Parallel()

	// The same corridor walked twice still has only 4 unique edges.
	once := []Coord{{2, 2}, {3, 2}, {4, 2}, {4, 3}, {4, 4}, {4, 3}, {4, 2}, {3, 2}, {2, 2}}
	twice := append(append([]Coord(nil), once...), once[1:]...)

	closed := makeClosures(twice, NewRand(5))
	assert.Len(t, closed, 2)
	for _, e := range closed {
		assert.True(t, routeEdges(once)[e])
	}
}
