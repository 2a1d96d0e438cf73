package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPuzzleShape(t *testing.T) {
	t.Parallel()

	s := NewPuzzle(NewRand(DefaultSeed))

	assert.Equal(t, Coord{2, 2}, s.Depot)
	require.Len(t, s.Demands, NumDemands)

	distinct := map[Coord]bool{}
	for _, c := range s.Demands {
		assert.True(t, InBounds(c), "demand %v out of bounds", c)
		assert.NotEqual(t, s.Depot, c, "demand placed on the depot")
		distinct[c] = true
	}
	assert.Len(t, distinct, NumDemands, "demand cells must be distinct")

	assert.Equal(t, []Coord{s.Depot}, s.Route)
	assert.Empty(t, s.Visited)
	assert.Equal(t, Initial, s.Phase)
	assert.Empty(t, s.Closed)
}

func TestNewPuzzleIsDeterministicPerSeed(t *testing.T) {
	t.Parallel()

	a := NewPuzzle(NewRand(DefaultSeed))
	b := NewPuzzle(NewRand(DefaultSeed))
	assert.Equal(t, a.Demands, b.Demands)

	c := NewPuzzle(NewRand(DefaultSeed + 1))
	assert.NotEqual(t, a.Demands, c.Demands)
}
