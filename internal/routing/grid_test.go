package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInBounds(t *testing.T) {
	tests := []struct {
		c    Coord
		want bool
	}{
		{Coord{0, 0}, true},
		{Coord{4, 4}, true},
		{Coord{2, 3}, true},
		{Coord{-1, 0}, false},
		{Coord{0, -1}, false},
		{Coord{5, 0}, false},
		{Coord{0, 5}, false},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, InBounds(test.c), "InBounds(%v)", test.c)
	}
}

func TestAdjacent(t *testing.T) {
	tests := []struct {
		a, b Coord
		want bool
	}{
		{Coord{2, 2}, Coord{3, 2}, true},
		{Coord{2, 2}, Coord{2, 1}, true},
		{Coord{2, 2}, Coord{2, 2}, false},
		{Coord{2, 2}, Coord{3, 3}, false}, // diagonal
		{Coord{0, 0}, Coord{2, 0}, false}, // teleport
	}
	for _, test := range tests {
		assert.Equal(t, test.want, Adjacent(test.a, test.b), "Adjacent(%v, %v)", test.a, test.b)
		assert.Equal(t, test.want, Adjacent(test.b, test.a), "Adjacent(%v, %v)", test.b, test.a)
	}
}

func TestNewEdgeIsOrderIndependent(t *testing.T) {
	a, b := Coord{1, 2}, Coord{1, 3}
	assert.Equal(t, NewEdge(a, b), NewEdge(b, a))

	c, d := Coord{3, 0}, Coord{2, 0}
	assert.Equal(t, NewEdge(c, d), NewEdge(d, c))
	assert.Equal(t, Coord{2, 0}, NewEdge(c, d).A)
}

func TestDirectionOffsets(t *testing.T) {
	tests := []struct {
		d      Direction
		dx, dy int
	}{
		{Up, 0, 1},
		{Down, 0, -1},
		{Left, -1, 0},
		{Right, 1, 0},
	}
	for _, test := range tests {
		dx, dy := test.d.Offset()
		assert.Equal(t, test.dx, dx, "%s dx", test.d)
		assert.Equal(t, test.dy, dy, "%s dy", test.d)
	}
}

func TestParseDirection(t *testing.T) {
	for _, d := range []Direction{Up, Down, Left, Right} {
		parsed, err := ParseDirection(d.String())
		assert.NoError(t, err)
		assert.Equal(t, d, parsed)
	}

	_, err := ParseDirection("north")
	assert.Error(t, err)
}
