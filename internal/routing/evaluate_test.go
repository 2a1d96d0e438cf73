package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	assert.Equal(t, 0, Distance(nil))
	assert.Equal(t, 0, Distance([]Coord{{2, 2}}))
	assert.Equal(t, 8, Distance(make([]Coord, 9)))
}

func TestDeviation(t *testing.T) {
	assert.InDelta(t, 30.0, Deviation(10, 13), 1e-9)
	assert.InDelta(t, 0.0, Deviation(10, 10), 1e-9)
	assert.InDelta(t, -10.0, Deviation(10, 9), 1e-9)

	// Zero-length initial tours never divide by zero.
	assert.Equal(t, 0.0, Deviation(0, 13))
	assert.Equal(t, 0.0, Deviation(0, 0))
}
