package handlers

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssmohri/SCM-resilience/internal/routing"
)

func TestNewPuzzleSnapshotInitial(t *testing.T) {
	state := routing.NewPuzzle(routing.NewRand(routing.DefaultSeed))
	started := pgtype.Timestamptz{Time: time.UnixMilli(1700000000000), Valid: true}

	dto := NewPuzzleSnapshot(42, started, pgtype.Timestamptz{}, state)

	assert.Equal(t, "42", dto.PuzzleSessionId)
	assert.Equal(t, "initial", dto.Phase)
	assert.Equal(t, routing.Coord{X: 2, Y: 2}, dto.Depot)
	assert.Len(t, dto.Demands, routing.NumDemands)
	assert.Equal(t, 0, dto.Distance)
	assert.Equal(t, routing.NumDemands, dto.RemainingCount)
	assert.Equal(t, int64(1700000000000), dto.StartedAt)
	assert.Nil(t, dto.EndedAt)
	assert.Nil(t, dto.InitialDistance)
	assert.Nil(t, dto.DeviationPct)
}

func TestNewPuzzleSnapshotCompleted(t *testing.T) {
	state := routing.NewPuzzle(routing.NewRand(routing.DefaultSeed))
	state.Phase = routing.Reroute
	state.Completed = true
	state.InitialDistance = 8
	state.RerouteDistance = 10
	state.DeviationPct = 25

	ended := pgtype.Timestamptz{Time: time.UnixMilli(1700000009000), Valid: true}
	dto := NewPuzzleSnapshot(7, pgtype.Timestamptz{Valid: true}, ended, state)

	require.NotNil(t, dto.InitialDistance)
	assert.Equal(t, 8, *dto.InitialDistance)
	require.NotNil(t, dto.RerouteDistance)
	assert.Equal(t, 10, *dto.RerouteDistance)
	require.NotNil(t, dto.DeviationPct)
	assert.InDelta(t, 25.0, *dto.DeviationPct, 1e-9)
	require.NotNil(t, dto.EndedAt)
	assert.Equal(t, int64(1700000009000), *dto.EndedAt)

	b, err := json.Marshal(dto)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"phase":"reroute"`)
	assert.Contains(t, string(b), `"completed":true`)
}

func TestParseMoveParams(t *testing.T) {
	dto, err := ParseMoveParams(map[string][]string{"dir": {"left"}})
	require.NoError(t, err)
	assert.Equal(t, "left", dto.Dir)

	_, err = ParseMoveParams(map[string][]string{})
	assert.Error(t, err, "dir is required")
}

func TestParseNewPuzzleParams(t *testing.T) {
	dto, err := ParseNewPuzzleParams(map[string][]string{"seed": {"1337"}})
	require.NoError(t, err)
	require.NotNil(t, dto.Seed)
	assert.Equal(t, uint64(1337), *dto.Seed)

	dto, err = ParseNewPuzzleParams(map[string][]string{})
	require.NoError(t, err)
	assert.Nil(t, dto.Seed)
}
