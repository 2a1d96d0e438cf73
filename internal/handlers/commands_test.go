package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssmohri/SCM-resilience/internal/routing"
)

func freshState(t *testing.T) *routing.PuzzleState {
	t.Helper()
	return routing.NewPuzzle(routing.NewRand(routing.DefaultSeed))
}

func TestExecuteCommandMove(t *testing.T) {
	s := freshState(t)
	rnd := routing.NewRand(1)

	got, err := executeCommand(s, rnd, "m up")
	require.NoError(t, err)
	assert.Same(t, s, got)
	assert.Len(t, s.Route, 2)

	_, err = executeCommand(s, rnd, "m sideways")
	assert.Error(t, err)
}

func TestExecuteCommandUndoReset(t *testing.T) {
	s := freshState(t)
	rnd := routing.NewRand(1)

	_, err := executeCommand(s, rnd, "m up")
	require.NoError(t, err)
	_, err = executeCommand(s, rnd, "m right")
	require.NoError(t, err)

	_, err = executeCommand(s, rnd, "u")
	require.NoError(t, err)
	assert.Len(t, s.Route, 2)

	_, err = executeCommand(s, rnd, "r")
	require.NoError(t, err)
	assert.Equal(t, []routing.Coord{s.Depot}, s.Route)
}

func TestExecuteCommandNewProblem(t *testing.T) {
	s := freshState(t)
	rnd := routing.NewRand(1)

	_, err := executeCommand(s, rnd, "n")
	assert.ErrorIs(t, err, ErrPuzzleNotDone, "unfinished puzzle must not be replaced")

	s.Completed = true
	got, err := executeCommand(s, rnd, "n")
	require.NoError(t, err)
	assert.NotSame(t, s, got)
	assert.False(t, got.Completed)
	assert.Equal(t, routing.Initial, got.Phase)
}

func TestExecuteCommandValidation(t *testing.T) {
	s := freshState(t)
	rnd := routing.NewRand(1)

	_, err := executeCommand(s, rnd, "x")
	assert.EqualError(t, err, "unknown command")

	_, err = executeCommand(s, rnd, "u now")
	assert.EqualError(t, err, "invalid number of arguments")

	_, err = executeCommand(s, rnd, "m")
	assert.EqualError(t, err, "invalid number of arguments")
}
