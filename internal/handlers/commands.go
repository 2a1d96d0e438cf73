package handlers

import (
	"errors"
	"math/rand/v2"
	"strings"

	"github.com/ssmohri/SCM-resilience/internal/routing"
)

// Maps known commands to number of arguments
var commandNargs = map[string]int{
	"m": 1, // move <up|down|left|right>
	"u": 0, // undo last move
	"r": 0, // restart current walk
	"n": 0, // swap in a new problem
}

// executeCommand applies a single wire command to the state. The returned
// state is a fresh problem for "n" and the (mutated) input otherwise.
func executeCommand(
	s *routing.PuzzleState, rnd *rand.Rand, c string,
) (*routing.PuzzleState, error) {
	parts := strings.Split(c, " ")
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return nil, errors.New("unknown command")
	}
	if nargs != len(parts)-1 {
		return nil, errors.New("invalid number of arguments")
	}
	switch parts[0] {
	case "m":
		dir, err := routing.ParseDirection(parts[1])
		if err != nil {
			return nil, err
		}
		if err := s.AttemptMove(dir); err != nil {
			return nil, err
		}
		s.ApplyCompletion(rnd)
		return s, nil
	case "u":
		s.Undo()
		return s, nil
	case "r":
		s.Reset()
		return s, nil
	case "n":
		if !s.Completed {
			return nil, ErrPuzzleNotDone
		}
		return routing.NewPuzzle(rnd), nil
	}
	return nil, errors.New("invalid command")
}
