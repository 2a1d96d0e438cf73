package routing

import (
	"bytes"
	"encoding/gob"
	"errors"
	"slices"
)

// Phase of the two-stage puzzle.
type Phase int8

const (
	// Initial is the first tour, on an undisturbed grid.
	Initial Phase = iota
	// Reroute is the second tour, after road closures.
	Reroute
)

func (p Phase) String() string {
	if p == Reroute {
		return "reroute"
	}
	return "initial"
}

// Move rejection errors. Both leave the state untouched.
var (
	ErrOutOfBounds = errors.New("routing: move would leave the grid")
	ErrEdgeClosed  = errors.New("routing: link is closed")
)

// PuzzleState is the complete state of one re-routing problem instance: the
// depot, the demand cells, the walk built so far, and the closures carried
// into the second phase. Depot and Demands are fixed for the lifetime of the
// instance; Closed is fixed once the first tour completes.
type PuzzleState struct {
	Depot   Coord
	Demands []Coord
	Route   []Coord
	Visited map[Coord]bool
	Phase   Phase
	Closed  []Edge

	// Completed is set once the re-route tour is finished; only then may the
	// instance be replaced by a new problem.
	Completed       bool
	InitialDistance int
	RerouteDistance int
	DeviationPct    float64
}

// DecodeState restores a PuzzleState from its gob encoding.
func DecodeState(buf []byte) (*PuzzleState, error) {
	var s PuzzleState
	if err := gob.NewDecoder(bytes.NewBuffer(buf)).Decode(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Bytes gob-encodes the state for storage.
func (s PuzzleState) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Current returns the vehicle's position, the last cell of the route.
func (s *PuzzleState) Current() Coord {
	return s.Route[len(s.Route)-1]
}

func (s *PuzzleState) isDemand(c Coord) bool {
	return slices.Contains(s.Demands, c)
}

// AttemptMove advances the route one link in direction d. It fails with
// ErrOutOfBounds when the move would leave the grid, and with ErrEdgeClosed
// when the link is closed during the re-route phase; closures are never
// checked during the initial phase. Moves are adjacent by construction, so
// no further legality check applies.
func (s *PuzzleState) AttemptMove(d Direction) error {
	dx, dy := d.Offset()
	cur := s.Current()
	next := Coord{cur.X + dx, cur.Y + dy}
	if !InBounds(next) {
		return ErrOutOfBounds
	}
	if s.Phase == Reroute && slices.Contains(s.Closed, NewEdge(cur, next)) {
		return ErrEdgeClosed
	}
	s.Route = append(s.Route, next)
	if s.isDemand(next) {
		s.Visited[next] = true
	}
	return nil
}

// Undo removes the last move and reports whether anything was undone; a
// depot-only route is left alone. Visited is recomputed from the remaining
// route, so a demand cell crossed only by the undone move drops out again.
func (s *PuzzleState) Undo() bool {
	if len(s.Route) <= 1 {
		return false
	}
	s.Route = s.Route[:len(s.Route)-1]
	s.Visited = make(map[Coord]bool, len(s.Visited))
	for _, c := range s.Route {
		if s.isDemand(c) {
			s.Visited[c] = true
		}
	}
	return true
}

// Reset truncates the route back to the depot and clears the visited set.
// Phase and closures are untouched.
func (s *PuzzleState) Reset() {
	s.Route = s.Route[:1]
	s.Visited = map[Coord]bool{}
}
