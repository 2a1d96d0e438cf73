package handlers

import (
	"strconv"

	"github.com/gorilla/schema"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/ssmohri/SCM-resilience/internal/repository"
	"github.com/ssmohri/SCM-resilience/internal/routing"
)

type NewPuzzleParams struct {
	Seed *uint64 `schema:"seed"`
}

func ParseNewPuzzleParams(src map[string][]string) (NewPuzzleParams, error) {
	var dto NewPuzzleParams
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&dto, src)
	return dto, err
}

type MoveParams struct {
	Dir string `schema:"dir,required"`
}

func ParseMoveParams(src map[string][]string) (MoveParams, error) {
	var dto MoveParams
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&dto, src)
	return dto, err
}

// PuzzleSnapshot is the wire shape of a session: full state plus the derived
// figures a client needs to draw the board.
type PuzzleSnapshot struct {
	PuzzleSessionId string          `json:"puzzle_session_id"`
	Phase           string          `json:"phase"`
	Depot           routing.Coord   `json:"depot"`
	Demands         []routing.Coord `json:"demands"`
	Route           []routing.Coord `json:"route"`
	ClosedEdges     []routing.Edge  `json:"closed_edges"`
	Current         routing.Coord   `json:"current"`
	VisitedCount    int             `json:"visited_count"`
	RemainingCount  int             `json:"remaining_count"`
	Distance        int             `json:"distance"`
	InitialDistance *int            `json:"initial_distance,omitempty"`
	RerouteDistance *int            `json:"reroute_distance,omitempty"`
	DeviationPct    *float64        `json:"deviation_pct,omitempty"`
	Completed       bool            `json:"completed"`
	StartedAt       int64           `json:"started_at"`
	EndedAt         *int64          `json:"ended_at,omitempty"`
}

func NewPuzzleSnapshot(
	puzzleSessionId int64,
	startedAt pgtype.Timestamptz,
	endedAt pgtype.Timestamptz,
	s *routing.PuzzleState,
) *PuzzleSnapshot {
	dto := &PuzzleSnapshot{
		PuzzleSessionId: strconv.FormatInt(puzzleSessionId, 10),
		Phase:           s.Phase.String(),
		Depot:           s.Depot,
		Demands:         s.Demands,
		Route:           s.Route,
		ClosedEdges:     s.Closed,
		Current:         s.Current(),
		VisitedCount:    len(s.Visited),
		RemainingCount:  len(s.Demands) - len(s.Visited),
		Distance:        routing.Distance(s.Route),
		Completed:       s.Completed,
		StartedAt:       startedAt.Time.UnixMilli(),
	}
	if s.Phase == routing.Reroute || s.Completed {
		dto.InitialDistance = &s.InitialDistance
	}
	if s.Completed {
		dto.RerouteDistance = &s.RerouteDistance
		dto.DeviationPct = &s.DeviationPct
	}
	if endedAt.Valid {
		e := endedAt.Time.UnixMilli()
		dto.EndedAt = &e
	}
	return dto
}

func SessionSnapshot(session *repository.PuzzleSession) (*PuzzleSnapshot, error) {
	state, err := session.GameState()
	if err != nil {
		return nil, err
	}
	return NewPuzzleSnapshot(
		session.PuzzleSessionId, session.StartedAt, session.EndedAt, state,
	), nil
}
