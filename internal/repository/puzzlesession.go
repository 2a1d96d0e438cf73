package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/ssmohri/SCM-resilience/internal/routing"
)

type PuzzleSession struct {
	PuzzleSessionId int64
	PlayerId        *int64
	Phase           string
	Completed       bool
	InitialDistance int
	RerouteDistance int
	DeviationPct    float64
	StartedAt       pgtype.Timestamptz
	EndedAt         pgtype.Timestamptz
	State           []byte
	CreatedAt       pgtype.Timestamptz
	UpdatedAt       pgtype.Timestamptz
}

func stateArgs(state *routing.PuzzleState) (pgx.NamedArgs, error) {
	b, err := state.Bytes()
	if err != nil {
		return nil, err
	}
	return pgx.NamedArgs{
		"phase":            state.Phase.String(),
		"completed":        state.Completed,
		"initial_distance": state.InitialDistance,
		"reroute_distance": state.RerouteDistance,
		"deviation_pct":    state.DeviationPct,
		"state":            b,
	}, nil
}

func (q Queries) CreatePuzzleSession(
	ctx context.Context, state *routing.PuzzleState, playerId *int64,
) (*PuzzleSession, error) {
	args, err := stateArgs(state)
	if err != nil {
		return nil, err
	}
	args["player_id"] = playerId

	rows, _ := q.db.Query(
		ctx,
		`INSERT INTO puzzle_session (
			player_id, phase, completed,
			initial_distance, reroute_distance, deviation_pct, state
		)
		VALUES (
			@player_id, @phase, @completed,
			@initial_distance, @reroute_distance, @deviation_pct, @state
		)
		RETURNING *;`,
		args,
	)
	return pgx.CollectExactlyOneRow(
		rows, pgx.RowToAddrOfStructByName[PuzzleSession],
	)
}

func (q Queries) FetchPuzzleSession(ctx context.Context, puzzleSessionId int64) (*PuzzleSession, error) {
	rows, _ := q.db.Query(
		ctx,
		"SELECT * FROM puzzle_session WHERE puzzle_session_id = $1",
		puzzleSessionId,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[PuzzleSession])
}

// UpdatePuzzleSession writes the full game state back. A nil endedAt clears
// the column, which reopens the session when a fresh problem replaces a
// finished one.
func (q Queries) UpdatePuzzleSession(
	ctx context.Context, puzzleSessionId int64, state *routing.PuzzleState, endedAt *time.Time,
) (*PuzzleSession, error) {
	args, err := stateArgs(state)
	if err != nil {
		return nil, err
	}
	args["puzzle_session_id"] = puzzleSessionId
	args["ended_at"] = endedAt

	rows, _ := q.db.Query(
		ctx,
		`UPDATE puzzle_session SET
			phase = @phase,
			completed = @completed,
			initial_distance = @initial_distance,
			reroute_distance = @reroute_distance,
			deviation_pct = @deviation_pct,
			state = @state,
			ended_at = @ended_at
		WHERE puzzle_session_id = @puzzle_session_id
		RETURNING *;`,
		args,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[PuzzleSession])
}

func (s PuzzleSession) GameState() (*routing.PuzzleState, error) {
	return routing.DecodeState(s.State)
}
