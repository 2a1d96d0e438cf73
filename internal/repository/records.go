package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
)

type TourRecord struct {
	PuzzleSessionId int64   `json:"puzzle_session_id"`
	Username        *string `json:"username"`
	InitialDistance int     `json:"initial_distance"`
	RerouteDistance int     `json:"reroute_distance"`
	DeviationPct    float64 `json:"deviation_pct"`
	PlaytimeMs      float64 `json:"playtime_ms"`
}

type TourRecordFilter struct {
	Username *string
}

func (f TourRecordFilter) WhereClause() (string, pgx.NamedArgs) {
	clauses := make([]string, 0)
	args := pgx.NamedArgs{}
	if f.Username != nil {
		clauses = append(clauses, "username = @username")
		args["username"] = *f.Username
	}
	return strings.Join(clauses, " AND "), args
}

// GetTourRecords lists finished re-routing runs, best deviation first.
func (q Queries) GetTourRecords(
	ctx context.Context, filter TourRecordFilter,
) ([]TourRecord, error) {
	query := `
	SELECT
		puzzle_session_id,
		username,
		initial_distance,
		reroute_distance,
		deviation_pct,
		(
			extract('epoch' from ended_at) -
			extract('epoch' from started_at)
		) * 1000 playtime_ms
	FROM puzzle_session
		LEFT OUTER JOIN player using (player_id)
	WHERE
		completed = true
		AND ended_at IS NOT NULL
	`

	whereClause, args := filter.WhereClause()
	if whereClause != "" {
		query += " AND " + whereClause
	}

	query += " ORDER BY deviation_pct, playtime_ms;"

	rows, err := q.db.Query(ctx, query, args)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[TourRecord])
}
