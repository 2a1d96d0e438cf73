package handlers

import (
	"errors"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/ssmohri/SCM-resilience/internal/config"
	"github.com/ssmohri/SCM-resilience/internal/middleware"
	"github.com/ssmohri/SCM-resilience/internal/repository"
	"github.com/ssmohri/SCM-resilience/internal/routing"
)

var ErrPuzzleNotDone = errors.New("current puzzle is not completed yet")

type Puzzle struct {
	logger *logrus.Logger
	repo   *repository.Queries
	ws     *config.WebSocket
	rnd    *rand.Rand
}

func NewPuzzle(
	logger *logrus.Logger,
	db *pgxpool.Pool,
	ws *config.WebSocket,
	rnd *rand.Rand,
) *Puzzle {
	return &Puzzle{
		logger: logger,
		repo:   repository.New(db),
		ws:     ws,
		rnd:    rnd,
	}
}

func (h Puzzle) Create(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseNewPuzzleParams(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	seed := routing.DefaultSeed
	if dto.Seed != nil {
		seed = *dto.Seed
	}
	state := routing.NewPuzzle(routing.NewRand(seed))

	var playerId *int64
	if claims := middleware.PlayerClaims(r); claims != nil {
		playerId = &claims.PlayerId
	}

	session, err := h.repo.CreatePuzzleSession(r.Context(), state, playerId)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.WithError(err).Error("unable to create puzzle session")
		return
	}

	h.sendSnapshot(w, session)
}

func (h Puzzle) Fetch(w http.ResponseWriter, r *http.Request) {
	session, ok := h.fetchSession(w, r)
	if !ok {
		return
	}
	h.sendSnapshot(w, session)
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, routing.ErrOutOfBounds):
		return "out_of_bounds"
	case errors.Is(err, routing.ErrEdgeClosed):
		return "edge_closed"
	}
	return "rejected"
}

func (h Puzzle) Move(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseMoveParams(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	dir, err := routing.ParseDirection(dto.Dir)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	session, ok := h.fetchSession(w, r)
	if !ok {
		return
	}

	state, err := session.GameState()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.WithError(err).Error("db returned invalid puzzle_session.state")
		return
	}

	if err := state.AttemptMove(dir); err != nil {
		w.WriteHeader(http.StatusConflict)
		sendJSONOrLog(w, h.logger, map[string]string{
			"error":  err.Error(),
			"reason": rejectReason(err),
		})
		return
	}
	state.ApplyCompletion(h.rnd)

	h.persistAndSend(w, r, session, state)
}

func (h Puzzle) Undo(w http.ResponseWriter, r *http.Request) {
	session, ok := h.fetchSession(w, r)
	if !ok {
		return
	}

	state, err := session.GameState()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.WithError(err).Error("db returned invalid puzzle_session.state")
		return
	}

	state.Undo()

	h.persistAndSend(w, r, session, state)
}

func (h Puzzle) Reset(w http.ResponseWriter, r *http.Request) {
	session, ok := h.fetchSession(w, r)
	if !ok {
		return
	}

	state, err := session.GameState()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.WithError(err).Error("db returned invalid puzzle_session.state")
		return
	}

	state.Reset()

	h.persistAndSend(w, r, session, state)
}

// NewProblem swaps in a freshly sampled problem once the current one is
// finished, reopening the session.
func (h Puzzle) NewProblem(w http.ResponseWriter, r *http.Request) {
	session, ok := h.fetchSession(w, r)
	if !ok {
		return
	}

	state, err := session.GameState()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.WithError(err).Error("db returned invalid puzzle_session.state")
		return
	}

	if !state.Completed {
		w.WriteHeader(http.StatusConflict)
		sendJSONOrLog(w, h.logger, wrapError(ErrPuzzleNotDone))
		return
	}

	fresh := routing.NewPuzzle(h.rnd)

	updated, err := h.repo.UpdatePuzzleSession(
		r.Context(), session.PuzzleSessionId, fresh, nil,
	)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.WithError(err).Error("unable to update session in db")
		return
	}

	h.sendSnapshot(w, updated)
}

func (h Puzzle) fetchSession(w http.ResponseWriter, r *http.Request) (*repository.PuzzleSession, bool) {
	puzzleSessionId, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return nil, false
	}

	session, err := h.repo.FetchPuzzleSession(r.Context(), puzzleSessionId)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusNotFound)
		return nil, false
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.WithError(err).Error("unable to fetch session from db")
		return nil, false
	}

	return session, true
}

func (h Puzzle) persistAndSend(
	w http.ResponseWriter, r *http.Request,
	session *repository.PuzzleSession, state *routing.PuzzleState,
) {
	var endedAt *time.Time
	if session.EndedAt.Valid {
		t := session.EndedAt.Time
		endedAt = &t
	} else if state.Completed {
		now := time.Now().UTC()
		endedAt = &now
	}

	updated, err := h.repo.UpdatePuzzleSession(
		r.Context(), session.PuzzleSessionId, state, endedAt,
	)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.WithError(err).Error("unable to update session in db")
		return
	}

	h.sendSnapshot(w, updated)
}

func (h Puzzle) sendSnapshot(w http.ResponseWriter, session *repository.PuzzleSession) {
	snapshot, err := SessionSnapshot(session)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.WithError(err).Error("db returned invalid puzzle_session.state")
		return
	}
	sendJSONOrLog(w, h.logger, snapshot)
}
