package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

// ConnectWS serves an interactive session over a websocket. Each text frame
// carries newline-separated commands; every frame is answered with either an
// error object or the updated session snapshot.
func (h Puzzle) ConnectWS(w http.ResponseWriter, r *http.Request) {
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

	conn, err := h.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.WithError(err).Error("ws upgrade failed")
		return
	}
	defer conn.Close()

	for {
		mt, message, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.WithError(err).Warn("ws read failed")
			}
			break
		}
		if mt != websocket.TextMessage {
			break
		}

		text := strings.TrimSpace(string(message))
		h.logger.Debug("\t> ", text)

		var cmdErr error
		for _, c := range strings.Split(text, "\n") {
			next, err := executeCommand(state, h.rnd, c)
			if err != nil {
				cmdErr = err
				break
			}
			state = next
		}
		if cmdErr != nil {
			if err := conn.WriteJSON(wrapError(cmdErr)); err != nil {
				h.logger.WithError(err).Error("ws write failed")
				break
			}
			continue
		}

		var endedAt *time.Time
		if state.Completed {
			if session.EndedAt.Valid {
				t := session.EndedAt.Time
				endedAt = &t
			} else {
				now := time.Now().UTC()
				endedAt = &now
			}
		}

		session, err = h.repo.UpdatePuzzleSession(
			r.Context(), session.PuzzleSessionId, state, endedAt,
		)
		if err != nil {
			h.logger.WithError(err).Error("unable to update session in db")
			break
		}

		snapshot, err := SessionSnapshot(session)
		if err != nil {
			h.logger.WithError(err).Error("db returned invalid puzzle_session.state")
			break
		}
		if err := conn.WriteJSON(snapshot); err != nil {
			h.logger.WithError(err).Error("ws write failed")
			break
		}
	}
}
