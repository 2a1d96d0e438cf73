package config

import (
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
)

type WebSocket struct {
	Upgrader websocket.Upgrader
}

func NewWebSocket(cfg Config) *WebSocket {
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			if cfg.Development() {
				return true
			}
			return strings.Contains(r.Header.Get("Origin"), cfg.Domain)
		},
	}

	return &WebSocket{
		Upgrader: upgrader,
	}
}
