package main

import (
	"hash/maphash"
	"math/rand/v2"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ssmohri/SCM-resilience/internal/config"
	"github.com/ssmohri/SCM-resilience/internal/handlers"
	"github.com/ssmohri/SCM-resilience/internal/middleware"
)

// createRand seeds the shared problem sampler with runtime hash entropy so
// replacement problems differ between server runs.
func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func buildHandler(
	db *pgxpool.Pool,
	cookies *config.Cookies,
	jwt *config.JWT,
	ws *config.WebSocket,
) http.Handler {
	auth := handlers.NewAuth(log, db, cookies, jwt)
	puzzle := handlers.NewPuzzle(log, db, ws, createRand())
	records := handlers.NewRecords(log, db)

	mux := http.NewServeMux()

	mux.HandleFunc("POST /v1/register", auth.Register)
	mux.HandleFunc("POST /v1/login", auth.Login)
	mux.HandleFunc("POST /v1/logout", auth.Logout)
	mux.HandleFunc("GET /v1/status", auth.Status)

	mux.HandleFunc("GET /v1/records", records.List)
	mux.HandleFunc("GET /v1/myrecords", records.Mine)

	mux.HandleFunc("POST /v1/puzzle", puzzle.Create)
	mux.HandleFunc("GET /v1/puzzle/{id}", puzzle.Fetch)
	mux.HandleFunc("POST /v1/puzzle/{id}/move", puzzle.Move)
	mux.HandleFunc("POST /v1/puzzle/{id}/undo", puzzle.Undo)
	mux.HandleFunc("POST /v1/puzzle/{id}/reset", puzzle.Reset)
	mux.HandleFunc("POST /v1/puzzle/{id}/new", puzzle.NewProblem)

	mux.HandleFunc("/v1/puzzle/{id}/connect", puzzle.ConnectWS)

	return middleware.Wrap(mux,
		middleware.Cors(),
		middleware.Auth(log, cookies),
		middleware.Logging(log),
	)
}
