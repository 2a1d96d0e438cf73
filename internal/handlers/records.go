package handlers

import (
	"net/http"

	"github.com/gorilla/schema"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/ssmohri/SCM-resilience/internal/middleware"
	"github.com/ssmohri/SCM-resilience/internal/repository"
)

type Records struct {
	logger *logrus.Logger
	repo   *repository.Queries
}

func NewRecords(logger *logrus.Logger, db *pgxpool.Pool) *Records {
	return &Records{
		logger: logger,
		repo:   repository.New(db),
	}
}

type recordsQuery struct {
	Username *string `schema:"username"`
}

func (h Records) List(w http.ResponseWriter, r *http.Request) {
	var dto recordsQuery
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	if err := dec.Decode(&dto, r.URL.Query()); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	h.send(w, r, repository.TourRecordFilter{Username: dto.Username})
}

func (h Records) Mine(w http.ResponseWriter, r *http.Request) {
	claims := middleware.PlayerClaims(r)
	if claims == nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	h.send(w, r, repository.TourRecordFilter{Username: &claims.Username})
}

func (h Records) send(w http.ResponseWriter, r *http.Request, filter repository.TourRecordFilter) {
	records, err := h.repo.GetTourRecords(r.Context(), filter)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.WithError(err).Error("unable to fetch records from db")
		return
	}

	sendJSONOrLog(w, h.logger, records)
}
