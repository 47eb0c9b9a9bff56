package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/fivetwenty-io/swapi/internal/view"
	"github.com/fivetwenty-io/swapi/pkg/swapi"
	"github.com/go-chi/chi/v5"
)

// Views builds the pages served by the API.
type Views interface {
	Detail(ctx context.Context, entityType swapi.EntityType, id string) (view.Page, error)
	List(ctx context.Context, entityType swapi.EntityType, query string, page int) (*view.ListView, error)
}

type errorBody struct {
	Error string `json:"error"`
}

// RegisterHandlers mounts the health check and the catalog routes on r.
func RegisterHandlers(r chi.Router, views Views, logger swapi.Logger) {
	if logger == nil {
		logger = swapi.NoopLogger{}
	}

	r.Get("/healthz", NewHealthHandler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/{type}", NewListHandler(views, logger))
		r.Get("/{type}/{id}", NewDetailHandler(views, logger))
	})
}

// NewHealthHandler reports liveness.
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

// NewListHandler serves one page of a collection. The search and page query
// parameters are forwarded to the catalog.
func NewListHandler(views Views, logger swapi.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entityType, err := swapi.ParseEntityType(chi.URLParam(r, "type"))
		if err != nil {
			writeError(w, http.StatusBadRequest, err)

			return
		}

		page := 1

		if raw := r.URL.Query().Get("page"); raw != "" {
			page, err = strconv.Atoi(raw)
			if err != nil || page < 1 {
				writeError(w, http.StatusBadRequest, fmt.Errorf("%w: %q", swapi.ErrInvalidPage, raw))

				return
			}
		}

		list, err := views.List(r.Context(), entityType, r.URL.Query().Get("search"), page)
		if err != nil {
			logger.Error("listing failed", map[string]interface{}{
				"type":       string(entityType),
				"page":       page,
				"error":      err.Error(),
				"request_id": RequestIDFromContext(r.Context()),
			})

			writeError(w, listErrorStatus(err), err)

			return
		}

		writeJSON(w, http.StatusOK, list)
	}
}

// NewDetailHandler serves the detail view of one entity, or a 404 carrying
// the not-found view.
func NewDetailHandler(views Views, logger swapi.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entityType, err := swapi.ParseEntityType(chi.URLParam(r, "type"))
		if err != nil {
			writeError(w, http.StatusBadRequest, err)

			return
		}

		page, err := views.Detail(r.Context(), entityType, chi.URLParam(r, "id"))
		if err != nil {
			logger.Error("building view failed", map[string]interface{}{
				"type":       string(entityType),
				"error":      err.Error(),
				"request_id": RequestIDFromContext(r.Context()),
			})

			writeError(w, http.StatusInternalServerError, err)

			return
		}

		if notFound, ok := page.(*view.NotFound); ok {
			writeJSON(w, http.StatusNotFound, notFound)

			return
		}

		writeJSON(w, http.StatusOK, page)
	}
}

func listErrorStatus(err error) int {
	switch {
	case errors.Is(err, swapi.ErrInvalidPage), errors.Is(err, swapi.ErrUnknownEntityType):
		return http.StatusBadRequest
	case swapi.IsNotFound(err):
		// The catalog answers an out-of-range page with 404.
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorBody{Error: err.Error()})
}
