package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"

	"github.com/dsa-forge/forge/internal/forge_errors"
	"github.com/dsa-forge/forge/middleware"
)

func decodeJsonBody(body io.Reader, v any) error {
	if err := json.NewDecoder(body).Decode(v); err != nil {
		return fmt.Errorf("invalid request body, %w", err)
	}
	return nil
}

func respondWithJson(w http.ResponseWriter, statusCode int, payload any) {
	responseBytes, err := json.Marshal(payload)
	if err != nil {
		log.Errorf("unable to marshal %v, %v", payload, err)
		http.Error(w, forge_errors.ErrInternal.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(responseBytes)
}

// handlerError maps service errors to status codes. Validation and
// unresolvable references are the client's fault; missing entities are
// 404; everything else is internal.
func handlerError(err error, w http.ResponseWriter, r *http.Request) {
	switch {
	case errors.Is(err, forge_errors.ErrInvalidInput),
		errors.Is(err, forge_errors.ErrInvalidRequest):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, forge_errors.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		log.WithField("request_id", middleware.RequestIDFromContext(r.Context())).
			Errorf("request to %s failed, %v", r.URL.Path, err)
		http.Error(w, forge_errors.ErrInternal.Error(), http.StatusInternalServerError)
	}
}

// handlerUpdateError is handlerError for update routes, where a missing
// target id is reported as a bad request rather than 404.
func handlerUpdateError(err error, w http.ResponseWriter, r *http.Request) {
	if errors.Is(err, forge_errors.ErrNotFound) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	handlerError(err, w, r)
}

func parseIDParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, fmt.Errorf(
			"%w, %s must be an integer",
			forge_errors.ErrInvalidInput,
			name,
		)
	}
	return id, nil
}
