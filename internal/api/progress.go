package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dsa-forge/forge/internal/service/progress_service"
)

func (a *Api) HandlerCreateProgress(w http.ResponseWriter, r *http.Request) {
	var req progress_service.ProgressRequest
	if err := decodeJsonBody(r.Body, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	progress, err := a.ProgressServiceConfig.CreateProgress(r.Context(), req)
	if err != nil {
		handlerUpdateError(err, w, r)
		return
	}
	respondWithJson(w, http.StatusCreated, progress)
}

func (a *Api) HandlerGetAllProgress(w http.ResponseWriter, r *http.Request) {
	progress, err := a.ProgressServiceConfig.GetAllProgress(r.Context())
	if err != nil {
		handlerError(err, w, r)
		return
	}
	respondWithJson(w, http.StatusOK, progress)
}

func (a *Api) HandlerGetProgressById(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		handlerError(err, w, r)
		return
	}
	progress, err := a.ProgressServiceConfig.GetProgressByID(r.Context(), id)
	if err != nil {
		handlerError(err, w, r)
		return
	}
	respondWithJson(w, http.StatusOK, progress)
}

func (a *Api) HandlerGetProgressByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "userId")
	if err != nil {
		handlerError(err, w, r)
		return
	}
	progress, err := a.ProgressServiceConfig.GetProgressByUser(r.Context(), userID)
	if err != nil {
		handlerError(err, w, r)
		return
	}
	respondWithJson(w, http.StatusOK, progress)
}

func (a *Api) HandlerGetProgressByType(w http.ResponseWriter, r *http.Request) {
	progress, err := a.ProgressServiceConfig.GetProgressByType(
		r.Context(), chi.URLParam(r, "type"),
	)
	if err != nil {
		handlerError(err, w, r)
		return
	}
	respondWithJson(w, http.StatusOK, progress)
}

func (a *Api) HandlerGetProgressByUserAndType(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "userId")
	if err != nil {
		handlerError(err, w, r)
		return
	}
	progress, err := a.ProgressServiceConfig.GetProgressByUserAndType(
		r.Context(), userID, chi.URLParam(r, "type"),
	)
	if err != nil {
		handlerError(err, w, r)
		return
	}
	respondWithJson(w, http.StatusOK, progress)
}

func (a *Api) HandlerGetProgressByUserAndCategory(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "userId")
	if err != nil {
		handlerError(err, w, r)
		return
	}
	progress, err := a.ProgressServiceConfig.GetProgressByUserAndCategory(
		r.Context(), userID, chi.URLParam(r, "category"),
	)
	if err != nil {
		handlerError(err, w, r)
		return
	}
	respondWithJson(w, http.StatusOK, progress)
}

func (a *Api) HandlerGetProgressByUserAndDifficulty(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "userId")
	if err != nil {
		handlerError(err, w, r)
		return
	}
	progress, err := a.ProgressServiceConfig.GetProgressByUserAndDifficulty(
		r.Context(), userID, chi.URLParam(r, "difficulty"),
	)
	if err != nil {
		handlerError(err, w, r)
		return
	}
	respondWithJson(w, http.StatusOK, progress)
}

func (a *Api) HandlerGetProgressByUserTypeAndCategory(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "userId")
	if err != nil {
		handlerError(err, w, r)
		return
	}
	progress, err := a.ProgressServiceConfig.GetProgressByUserAndTypeAndCategory(
		r.Context(), userID, chi.URLParam(r, "type"), chi.URLParam(r, "category"),
	)
	if err != nil {
		handlerError(err, w, r)
		return
	}
	respondWithJson(w, http.StatusOK, progress)
}

func (a *Api) HandlerGetProgressByUserTypeAndDifficulty(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "userId")
	if err != nil {
		handlerError(err, w, r)
		return
	}
	progress, err := a.ProgressServiceConfig.GetProgressByUserAndTypeAndDifficulty(
		r.Context(), userID, chi.URLParam(r, "type"), chi.URLParam(r, "difficulty"),
	)
	if err != nil {
		handlerError(err, w, r)
		return
	}
	respondWithJson(w, http.StatusOK, progress)
}

func (a *Api) HandlerGetOverallProgressByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "userId")
	if err != nil {
		handlerError(err, w, r)
		return
	}
	progress, err := a.ProgressServiceConfig.GetOverallProgressByUser(r.Context(), userID)
	if err != nil {
		handlerError(err, w, r)
		return
	}
	respondWithJson(w, http.StatusOK, progress)
}

func (a *Api) HandlerUpdateProgress(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		handlerError(err, w, r)
		return
	}
	var req progress_service.ProgressUpdateRequest
	if err := decodeJsonBody(r.Body, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	progress, err := a.ProgressServiceConfig.UpdateProgress(r.Context(), id, req)
	if err != nil {
		handlerUpdateError(err, w, r)
		return
	}
	respondWithJson(w, http.StatusOK, progress)
}

func (a *Api) HandlerDeleteProgress(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		handlerError(err, w, r)
		return
	}
	if err := a.ProgressServiceConfig.DeleteProgress(r.Context(), id); err != nil {
		handlerError(err, w, r)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
