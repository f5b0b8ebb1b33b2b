package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dsa-forge/forge/internal/service/problem_service"
)

func (a *Api) HandlerCreateProblem(w http.ResponseWriter, r *http.Request) {
	var req problem_service.ProblemRequest
	if err := decodeJsonBody(r.Body, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	problem, err := a.ProblemServiceConfig.CreateProblem(r.Context(), req)
	if err != nil {
		handlerUpdateError(err, w, r)
		return
	}
	respondWithJson(w, http.StatusCreated, problem)
}

func (a *Api) HandlerGetAllProblems(w http.ResponseWriter, r *http.Request) {
	problems, err := a.ProblemServiceConfig.GetAllProblems(r.Context())
	if err != nil {
		handlerError(err, w, r)
		return
	}
	respondWithJson(w, http.StatusOK, problems)
}

func (a *Api) HandlerGetProblemById(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		handlerError(err, w, r)
		return
	}
	problem, err := a.ProblemServiceConfig.GetProblemByID(r.Context(), id)
	if err != nil {
		handlerError(err, w, r)
		return
	}
	respondWithJson(w, http.StatusOK, problem)
}

func (a *Api) HandlerGetProblemsByDifficulty(w http.ResponseWriter, r *http.Request) {
	problems, err := a.ProblemServiceConfig.GetProblemsByDifficulty(
		r.Context(), chi.URLParam(r, "difficulty"),
	)
	if err != nil {
		handlerError(err, w, r)
		return
	}
	respondWithJson(w, http.StatusOK, problems)
}

func (a *Api) HandlerGetProblemsByCategory(w http.ResponseWriter, r *http.Request) {
	problems, err := a.ProblemServiceConfig.GetProblemsByCategory(
		r.Context(), chi.URLParam(r, "category"),
	)
	if err != nil {
		handlerError(err, w, r)
		return
	}
	respondWithJson(w, http.StatusOK, problems)
}

func (a *Api) HandlerGetActiveProblems(w http.ResponseWriter, r *http.Request) {
	problems, err := a.ProblemServiceConfig.GetActiveProblems(r.Context())
	if err != nil {
		handlerError(err, w, r)
		return
	}
	respondWithJson(w, http.StatusOK, problems)
}

func (a *Api) HandlerGetActiveProblemsByDifficulty(w http.ResponseWriter, r *http.Request) {
	problems, err := a.ProblemServiceConfig.GetActiveProblemsByDifficulty(
		r.Context(), chi.URLParam(r, "difficulty"),
	)
	if err != nil {
		handlerError(err, w, r)
		return
	}
	respondWithJson(w, http.StatusOK, problems)
}

func (a *Api) HandlerGetActiveProblemsByCategory(w http.ResponseWriter, r *http.Request) {
	problems, err := a.ProblemServiceConfig.GetActiveProblemsByCategory(
		r.Context(), chi.URLParam(r, "category"),
	)
	if err != nil {
		handlerError(err, w, r)
		return
	}
	respondWithJson(w, http.StatusOK, problems)
}

func (a *Api) HandlerGetActiveProblemsByDifficultyAndCategory(w http.ResponseWriter, r *http.Request) {
	problems, err := a.ProblemServiceConfig.GetActiveProblemsByDifficultyAndCategory(
		r.Context(),
		chi.URLParam(r, "difficulty"),
		chi.URLParam(r, "category"),
	)
	if err != nil {
		handlerError(err, w, r)
		return
	}
	respondWithJson(w, http.StatusOK, problems)
}

func (a *Api) HandlerGetActiveProblemsByTag(w http.ResponseWriter, r *http.Request) {
	problems, err := a.ProblemServiceConfig.GetActiveProblemsByTag(
		r.Context(), chi.URLParam(r, "tag"),
	)
	if err != nil {
		handlerError(err, w, r)
		return
	}
	respondWithJson(w, http.StatusOK, problems)
}

func (a *Api) HandlerSearchProblems(w http.ResponseWriter, r *http.Request) {
	problems, err := a.ProblemServiceConfig.SearchProblems(
		r.Context(), r.URL.Query().Get("q"),
	)
	if err != nil {
		handlerError(err, w, r)
		return
	}
	respondWithJson(w, http.StatusOK, problems)
}

func (a *Api) HandlerCountProblemsByDifficulty(w http.ResponseWriter, r *http.Request) {
	count, err := a.ProblemServiceConfig.CountActiveProblemsByDifficulty(
		r.Context(), chi.URLParam(r, "difficulty"),
	)
	if err != nil {
		handlerError(err, w, r)
		return
	}
	respondWithJson(w, http.StatusOK, count)
}

func (a *Api) HandlerCountProblemsByCategory(w http.ResponseWriter, r *http.Request) {
	count, err := a.ProblemServiceConfig.CountActiveProblemsByCategory(
		r.Context(), chi.URLParam(r, "category"),
	)
	if err != nil {
		handlerError(err, w, r)
		return
	}
	respondWithJson(w, http.StatusOK, count)
}

func (a *Api) HandlerUpdateProblem(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		handlerError(err, w, r)
		return
	}
	var req problem_service.ProblemRequest
	if err := decodeJsonBody(r.Body, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	problem, err := a.ProblemServiceConfig.UpdateProblem(r.Context(), id, req)
	if err != nil {
		handlerUpdateError(err, w, r)
		return
	}
	respondWithJson(w, http.StatusOK, problem)
}

func (a *Api) HandlerDeactivateProblem(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		handlerError(err, w, r)
		return
	}
	problem, err := a.ProblemServiceConfig.DeactivateProblem(r.Context(), id)
	if err != nil {
		handlerError(err, w, r)
		return
	}
	respondWithJson(w, http.StatusOK, problem)
}

func (a *Api) HandlerDeleteProblem(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		handlerError(err, w, r)
		return
	}
	if err := a.ProblemServiceConfig.DeleteProblem(r.Context(), id); err != nil {
		handlerError(err, w, r)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
