package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dsa-forge/forge/internal/forge_errors"
	"github.com/dsa-forge/forge/internal/service/submission_service"
)

func (a *Api) HandlerCreateSubmission(w http.ResponseWriter, r *http.Request) {
	var req submission_service.SubmissionRequest
	if err := decodeJsonBody(r.Body, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	submission, err := a.SubmissionServiceConfig.CreateSubmission(r.Context(), req)
	if err != nil {
		handlerUpdateError(err, w, r)
		return
	}
	respondWithJson(w, http.StatusCreated, submission)
}

func (a *Api) HandlerGetAllSubmissions(w http.ResponseWriter, r *http.Request) {
	submissions, err := a.SubmissionServiceConfig.GetAllSubmissions(r.Context())
	if err != nil {
		handlerError(err, w, r)
		return
	}
	respondWithJson(w, http.StatusOK, submissions)
}

func (a *Api) HandlerGetSubmissionById(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		handlerError(err, w, r)
		return
	}
	submission, err := a.SubmissionServiceConfig.GetSubmissionByID(r.Context(), id)
	if err != nil {
		handlerError(err, w, r)
		return
	}
	respondWithJson(w, http.StatusOK, submission)
}

func (a *Api) HandlerGetSubmissionsByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "userId")
	if err != nil {
		handlerError(err, w, r)
		return
	}
	submissions, err := a.SubmissionServiceConfig.GetSubmissionsByUser(r.Context(), userID)
	if err != nil {
		handlerError(err, w, r)
		return
	}
	respondWithJson(w, http.StatusOK, submissions)
}

func (a *Api) HandlerGetSubmissionsByProblem(w http.ResponseWriter, r *http.Request) {
	problemID, err := parseIDParam(r, "problemId")
	if err != nil {
		handlerError(err, w, r)
		return
	}
	submissions, err := a.SubmissionServiceConfig.GetSubmissionsByProblem(r.Context(), problemID)
	if err != nil {
		handlerError(err, w, r)
		return
	}
	respondWithJson(w, http.StatusOK, submissions)
}

func (a *Api) HandlerGetSubmissionsByStatus(w http.ResponseWriter, r *http.Request) {
	submissions, err := a.SubmissionServiceConfig.GetSubmissionsByStatus(
		r.Context(), chi.URLParam(r, "status"),
	)
	if err != nil {
		handlerError(err, w, r)
		return
	}
	respondWithJson(w, http.StatusOK, submissions)
}

func (a *Api) HandlerGetSubmissionsByLanguage(w http.ResponseWriter, r *http.Request) {
	submissions, err := a.SubmissionServiceConfig.GetSubmissionsByLanguage(
		r.Context(), chi.URLParam(r, "language"),
	)
	if err != nil {
		handlerError(err, w, r)
		return
	}
	respondWithJson(w, http.StatusOK, submissions)
}

func (a *Api) HandlerGetSubmissionsByUserAndStatus(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "userId")
	if err != nil {
		handlerError(err, w, r)
		return
	}
	submissions, err := a.SubmissionServiceConfig.GetSubmissionsByUserAndStatus(
		r.Context(), userID, chi.URLParam(r, "status"),
	)
	if err != nil {
		handlerError(err, w, r)
		return
	}
	respondWithJson(w, http.StatusOK, submissions)
}

func (a *Api) HandlerGetSubmissionsByUserAndDifficulty(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "userId")
	if err != nil {
		handlerError(err, w, r)
		return
	}
	submissions, err := a.SubmissionServiceConfig.GetSubmissionsByUserAndProblemDifficulty(
		r.Context(), userID, chi.URLParam(r, "difficulty"),
	)
	if err != nil {
		handlerError(err, w, r)
		return
	}
	respondWithJson(w, http.StatusOK, submissions)
}

func (a *Api) HandlerGetSubmissionsByUserAndCategory(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "userId")
	if err != nil {
		handlerError(err, w, r)
		return
	}
	submissions, err := a.SubmissionServiceConfig.GetSubmissionsByUserAndProblemCategory(
		r.Context(), userID, chi.URLParam(r, "category"),
	)
	if err != nil {
		handlerError(err, w, r)
		return
	}
	respondWithJson(w, http.StatusOK, submissions)
}

func (a *Api) HandlerGetSubmissionByUserAndProblem(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "userId")
	if err != nil {
		handlerError(err, w, r)
		return
	}
	problemID, err := parseIDParam(r, "problemId")
	if err != nil {
		handlerError(err, w, r)
		return
	}
	submission, err := a.SubmissionServiceConfig.GetSubmissionByUserAndProblem(
		r.Context(), userID, problemID,
	)
	if err != nil {
		handlerError(err, w, r)
		return
	}
	respondWithJson(w, http.StatusOK, submission)
}

func (a *Api) HandlerGetAcceptedSubmissionsByProblem(w http.ResponseWriter, r *http.Request) {
	problemID, err := parseIDParam(r, "problemId")
	if err != nil {
		handlerError(err, w, r)
		return
	}
	submissions, err := a.SubmissionServiceConfig.GetAcceptedSubmissionsByProblem(
		r.Context(), problemID,
	)
	if err != nil {
		handlerError(err, w, r)
		return
	}
	respondWithJson(w, http.StatusOK, submissions)
}

func (a *Api) HandlerGetAcceptedSubmissionByUserAndProblem(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "userId")
	if err != nil {
		handlerError(err, w, r)
		return
	}
	problemID, err := parseIDParam(r, "problemId")
	if err != nil {
		handlerError(err, w, r)
		return
	}
	submission, err := a.SubmissionServiceConfig.GetAcceptedSubmissionByUserAndProblem(
		r.Context(), userID, problemID,
	)
	if err != nil {
		handlerError(err, w, r)
		return
	}
	respondWithJson(w, http.StatusOK, submission)
}

func (a *Api) HandlerHasUserSubmittedProblem(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "userId")
	if err != nil {
		handlerError(err, w, r)
		return
	}
	problemID, err := parseIDParam(r, "problemId")
	if err != nil {
		handlerError(err, w, r)
		return
	}
	submitted, err := a.SubmissionServiceConfig.HasUserSubmittedProblem(
		r.Context(), userID, problemID,
	)
	if err != nil {
		handlerError(err, w, r)
		return
	}
	respondWithJson(w, http.StatusOK, submitted)
}

func (a *Api) HandlerCountAcceptedByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "userId")
	if err != nil {
		handlerError(err, w, r)
		return
	}
	count, err := a.SubmissionServiceConfig.CountAcceptedSubmissionsByUser(r.Context(), userID)
	if err != nil {
		handlerError(err, w, r)
		return
	}
	respondWithJson(w, http.StatusOK, count)
}

func (a *Api) HandlerCountAcceptedByProblem(w http.ResponseWriter, r *http.Request) {
	problemID, err := parseIDParam(r, "problemId")
	if err != nil {
		handlerError(err, w, r)
		return
	}
	count, err := a.SubmissionServiceConfig.CountAcceptedSubmissionsByProblem(r.Context(), problemID)
	if err != nil {
		handlerError(err, w, r)
		return
	}
	respondWithJson(w, http.StatusOK, count)
}

// HandlerGetSubmissionsByUserAndRange expects RFC3339 start and end query
// parameters; both bounds are inclusive.
func (a *Api) HandlerGetSubmissionsByUserAndRange(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "userId")
	if err != nil {
		handlerError(err, w, r)
		return
	}
	startDate, err := time.Parse(time.RFC3339, r.URL.Query().Get("start"))
	if err != nil {
		handlerError(fmt.Errorf(
			"%w, start must be an RFC3339 timestamp", forge_errors.ErrInvalidInput,
		), w, r)
		return
	}
	endDate, err := time.Parse(time.RFC3339, r.URL.Query().Get("end"))
	if err != nil {
		handlerError(fmt.Errorf(
			"%w, end must be an RFC3339 timestamp", forge_errors.ErrInvalidInput,
		), w, r)
		return
	}

	submissions, err := a.SubmissionServiceConfig.GetSubmissionsByUserAndDateRange(
		r.Context(), userID, startDate, endDate,
	)
	if err != nil {
		handlerError(err, w, r)
		return
	}
	respondWithJson(w, http.StatusOK, submissions)
}

func (a *Api) HandlerUpdateSubmission(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		handlerError(err, w, r)
		return
	}
	var req submission_service.SubmissionResultRequest
	if err := decodeJsonBody(r.Body, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	submission, err := a.SubmissionServiceConfig.UpdateSubmission(r.Context(), id, req)
	if err != nil {
		handlerUpdateError(err, w, r)
		return
	}
	respondWithJson(w, http.StatusOK, submission)
}

func (a *Api) HandlerDeleteSubmission(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		handlerError(err, w, r)
		return
	}
	if err := a.SubmissionServiceConfig.DeleteSubmission(r.Context(), id); err != nil {
		handlerError(err, w, r)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
