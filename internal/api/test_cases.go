package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/dsa-forge/forge/internal/forge_errors"
	"github.com/dsa-forge/forge/internal/service/testcase_service"
)

func (a *Api) HandlerCreateTestCase(w http.ResponseWriter, r *http.Request) {
	var req testcase_service.TestCaseRequest
	if err := decodeJsonBody(r.Body, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	testCase, err := a.TestCaseServiceConfig.CreateTestCase(r.Context(), req)
	if err != nil {
		handlerUpdateError(err, w, r)
		return
	}
	respondWithJson(w, http.StatusCreated, testCase)
}

func (a *Api) HandlerGetTestCaseById(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		handlerError(err, w, r)
		return
	}
	testCase, err := a.TestCaseServiceConfig.GetTestCaseByID(r.Context(), id)
	if err != nil {
		handlerError(err, w, r)
		return
	}
	respondWithJson(w, http.StatusOK, testCase)
}

func (a *Api) HandlerGetTestCasesByProblem(w http.ResponseWriter, r *http.Request) {
	problemID, err := parseIDParam(r, "problemId")
	if err != nil {
		handlerError(err, w, r)
		return
	}
	testCases, err := a.TestCaseServiceConfig.GetTestCasesByProblem(r.Context(), problemID)
	if err != nil {
		handlerError(err, w, r)
		return
	}
	respondWithJson(w, http.StatusOK, testCases)
}

func parseFlagParam(r *http.Request, name string) (bool, error) {
	flag, err := strconv.ParseBool(r.URL.Query().Get(name))
	if err != nil {
		return false, fmt.Errorf(
			"%w, %s must be a boolean", forge_errors.ErrInvalidInput, name,
		)
	}
	return flag, nil
}

func (a *Api) HandlerGetTestCasesByProblemAndSample(w http.ResponseWriter, r *http.Request) {
	problemID, err := parseIDParam(r, "problemId")
	if err != nil {
		handlerError(err, w, r)
		return
	}
	isSample, err := parseFlagParam(r, "isSample")
	if err != nil {
		handlerError(err, w, r)
		return
	}
	testCases, err := a.TestCaseServiceConfig.GetTestCasesByProblemAndSample(
		r.Context(), problemID, isSample,
	)
	if err != nil {
		handlerError(err, w, r)
		return
	}
	respondWithJson(w, http.StatusOK, testCases)
}

func (a *Api) HandlerGetTestCasesByProblemAndHidden(w http.ResponseWriter, r *http.Request) {
	problemID, err := parseIDParam(r, "problemId")
	if err != nil {
		handlerError(err, w, r)
		return
	}
	isHidden, err := parseFlagParam(r, "isHidden")
	if err != nil {
		handlerError(err, w, r)
		return
	}
	testCases, err := a.TestCaseServiceConfig.GetTestCasesByProblemAndHidden(
		r.Context(), problemID, isHidden,
	)
	if err != nil {
		handlerError(err, w, r)
		return
	}
	respondWithJson(w, http.StatusOK, testCases)
}

func (a *Api) HandlerGetSampleTestCasesByProblem(w http.ResponseWriter, r *http.Request) {
	problemID, err := parseIDParam(r, "problemId")
	if err != nil {
		handlerError(err, w, r)
		return
	}
	testCases, err := a.TestCaseServiceConfig.GetSampleTestCasesByProblem(r.Context(), problemID)
	if err != nil {
		handlerError(err, w, r)
		return
	}
	respondWithJson(w, http.StatusOK, testCases)
}

func (a *Api) HandlerGetVisibleTestCasesByProblem(w http.ResponseWriter, r *http.Request) {
	problemID, err := parseIDParam(r, "problemId")
	if err != nil {
		handlerError(err, w, r)
		return
	}
	testCases, err := a.TestCaseServiceConfig.GetVisibleTestCasesByProblem(r.Context(), problemID)
	if err != nil {
		handlerError(err, w, r)
		return
	}
	respondWithJson(w, http.StatusOK, testCases)
}

func (a *Api) HandlerCountTestCasesByProblem(w http.ResponseWriter, r *http.Request) {
	problemID, err := parseIDParam(r, "problemId")
	if err != nil {
		handlerError(err, w, r)
		return
	}
	count, err := a.TestCaseServiceConfig.CountTestCasesByProblem(r.Context(), problemID)
	if err != nil {
		handlerError(err, w, r)
		return
	}
	respondWithJson(w, http.StatusOK, count)
}

func (a *Api) HandlerCountSampleTestCasesByProblem(w http.ResponseWriter, r *http.Request) {
	problemID, err := parseIDParam(r, "problemId")
	if err != nil {
		handlerError(err, w, r)
		return
	}
	count, err := a.TestCaseServiceConfig.CountSampleTestCasesByProblem(r.Context(), problemID)
	if err != nil {
		handlerError(err, w, r)
		return
	}
	respondWithJson(w, http.StatusOK, count)
}
