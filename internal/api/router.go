package api

import (
	"github.com/go-chi/chi/v5"
)

// Routes builds the full endpoint tree, meant to be mounted under /api.
func (a *Api) Routes() *chi.Mux {
	router := chi.NewRouter()

	router.Get("/healthz", a.HandlerReadiness)

	// problems layer
	router.Route("/problems", func(r chi.Router) {
		r.Post("/", a.HandlerCreateProblem)
		r.Get("/", a.HandlerGetAllProblems)
		r.Get("/{id}", a.HandlerGetProblemById)
		r.Get("/difficulty/{difficulty}", a.HandlerGetProblemsByDifficulty)
		r.Get("/category/{category}", a.HandlerGetProblemsByCategory)
		r.Get("/active", a.HandlerGetActiveProblems)
		r.Get("/active/difficulty/{difficulty}", a.HandlerGetActiveProblemsByDifficulty)
		r.Get("/active/category/{category}", a.HandlerGetActiveProblemsByCategory)
		r.Get("/active/difficulty/{difficulty}/category/{category}", a.HandlerGetActiveProblemsByDifficultyAndCategory)
		r.Get("/active/tag/{tag}", a.HandlerGetActiveProblemsByTag)
		r.Get("/search", a.HandlerSearchProblems)
		r.Get("/stats/difficulty/{difficulty}", a.HandlerCountProblemsByDifficulty)
		r.Get("/stats/category/{category}", a.HandlerCountProblemsByCategory)
		r.Put("/{id}", a.HandlerUpdateProblem)
		r.Put("/{id}/deactivate", a.HandlerDeactivateProblem)
		r.Delete("/{id}", a.HandlerDeleteProblem)
	})

	// submissions layer
	router.Route("/submissions", func(r chi.Router) {
		r.Post("/", a.HandlerCreateSubmission)
		r.Get("/", a.HandlerGetAllSubmissions)
		r.Get("/{id}", a.HandlerGetSubmissionById)
		r.Get("/user/{userId}", a.HandlerGetSubmissionsByUser)
		r.Get("/problem/{problemId}", a.HandlerGetSubmissionsByProblem)
		r.Get("/status/{status}", a.HandlerGetSubmissionsByStatus)
		r.Get("/language/{language}", a.HandlerGetSubmissionsByLanguage)
		r.Get("/user/{userId}/status/{status}", a.HandlerGetSubmissionsByUserAndStatus)
		r.Get("/user/{userId}/difficulty/{difficulty}", a.HandlerGetSubmissionsByUserAndDifficulty)
		r.Get("/user/{userId}/category/{category}", a.HandlerGetSubmissionsByUserAndCategory)
		r.Get("/user/{userId}/problem/{problemId}", a.HandlerGetSubmissionByUserAndProblem)
		r.Get("/user/{userId}/problem/{problemId}/accepted", a.HandlerGetAcceptedSubmissionByUserAndProblem)
		r.Get("/user/{userId}/problem/{problemId}/exists", a.HandlerHasUserSubmittedProblem)
		r.Get("/user/{userId}/accepted", a.HandlerCountAcceptedByUser)
		r.Get("/problem/{problemId}/accepted", a.HandlerCountAcceptedByProblem)
		r.Get("/problem/{problemId}/accepted/all", a.HandlerGetAcceptedSubmissionsByProblem)
		r.Get("/user/{userId}/range", a.HandlerGetSubmissionsByUserAndRange)
		r.Put("/{id}", a.HandlerUpdateSubmission)
		r.Delete("/{id}", a.HandlerDeleteSubmission)
	})

	// progress layer
	router.Route("/progress", func(r chi.Router) {
		r.Post("/", a.HandlerCreateProgress)
		r.Get("/", a.HandlerGetAllProgress)
		r.Get("/{id}", a.HandlerGetProgressById)
		r.Get("/user/{userId}", a.HandlerGetProgressByUser)
		r.Get("/type/{type}", a.HandlerGetProgressByType)
		r.Get("/user/{userId}/type/{type}", a.HandlerGetProgressByUserAndType)
		r.Get("/user/{userId}/category/{category}", a.HandlerGetProgressByUserAndCategory)
		r.Get("/user/{userId}/difficulty/{difficulty}", a.HandlerGetProgressByUserAndDifficulty)
		r.Get("/user/{userId}/type/{type}/category/{category}", a.HandlerGetProgressByUserTypeAndCategory)
		r.Get("/user/{userId}/type/{type}/difficulty/{difficulty}", a.HandlerGetProgressByUserTypeAndDifficulty)
		r.Get("/user/{userId}/overall", a.HandlerGetOverallProgressByUser)
		r.Put("/{id}", a.HandlerUpdateProgress)
		r.Delete("/{id}", a.HandlerDeleteProgress)
	})

	// test cases layer
	router.Route("/testcases", func(r chi.Router) {
		r.Post("/", a.HandlerCreateTestCase)
		r.Get("/{id}", a.HandlerGetTestCaseById)
		r.Get("/problem/{problemId}", a.HandlerGetTestCasesByProblem)
		r.Get("/problem/{problemId}/sample", a.HandlerGetTestCasesByProblemAndSample)
		r.Get("/problem/{problemId}/hidden", a.HandlerGetTestCasesByProblemAndHidden)
		r.Get("/problem/{problemId}/samples", a.HandlerGetSampleTestCasesByProblem)
		r.Get("/problem/{problemId}/visible", a.HandlerGetVisibleTestCasesByProblem)
		r.Get("/problem/{problemId}/count", a.HandlerCountTestCasesByProblem)
		r.Get("/problem/{problemId}/samples/count", a.HandlerCountSampleTestCasesByProblem)
	})

	return router
}
