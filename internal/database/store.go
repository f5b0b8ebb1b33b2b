package database

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store is the query surface the services are written against. The
// production implementation is Queries over a pgx pool; tests run
// against the in-memory fake in the dbtest package.
type Store interface {
	// problems
	CreateProblem(ctx context.Context, arg CreateProblemParams) (Problem, error)
	UpdateProblem(ctx context.Context, arg UpdateProblemParams) (Problem, error)
	DeactivateProblem(ctx context.Context, id int64) (Problem, error)
	DeleteProblem(ctx context.Context, id int64) error
	GetProblemByID(ctx context.Context, id int64) (Problem, error)
	ListProblems(ctx context.Context) ([]Problem, error)
	ListProblemsByDifficulty(ctx context.Context, difficulty Difficulty) ([]Problem, error)
	ListProblemsByCategory(ctx context.Context, category Category) ([]Problem, error)
	ListActiveProblems(ctx context.Context) ([]Problem, error)
	ListActiveProblemsByDifficulty(ctx context.Context, difficulty Difficulty) ([]Problem, error)
	ListActiveProblemsByCategory(ctx context.Context, category Category) ([]Problem, error)
	ListActiveProblemsByDifficultyAndCategory(ctx context.Context, arg DifficultyAndCategoryParams) ([]Problem, error)
	ListActiveProblemsByTag(ctx context.Context, tag string) ([]Problem, error)
	SearchProblems(ctx context.Context, term string) ([]Problem, error)
	CountActiveProblemsByDifficulty(ctx context.Context, difficulty Difficulty) (int64, error)
	CountActiveProblemsByCategory(ctx context.Context, category Category) (int64, error)

	// submissions
	CreateSubmission(ctx context.Context, arg CreateSubmissionParams) (ProblemSubmission, error)
	UpdateSubmissionResult(ctx context.Context, arg UpdateSubmissionResultParams) (ProblemSubmission, error)
	DeleteSubmission(ctx context.Context, id int64) error
	GetSubmissionByID(ctx context.Context, id int64) (ProblemSubmission, error)
	ListSubmissions(ctx context.Context) ([]ProblemSubmission, error)
	ListSubmissionsByUser(ctx context.Context, userID int64) ([]ProblemSubmission, error)
	ListSubmissionsByProblem(ctx context.Context, problemID int64) ([]ProblemSubmission, error)
	ListSubmissionsByStatus(ctx context.Context, status SubmissionStatus) ([]ProblemSubmission, error)
	ListSubmissionsByLanguage(ctx context.Context, language Language) ([]ProblemSubmission, error)
	GetSubmissionByUserAndProblem(ctx context.Context, arg UserAndProblemParams) (ProblemSubmission, error)
	ListSubmissionsByUserAndStatus(ctx context.Context, arg ListSubmissionsByUserAndStatusParams) ([]ProblemSubmission, error)
	ListAcceptedSubmissionsByProblem(ctx context.Context, problemID int64) ([]ProblemSubmission, error)
	GetAcceptedSubmissionByUserAndProblem(ctx context.Context, arg UserAndProblemParams) (ProblemSubmission, error)
	CountAcceptedSubmissionsByUser(ctx context.Context, userID int64) (int64, error)
	CountAcceptedSubmissionsByProblem(ctx context.Context, problemID int64) (int64, error)
	ListSubmissionsByUserBetween(ctx context.Context, arg ListSubmissionsByUserBetweenParams) ([]ProblemSubmission, error)
	ListSubmissionsByUserAndProblemDifficulty(ctx context.Context, arg ListSubmissionsByUserAndProblemDifficultyParams) ([]ProblemSubmission, error)
	ListSubmissionsByUserAndProblemCategory(ctx context.Context, arg ListSubmissionsByUserAndProblemCategoryParams) ([]ProblemSubmission, error)
	SubmissionExistsByUserAndProblem(ctx context.Context, arg UserAndProblemParams) (bool, error)

	// test cases
	CreateTestCase(ctx context.Context, arg CreateTestCaseParams) (TestCase, error)
	GetTestCaseByID(ctx context.Context, id int64) (TestCase, error)
	ListTestCasesByProblem(ctx context.Context, problemID int64) ([]TestCase, error)
	ListTestCasesByProblemAndSample(ctx context.Context, arg TestCaseFlagParams) ([]TestCase, error)
	ListTestCasesByProblemAndHidden(ctx context.Context, arg TestCaseFlagParams) ([]TestCase, error)
	ListSampleTestCasesByProblem(ctx context.Context, problemID int64) ([]TestCase, error)
	ListVisibleTestCasesByProblem(ctx context.Context, problemID int64) ([]TestCase, error)
	CountTestCasesByProblem(ctx context.Context, problemID int64) (int64, error)
	CountSampleTestCasesByProblem(ctx context.Context, problemID int64) (int64, error)

	// progress
	CreateProgress(ctx context.Context, arg CreateProgressParams) (Progress, error)
	UpdateProgress(ctx context.Context, arg UpdateProgressParams) (Progress, error)
	DeleteProgress(ctx context.Context, id int64) error
	GetProgressByID(ctx context.Context, id int64) (Progress, error)
	ListProgress(ctx context.Context) ([]Progress, error)
	ListProgressByUser(ctx context.Context, userID int64) ([]Progress, error)
	ListProgressByType(ctx context.Context, progressType ProgressType) ([]Progress, error)
	ListProgressByUserAndType(ctx context.Context, arg ListProgressByUserAndTypeParams) ([]Progress, error)
	ListProgressByUserAndCategory(ctx context.Context, arg ListProgressByUserAndCategoryParams) ([]Progress, error)
	ListProgressByUserAndDifficulty(ctx context.Context, arg ListProgressByUserAndDifficultyParams) ([]Progress, error)
	GetProgressByUserAndTypeAndCategory(ctx context.Context, arg ProgressTypeAndCategoryParams) (Progress, error)
	GetProgressByUserAndTypeAndDifficulty(ctx context.Context, arg ProgressTypeAndDifficultyParams) (Progress, error)
	GetOverallProgressByUser(ctx context.Context, userID int64) (Progress, error)

	// users
	GetUserByID(ctx context.Context, id int64) (User, error)
}

// Queries is the postgres implementation of Store.
type Queries struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Queries {
	return &Queries{pool: pool}
}

type DifficultyAndCategoryParams struct {
	Difficulty Difficulty
	Category   Category
}

type UserAndProblemParams struct {
	UserID    int64
	ProblemID int64
}

type ListSubmissionsByUserBetweenParams struct {
	UserID    int64
	StartDate time.Time
	EndDate   time.Time
}
