package testcase_service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/dsa-forge/forge/internal/database"
	"github.com/dsa-forge/forge/internal/forge_errors"
	"github.com/dsa-forge/forge/internal/service"
	"github.com/dsa-forge/forge/internal/service/problem_service"
)

type TestCaseService struct {
	DB                   database.Store
	ProblemServiceConfig *problem_service.ProblemService
}

type TestCase struct {
	ID             int64     `json:"id"`
	ProblemID      int64     `json:"problemId"`
	Input          string    `json:"input"`
	ExpectedOutput string    `json:"expectedOutput"`
	IsSample       bool      `json:"isSample"`
	IsHidden       bool      `json:"isHidden"`
	CreatedAt      time.Time `json:"createdAt"`
}

type TestCaseRequest struct {
	ProblemID      int64  `json:"problemId" validate:"required"`
	Input          string `json:"input" validate:"required"`
	ExpectedOutput string `json:"expectedOutput" validate:"required"`
	IsSample       bool   `json:"isSample"`
	IsHidden       bool   `json:"isHidden"`
}

func dbTestCaseToService(t database.TestCase) TestCase {
	return TestCase{
		ID:             t.ID,
		ProblemID:      t.ProblemID,
		Input:          t.Input,
		ExpectedOutput: t.ExpectedOutput,
		IsSample:       t.IsSample,
		IsHidden:       t.IsHidden,
		CreatedAt:      t.CreatedAt,
	}
}

func dbTestCasesToService(dbTestCases []database.TestCase) []TestCase {
	testCases := make([]TestCase, 0, len(dbTestCases))
	for _, t := range dbTestCases {
		testCases = append(testCases, dbTestCaseToService(t))
	}
	return testCases
}

func (t *TestCaseService) CreateTestCase(ctx context.Context, req TestCaseRequest) (TestCase, error) {
	if err := service.ValidateInput(req); err != nil {
		return TestCase{}, err
	}
	if _, err := t.ProblemServiceConfig.GetProblemByID(ctx, req.ProblemID); err != nil {
		if errors.Is(err, forge_errors.ErrNotFound) {
			return TestCase{}, fmt.Errorf(
				"%w, problem %v cannot be resolved",
				forge_errors.ErrInvalidRequest,
				req.ProblemID,
			)
		}
		return TestCase{}, err
	}

	dbTestCase, err := t.DB.CreateTestCase(ctx, database.CreateTestCaseParams{
		ProblemID:      req.ProblemID,
		Input:          req.Input,
		ExpectedOutput: req.ExpectedOutput,
		IsSample:       req.IsSample,
		IsHidden:       req.IsHidden,
	})
	if err != nil {
		return TestCase{}, forge_errors.HandleDBError(err, "failed to insert test case into db")
	}
	return dbTestCaseToService(dbTestCase), nil
}

func (t *TestCaseService) GetTestCaseByID(ctx context.Context, id int64) (TestCase, error) {
	dbTestCase, err := t.DB.GetTestCaseByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return TestCase{}, fmt.Errorf(
				"%w, no test case exist with the given id",
				forge_errors.ErrNotFound,
			)
		}
		return TestCase{}, forge_errors.HandleDBError(err, "cannot fetch test case by id")
	}
	return dbTestCaseToService(dbTestCase), nil
}

func (t *TestCaseService) list(
	fetch func() ([]database.TestCase, error),
	contextMessage string,
) ([]TestCase, error) {
	dbTestCases, err := fetch()
	if err != nil {
		return nil, forge_errors.HandleDBError(err, contextMessage)
	}
	return dbTestCasesToService(dbTestCases), nil
}

func (t *TestCaseService) GetTestCasesByProblem(ctx context.Context, problemID int64) ([]TestCase, error) {
	return t.list(
		func() ([]database.TestCase, error) { return t.DB.ListTestCasesByProblem(ctx, problemID) },
		"cannot fetch test cases by problem",
	)
}

func (t *TestCaseService) GetTestCasesByProblemAndSample(
	ctx context.Context,
	problemID int64,
	isSample bool,
) ([]TestCase, error) {
	return t.list(
		func() ([]database.TestCase, error) {
			return t.DB.ListTestCasesByProblemAndSample(
				ctx,
				database.TestCaseFlagParams{ProblemID: problemID, Flag: isSample},
			)
		},
		"cannot fetch test cases by problem and sample flag",
	)
}

func (t *TestCaseService) GetTestCasesByProblemAndHidden(
	ctx context.Context,
	problemID int64,
	isHidden bool,
) ([]TestCase, error) {
	return t.list(
		func() ([]database.TestCase, error) {
			return t.DB.ListTestCasesByProblemAndHidden(
				ctx,
				database.TestCaseFlagParams{ProblemID: problemID, Flag: isHidden},
			)
		},
		"cannot fetch test cases by problem and hidden flag",
	)
}

func (t *TestCaseService) GetSampleTestCasesByProblem(ctx context.Context, problemID int64) ([]TestCase, error) {
	return t.list(
		func() ([]database.TestCase, error) { return t.DB.ListSampleTestCasesByProblem(ctx, problemID) },
		"cannot fetch sample test cases by problem",
	)
}

// GetVisibleTestCasesByProblem returns every non-hidden test case.
func (t *TestCaseService) GetVisibleTestCasesByProblem(ctx context.Context, problemID int64) ([]TestCase, error) {
	return t.list(
		func() ([]database.TestCase, error) { return t.DB.ListVisibleTestCasesByProblem(ctx, problemID) },
		"cannot fetch visible test cases by problem",
	)
}

func (t *TestCaseService) CountTestCasesByProblem(ctx context.Context, problemID int64) (int64, error) {
	count, err := t.DB.CountTestCasesByProblem(ctx, problemID)
	if err != nil {
		return 0, forge_errors.HandleDBError(err, "cannot count test cases by problem")
	}
	return count, nil
}

func (t *TestCaseService) CountSampleTestCasesByProblem(ctx context.Context, problemID int64) (int64, error) {
	count, err := t.DB.CountSampleTestCasesByProblem(ctx, problemID)
	if err != nil {
		return 0, forge_errors.HandleDBError(err, "cannot count sample test cases by problem")
	}
	return count, nil
}
