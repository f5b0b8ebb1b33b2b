package database

import (
	"context"

	"github.com/jackc/pgx/v5"
)

const testCaseColumns = `id, problem_id, input, expected_output, is_sample, is_hidden, created_at`

type CreateTestCaseParams struct {
	ProblemID      int64
	Input          string
	ExpectedOutput string
	IsSample       bool
	IsHidden       bool
}

type TestCaseFlagParams struct {
	ProblemID int64
	Flag      bool
}

func scanTestCase(row pgx.Row) (TestCase, error) {
	var t TestCase
	err := row.Scan(
		&t.ID, &t.ProblemID, &t.Input, &t.ExpectedOutput, &t.IsSample, &t.IsHidden, &t.CreatedAt,
	)
	return t, err
}

func (q *Queries) queryTestCases(ctx context.Context, sql string, args ...any) ([]TestCase, error) {
	rows, err := q.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	testCases := []TestCase{}
	for rows.Next() {
		t, err := scanTestCase(rows)
		if err != nil {
			return nil, err
		}
		testCases = append(testCases, t)
	}
	return testCases, rows.Err()
}

func (q *Queries) CreateTestCase(ctx context.Context, arg CreateTestCaseParams) (TestCase, error) {
	return scanTestCase(q.pool.QueryRow(
		ctx,
		`INSERT INTO test_cases (problem_id, input, expected_output, is_sample, is_hidden)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+testCaseColumns,
		arg.ProblemID, arg.Input, arg.ExpectedOutput, arg.IsSample, arg.IsHidden,
	))
}

func (q *Queries) GetTestCaseByID(ctx context.Context, id int64) (TestCase, error) {
	return scanTestCase(q.pool.QueryRow(
		ctx, `SELECT `+testCaseColumns+` FROM test_cases WHERE id = $1`, id,
	))
}

func (q *Queries) ListTestCasesByProblem(ctx context.Context, problemID int64) ([]TestCase, error) {
	return q.queryTestCases(
		ctx,
		`SELECT `+testCaseColumns+` FROM test_cases WHERE problem_id = $1 ORDER BY id`,
		problemID,
	)
}

func (q *Queries) ListTestCasesByProblemAndSample(ctx context.Context, arg TestCaseFlagParams) ([]TestCase, error) {
	return q.queryTestCases(
		ctx,
		`SELECT `+testCaseColumns+` FROM test_cases WHERE problem_id = $1 AND is_sample = $2 ORDER BY id`,
		arg.ProblemID, arg.Flag,
	)
}

func (q *Queries) ListTestCasesByProblemAndHidden(ctx context.Context, arg TestCaseFlagParams) ([]TestCase, error) {
	return q.queryTestCases(
		ctx,
		`SELECT `+testCaseColumns+` FROM test_cases WHERE problem_id = $1 AND is_hidden = $2 ORDER BY id`,
		arg.ProblemID, arg.Flag,
	)
}

func (q *Queries) ListSampleTestCasesByProblem(ctx context.Context, problemID int64) ([]TestCase, error) {
	return q.queryTestCases(
		ctx,
		`SELECT `+testCaseColumns+` FROM test_cases WHERE problem_id = $1 AND is_sample ORDER BY id`,
		problemID,
	)
}

func (q *Queries) ListVisibleTestCasesByProblem(ctx context.Context, problemID int64) ([]TestCase, error) {
	return q.queryTestCases(
		ctx,
		`SELECT `+testCaseColumns+` FROM test_cases WHERE problem_id = $1 AND NOT is_hidden ORDER BY id`,
		problemID,
	)
}

func (q *Queries) CountTestCasesByProblem(ctx context.Context, problemID int64) (int64, error) {
	var count int64
	err := q.pool.QueryRow(
		ctx, `SELECT COUNT(*) FROM test_cases WHERE problem_id = $1`, problemID,
	).Scan(&count)
	return count, err
}

func (q *Queries) CountSampleTestCasesByProblem(ctx context.Context, problemID int64) (int64, error) {
	var count int64
	err := q.pool.QueryRow(
		ctx, `SELECT COUNT(*) FROM test_cases WHERE problem_id = $1 AND is_sample`, problemID,
	).Scan(&count)
	return count, err
}
