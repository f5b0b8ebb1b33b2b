package database

import (
	"context"

	"github.com/jackc/pgx/v5"
)

const submissionColumns = `id, user_id, problem_id, code, language, status,
	execution_time_ms, memory_used_mb, test_cases_passed, total_test_cases,
	error_message, submitted_at`

type CreateSubmissionParams struct {
	UserID    int64
	ProblemID int64
	Code      string
	Language  Language
	Status    SubmissionStatus
}

type UpdateSubmissionResultParams struct {
	ID              int64
	Status          SubmissionStatus
	ExecutionTimeMs *int64
	MemoryUsedMB    *float64
	TestCasesPassed int32
	TotalTestCases  int32
	ErrorMessage    *string
}

type ListSubmissionsByUserAndStatusParams struct {
	UserID int64
	Status SubmissionStatus
}

type ListSubmissionsByUserAndProblemDifficultyParams struct {
	UserID     int64
	Difficulty Difficulty
}

type ListSubmissionsByUserAndProblemCategoryParams struct {
	UserID   int64
	Category Category
}

func scanSubmission(row pgx.Row) (ProblemSubmission, error) {
	var s ProblemSubmission
	err := row.Scan(
		&s.ID, &s.UserID, &s.ProblemID, &s.Code, &s.Language, &s.Status,
		&s.ExecutionTimeMs, &s.MemoryUsedMB, &s.TestCasesPassed, &s.TotalTestCases,
		&s.ErrorMessage, &s.SubmittedAt,
	)
	return s, err
}

func (q *Queries) querySubmissions(ctx context.Context, sql string, args ...any) ([]ProblemSubmission, error) {
	rows, err := q.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	submissions := []ProblemSubmission{}
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		submissions = append(submissions, s)
	}
	return submissions, rows.Err()
}

func (q *Queries) CreateSubmission(ctx context.Context, arg CreateSubmissionParams) (ProblemSubmission, error) {
	return scanSubmission(q.pool.QueryRow(
		ctx,
		`INSERT INTO problem_submissions (user_id, problem_id, code, language, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+submissionColumns,
		arg.UserID, arg.ProblemID, arg.Code, arg.Language, arg.Status,
	))
}

// UpdateSubmissionResult touches the judging-result columns only. User,
// problem, code and language are immutable after creation.
func (q *Queries) UpdateSubmissionResult(
	ctx context.Context,
	arg UpdateSubmissionResultParams,
) (ProblemSubmission, error) {
	return scanSubmission(q.pool.QueryRow(
		ctx,
		`UPDATE problem_submissions SET status = $1, execution_time_ms = $2,
			memory_used_mb = $3, test_cases_passed = $4, total_test_cases = $5,
			error_message = $6
		 WHERE id = $7
		 RETURNING `+submissionColumns,
		arg.Status, arg.ExecutionTimeMs, arg.MemoryUsedMB, arg.TestCasesPassed,
		arg.TotalTestCases, arg.ErrorMessage, arg.ID,
	))
}

func (q *Queries) DeleteSubmission(ctx context.Context, id int64) error {
	tag, err := q.pool.Exec(ctx, `DELETE FROM problem_submissions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (q *Queries) GetSubmissionByID(ctx context.Context, id int64) (ProblemSubmission, error) {
	return scanSubmission(q.pool.QueryRow(
		ctx, `SELECT `+submissionColumns+` FROM problem_submissions WHERE id = $1`, id,
	))
}

func (q *Queries) ListSubmissions(ctx context.Context) ([]ProblemSubmission, error) {
	return q.querySubmissions(ctx, `SELECT `+submissionColumns+` FROM problem_submissions ORDER BY id`)
}

func (q *Queries) ListSubmissionsByUser(ctx context.Context, userID int64) ([]ProblemSubmission, error) {
	return q.querySubmissions(
		ctx,
		`SELECT `+submissionColumns+` FROM problem_submissions WHERE user_id = $1 ORDER BY id`,
		userID,
	)
}

func (q *Queries) ListSubmissionsByProblem(ctx context.Context, problemID int64) ([]ProblemSubmission, error) {
	return q.querySubmissions(
		ctx,
		`SELECT `+submissionColumns+` FROM problem_submissions WHERE problem_id = $1 ORDER BY id`,
		problemID,
	)
}

func (q *Queries) ListSubmissionsByStatus(ctx context.Context, status SubmissionStatus) ([]ProblemSubmission, error) {
	return q.querySubmissions(
		ctx,
		`SELECT `+submissionColumns+` FROM problem_submissions WHERE status = $1 ORDER BY id`,
		status,
	)
}

func (q *Queries) ListSubmissionsByLanguage(ctx context.Context, language Language) ([]ProblemSubmission, error) {
	return q.querySubmissions(
		ctx,
		`SELECT `+submissionColumns+` FROM problem_submissions WHERE language = $1 ORDER BY id`,
		language,
	)
}

// GetSubmissionByUserAndProblem returns the earliest submission for the
// pair. Several may exist; there is no uniqueness constraint.
func (q *Queries) GetSubmissionByUserAndProblem(
	ctx context.Context,
	arg UserAndProblemParams,
) (ProblemSubmission, error) {
	return scanSubmission(q.pool.QueryRow(
		ctx,
		`SELECT `+submissionColumns+` FROM problem_submissions
		 WHERE user_id = $1 AND problem_id = $2 ORDER BY id LIMIT 1`,
		arg.UserID, arg.ProblemID,
	))
}

func (q *Queries) ListSubmissionsByUserAndStatus(
	ctx context.Context,
	arg ListSubmissionsByUserAndStatusParams,
) ([]ProblemSubmission, error) {
	return q.querySubmissions(
		ctx,
		`SELECT `+submissionColumns+` FROM problem_submissions
		 WHERE user_id = $1 AND status = $2 ORDER BY id`,
		arg.UserID, arg.Status,
	)
}

func (q *Queries) ListAcceptedSubmissionsByProblem(ctx context.Context, problemID int64) ([]ProblemSubmission, error) {
	return q.querySubmissions(
		ctx,
		`SELECT `+submissionColumns+` FROM problem_submissions
		 WHERE problem_id = $1 AND status = 'ACCEPTED' ORDER BY id`,
		problemID,
	)
}

func (q *Queries) GetAcceptedSubmissionByUserAndProblem(
	ctx context.Context,
	arg UserAndProblemParams,
) (ProblemSubmission, error) {
	return scanSubmission(q.pool.QueryRow(
		ctx,
		`SELECT `+submissionColumns+` FROM problem_submissions
		 WHERE user_id = $1 AND problem_id = $2 AND status = 'ACCEPTED' ORDER BY id LIMIT 1`,
		arg.UserID, arg.ProblemID,
	))
}

func (q *Queries) CountAcceptedSubmissionsByUser(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := q.pool.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM problem_submissions WHERE user_id = $1 AND status = 'ACCEPTED'`,
		userID,
	).Scan(&count)
	return count, err
}

func (q *Queries) CountAcceptedSubmissionsByProblem(ctx context.Context, problemID int64) (int64, error) {
	var count int64
	err := q.pool.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM problem_submissions WHERE problem_id = $1 AND status = 'ACCEPTED'`,
		problemID,
	).Scan(&count)
	return count, err
}

func (q *Queries) ListSubmissionsByUserBetween(
	ctx context.Context,
	arg ListSubmissionsByUserBetweenParams,
) ([]ProblemSubmission, error) {
	return q.querySubmissions(
		ctx,
		`SELECT `+submissionColumns+` FROM problem_submissions
		 WHERE user_id = $1 AND submitted_at >= $2 AND submitted_at <= $3 ORDER BY id`,
		arg.UserID, arg.StartDate, arg.EndDate,
	)
}

func (q *Queries) ListSubmissionsByUserAndProblemDifficulty(
	ctx context.Context,
	arg ListSubmissionsByUserAndProblemDifficultyParams,
) ([]ProblemSubmission, error) {
	return q.querySubmissions(
		ctx,
		`SELECT s.id, s.user_id, s.problem_id, s.code, s.language, s.status,
			s.execution_time_ms, s.memory_used_mb, s.test_cases_passed,
			s.total_test_cases, s.error_message, s.submitted_at
		 FROM problem_submissions s
		 JOIN problems p ON p.id = s.problem_id
		 WHERE s.user_id = $1 AND p.difficulty = $2 ORDER BY s.id`,
		arg.UserID, arg.Difficulty,
	)
}

func (q *Queries) ListSubmissionsByUserAndProblemCategory(
	ctx context.Context,
	arg ListSubmissionsByUserAndProblemCategoryParams,
) ([]ProblemSubmission, error) {
	return q.querySubmissions(
		ctx,
		`SELECT s.id, s.user_id, s.problem_id, s.code, s.language, s.status,
			s.execution_time_ms, s.memory_used_mb, s.test_cases_passed,
			s.total_test_cases, s.error_message, s.submitted_at
		 FROM problem_submissions s
		 JOIN problems p ON p.id = s.problem_id
		 WHERE s.user_id = $1 AND p.category = $2 ORDER BY s.id`,
		arg.UserID, arg.Category,
	)
}

func (q *Queries) SubmissionExistsByUserAndProblem(
	ctx context.Context,
	arg UserAndProblemParams,
) (bool, error) {
	var exists bool
	err := q.pool.QueryRow(
		ctx,
		`SELECT EXISTS (
			SELECT 1 FROM problem_submissions WHERE user_id = $1 AND problem_id = $2
		)`,
		arg.UserID, arg.ProblemID,
	).Scan(&exists)
	return exists, err
}
