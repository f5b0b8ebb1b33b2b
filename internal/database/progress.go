package database

import (
	"context"

	"github.com/jackc/pgx/v5"
)

const progressColumns = `id, user_id, type, category, difficulty, problems_solved,
	total_problems, accuracy_percentage, average_time_ms, created_at, updated_at`

type CreateProgressParams struct {
	UserID             int64
	Type               ProgressType
	Category           *string
	Difficulty         *string
	ProblemsSolved     int32
	TotalProblems      int32
	AccuracyPercentage float64
	AverageTimeMs      int64
}

type UpdateProgressParams struct {
	ID                 int64
	Type               ProgressType
	Category           *string
	Difficulty         *string
	ProblemsSolved     int32
	TotalProblems      int32
	AccuracyPercentage float64
	AverageTimeMs      int64
}

type ListProgressByUserAndTypeParams struct {
	UserID int64
	Type   ProgressType
}

type ListProgressByUserAndCategoryParams struct {
	UserID   int64
	Category string
}

type ListProgressByUserAndDifficultyParams struct {
	UserID     int64
	Difficulty string
}

type ProgressTypeAndCategoryParams struct {
	UserID   int64
	Type     ProgressType
	Category string
}

type ProgressTypeAndDifficultyParams struct {
	UserID     int64
	Type       ProgressType
	Difficulty string
}

func scanProgress(row pgx.Row) (Progress, error) {
	var p Progress
	err := row.Scan(
		&p.ID, &p.UserID, &p.Type, &p.Category, &p.Difficulty, &p.ProblemsSolved,
		&p.TotalProblems, &p.AccuracyPercentage, &p.AverageTimeMs, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func (q *Queries) queryProgress(ctx context.Context, sql string, args ...any) ([]Progress, error) {
	rows, err := q.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []Progress{}
	for rows.Next() {
		p, err := scanProgress(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, p)
	}
	return records, rows.Err()
}

func (q *Queries) CreateProgress(ctx context.Context, arg CreateProgressParams) (Progress, error) {
	return scanProgress(q.pool.QueryRow(
		ctx,
		`INSERT INTO progress (user_id, type, category, difficulty, problems_solved,
			total_problems, accuracy_percentage, average_time_ms)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+progressColumns,
		arg.UserID, arg.Type, arg.Category, arg.Difficulty, arg.ProblemsSolved,
		arg.TotalProblems, arg.AccuracyPercentage, arg.AverageTimeMs,
	))
}

func (q *Queries) UpdateProgress(ctx context.Context, arg UpdateProgressParams) (Progress, error) {
	return scanProgress(q.pool.QueryRow(
		ctx,
		`UPDATE progress SET type = $1, category = $2, difficulty = $3,
			problems_solved = $4, total_problems = $5, accuracy_percentage = $6,
			average_time_ms = $7, updated_at = now()
		 WHERE id = $8
		 RETURNING `+progressColumns,
		arg.Type, arg.Category, arg.Difficulty, arg.ProblemsSolved, arg.TotalProblems,
		arg.AccuracyPercentage, arg.AverageTimeMs, arg.ID,
	))
}

func (q *Queries) DeleteProgress(ctx context.Context, id int64) error {
	tag, err := q.pool.Exec(ctx, `DELETE FROM progress WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (q *Queries) GetProgressByID(ctx context.Context, id int64) (Progress, error) {
	return scanProgress(q.pool.QueryRow(
		ctx, `SELECT `+progressColumns+` FROM progress WHERE id = $1`, id,
	))
}

func (q *Queries) ListProgress(ctx context.Context) ([]Progress, error) {
	return q.queryProgress(ctx, `SELECT `+progressColumns+` FROM progress ORDER BY id`)
}

func (q *Queries) ListProgressByUser(ctx context.Context, userID int64) ([]Progress, error) {
	return q.queryProgress(
		ctx,
		`SELECT `+progressColumns+` FROM progress WHERE user_id = $1 ORDER BY id`,
		userID,
	)
}

func (q *Queries) ListProgressByType(ctx context.Context, progressType ProgressType) ([]Progress, error) {
	return q.queryProgress(
		ctx,
		`SELECT `+progressColumns+` FROM progress WHERE type = $1 ORDER BY id`,
		progressType,
	)
}

func (q *Queries) ListProgressByUserAndType(
	ctx context.Context,
	arg ListProgressByUserAndTypeParams,
) ([]Progress, error) {
	return q.queryProgress(
		ctx,
		`SELECT `+progressColumns+` FROM progress WHERE user_id = $1 AND type = $2 ORDER BY id`,
		arg.UserID, arg.Type,
	)
}

func (q *Queries) ListProgressByUserAndCategory(
	ctx context.Context,
	arg ListProgressByUserAndCategoryParams,
) ([]Progress, error) {
	return q.queryProgress(
		ctx,
		`SELECT `+progressColumns+` FROM progress WHERE user_id = $1 AND category = $2 ORDER BY id`,
		arg.UserID, arg.Category,
	)
}

func (q *Queries) ListProgressByUserAndDifficulty(
	ctx context.Context,
	arg ListProgressByUserAndDifficultyParams,
) ([]Progress, error) {
	return q.queryProgress(
		ctx,
		`SELECT `+progressColumns+` FROM progress WHERE user_id = $1 AND difficulty = $2 ORDER BY id`,
		arg.UserID, arg.Difficulty,
	)
}

// Single-row lookups below take the lowest id; nothing stops multiple
// matching rows from existing.

func (q *Queries) GetProgressByUserAndTypeAndCategory(
	ctx context.Context,
	arg ProgressTypeAndCategoryParams,
) (Progress, error) {
	return scanProgress(q.pool.QueryRow(
		ctx,
		`SELECT `+progressColumns+` FROM progress
		 WHERE user_id = $1 AND type = $2 AND category = $3 ORDER BY id LIMIT 1`,
		arg.UserID, arg.Type, arg.Category,
	))
}

func (q *Queries) GetProgressByUserAndTypeAndDifficulty(
	ctx context.Context,
	arg ProgressTypeAndDifficultyParams,
) (Progress, error) {
	return scanProgress(q.pool.QueryRow(
		ctx,
		`SELECT `+progressColumns+` FROM progress
		 WHERE user_id = $1 AND type = $2 AND difficulty = $3 ORDER BY id LIMIT 1`,
		arg.UserID, arg.Type, arg.Difficulty,
	))
}

func (q *Queries) GetOverallProgressByUser(ctx context.Context, userID int64) (Progress, error) {
	return scanProgress(q.pool.QueryRow(
		ctx,
		`SELECT `+progressColumns+` FROM progress
		 WHERE user_id = $1 AND type = 'OVERALL' ORDER BY id LIMIT 1`,
		userID,
	))
}
