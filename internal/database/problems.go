package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

const problemColumns = `id, title, description, problem_statement, constraints, examples,
	expected_output, difficulty, category, time_limit_seconds, memory_limit_mb,
	is_active, created_at, updated_at`

type CreateProblemParams struct {
	Title            string
	Description      string
	ProblemStatement string
	Constraints      string
	Examples         string
	ExpectedOutput   string
	Difficulty       Difficulty
	Category         Category
	Tags             []string
	TimeLimitSeconds int32
	MemoryLimitMB    int32
	IsActive         bool
}

type UpdateProblemParams struct {
	ID               int64
	Title            string
	Description      string
	ProblemStatement string
	Constraints      string
	Examples         string
	ExpectedOutput   string
	Difficulty       Difficulty
	Category         Category
	Tags             []string
	TimeLimitSeconds int32
	MemoryLimitMB    int32
	IsActive         bool
}

func scanProblem(row pgx.Row) (Problem, error) {
	var p Problem
	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.ProblemStatement, &p.Constraints,
		&p.Examples, &p.ExpectedOutput, &p.Difficulty, &p.Category,
		&p.TimeLimitSeconds, &p.MemoryLimitMB, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// attachTags loads the ordered tag collection for every problem in ps.
func (q *Queries) attachTags(ctx context.Context, ps []Problem) error {
	if len(ps) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(ps))
	index := make(map[int64]*Problem, len(ps))
	for i := range ps {
		ids = append(ids, ps[i].ID)
		index[ps[i].ID] = &ps[i]
	}
	rows, err := q.pool.Query(
		ctx,
		`SELECT problem_id, tag FROM problem_tags WHERE problem_id = ANY($1) ORDER BY problem_id, position`,
		ids,
	)
	if err != nil {
		return fmt.Errorf("load problem tags: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var problemID int64
		var tag string
		if err := rows.Scan(&problemID, &tag); err != nil {
			return fmt.Errorf("scan problem tag: %w", err)
		}
		if p, ok := index[problemID]; ok {
			p.Tags = append(p.Tags, tag)
		}
	}
	return rows.Err()
}

func (q *Queries) queryProblems(ctx context.Context, sql string, args ...any) ([]Problem, error) {
	rows, err := q.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	problems := []Problem{}
	for rows.Next() {
		p, err := scanProblem(rows)
		if err != nil {
			return nil, err
		}
		problems = append(problems, p)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	if err = q.attachTags(ctx, problems); err != nil {
		return nil, err
	}
	return problems, nil
}

func insertProblemTags(ctx context.Context, tx pgx.Tx, problemID int64, tags []string) error {
	for i, tag := range tags {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO problem_tags (problem_id, tag, position) VALUES ($1, $2, $3)`,
			problemID, tag, i,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (q *Queries) CreateProblem(ctx context.Context, arg CreateProblemParams) (Problem, error) {
	tx, err := q.pool.Begin(ctx)
	if err != nil {
		return Problem{}, err
	}
	defer tx.Rollback(ctx)

	p, err := scanProblem(tx.QueryRow(
		ctx,
		`INSERT INTO problems (title, description, problem_statement, constraints, examples,
			expected_output, difficulty, category, time_limit_seconds, memory_limit_mb, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING `+problemColumns,
		arg.Title, arg.Description, arg.ProblemStatement, arg.Constraints, arg.Examples,
		arg.ExpectedOutput, arg.Difficulty, arg.Category, arg.TimeLimitSeconds,
		arg.MemoryLimitMB, arg.IsActive,
	))
	if err != nil {
		return Problem{}, err
	}
	if err = insertProblemTags(ctx, tx, p.ID, arg.Tags); err != nil {
		return Problem{}, err
	}
	if err = tx.Commit(ctx); err != nil {
		return Problem{}, err
	}
	p.Tags = arg.Tags
	return p, nil
}

func (q *Queries) UpdateProblem(ctx context.Context, arg UpdateProblemParams) (Problem, error) {
	tx, err := q.pool.Begin(ctx)
	if err != nil {
		return Problem{}, err
	}
	defer tx.Rollback(ctx)

	p, err := scanProblem(tx.QueryRow(
		ctx,
		`UPDATE problems SET title = $1, description = $2, problem_statement = $3,
			constraints = $4, examples = $5, expected_output = $6, difficulty = $7,
			category = $8, time_limit_seconds = $9, memory_limit_mb = $10, is_active = $11,
			updated_at = now()
		 WHERE id = $12
		 RETURNING `+problemColumns,
		arg.Title, arg.Description, arg.ProblemStatement, arg.Constraints, arg.Examples,
		arg.ExpectedOutput, arg.Difficulty, arg.Category, arg.TimeLimitSeconds,
		arg.MemoryLimitMB, arg.IsActive, arg.ID,
	))
	if err != nil {
		return Problem{}, err
	}
	if _, err = tx.Exec(ctx, `DELETE FROM problem_tags WHERE problem_id = $1`, arg.ID); err != nil {
		return Problem{}, err
	}
	if err = insertProblemTags(ctx, tx, arg.ID, arg.Tags); err != nil {
		return Problem{}, err
	}
	if err = tx.Commit(ctx); err != nil {
		return Problem{}, err
	}
	p.Tags = arg.Tags
	return p, nil
}

func (q *Queries) DeactivateProblem(ctx context.Context, id int64) (Problem, error) {
	p, err := scanProblem(q.pool.QueryRow(
		ctx,
		`UPDATE problems SET is_active = FALSE, updated_at = now()
		 WHERE id = $1
		 RETURNING `+problemColumns,
		id,
	))
	if err != nil {
		return Problem{}, err
	}
	ps := []Problem{p}
	if err = q.attachTags(ctx, ps); err != nil {
		return Problem{}, err
	}
	return ps[0], nil
}

// DeleteProblem removes the problem and everything hanging off it. The
// cascade is an explicit statement sequence inside one transaction, not a
// database-level cascading foreign key.
func (q *Queries) DeleteProblem(ctx context.Context, id int64) error {
	tx, err := q.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err = tx.Exec(ctx, `DELETE FROM problem_tags WHERE problem_id = $1`, id); err != nil {
		return err
	}
	if _, err = tx.Exec(ctx, `DELETE FROM test_cases WHERE problem_id = $1`, id); err != nil {
		return err
	}
	if _, err = tx.Exec(ctx, `DELETE FROM problem_submissions WHERE problem_id = $1`, id); err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, `DELETE FROM problems WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return tx.Commit(ctx)
}

func (q *Queries) GetProblemByID(ctx context.Context, id int64) (Problem, error) {
	p, err := scanProblem(q.pool.QueryRow(
		ctx, `SELECT `+problemColumns+` FROM problems WHERE id = $1`, id,
	))
	if err != nil {
		return Problem{}, err
	}
	ps := []Problem{p}
	if err = q.attachTags(ctx, ps); err != nil {
		return Problem{}, err
	}
	return ps[0], nil
}

func (q *Queries) ListProblems(ctx context.Context) ([]Problem, error) {
	return q.queryProblems(ctx, `SELECT `+problemColumns+` FROM problems ORDER BY id`)
}

func (q *Queries) ListProblemsByDifficulty(ctx context.Context, difficulty Difficulty) ([]Problem, error) {
	return q.queryProblems(
		ctx,
		`SELECT `+problemColumns+` FROM problems WHERE difficulty = $1 ORDER BY id`,
		difficulty,
	)
}

func (q *Queries) ListProblemsByCategory(ctx context.Context, category Category) ([]Problem, error) {
	return q.queryProblems(
		ctx,
		`SELECT `+problemColumns+` FROM problems WHERE category = $1 ORDER BY id`,
		category,
	)
}

func (q *Queries) ListActiveProblems(ctx context.Context) ([]Problem, error) {
	return q.queryProblems(ctx, `SELECT `+problemColumns+` FROM problems WHERE is_active ORDER BY id`)
}

func (q *Queries) ListActiveProblemsByDifficulty(ctx context.Context, difficulty Difficulty) ([]Problem, error) {
	return q.queryProblems(
		ctx,
		`SELECT `+problemColumns+` FROM problems WHERE difficulty = $1 AND is_active ORDER BY id`,
		difficulty,
	)
}

func (q *Queries) ListActiveProblemsByCategory(ctx context.Context, category Category) ([]Problem, error) {
	return q.queryProblems(
		ctx,
		`SELECT `+problemColumns+` FROM problems WHERE category = $1 AND is_active ORDER BY id`,
		category,
	)
}

func (q *Queries) ListActiveProblemsByDifficultyAndCategory(
	ctx context.Context,
	arg DifficultyAndCategoryParams,
) ([]Problem, error) {
	return q.queryProblems(
		ctx,
		`SELECT `+problemColumns+` FROM problems
		 WHERE difficulty = $1 AND category = $2 AND is_active ORDER BY id`,
		arg.Difficulty, arg.Category,
	)
}

func (q *Queries) ListActiveProblemsByTag(ctx context.Context, tag string) ([]Problem, error) {
	return q.queryProblems(
		ctx,
		`SELECT `+problemColumns+` FROM problems p
		 WHERE p.is_active
		   AND EXISTS (SELECT 1 FROM problem_tags t WHERE t.problem_id = p.id AND t.tag = $1)
		 ORDER BY p.id`,
		tag,
	)
}

// SearchProblems matches the term as a case-sensitive substring of either
// the title or the description.
func (q *Queries) SearchProblems(ctx context.Context, term string) ([]Problem, error) {
	like := "%" + term + "%"
	return q.queryProblems(
		ctx,
		`SELECT `+problemColumns+` FROM problems
		 WHERE title LIKE $1 OR description LIKE $1 ORDER BY id`,
		like,
	)
}

func (q *Queries) CountActiveProblemsByDifficulty(ctx context.Context, difficulty Difficulty) (int64, error) {
	var count int64
	err := q.pool.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM problems WHERE difficulty = $1 AND is_active`,
		difficulty,
	).Scan(&count)
	return count, err
}

func (q *Queries) CountActiveProblemsByCategory(ctx context.Context, category Category) (int64, error) {
	var count int64
	err := q.pool.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM problems WHERE category = $1 AND is_active`,
		category,
	).Scan(&count)
	return count, err
}
