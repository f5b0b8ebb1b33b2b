package problem_service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dsa-forge/forge/internal/forge_errors"
)

// DeleteProblem hard-deletes the problem together with its submissions,
// test cases and tags.
func (p *ProblemService) DeleteProblem(ctx context.Context, id int64) error {
	err := p.DB.DeleteProblem(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf(
				"%w, no problem exist with the given id",
				forge_errors.ErrNotFound,
			)
		}
		return forge_errors.HandleDBError(err, "failed to delete problem from db")
	}
	return nil
}
