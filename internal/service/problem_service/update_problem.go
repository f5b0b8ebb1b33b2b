package problem_service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dsa-forge/forge/internal/database"
	"github.com/dsa-forge/forge/internal/forge_errors"
)

// UpdateProblem is a full overwrite: every mutable field is taken from the
// payload, including ones the client left at their defaults.
func (p *ProblemService) UpdateProblem(ctx context.Context, id int64, req ProblemRequest) (Problem, error) {
	fields, err := resolveProblemFields(req)
	if err != nil {
		return Problem{}, err
	}

	dbProblem, err := p.DB.UpdateProblem(ctx, database.UpdateProblemParams{
		ID:               id,
		Title:            req.Title,
		Description:      req.Description,
		ProblemStatement: req.ProblemStatement,
		Constraints:      req.Constraints,
		Examples:         req.Examples,
		ExpectedOutput:   req.ExpectedOutput,
		Difficulty:       fields.difficulty,
		Category:         fields.category,
		Tags:             fields.tags,
		TimeLimitSeconds: fields.timeLimitSeconds,
		MemoryLimitMB:    fields.memoryLimitMB,
		IsActive:         fields.isActive,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Problem{}, fmt.Errorf(
				"%w, no problem exist with the given id",
				forge_errors.ErrNotFound,
			)
		}
		return Problem{}, forge_errors.HandleDBError(err, "failed to update problem in db")
	}
	return dbProblemToService(dbProblem), nil
}

// DeactivateProblem flips the active flag and leaves everything else alone.
func (p *ProblemService) DeactivateProblem(ctx context.Context, id int64) (Problem, error) {
	dbProblem, err := p.DB.DeactivateProblem(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Problem{}, fmt.Errorf(
				"%w, no problem exist with the given id",
				forge_errors.ErrNotFound,
			)
		}
		return Problem{}, forge_errors.HandleDBError(err, "failed to deactivate problem in db")
	}
	return dbProblemToService(dbProblem), nil
}
