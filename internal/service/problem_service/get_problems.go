package problem_service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	log "github.com/sirupsen/logrus"

	"github.com/dsa-forge/forge/internal/database"
	"github.com/dsa-forge/forge/internal/forge_errors"
)

func (p *ProblemService) GetProblemByID(ctx context.Context, id int64) (Problem, error) {
	dbProblem, err := p.DB.GetProblemByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Problem{}, fmt.Errorf(
				"%w, no problem exist with the given id",
				forge_errors.ErrNotFound,
			)
		}
		err = fmt.Errorf(
			"%w, cannot fetch problem with id %v, %w",
			forge_errors.ErrInternal,
			id,
			err,
		)
		log.Error(err)
		return Problem{}, err
	}
	return dbProblemToService(dbProblem), nil
}

func (p *ProblemService) listProblems(
	fetch func() ([]database.Problem, error),
	contextMessage string,
) ([]Problem, error) {
	dbProblems, err := fetch()
	if err != nil {
		return nil, forge_errors.HandleDBError(err, contextMessage)
	}
	return dbProblemsToService(dbProblems), nil
}

func (p *ProblemService) GetAllProblems(ctx context.Context) ([]Problem, error) {
	return p.listProblems(
		func() ([]database.Problem, error) { return p.DB.ListProblems(ctx) },
		"cannot fetch problems from db",
	)
}

func (p *ProblemService) GetProblemsByDifficulty(ctx context.Context, rawDifficulty string) ([]Problem, error) {
	difficulty, err := ParseDifficulty(rawDifficulty)
	if err != nil {
		return nil, err
	}
	return p.listProblems(
		func() ([]database.Problem, error) { return p.DB.ListProblemsByDifficulty(ctx, difficulty) },
		"cannot fetch problems by difficulty from db",
	)
}

func (p *ProblemService) GetProblemsByCategory(ctx context.Context, rawCategory string) ([]Problem, error) {
	category, err := ParseCategory(rawCategory)
	if err != nil {
		return nil, err
	}
	return p.listProblems(
		func() ([]database.Problem, error) { return p.DB.ListProblemsByCategory(ctx, category) },
		"cannot fetch problems by category from db",
	)
}

func (p *ProblemService) GetActiveProblems(ctx context.Context) ([]Problem, error) {
	return p.listProblems(
		func() ([]database.Problem, error) { return p.DB.ListActiveProblems(ctx) },
		"cannot fetch active problems from db",
	)
}

func (p *ProblemService) GetActiveProblemsByDifficulty(ctx context.Context, rawDifficulty string) ([]Problem, error) {
	difficulty, err := ParseDifficulty(rawDifficulty)
	if err != nil {
		return nil, err
	}
	return p.listProblems(
		func() ([]database.Problem, error) {
			return p.DB.ListActiveProblemsByDifficulty(ctx, difficulty)
		},
		"cannot fetch active problems by difficulty from db",
	)
}

func (p *ProblemService) GetActiveProblemsByCategory(ctx context.Context, rawCategory string) ([]Problem, error) {
	category, err := ParseCategory(rawCategory)
	if err != nil {
		return nil, err
	}
	return p.listProblems(
		func() ([]database.Problem, error) {
			return p.DB.ListActiveProblemsByCategory(ctx, category)
		},
		"cannot fetch active problems by category from db",
	)
}

func (p *ProblemService) GetActiveProblemsByDifficultyAndCategory(
	ctx context.Context,
	rawDifficulty, rawCategory string,
) ([]Problem, error) {
	difficulty, err := ParseDifficulty(rawDifficulty)
	if err != nil {
		return nil, err
	}
	category, err := ParseCategory(rawCategory)
	if err != nil {
		return nil, err
	}
	return p.listProblems(
		func() ([]database.Problem, error) {
			return p.DB.ListActiveProblemsByDifficultyAndCategory(
				ctx,
				database.DifficultyAndCategoryParams{Difficulty: difficulty, Category: category},
			)
		},
		"cannot fetch active problems by difficulty and category from db",
	)
}

func (p *ProblemService) GetActiveProblemsByTag(ctx context.Context, tag string) ([]Problem, error) {
	return p.listProblems(
		func() ([]database.Problem, error) { return p.DB.ListActiveProblemsByTag(ctx, tag) },
		"cannot fetch active problems by tag from db",
	)
}

// SearchProblems matches the term against both title and description.
func (p *ProblemService) SearchProblems(ctx context.Context, term string) ([]Problem, error) {
	return p.listProblems(
		func() ([]database.Problem, error) { return p.DB.SearchProblems(ctx, term) },
		"cannot search problems in db",
	)
}

func (p *ProblemService) CountActiveProblemsByDifficulty(ctx context.Context, rawDifficulty string) (int64, error) {
	difficulty, err := ParseDifficulty(rawDifficulty)
	if err != nil {
		return 0, err
	}
	count, err := p.DB.CountActiveProblemsByDifficulty(ctx, difficulty)
	if err != nil {
		return 0, forge_errors.HandleDBError(err, "cannot count active problems by difficulty")
	}
	return count, nil
}

func (p *ProblemService) CountActiveProblemsByCategory(ctx context.Context, rawCategory string) (int64, error) {
	category, err := ParseCategory(rawCategory)
	if err != nil {
		return 0, err
	}
	count, err := p.DB.CountActiveProblemsByCategory(ctx, category)
	if err != nil {
		return 0, forge_errors.HandleDBError(err, "cannot count active problems by category")
	}
	return count, nil
}
