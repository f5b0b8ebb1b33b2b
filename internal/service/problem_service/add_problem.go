package problem_service

import (
	"context"
	"fmt"
	"strings"

	"github.com/dsa-forge/forge/internal/database"
	"github.com/dsa-forge/forge/internal/forge_errors"
	"github.com/dsa-forge/forge/internal/service"
)

type problemFields struct {
	difficulty       database.Difficulty
	category         database.Category
	tags             []string
	timeLimitSeconds int32
	memoryLimitMB    int32
	isActive         bool
}

// resolveProblemFields validates the payload and applies the
// construction-time defaults the data model declares: time limit 1s,
// memory limit 256MB, active true.
func resolveProblemFields(req ProblemRequest) (problemFields, error) {
	if err := service.ValidateInput(req); err != nil {
		return problemFields{}, err
	}
	if strings.TrimSpace(req.Title) == "" {
		return problemFields{}, fmt.Errorf(
			"%w, title must not be blank",
			forge_errors.ErrInvalidInput,
		)
	}

	difficulty, err := ParseDifficulty(req.Difficulty)
	if err != nil {
		return problemFields{}, err
	}
	category, err := ParseCategory(req.Category)
	if err != nil {
		return problemFields{}, err
	}

	fields := problemFields{
		difficulty:       difficulty,
		category:         category,
		tags:             req.Tags,
		timeLimitSeconds: DefaultTimeLimitSeconds,
		memoryLimitMB:    DefaultMemoryLimitMB,
		isActive:         true,
	}
	if req.TimeLimitSeconds != nil {
		fields.timeLimitSeconds = *req.TimeLimitSeconds
	}
	if req.MemoryLimitMB != nil {
		fields.memoryLimitMB = *req.MemoryLimitMB
	}
	if req.IsActive != nil {
		fields.isActive = *req.IsActive
	}
	return fields, nil
}

func (p *ProblemService) CreateProblem(ctx context.Context, req ProblemRequest) (Problem, error) {
	fields, err := resolveProblemFields(req)
	if err != nil {
		return Problem{}, err
	}

	dbProblem, err := p.DB.CreateProblem(ctx, database.CreateProblemParams{
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
		return Problem{}, forge_errors.HandleDBError(err, "failed to insert problem into db")
	}
	return dbProblemToService(dbProblem), nil
}
