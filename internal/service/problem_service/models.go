package problem_service

import (
	"fmt"
	"time"

	"github.com/dsa-forge/forge/internal/database"
	"github.com/dsa-forge/forge/internal/forge_errors"
)

const (
	DefaultTimeLimitSeconds = 1
	DefaultMemoryLimitMB    = 256
)

type ProblemService struct {
	DB database.Store
}

type Problem struct {
	ID               int64               `json:"id"`
	Title            string              `json:"title"`
	Description      string              `json:"description"`
	ProblemStatement string              `json:"problemStatement"`
	Constraints      string              `json:"constraints"`
	Examples         string              `json:"examples"`
	ExpectedOutput   string              `json:"expectedOutput"`
	Difficulty       database.Difficulty `json:"difficulty"`
	Category         database.Category   `json:"category"`
	Tags             []string            `json:"tags"`
	TimeLimitSeconds int32               `json:"timeLimitSeconds"`
	MemoryLimitMB    int32               `json:"memoryLimitMB"`
	IsActive         bool                `json:"isActive"`
	CreatedAt        time.Time           `json:"createdAt"`
	UpdatedAt        time.Time           `json:"updatedAt"`
}

// ProblemRequest carries a create or full-overwrite update payload. The
// limit fields and the active flag are pointers so that an absent field
// can fall back to its construction-time default.
type ProblemRequest struct {
	Title            string   `json:"title" validate:"required"`
	Description      string   `json:"description"`
	ProblemStatement string   `json:"problemStatement"`
	Constraints      string   `json:"constraints"`
	Examples         string   `json:"examples"`
	ExpectedOutput   string   `json:"expectedOutput"`
	Difficulty       string   `json:"difficulty" validate:"required"`
	Category         string   `json:"category" validate:"required"`
	Tags             []string `json:"tags"`
	TimeLimitSeconds *int32   `json:"timeLimitSeconds" validate:"omitempty,gt=0"`
	MemoryLimitMB    *int32   `json:"memoryLimitMB" validate:"omitempty,gt=0"`
	IsActive         *bool    `json:"isActive"`
}

var difficulties = map[string]database.Difficulty{
	string(database.DifficultyEasy):   database.DifficultyEasy,
	string(database.DifficultyMedium): database.DifficultyMedium,
	string(database.DifficultyHard):   database.DifficultyHard,
}

var categories = map[string]database.Category{
	string(database.CategoryArrays):             database.CategoryArrays,
	string(database.CategoryStrings):            database.CategoryStrings,
	string(database.CategoryLinkedList):         database.CategoryLinkedList,
	string(database.CategoryStack):              database.CategoryStack,
	string(database.CategoryQueue):              database.CategoryQueue,
	string(database.CategoryTree):               database.CategoryTree,
	string(database.CategoryGraph):              database.CategoryGraph,
	string(database.CategoryDynamicProgramming): database.CategoryDynamicProgramming,
	string(database.CategoryGreedy):             database.CategoryGreedy,
	string(database.CategoryBacktracking):       database.CategoryBacktracking,
	string(database.CategorySorting):            database.CategorySorting,
	string(database.CategorySearching):          database.CategorySearching,
}

// ParseDifficulty maps a raw route segment or payload value onto the
// closed difficulty set. Unknown values are rejected, never stored.
func ParseDifficulty(s string) (database.Difficulty, error) {
	if d, ok := difficulties[s]; ok {
		return d, nil
	}
	return "", fmt.Errorf("%w, unknown difficulty %q", forge_errors.ErrInvalidInput, s)
}

func ParseCategory(s string) (database.Category, error) {
	if c, ok := categories[s]; ok {
		return c, nil
	}
	return "", fmt.Errorf("%w, unknown category %q", forge_errors.ErrInvalidInput, s)
}

func dbProblemToService(p database.Problem) Problem {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return Problem{
		ID:               p.ID,
		Title:            p.Title,
		Description:      p.Description,
		ProblemStatement: p.ProblemStatement,
		Constraints:      p.Constraints,
		Examples:         p.Examples,
		ExpectedOutput:   p.ExpectedOutput,
		Difficulty:       p.Difficulty,
		Category:         p.Category,
		Tags:             tags,
		TimeLimitSeconds: p.TimeLimitSeconds,
		MemoryLimitMB:    p.MemoryLimitMB,
		IsActive:         p.IsActive,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func dbProblemsToService(dbProblems []database.Problem) []Problem {
	problems := make([]Problem, 0, len(dbProblems))
	for _, p := range dbProblems {
		problems = append(problems, dbProblemToService(p))
	}
	return problems
}
