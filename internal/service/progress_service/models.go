package progress_service

import (
	"fmt"
	"time"

	"github.com/dsa-forge/forge/internal/database"
	"github.com/dsa-forge/forge/internal/forge_errors"
	"github.com/dsa-forge/forge/internal/service/user_service"
)

// ProgressService is a passive store for aggregate numbers computed by an
// external collaborator. It never derives accuracy or averages itself.
type ProgressService struct {
	DB                database.Store
	UserServiceConfig *user_service.UserService
}

type Progress struct {
	ID                 int64                 `json:"id"`
	UserID             int64                 `json:"userId"`
	Type               database.ProgressType `json:"type"`
	Category           *string               `json:"category"`
	Difficulty         *string               `json:"difficulty"`
	ProblemsSolved     int32                 `json:"problemsSolved"`
	TotalProblems      int32                 `json:"totalProblems"`
	AccuracyPercentage float64               `json:"accuracyPercentage"`
	AverageTimeMs      int64                 `json:"averageTimeMs"`
	CreatedAt          time.Time             `json:"createdAt"`
	UpdatedAt          time.Time             `json:"updatedAt"`
}

type ProgressRequest struct {
	UserID             int64   `json:"userId" validate:"required"`
	Type               string  `json:"type" validate:"required"`
	Category           *string `json:"category"`
	Difficulty         *string `json:"difficulty"`
	ProblemsSolved     int32   `json:"problemsSolved" validate:"gte=0"`
	TotalProblems      int32   `json:"totalProblems" validate:"gte=0"`
	AccuracyPercentage float64 `json:"accuracyPercentage" validate:"gte=0"`
	AverageTimeMs      int64   `json:"averageTimeMs" validate:"gte=0"`
}

// ProgressUpdateRequest carries everything an update may change. The
// owning user is immutable, so the payload has no user field at all.
type ProgressUpdateRequest struct {
	Type               string  `json:"type" validate:"required"`
	Category           *string `json:"category"`
	Difficulty         *string `json:"difficulty"`
	ProblemsSolved     int32   `json:"problemsSolved" validate:"gte=0"`
	TotalProblems      int32   `json:"totalProblems" validate:"gte=0"`
	AccuracyPercentage float64 `json:"accuracyPercentage" validate:"gte=0"`
	AverageTimeMs      int64   `json:"averageTimeMs" validate:"gte=0"`
}

var progressTypes = map[string]database.ProgressType{
	string(database.ProgressTypeOverall):    database.ProgressTypeOverall,
	string(database.ProgressTypeCategory):   database.ProgressTypeCategory,
	string(database.ProgressTypeDifficulty): database.ProgressTypeDifficulty,
}

func ParseProgressType(s string) (database.ProgressType, error) {
	if t, ok := progressTypes[s]; ok {
		return t, nil
	}
	return "", fmt.Errorf("%w, unknown progress type %q", forge_errors.ErrInvalidInput, s)
}

func dbProgressToService(p database.Progress) Progress {
	return Progress{
		ID:                 p.ID,
		UserID:             p.UserID,
		Type:               p.Type,
		Category:           p.Category,
		Difficulty:         p.Difficulty,
		ProblemsSolved:     p.ProblemsSolved,
		TotalProblems:      p.TotalProblems,
		AccuracyPercentage: p.AccuracyPercentage,
		AverageTimeMs:      p.AverageTimeMs,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

func dbProgressListToService(dbRecords []database.Progress) []Progress {
	records := make([]Progress, 0, len(dbRecords))
	for _, p := range dbRecords {
		records = append(records, dbProgressToService(p))
	}
	return records
}
