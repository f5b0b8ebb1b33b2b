package progress_service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dsa-forge/forge/internal/database"
	"github.com/dsa-forge/forge/internal/forge_errors"
	"github.com/dsa-forge/forge/internal/service"
)

func (p *ProgressService) CreateProgress(ctx context.Context, req ProgressRequest) (Progress, error) {
	if err := service.ValidateInput(req); err != nil {
		return Progress{}, err
	}
	progressType, err := ParseProgressType(req.Type)
	if err != nil {
		return Progress{}, err
	}
	if _, err = p.UserServiceConfig.FetchUserByID(ctx, req.UserID); err != nil {
		if errors.Is(err, forge_errors.ErrNotFound) {
			return Progress{}, fmt.Errorf(
				"%w, user %v cannot be resolved",
				forge_errors.ErrInvalidRequest,
				req.UserID,
			)
		}
		return Progress{}, err
	}

	dbProgress, err := p.DB.CreateProgress(ctx, database.CreateProgressParams{
		UserID:             req.UserID,
		Type:               progressType,
		Category:           req.Category,
		Difficulty:         req.Difficulty,
		ProblemsSolved:     req.ProblemsSolved,
		TotalProblems:      req.TotalProblems,
		AccuracyPercentage: req.AccuracyPercentage,
		AverageTimeMs:      req.AverageTimeMs,
	})
	if err != nil {
		return Progress{}, forge_errors.HandleDBError(err, "failed to insert progress into db")
	}
	return dbProgressToService(dbProgress), nil
}

// UpdateProgress overwrites every mutable field except the owning user.
func (p *ProgressService) UpdateProgress(ctx context.Context, id int64, req ProgressUpdateRequest) (Progress, error) {
	if err := service.ValidateInput(req); err != nil {
		return Progress{}, err
	}
	progressType, err := ParseProgressType(req.Type)
	if err != nil {
		return Progress{}, err
	}

	dbProgress, err := p.DB.UpdateProgress(ctx, database.UpdateProgressParams{
		ID:                 id,
		Type:               progressType,
		Category:           req.Category,
		Difficulty:         req.Difficulty,
		ProblemsSolved:     req.ProblemsSolved,
		TotalProblems:      req.TotalProblems,
		AccuracyPercentage: req.AccuracyPercentage,
		AverageTimeMs:      req.AverageTimeMs,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Progress{}, fmt.Errorf(
				"%w, no progress exist with the given id",
				forge_errors.ErrNotFound,
			)
		}
		return Progress{}, forge_errors.HandleDBError(err, "failed to update progress in db")
	}
	return dbProgressToService(dbProgress), nil
}

func (p *ProgressService) DeleteProgress(ctx context.Context, id int64) error {
	err := p.DB.DeleteProgress(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf(
				"%w, no progress exist with the given id",
				forge_errors.ErrNotFound,
			)
		}
		return forge_errors.HandleDBError(err, "failed to delete progress from db")
	}
	return nil
}

func (p *ProgressService) getSingle(
	fetch func() (database.Progress, error),
	contextMessage string,
) (Progress, error) {
	dbProgress, err := fetch()
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Progress{}, fmt.Errorf(
				"%w, no progress matches the given criteria",
				forge_errors.ErrNotFound,
			)
		}
		return Progress{}, forge_errors.HandleDBError(err, contextMessage)
	}
	return dbProgressToService(dbProgress), nil
}

func (p *ProgressService) list(
	fetch func() ([]database.Progress, error),
	contextMessage string,
) ([]Progress, error) {
	dbRecords, err := fetch()
	if err != nil {
		return nil, forge_errors.HandleDBError(err, contextMessage)
	}
	return dbProgressListToService(dbRecords), nil
}

func (p *ProgressService) GetProgressByID(ctx context.Context, id int64) (Progress, error) {
	return p.getSingle(
		func() (database.Progress, error) { return p.DB.GetProgressByID(ctx, id) },
		"cannot fetch progress by id",
	)
}

func (p *ProgressService) GetAllProgress(ctx context.Context) ([]Progress, error) {
	return p.list(
		func() ([]database.Progress, error) { return p.DB.ListProgress(ctx) },
		"cannot fetch progress records from db",
	)
}

func (p *ProgressService) GetProgressByUser(ctx context.Context, userID int64) ([]Progress, error) {
	if _, err := p.UserServiceConfig.FetchUserByID(ctx, userID); err != nil {
		return nil, err
	}
	return p.list(
		func() ([]database.Progress, error) { return p.DB.ListProgressByUser(ctx, userID) },
		"cannot fetch progress by user",
	)
}

func (p *ProgressService) GetProgressByType(ctx context.Context, rawType string) ([]Progress, error) {
	progressType, err := ParseProgressType(rawType)
	if err != nil {
		return nil, err
	}
	return p.list(
		func() ([]database.Progress, error) { return p.DB.ListProgressByType(ctx, progressType) },
		"cannot fetch progress by type",
	)
}

func (p *ProgressService) GetProgressByUserAndType(
	ctx context.Context,
	userID int64,
	rawType string,
) ([]Progress, error) {
	progressType, err := ParseProgressType(rawType)
	if err != nil {
		return nil, err
	}
	if _, err := p.UserServiceConfig.FetchUserByID(ctx, userID); err != nil {
		return nil, err
	}
	return p.list(
		func() ([]database.Progress, error) {
			return p.DB.ListProgressByUserAndType(
				ctx,
				database.ListProgressByUserAndTypeParams{UserID: userID, Type: progressType},
			)
		},
		"cannot fetch progress by user and type",
	)
}

func (p *ProgressService) GetProgressByUserAndCategory(
	ctx context.Context,
	userID int64,
	category string,
) ([]Progress, error) {
	if _, err := p.UserServiceConfig.FetchUserByID(ctx, userID); err != nil {
		return nil, err
	}
	return p.list(
		func() ([]database.Progress, error) {
			return p.DB.ListProgressByUserAndCategory(
				ctx,
				database.ListProgressByUserAndCategoryParams{UserID: userID, Category: category},
			)
		},
		"cannot fetch progress by user and category",
	)
}

func (p *ProgressService) GetProgressByUserAndDifficulty(
	ctx context.Context,
	userID int64,
	difficulty string,
) ([]Progress, error) {
	if _, err := p.UserServiceConfig.FetchUserByID(ctx, userID); err != nil {
		return nil, err
	}
	return p.list(
		func() ([]database.Progress, error) {
			return p.DB.ListProgressByUserAndDifficulty(
				ctx,
				database.ListProgressByUserAndDifficultyParams{UserID: userID, Difficulty: difficulty},
			)
		},
		"cannot fetch progress by user and difficulty",
	)
}

func (p *ProgressService) GetProgressByUserAndTypeAndCategory(
	ctx context.Context,
	userID int64,
	rawType, category string,
) (Progress, error) {
	progressType, err := ParseProgressType(rawType)
	if err != nil {
		return Progress{}, err
	}
	return p.getSingle(
		func() (database.Progress, error) {
			return p.DB.GetProgressByUserAndTypeAndCategory(ctx, database.ProgressTypeAndCategoryParams{
				UserID:   userID,
				Type:     progressType,
				Category: category,
			})
		},
		"cannot fetch progress by user, type and category",
	)
}

func (p *ProgressService) GetProgressByUserAndTypeAndDifficulty(
	ctx context.Context,
	userID int64,
	rawType, difficulty string,
) (Progress, error) {
	progressType, err := ParseProgressType(rawType)
	if err != nil {
		return Progress{}, err
	}
	return p.getSingle(
		func() (database.Progress, error) {
			return p.DB.GetProgressByUserAndTypeAndDifficulty(ctx, database.ProgressTypeAndDifficultyParams{
				UserID:     userID,
				Type:       progressType,
				Difficulty: difficulty,
			})
		},
		"cannot fetch progress by user, type and difficulty",
	)
}

func (p *ProgressService) GetOverallProgressByUser(ctx context.Context, userID int64) (Progress, error) {
	return p.getSingle(
		func() (database.Progress, error) { return p.DB.GetOverallProgressByUser(ctx, userID) },
		"cannot fetch overall progress by user",
	)
}
