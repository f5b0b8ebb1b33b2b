package submission_service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/dsa-forge/forge/internal/database"
	"github.com/dsa-forge/forge/internal/forge_errors"
	"github.com/dsa-forge/forge/internal/service/problem_service"
)

func (s *SubmissionService) getSingle(
	fetch func() (database.ProblemSubmission, error),
	contextMessage string,
) (Submission, error) {
	dbSubmission, err := fetch()
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Submission{}, fmt.Errorf(
				"%w, no submission matches the given criteria",
				forge_errors.ErrNotFound,
			)
		}
		return Submission{}, forge_errors.HandleDBError(err, contextMessage)
	}
	return dbSubmissionToService(dbSubmission), nil
}

func (s *SubmissionService) list(
	fetch func() ([]database.ProblemSubmission, error),
	contextMessage string,
) ([]Submission, error) {
	dbSubmissions, err := fetch()
	if err != nil {
		return nil, forge_errors.HandleDBError(err, contextMessage)
	}
	return dbSubmissionsToService(dbSubmissions), nil
}

func (s *SubmissionService) GetSubmissionByID(ctx context.Context, id int64) (Submission, error) {
	return s.getSingle(
		func() (database.ProblemSubmission, error) { return s.DB.GetSubmissionByID(ctx, id) },
		"cannot fetch submission by id",
	)
}

func (s *SubmissionService) GetAllSubmissions(ctx context.Context) ([]Submission, error) {
	return s.list(
		func() ([]database.ProblemSubmission, error) { return s.DB.ListSubmissions(ctx) },
		"cannot fetch submissions from db",
	)
}

func (s *SubmissionService) GetSubmissionsByUser(ctx context.Context, userID int64) ([]Submission, error) {
	if _, err := s.UserServiceConfig.FetchUserByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.list(
		func() ([]database.ProblemSubmission, error) { return s.DB.ListSubmissionsByUser(ctx, userID) },
		"cannot fetch submissions by user",
	)
}

func (s *SubmissionService) GetSubmissionsByProblem(ctx context.Context, problemID int64) ([]Submission, error) {
	if _, err := s.ProblemServiceConfig.GetProblemByID(ctx, problemID); err != nil {
		return nil, err
	}
	return s.list(
		func() ([]database.ProblemSubmission, error) {
			return s.DB.ListSubmissionsByProblem(ctx, problemID)
		},
		"cannot fetch submissions by problem",
	)
}

func (s *SubmissionService) GetSubmissionsByStatus(ctx context.Context, rawStatus string) ([]Submission, error) {
	status, err := ParseStatus(rawStatus)
	if err != nil {
		return nil, err
	}
	return s.list(
		func() ([]database.ProblemSubmission, error) { return s.DB.ListSubmissionsByStatus(ctx, status) },
		"cannot fetch submissions by status",
	)
}

func (s *SubmissionService) GetSubmissionsByLanguage(ctx context.Context, rawLanguage string) ([]Submission, error) {
	language, err := ParseLanguage(rawLanguage)
	if err != nil {
		return nil, err
	}
	return s.list(
		func() ([]database.ProblemSubmission, error) {
			return s.DB.ListSubmissionsByLanguage(ctx, language)
		},
		"cannot fetch submissions by language",
	)
}

func (s *SubmissionService) GetSubmissionByUserAndProblem(
	ctx context.Context,
	userID, problemID int64,
) (Submission, error) {
	return s.getSingle(
		func() (database.ProblemSubmission, error) {
			return s.DB.GetSubmissionByUserAndProblem(
				ctx,
				database.UserAndProblemParams{UserID: userID, ProblemID: problemID},
			)
		},
		"cannot fetch submission by user and problem",
	)
}

func (s *SubmissionService) GetSubmissionsByUserAndStatus(
	ctx context.Context,
	userID int64,
	rawStatus string,
) ([]Submission, error) {
	status, err := ParseStatus(rawStatus)
	if err != nil {
		return nil, err
	}
	if _, err := s.UserServiceConfig.FetchUserByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.list(
		func() ([]database.ProblemSubmission, error) {
			return s.DB.ListSubmissionsByUserAndStatus(
				ctx,
				database.ListSubmissionsByUserAndStatusParams{UserID: userID, Status: status},
			)
		},
		"cannot fetch submissions by user and status",
	)
}

func (s *SubmissionService) GetAcceptedSubmissionsByProblem(ctx context.Context, problemID int64) ([]Submission, error) {
	if _, err := s.ProblemServiceConfig.GetProblemByID(ctx, problemID); err != nil {
		return nil, err
	}
	return s.list(
		func() ([]database.ProblemSubmission, error) {
			return s.DB.ListAcceptedSubmissionsByProblem(ctx, problemID)
		},
		"cannot fetch accepted submissions by problem",
	)
}

func (s *SubmissionService) GetAcceptedSubmissionByUserAndProblem(
	ctx context.Context,
	userID, problemID int64,
) (Submission, error) {
	return s.getSingle(
		func() (database.ProblemSubmission, error) {
			return s.DB.GetAcceptedSubmissionByUserAndProblem(
				ctx,
				database.UserAndProblemParams{UserID: userID, ProblemID: problemID},
			)
		},
		"cannot fetch accepted submission by user and problem",
	)
}

func (s *SubmissionService) CountAcceptedSubmissionsByUser(ctx context.Context, userID int64) (int64, error) {
	if _, err := s.UserServiceConfig.FetchUserByID(ctx, userID); err != nil {
		return 0, err
	}
	count, err := s.DB.CountAcceptedSubmissionsByUser(ctx, userID)
	if err != nil {
		return 0, forge_errors.HandleDBError(err, "cannot count accepted submissions by user")
	}
	return count, nil
}

func (s *SubmissionService) CountAcceptedSubmissionsByProblem(ctx context.Context, problemID int64) (int64, error) {
	if _, err := s.ProblemServiceConfig.GetProblemByID(ctx, problemID); err != nil {
		return 0, err
	}
	count, err := s.DB.CountAcceptedSubmissionsByProblem(ctx, problemID)
	if err != nil {
		return 0, forge_errors.HandleDBError(err, "cannot count accepted submissions by problem")
	}
	return count, nil
}

// GetSubmissionsByUserAndDateRange bounds are inclusive on both ends.
func (s *SubmissionService) GetSubmissionsByUserAndDateRange(
	ctx context.Context,
	userID int64,
	startDate, endDate time.Time,
) ([]Submission, error) {
	if _, err := s.UserServiceConfig.FetchUserByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.list(
		func() ([]database.ProblemSubmission, error) {
			return s.DB.ListSubmissionsByUserBetween(ctx, database.ListSubmissionsByUserBetweenParams{
				UserID:    userID,
				StartDate: startDate,
				EndDate:   endDate,
			})
		},
		"cannot fetch submissions by user and date range",
	)
}

func (s *SubmissionService) GetSubmissionsByUserAndProblemDifficulty(
	ctx context.Context,
	userID int64,
	rawDifficulty string,
) ([]Submission, error) {
	difficulty, err := problem_service.ParseDifficulty(rawDifficulty)
	if err != nil {
		return nil, err
	}
	if _, err := s.UserServiceConfig.FetchUserByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.list(
		func() ([]database.ProblemSubmission, error) {
			return s.DB.ListSubmissionsByUserAndProblemDifficulty(
				ctx,
				database.ListSubmissionsByUserAndProblemDifficultyParams{
					UserID:     userID,
					Difficulty: difficulty,
				},
			)
		},
		"cannot fetch submissions by user and problem difficulty",
	)
}

func (s *SubmissionService) GetSubmissionsByUserAndProblemCategory(
	ctx context.Context,
	userID int64,
	rawCategory string,
) ([]Submission, error) {
	category, err := problem_service.ParseCategory(rawCategory)
	if err != nil {
		return nil, err
	}
	if _, err := s.UserServiceConfig.FetchUserByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.list(
		func() ([]database.ProblemSubmission, error) {
			return s.DB.ListSubmissionsByUserAndProblemCategory(
				ctx,
				database.ListSubmissionsByUserAndProblemCategoryParams{
					UserID:   userID,
					Category: category,
				},
			)
		},
		"cannot fetch submissions by user and problem category",
	)
}

func (s *SubmissionService) HasUserSubmittedProblem(ctx context.Context, userID, problemID int64) (bool, error) {
	exists, err := s.DB.SubmissionExistsByUserAndProblem(
		ctx,
		database.UserAndProblemParams{UserID: userID, ProblemID: problemID},
	)
	if err != nil {
		return false, forge_errors.HandleDBError(err, "cannot check submission existence")
	}
	return exists, nil
}
