package submission_service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dsa-forge/forge/internal/database"
	"github.com/dsa-forge/forge/internal/forge_errors"
	"github.com/dsa-forge/forge/internal/service"
)

// CreateSubmission resolves both foreign references before writing
// anything. An unresolvable user or problem fails the whole request as a
// bad request, and the status is forced to PENDING regardless of input.
func (s *SubmissionService) CreateSubmission(ctx context.Context, req SubmissionRequest) (Submission, error) {
	if err := service.ValidateInput(req); err != nil {
		return Submission{}, err
	}

	language, err := ParseLanguage(req.Language)
	if err != nil {
		return Submission{}, err
	}

	if _, err = s.UserServiceConfig.FetchUserByID(ctx, req.UserID); err != nil {
		if errors.Is(err, forge_errors.ErrNotFound) {
			return Submission{}, fmt.Errorf(
				"%w, user %v cannot be resolved",
				forge_errors.ErrInvalidRequest,
				req.UserID,
			)
		}
		return Submission{}, err
	}
	if _, err = s.ProblemServiceConfig.GetProblemByID(ctx, req.ProblemID); err != nil {
		if errors.Is(err, forge_errors.ErrNotFound) {
			return Submission{}, fmt.Errorf(
				"%w, problem %v cannot be resolved",
				forge_errors.ErrInvalidRequest,
				req.ProblemID,
			)
		}
		return Submission{}, err
	}

	dbSubmission, err := s.DB.CreateSubmission(ctx, database.CreateSubmissionParams{
		UserID:    req.UserID,
		ProblemID: req.ProblemID,
		Code:      req.Code,
		Language:  language,
		Status:    database.SubmissionStatusPending,
	})
	if err != nil {
		return Submission{}, forge_errors.HandleDBError(err, "failed to insert submission into db")
	}
	return dbSubmissionToService(dbSubmission), nil
}
