package submission_service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dsa-forge/forge/internal/database"
	"github.com/dsa-forge/forge/internal/forge_errors"
	"github.com/dsa-forge/forge/internal/service"
)

// UpdateSubmission records judging results. User, problem, code and
// language stay as they were at creation.
func (s *SubmissionService) UpdateSubmission(
	ctx context.Context,
	id int64,
	req SubmissionResultRequest,
) (Submission, error) {
	if err := service.ValidateInput(req); err != nil {
		return Submission{}, err
	}
	status, err := ParseStatus(req.Status)
	if err != nil {
		return Submission{}, err
	}

	dbSubmission, err := s.DB.UpdateSubmissionResult(ctx, database.UpdateSubmissionResultParams{
		ID:              id,
		Status:          status,
		ExecutionTimeMs: req.ExecutionTimeMs,
		MemoryUsedMB:    req.MemoryUsedMB,
		TestCasesPassed: req.TestCasesPassed,
		TotalTestCases:  req.TotalTestCases,
		ErrorMessage:    req.ErrorMessage,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Submission{}, fmt.Errorf(
				"%w, no submission exist with the given id",
				forge_errors.ErrNotFound,
			)
		}
		return Submission{}, forge_errors.HandleDBError(err, "failed to update submission in db")
	}
	return dbSubmissionToService(dbSubmission), nil
}
