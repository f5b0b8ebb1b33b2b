package submission_service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dsa-forge/forge/internal/forge_errors"
)

func (s *SubmissionService) DeleteSubmission(ctx context.Context, id int64) error {
	err := s.DB.DeleteSubmission(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf(
				"%w, no submission exist with the given id",
				forge_errors.ErrNotFound,
			)
		}
		return forge_errors.HandleDBError(err, "failed to delete submission from db")
	}
	return nil
}
