package submission_service

import (
	"fmt"
	"time"

	"github.com/dsa-forge/forge/internal/database"
	"github.com/dsa-forge/forge/internal/forge_errors"
	"github.com/dsa-forge/forge/internal/service/problem_service"
	"github.com/dsa-forge/forge/internal/service/user_service"
)

type SubmissionService struct {
	DB                   database.Store
	UserServiceConfig    *user_service.UserService
	ProblemServiceConfig *problem_service.ProblemService
}

type Submission struct {
	ID              int64                     `json:"id"`
	UserID          int64                     `json:"userId"`
	ProblemID       int64                     `json:"problemId"`
	Code            string                    `json:"code"`
	Language        database.Language         `json:"language"`
	Status          database.SubmissionStatus `json:"status"`
	ExecutionTimeMs *int64                    `json:"executionTimeMs"`
	MemoryUsedMB    *float64                  `json:"memoryUsedMB"`
	TestCasesPassed int32                     `json:"testCasesPassed"`
	TotalTestCases  int32                     `json:"totalTestCases"`
	ErrorMessage    *string                   `json:"errorMessage"`
	SubmittedAt     time.Time                 `json:"submittedAt"`
}

// SubmissionRequest is the creation payload. Any client-supplied status is
// ignored; a new submission is always PENDING.
type SubmissionRequest struct {
	UserID    int64  `json:"userId" validate:"required"`
	ProblemID int64  `json:"problemId" validate:"required"`
	Code      string `json:"code" validate:"required"`
	Language  string `json:"language" validate:"required"`
}

// SubmissionResultRequest carries judging results supplied by the external
// judge. Only these fields are mutable after creation.
type SubmissionResultRequest struct {
	Status          string   `json:"status" validate:"required"`
	ExecutionTimeMs *int64   `json:"executionTimeMs"`
	MemoryUsedMB    *float64 `json:"memoryUsedMB"`
	TestCasesPassed int32    `json:"testCasesPassed" validate:"gte=0"`
	TotalTestCases  int32    `json:"totalTestCases" validate:"gte=0"`
	ErrorMessage    *string  `json:"errorMessage"`
}

var languages = map[string]database.Language{
	string(database.LanguageJava):       database.LanguageJava,
	string(database.LanguagePython):     database.LanguagePython,
	string(database.LanguageCpp):        database.LanguageCpp,
	string(database.LanguageJavascript): database.LanguageJavascript,
}

var statuses = map[string]database.SubmissionStatus{
	string(database.SubmissionStatusPending):             database.SubmissionStatusPending,
	string(database.SubmissionStatusRunning):             database.SubmissionStatusRunning,
	string(database.SubmissionStatusAccepted):            database.SubmissionStatusAccepted,
	string(database.SubmissionStatusWrongAnswer):         database.SubmissionStatusWrongAnswer,
	string(database.SubmissionStatusTimeLimitExceeded):   database.SubmissionStatusTimeLimitExceeded,
	string(database.SubmissionStatusMemoryLimitExceeded): database.SubmissionStatusMemoryLimitExceeded,
	string(database.SubmissionStatusRuntimeError):        database.SubmissionStatusRuntimeError,
	string(database.SubmissionStatusCompilationError):    database.SubmissionStatusCompilationError,
}

func ParseLanguage(s string) (database.Language, error) {
	if l, ok := languages[s]; ok {
		return l, nil
	}
	return "", fmt.Errorf("%w, unknown language %q", forge_errors.ErrInvalidInput, s)
}

func ParseStatus(s string) (database.SubmissionStatus, error) {
	if st, ok := statuses[s]; ok {
		return st, nil
	}
	return "", fmt.Errorf("%w, unknown submission status %q", forge_errors.ErrInvalidInput, s)
}

func dbSubmissionToService(s database.ProblemSubmission) Submission {
	return Submission{
		ID:              s.ID,
		UserID:          s.UserID,
		ProblemID:       s.ProblemID,
		Code:            s.Code,
		Language:        s.Language,
		Status:          s.Status,
		ExecutionTimeMs: s.ExecutionTimeMs,
		MemoryUsedMB:    s.MemoryUsedMB,
		TestCasesPassed: s.TestCasesPassed,
		TotalTestCases:  s.TotalTestCases,
		ErrorMessage:    s.ErrorMessage,
		SubmittedAt:     s.SubmittedAt,
	}
}

func dbSubmissionsToService(dbSubmissions []database.ProblemSubmission) []Submission {
	submissions := make([]Submission, 0, len(dbSubmissions))
	for _, s := range dbSubmissions {
		submissions = append(submissions, dbSubmissionToService(s))
	}
	return submissions
}
