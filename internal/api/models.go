package api

import (
	"github.com/dsa-forge/forge/internal/service/problem_service"
	"github.com/dsa-forge/forge/internal/service/progress_service"
	"github.com/dsa-forge/forge/internal/service/submission_service"
	"github.com/dsa-forge/forge/internal/service/testcase_service"
)

type Api struct {
	ProblemServiceConfig    *problem_service.ProblemService
	SubmissionServiceConfig *submission_service.SubmissionService
	ProgressServiceConfig   *progress_service.ProgressService
	TestCaseServiceConfig   *testcase_service.TestCaseService
}
