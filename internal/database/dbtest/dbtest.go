// Package dbtest provides an in-memory database.Store used by the
// service and api tests. Rows keep monotonically increasing ids and
// every listing is returned in id order, matching the postgres
// queries it stands in for.
package dbtest

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dsa-forge/forge/internal/database"
)

type Store struct {
	mu sync.Mutex

	problems    []database.Problem
	testCases   []database.TestCase
	submissions []database.ProblemSubmission
	progress    []database.Progress
	users       []database.User

	nextProblemID    int64
	nextTestCaseID   int64
	nextSubmissionID int64
	nextProgressID   int64
	nextUserID       int64
}

var _ database.Store = (*Store)(nil)

func NewStore() *Store {
	return &Store{
		nextProblemID:    1,
		nextTestCaseID:   1,
		nextSubmissionID: 1,
		nextProgressID:   1,
		nextUserID:       1,
	}
}

func foreignKeyError(constraint string) error {
	return &pgconn.PgError{
		Code:           "23503",
		Message:        "insert or update violates foreign key constraint",
		ConstraintName: constraint,
	}
}

func copyTags(tags []string) []string {
	out := make([]string, len(tags))
	copy(out, tags)
	return out
}

func copyProblem(p database.Problem) database.Problem {
	p.Tags = copyTags(p.Tags)
	return p
}

// SeedUser inserts a user directly; there is no user creation endpoint.
func (s *Store) SeedUser(username string) database.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := database.User{
		ID:        s.nextUserID,
		Username:  username,
		CreatedAt: time.Now(),
	}
	s.nextUserID++
	s.users = append(s.users, user)
	return user
}

func (s *Store) GetUserByID(ctx context.Context, id int64) (database.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return database.User{}, pgx.ErrNoRows
}

// problems

func (s *Store) CreateProblem(ctx context.Context, arg database.CreateProblemParams) (database.Problem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	p := database.Problem{
		ID:               s.nextProblemID,
		Title:            arg.Title,
		Description:      arg.Description,
		ProblemStatement: arg.ProblemStatement,
		Constraints:      arg.Constraints,
		Examples:         arg.Examples,
		ExpectedOutput:   arg.ExpectedOutput,
		Difficulty:       arg.Difficulty,
		Category:         arg.Category,
		Tags:             copyTags(arg.Tags),
		TimeLimitSeconds: arg.TimeLimitSeconds,
		MemoryLimitMB:    arg.MemoryLimitMB,
		IsActive:         arg.IsActive,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	s.nextProblemID++
	s.problems = append(s.problems, p)
	return copyProblem(p), nil
}

func (s *Store) UpdateProblem(ctx context.Context, arg database.UpdateProblemParams) (database.Problem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.problems {
		if s.problems[i].ID != arg.ID {
			continue
		}
		p := &s.problems[i]
		p.Title = arg.Title
		p.Description = arg.Description
		p.ProblemStatement = arg.ProblemStatement
		p.Constraints = arg.Constraints
		p.Examples = arg.Examples
		p.ExpectedOutput = arg.ExpectedOutput
		p.Difficulty = arg.Difficulty
		p.Category = arg.Category
		p.Tags = copyTags(arg.Tags)
		p.TimeLimitSeconds = arg.TimeLimitSeconds
		p.MemoryLimitMB = arg.MemoryLimitMB
		p.IsActive = arg.IsActive
		p.UpdatedAt = time.Now()
		return copyProblem(*p), nil
	}
	return database.Problem{}, pgx.ErrNoRows
}

func (s *Store) DeactivateProblem(ctx context.Context, id int64) (database.Problem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.problems {
		if s.problems[i].ID == id {
			s.problems[i].IsActive = false
			s.problems[i].UpdatedAt = time.Now()
			return copyProblem(s.problems[i]), nil
		}
	}
	return database.Problem{}, pgx.ErrNoRows
}

func (s *Store) DeleteProblem(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.problems {
		if s.problems[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return pgx.ErrNoRows
	}

	// dependent rows go first, same order as the transactional delete
	kept := s.testCases[:0]
	for _, tc := range s.testCases {
		if tc.ProblemID != id {
			kept = append(kept, tc)
		}
	}
	s.testCases = kept

	keptSubs := s.submissions[:0]
	for _, sub := range s.submissions {
		if sub.ProblemID != id {
			keptSubs = append(keptSubs, sub)
		}
	}
	s.submissions = keptSubs

	s.problems = append(s.problems[:idx], s.problems[idx+1:]...)
	return nil
}

func (s *Store) getProblem(id int64) (database.Problem, bool) {
	for _, p := range s.problems {
		if p.ID == id {
			return p, true
		}
	}
	return database.Problem{}, false
}

func (s *Store) GetProblemByID(ctx context.Context, id int64) (database.Problem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p, ok := s.getProblem(id); ok {
		return copyProblem(p), nil
	}
	return database.Problem{}, pgx.ErrNoRows
}

func (s *Store) listProblems(match func(database.Problem) bool) []database.Problem {
	out := []database.Problem{}
	for _, p := range s.problems {
		if match(p) {
			out = append(out, copyProblem(p))
		}
	}
	return out
}

func (s *Store) ListProblems(ctx context.Context) ([]database.Problem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listProblems(func(database.Problem) bool { return true }), nil
}

func (s *Store) ListProblemsByDifficulty(ctx context.Context, difficulty database.Difficulty) ([]database.Problem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listProblems(func(p database.Problem) bool { return p.Difficulty == difficulty }), nil
}

func (s *Store) ListProblemsByCategory(ctx context.Context, category database.Category) ([]database.Problem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listProblems(func(p database.Problem) bool { return p.Category == category }), nil
}

func (s *Store) ListActiveProblems(ctx context.Context) ([]database.Problem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listProblems(func(p database.Problem) bool { return p.IsActive }), nil
}

func (s *Store) ListActiveProblemsByDifficulty(ctx context.Context, difficulty database.Difficulty) ([]database.Problem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listProblems(func(p database.Problem) bool {
		return p.IsActive && p.Difficulty == difficulty
	}), nil
}

func (s *Store) ListActiveProblemsByCategory(ctx context.Context, category database.Category) ([]database.Problem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listProblems(func(p database.Problem) bool {
		return p.IsActive && p.Category == category
	}), nil
}

func (s *Store) ListActiveProblemsByDifficultyAndCategory(
	ctx context.Context,
	arg database.DifficultyAndCategoryParams,
) ([]database.Problem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listProblems(func(p database.Problem) bool {
		return p.IsActive && p.Difficulty == arg.Difficulty && p.Category == arg.Category
	}), nil
}

func (s *Store) ListActiveProblemsByTag(ctx context.Context, tag string) ([]database.Problem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listProblems(func(p database.Problem) bool {
		if !p.IsActive {
			return false
		}
		for _, t := range p.Tags {
			if t == tag {
				return true
			}
		}
		return false
	}), nil
}

// SearchProblems is a case-sensitive substring match over title and
// description, inactive rows included.
func (s *Store) SearchProblems(ctx context.Context, term string) ([]database.Problem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listProblems(func(p database.Problem) bool {
		return strings.Contains(p.Title, term) || strings.Contains(p.Description, term)
	}), nil
}

func (s *Store) CountActiveProblemsByDifficulty(ctx context.Context, difficulty database.Difficulty) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	for _, p := range s.problems {
		if p.IsActive && p.Difficulty == difficulty {
			count++
		}
	}
	return count, nil
}

func (s *Store) CountActiveProblemsByCategory(ctx context.Context, category database.Category) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	for _, p := range s.problems {
		if p.IsActive && p.Category == category {
			count++
		}
	}
	return count, nil
}

// submissions

func (s *Store) CreateSubmission(ctx context.Context, arg database.CreateSubmissionParams) (database.ProblemSubmission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.getProblem(arg.ProblemID); !ok {
		return database.ProblemSubmission{}, foreignKeyError("problem_submissions_problem_id_fkey")
	}
	userFound := false
	for _, u := range s.users {
		if u.ID == arg.UserID {
			userFound = true
			break
		}
	}
	if !userFound {
		return database.ProblemSubmission{}, foreignKeyError("problem_submissions_user_id_fkey")
	}

	sub := database.ProblemSubmission{
		ID:          s.nextSubmissionID,
		UserID:      arg.UserID,
		ProblemID:   arg.ProblemID,
		Code:        arg.Code,
		Language:    arg.Language,
		Status:      arg.Status,
		SubmittedAt: time.Now(),
	}
	s.nextSubmissionID++
	s.submissions = append(s.submissions, sub)
	return sub, nil
}

func (s *Store) UpdateSubmissionResult(ctx context.Context, arg database.UpdateSubmissionResultParams) (database.ProblemSubmission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.submissions {
		if s.submissions[i].ID != arg.ID {
			continue
		}
		sub := &s.submissions[i]
		sub.Status = arg.Status
		sub.ExecutionTimeMs = arg.ExecutionTimeMs
		sub.MemoryUsedMB = arg.MemoryUsedMB
		sub.TestCasesPassed = arg.TestCasesPassed
		sub.TotalTestCases = arg.TotalTestCases
		sub.ErrorMessage = arg.ErrorMessage
		return *sub, nil
	}
	return database.ProblemSubmission{}, pgx.ErrNoRows
}

func (s *Store) DeleteSubmission(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.submissions {
		if s.submissions[i].ID == id {
			s.submissions = append(s.submissions[:i], s.submissions[i+1:]...)
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (s *Store) GetSubmissionByID(ctx context.Context, id int64) (database.ProblemSubmission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sub := range s.submissions {
		if sub.ID == id {
			return sub, nil
		}
	}
	return database.ProblemSubmission{}, pgx.ErrNoRows
}

func (s *Store) listSubmissions(match func(database.ProblemSubmission) bool) []database.ProblemSubmission {
	out := []database.ProblemSubmission{}
	for _, sub := range s.submissions {
		if match(sub) {
			out = append(out, sub)
		}
	}
	return out
}

func (s *Store) firstSubmission(match func(database.ProblemSubmission) bool) (database.ProblemSubmission, error) {
	for _, sub := range s.submissions {
		if match(sub) {
			return sub, nil
		}
	}
	return database.ProblemSubmission{}, pgx.ErrNoRows
}

func (s *Store) ListSubmissions(ctx context.Context) ([]database.ProblemSubmission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listSubmissions(func(database.ProblemSubmission) bool { return true }), nil
}

func (s *Store) ListSubmissionsByUser(ctx context.Context, userID int64) ([]database.ProblemSubmission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listSubmissions(func(sub database.ProblemSubmission) bool { return sub.UserID == userID }), nil
}

func (s *Store) ListSubmissionsByProblem(ctx context.Context, problemID int64) ([]database.ProblemSubmission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listSubmissions(func(sub database.ProblemSubmission) bool { return sub.ProblemID == problemID }), nil
}

func (s *Store) ListSubmissionsByStatus(ctx context.Context, status database.SubmissionStatus) ([]database.ProblemSubmission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listSubmissions(func(sub database.ProblemSubmission) bool { return sub.Status == status }), nil
}

func (s *Store) ListSubmissionsByLanguage(ctx context.Context, language database.Language) ([]database.ProblemSubmission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listSubmissions(func(sub database.ProblemSubmission) bool { return sub.Language == language }), nil
}

func (s *Store) GetSubmissionByUserAndProblem(ctx context.Context, arg database.UserAndProblemParams) (database.ProblemSubmission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.firstSubmission(func(sub database.ProblemSubmission) bool {
		return sub.UserID == arg.UserID && sub.ProblemID == arg.ProblemID
	})
}

func (s *Store) ListSubmissionsByUserAndStatus(ctx context.Context, arg database.ListSubmissionsByUserAndStatusParams) ([]database.ProblemSubmission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listSubmissions(func(sub database.ProblemSubmission) bool {
		return sub.UserID == arg.UserID && sub.Status == arg.Status
	}), nil
}

func (s *Store) ListAcceptedSubmissionsByProblem(ctx context.Context, problemID int64) ([]database.ProblemSubmission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listSubmissions(func(sub database.ProblemSubmission) bool {
		return sub.ProblemID == problemID && sub.Status == database.SubmissionStatusAccepted
	}), nil
}

func (s *Store) GetAcceptedSubmissionByUserAndProblem(ctx context.Context, arg database.UserAndProblemParams) (database.ProblemSubmission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.firstSubmission(func(sub database.ProblemSubmission) bool {
		return sub.UserID == arg.UserID &&
			sub.ProblemID == arg.ProblemID &&
			sub.Status == database.SubmissionStatusAccepted
	})
}

func (s *Store) CountAcceptedSubmissionsByUser(ctx context.Context, userID int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	for _, sub := range s.submissions {
		if sub.UserID == userID && sub.Status == database.SubmissionStatusAccepted {
			count++
		}
	}
	return count, nil
}

func (s *Store) CountAcceptedSubmissionsByProblem(ctx context.Context, problemID int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	for _, sub := range s.submissions {
		if sub.ProblemID == problemID && sub.Status == database.SubmissionStatusAccepted {
			count++
		}
	}
	return count, nil
}

func (s *Store) ListSubmissionsByUserBetween(ctx context.Context, arg database.ListSubmissionsByUserBetweenParams) ([]database.ProblemSubmission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listSubmissions(func(sub database.ProblemSubmission) bool {
		if sub.UserID != arg.UserID {
			return false
		}
		return !sub.SubmittedAt.Before(arg.StartDate) && !sub.SubmittedAt.After(arg.EndDate)
	}), nil
}

func (s *Store) ListSubmissionsByUserAndProblemDifficulty(ctx context.Context, arg database.ListSubmissionsByUserAndProblemDifficultyParams) ([]database.ProblemSubmission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listSubmissions(func(sub database.ProblemSubmission) bool {
		if sub.UserID != arg.UserID {
			return false
		}
		p, ok := s.getProblem(sub.ProblemID)
		return ok && p.Difficulty == arg.Difficulty
	}), nil
}

func (s *Store) ListSubmissionsByUserAndProblemCategory(ctx context.Context, arg database.ListSubmissionsByUserAndProblemCategoryParams) ([]database.ProblemSubmission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listSubmissions(func(sub database.ProblemSubmission) bool {
		if sub.UserID != arg.UserID {
			return false
		}
		p, ok := s.getProblem(sub.ProblemID)
		return ok && p.Category == arg.Category
	}), nil
}

func (s *Store) SubmissionExistsByUserAndProblem(ctx context.Context, arg database.UserAndProblemParams) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sub := range s.submissions {
		if sub.UserID == arg.UserID && sub.ProblemID == arg.ProblemID {
			return true, nil
		}
	}
	return false, nil
}

// test cases

func (s *Store) CreateTestCase(ctx context.Context, arg database.CreateTestCaseParams) (database.TestCase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.getProblem(arg.ProblemID); !ok {
		return database.TestCase{}, foreignKeyError("test_cases_problem_id_fkey")
	}

	tc := database.TestCase{
		ID:             s.nextTestCaseID,
		ProblemID:      arg.ProblemID,
		Input:          arg.Input,
		ExpectedOutput: arg.ExpectedOutput,
		IsSample:       arg.IsSample,
		IsHidden:       arg.IsHidden,
		CreatedAt:      time.Now(),
	}
	s.nextTestCaseID++
	s.testCases = append(s.testCases, tc)
	return tc, nil
}

func (s *Store) GetTestCaseByID(ctx context.Context, id int64) (database.TestCase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, tc := range s.testCases {
		if tc.ID == id {
			return tc, nil
		}
	}
	return database.TestCase{}, pgx.ErrNoRows
}

func (s *Store) listTestCases(match func(database.TestCase) bool) []database.TestCase {
	out := []database.TestCase{}
	for _, tc := range s.testCases {
		if match(tc) {
			out = append(out, tc)
		}
	}
	return out
}

func (s *Store) ListTestCasesByProblem(ctx context.Context, problemID int64) ([]database.TestCase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listTestCases(func(tc database.TestCase) bool { return tc.ProblemID == problemID }), nil
}

func (s *Store) ListTestCasesByProblemAndSample(ctx context.Context, arg database.TestCaseFlagParams) ([]database.TestCase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listTestCases(func(tc database.TestCase) bool {
		return tc.ProblemID == arg.ProblemID && tc.IsSample == arg.Flag
	}), nil
}

func (s *Store) ListTestCasesByProblemAndHidden(ctx context.Context, arg database.TestCaseFlagParams) ([]database.TestCase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listTestCases(func(tc database.TestCase) bool {
		return tc.ProblemID == arg.ProblemID && tc.IsHidden == arg.Flag
	}), nil
}

func (s *Store) ListSampleTestCasesByProblem(ctx context.Context, problemID int64) ([]database.TestCase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listTestCases(func(tc database.TestCase) bool {
		return tc.ProblemID == problemID && tc.IsSample
	}), nil
}

func (s *Store) ListVisibleTestCasesByProblem(ctx context.Context, problemID int64) ([]database.TestCase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listTestCases(func(tc database.TestCase) bool {
		return tc.ProblemID == problemID && !tc.IsHidden
	}), nil
}

func (s *Store) CountTestCasesByProblem(ctx context.Context, problemID int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	for _, tc := range s.testCases {
		if tc.ProblemID == problemID {
			count++
		}
	}
	return count, nil
}

func (s *Store) CountSampleTestCasesByProblem(ctx context.Context, problemID int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	for _, tc := range s.testCases {
		if tc.ProblemID == problemID && tc.IsSample {
			count++
		}
	}
	return count, nil
}

// progress

func (s *Store) CreateProgress(ctx context.Context, arg database.CreateProgressParams) (database.Progress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	userFound := false
	for _, u := range s.users {
		if u.ID == arg.UserID {
			userFound = true
			break
		}
	}
	if !userFound {
		return database.Progress{}, foreignKeyError("progress_user_id_fkey")
	}

	now := time.Now()
	p := database.Progress{
		ID:                 s.nextProgressID,
		UserID:             arg.UserID,
		Type:               arg.Type,
		Category:           arg.Category,
		Difficulty:         arg.Difficulty,
		ProblemsSolved:     arg.ProblemsSolved,
		TotalProblems:      arg.TotalProblems,
		AccuracyPercentage: arg.AccuracyPercentage,
		AverageTimeMs:      arg.AverageTimeMs,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	s.nextProgressID++
	s.progress = append(s.progress, p)
	return p, nil
}

func (s *Store) UpdateProgress(ctx context.Context, arg database.UpdateProgressParams) (database.Progress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.progress {
		if s.progress[i].ID != arg.ID {
			continue
		}
		p := &s.progress[i]
		p.Type = arg.Type
		p.Category = arg.Category
		p.Difficulty = arg.Difficulty
		p.ProblemsSolved = arg.ProblemsSolved
		p.TotalProblems = arg.TotalProblems
		p.AccuracyPercentage = arg.AccuracyPercentage
		p.AverageTimeMs = arg.AverageTimeMs
		p.UpdatedAt = time.Now()
		return *p, nil
	}
	return database.Progress{}, pgx.ErrNoRows
}

func (s *Store) DeleteProgress(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.progress {
		if s.progress[i].ID == id {
			s.progress = append(s.progress[:i], s.progress[i+1:]...)
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (s *Store) GetProgressByID(ctx context.Context, id int64) (database.Progress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.progress {
		if p.ID == id {
			return p, nil
		}
	}
	return database.Progress{}, pgx.ErrNoRows
}

func (s *Store) listProgress(match func(database.Progress) bool) []database.Progress {
	out := []database.Progress{}
	for _, p := range s.progress {
		if match(p) {
			out = append(out, p)
		}
	}
	return out
}

func (s *Store) firstProgress(match func(database.Progress) bool) (database.Progress, error) {
	for _, p := range s.progress {
		if match(p) {
			return p, nil
		}
	}
	return database.Progress{}, pgx.ErrNoRows
}

func (s *Store) ListProgress(ctx context.Context) ([]database.Progress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listProgress(func(database.Progress) bool { return true }), nil
}

func (s *Store) ListProgressByUser(ctx context.Context, userID int64) ([]database.Progress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listProgress(func(p database.Progress) bool { return p.UserID == userID }), nil
}

func (s *Store) ListProgressByType(ctx context.Context, progressType database.ProgressType) ([]database.Progress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listProgress(func(p database.Progress) bool { return p.Type == progressType }), nil
}

func (s *Store) ListProgressByUserAndType(ctx context.Context, arg database.ListProgressByUserAndTypeParams) ([]database.Progress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listProgress(func(p database.Progress) bool {
		return p.UserID == arg.UserID && p.Type == arg.Type
	}), nil
}

func (s *Store) ListProgressByUserAndCategory(ctx context.Context, arg database.ListProgressByUserAndCategoryParams) ([]database.Progress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listProgress(func(p database.Progress) bool {
		return p.UserID == arg.UserID && p.Category != nil && *p.Category == arg.Category
	}), nil
}

func (s *Store) ListProgressByUserAndDifficulty(ctx context.Context, arg database.ListProgressByUserAndDifficultyParams) ([]database.Progress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listProgress(func(p database.Progress) bool {
		return p.UserID == arg.UserID && p.Difficulty != nil && *p.Difficulty == arg.Difficulty
	}), nil
}

func (s *Store) GetProgressByUserAndTypeAndCategory(ctx context.Context, arg database.ProgressTypeAndCategoryParams) (database.Progress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.firstProgress(func(p database.Progress) bool {
		return p.UserID == arg.UserID &&
			p.Type == arg.Type &&
			p.Category != nil && *p.Category == arg.Category
	})
}

func (s *Store) GetProgressByUserAndTypeAndDifficulty(ctx context.Context, arg database.ProgressTypeAndDifficultyParams) (database.Progress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.firstProgress(func(p database.Progress) bool {
		return p.UserID == arg.UserID &&
			p.Type == arg.Type &&
			p.Difficulty != nil && *p.Difficulty == arg.Difficulty
	})
}

func (s *Store) GetOverallProgressByUser(ctx context.Context, userID int64) (database.Progress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.firstProgress(func(p database.Progress) bool {
		return p.UserID == userID && p.Type == database.ProgressTypeOverall
	})
}
