package problem_service_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"

	"github.com/dsa-forge/forge/internal/database"
	"github.com/dsa-forge/forge/internal/database/dbtest"
	"github.com/dsa-forge/forge/internal/forge_errors"
	"github.com/dsa-forge/forge/internal/service"
	"github.com/dsa-forge/forge/internal/service/problem_service"
)

func TestMain(m *testing.M) {
	logrus.SetFormatter(&logrus.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	logrus.SetLevel(logrus.DebugLevel)

	logrus.Info("initializing service")
	service.InitializeServices()

	logrus.Info("starting tests")
	code := m.Run()
	os.Exit(code)
}

func newProblemService() *problem_service.ProblemService {
	return &problem_service.ProblemService{DB: dbtest.NewStore()}
}

func twoSumRequest() problem_service.ProblemRequest {
	return problem_service.ProblemRequest{
		Title:       "Two Sum",
		Description: "Find two numbers that add up to target",
		Difficulty:  "EASY",
		Category:    "ARRAYS",
		Tags:        []string{"hash-table", "array"},
	}
}

func ptrInt32(v int32) *int32 { return &v }
func ptrBool(v bool) *bool    { return &v }

func TestCreateProblemDefaults(t *testing.T) {
	ps := newProblemService()

	created, err := ps.CreateProblem(context.Background(), twoSumRequest())
	if err != nil {
		t.Fatalf("create problem: %v", err)
	}

	if created.ID != 1 {
		t.Errorf("expected first id 1, got %v", created.ID)
	}
	if created.TimeLimitSeconds != problem_service.DefaultTimeLimitSeconds {
		t.Errorf("expected default time limit, got %v", created.TimeLimitSeconds)
	}
	if created.MemoryLimitMB != problem_service.DefaultMemoryLimitMB {
		t.Errorf("expected default memory limit, got %v", created.MemoryLimitMB)
	}
	if !created.IsActive {
		t.Error("expected new problem to be active")
	}
	if len(created.Tags) != 2 || created.Tags[0] != "hash-table" {
		t.Errorf("tags not preserved in order: %v", created.Tags)
	}
}

func TestCreateProblemExplicitFieldsWin(t *testing.T) {
	ps := newProblemService()

	req := twoSumRequest()
	req.TimeLimitSeconds = ptrInt32(5)
	req.MemoryLimitMB = ptrInt32(512)
	req.IsActive = ptrBool(false)

	created, err := ps.CreateProblem(context.Background(), req)
	if err != nil {
		t.Fatalf("create problem: %v", err)
	}
	if created.TimeLimitSeconds != 5 || created.MemoryLimitMB != 512 {
		t.Errorf("explicit limits ignored: %v/%v", created.TimeLimitSeconds, created.MemoryLimitMB)
	}
	if created.IsActive {
		t.Error("explicit isActive=false ignored")
	}
}

func TestCreateProblemRejectsBadInput(t *testing.T) {
	ps := newProblemService()

	tests := []struct {
		name   string
		mutate func(*problem_service.ProblemRequest)
	}{
		{
			name:   "missing_title",
			mutate: func(r *problem_service.ProblemRequest) { r.Title = "" },
		},
		{
			name:   "blank_title",
			mutate: func(r *problem_service.ProblemRequest) { r.Title = "   " },
		},
		{
			name:   "unknown_difficulty",
			mutate: func(r *problem_service.ProblemRequest) { r.Difficulty = "IMPOSSIBLE" },
		},
		{
			name:   "lowercase_difficulty",
			mutate: func(r *problem_service.ProblemRequest) { r.Difficulty = "easy" },
		},
		{
			name:   "unknown_category",
			mutate: func(r *problem_service.ProblemRequest) { r.Category = "POETRY" },
		},
		{
			name:   "non_positive_time_limit",
			mutate: func(r *problem_service.ProblemRequest) { r.TimeLimitSeconds = ptrInt32(0) },
		},
		{
			name:   "non_positive_memory_limit",
			mutate: func(r *problem_service.ProblemRequest) { r.MemoryLimitMB = ptrInt32(-1) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := twoSumRequest()
			tc.mutate(&req)
			_, err := ps.CreateProblem(context.Background(), req)
			if !errors.Is(err, forge_errors.ErrInvalidInput) {
				t.Errorf("expected invalid input error, got %v", err)
			}
		})
	}

	problems, err := ps.GetAllProblems(context.Background())
	if err != nil {
		t.Fatalf("list problems: %v", err)
	}
	if len(problems) != 0 {
		t.Errorf("rejected requests must not persist, found %v rows", len(problems))
	}
}

func TestGetProblemByIDNotFound(t *testing.T) {
	ps := newProblemService()

	_, err := ps.GetProblemByID(context.Background(), 42)
	if !errors.Is(err, forge_errors.ErrNotFound) {
		t.Errorf("expected not found error, got %v", err)
	}
}

func TestUpdateProblemOverwritesEverything(t *testing.T) {
	ps := newProblemService()

	created, err := ps.CreateProblem(context.Background(), twoSumRequest())
	if err != nil {
		t.Fatalf("create problem: %v", err)
	}

	update := problem_service.ProblemRequest{
		Title:      "Three Sum",
		Difficulty: "MEDIUM",
		Category:   "ARRAYS",
		Tags:       []string{"two-pointers"},
	}
	updated, err := ps.UpdateProblem(context.Background(), created.ID, update)
	if err != nil {
		t.Fatalf("update problem: %v", err)
	}

	if updated.Title != "Three Sum" || updated.Difficulty != database.DifficultyMedium {
		t.Errorf("update did not overwrite fields: %+v", updated)
	}
	// absent optional fields fall back to defaults, they are not merged
	if updated.Description != "" {
		t.Errorf("expected description overwritten to empty, got %q", updated.Description)
	}
	if updated.TimeLimitSeconds != problem_service.DefaultTimeLimitSeconds {
		t.Errorf("expected default time limit after update, got %v", updated.TimeLimitSeconds)
	}
	if len(updated.Tags) != 1 || updated.Tags[0] != "two-pointers" {
		t.Errorf("tags not replaced: %v", updated.Tags)
	}
}

func TestUpdateMissingProblem(t *testing.T) {
	ps := newProblemService()

	_, err := ps.UpdateProblem(context.Background(), 7, twoSumRequest())
	if !errors.Is(err, forge_errors.ErrNotFound) {
		t.Errorf("expected not found error, got %v", err)
	}
}

func TestDeactivateProblem(t *testing.T) {
	ps := newProblemService()

	created, err := ps.CreateProblem(context.Background(), twoSumRequest())
	if err != nil {
		t.Fatalf("create problem: %v", err)
	}

	deactivated, err := ps.DeactivateProblem(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("deactivate problem: %v", err)
	}
	if deactivated.IsActive {
		t.Error("problem still active after deactivation")
	}
	if deactivated.Title != created.Title || deactivated.Difficulty != created.Difficulty {
		t.Errorf("deactivation must not touch other fields: %+v", deactivated)
	}

	// the row stays readable through the unfiltered lookups
	if _, err := ps.GetProblemByID(context.Background(), created.ID); err != nil {
		t.Errorf("deactivated problem should remain fetchable: %v", err)
	}
	active, err := ps.GetActiveProblems(context.Background())
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(active) != 0 {
		t.Errorf("deactivated problem leaked into active listing: %v", active)
	}
}

func TestActiveFilters(t *testing.T) {
	ps := newProblemService()
	ctx := context.Background()

	easyArrays, err := ps.CreateProblem(ctx, twoSumRequest())
	if err != nil {
		t.Fatalf("create problem: %v", err)
	}

	hard := twoSumRequest()
	hard.Title = "Median of Two Sorted Arrays"
	hard.Difficulty = "HARD"
	hard.Tags = []string{"binary-search"}
	if _, err = ps.CreateProblem(ctx, hard); err != nil {
		t.Fatalf("create problem: %v", err)
	}

	inactive := twoSumRequest()
	inactive.Title = "Retired Problem"
	inactive.IsActive = ptrBool(false)
	if _, err = ps.CreateProblem(ctx, inactive); err != nil {
		t.Fatalf("create problem: %v", err)
	}

	easy, err := ps.GetActiveProblemsByDifficulty(ctx, "EASY")
	if err != nil {
		t.Fatalf("active by difficulty: %v", err)
	}
	if len(easy) != 1 || easy[0].ID != easyArrays.ID {
		t.Errorf("expected only the active easy problem, got %v", easy)
	}

	both, err := ps.GetActiveProblemsByDifficultyAndCategory(ctx, "EASY", "ARRAYS")
	if err != nil {
		t.Fatalf("active by difficulty and category: %v", err)
	}
	if len(both) != 1 || both[0].ID != easyArrays.ID {
		t.Errorf("expected single combined match, got %v", both)
	}

	tagged, err := ps.GetActiveProblemsByTag(ctx, "binary-search")
	if err != nil {
		t.Fatalf("active by tag: %v", err)
	}
	if len(tagged) != 1 || tagged[0].Title != "Median of Two Sorted Arrays" {
		t.Errorf("tag filter wrong: %v", tagged)
	}

	count, err := ps.CountActiveProblemsByDifficulty(ctx, "EASY")
	if err != nil {
		t.Fatalf("count by difficulty: %v", err)
	}
	if count != int64(len(easy)) {
		t.Errorf("count %v disagrees with listing %v", count, len(easy))
	}

	if _, err = ps.GetActiveProblemsByDifficulty(ctx, "TRIVIAL"); !errors.Is(err, forge_errors.ErrInvalidInput) {
		t.Errorf("unknown difficulty must be rejected, got %v", err)
	}
}

func TestSearchProblems(t *testing.T) {
	ps := newProblemService()
	ctx := context.Background()

	if _, err := ps.CreateProblem(ctx, twoSumRequest()); err != nil {
		t.Fatalf("create problem: %v", err)
	}
	other := twoSumRequest()
	other.Title = "Valid Parentheses"
	other.Description = "Check bracket nesting"
	if _, err := ps.CreateProblem(ctx, other); err != nil {
		t.Fatalf("create problem: %v", err)
	}
	retired := twoSumRequest()
	retired.Title = "Two Sum II"
	retired.IsActive = ptrBool(false)
	if _, err := ps.CreateProblem(ctx, retired); err != nil {
		t.Fatalf("create problem: %v", err)
	}

	tests := []struct {
		name   string
		term   string
		titles []string
	}{
		// search spans inactive rows and matches the description too
		{name: "title_substring", term: "Two Sum", titles: []string{"Two Sum", "Two Sum II"}},
		{name: "description_substring", term: "bracket", titles: []string{"Valid Parentheses"}},
		{name: "case_sensitive", term: "two sum", titles: []string{}},
		{name: "no_match", term: "Dijkstra", titles: []string{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			found, err := ps.SearchProblems(ctx, tc.term)
			if err != nil {
				t.Fatalf("search: %v", err)
			}
			if len(found) != len(tc.titles) {
				t.Fatalf("expected %v results, got %v", len(tc.titles), len(found))
			}
			for i, title := range tc.titles {
				if found[i].Title != title {
					t.Errorf("result %v: expected %q, got %q", i, title, found[i].Title)
				}
			}
		})
	}
}

func TestDeleteProblem(t *testing.T) {
	ps := newProblemService()
	ctx := context.Background()

	created, err := ps.CreateProblem(ctx, twoSumRequest())
	if err != nil {
		t.Fatalf("create problem: %v", err)
	}

	if err = ps.DeleteProblem(ctx, created.ID); err != nil {
		t.Fatalf("delete problem: %v", err)
	}
	if _, err = ps.GetProblemByID(ctx, created.ID); !errors.Is(err, forge_errors.ErrNotFound) {
		t.Errorf("deleted problem still fetchable: %v", err)
	}
	if err = ps.DeleteProblem(ctx, created.ID); !errors.Is(err, forge_errors.ErrNotFound) {
		t.Errorf("second delete should report not found, got %v", err)
	}
}

func TestDeleteProblemCascades(t *testing.T) {
	store := dbtest.NewStore()
	ps := &problem_service.ProblemService{DB: store}
	ctx := context.Background()

	created, err := ps.CreateProblem(ctx, twoSumRequest())
	if err != nil {
		t.Fatalf("create problem: %v", err)
	}
	user := store.SeedUser("alice")

	submission, err := store.CreateSubmission(ctx, database.CreateSubmissionParams{
		UserID:    user.ID,
		ProblemID: created.ID,
		Code:      "def solve(): pass",
		Language:  database.LanguagePython,
		Status:    database.SubmissionStatusPending,
	})
	if err != nil {
		t.Fatalf("seed submission: %v", err)
	}
	if _, err = store.CreateTestCase(ctx, database.CreateTestCaseParams{
		ProblemID:      created.ID,
		Input:          "[2,7,11,15], 9",
		ExpectedOutput: "[0,1]",
	}); err != nil {
		t.Fatalf("seed test case: %v", err)
	}

	if err = ps.DeleteProblem(ctx, created.ID); err != nil {
		t.Fatalf("delete problem: %v", err)
	}

	// dependent rows go with their problem
	if _, err = store.GetSubmissionByID(ctx, submission.ID); !errors.Is(err, pgx.ErrNoRows) {
		t.Errorf("expected the submission gone with its problem, got %v", err)
	}
	remaining, err := store.ListTestCasesByProblem(ctx, created.ID)
	if err != nil {
		t.Fatalf("list test cases: %v", err)
	}
	if len(remaining) != 0 {
		t.Errorf("expected no test cases left, found %v", len(remaining))
	}
}
