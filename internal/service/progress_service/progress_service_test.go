package progress_service_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/dsa-forge/forge/internal/database"
	"github.com/dsa-forge/forge/internal/database/dbtest"
	"github.com/dsa-forge/forge/internal/forge_errors"
	"github.com/dsa-forge/forge/internal/service"
	"github.com/dsa-forge/forge/internal/service/progress_service"
	"github.com/dsa-forge/forge/internal/service/user_service"
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

func newProgressService() (*progress_service.ProgressService, database.User) {
	store := dbtest.NewStore()
	gs := &progress_service.ProgressService{
		DB:                store,
		UserServiceConfig: &user_service.UserService{DB: store},
	}
	return gs, store.SeedUser("alice")
}

func strPtr(s string) *string { return &s }

func overallRequest(userID int64) progress_service.ProgressRequest {
	return progress_service.ProgressRequest{
		UserID:             userID,
		Type:               "OVERALL",
		ProblemsSolved:     5,
		TotalProblems:      20,
		AccuracyPercentage: 62.5,
		AverageTimeMs:      40_000,
	}
}

func TestCreateProgress(t *testing.T) {
	gs, user := newProgressService()

	created, err := gs.CreateProgress(context.Background(), overallRequest(user.ID))
	if err != nil {
		t.Fatalf("create progress: %v", err)
	}
	if created.Type != database.ProgressTypeOverall {
		t.Errorf("expected OVERALL, got %v", created.Type)
	}
	if created.Category != nil || created.Difficulty != nil {
		t.Errorf("overall progress must not carry a dimension: %+v", created)
	}
	if created.AccuracyPercentage != 62.5 {
		t.Errorf("stored values must round-trip untouched, got %v", created.AccuracyPercentage)
	}
}

func TestCreateProgressRejectsBadInput(t *testing.T) {
	gs, user := newProgressService()
	ctx := context.Background()

	tests := []struct {
		name string
		req  progress_service.ProgressRequest
		want error
	}{
		{
			name: "unknown_user",
			req: progress_service.ProgressRequest{
				UserID: 99, Type: "OVERALL",
			},
			want: forge_errors.ErrInvalidRequest,
		},
		{
			name: "unknown_type",
			req: progress_service.ProgressRequest{
				UserID: user.ID, Type: "WEEKLY",
			},
			want: forge_errors.ErrInvalidInput,
		},
		{
			name: "negative_counter",
			req: progress_service.ProgressRequest{
				UserID: user.ID, Type: "OVERALL", ProblemsSolved: -1,
			},
			want: forge_errors.ErrInvalidInput,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := gs.CreateProgress(ctx, tc.req); !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func overallUpdateRequest() progress_service.ProgressUpdateRequest {
	return progress_service.ProgressUpdateRequest{
		Type:               "OVERALL",
		ProblemsSolved:     6,
		TotalProblems:      20,
		AccuracyPercentage: 65.0,
		AverageTimeMs:      38_000,
	}
}

func TestUpdateProgressKeepsOwner(t *testing.T) {
	gs, user := newProgressService()
	ctx := context.Background()

	created, err := gs.CreateProgress(ctx, overallRequest(user.ID))
	if err != nil {
		t.Fatalf("create progress: %v", err)
	}

	// the update payload carries no user field, the owner stays put
	updated, err := gs.UpdateProgress(ctx, created.ID, overallUpdateRequest())
	if err != nil {
		t.Fatalf("update progress: %v", err)
	}
	if updated.UserID != user.ID {
		t.Errorf("update must not reassign the owning user, got %v", updated.UserID)
	}
	if updated.ProblemsSolved != 6 {
		t.Errorf("counter not updated: %v", updated.ProblemsSolved)
	}
}

func TestUpdateProgressRejectsBadInput(t *testing.T) {
	gs, user := newProgressService()
	ctx := context.Background()

	created, err := gs.CreateProgress(ctx, overallRequest(user.ID))
	if err != nil {
		t.Fatalf("create progress: %v", err)
	}

	missingType := overallUpdateRequest()
	missingType.Type = ""
	if _, err = gs.UpdateProgress(ctx, created.ID, missingType); !errors.Is(err, forge_errors.ErrInvalidInput) {
		t.Errorf("expected invalid input for missing type, got %v", err)
	}

	negative := overallUpdateRequest()
	negative.TotalProblems = -1
	if _, err = gs.UpdateProgress(ctx, created.ID, negative); !errors.Is(err, forge_errors.ErrInvalidInput) {
		t.Errorf("expected invalid input for negative counter, got %v", err)
	}
}

func TestUpdateMissingProgress(t *testing.T) {
	gs, _ := newProgressService()

	_, err := gs.UpdateProgress(context.Background(), 42, overallUpdateRequest())
	if !errors.Is(err, forge_errors.ErrNotFound) {
		t.Errorf("expected not found error, got %v", err)
	}
}

func TestProgressLookups(t *testing.T) {
	gs, user := newProgressService()
	ctx := context.Background()

	overall, err := gs.CreateProgress(ctx, overallRequest(user.ID))
	if err != nil {
		t.Fatalf("create overall: %v", err)
	}

	catReq := overallRequest(user.ID)
	catReq.Type = "CATEGORY"
	catReq.Category = strPtr("ARRAYS")
	category, err := gs.CreateProgress(ctx, catReq)
	if err != nil {
		t.Fatalf("create category progress: %v", err)
	}

	diffReq := overallRequest(user.ID)
	diffReq.Type = "DIFFICULTY"
	diffReq.Difficulty = strPtr("EASY")
	difficulty, err := gs.CreateProgress(ctx, diffReq)
	if err != nil {
		t.Fatalf("create difficulty progress: %v", err)
	}

	byUser, err := gs.GetProgressByUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("by user: %v", err)
	}
	if len(byUser) != 3 {
		t.Errorf("expected 3 records, got %v", len(byUser))
	}

	byType, err := gs.GetProgressByType(ctx, "CATEGORY")
	if err != nil {
		t.Fatalf("by type: %v", err)
	}
	if len(byType) != 1 || byType[0].ID != category.ID {
		t.Errorf("type filter wrong: %v", byType)
	}

	byUserAndCat, err := gs.GetProgressByUserAndCategory(ctx, user.ID, "ARRAYS")
	if err != nil {
		t.Fatalf("by user and category: %v", err)
	}
	if len(byUserAndCat) != 1 || byUserAndCat[0].ID != category.ID {
		t.Errorf("category filter wrong: %v", byUserAndCat)
	}

	single, err := gs.GetProgressByUserAndTypeAndDifficulty(ctx, user.ID, "DIFFICULTY", "EASY")
	if err != nil {
		t.Fatalf("by user, type and difficulty: %v", err)
	}
	if single.ID != difficulty.ID {
		t.Errorf("expected %v, got %v", difficulty.ID, single.ID)
	}

	got, err := gs.GetOverallProgressByUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("overall by user: %v", err)
	}
	if got.ID != overall.ID {
		t.Errorf("expected overall record %v, got %v", overall.ID, got.ID)
	}

	if _, err = gs.GetProgressByType(ctx, "weekly"); !errors.Is(err, forge_errors.ErrInvalidInput) {
		t.Errorf("unknown type must be rejected, got %v", err)
	}
}

func TestDuplicateProgressRowsLastWriteWins(t *testing.T) {
	gs, user := newProgressService()
	ctx := context.Background()

	first, err := gs.CreateProgress(ctx, overallRequest(user.ID))
	if err != nil {
		t.Fatalf("create progress: %v", err)
	}
	second, err := gs.CreateProgress(ctx, overallRequest(user.ID))
	if err != nil {
		t.Fatalf("create duplicate progress: %v", err)
	}
	if first.ID == second.ID {
		t.Fatal("duplicates must coexist as distinct rows")
	}

	// listings expose both, the single lookup settles on the earliest
	all, err := gs.GetProgressByUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("by user: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected both rows, got %v", len(all))
	}
	single, err := gs.GetOverallProgressByUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("overall lookup: %v", err)
	}
	if single.ID != first.ID {
		t.Errorf("expected earliest row %v, got %v", first.ID, single.ID)
	}
}

func TestDeleteProgress(t *testing.T) {
	gs, user := newProgressService()
	ctx := context.Background()

	created, err := gs.CreateProgress(ctx, overallRequest(user.ID))
	if err != nil {
		t.Fatalf("create progress: %v", err)
	}
	if err = gs.DeleteProgress(ctx, created.ID); err != nil {
		t.Fatalf("delete progress: %v", err)
	}
	if _, err = gs.GetProgressByID(ctx, created.ID); !errors.Is(err, forge_errors.ErrNotFound) {
		t.Errorf("deleted progress still fetchable: %v", err)
	}
	if err = gs.DeleteProgress(ctx, created.ID); !errors.Is(err, forge_errors.ErrNotFound) {
		t.Errorf("second delete should report not found, got %v", err)
	}
}
