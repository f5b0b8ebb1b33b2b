package user_service_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/dsa-forge/forge/internal/database/dbtest"
	"github.com/dsa-forge/forge/internal/forge_errors"
	"github.com/dsa-forge/forge/internal/service"
	"github.com/dsa-forge/forge/internal/service/user_service"
)

func TestMain(m *testing.M) {
	logrus.SetFormatter(&logrus.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	logrus.SetLevel(logrus.DebugLevel)

	service.InitializeServices()
	os.Exit(m.Run())
}

func TestFetchUserByID(t *testing.T) {
	store := dbtest.NewStore()
	us := &user_service.UserService{DB: store}

	seeded := store.SeedUser("alice")
	user, err := us.FetchUserByID(context.Background(), seeded.ID)
	if err != nil {
		t.Fatalf("fetch user: %v", err)
	}
	if user.ID != seeded.ID || user.Username != "alice" {
		t.Errorf("unexpected user: %+v", user)
	}

	_, err = us.FetchUserByID(context.Background(), 99)
	if !errors.Is(err, forge_errors.ErrNotFound) {
		t.Errorf("expected not found error, got %v", err)
	}
}
