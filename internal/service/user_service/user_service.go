package user_service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	log "github.com/sirupsen/logrus"

	"github.com/dsa-forge/forge/internal/database"
	"github.com/dsa-forge/forge/internal/forge_errors"
)

// Users are managed by an external collaborator. This service only
// resolves ids so that child entities can verify their references.
type UserService struct {
	DB database.Store
}

type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u *UserService) FetchUserByID(ctx context.Context, id int64) (User, error) {
	dbUser, err := u.DB.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, fmt.Errorf(
				"%w, no user exist with the given id",
				forge_errors.ErrNotFound,
			)
		}
		err = fmt.Errorf(
			"%w, cannot fetch user with id %v, %w",
			forge_errors.ErrInternal,
			id,
			err,
		)
		log.Error(err)
		return User{}, err
	}
	return User{
		ID:        dbUser.ID,
		Username:  dbUser.Username,
		CreatedAt: dbUser.CreatedAt,
	}, nil
}
