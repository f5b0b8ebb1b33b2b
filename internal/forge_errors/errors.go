package forge_errors

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	log "github.com/sirupsen/logrus"
)

const (
	CodeForeignKeyConstraint = "23503"
	CodeCheckConstraint      = "23514"
	CodeInvalidEnumValue     = "22P02"
)

var (
	ErrInternal       = errors.New("internal service error. please try again later")
	ErrInvalidInput   = errors.New("invalid input")
	ErrInvalidRequest = errors.New("invalid request")
	ErrNotFound       = errors.New("entity not found")
)

// HandleDBError classifies a database failure into one of the sentinel
// errors above. Unclassified failures are wrapped as ErrInternal and
// logged with the given context message.
func HandleDBError(err error, contextMessage string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case CodeForeignKeyConstraint:
			err = fmt.Errorf("%w, %s", ErrInvalidRequest, pgErr.Detail)
			log.Error(err)
			return err
		case CodeCheckConstraint, CodeInvalidEnumValue:
			err = fmt.Errorf("%w, %s", ErrInvalidInput, pgErr.Message)
			log.Error(err)
			return err
		}
	}

	err = fmt.Errorf("%w, %s, %w", ErrInternal, contextMessage, err)
	log.Error(err)
	return err
}
