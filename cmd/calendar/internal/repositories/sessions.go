package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/xdoubleu/essentia/v2/pkg/database"
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
)

type Session struct {
	Token     string
	Email     string
	ExpiresAt time.Time
}

// SessionRepository stores sessions relationally so signing out one browser
// never touches another browser's session.
type SessionRepository struct {
	db postgres.DB
}

func (repo *SessionRepository) Create(
	ctx context.Context,
	session Session,
) error {
	query := `
		INSERT INTO auth.sessions (token, email, expires_at)
		VALUES ($1, $2, $3)
	`

	_, err := repo.db.Exec(
		ctx,
		query,
		session.Token,
		session.Email,
		session.ExpiresAt,
	)
	if err != nil {
		return postgres.PgxErrorToHTTPError(err)
	}

	return nil
}

func (repo *SessionRepository) Get(
	ctx context.Context,
	token string,
) (*Session, error) {
	query := `
		SELECT token, email, expires_at
		FROM auth.sessions
		WHERE token = $1
	`

	//nolint:exhaustruct //fields are scanned below
	session := Session{}
	err := repo.db.QueryRow(ctx, query, token).Scan(
		&session.Token,
		&session.Email,
		&session.ExpiresAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, database.ErrResourceNotFound
	}
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return &session, nil
}

func (repo *SessionRepository) Delete(
	ctx context.Context,
	token string,
) error {
	query := `
		DELETE FROM auth.sessions
		WHERE token = $1
	`

	_, err := repo.db.Exec(ctx, query, token)
	if err != nil {
		return postgres.PgxErrorToHTTPError(err)
	}

	return nil
}

func (repo *SessionRepository) DeleteExpired(ctx context.Context) error {
	query := `
		DELETE FROM auth.sessions
		WHERE expires_at < now()
	`

	_, err := repo.db.Exec(ctx, query)
	if err != nil {
		return postgres.PgxErrorToHTTPError(err)
	}

	return nil
}
