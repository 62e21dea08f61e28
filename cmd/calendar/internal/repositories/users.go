package repositories

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"

	"calendar.nationaldaily.com/internal/models"
)

const usersKey = "users"

// UserRepository persists the whole account list as a single row, mirroring
// how the event collections are stored. The list is small and only changes
// on sign-up.
type UserRepository struct {
	db postgres.DB
}

func (repo *UserRepository) Save(
	ctx context.Context,
	users []models.User,
) error {
	data, err := json.Marshal(users)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO auth.snapshots (key, data, updated_at)
		VALUES ($1, $2::jsonb, now())
		ON CONFLICT (key)
		DO UPDATE SET data = $2::jsonb, updated_at = now()
	`

	_, err = repo.db.Exec(ctx, query, usersKey, string(data))
	if err != nil {
		return postgres.PgxErrorToHTTPError(err)
	}

	return nil
}

func (repo *UserRepository) Load(
	ctx context.Context,
) ([]models.User, bool, error) {
	query := `
		SELECT data
		FROM auth.snapshots
		WHERE key = $1
	`

	var data []byte
	err := repo.db.QueryRow(ctx, query, usersKey).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, postgres.PgxErrorToHTTPError(err)
	}

	users := []models.User{}
	err = json.Unmarshal(data, &users)
	if err != nil {
		return nil, false, err
	}

	return users, true, nil
}
