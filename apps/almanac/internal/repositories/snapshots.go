package repositories

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"

	"calendar.nationaldaily.com/apps/almanac/internal/models"
)

const (
	eventsKey        = "events"
	notificationsKey = "notifications"
)

// SnapshotRepository persists whole collections as single rows. The in-memory
// store is authoritative; after every mutation the affected collection is
// written out in full so a restart reconstructs identical state.
type SnapshotRepository struct {
	db postgres.DB
}

func (repo *SnapshotRepository) save(
	ctx context.Context,
	key string,
	value any,
) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO almanac.snapshots (key, data, updated_at)
		VALUES ($1, $2::jsonb, now())
		ON CONFLICT (key)
		DO UPDATE SET data = $2::jsonb, updated_at = now()
	`

	_, err = repo.db.Exec(ctx, query, key, string(data))
	if err != nil {
		return postgres.PgxErrorToHTTPError(err)
	}

	return nil
}

// load reports false without error when no snapshot exists yet, so callers
// fall back to built-in defaults instead of treating first run as a failure.
func (repo *SnapshotRepository) load(
	ctx context.Context,
	key string,
	dst any,
) (bool, error) {
	query := `
		SELECT data
		FROM almanac.snapshots
		WHERE key = $1
	`

	var data []byte
	err := repo.db.QueryRow(ctx, query, key).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, postgres.PgxErrorToHTTPError(err)
	}

	err = json.Unmarshal(data, dst)
	if err != nil {
		return false, err
	}

	return true, nil
}

func (repo *SnapshotRepository) SaveEvents(
	ctx context.Context,
	events []models.HistoricalEvent,
) error {
	return repo.save(ctx, eventsKey, events)
}

func (repo *SnapshotRepository) LoadEvents(
	ctx context.Context,
) ([]models.HistoricalEvent, bool, error) {
	events := []models.HistoricalEvent{}
	found, err := repo.load(ctx, eventsKey, &events)
	if err != nil {
		return nil, false, err
	}

	return events, found, nil
}

func (repo *SnapshotRepository) SaveNotifications(
	ctx context.Context,
	notifications []models.SystemNotification,
) error {
	return repo.save(ctx, notificationsKey, notifications)
}

func (repo *SnapshotRepository) LoadNotifications(
	ctx context.Context,
) ([]models.SystemNotification, bool, error) {
	notifications := []models.SystemNotification{}
	found, err := repo.load(ctx, notificationsKey, &notifications)
	if err != nil {
		return nil, false, err
	}

	return notifications, found, nil
}
