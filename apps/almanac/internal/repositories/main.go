package repositories

import (
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
)

type Repositories struct {
	Snapshots *SnapshotRepository
}

func New(db postgres.DB) *Repositories {
	snapshots := &SnapshotRepository{db: db}

	return &Repositories{
		Snapshots: snapshots,
	}
}
