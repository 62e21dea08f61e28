package repositories

import (
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
)

type Repositories struct {
	Users    *UserRepository
	Sessions *SessionRepository
}

func New(db postgres.DB) *Repositories {
	return &Repositories{
		Users:    &UserRepository{db: db},
		Sessions: &SessionRepository{db: db},
	}
}
