package services

import (
	"html/template"
	"sync"

	"github.com/xdoubleu/essentia/v2/pkg/config"

	"calendar.nationaldaily.com/cmd/calendar/internal/repositories"
	cfg "calendar.nationaldaily.com/internal/config"
)

type Services struct {
	Auth *AuthService
}

func New(
	cfg cfg.Config,
	repositories *repositories.Repositories,
	tpl *template.Template,
) *Services {
	return &Services{
		Auth: &AuthService{
			users:            repositories.Users,
			sessions:         repositories.Sessions,
			tpl:              tpl,
			useSecureCookies: cfg.Env == config.ProdEnv,
			sessionExpiry:    cfg.SessionExpiry,
			mu:               sync.Mutex{},
			accounts:         nil,
		},
	}
}
