package main

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	httptools "github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
	"github.com/xdoubleu/essentia/v2/pkg/sentrytools"

	"calendar.nationaldaily.com/cmd/calendar/internal/repositories"
	"calendar.nationaldaily.com/cmd/calendar/internal/services"
	"calendar.nationaldaily.com/internal/config"
)

//go:embed templates/html/**/*html
var htmlTemplates embed.FS

//go:embed migrations/*.sql
var embedMigrations embed.FS

type Application struct {
	logger   *slog.Logger
	config   config.Config
	services *services.Services
	apps     *Apps
	tpl      *template.Template
}

func main() {
	cfg := config.New(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	logger := slog.New(sentrytools.NewLogHandler(cfg.Env,
		slog.NewTextHandler(os.Stdout, nil)))
	db, err := postgres.Connect(
		logger,
		cfg.DBDsn,
		25, //nolint:mnd //no magic number
		"15m",
		60,             //nolint:mnd //no magic number
		10*time.Second, //nolint:mnd //no magic number
		5*time.Minute,  //nolint:mnd //no magic number
	)
	if err != nil {
		panic(err)
	}
	defer db.Close()

	app := NewApplication(logger, cfg, db)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,  //nolint:mnd //no magic number
		WriteTimeout: 10 * time.Second, //nolint:mnd //no magic number
	}
	err = httptools.Serve(logger, srv, cfg.Env)
	if err != nil {
		logger.Error("failed to serve server", logging.ErrAttr(err))
	}
}

func NewApplication(
	logger *slog.Logger,
	config config.Config,
	db *pgxpool.Pool,
) *Application {
	tpl := template.Must(template.ParseFS(htmlTemplates, "templates/html/**/*.html"))

	//nolint:exhaustruct //other fields are optional
	app := &Application{
		logger: logger,
		config: config,
		services: services.New(
			config,
			repositories.New(postgres.NewSpanDB(db)),
			tpl,
		),
		tpl: tpl,
	}

	apps := NewApps(app.services.Auth, logger, config, db)

	err := app.applyAuthMigrations(db)
	if err != nil {
		panic(err)
	}

	err = apps.ApplyMigrations(db)
	if err != nil {
		panic(err)
	}

	err = app.services.Auth.Load(context.Background())
	if err != nil {
		panic(err)
	}

	app.apps = apps

	return app
}

func (app *Application) applyAuthMigrations(db *pgxpool.Pool) error {
	migrationsDB := stdlib.OpenDBFromPool(db)

	goose.SetLogger(slog.NewLogLogger(app.logger.Handler(), slog.LevelInfo))

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(string(goose.DialectPostgres)); err != nil {
		return err
	}

	return goose.Up(migrationsDB, "migrations")
}

func (app *Application) ApplyMigrations(db *pgxpool.Pool) error {
	if err := app.applyAuthMigrations(db); err != nil {
		return err
	}

	return app.apps.ApplyMigrations(db)
}
