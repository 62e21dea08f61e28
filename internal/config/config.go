//nolint:mnd //no magic number
package config

import (
	"log/slog"

	"github.com/xdoubleu/essentia/v2/pkg/config"
)

type Config struct {
	Env                 string
	Port                int
	WebURL              string
	SentryDsn           string
	SampleRate          float64
	SessionExpiry       string
	DBDsn               string
	Release             string
	GeminiAPIKey        string
	GeminiModel         string
	GeminiStrategyModel string
	SenderName          string
}

func New(logger *slog.Logger) Config {
	var cfg Config

	parser := config.New(logger)

	cfg.Env = parser.EnvStr("ENV", config.ProdEnv)
	cfg.Port = parser.EnvInt("PORT", 8000)
	cfg.WebURL = parser.EnvStr("WEB_URL", "http://localhost:8000")
	cfg.SentryDsn = parser.EnvStr("SENTRY_DSN", "")
	cfg.SampleRate = parser.EnvFloat("SAMPLE_RATE", 1.0)
	cfg.SessionExpiry = parser.EnvStr("SESSION_EXPIRY", "7d")
	cfg.DBDsn = parser.EnvStr("DB_DSN", "postgres://postgres@localhost/postgres")
	cfg.Release = parser.EnvStr("RELEASE", config.DevEnv)

	cfg.GeminiAPIKey = parser.EnvStr("GEMINI_API_KEY", "")
	cfg.GeminiModel = parser.EnvStr("GEMINI_MODEL", "gemini-2.5-flash")
	cfg.GeminiStrategyModel = parser.EnvStr(
		"GEMINI_STRATEGY_MODEL",
		"gemini-3-pro-preview",
	)

	cfg.SenderName = parser.EnvStr("SENDER_NAME", "Editorial Team")

	return cfg
}
