package almanac_test

import (
	"net/http"
	"os"
	"testing"
	"time"

	configtools "github.com/xdoubleu/essentia/v2/pkg/config"
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
	"github.com/xdoubleu/essentia/v2/pkg/logging"

	"calendar.nationaldaily.com/apps/almanac"
	"calendar.nationaldaily.com/apps/almanac/internal/mocks"
	"calendar.nationaldaily.com/internal/config"
	sharedmocks "calendar.nationaldaily.com/internal/mocks"
	"calendar.nationaldaily.com/internal/models"
)

var testApp *almanac.Almanac //nolint:gochecknoglobals //needed for tests

//nolint:gochecknoglobals //needed for tests
var testGemini *mocks.MockGeminiClient

//nolint:gochecknoglobals //needed for tests
var adminUser = models.User{
	Name:     "Admin User",
	Email:    "admin@nationaldaily.com",
	Role:     models.RoleAdmin,
	Password: "",
}

func TestMain(m *testing.M) {
	var err error

	cfg := config.New(logging.NewNopLogger())
	cfg.Env = configtools.TestEnv
	cfg.GeminiAPIKey = "test-key"

	postgresDB, err := postgres.Connect(
		logging.NewNopLogger(),
		cfg.DBDsn,
		25,
		"15m",
		5,
		15*time.Second,
		30*time.Second,
	)
	if err != nil {
		panic(err)
	}

	testGemini = mocks.NewMockGeminiClient()
	clients := almanac.Clients{
		Gemini: testGemini,
	}

	testApp = almanac.NewInner(
		sharedmocks.NewMockedAuthService(adminUser),
		logging.NewNopLogger(),
		cfg,
		postgresDB,
		clients,
	)

	err = testApp.ApplyMigrations(postgresDB)
	if err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}

func getRoutes() http.Handler {
	mux := http.NewServeMux()
	testApp.Routes(testApp.GetName(), mux)
	return mux
}
