// A NEW file to hold a shared test server setup utility, which simplifies all API tests.

package testutil

import (
	"database/sql"
	"testing"

	"github.com/saveloop/saveloop/internal/api"
	"github.com/saveloop/saveloop/internal/config"
	"github.com/saveloop/saveloop/internal/core"
	"github.com/saveloop/saveloop/internal/downloader/sites"
	"github.com/saveloop/saveloop/internal/downloader/sites/mocktube"
)

// SetupTestApp assembles a core.App backed by an in-memory database and a
// temp download directory, with only the mocktube strategy registered.
func SetupTestApp(t *testing.T) *core.App {
	t.Helper()
	db := SetupTestDB(t)

	cfg := &config.Config{}
	cfg.Environment = "development"
	cfg.Downloads.Path = t.TempDir()
	cfg.Downloads.Workers = 1
	app := core.NewApp(cfg, db, "test")

	t.Cleanup(func() {
		sites.UnregisterAll()
	})

	// Register strategies for the test environment. The aliases stand in
	// for real platforms so the submit path can resolve a strategy.
	sites.Register(mocktube.New())
	sites.Register(mocktube.ForTag("youtube"))
	sites.Register(mocktube.ForTag("pinterest"))
	return app
}

// SetupTestServer initializes a full core.App and api.Server for integration testing.
func SetupTestServer(t *testing.T) (*api.Server, *sql.DB) {
	t.Helper()
	app := SetupTestApp(t)
	server := api.NewServer(app)
	return server, app.DB()
}
