package core

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/saveloop/saveloop/internal/assets"
	"github.com/saveloop/saveloop/internal/config"
	"github.com/saveloop/saveloop/internal/db"
	"github.com/saveloop/saveloop/internal/jobs"
	"github.com/saveloop/saveloop/internal/websocket"
)

// App holds the core components of the application that are shared
// between the server and the CLI.
type App struct {
	config     *config.Config
	db         *sql.DB
	wsHub      *websocket.Hub
	jobManager *jobs.JobManager
	version    string
}

// New sets up and returns a new App instance. It handles loading the
// configuration, initializing the database connection, and running migrations.
func New(version string) (*App, error) {
	// Load configuration from config.yml
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize the database connection
	database, err := db.InitDB(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Run database migrations
	if err := db.RunMigrations(database, assets.MigrationsFS); err != nil {
		// We can't proceed without a valid database schema.
		// Close the DB connection before failing.
		database.Close()
		return nil, fmt.Errorf("failed to run database migrations: %w", err)
	}

	app := NewApp(cfg, database, version)
	log.Println("Core application setup complete.")
	return app, nil
}

// NewApp assembles an App from already-initialized components. Used by New
// and by tests that bring their own database.
func NewApp(cfg *config.Config, database *sql.DB, version string) *App {
	hub := websocket.NewHub()
	go hub.Run()

	app := &App{
		config:  cfg,
		db:      database,
		wsHub:   hub,
		version: version,
	}
	app.jobManager = jobs.NewManager()
	jobs.RegisterAll(app.jobManager)
	return app
}

func (a *App) DB() *sql.DB                  { return a.db }
func (a *App) Config() *config.Config       { return a.config }
func (a *App) WsHub() *websocket.Hub        { return a.wsHub }
func (a *App) JobManager() *jobs.JobManager { return a.jobManager }
func (a *App) Version() string              { return a.version }

// Close gracefully closes the application's resources, like the DB connection.
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}
