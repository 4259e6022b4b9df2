// It defines the API server, sets up the routes (endpoints)
// using chi, and links them to the handler functions.

package api

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/saveloop/saveloop/internal/billing"
	"github.com/saveloop/saveloop/internal/core"
	"github.com/saveloop/saveloop/internal/downloader"
	"github.com/saveloop/saveloop/internal/ratelimit"
	"github.com/saveloop/saveloop/internal/store"
)

// Server holds the dependencies for our API.
type Server struct {
	app       *core.App
	db        *sql.DB
	store     *store.Store
	downloads *downloader.Service
	billing   *billing.Service
	limiter   *ratelimit.Limiter
}

// Store returns the store instance.
func (s *Server) Store() *store.Store {
	return s.store
}

// NewServer creates a new Server instance.
func NewServer(app *core.App) *Server {
	storeInstance := store.New(app.DB())
	cfg := app.Config()
	return &Server{
		app:       app,
		db:        app.DB(),
		store:     storeInstance,
		downloads: downloader.NewService(app),
		billing:   billing.NewService(storeInstance),
		limiter:   ratelimit.New(cfg.RateLimit.PerMinute, cfg.RateLimit.RedisAddr),
	}
}

// Router sets up and returns the main router for the application.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)    // Logs requests to the console
	r.Use(middleware.Recoverer) // Recovers from panics
	r.Use(middleware.Timeout(60 * time.Second))

	// Public API routes
	r.Post("/api/users/register", s.handleRegister)
	r.Post("/api/users/login", s.handleLogin)
	r.Get("/api/version", s.handleGetVersion)
	r.Get("/api/plans", s.handleListPlans)

	r.Group(func(r chi.Router) {
		r.Use(s.AuthMiddleware)

		r.Post("/api/users/logout", s.handleLogout)
		r.Get("/api/users/me", s.handleGetMe)

		r.Route("/api", func(r chi.Router) {
			// Download Routes
			r.Route("/downloads", func(r chi.Router) {
				r.With(s.SubmitRateLimit).Post("/", s.handleSubmitDownload)
				r.Get("/", s.handleListDownloads)
				r.Delete("/", s.handleClearDownloads)

				r.Get("/{downloadID}/status", s.handlePollStatus)
				r.Get("/{downloadID}/file", s.handleServeFile)
				r.Get("/{downloadID}/thumbnail", s.handleServeThumbnail)
				r.Post("/{downloadID}/cancel", s.handleCancelDownload)
				r.Post("/{downloadID}/retry", s.handleRetryDownload)
				r.Delete("/{downloadID}", s.handleDeleteDownload)
			})

			r.Get("/platforms", s.handleListPlatforms)

			// Subscription and Usage Routes
			r.Get("/subscription", s.handleGetSubscription)
			r.Post("/subscription", s.handleSubscribe)
			r.Post("/subscription/cancel", s.handleCancelSubscription)
			r.Get("/usage", s.handleGetUsage)

			// Admin Routes
			r.Route("/admin", func(r chi.Router) {
				r.Use(s.AdminOnlyMiddleware)

				r.Get("/jobs", s.handleGetAdminJobsStatus)
				r.Post("/jobs/{jobID}/run", s.handleRunAdminJob)

				r.Get("/stats", s.handleGetAdminStats)
				r.Get("/downloads", s.handleListAllDownloads)

				// User Management Routes
				r.Get("/users", s.handleAdminListUsers)
				r.Post("/users", s.handleAdminCreateUser)
				r.Put("/users/{userID}", s.handleAdminUpdateUser)
				r.Delete("/users/{userID}", s.handleAdminDeleteUser)
			})
		})

		// WebSocket route for live download progress.
		r.Get("/ws/progress", func(w http.ResponseWriter, r *http.Request) {
			s.app.WsHub().ServeWs(w, r)
		})
	})

	r.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		if err := s.db.Ping(); err != nil {
			RespondWithError(w, http.StatusServiceUnavailable, "server_error", "Database connection failed")
			return
		}
		RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return r
}
