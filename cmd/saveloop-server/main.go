package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/saveloop/saveloop/internal/api"
	"github.com/saveloop/saveloop/internal/auth"
	"github.com/saveloop/saveloop/internal/core"
	"github.com/saveloop/saveloop/internal/downloader"
	"github.com/saveloop/saveloop/internal/downloader/sites"
	"github.com/saveloop/saveloop/internal/downloader/sites/dailymotion"
	"github.com/saveloop/saveloop/internal/downloader/sites/facebook"
	"github.com/saveloop/saveloop/internal/downloader/sites/instagram"
	"github.com/saveloop/saveloop/internal/downloader/sites/linkedin"
	"github.com/saveloop/saveloop/internal/downloader/sites/pinterest"
	"github.com/saveloop/saveloop/internal/downloader/sites/tiktok"
	"github.com/saveloop/saveloop/internal/downloader/sites/twitter"
	"github.com/saveloop/saveloop/internal/downloader/sites/vimeo"
	"github.com/saveloop/saveloop/internal/downloader/sites/youtube"
	"github.com/saveloop/saveloop/internal/extract"
	"github.com/saveloop/saveloop/internal/jobs"
	"github.com/saveloop/saveloop/internal/store"
	"github.com/saveloop/saveloop/internal/util"
)

// Overridden at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// Initialize the core application components
	app, err := core.New(version)
	if err != nil {
		log.Fatalf("Fatal error during application setup: %v", err)
	}
	defer app.Close()

	cfg := app.Config()

	// The download directory must be writable before anything is queued.
	if err := util.ValidateFolderPath(cfg.Downloads.Path, "."); err != nil {
		log.Fatalf("Download directory %q is not usable: %v", cfg.Downloads.Path, err)
	}

	// --- First User Provisioning ---
	st := store.New(app.DB())
	userCount, err := st.CountUsers()
	if err != nil {
		log.Fatalf("Could not check user count: %v", err)
	}
	if userCount == 0 {
		log.Println("No users found. Creating default admin account.")
		password := generateRandomPassword(12)
		passwordHash, _ := auth.HashPassword(password)
		_, err := st.CreateUser("admin", "admin@localhost", passwordHash, "admin")
		if err != nil {
			log.Fatalf("Could not create default admin user: %v", err)
		}
		log.Println("==================================================")
		log.Println("Default admin user created.")
		log.Printf("Username: admin")
		log.Printf("Password: %s", password)
		log.Println("Please change this password immediately.")
		log.Println("==================================================")
	}

	// Make sure a yt-dlp binary is present before any worker starts.
	extract.EnsureBinary(context.Background())

	// Build the shared fetcher from the operator's auth material and
	// register all supported platform strategies here.
	fetcher := extract.NewFetcher(extract.AuthMaterial{
		CookieFile:    cfg.Auth.CookieFile,
		CookieBrowser: cfg.Auth.CookieBrowser,
		Username:      cfg.Auth.Username,
		Password:      cfg.Auth.Password,
	}, extract.InProduction(cfg.Environment))
	sites.Register(youtube.New(fetcher))
	sites.Register(facebook.New(fetcher))
	sites.Register(instagram.New(fetcher))
	sites.Register(twitter.New(fetcher))
	sites.Register(tiktok.New(fetcher))
	sites.Register(vimeo.New(fetcher))
	sites.Register(dailymotion.New(fetcher))
	sites.Register(pinterest.New(fetcher))
	sites.Register(linkedin.New(fetcher))

	// Log cookie file changes so drop-in refreshes are visible.
	cookieWatcher, err := extract.WatchCookieFile(cfg.Auth.CookieFile)
	if err != nil {
		log.Printf("Warning: could not start cookie watcher: %v", err)
	} else {
		defer cookieWatcher.Stop()
	}

	// Start the download worker pool
	downloader.StartWorkerPool(app, cfg.Downloads.Workers)

	// Start the background job scheduler
	jobs.StartJobs(app)

	// Setup the API server
	server := api.NewServer(app)
	addr := fmt.Sprintf(":%d", cfg.Port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: server.Router(),
	}
	// --- Graceful Shutdown ---
	// Start the server in a goroutine so it doesn't block.
	go func() {
		log.Printf("Starting web server on %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not start server: %v", err)
		}
	}()

	// Wait for an interrupt signal.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Create a context with a timeout to allow existing connections to finish.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Attempt a graceful shutdown.
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}

func generateRandomPassword(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[seededRand.Intn(len(charset))]
	}
	return string(b)
}
