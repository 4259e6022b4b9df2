package downloader

import (
	"context"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/saveloop/saveloop/internal/core"
	"github.com/saveloop/saveloop/internal/downloader/sites"
	"github.com/saveloop/saveloop/internal/extract"
	"github.com/saveloop/saveloop/internal/media"
	"github.com/saveloop/saveloop/internal/models"
	"github.com/saveloop/saveloop/internal/store"
)

var jobQueue chan *models.Download

const (
	defaultWorkers = 3
	claimInterval  = 2 * time.Second

	// Whole-download attempts per claimed job, on top of the
	// network-level retries the extraction engine performs itself.
	maxAttempts = 3
)

// StartWorkerPool launches n download workers plus a poller that feeds
// them queued rows. Rows stuck in 'downloading' from a previous process
// are re-queued before the first claim.
func StartWorkerPool(app *core.App, n int) {
	if n <= 0 {
		n = defaultWorkers
	}
	jobQueue = make(chan *models.Download, n)
	st := store.New(app.DB())

	if requeued, err := st.ResetStuckDownloads(); err != nil {
		log.Printf("Error resetting stuck downloads: %v", err)
	} else if requeued > 0 {
		log.Printf("Re-queued %d downloads interrupted by the previous shutdown", requeued)
	}

	for i := 1; i <= n; i++ {
		go worker(i, app, st)
	}

	// Claim queued rows whenever the buffer has drained. The claim itself
	// flips rows to 'downloading', so two pollers can never hand the same
	// row to two workers.
	go func() {
		for {
			if len(jobQueue) == 0 {
				claimed, err := st.ClaimQueuedDownloads(n)
				if err != nil {
					log.Printf("Error claiming queued downloads: %v", err)
				} else {
					for _, d := range claimed {
						jobQueue <- d
					}
				}
			}
			time.Sleep(claimInterval)
		}
	}()
}

func worker(id int, app *core.App, st *store.Store) {
	log.Printf("Starting download worker %d", id)
	for job := range jobQueue {
		processDownload(app, st, job)
	}
}

// processDownload runs one claimed job to a terminal state. Cancellation
// is the exception: the row already carries the terminal status set by
// the API, so the worker just walks away.
func processDownload(app *core.App, st *store.Store, job *models.Download) {
	strategy, ok := sites.Get(job.Platform)
	if !ok {
		log.Printf("Download %d references unregistered platform '%s'", job.ID, job.Platform)
		fail(app, st, job, "This platform is not available on this server.")
		return
	}

	dir := filepath.Join(app.Config().Downloads.Path, strconv.FormatInt(job.UserID, 10))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Printf("Download %d: cannot create %s: %v", job.ID, dir, err)
		fail(app, st, job, "Could not prepare storage for this download.")
		return
	}

	hooks := extract.Hooks{
		OnProgress: func(pct int) {
			st.UpdateDownloadProgress(job.ID, pct)
			sendProgressUpdate(app, job, models.StatusDownloading, pct, "", false)
		},
		OnStatus: func(msg string) {
			log.Printf("Download %d: %s", job.ID, msg)
		},
		ShouldCancel: func() bool {
			status, err := st.GetDownloadStatus(job.ID)
			if errors.Is(err, store.ErrDownloadNotFound) {
				// Row deleted out from under us; stop the transfer.
				return true
			}
			return err == nil && status == models.StatusCancelled
		},
	}

	req := models.DownloadRequest{
		URL:     job.URL,
		Dir:     dir,
		Quality: job.Quality,
		Kind:    job.ContentType,
		Hooks:   hooks,
	}

	var outPath string
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		path, err := strategy.Download(context.Background(), req)
		if errors.Is(err, extract.ErrCancelled) {
			log.Printf("Download %d cancelled by user", job.ID)
			return
		}
		if err != nil {
			lastErr = err
			log.Printf("Download %d attempt %d/%d failed: %v", job.ID, attempt, maxAttempts, err)
			continue
		}
		if located := media.LocateOutput(path, string(job.ContentType)); located != "" {
			outPath = located
			break
		}
		lastErr = errors.New("download finished but produced no usable output file")
	}
	if outPath == "" {
		fail(app, st, job, extract.Normalize(lastErr))
		return
	}

	info, err := os.Stat(outPath)
	if err != nil {
		log.Printf("Download %d: output %s vanished: %v", job.ID, outPath, err)
		fail(app, st, job, "Download failed. Please check the URL and try again.")
		return
	}

	var thumbPath *string
	if job.ContentType == models.ContentImage {
		thumb := strings.TrimSuffix(outPath, filepath.Ext(outPath)) + "_thumb.jpg"
		if err := media.Thumbnail(outPath, thumb); err != nil {
			log.Printf("Download %d: thumbnail generation failed: %v", job.ID, err)
		} else {
			thumbPath = &thumb
		}
	}

	completed, err := st.CompleteDownload(job.ID, outPath, info.Size(), titleFromFile(outPath), thumbPath)
	if err != nil {
		log.Printf("Error completing download %d: %v", job.ID, err)
		return
	}
	if !completed {
		// The row went terminal while we were finishing, which means the
		// user cancelled or deleted it. Don't leave an orphaned file.
		removeFile(outPath)
		if thumbPath != nil {
			removeFile(*thumbPath)
		}
		return
	}
	sendProgressUpdate(app, job, models.StatusCompleted, 100, "Download finished successfully.", true)
}

func fail(app *core.App, st *store.Store, job *models.Download, message string) {
	failed, err := st.FailDownload(job.ID, message)
	if err != nil {
		log.Printf("Error marking download %d failed: %v", job.ID, err)
		return
	}
	if failed {
		sendProgressUpdate(app, job, models.StatusFailed, job.Progress, message, true)
	}
}

// titleFromFile derives a display title from the finished filename: the
// extension and the per-job uuid stem go, and the underscores left by
// restricted filenames become spaces again.
func titleFromFile(path string) *string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if i := strings.LastIndex(stem, "_"); i > 0 {
		if _, err := uuid.Parse(stem[i+1:]); err == nil {
			stem = stem[:i]
		}
	}
	title := strings.TrimSpace(strings.ReplaceAll(stem, "_", " "))
	if title == "" {
		return nil
	}
	return &title
}

func sendProgressUpdate(app *core.App, d *models.Download, status string, progress int, message string, done bool) {
	app.WsHub().BroadcastJSON(models.ProgressUpdate{
		DownloadID: d.ID,
		UserID:     d.UserID,
		Status:     status,
		Progress:   progress,
		Message:    message,
		Done:       done,
	})
}
