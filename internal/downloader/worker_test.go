package downloader_test

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/saveloop/saveloop/internal/downloader"
	"github.com/saveloop/saveloop/internal/models"
	"github.com/saveloop/saveloop/internal/store"
	"github.com/saveloop/saveloop/internal/testutil"
)

// waitForStatus polls the row until it reaches the wanted status or the
// deadline expires. The pool claims queued rows on a fixed interval, so
// a generous deadline keeps these tests stable on slow machines.
func waitForStatus(t *testing.T, st *store.Store, id int64, want string, timeout time.Duration) *models.Download {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		d, err := st.GetDownload(id)
		if err != nil {
			t.Fatalf("Failed to read download %d: %v", id, err)
		}
		if d.Status == want {
			return d
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatalf("Download %d never reached status %q", id, want)
	return nil
}

func waitForProgress(t *testing.T, st *store.Store, id int64, timeout time.Duration) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		d, err := st.GetDownload(id)
		if err != nil {
			t.Fatalf("Failed to read download %d: %v", id, err)
		}
		if d.Status == models.StatusDownloading && d.Progress > 0 {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("Download %d never reported progress", id)
}

// TestWorkerPool drives one pool over every scripted mocktube outcome.
// It starts the pool exactly once; the queue channel is package state,
// so per-subtest pools would feed each other's workers.
func TestWorkerPool(t *testing.T) {
	app := testutil.SetupTestApp(t)
	st := store.New(app.DB())
	user := createTestUser(t, st, "pool-user")

	video, err := st.CreateDownload(user.ID, "https://mocktube.test/watch/sunrise-clip", "mocktube", "720p", models.ContentVideo, nil)
	if err != nil {
		t.Fatal(err)
	}
	img, err := st.CreateDownload(user.ID, "https://mocktube.test/p/lake-photo", "mocktube", "Best", models.ContentImage, nil)
	if err != nil {
		t.Fatal(err)
	}
	bad, err := st.CreateDownload(user.ID, "https://mocktube.test/watch/fail-case", "mocktube", "720p", models.ContentVideo, nil)
	if err != nil {
		t.Fatal(err)
	}
	unknown, err := st.CreateDownload(user.ID, "https://example.com/clip", "myspace", "720p", models.ContentVideo, nil)
	if err != nil {
		t.Fatal(err)
	}

	downloader.StartWorkerPool(app, 2)

	t.Run("Video Completes", func(t *testing.T) {
		d := waitForStatus(t, st, video.ID, models.StatusCompleted, 20*time.Second)
		if d.Progress != 100 {
			t.Errorf("Expected progress 100, got %d", d.Progress)
		}
		if d.FilePath == nil {
			t.Fatal("Expected a file path on the completed download")
		}
		if !strings.HasPrefix(*d.FilePath, app.Config().Downloads.Path) {
			t.Errorf("Expected the output under the configured downloads dir, got %s", *d.FilePath)
		}
		info, err := os.Stat(*d.FilePath)
		if err != nil {
			t.Fatalf("Completed file missing on disk: %v", err)
		}
		if d.Size == nil || *d.Size != info.Size() {
			t.Errorf("Expected recorded size %d, got %v", info.Size(), d.Size)
		}
		if d.Title == nil || *d.Title != "mocktube sunrise-clip" {
			t.Errorf("Expected a filename-derived title, got %v", d.Title)
		}
		if d.CompletedAt == nil {
			t.Error("Expected completed_at to be stamped")
		}
	})

	t.Run("Image Gets Thumbnail", func(t *testing.T) {
		d := waitForStatus(t, st, img.ID, models.StatusCompleted, 20*time.Second)
		if d.ThumbPath == nil {
			t.Fatal("Expected a thumbnail for a completed image download")
		}
		if _, err := os.Stat(*d.ThumbPath); err != nil {
			t.Errorf("Thumbnail missing on disk: %v", err)
		}
	})

	t.Run("Failure Stores Normalized Message", func(t *testing.T) {
		d := waitForStatus(t, st, bad.ID, models.StatusFailed, 20*time.Second)
		if d.ErrorMessage == nil {
			t.Fatal("Expected an error message on the failed download")
		}
		if *d.ErrorMessage != "This content is unavailable. It may have been removed." {
			t.Errorf("Expected the user-facing unavailable message, got %q", *d.ErrorMessage)
		}
		if d.FilePath != nil {
			t.Error("Expected no file path on a failed download")
		}
	})

	t.Run("Unregistered Platform Fails", func(t *testing.T) {
		d := waitForStatus(t, st, unknown.ID, models.StatusFailed, 20*time.Second)
		if d.ErrorMessage == nil || *d.ErrorMessage != "This platform is not available on this server." {
			t.Errorf("Expected the unavailable-platform message, got %v", d.ErrorMessage)
		}
	})

	t.Run("Cancellation Stops The Transfer", func(t *testing.T) {
		slow, err := st.CreateDownload(user.ID, "https://mocktube.test/watch/slow-stream", "mocktube", "720p", models.ContentVideo, nil)
		if err != nil {
			t.Fatal(err)
		}
		waitForProgress(t, st, slow.ID, 20*time.Second)

		cancelled, err := st.CancelDownload(slow.ID, user.ID)
		if err != nil || !cancelled {
			t.Fatalf("CancelDownload = %v, %v", cancelled, err)
		}

		// The worker notices on its next progress step and walks away
		// without writing another status.
		time.Sleep(500 * time.Millisecond)
		d, err := st.GetDownload(slow.ID)
		if err != nil {
			t.Fatal(err)
		}
		if d.Status != models.StatusCancelled {
			t.Errorf("Expected the row to stay cancelled, got %s", d.Status)
		}
		if d.FilePath != nil {
			t.Error("Expected no file recorded for a cancelled download")
		}
	})
}
