package mocktube_test

import (
	"context"
	"errors"
	"image/jpeg"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/saveloop/saveloop/internal/downloader/sites/mocktube"
	"github.com/saveloop/saveloop/internal/extract"
	"github.com/saveloop/saveloop/internal/models"
)

func TestDownloadSuccess(t *testing.T) {
	dir := t.TempDir()
	var last atomic.Int64

	path, err := mocktube.New().Download(context.Background(), models.DownloadRequest{
		URL:  "https://mocktube.test/ok",
		Dir:  dir,
		Kind: models.ContentVideo,
		Hooks: extract.Hooks{
			OnProgress: func(pct int) { last.Store(int64(pct)) },
		},
	})
	if err != nil {
		t.Fatalf("Download failed: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("Output %q not under requested dir %q", path, dir)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Output file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Output file is empty")
	}
	if got := last.Load(); got != 100 {
		t.Errorf("Final progress = %d, want 100", got)
	}
}

func TestDownloadImageIsDecodable(t *testing.T) {
	dir := t.TempDir()
	path, err := mocktube.New().Download(context.Background(), models.DownloadRequest{
		URL:  "https://mocktube.test/pretty-picture",
		Dir:  dir,
		Kind: models.ContentImage,
	})
	if err != nil {
		t.Fatalf("Download failed: %v", err)
	}
	if !strings.HasSuffix(path, ".jpg") {
		t.Fatalf("Expected a .jpg output, got %q", path)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if _, err := jpeg.Decode(f); err != nil {
		t.Errorf("Output is not a decodable JPEG: %v", err)
	}
}

func TestDownloadFailure(t *testing.T) {
	_, err := mocktube.New().Download(context.Background(), models.DownloadRequest{
		URL:  "https://mocktube.test/fail",
		Dir:  t.TempDir(),
		Kind: models.ContentVideo,
	})
	if err == nil {
		t.Fatal("Expected scripted failure, got success")
	}
	if !strings.Contains(err.Error(), "unavailable") {
		t.Errorf("Unexpected error text: %v", err)
	}
}

func TestDownloadCancellation(t *testing.T) {
	start := time.Now()
	var cancelled atomic.Bool
	go func() {
		time.Sleep(100 * time.Millisecond)
		cancelled.Store(true)
	}()

	_, err := mocktube.New().Download(context.Background(), models.DownloadRequest{
		URL:  "https://mocktube.test/slow",
		Dir:  t.TempDir(),
		Kind: models.ContentVideo,
		Hooks: extract.Hooks{
			ShouldCancel: func() bool { return cancelled.Load() },
		},
	})
	if !errors.Is(err, extract.ErrCancelled) {
		t.Fatalf("Expected ErrCancelled, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("Cancellation took %v, expected well under the full transfer time", elapsed)
	}
}
