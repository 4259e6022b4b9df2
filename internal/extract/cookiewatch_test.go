package extract_test

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/saveloop/saveloop/internal/extract"
)

// syncBuffer guards the log buffer against the watcher goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestCookieWatcherStartStop(t *testing.T) {
	w, err := extract.WatchCookieFile(filepath.Join(t.TempDir(), "cookies.txt"))
	if err != nil {
		t.Fatalf("Failed to start watcher: %v", err)
	}
	if err := w.Stop(); err != nil {
		t.Fatalf("Failed to stop watcher: %v", err)
	}
}

func TestCookieWatcherMissingDirectory(t *testing.T) {
	_, err := extract.WatchCookieFile(filepath.Join(t.TempDir(), "no_such_dir", "cookies.txt"))
	if err == nil {
		t.Error("Watching a nonexistent directory should fail")
	}
}

func TestCookieWatcherSeesDropIn(t *testing.T) {
	target := filepath.Join(t.TempDir(), "cookies.txt")

	var buf syncBuffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	w, err := extract.WatchCookieFile(target)
	if err != nil {
		t.Fatalf("Failed to start watcher: %v", err)
	}
	defer w.Stop()

	// Give the watcher goroutine a moment to start draining events.
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(target, []byte("# Netscape HTTP Cookie File\n"), 0644); err != nil {
		t.Fatalf("Failed to write cookie file: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if strings.Contains(buf.String(), "appeared") {
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Errorf("Watcher never logged the drop-in. Log so far:\n%s", buf.String())
}
