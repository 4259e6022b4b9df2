package extract

import (
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// CookieWatcher watches the directory holding the cookie file and logs
// when the file appears, changes, or disappears. Cookie discovery runs
// per download attempt anyway, so the watcher exists to make drop-in
// refreshes visible in the log, not to re-read any state.
type CookieWatcher struct {
	watcher  *fsnotify.Watcher
	target   string
	stopChan chan struct{}
}

// WatchCookieFile starts watching the given cookie file path. An empty
// path watches the default drop-in location.
func WatchCookieFile(path string) (*CookieWatcher, error) {
	if path == "" {
		path = "cookies.txt"
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the parent directory: the file itself may not exist yet,
	// and editors replace files by rename, which unwatches a file-level
	// watch.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}
	w := &CookieWatcher{
		watcher:  watcher,
		target:   filepath.Clean(path),
		stopChan: make(chan struct{}),
	}
	go w.processEvents()
	log.Printf("Cookie watcher started for %s", w.target)
	return w, nil
}

// Stop stops the watcher.
func (w *CookieWatcher) Stop() error {
	close(w.stopChan)
	return w.watcher.Close()
}

func (w *CookieWatcher) processEvents() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Cookie watcher error: %v", err)
		case <-w.stopChan:
			return
		}
	}
}

func (w *CookieWatcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.target {
		return
	}
	switch {
	case event.Op&fsnotify.Create == fsnotify.Create:
		log.Printf("Cookie file %s appeared; the next download attempt will use it", w.target)
	case event.Op&fsnotify.Write == fsnotify.Write:
		log.Printf("Cookie file %s updated", w.target)
	case event.Op&fsnotify.Remove == fsnotify.Remove,
		event.Op&fsnotify.Rename == fsnotify.Rename:
		log.Printf("Cookie file %s removed; downloads fall back to anonymous access", w.target)
	}
}
