// Package downloader admits download requests against the caller's plan
// and runs them through the registered platform strategies on a small
// worker pool.
package downloader

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/saveloop/saveloop/internal/billing"
	"github.com/saveloop/saveloop/internal/core"
	"github.com/saveloop/saveloop/internal/models"
	"github.com/saveloop/saveloop/internal/platform"
	"github.com/saveloop/saveloop/internal/store"
)

var (
	ErrUnsupportedPlatform = errors.New("url does not match any supported platform")
	ErrPlatformSuspended   = errors.New("downloads for this platform are temporarily suspended")
	ErrNotCancellable      = errors.New("only an active download can be cancelled")
	ErrNotRetryable        = errors.New("only a failed download can be retried")
)

const (
	defaultPerPage = 20
	maxPerPage     = 100
)

// Service owns the user-facing side of the download pipeline: admission,
// cancellation, retries, and history. The worker pool picks up whatever
// Submit leaves in the queue.
type Service struct {
	app     *core.App
	st      *store.Store
	billing *billing.Service
}

func NewService(app *core.App) *Service {
	st := store.New(app.DB())
	return &Service{app: app, st: st, billing: billing.NewService(st)}
}

// Submit validates a download request and, if the caller is entitled to
// it, creates the queued row the worker pool will pick up. The checks
// run in a fixed order: platform identification, suspension, quota, then
// quality resolution. No row is written until every check has passed.
func (s *Service) Submit(ctx context.Context, user *models.User, rawURL, quality string) (*models.Download, error) {
	rawURL = strings.TrimSpace(rawURL)
	tag, ok := platform.Identify(rawURL)
	if !ok {
		return nil, ErrUnsupportedPlatform
	}
	if s.app.Config().PlatformSuspended(string(tag)) {
		return nil, fmt.Errorf("%w: %s", ErrPlatformSuspended, platform.Name(tag))
	}

	kind := platform.ContentKind(rawURL)
	if err := s.billing.CanDownload(ctx, user, kind); err != nil {
		return nil, err
	}

	if quality == "" {
		quality = "Best"
	}
	resolved := billing.ResolveQuality(s.billing.EffectivePlan(user), kind, quality)
	var videoQuality *string
	if kind == models.ContentVideo {
		videoQuality = &resolved
	}

	d, err := s.st.CreateDownload(user.ID, rawURL, string(tag), resolved, kind, videoQuality)
	if err != nil {
		return nil, fmt.Errorf("failed to queue download: %w", err)
	}
	log.Printf("User %d queued %s download %d from %s", user.ID, kind, d.ID, tag)
	return d, nil
}

// Get returns one of the caller's downloads. A download owned by someone
// else comes back as store.ErrDownloadNotFound, same as a missing one.
func (s *Service) Get(user *models.User, id int64) (*models.Download, error) {
	return s.st.GetDownloadForUser(id, user.ID)
}

// List returns a page of the caller's downloads, newest first, and the
// total row count.
func (s *Service) List(user *models.User, page, perPage int) ([]*models.Download, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return s.st.ListDownloads(user.ID, page, perPage)
}

// Cancel moves an active download to cancelled. The worker notices the
// new status on its next progress event and abandons the transfer; rows
// in any other state cannot be cancelled.
func (s *Service) Cancel(user *models.User, id int64) error {
	d, err := s.st.GetDownloadForUser(id, user.ID)
	if err != nil {
		return err
	}
	cancelled, err := s.st.CancelDownload(id, user.ID)
	if err != nil {
		return err
	}
	if !cancelled {
		return ErrNotCancellable
	}
	sendProgressUpdate(s.app, d, models.StatusCancelled, d.Progress, "Download cancelled by user", true)
	return nil
}

// Retry puts a failed download back in the queue for a fresh attempt.
func (s *Service) Retry(user *models.User, id int64) error {
	d, err := s.st.GetDownloadForUser(id, user.ID)
	if err != nil {
		return err
	}
	requeued, err := s.st.RequeueDownload(id, user.ID)
	if err != nil {
		return err
	}
	if !requeued {
		return ErrNotRetryable
	}
	sendProgressUpdate(s.app, d, models.StatusQueued, 0, "Download queued for retry", false)
	return nil
}

// Delete removes a download row along with any files it produced.
// Deleting an active download implicitly cancels it: the worker treats a
// vanished row as a cancellation.
func (s *Service) Delete(user *models.User, id int64) error {
	d, err := s.st.GetDownloadForUser(id, user.ID)
	if err != nil {
		return err
	}
	if err := s.st.DeleteDownload(id, user.ID); err != nil {
		return err
	}
	if d.FilePath != nil {
		removeFile(*d.FilePath)
	}
	if d.ThumbPath != nil {
		removeFile(*d.ThumbPath)
	}
	return nil
}

// ClearHistory deletes all of the caller's finished downloads and their
// files. Queued and active rows are left for the worker pool.
func (s *Service) ClearHistory(user *models.User) error {
	paths, err := s.st.ClearDownloads(user.ID)
	if err != nil {
		return err
	}
	for _, p := range paths {
		removeFile(p)
	}
	return nil
}

func removeFile(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to remove download file %s: %v", path, err)
	}
}
