package api

// Handlers for the download lifecycle: submit, poll, serve the finished
// file, and the cancel/retry/delete actions.

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/saveloop/saveloop/internal/billing"
	"github.com/saveloop/saveloop/internal/downloader"
	"github.com/saveloop/saveloop/internal/media"
	"github.com/saveloop/saveloop/internal/platform"
	"github.com/saveloop/saveloop/internal/store"
)

func (s *Server) handleSubmitDownload(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)
	var payload struct {
		URL     string `json:"url"`
		Quality string `json:"quality"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		RespondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request payload")
		return
	}

	d, err := s.downloads.Submit(r.Context(), user, payload.URL, payload.Quality)
	if err != nil {
		var quotaErr *billing.QuotaError
		switch {
		case errors.Is(err, downloader.ErrUnsupportedPlatform):
			RespondWithError(w, http.StatusUnprocessableEntity, "unsupported_platform", "This URL does not belong to a supported platform.")
		case errors.Is(err, downloader.ErrPlatformSuspended):
			RespondWithError(w, http.StatusServiceUnavailable, "platform_suspended", err.Error())
		case errors.As(err, &quotaErr):
			RespondWithError(w, http.StatusTooManyRequests, "quota_exceeded", quotaErr.Message)
		default:
			RespondWithError(w, http.StatusInternalServerError, "server_error", "Failed to queue download")
		}
		return
	}

	RespondWithJSON(w, http.StatusAccepted, map[string]interface{}{"download": d})
}

func (s *Server) handleListDownloads(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)
	page, perPage := parsePagination(r)

	downloads, total, err := s.downloads.List(user, page, perPage)
	if err != nil {
		RespondWithError(w, http.StatusInternalServerError, "server_error", "Failed to list downloads")
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"downloads": downloads,
		"total":     total,
		"page":      page,
		"per_page":  perPage,
	})
}

// handlePollStatus reads the download row directly so polling clients see
// worker progress without any cache in between.
func (s *Server) handlePollStatus(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)
	id, ok := parseDownloadID(w, r)
	if !ok {
		return
	}

	d, err := s.downloads.Get(user, id)
	if err != nil {
		RespondWithError(w, http.StatusNotFound, "not_found", "Download not found")
		return
	}

	// has_file means the path is recorded and the file still exists; a
	// retention sweep may have removed it since completion.
	hasFile := d.HasFile()
	if hasFile {
		if _, err := os.Stat(*d.FilePath); err != nil {
			hasFile = false
		}
	}

	RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"id":            d.ID,
		"status":        d.Status,
		"progress":      d.Progress,
		"has_file":      hasFile,
		"error_message": d.ErrorMessage,
	})
}

func (s *Server) handleServeFile(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)
	id, ok := parseDownloadID(w, r)
	if !ok {
		return
	}

	d, err := s.downloads.Get(user, id)
	if err != nil {
		RespondWithError(w, http.StatusNotFound, "not_found", "Download not found")
		return
	}
	if !d.HasFile() {
		RespondWithError(w, http.StatusNotFound, "not_found", "No file is available for this download")
		return
	}
	if _, err := os.Stat(*d.FilePath); err != nil {
		RespondWithError(w, http.StatusNotFound, "not_found", "The downloaded file is no longer on the server")
		return
	}

	name := filepath.Base(*d.FilePath)
	w.Header().Set("Content-Type", media.ContentTypeFor(name))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	http.ServeFile(w, r, *d.FilePath)
}

func (s *Server) handleServeThumbnail(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)
	id, ok := parseDownloadID(w, r)
	if !ok {
		return
	}

	d, err := s.downloads.Get(user, id)
	if err != nil {
		RespondWithError(w, http.StatusNotFound, "not_found", "Download not found")
		return
	}
	if d.ThumbPath == nil || *d.ThumbPath == "" {
		RespondWithError(w, http.StatusNotFound, "not_found", "No thumbnail for this download")
		return
	}
	if _, err := os.Stat(*d.ThumbPath); err != nil {
		RespondWithError(w, http.StatusNotFound, "not_found", "No thumbnail for this download")
		return
	}

	w.Header().Set("Content-Type", media.ContentTypeFor(*d.ThumbPath))
	http.ServeFile(w, r, *d.ThumbPath)
}

func (s *Server) handleCancelDownload(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)
	id, ok := parseDownloadID(w, r)
	if !ok {
		return
	}

	if err := s.downloads.Cancel(user, id); err != nil {
		respondDownloadActionError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Download cancelled"})
}

func (s *Server) handleRetryDownload(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)
	id, ok := parseDownloadID(w, r)
	if !ok {
		return
	}

	if err := s.downloads.Retry(user, id); err != nil {
		respondDownloadActionError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Download queued for retry"})
}

func (s *Server) handleDeleteDownload(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)
	id, ok := parseDownloadID(w, r)
	if !ok {
		return
	}

	if err := s.downloads.Delete(user, id); err != nil {
		respondDownloadActionError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleClearDownloads(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)
	if err := s.downloads.ClearHistory(user); err != nil {
		RespondWithError(w, http.StatusInternalServerError, "server_error", "Failed to clear download history")
		return
	}
	RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Download history cleared"})
}

func (s *Server) handleListPlatforms(w http.ResponseWriter, r *http.Request) {
	cfg := s.app.Config()
	type platformInfo struct {
		Tag       string `json:"tag"`
		Name      string `json:"name"`
		Suspended bool   `json:"suspended"`
	}
	out := make([]platformInfo, 0)
	for _, tag := range platform.All() {
		out = append(out, platformInfo{
			Tag:       string(tag),
			Name:      platform.Name(tag),
			Suspended: cfg.PlatformSuspended(string(tag)),
		})
	}
	RespondWithJSON(w, http.StatusOK, out)
}

// respondDownloadActionError maps the action errors shared by cancel,
// retry and delete onto the API taxonomy.
func respondDownloadActionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrDownloadNotFound):
		RespondWithError(w, http.StatusNotFound, "not_found", "Download not found")
	case errors.Is(err, downloader.ErrNotCancellable):
		RespondWithError(w, http.StatusConflict, "conflict", "Only an active download can be cancelled")
	case errors.Is(err, downloader.ErrNotRetryable):
		RespondWithError(w, http.StatusConflict, "conflict", "Only a failed download can be retried")
	default:
		RespondWithError(w, http.StatusInternalServerError, "server_error", "Failed to update download")
	}
}

func parseDownloadID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "downloadID"), 10, 64)
	if err != nil {
		RespondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid download ID")
		return 0, false
	}
	return id, true
}

// parsePagination reads page/per_page query parameters with the same
// defaults and caps the service applies.
func parsePagination(r *http.Request) (page, perPage int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	perPage, _ = strconv.Atoi(r.URL.Query().Get("per_page"))
	if perPage < 1 {
		perPage = 20
	}
	if perPage > 100 {
		perPage = 100
	}
	return page, perPage
}
