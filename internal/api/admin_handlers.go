package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleGetVersion(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, map[string]string{"version": s.app.Version()})
}

func (s *Server) handleRunAdminJob(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")

	err := s.app.JobManager().RunJob(jobID, s.app)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			RespondWithError(w, http.StatusNotFound, "not_found", err.Error())
			return
		}
		// 409 Conflict if a job is already running
		RespondWithError(w, http.StatusConflict, "conflict", err.Error())
		return
	}

	RespondWithJSON(w, http.StatusAccepted, map[string]string{
		"message": "Job '" + jobID + "' started successfully.",
	})
}

func (s *Server) handleGetAdminJobsStatus(w http.ResponseWriter, r *http.Request) {
	statuses := s.app.JobManager().GetStatus()
	RespondWithJSON(w, http.StatusOK, statuses)
}

// handleGetAdminStats reports service-wide totals for the admin dashboard.
func (s *Server) handleGetAdminStats(w http.ResponseWriter, r *http.Request) {
	userCount, err := s.store.CountUsers()
	if err != nil {
		RespondWithError(w, http.StatusInternalServerError, "server_error", "Failed to gather user stats")
		return
	}
	statusCounts, err := s.store.CountDownloadsByStatus()
	if err != nil {
		RespondWithError(w, http.StatusInternalServerError, "server_error", "Failed to gather download stats")
		return
	}
	totalBytes, err := s.store.TotalCompletedBytes()
	if err != nil {
		RespondWithError(w, http.StatusInternalServerError, "server_error", "Failed to gather storage stats")
		return
	}
	planCounts, err := s.store.CountActiveSubscriptionsByPlan()
	if err != nil {
		RespondWithError(w, http.StatusInternalServerError, "server_error", "Failed to gather subscription stats")
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"users":           userCount,
		"downloads":       statusCounts,
		"completed_bytes": totalBytes,
		"subscriptions":   planCounts,
	})
}

// handleListAllDownloads pages through every user's downloads for the
// admin dashboard.
func (s *Server) handleListAllDownloads(w http.ResponseWriter, r *http.Request) {
	page, perPage := parsePagination(r)

	downloads, total, err := s.store.ListAllDownloads(page, perPage)
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
