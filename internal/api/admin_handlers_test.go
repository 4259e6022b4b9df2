package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/saveloop/saveloop/internal/jobs"
	"github.com/saveloop/saveloop/internal/models"
	"github.com/saveloop/saveloop/internal/testutil"
)

func TestHealthAndVersion(t *testing.T) {
	server, _ := testutil.SetupTestServer(t)
	router := server.Router()

	req, _ := http.NewRequest("GET", "/api/health", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Errorf("Expected health to return 200, got %d", rr.Code)
	}

	req, _ = http.NewRequest("GET", "/api/version", nil)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected version to return 200, got %d", rr.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("Could not unmarshal version body: %v", err)
	}
	if body["version"] != "test" {
		t.Errorf("Expected version 'test', got '%s'", body["version"])
	}
}

func TestAdminJobHandlers(t *testing.T) {
	server, _ := testutil.SetupTestServer(t)
	router := server.Router()
	adminCookie := testutil.GetAuthCookie(t, server, "jobadmin", "password", "admin")
	userCookie := testutil.GetAuthCookie(t, server, "jobuser", "password", "user")

	t.Run("Non-Admin Is Forbidden", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/api/admin/jobs", nil)
		req.AddCookie(userCookie)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != http.StatusForbidden {
			t.Errorf("Expected status 403, got %d", rr.Code)
		}
	})

	t.Run("Status Lists The Registered Jobs", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/api/admin/jobs", nil)
		req.AddCookie(adminCookie)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", rr.Code)
		}

		var statuses []jobs.JobStatus
		if err := json.Unmarshal(rr.Body.Bytes(), &statuses); err != nil {
			t.Fatalf("Could not unmarshal response body: %v", err)
		}
		names := make(map[string]bool)
		for _, s := range statuses {
			names[s.Name] = true
		}
		for _, want := range []string{"subscription-expiry", "stalled-downloads", "file-retention"} {
			if !names[want] {
				t.Errorf("Expected job '%s' in the status list", want)
			}
		}
	})

	t.Run("Running An Unknown Job Fails", func(t *testing.T) {
		req, _ := http.NewRequest("POST", "/api/admin/jobs/bogus/run", nil)
		req.AddCookie(adminCookie)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", rr.Code)
		}
	})

	t.Run("Running A Job Is Accepted", func(t *testing.T) {
		req, _ := http.NewRequest("POST", "/api/admin/jobs/subscription-expiry/run", nil)
		req.AddCookie(adminCookie)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != http.StatusAccepted {
			t.Errorf("Expected status 202, got %d: %s", rr.Code, rr.Body.String())
		}
	})
}

func TestAdminListAllDownloads(t *testing.T) {
	server, _ := testutil.SetupTestServer(t)
	router := server.Router()
	adminCookie := testutil.GetAuthCookie(t, server, "downloadadmin", "password", "admin")
	testutil.GetAuthCookie(t, server, "alice", "password", "user")
	testutil.GetAuthCookie(t, server, "bob", "password", "user")

	st := server.Store()
	for _, username := range []string{"alice", "bob"} {
		user, err := st.GetUserByUsername(username)
		if err != nil {
			t.Fatalf("Failed to load user %s: %v", username, err)
		}
		if _, err := st.CreateDownload(user.ID, "https://youtube.com/watch/"+username, "youtube", "720p", models.ContentVideo, nil); err != nil {
			t.Fatalf("Failed to create download for %s: %v", username, err)
		}
	}

	req, _ := http.NewRequest("GET", "/api/admin/downloads?page=1&per_page=10", nil)
	req.AddCookie(adminCookie)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}

	var body struct {
		Downloads []models.Download `json:"downloads"`
		Total     int               `json:"total"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("Could not unmarshal response body: %v", err)
	}
	if body.Total != 2 {
		t.Errorf("Expected downloads of both users, got total %d", body.Total)
	}

	owners := make(map[int64]bool)
	for _, d := range body.Downloads {
		owners[d.UserID] = true
	}
	if len(owners) != 2 {
		t.Errorf("Expected downloads from 2 distinct users, got %d", len(owners))
	}
}

func TestAdminStats(t *testing.T) {
	server, _ := testutil.SetupTestServer(t)
	router := server.Router()
	adminCookie := testutil.GetAuthCookie(t, server, "statsadmin", "password", "admin")
	userCookie := testutil.GetAuthCookie(t, server, "statsuser", "password", "user")

	st := server.Store()
	user, err := st.GetUserByUsername("statsuser")
	if err != nil {
		t.Fatalf("Failed to load user: %v", err)
	}
	d, err := st.CreateDownload(user.ID, "https://youtube.com/watch?v=stats", "youtube", "720p", models.ContentVideo, nil)
	if err != nil {
		t.Fatalf("Failed to create download: %v", err)
	}
	if _, err := st.ClaimQueuedDownloads(1); err != nil {
		t.Fatalf("Failed to claim download: %v", err)
	}
	if _, err := st.CompleteDownload(d.ID, "/tmp/stats.mp4", 2048, nil, nil); err != nil {
		t.Fatalf("Failed to complete download: %v", err)
	}
	if _, err := st.CreateDownload(user.ID, "https://youtube.com/watch?v=stats2", "youtube", "720p", models.ContentVideo, nil); err != nil {
		t.Fatalf("Failed to create second download: %v", err)
	}
	if _, err := st.ActivateSubscription(user.ID, "pro", nil, nil); err != nil {
		t.Fatalf("Failed to activate subscription: %v", err)
	}

	t.Run("Non-Admin Is Forbidden", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/api/admin/stats", nil)
		req.AddCookie(userCookie)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != http.StatusForbidden {
			t.Errorf("Expected status 403, got %d", rr.Code)
		}
	})

	t.Run("Reports Totals", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/api/admin/stats", nil)
		req.AddCookie(adminCookie)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", rr.Code)
		}

		var body struct {
			Users          int            `json:"users"`
			Downloads      map[string]int `json:"downloads"`
			CompletedBytes int64          `json:"completed_bytes"`
			Subscriptions  map[string]int `json:"subscriptions"`
		}
		if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
			t.Fatalf("Could not unmarshal response body: %v", err)
		}
		if body.Users != 2 {
			t.Errorf("Expected 2 users, got %d", body.Users)
		}
		if body.Downloads["completed"] != 1 || body.Downloads["queued"] != 1 {
			t.Errorf("Unexpected status counts: %v", body.Downloads)
		}
		if body.CompletedBytes != 2048 {
			t.Errorf("Expected 2048 completed bytes, got %d", body.CompletedBytes)
		}
		if body.Subscriptions["pro"] != 1 {
			t.Errorf("Expected 1 active pro subscription, got %v", body.Subscriptions)
		}
	})
}
