package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/saveloop/saveloop/internal/api"
	"github.com/saveloop/saveloop/internal/downloader"
	"github.com/saveloop/saveloop/internal/models"
	"github.com/saveloop/saveloop/internal/testutil"
)

// errorCode pulls the machine-readable code out of an error response body.
func errorCode(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("Could not unmarshal error body %q: %v", rr.Body.String(), err)
	}
	return body.Error.Code
}

func TestSubmitDownload(t *testing.T) {
	app := testutil.SetupTestApp(t)
	server := api.NewServer(app)
	router := server.Router()
	cookie := testutil.GetAuthCookie(t, server, "submitter", "password", "user")

	submit := func(cookie *http.Cookie, payload string) *httptest.ResponseRecorder {
		req, _ := http.NewRequest("POST", "/api/downloads", bytes.NewBufferString(payload))
		req.AddCookie(cookie)
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		return rr
	}

	var firstID int64
	t.Run("Requires Authentication", func(t *testing.T) {
		req, _ := http.NewRequest("POST", "/api/downloads", bytes.NewBufferString(`{"url":"https://youtube.com/watch/clip"}`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != http.StatusUnauthorized {
			t.Errorf("Expected status 401, got %d", rr.Code)
		}
	})

	t.Run("Accepts A Supported URL", func(t *testing.T) {
		rr := submit(cookie, `{"url":"https://youtube.com/watch/first-clip","quality":"720p"}`)
		if rr.Code != http.StatusAccepted {
			t.Fatalf("Expected status 202, got %d: %s", rr.Code, rr.Body.String())
		}

		var body struct {
			Download models.Download `json:"download"`
		}
		if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
			t.Fatalf("Could not unmarshal response body: %v", err)
		}
		if body.Download.ID == 0 {
			t.Error("Expected the queued download to have an ID")
		}
		if body.Download.Status != models.StatusQueued {
			t.Errorf("Expected status 'queued', got '%s'", body.Download.Status)
		}
		if body.Download.Platform != "youtube" {
			t.Errorf("Expected platform 'youtube', got '%s'", body.Download.Platform)
		}
		firstID = body.Download.ID
	})

	t.Run("Rejects An Unsupported URL", func(t *testing.T) {
		rr := submit(cookie, `{"url":"https://example.com/some/video"}`)
		if rr.Code != http.StatusUnprocessableEntity {
			t.Errorf("Expected status 422, got %d", rr.Code)
		}
		if code := errorCode(t, rr); code != "unsupported_platform" {
			t.Errorf("Expected error code 'unsupported_platform', got '%s'", code)
		}
	})

	t.Run("Rejects A Suspended Platform", func(t *testing.T) {
		app.Config().Downloads.SuspendedPlatforms = []string{"tiktok"}
		defer func() { app.Config().Downloads.SuspendedPlatforms = nil }()

		rr := submit(cookie, `{"url":"https://www.tiktok.com/@user/video/123"}`)
		if rr.Code != http.StatusServiceUnavailable {
			t.Errorf("Expected status 503, got %d", rr.Code)
		}
		if code := errorCode(t, rr); code != "platform_suspended" {
			t.Errorf("Expected error code 'platform_suspended', got '%s'", code)
		}
	})

	t.Run("Enforces The Daily Video Quota", func(t *testing.T) {
		// The free plan allows five videos per day and one is already in.
		for i := 0; i < 4; i++ {
			rr := submit(cookie, fmt.Sprintf(`{"url":"https://youtube.com/watch/filler-%d"}`, i))
			if rr.Code != http.StatusAccepted {
				t.Fatalf("Expected filler submit %d to be accepted, got %d: %s", i, rr.Code, rr.Body.String())
			}
		}

		rr := submit(cookie, `{"url":"https://youtube.com/watch/over-quota"}`)
		if rr.Code != http.StatusTooManyRequests {
			t.Errorf("Expected status 429, got %d", rr.Code)
		}
		if code := errorCode(t, rr); code != "quota_exceeded" {
			t.Errorf("Expected error code 'quota_exceeded', got '%s'", code)
		}
	})

	t.Run("Image Quota Is Separate", func(t *testing.T) {
		rr := submit(cookie, `{"url":"https://pinterest.com/pin/first-photo"}`)
		if rr.Code != http.StatusAccepted {
			t.Errorf("Expected image submit to be accepted after the video quota filled, got %d: %s", rr.Code, rr.Body.String())
		}
	})

	t.Run("Lists The Queued Downloads", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/api/downloads?page=1&per_page=4", nil)
		req.AddCookie(cookie)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", rr.Code)
		}

		var body struct {
			Downloads []models.Download `json:"downloads"`
			Total     int               `json:"total"`
			Page      int               `json:"page"`
			PerPage   int               `json:"per_page"`
		}
		if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
			t.Fatalf("Could not unmarshal response body: %v", err)
		}
		if body.Total != 6 {
			t.Errorf("Expected 6 downloads in total, got %d", body.Total)
		}
		if len(body.Downloads) != 4 {
			t.Errorf("Expected a page of 4 downloads, got %d", len(body.Downloads))
		}
		if body.Page != 1 || body.PerPage != 4 {
			t.Errorf("Expected page 1 per_page 4 echoed back, got %d/%d", body.Page, body.PerPage)
		}
	})

	t.Run("Polls The Row Directly", func(t *testing.T) {
		req, _ := http.NewRequest("GET", fmt.Sprintf("/api/downloads/%d/status", firstID), nil)
		req.AddCookie(cookie)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", rr.Code)
		}

		var body map[string]interface{}
		if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
			t.Fatalf("Could not unmarshal response body: %v", err)
		}
		if body["status"] != "queued" {
			t.Errorf("Expected status 'queued', got '%v'", body["status"])
		}
		if body["has_file"] != false {
			t.Errorf("Expected has_file false for a queued download, got %v", body["has_file"])
		}
	})

	t.Run("File Of An Unfinished Download Is Not Found", func(t *testing.T) {
		req, _ := http.NewRequest("GET", fmt.Sprintf("/api/downloads/%d/file", firstID), nil)
		req.AddCookie(cookie)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", rr.Code)
		}
	})

	t.Run("Cancel Of A Queued Download Conflicts", func(t *testing.T) {
		req, _ := http.NewRequest("POST", fmt.Sprintf("/api/downloads/%d/cancel", firstID), nil)
		req.AddCookie(cookie)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != http.StatusConflict {
			t.Errorf("Expected status 409, got %d", rr.Code)
		}
		if code := errorCode(t, rr); code != "conflict" {
			t.Errorf("Expected error code 'conflict', got '%s'", code)
		}
	})

	t.Run("Retry Of A Queued Download Conflicts", func(t *testing.T) {
		req, _ := http.NewRequest("POST", fmt.Sprintf("/api/downloads/%d/retry", firstID), nil)
		req.AddCookie(cookie)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != http.StatusConflict {
			t.Errorf("Expected status 409, got %d", rr.Code)
		}
	})

	t.Run("Other Users Cannot See The Download", func(t *testing.T) {
		peeker := testutil.GetAuthCookie(t, server, "peeker", "password", "user")

		paths := []struct {
			method string
			path   string
		}{
			{"GET", fmt.Sprintf("/api/downloads/%d/status", firstID)},
			{"GET", fmt.Sprintf("/api/downloads/%d/file", firstID)},
			{"POST", fmt.Sprintf("/api/downloads/%d/cancel", firstID)},
			{"DELETE", fmt.Sprintf("/api/downloads/%d", firstID)},
		}
		for _, p := range paths {
			req, _ := http.NewRequest(p.method, p.path, nil)
			req.AddCookie(peeker)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			if rr.Code != http.StatusNotFound {
				t.Errorf("%s %s: expected status 404 for a foreign download, got %d", p.method, p.path, rr.Code)
			}
		}
	})

	t.Run("Delete Removes A Queued Download", func(t *testing.T) {
		req, _ := http.NewRequest("DELETE", fmt.Sprintf("/api/downloads/%d", firstID), nil)
		req.AddCookie(cookie)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != http.StatusNoContent {
			t.Errorf("Expected status 204, got %d", rr.Code)
		}

		req, _ = http.NewRequest("GET", fmt.Sprintf("/api/downloads/%d/status", firstID), nil)
		req.AddCookie(cookie)
		rr = httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != http.StatusNotFound {
			t.Errorf("Expected deleted download to poll as 404, got %d", rr.Code)
		}
	})
}

func TestSubmitRateLimit(t *testing.T) {
	app := testutil.SetupTestApp(t)
	app.Config().RateLimit.PerMinute = 2
	server := api.NewServer(app)
	router := server.Router()
	cookie := testutil.GetAuthCookie(t, server, "hasty", "password", "user")

	submit := func(url string) *httptest.ResponseRecorder {
		payload := fmt.Sprintf(`{"url":"%s"}`, url)
		req, _ := http.NewRequest("POST", "/api/downloads", bytes.NewBufferString(payload))
		req.AddCookie(cookie)
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		return rr
	}

	for i := 0; i < 2; i++ {
		if rr := submit(fmt.Sprintf("https://youtube.com/watch/burst-%d", i)); rr.Code != http.StatusAccepted {
			t.Fatalf("Expected submit %d to pass the limiter, got %d: %s", i, rr.Code, rr.Body.String())
		}
	}

	rr := submit("https://youtube.com/watch/burst-2")
	if rr.Code != http.StatusTooManyRequests {
		t.Errorf("Expected status 429 once the window filled, got %d", rr.Code)
	}
	if code := errorCode(t, rr); code != "rate_limited" {
		t.Errorf("Expected error code 'rate_limited', got '%s'", code)
	}

	// The limiter only guards submission; reads stay unthrottled.
	req, _ := http.NewRequest("GET", "/api/downloads", nil)
	req.AddCookie(cookie)
	lr := httptest.NewRecorder()
	router.ServeHTTP(lr, req)
	if lr.Code != http.StatusOK {
		t.Errorf("Expected list to bypass the limiter, got %d", lr.Code)
	}
}

// TestDownloadLifecycleOverAPI drives submit, poll, file serving and the
// terminal-state actions through the HTTP surface with a worker running.
// It starts the pool exactly once; the queue channel is package state.
func TestDownloadLifecycleOverAPI(t *testing.T) {
	app := testutil.SetupTestApp(t)
	server := api.NewServer(app)
	router := server.Router()
	cookie := testutil.GetAuthCookie(t, server, "lifecycle", "password", "user")

	downloader.StartWorkerPool(app, 1)

	submit := func(t *testing.T, url, quality string) int64 {
		t.Helper()
		payload := fmt.Sprintf(`{"url":"%s","quality":"%s"}`, url, quality)
		req, _ := http.NewRequest("POST", "/api/downloads", bytes.NewBufferString(payload))
		req.AddCookie(cookie)
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != http.StatusAccepted {
			t.Fatalf("Submit of %s returned %d: %s", url, rr.Code, rr.Body.String())
		}
		var body struct {
			Download models.Download `json:"download"`
		}
		if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
			t.Fatalf("Could not unmarshal submit response: %v", err)
		}
		return body.Download.ID
	}

	pollUntil := func(t *testing.T, id int64, want string) map[string]interface{} {
		t.Helper()
		deadline := time.Now().Add(20 * time.Second)
		for time.Now().Before(deadline) {
			req, _ := http.NewRequest("GET", fmt.Sprintf("/api/downloads/%d/status", id), nil)
			req.AddCookie(cookie)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			if rr.Code != http.StatusOK {
				t.Fatalf("Status poll returned %d: %s", rr.Code, rr.Body.String())
			}
			var body map[string]interface{}
			if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
				t.Fatalf("Could not unmarshal status body: %v", err)
			}
			if body["status"] == want {
				return body
			}
			time.Sleep(50 * time.Millisecond)
		}
		t.Fatalf("Download %d never reached status %s", id, want)
		return nil
	}

	var videoID int64
	t.Run("Video Completes And Serves The File", func(t *testing.T) {
		videoID = submit(t, "https://youtube.com/watch/ocean-waves", "720p")

		status := pollUntil(t, videoID, models.StatusCompleted)
		if status["has_file"] != true {
			t.Error("Expected has_file true after completion")
		}
		if status["progress"] != float64(100) {
			t.Errorf("Expected progress 100, got %v", status["progress"])
		}

		req, _ := http.NewRequest("GET", fmt.Sprintf("/api/downloads/%d/file", videoID), nil)
		req.AddCookie(cookie)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("Expected file download to return 200, got %d: %s", rr.Code, rr.Body.String())
		}
		if ct := rr.Header().Get("Content-Type"); ct != "video/mp4" {
			t.Errorf("Expected Content-Type video/mp4, got %s", ct)
		}
		disposition := rr.Header().Get("Content-Disposition")
		if !bytes.Contains([]byte(disposition), []byte("attachment")) {
			t.Errorf("Expected an attachment disposition, got %q", disposition)
		}
		if rr.Body.Len() == 0 {
			t.Error("Expected a non-empty file body")
		}
	})

	t.Run("Image Gets A Thumbnail", func(t *testing.T) {
		id := submit(t, "https://pinterest.com/pin/lake-view", "")
		pollUntil(t, id, models.StatusCompleted)

		req, _ := http.NewRequest("GET", fmt.Sprintf("/api/downloads/%d/thumbnail", id), nil)
		req.AddCookie(cookie)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("Expected thumbnail to return 200, got %d: %s", rr.Code, rr.Body.String())
		}
		if ct := rr.Header().Get("Content-Type"); ct != "image/jpeg" {
			t.Errorf("Expected Content-Type image/jpeg, got %s", ct)
		}

		// The video never had a thumbnail.
		req, _ = http.NewRequest("GET", fmt.Sprintf("/api/downloads/%d/thumbnail", videoID), nil)
		req.AddCookie(cookie)
		rr = httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != http.StatusNotFound {
			t.Errorf("Expected 404 for a video thumbnail, got %d", rr.Code)
		}
	})

	var failedID int64
	t.Run("Failure Surfaces The Normalized Message", func(t *testing.T) {
		failedID = submit(t, "https://youtube.com/watch/fail-case", "")

		status := pollUntil(t, failedID, models.StatusFailed)
		if msg, _ := status["error_message"].(string); msg != "This content is unavailable. It may have been removed." {
			t.Errorf("Unexpected error message: %q", msg)
		}
		if status["has_file"] != false {
			t.Error("Expected has_file false for a failed download")
		}
	})

	t.Run("Retry Runs The Download Again", func(t *testing.T) {
		req, _ := http.NewRequest("POST", fmt.Sprintf("/api/downloads/%d/retry", failedID), nil)
		req.AddCookie(cookie)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("Expected retry to return 200, got %d: %s", rr.Code, rr.Body.String())
		}

		// The scripted URL fails every time, so the retry ends failed too.
		pollUntil(t, failedID, models.StatusFailed)
	})

	t.Run("Cancel Stops A Running Download", func(t *testing.T) {
		id := submit(t, "https://youtube.com/watch/slow-stream", "")

		// Wait for a worker to pick it up before cancelling.
		deadline := time.Now().Add(20 * time.Second)
		for time.Now().Before(deadline) {
			d, err := server.Store().GetDownload(id)
			if err != nil {
				t.Fatalf("Failed to read download: %v", err)
			}
			if d.Status == models.StatusDownloading && d.Progress > 0 {
				break
			}
			time.Sleep(20 * time.Millisecond)
		}

		req, _ := http.NewRequest("POST", fmt.Sprintf("/api/downloads/%d/cancel", id), nil)
		req.AddCookie(cookie)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("Expected cancel to return 200, got %d: %s", rr.Code, rr.Body.String())
		}

		status := pollUntil(t, id, models.StatusCancelled)
		if status["has_file"] != false {
			t.Error("Expected no file for a cancelled download")
		}
	})

	t.Run("Terminal Rows Reject Cancel And Retry", func(t *testing.T) {
		req, _ := http.NewRequest("POST", fmt.Sprintf("/api/downloads/%d/cancel", videoID), nil)
		req.AddCookie(cookie)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != http.StatusConflict {
			t.Errorf("Expected cancel of a completed download to return 409, got %d", rr.Code)
		}

		req, _ = http.NewRequest("POST", fmt.Sprintf("/api/downloads/%d/retry", videoID), nil)
		req.AddCookie(cookie)
		rr = httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != http.StatusConflict {
			t.Errorf("Expected retry of a completed download to return 409, got %d", rr.Code)
		}
	})

	t.Run("Delete Removes The Row And The File", func(t *testing.T) {
		d, err := server.Store().GetDownload(videoID)
		if err != nil {
			t.Fatalf("Failed to read download: %v", err)
		}
		if d.FilePath == nil {
			t.Fatal("Expected the completed video to have a file path")
		}
		filePath := *d.FilePath

		req, _ := http.NewRequest("DELETE", fmt.Sprintf("/api/downloads/%d", videoID), nil)
		req.AddCookie(cookie)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != http.StatusNoContent {
			t.Fatalf("Expected delete to return 204, got %d", rr.Code)
		}

		if _, err := os.Stat(filePath); !os.IsNotExist(err) {
			t.Errorf("Expected the file to be removed from disk, stat err: %v", err)
		}
	})

	t.Run("Clear History Empties The List", func(t *testing.T) {
		req, _ := http.NewRequest("DELETE", "/api/downloads", nil)
		req.AddCookie(cookie)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("Expected clear to return 200, got %d", rr.Code)
		}

		req, _ = http.NewRequest("GET", "/api/downloads", nil)
		req.AddCookie(cookie)
		rr = httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		var body struct {
			Total int `json:"total"`
		}
		if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
			t.Fatalf("Could not unmarshal list body: %v", err)
		}
		if body.Total != 0 {
			t.Errorf("Expected an empty history after clearing, got %d rows", body.Total)
		}
	})
}

func TestListPlatforms(t *testing.T) {
	app := testutil.SetupTestApp(t)
	app.Config().Downloads.SuspendedPlatforms = []string{"facebook"}
	server := api.NewServer(app)
	router := server.Router()
	cookie := testutil.GetAuthCookie(t, server, "browser", "password", "user")

	req, _ := http.NewRequest("GET", "/api/platforms", nil)
	req.AddCookie(cookie)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}

	var platforms []struct {
		Tag       string `json:"tag"`
		Name      string `json:"name"`
		Suspended bool   `json:"suspended"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &platforms); err != nil {
		t.Fatalf("Could not unmarshal response body: %v", err)
	}
	if len(platforms) != 9 {
		t.Fatalf("Expected 9 platforms, got %d", len(platforms))
	}
	if platforms[0].Tag != "youtube" {
		t.Errorf("Expected youtube first, got '%s'", platforms[0].Tag)
	}

	suspended := make(map[string]bool)
	for _, p := range platforms {
		suspended[p.Tag] = p.Suspended
	}
	if !suspended["facebook"] {
		t.Error("Expected facebook to be reported as suspended")
	}
	if suspended["youtube"] {
		t.Error("Expected youtube to be reported as available")
	}

	// The listing needs a session like every other download route.
	req, _ = http.NewRequest("GET", "/api/platforms", nil)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 without a session, got %d", rr.Code)
	}
}
