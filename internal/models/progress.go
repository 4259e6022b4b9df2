package models

// ProgressUpdate is the payload pushed over the websocket hub, covering
// both per-download progress and maintenance-job announcements. Exactly
// one of DownloadID or JobID is set.
type ProgressUpdate struct {
	DownloadID int64  `json:"download_id,omitempty"`
	UserID     int64  `json:"user_id,omitempty"`
	JobID      string `json:"job_id,omitempty"`
	Status     string `json:"status"`
	Progress   int    `json:"progress"`
	Message    string `json:"message,omitempty"`
	Done       bool   `json:"done"`
}
