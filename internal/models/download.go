package models

import "time"

// ContentType classifies what a download produces, for quota accounting.
type ContentType string

const (
	ContentVideo ContentType = "video"
	ContentImage ContentType = "image"
)

// Download statuses. Transitions move forward only:
// queued -> downloading -> completed | failed | cancelled.
// A failed download may be re-queued by an explicit user retry.
const (
	StatusQueued      = "queued"
	StatusDownloading = "downloading"
	StatusCompleted   = "completed"
	StatusFailed      = "failed"
	StatusCancelled   = "cancelled"
)

// Download is one media download request and its lifecycle record.
type Download struct {
	ID           int64       `json:"id"`
	UserID       int64       `json:"user_id"`
	URL          string      `json:"url"`
	Platform     string      `json:"platform"`
	Quality      string      `json:"quality"`
	ContentType  ContentType `json:"content_type"`
	VideoQuality *string     `json:"video_quality,omitempty"` // nil for images
	Status       string      `json:"status"`
	Progress     int         `json:"progress"` // percentage, 0-100
	FilePath     *string     `json:"-"`        // server-side path, never exposed raw
	ThumbPath    *string     `json:"-"`
	Title        *string     `json:"title,omitempty"`
	ErrorMessage *string     `json:"error_message,omitempty"`
	Size         *int64      `json:"size,omitempty"` // bytes, set on completion
	CreatedAt    time.Time   `json:"created_at"`
	StartedAt    *time.Time  `json:"started_at,omitempty"`
	CompletedAt  *time.Time  `json:"completed_at,omitempty"`
}

// HasFile reports whether a completed file path has been recorded.
// Handlers additionally verify the file still exists on disk.
func (d *Download) HasFile() bool {
	return d.Status == StatusCompleted && d.FilePath != nil && *d.FilePath != ""
}

// IsTerminal reports whether the download reached a final state.
func (d *Download) IsTerminal() bool {
	switch d.Status {
	case StatusCompleted, StatusFailed, StatusCancelled:
		return true
	}
	return false
}
