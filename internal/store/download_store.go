package store

import (
	"database/sql"
	"errors"
	"time"

	"github.com/saveloop/saveloop/internal/models"
)

var ErrDownloadNotFound = errors.New("download not found")

// downloadColumns is the canonical column order for downloads queries.
// Every SELECT and RETURNING below must list columns in this order so
// scanDownload can be shared.
const downloadColumns = `id, user_id, url, platform, quality, content_type, video_quality, status, progress, file_path, thumb_path, title, error_message, size, created_at, started_at, completed_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDownload(row rowScanner) (*models.Download, error) {
	var d models.Download
	var videoQuality, filePath, thumbPath, title, errMsg sql.NullString
	var size sql.NullInt64
	var startedAt, completedAt sql.NullTime
	err := row.Scan(
		&d.ID, &d.UserID, &d.URL, &d.Platform, &d.Quality, &d.ContentType,
		&videoQuality, &d.Status, &d.Progress, &filePath, &thumbPath,
		&title, &errMsg, &size, &d.CreatedAt, &startedAt, &completedAt,
	)
	if err != nil {
		return nil, err
	}
	if videoQuality.Valid {
		d.VideoQuality = &videoQuality.String
	}
	if filePath.Valid {
		d.FilePath = &filePath.String
	}
	if thumbPath.Valid {
		d.ThumbPath = &thumbPath.String
	}
	if title.Valid {
		d.Title = &title.String
	}
	if errMsg.Valid {
		d.ErrorMessage = &errMsg.String
	}
	if size.Valid {
		d.Size = &size.Int64
	}
	if startedAt.Valid {
		d.StartedAt = &startedAt.Time
	}
	if completedAt.Valid {
		d.CompletedAt = &completedAt.Time
	}
	return &d, nil
}

// CreateDownload inserts a new queued download row. Admission checks happen
// before this call; a row only ever exists for an admitted request.
func (s *Store) CreateDownload(userID int64, url, platform, quality string, contentType models.ContentType, videoQuality *string) (*models.Download, error) {
	now := time.Now()
	query := `
        INSERT INTO downloads (user_id, url, platform, quality, content_type, video_quality, status, progress, created_at)
        VALUES (?, ?, ?, ?, ?, ?, 'queued', 0, ?)
    `
	res, err := s.db.Exec(query, userID, url, platform, quality, string(contentType), videoQuality, now)
	if err != nil {
		return nil, err
	}
	id, _ := res.LastInsertId()
	return &models.Download{
		ID:           id,
		UserID:       userID,
		URL:          url,
		Platform:     platform,
		Quality:      quality,
		ContentType:  contentType,
		VideoQuality: videoQuality,
		Status:       models.StatusQueued,
		CreatedAt:    now,
	}, nil
}

// GetDownload retrieves a single download by its primary key.
func (s *Store) GetDownload(id int64) (*models.Download, error) {
	row := s.db.QueryRow("SELECT "+downloadColumns+" FROM downloads WHERE id = ?", id)
	d, err := scanDownload(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDownloadNotFound
	}
	return d, err
}

// GetDownloadForUser retrieves a download only if it belongs to the given
// user. Rows owned by other users are indistinguishable from missing ones.
func (s *Store) GetDownloadForUser(id, userID int64) (*models.Download, error) {
	row := s.db.QueryRow("SELECT "+downloadColumns+" FROM downloads WHERE id = ? AND user_id = ?", id, userID)
	d, err := scanDownload(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDownloadNotFound
	}
	return d, err
}

// GetDownloadStatus reads just the status column. The worker polls this on
// every progress event to honour external cancellation, so it must stay a
// single-value read.
func (s *Store) GetDownloadStatus(id int64) (string, error) {
	var status string
	err := s.db.QueryRow("SELECT status FROM downloads WHERE id = ?", id).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrDownloadNotFound
	}
	return status, err
}

// ListDownloads returns a page of the user's downloads, newest first, plus
// the total row count for pagination headers.
func (s *Store) ListDownloads(userID int64, page, perPage int) ([]*models.Download, int, error) {
	var total int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM downloads WHERE user_id = ?", userID).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * perPage
	query := "SELECT " + downloadColumns + " FROM downloads WHERE user_id = ? ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?"
	rows, err := s.db.Query(query, userID, perPage, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var downloads []*models.Download
	for rows.Next() {
		d, err := scanDownload(rows)
		if err != nil {
			return nil, 0, err
		}
		downloads = append(downloads, d)
	}
	return downloads, total, rows.Err()
}

// ListAllDownloads returns a page over every user's downloads, newest first.
// Admin use only.
func (s *Store) ListAllDownloads(page, perPage int) ([]*models.Download, int, error) {
	var total int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM downloads").Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * perPage
	query := "SELECT " + downloadColumns + " FROM downloads ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?"
	rows, err := s.db.Query(query, perPage, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var downloads []*models.Download
	for rows.Next() {
		d, err := scanDownload(rows)
		if err != nil {
			return nil, 0, err
		}
		downloads = append(downloads, d)
	}
	return downloads, total, rows.Err()
}

// ClaimQueuedDownloads atomically flips up to limit queued rows to
// 'downloading', stamping started_at, and returns the claimed rows. The
// single UPDATE ... RETURNING statement guarantees each row is handed to
// exactly one worker even with several pollers racing.
func (s *Store) ClaimQueuedDownloads(limit int) ([]*models.Download, error) {
	query := `
        UPDATE downloads SET status = 'downloading', started_at = ?
        WHERE id IN (SELECT id FROM downloads WHERE status = 'queued' ORDER BY created_at ASC, id ASC LIMIT ?)
        RETURNING ` + downloadColumns
	rows, err := s.db.Query(query, time.Now(), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var claimed []*models.Download
	for rows.Next() {
		d, err := scanDownload(rows)
		if err != nil {
			return nil, err
		}
		claimed = append(claimed, d)
	}
	return claimed, rows.Err()
}

// UpdateDownloadProgress writes a progress percentage for an active
// download. MAX keeps progress monotonic even if events arrive out of
// order, and the status guard stops a late event from touching a row that
// was cancelled meanwhile.
func (s *Store) UpdateDownloadProgress(id int64, progress int) error {
	if progress < 0 {
		progress = 0
	} else if progress > 100 {
		progress = 100
	}
	query := "UPDATE downloads SET progress = MAX(progress, ?) WHERE id = ? AND status = 'downloading'"
	_, err := s.db.Exec(query, progress, id)
	return err
}

// CompleteDownload marks a download finished with its file metadata. The
// status guard means a download cancelled mid-flight stays cancelled; the
// return value reports whether the transition actually happened.
func (s *Store) CompleteDownload(id int64, filePath string, size int64, title, thumbPath *string) (bool, error) {
	query := `
        UPDATE downloads
        SET status = 'completed', progress = 100, file_path = ?, thumb_path = ?,
            title = COALESCE(?, title), size = ?, error_message = NULL, completed_at = ?
        WHERE id = ? AND status = 'downloading'
    `
	res, err := s.db.Exec(query, filePath, thumbPath, title, size, time.Now(), id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

// FailDownload marks a download failed with a user-facing message. Same
// cancellation guard as CompleteDownload.
func (s *Store) FailDownload(id int64, message string) (bool, error) {
	query := "UPDATE downloads SET status = 'failed', error_message = ? WHERE id = ? AND status = 'downloading'"
	res, err := s.db.Exec(query, message, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

// CancelDownload moves an in-progress download to 'cancelled'. Only
// 'downloading' rows qualify; the worker notices the new status on its next
// progress event and abandons the job.
func (s *Store) CancelDownload(id, userID int64) (bool, error) {
	query := "UPDATE downloads SET status = 'cancelled' WHERE id = ? AND user_id = ? AND status = 'downloading'"
	res, err := s.db.Exec(query, id, userID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

// RequeueDownload puts a failed download back in the queue for a fresh
// attempt, clearing the previous attempt's progress and error.
func (s *Store) RequeueDownload(id, userID int64) (bool, error) {
	query := `
        UPDATE downloads
        SET status = 'queued', progress = 0, error_message = NULL,
            file_path = NULL, thumb_path = NULL, started_at = NULL, completed_at = NULL
        WHERE id = ? AND user_id = ? AND status = 'failed'
    `
	res, err := s.db.Exec(query, id, userID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

// DeleteDownload removes a single download row owned by the user.
func (s *Store) DeleteDownload(id, userID int64) error {
	res, err := s.db.Exec("DELETE FROM downloads WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrDownloadNotFound
	}
	return nil
}

// ClearDownloads deletes all of the user's finished downloads and returns
// the file paths that were attached to them so the caller can remove the
// files. Active rows (queued or downloading) are left alone.
func (s *Store) ClearDownloads(userID int64) ([]string, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	rows, err := tx.Query(`
        SELECT file_path, thumb_path FROM downloads
        WHERE user_id = ? AND status IN ('completed', 'failed', 'cancelled')
    `, userID)
	if err != nil {
		return nil, err
	}

	var paths []string
	for rows.Next() {
		var filePath, thumbPath sql.NullString
		if err := rows.Scan(&filePath, &thumbPath); err != nil {
			rows.Close()
			return nil, err
		}
		if filePath.Valid && filePath.String != "" {
			paths = append(paths, filePath.String)
		}
		if thumbPath.Valid && thumbPath.String != "" {
			paths = append(paths, thumbPath.String)
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	_, err = tx.Exec("DELETE FROM downloads WHERE user_id = ? AND status IN ('completed', 'failed', 'cancelled')", userID)
	if err != nil {
		return nil, err
	}
	return paths, tx.Commit()
}

// CountDownloadsSince counts the user's downloads of one content type
// created at or after the given instant. Every status counts: a failed or
// cancelled attempt still consumed a quota slot.
func (s *Store) CountDownloadsSince(userID int64, contentType models.ContentType, since time.Time) (int, error) {
	var count int
	query := "SELECT COUNT(*) FROM downloads WHERE user_id = ? AND content_type = ? AND created_at >= ?"
	err := s.db.QueryRow(query, userID, string(contentType), since).Scan(&count)
	return count, err
}

// SumCompletedBytesSince totals the stored sizes of the user's completed
// downloads created at or after the given instant.
func (s *Store) SumCompletedBytesSince(userID int64, since time.Time) (int64, error) {
	var total int64
	query := "SELECT COALESCE(SUM(size), 0) FROM downloads WHERE user_id = ? AND status = 'completed' AND created_at >= ?"
	err := s.db.QueryRow(query, userID, since).Scan(&total)
	return total, err
}

// ResetStuckDownloads re-queues rows left in 'downloading' by an unclean
// shutdown. Called once at startup before the workers begin polling.
func (s *Store) ResetStuckDownloads() (int64, error) {
	query := "UPDATE downloads SET status = 'queued', progress = 0, started_at = NULL WHERE status = 'downloading'"
	res, err := s.db.Exec(query)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// FailStalledDownloads marks rows that have been 'downloading' since before
// the cutoff as failed. Safety net for workers that died mid-download.
func (s *Store) FailStalledDownloads(cutoff time.Time) (int64, error) {
	query := `
        UPDATE downloads SET status = 'failed', error_message = 'Download stalled and was marked as failed'
        WHERE status = 'downloading' AND started_at IS NOT NULL AND started_at < ?
    `
	res, err := s.db.Exec(query, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// ListExpiredDownloadFiles returns completed downloads whose files are older
// than the retention cutoff and still present on disk as far as the
// database knows.
func (s *Store) ListExpiredDownloadFiles(cutoff time.Time) ([]*models.Download, error) {
	query := "SELECT " + downloadColumns + " FROM downloads WHERE status = 'completed' AND file_path IS NOT NULL AND completed_at < ?"
	rows, err := s.db.Query(query, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var downloads []*models.Download
	for rows.Next() {
		d, err := scanDownload(rows)
		if err != nil {
			return nil, err
		}
		downloads = append(downloads, d)
	}
	return downloads, rows.Err()
}

// ClearDownloadFile detaches the stored file paths from a download after
// the retention job removed the files. The row itself stays for history.
func (s *Store) ClearDownloadFile(id int64) error {
	_, err := s.db.Exec("UPDATE downloads SET file_path = NULL, thumb_path = NULL WHERE id = ?", id)
	return err
}

// CountDownloadsByStatus returns row counts grouped by status for the admin
// stats endpoint.
func (s *Store) CountDownloadsByStatus() (map[string]int, error) {
	rows, err := s.db.Query("SELECT status, COUNT(*) FROM downloads GROUP BY status")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

// TotalCompletedBytes sums the sizes of every completed download across all
// users, for the admin stats endpoint.
func (s *Store) TotalCompletedBytes() (int64, error) {
	var total int64
	err := s.db.QueryRow("SELECT COALESCE(SUM(size), 0) FROM downloads WHERE status = 'completed'").Scan(&total)
	return total, err
}
