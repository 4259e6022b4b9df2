package jobs

import (
	"log"
	"os"
	"time"

	"github.com/saveloop/saveloop/internal/store"
)

// RegisterAll wires every maintenance task into the manager. Called once
// during application setup.
func RegisterAll(jm *JobManager) {
	jm.Register("subscription-expiry", expireSubscriptions)
	jm.Register("stalled-downloads", failStalledDownloads)
	jm.Register("file-retention", purgeExpiredFiles)
}

// expireSubscriptions flips active subscriptions whose expiry has passed to
// 'expired', dropping those users back to the free plan.
func expireSubscriptions(ctx JobContext) {
	st := store.New(ctx.DB())
	n, err := st.ExpireOverdueSubscriptions(time.Now())
	if err != nil {
		log.Printf("Subscription expiry sweep failed: %v", err)
		return
	}
	if n > 0 {
		log.Printf("Marked %d overdue subscriptions as expired", n)
	}
}

// failStalledDownloads marks downloads that have sat in 'downloading'
// beyond the stall timeout as failed. This catches workers that died
// without reporting back.
func failStalledDownloads(ctx JobContext) {
	timeout := time.Duration(ctx.Config().Downloads.StallTimeoutMinutes) * time.Minute
	if timeout <= 0 {
		return
	}
	st := store.New(ctx.DB())
	n, err := st.FailStalledDownloads(time.Now().Add(-timeout))
	if err != nil {
		log.Printf("Stalled download sweep failed: %v", err)
		return
	}
	if n > 0 {
		log.Printf("Marked %d stalled downloads as failed", n)
	}
}

// purgeExpiredFiles deletes downloaded files older than the retention
// window and detaches them from their rows. The rows stay so the history
// and quota accounting remain intact.
func purgeExpiredFiles(ctx JobContext) {
	retentionDays := ctx.Config().Downloads.RetentionDays
	if retentionDays <= 0 {
		return // retention disabled
	}

	st := store.New(ctx.DB())
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	expired, err := st.ListExpiredDownloadFiles(cutoff)
	if err != nil {
		log.Printf("File retention sweep failed: %v", err)
		return
	}

	removed := 0
	for _, d := range expired {
		if d.FilePath != nil && *d.FilePath != "" {
			if err := os.Remove(*d.FilePath); err != nil && !os.IsNotExist(err) {
				log.Printf("Failed to remove expired file %s: %v", *d.FilePath, err)
				continue
			}
		}
		if d.ThumbPath != nil && *d.ThumbPath != "" {
			if err := os.Remove(*d.ThumbPath); err != nil && !os.IsNotExist(err) {
				log.Printf("Failed to remove expired thumbnail %s: %v", *d.ThumbPath, err)
			}
		}
		if err := st.ClearDownloadFile(d.ID); err != nil {
			log.Printf("Failed to detach expired file from download %d: %v", d.ID, err)
			continue
		}
		removed++
	}
	if removed > 0 {
		log.Printf("File retention removed %d expired downloads from disk", removed)
	}
}
