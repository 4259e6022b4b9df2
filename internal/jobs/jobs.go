package jobs

import (
	"log"
	"time"

	"github.com/go-co-op/gocron"
)

// StartJobs starts the background job scheduler.
func StartJobs(app JobContext) {
	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()

	scheduleEvery(s, app, "subscription-expiry", 60)
	scheduleEvery(s, app, "stalled-downloads", 10)
	startRetentionJob(s, app)

	log.Println("Starting background job scheduler...")
	s.StartAsync()
}

func scheduleEvery(s *gocron.Scheduler, app JobContext, jobID string, intervalMinutes int) {
	log.Printf("Scheduling job: '%s' to run every %d minutes.", jobID, intervalMinutes)

	_, err := s.Every(intervalMinutes).Minutes().Do(func() {
		// Submit through the manager instead of running directly so
		// scheduled runs cannot collide with admin-triggered ones.
		if err := app.JobManager().RunJob(jobID, app); err != nil {
			log.Printf("Scheduled job '%s' could not start: %v", jobID, err)
		}
	})
	if err != nil {
		log.Printf("Error scheduling '%s' job: %v", jobID, err)
	}
}

func startRetentionJob(s *gocron.Scheduler, app JobContext) {
	if app.Config().Downloads.RetentionDays <= 0 {
		log.Println("File retention is disabled (retention_days is 0), job not scheduled.")
		return
	}

	jobID := "file-retention"
	log.Printf("Scheduling job: '%s' to run daily.", jobID)

	_, err := s.Every(1).Day().At("04:30").Do(func() {
		if err := app.JobManager().RunJob(jobID, app); err != nil {
			log.Printf("Scheduled job '%s' could not start: %v", jobID, err)
		}
	})
	if err != nil {
		log.Printf("Error scheduling '%s' job: %v", jobID, err)
	}
}
