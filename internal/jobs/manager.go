package jobs

import (
	"database/sql"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/saveloop/saveloop/internal/config"
	"github.com/saveloop/saveloop/internal/models"
	"github.com/saveloop/saveloop/internal/websocket"
)

// JobContext provides the dependencies a maintenance job needs to run.
// The core.App struct implements this interface.
type JobContext interface {
	DB() *sql.DB
	Config() *config.Config
	WsHub() *websocket.Hub
	JobManager() *JobManager
}

type jobTask func(ctx JobContext)

type JobStatus struct {
	Name      string    `json:"name"`
	Status    string    `json:"status"` // "idle", "running", "success", "failed"
	Message   string    `json:"message"`
	StartTime time.Time `json:"start_time,omitempty"`
	EndTime   time.Time `json:"end_time,omitempty"`
}

// JobManager tracks the registered maintenance jobs and runs one at a time.
type JobManager struct {
	mu      sync.Mutex
	jobs    map[string]jobTask
	status  map[string]*JobStatus
	running bool
}

func NewManager() *JobManager {
	return &JobManager{
		jobs:   make(map[string]jobTask),
		status: make(map[string]*JobStatus),
	}
}

func (jm *JobManager) Register(name string, task jobTask) {
	jm.mu.Lock()
	defer jm.mu.Unlock()
	jm.jobs[name] = task
	jm.status[name] = &JobStatus{Name: name, Status: "idle"}
}

// RunJob starts the named job in the background. Only one job runs at a
// time; a second call while one is active returns an error instead of
// queueing.
func (jm *JobManager) RunJob(name string, ctx JobContext) error {
	jm.mu.Lock()
	if jm.running {
		jm.mu.Unlock()
		return fmt.Errorf("a job is already running")
	}

	task, ok := jm.jobs[name]
	if !ok {
		jm.mu.Unlock()
		return fmt.Errorf("job '%s' not found", name)
	}

	jm.running = true
	status := jm.status[name]
	status.Status = "running"
	status.StartTime = time.Now()
	status.Message = "Job started..."
	jm.mu.Unlock()

	log.Printf("Starting job: %s", name)
	broadcastStatus(ctx, status)
	go func() {
		defer func() {
			// Always release the manager and settle the status, even if
			// the task panicked.
			if r := recover(); r != nil {
				log.Printf("Job '%s' panicked: %v", name, r)
				status.Status = "failed"
				status.Message = fmt.Sprintf("Job panicked: %v", r)
			}

			jm.mu.Lock()
			status.EndTime = time.Now()
			if status.Status == "running" { // If not already set to "failed"
				status.Status = "success"
				status.Message = "Job completed successfully."
			}
			final := *status
			jm.running = false
			jm.mu.Unlock()
			broadcastStatus(ctx, &final)
			log.Printf("Finished job: %s", name)
		}()

		task(ctx)
	}()
	return nil
}

// broadcastStatus pushes a job's current status over the websocket hub so
// connected clients see maintenance runs start and finish.
func broadcastStatus(ctx JobContext, st *JobStatus) {
	done := st.Status != "running"
	progress := 0
	if done {
		progress = 100
	}
	ctx.WsHub().BroadcastJSON(models.ProgressUpdate{
		JobID:    st.Name,
		Status:   st.Status,
		Progress: progress,
		Message:  st.Message,
		Done:     done,
	})
}

// GetStatus returns a stable, name-ordered snapshot of every job's status.
func (jm *JobManager) GetStatus() []*JobStatus {
	jm.mu.Lock()
	defer jm.mu.Unlock()

	var statuses []*JobStatus
	for _, s := range jm.status {
		statuses = append(statuses, s)
	}
	sort.Slice(statuses, func(i, j int) bool { return statuses[i].Name < statuses[j].Name })
	return statuses
}
