package scheduler

import (
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/josiah1121/BuckWatch/internal/summary"
)

// Scheduler periodically refreshes the dashboard summary cache so the
// dashboard read path serves precomputed counts.
type Scheduler struct {
	scheduler *gocron.Scheduler
	summary   *summary.Provider
	interval  time.Duration
}

// New creates a new Scheduler.
func New(summary *summary.Provider, interval time.Duration) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		summary:   summary,
		interval:  interval,
	}
}

// Start schedules the periodic refresh job and starts the underlying
// scheduler.
func (s *Scheduler) Start() error {
	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 15
	}

	_, err := s.scheduler.Every(minutes).Minutes().Do(func() {
		if _, err := s.summary.Refresh(); err != nil {
			log.Printf("scheduler: dashboard summary refresh failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
