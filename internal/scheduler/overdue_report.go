// Package scheduler runs periodic maintenance jobs. The only job today is
// the overdue-loan report, which gives operators visibility into accepted
// loans past their return date without mutating anything.
package scheduler

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/ayayoy/lendhub/internal/database/borrows"
)

// OverdueLister provides the loans the report runs over.
type OverdueLister interface {
	ListOverdue(now time.Time) ([]borrows.OverdueLoan, error)
}

// OverdueReporter logs overdue loans on a cron schedule.
type OverdueReporter struct {
	loans    OverdueLister
	schedule string

	cron      *cron.Cron
	mu        sync.Mutex
	isRunning bool
}

// NewOverdueReporter creates a reporter with a standard 5-field schedule.
func NewOverdueReporter(loans OverdueLister, schedule string) *OverdueReporter {
	return &OverdueReporter{
		loans:    loans,
		schedule: schedule,
		cron: cron.New(cron.WithParser(cron.NewParser(
			cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow,
		))),
	}
}

// Start begins the schedule. Calling Start twice is a no-op.
func (r *OverdueReporter) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.isRunning {
		return nil
	}

	if _, err := r.cron.AddFunc(r.schedule, r.runReport); err != nil {
		return fmt.Errorf("failed to schedule overdue report '%s': %w", r.schedule, err)
	}

	r.cron.Start()
	r.isRunning = true
	log.Printf("Overdue report scheduled: %s", r.schedule)
	return nil
}

// Stop halts the schedule and waits for a running report to finish.
func (r *OverdueReporter) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.isRunning {
		return
	}
	<-r.cron.Stop().Done()
	r.isRunning = false
}

func (r *OverdueReporter) runReport() {
	overdue, err := r.loans.ListOverdue(time.Now())
	if err != nil {
		log.Printf("Overdue report failed: %v", err)
		return
	}

	if len(overdue) == 0 {
		log.Printf("Overdue report: no overdue loans")
		return
	}

	log.Printf("Overdue report: %d overdue loans", len(overdue))
	for _, loan := range overdue {
		log.Printf("  overdue: borrow=%d book=%q user=%s due=%s",
			loan.ID, loan.Title, loan.Email, loan.ReturnDate.Format("2006-01-02"))
	}
}
