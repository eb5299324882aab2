package tasks

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"

	"github.com/ayayoy/lendhub/internal/storage"
)

// CleanupImageTask deletes a released image blob. Enqueued when a book
// update replaces an image or a book is deleted, so the originating
// request never blocks on (or fails because of) blob deletion.
type CleanupImageTask struct {
	Ref string `json:"ref"`
}

// Config returns the queue configuration for image cleanup tasks.
func (t CleanupImageTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "cleanup_image",
		MaxAttempts: 3,
		Backoff:     time.Minute,
		Timeout:     30 * time.Second,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// CleanupImageProcessor creates a processor function for CleanupImageTask.
func CleanupImageProcessor(store storage.Store) backlite.QueueProcessor[CleanupImageTask] {
	return func(ctx context.Context, task CleanupImageTask) error {
		if store == nil {
			return fmt.Errorf("image store not configured")
		}
		if task.Ref == "" {
			return nil
		}

		if err := store.Delete(ctx, task.Ref); err != nil {
			return fmt.Errorf("cleanup image %s: %w", task.Ref, err)
		}

		log.Printf("[TASK] Cleaned up image %s", task.Ref)
		return nil
	}
}

// NewCleanupImageQueue creates a backlite queue for image cleanup tasks.
func NewCleanupImageQueue(store storage.Store) backlite.Queue {
	return backlite.NewQueue(CleanupImageProcessor(store))
}
