package audit

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Record is one administrative mutation.
type Record struct {
	ID       string    `json:"id"`
	Time     time.Time `json:"time"`
	Action   string    `json:"action"`
	Entity   string    `json:"entity"`
	EntityID uint      `json:"entity_id,omitempty"`
	Detail   any       `json:"detail,omitempty"`
}

// Recorder appends admin mutations as JSON files named by UUID. Recording
// is best-effort: a failed write is logged and never fails the request.
type Recorder struct {
	dir string
}

func NewRecorder(dir string) *Recorder {
	return &Recorder{dir: dir}
}

// Record writes one audit entry.
func (r *Recorder) Record(action, entity string, entityID uint, detail any) {
	if r == nil || r.dir == "" {
		return
	}

	rec := Record{
		ID:       uuid.New().String(),
		Time:     time.Now().UTC(),
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Detail:   detail,
	}

	if err := r.write(rec); err != nil {
		log.Printf("audit: failed to record %s %s/%d: %v", action, entity, entityID, err)
	}
}

func (r *Recorder) write(rec Record) error {
	if err := os.MkdirAll(r.dir, 0755); err != nil {
		return fmt.Errorf("failed to create audit directory: %w", err)
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal audit record: %w", err)
	}

	path := filepath.Join(r.dir, rec.ID+".json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write audit record: %w", err)
	}
	return nil
}
