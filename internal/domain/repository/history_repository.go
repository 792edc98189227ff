package repository

import (
	"context"
	"errors"
	"time"

	"pushgate/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrHistoryNotFound is returned when a history entry is not found.
var ErrHistoryNotFound = errors.New("history entry not found")

// HistoryPurgeResult reports how many entries of each status a purge removed.
type HistoryPurgeResult struct {
	Pending int64
	Sent    int64
	Failed  int64
}

// Total returns the overall number of purged entries.
func (r HistoryPurgeResult) Total() int64 {
	return r.Pending + r.Sent + r.Failed
}

// HistoryRepository is the Audit Log store. Entries are inserted in bulk as
// pending before any delivery attempt and updated at most once afterwards.
type HistoryRepository interface {
	// BulkInsert persists the drafted entries in a single batch.
	BulkInsert(ctx context.Context, entries []*entity.HistoryEntry) error

	// Update persists a single entry's status transition.
	Update(ctx context.Context, entry *entity.HistoryEntry) error

	// FindByMessageID retrieves all entries recorded for a logical send.
	FindByMessageID(ctx context.Context, messageID uuid.UUID) ([]*entity.HistoryEntry, error)

	// PurgeBefore removes entries last updated before the given time.
	PurgeBefore(ctx context.Context, before time.Time) (HistoryPurgeResult, error)
}
