package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// HistoryStatus is the delivery state of a single history entry.
// Entries start as pending and transition exactly once to sent or failed.
type HistoryStatus string

const (
	HistoryStatusPending HistoryStatus = "pending"
	HistoryStatusSent    HistoryStatus = "sent"
	HistoryStatusFailed  HistoryStatus = "failed"
)

// HistoryEntry is the audit record for one delivery attempt: one row per
// (message, resolved device) pair. The entry is persisted as pending before
// any provider call so an audit trail survives a crash mid-delivery.
type HistoryEntry struct {
	ID          uuid.UUID       `json:"id"`            // The Global Unique Identifier (GUID) for the entry.
	MessageID   uuid.UUID       `json:"message_id"`    // Links sibling entries produced by the same logical send.
	MessageData json.RawMessage `json:"message_data"`  // Snapshot of the exact rendered payload sent to this device.
	DeviceID    *uuid.UUID      `json:"device_id"`     // Resolved device; nulled when the device is removed, never cascaded.
	UserID      string          `json:"user_id"`       // Owning user at resolution time, if known.
	TopicID     *uuid.UUID      `json:"topic_id"`      // Topic context of the resolution, if any.
	Status      HistoryStatus   `json:"status"`        // pending, sent or failed.
	ErrorDetail string          `json:"error_detail"`  // Failure detail, or the provider receipt id on success.
	CreatedAt   time.Time       `json:"created_at"`    // Timestamp of when this entry was drafted.
	UpdatedAt   time.Time       `json:"updated_at"`    // Timestamp of the last status transition.
}

// Terminal reports whether the entry has reached a final state.
func (h *HistoryEntry) Terminal() bool {
	return h.Status == HistoryStatusSent || h.Status == HistoryStatusFailed
}
