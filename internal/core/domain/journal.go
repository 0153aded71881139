package domain

import (
	"time"

	"github.com/google/uuid"
)

// JournalEntry is the durable audit copy of an activity log entry.
type JournalEntry struct {
	ID        uuid.UUID `json:"id"`
	Seq       uint64    `json:"seq"`
	Kind      LogKind   `json:"kind"`
	Message   string    `json:"message"`
	Wallet    *string   `json:"wallet,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewJournalEntry copies entry for the wallet connected at the time, if any.
func NewJournalEntry(entry LogEntry, wallet string) *JournalEntry {
	je := &JournalEntry{
		ID:        uuid.New(),
		Seq:       entry.ID,
		Kind:      entry.Kind,
		Message:   entry.Message,
		CreatedAt: entry.CreatedAt,
	}
	if wallet != "" {
		je.Wallet = &wallet
	}
	return je
}
