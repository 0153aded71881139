package domain

import "time"

// LogCapacity is the number of entries the activity log keeps.
const LogCapacity = 7

// LogKind classifies an activity log entry.
type LogKind string

const (
	LogKindOK    LogKind = "ok"
	LogKindError LogKind = "error"
)

// LogEntry is one user-visible outcome. Entries are never modified.
type LogEntry struct {
	ID        uint64    `json:"id"`
	Message   string    `json:"message"`
	Kind      LogKind   `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
}

// ActivityLog is a bounded, newest-first record of recent outcomes.
// It is not safe for concurrent use.
type ActivityLog struct {
	entries []LogEntry
	lastID  uint64
}

// NewActivityLog creates an empty log holding at most LogCapacity entries.
func NewActivityLog() *ActivityLog {
	return &ActivityLog{entries: make([]LogEntry, 0, LogCapacity)}
}

// Push prepends a new entry, evicting the oldest when the log is full.
func (l *ActivityLog) Push(message string, kind LogKind, at time.Time) LogEntry {
	l.lastID++
	entry := LogEntry{
		ID:        l.lastID,
		Message:   message,
		Kind:      kind,
		CreatedAt: at,
	}

	keep := len(l.entries)
	if keep > LogCapacity-1 {
		keep = LogCapacity - 1
	}
	next := make([]LogEntry, 0, LogCapacity)
	next = append(next, entry)
	next = append(next, l.entries[:keep]...)
	l.entries = next

	return entry
}

// Entries returns a copy of the log, newest first.
func (l *ActivityLog) Entries() []LogEntry {
	out := make([]LogEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of entries held.
func (l *ActivityLog) Len() int {
	return len(l.entries)
}
