package ports

import (
	"context"

	"fundme-simulator/internal/core/domain"
)

// JournalRepository persists activity journal entries. Write-only: the
// session never restores state from it.
type JournalRepository interface {
	Create(ctx context.Context, entry *domain.JournalEntry) error
}
