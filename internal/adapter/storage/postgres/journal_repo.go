package postgres

import (
	"context"
	"fmt"

	"fundme-simulator/internal/core/domain"
)

// JournalRepo implements ports.JournalRepository.
type JournalRepo struct {
	pool Pool
}

// NewJournalRepo creates a new JournalRepo.
func NewJournalRepo(pool Pool) *JournalRepo {
	return &JournalRepo{pool: pool}
}

// Create inserts one activity journal entry.
func (r *JournalRepo) Create(ctx context.Context, e *domain.JournalEntry) error {
	query := `INSERT INTO activity_journal (id, seq, kind, message, wallet, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query,
		e.ID, int64(e.Seq), string(e.Kind), e.Message, e.Wallet, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting journal entry %d: %w", e.Seq, err)
	}
	return nil
}
