package service

import (
	"context"

	"fundme-simulator/internal/core/domain"
	"fundme-simulator/internal/core/ports"

	"github.com/rs/zerolog"
)

type journalService struct {
	repo ports.JournalRepository
	log  zerolog.Logger
}

// NewJournalService creates the activity journal.
// If repo is nil, entries are only written to the logger.
func NewJournalService(repo ports.JournalRepository, log zerolog.Logger) ports.ActivityJournal {
	return &journalService{repo: repo, log: log}
}

// Record writes the entry asynchronously (fire-and-forget).
func (s *journalService) Record(ctx context.Context, entry *domain.JournalEntry) {
	ctx = context.WithoutCancel(ctx)
	go func() {
		event := s.log.Info()
		if entry.Kind == domain.LogKindError {
			event = s.log.Warn()
		}
		event.
			Uint64("seq", entry.Seq).
			Str("kind", string(entry.Kind)).
			Str("message", entry.Message).
			Msg("activity")

		if s.repo != nil {
			if err := s.repo.Create(ctx, entry); err != nil {
				s.log.Warn().Err(err).Uint64("seq", entry.Seq).Msg("failed to persist activity journal entry")
			}
		}
	}()
}
