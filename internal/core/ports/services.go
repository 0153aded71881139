package ports

import (
	"context"
	"time"

	"fundme-simulator/internal/core/domain"
)

// --- Infrastructure Ports ---

// WalletProvider is the host wallet the session connects through.
type WalletProvider interface {
	// RequestAccounts asks the wallet for account access and returns the
	// granted addresses, first one being the active account.
	RequestAccounts(ctx context.Context) ([]string, error)
}

// HashSource produces cosmetic transaction hashes for simulated transactions.
// Values are never real transaction identifiers.
type HashSource interface {
	TxHash() string
}

// Delayer suspends the caller for a fixed duration. Implementations must not
// return early: a started simulation always completes.
type Delayer interface {
	Delay(d time.Duration)
}

// ActivityJournal receives a copy of every activity log entry (fire-and-forget).
type ActivityJournal interface {
	Record(ctx context.Context, entry *domain.JournalEntry)
}

// --- Service Ports (Business Logic) ---

// FundMeService is the simulated crowdfunding contract session.
// Every failure is also appended to the activity log as an error entry.
type FundMeService interface {
	Connect(ctx context.Context) (Snapshot, error)
	SetAmount(amount string) Snapshot
	Fund(ctx context.Context) (Snapshot, error)
	// FundAmount sets the amount input and funds it atomically.
	FundAmount(ctx context.Context, amount string) (Snapshot, error)
	Withdraw(ctx context.Context) (Snapshot, error)
	Snapshot() Snapshot
	IsOwner() bool
}

// Snapshot is a point-in-time copy of the session view state.
type Snapshot struct {
	Wallet         *string // nil until a wallet connects
	WalletDisplay  string
	WalletChecksum string // EIP-55 form, empty for non-hex addresses
	IsOwner        bool
	Amount         string
	Balance        string
	BalanceUSD     string
	Loading        bool
	Log            []domain.LogEntry // newest first
}
