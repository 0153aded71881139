package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"fundme-simulator/internal/core/domain"
	"fundme-simulator/internal/core/ports"
	"fundme-simulator/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Simulation labels, also the prefix of the success log message.
const (
	LabelFunded    = "Funded"
	LabelWithdrawn = "Withdrawn"
)

// SimulationDelay is the fixed latency of a simulated transaction.
const SimulationDelay = 1200 * time.Millisecond

// FundMeConfig holds the immutable contract settings of a session.
type FundMeConfig struct {
	OwnerAddress   string
	InitialBalance string
	EthUSDPrice    decimal.Decimal
}

// FundMeDeps holds the collaborators of a session. Provider and Journal may be nil.
type FundMeDeps struct {
	Provider ports.WalletProvider
	Hashes   ports.HashSource
	Delayer  ports.Delayer
	Journal  ports.ActivityJournal
	Clock    func() time.Time
}

// FundMeServiceImpl implements ports.FundMeService.
//
// All state lives behind mu. The simulation delay runs without the lock held;
// the loading flag keeps a second transaction out while one is pending.
type FundMeServiceImpl struct {
	owner    string
	price    decimal.Decimal
	provider ports.WalletProvider
	hashes   ports.HashSource
	delayer  ports.Delayer
	journal  ports.ActivityJournal
	clock    func() time.Time
	log      zerolog.Logger

	mu       sync.Mutex
	wallet   string
	amount   string
	loading  bool
	ledger   *domain.Ledger
	activity *domain.ActivityLog
}

// NewFundMeService creates a new FundMeServiceImpl.
func NewFundMeService(cfg FundMeConfig, deps FundMeDeps, log zerolog.Logger) (*FundMeServiceImpl, error) {
	if cfg.OwnerAddress == "" {
		return nil, errors.New("owner address is required")
	}
	ledger, err := domain.NewLedger(cfg.InitialBalance)
	if err != nil {
		return nil, err
	}

	if deps.Hashes == nil {
		deps.Hashes = NewRandomHashSource()
	}
	if deps.Delayer == nil {
		deps.Delayer = SleepDelayer{}
	}
	if deps.Clock == nil {
		deps.Clock = time.Now
	}

	return &FundMeServiceImpl{
		owner:    cfg.OwnerAddress,
		price:    cfg.EthUSDPrice,
		provider: deps.Provider,
		hashes:   deps.Hashes,
		delayer:  deps.Delayer,
		journal:  deps.Journal,
		clock:    deps.Clock,
		log:      log,
		ledger:   ledger,
		activity: domain.NewActivityLog(),
	}, nil
}

// Connect requests accounts from the wallet provider and adopts the first one.
func (s *FundMeServiceImpl) Connect(ctx context.Context) (ports.Snapshot, error) {
	if s.provider == nil {
		return s.fail(ctx, apperror.ErrProviderUnavailable())
	}

	accounts, err := s.provider.RequestAccounts(ctx)
	if err == nil && len(accounts) == 0 {
		err = errors.New("provider returned no accounts")
	}
	if err == nil && strings.TrimSpace(accounts[0]) == "" {
		err = errors.New("provider returned a blank account")
	}
	if err != nil {
		return s.fail(ctx, apperror.ErrProviderRejected(err))
	}

	addr := accounts[0]
	s.mu.Lock()
	s.wallet = addr
	entry := s.push(fmt.Sprintf("Connected: %s", domain.ShortAddress(addr)), domain.LogKindOK)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.record(ctx, entry, addr)
	s.log.Info().Str("wallet", addr).Bool("owner", snap.IsOwner).Msg("wallet connected")
	return snap, nil
}

// SetAmount replaces the pending amount input. It is validated only on Fund.
func (s *FundMeServiceImpl) SetAmount(amount string) ports.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.amount = amount
	return s.snapshotLocked()
}

// Fund credits the pending amount to the contract balance after the
// simulated confirmation delay, then clears the amount input.
func (s *FundMeServiceImpl) Fund(ctx context.Context) (ports.Snapshot, error) {
	return s.fund(ctx, nil)
}

// FundAmount replaces the amount input and funds it in one step. The input
// is replaced even when funding is rejected.
func (s *FundMeServiceImpl) FundAmount(ctx context.Context, amount string) (ports.Snapshot, error) {
	return s.fund(ctx, func() { s.amount = amount })
}

func (s *FundMeServiceImpl) fund(ctx context.Context, prepare func()) (ports.Snapshot, error) {
	var amount decimal.Decimal
	validate := func() *apperror.AppError {
		v, ok := domain.ParseAmount(s.amount)
		if !ok {
			return apperror.ErrInvalidAmount()
		}
		amount = v
		return nil
	}

	return s.simulate(ctx, LabelFunded, prepare, validate, func() error {
		balance := s.ledger.Credit(amount)
		s.amount = ""
		s.log.Debug().Str("amount", amount.String()).Str("balance", balance).Msg("contract funded")
		return nil
	})
}

// Withdraw drains the contract balance. Only the owner may withdraw.
func (s *FundMeServiceImpl) Withdraw(ctx context.Context) (ports.Snapshot, error) {
	authorize := func() *apperror.AppError {
		if !s.isOwnerLocked() {
			return apperror.ErrUnauthorized()
		}
		return nil
	}

	return s.simulate(ctx, LabelWithdrawn, nil, authorize, func() error {
		s.ledger.Drain()
		return nil
	})
}

// Snapshot returns a copy of the current view state.
func (s *FundMeServiceImpl) Snapshot() ports.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// IsOwner reports whether the connected wallet is the contract owner.
func (s *FundMeServiceImpl) IsOwner() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isOwnerLocked()
}

// simulate runs effect as a mock on-chain transaction: prepare, then session
// and busy checks, then guard, then the fixed delay, then effect and a success
// entry carrying a cosmetic tx hash. prepare, guard and effect run with mu
// held. The loading flag is cleared on every exit path, panics included.
func (s *FundMeServiceImpl) simulate(
	ctx context.Context,
	label string,
	prepare func(),
	guard func() *apperror.AppError,
	effect func() error,
) (ports.Snapshot, error) {
	s.mu.Lock()
	if prepare != nil {
		prepare()
	}
	if appErr := s.admitLocked(guard); appErr != nil {
		s.mu.Unlock()
		return s.fail(ctx, appErr)
	}
	s.loading = true
	wallet := s.wallet
	s.mu.Unlock()

	s.log.Debug().Str("label", label).Str("wallet", wallet).Dur("delay", SimulationDelay).Msg("simulated transaction pending")
	s.delayer.Delay(SimulationDelay)

	entry, err := s.complete(label, effect)
	s.record(ctx, entry, wallet)
	if err != nil {
		s.log.Error().Err(err).Str("label", label).Msg("simulated transaction failed")
		return s.Snapshot(), err
	}

	s.log.Info().Str("label", label).Str("wallet", wallet).Str("entry", entry.Message).Msg("simulated transaction confirmed")
	return s.Snapshot(), nil
}

func (s *FundMeServiceImpl) admitLocked(guard func() *apperror.AppError) *apperror.AppError {
	if s.wallet == "" {
		return apperror.ErrSessionRequired()
	}
	if s.loading {
		return apperror.ErrBusy()
	}
	if guard != nil {
		return guard()
	}
	return nil
}

func (s *FundMeServiceImpl) complete(label string, effect func() error) (domain.LogEntry, error) {
	s.mu.Lock()
	defer func() {
		s.loading = false
		s.mu.Unlock()
	}()

	if err := effect(); err != nil {
		appErr := apperror.ErrSimulationFailed(label, err)
		return s.push(appErr.Message, domain.LogKindError), appErr
	}
	return s.push(fmt.Sprintf("%s — tx: %s", label, s.hashes.TxHash()), domain.LogKindOK), nil
}

// fail appends appErr as an error entry and returns it with the current state.
func (s *FundMeServiceImpl) fail(ctx context.Context, appErr *apperror.AppError) (ports.Snapshot, error) {
	s.mu.Lock()
	entry := s.push(appErr.Message, domain.LogKindError)
	wallet := s.wallet
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.record(ctx, entry, wallet)
	s.log.Warn().Err(appErr).Str("error_code", appErr.Code).Msg("action rejected")
	return snap, appErr
}

func (s *FundMeServiceImpl) push(message string, kind domain.LogKind) domain.LogEntry {
	return s.activity.Push(message, kind, s.clock())
}

func (s *FundMeServiceImpl) record(ctx context.Context, entry domain.LogEntry, wallet string) {
	if s.journal == nil {
		return
	}
	s.journal.Record(ctx, domain.NewJournalEntry(entry, wallet))
}

func (s *FundMeServiceImpl) isOwnerLocked() bool {
	return s.wallet != "" && domain.SameAddress(s.wallet, s.owner)
}

func (s *FundMeServiceImpl) snapshotLocked() ports.Snapshot {
	snap := ports.Snapshot{
		IsOwner:    s.isOwnerLocked(),
		Amount:     s.amount,
		Balance:    s.ledger.Balance(),
		BalanceUSD: s.ledger.ValueIn(s.price),
		Loading:    s.loading,
		Log:        s.activity.Entries(),
	}
	if s.wallet != "" {
		wallet := s.wallet
		snap.Wallet = &wallet
		snap.WalletDisplay = domain.ShortAddress(wallet)
		snap.WalletChecksum = domain.ChecksumAddress(wallet)
	}
	return snap
}
