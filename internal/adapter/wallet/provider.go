package wallet

import (
	"context"
	"fmt"
	"net/http"

	"fundme-simulator/config"
	"fundme-simulator/internal/core/ports"
)

// NewProvider builds the wallet provider selected by cfg.Provider.
// It returns a nil provider for "none": connecting then reports the
// provider as unavailable.
func NewProvider(cfg config.WalletConfig) (ports.WalletProvider, error) {
	switch cfg.Provider {
	case config.ProviderNone, "":
		return nil, nil
	case config.ProviderStatic:
		return NewStaticProvider(cfg.Accounts...), nil
	case config.ProviderRPC:
		return NewRPCProvider(cfg.RPCURL, &http.Client{Timeout: cfg.Timeout}), nil
	default:
		return nil, fmt.Errorf("unknown wallet provider %q", cfg.Provider)
	}
}

// StaticProvider grants a fixed list of accounts.
type StaticProvider struct {
	accounts []string
}

// NewStaticProvider creates a provider that always returns accounts.
func NewStaticProvider(accounts ...string) *StaticProvider {
	return &StaticProvider{accounts: append([]string(nil), accounts...)}
}

// RequestAccounts returns a copy of the configured accounts.
func (p *StaticProvider) RequestAccounts(_ context.Context) ([]string, error) {
	return append([]string(nil), p.accounts...), nil
}
