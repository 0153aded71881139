package dto

// AmountRequest is the request body for editing the funding amount.
// Content is validated only when funding, so any short string is accepted.
type AmountRequest struct {
	Amount string `json:"amount" binding:"max=64"`
}

// FundRequest is the optional request body for funding. A present amount
// replaces the pending amount input before funding.
type FundRequest struct {
	Amount *string `json:"amount,omitempty" binding:"omitempty,max=64"`
}

// LogEntryResponse is one activity log line.
type LogEntryResponse struct {
	ID        uint64 `json:"id"`
	Message   string `json:"message"`
	Kind      string `json:"kind"`
	CreatedAt string `json:"created_at"`
}

// SnapshotResponse is the session view state.
type SnapshotResponse struct {
	Wallet         *string            `json:"wallet"`
	WalletDisplay  string             `json:"wallet_display,omitempty"`
	WalletChecksum string             `json:"wallet_checksum,omitempty"`
	IsOwner        bool               `json:"is_owner"`
	Amount         string             `json:"amount"`
	Balance        string             `json:"balance"`
	BalanceUSD     string             `json:"balance_usd"`
	Loading        bool               `json:"loading"`
	Log            []LogEntryResponse `json:"log"`
}
