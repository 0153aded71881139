package handler

import (
	"errors"
	"io"
	"time"

	"fundme-simulator/internal/adapter/http/dto"
	"fundme-simulator/internal/core/ports"
	"fundme-simulator/pkg/apperror"
	"fundme-simulator/pkg/response"

	"github.com/gin-gonic/gin"
)

// FundMeHandler exposes the simulated contract session over HTTP.
type FundMeHandler struct {
	svc ports.FundMeService
}

// NewFundMeHandler creates a new FundMeHandler.
func NewFundMeHandler(svc ports.FundMeService) *FundMeHandler {
	return &FundMeHandler{svc: svc}
}

// GetState handles GET /api/v1/fundme.
func (h *FundMeHandler) GetState(c *gin.Context) {
	response.OK(c, toSnapshotResponse(h.svc.Snapshot()))
}

// Connect handles POST /api/v1/fundme/connect.
func (h *FundMeHandler) Connect(c *gin.Context) {
	snap, err := h.svc.Connect(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toSnapshotResponse(snap))
}

// SetAmount handles PUT /api/v1/fundme/amount.
func (h *FundMeHandler) SetAmount(c *gin.Context) {
	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	response.OK(c, toSnapshotResponse(h.svc.SetAmount(req.Amount)))
}

// Fund handles POST /api/v1/fundme/fund. The body is optional; an amount in
// it replaces the pending amount input and is funded in the same step.
func (h *FundMeHandler) Fund(c *gin.Context) {
	var req dto.FundRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	var (
		snap ports.Snapshot
		err  error
	)
	if req.Amount != nil {
		dto.SanitizeStruct(&req)
		snap, err = h.svc.FundAmount(c.Request.Context(), *req.Amount)
	} else {
		snap, err = h.svc.Fund(c.Request.Context())
	}
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toSnapshotResponse(snap))
}

// Withdraw handles POST /api/v1/fundme/withdraw.
func (h *FundMeHandler) Withdraw(c *gin.Context) {
	snap, err := h.svc.Withdraw(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toSnapshotResponse(snap))
}

func toSnapshotResponse(s ports.Snapshot) dto.SnapshotResponse {
	entries := make([]dto.LogEntryResponse, 0, len(s.Log))
	for _, e := range s.Log {
		entries = append(entries, dto.LogEntryResponse{
			ID:        e.ID,
			Message:   e.Message,
			Kind:      string(e.Kind),
			CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	return dto.SnapshotResponse{
		Wallet:         s.Wallet,
		WalletDisplay:  s.WalletDisplay,
		WalletChecksum: s.WalletChecksum,
		IsOwner:        s.IsOwner,
		Amount:         s.Amount,
		Balance:        s.Balance,
		BalanceUSD:     s.BalanceUSD,
		Loading:        s.Loading,
		Log:            entries,
	}
}
