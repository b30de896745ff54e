package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Rustaman254/waveUnit/models"
	"github.com/Rustaman254/waveUnit/service"
)

// InvestmentHandler serves the settlement endpoint
type InvestmentHandler struct {
	investments service.InvestmentService
}

func NewInvestmentHandler(investments service.InvestmentService) *InvestmentHandler {
	return &InvestmentHandler{investments: investments}
}

type investRequest struct {
	ProfileID string `json:"profile_id" binding:"required"`
	AmountKsh string `json:"amount_ksh" binding:"required"`
}

type settlementResponse struct {
	State       models.SettlementState `json:"state"`
	FailedState models.SettlementState `json:"failed_state,omitempty"`
	Investment  *models.Investment     `json:"investment,omitempty"`
	Rate        decimal.Decimal        `json:"rate"`
	HbarPaid    decimal.Decimal        `json:"hbar_paid"`
	BaseShares  decimal.Decimal        `json:"base_shares"`
	BonusShares decimal.Decimal        `json:"bonus_shares"`
	TotalShares decimal.Decimal        `json:"total_shares"`
	PaymentTxID string                 `json:"payment_tx_id,omitempty"`
	MintTxID    string                 `json:"mint_tx_id,omitempty"`
	Error       string                 `json:"error,omitempty"`
}

// Invest runs one settlement sequence. The response always carries the
// final state and any on-chain transaction references, so a caller can
// see a confirmed payment even when the sequence aborted afterwards.
func (h *InvestmentHandler) Invest(c *gin.Context) {
	var req investRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profileID, err := uuid.Parse(req.ProfileID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile_id"})
		return
	}

	amount, err := decimal.NewFromString(req.AmountKsh)
	if err != nil || !amount.IsPositive() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid amount_ksh"})
		return
	}

	result, err := h.investments.Invest(c.Request.Context(), profileID, amount)

	resp := settlementResponse{
		State:       result.State,
		FailedState: result.FailedState,
		Investment:  result.Investment,
		Rate:        result.Rate,
		HbarPaid:    result.HbarPaid,
		BaseShares:  result.Shares.Base,
		BonusShares: result.Shares.Bonus,
		TotalShares: result.Shares.Total,
		PaymentTxID: result.PaymentTxID,
		MintTxID:    result.MintTxID,
	}

	if err != nil {
		resp.Error = err.Error()
		// Failures before any chain interaction are the caller's problem;
		// failures after it are a gateway problem
		status := http.StatusBadRequest
		if result.FailedState != models.SettlementInitiated {
			status = http.StatusBadGateway
		}
		c.JSON(status, resp)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// listLimit reads the optional ?limit query parameter, defaulting to 50
func listLimit(c *gin.Context) int {
	if raw := c.Query("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 && limit <= 500 {
			return limit
		}
	}
	return 50
}
