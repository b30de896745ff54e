package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Rustaman254/waveUnit/models"
	"github.com/Rustaman254/waveUnit/service"
)

// WithdrawalHandler serves investor withdrawal endpoints
type WithdrawalHandler struct {
	withdrawals service.WithdrawalService
}

func NewWithdrawalHandler(withdrawals service.WithdrawalService) *WithdrawalHandler {
	return &WithdrawalHandler{withdrawals: withdrawals}
}

type withdrawalRequest struct {
	ProfileID   string `json:"profile_id" binding:"required"`
	AmountKsh   string `json:"amount_ksh" binding:"required"`
	Method      string `json:"method" binding:"required,oneof=mpesa hbar hens_token"`
	Destination string `json:"destination" binding:"required"`
}

func (h *WithdrawalHandler) Request(c *gin.Context) {
	var req withdrawalRequest
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

	withdrawal, err := h.withdrawals.Request(c.Request.Context(), profileID, amount, models.WithdrawalMethod(req.Method), req.Destination)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, withdrawal)
}
