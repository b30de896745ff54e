package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Rustaman254/waveUnit/service"
)

// ProfileHandler serves investor profile endpoints
type ProfileHandler struct {
	profiles      service.ProfileService
	investments   service.InvestmentService
	withdrawals   service.WithdrawalService
	distributions service.DistributionService
}

func NewProfileHandler(profiles service.ProfileService, investments service.InvestmentService, withdrawals service.WithdrawalService, distributions service.DistributionService) *ProfileHandler {
	return &ProfileHandler{
		profiles:      profiles,
		investments:   investments,
		withdrawals:   withdrawals,
		distributions: distributions,
	}
}

type registerRequest struct {
	FullName    string `json:"full_name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phone_number"`
}

func (h *ProfileHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.profiles.Register(c.Request.Context(), req.FullName, req.Email, req.PhoneNumber)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, profile)
}

func (h *ProfileHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	profile, err := h.profiles.GetProfile(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}

type linkWalletRequest struct {
	HederaAccountID string `json:"hedera_account_id" binding:"required"`
}

func (h *ProfileHandler) LinkWallet(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req linkWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.profiles.LinkWallet(c.Request.Context(), id, req.HederaAccountID)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}

type submitKYCRequest struct {
	IDNumber     string `json:"id_number" binding:"required"`
	Address      string `json:"address"`
	ProofOfIDURL string `json:"proof_of_id_url"`
}

func (h *ProfileHandler) SubmitKYC(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req submitKYCRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.profiles.SubmitKYC(c.Request.Context(), id, req.IDNumber, req.Address, req.ProofOfIDURL); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"status": "submitted"})
}

func (h *ProfileHandler) ListInvestments(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	investments, err := h.investments.ListByProfile(c.Request.Context(), id, listLimit(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, investments)
}

func (h *ProfileHandler) ListWithdrawals(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	withdrawals, err := h.withdrawals.ListByProfile(c.Request.Context(), id, listLimit(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, withdrawals)
}

func (h *ProfileHandler) ListDistributions(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	distributions, err := h.distributions.History(c.Request.Context(), id, listLimit(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, distributions)
}

// parseID reads the :id path parameter; on failure it writes the error
// response itself and returns ok=false
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}
