package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/Rustaman254/waveUnit/models"
	"github.com/Rustaman254/waveUnit/service"
)

// AdminHandler serves platform administration endpoints
type AdminHandler struct {
	profiles      service.ProfileService
	investments   service.InvestmentService
	withdrawals   service.WithdrawalService
	distributions service.DistributionService
	settings      service.SettingsService
	reporting     service.ReportingService
}

func NewAdminHandler(
	profiles service.ProfileService,
	investments service.InvestmentService,
	withdrawals service.WithdrawalService,
	distributions service.DistributionService,
	settings service.SettingsService,
	reporting service.ReportingService,
) *AdminHandler {
	return &AdminHandler{
		profiles:      profiles,
		investments:   investments,
		withdrawals:   withdrawals,
		distributions: distributions,
		settings:      settings,
		reporting:     reporting,
	}
}

func (h *AdminHandler) ListProfiles(c *gin.Context) {
	profiles, err := h.profiles.ListProfiles(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, profiles)
}

type reviewKYCRequest struct {
	Approve *bool `json:"approve" binding:"required"`
}

func (h *AdminHandler) ReviewKYC(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req reviewKYCRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.profiles.ReviewKYC(c.Request.Context(), id, *req.Approve); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "reviewed"})
}

func (h *AdminHandler) ListInvestments(c *gin.Context) {
	var status *models.InvestmentStatus
	if raw := c.Query("status"); raw != "" {
		s := models.InvestmentStatus(raw)
		status = &s
	}

	investments, err := h.investments.ListAll(c.Request.Context(), status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, investments)
}

func (h *AdminHandler) ListWithdrawals(c *gin.Context) {
	var status *models.WithdrawalStatus
	if raw := c.Query("status"); raw != "" {
		s := models.WithdrawalStatus(raw)
		status = &s
	}

	withdrawals, err := h.withdrawals.ListAll(c.Request.Context(), status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, withdrawals)
}

type approveWithdrawalRequest struct {
	TransactionID string `json:"transaction_id" binding:"required"`
}

func (h *AdminHandler) ApproveWithdrawal(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req approveWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.withdrawals.Approve(c.Request.Context(), id, req.TransactionID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "approved"})
}

func (h *AdminHandler) RejectWithdrawal(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.withdrawals.Reject(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "rejected"})
}

func (h *AdminHandler) GetSettings(c *gin.Context) {
	settings, err := h.settings.GetSettings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, settings)
}

type updateSettingsRequest struct {
	HenPriceKsh        decimal.Decimal `json:"hen_price_ksh" binding:"required"`
	TotalHens          int             `json:"total_hens"`
	DailyEggProduction int             `json:"daily_egg_production"`
	StarterRate        decimal.Decimal `json:"starter_rate"`
	BronzeRate         decimal.Decimal `json:"bronze_rate"`
	SilverRate         decimal.Decimal `json:"silver_rate"`
	GoldRate           decimal.Decimal `json:"gold_rate"`
	KshToHbarRate      decimal.Decimal `json:"ksh_to_hbar_rate"`
	HensTokenID        *string         `json:"hens_token_id"`
}

func (h *AdminHandler) UpdateSettings(c *gin.Context) {
	var req updateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings := &models.PlatformSettings{
		HenPriceKsh:        req.HenPriceKsh,
		TotalHens:          req.TotalHens,
		DailyEggProduction: req.DailyEggProduction,
		TierRates: models.TierRates{
			Starter: req.StarterRate,
			Bronze:  req.BronzeRate,
			Silver:  req.SilverRate,
			Gold:    req.GoldRate,
		},
		KshToHbarRate: req.KshToHbarRate,
		HensTokenID:   req.HensTokenID,
	}

	updated, err := h.settings.UpdateSettings(c.Request.Context(), settings)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, updated)
}

type farmRequest struct {
	Name            string  `json:"name" binding:"required"`
	Location        string  `json:"location"`
	TotalHens       int     `json:"total_hens"`
	DailyProduction int     `json:"daily_production"`
	Status          string  `json:"status"`
	Description     *string `json:"description"`
	ImageURL        *string `json:"image_url"`
}

func (h *AdminHandler) CreateFarm(c *gin.Context) {
	var req farmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	farm, err := h.reporting.CreateFarm(c.Request.Context(), &models.Farm{
		Name:            req.Name,
		Location:        req.Location,
		TotalHens:       req.TotalHens,
		DailyProduction: req.DailyProduction,
		Status:          models.FarmStatus(req.Status),
		Description:     req.Description,
		ImageURL:        req.ImageURL,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, farm)
}

func (h *AdminHandler) UpdateFarm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req farmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	farm, err := h.reporting.UpdateFarm(c.Request.Context(), &models.Farm{
		ID:              id,
		Name:            req.Name,
		Location:        req.Location,
		TotalHens:       req.TotalHens,
		DailyProduction: req.DailyProduction,
		Status:          models.FarmStatus(req.Status),
		Description:     req.Description,
		ImageURL:        req.ImageURL,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, farm)
}

type publishReportRequest struct {
	WeekStartDate     string          `json:"week_start_date" binding:"required"`
	TotalHens         int             `json:"total_hens"`
	EggsProduced      int             `json:"eggs_produced"`
	RevenueKsh        decimal.Decimal `json:"revenue_ksh"`
	OperatingCostsKsh decimal.Decimal `json:"operating_costs_ksh"`
	FeedCostKsh       decimal.Decimal `json:"feed_cost_ksh"`
	LaborCostKsh      decimal.Decimal `json:"labor_cost_ksh"`
	OtherCostsKsh     decimal.Decimal `json:"other_costs_ksh"`
	Photos            []string        `json:"photos"`
	Notes             *string         `json:"notes"`
}

func (h *AdminHandler) PublishReport(c *gin.Context) {
	var req publishReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	weekStart, err := time.Parse("2006-01-02", req.WeekStartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "week_start_date must be YYYY-MM-DD"})
		return
	}

	report, err := h.reporting.PublishReport(c.Request.Context(), &models.TransparencyReport{
		WeekStartDate:     weekStart,
		TotalHens:         req.TotalHens,
		EggsProduced:      req.EggsProduced,
		RevenueKsh:        req.RevenueKsh,
		OperatingCostsKsh: req.OperatingCostsKsh,
		FeedCostKsh:       req.FeedCostKsh,
		LaborCostKsh:      req.LaborCostKsh,
		OtherCostsKsh:     req.OtherCostsKsh,
		Photos:            req.Photos,
		Notes:             req.Notes,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, report)
}

type runDistributionRequest struct {
	Date string `json:"date"`
}

// RunDistribution triggers a distribution run, defaulting to today
func (h *AdminHandler) RunDistribution(c *gin.Context) {
	var req runDistributionRequest
	// Body is optional
	_ = c.ShouldBindJSON(&req)

	date := time.Now().UTC()
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	run, err := h.distributions.RunDaily(c.Request.Context(), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, run)
}
