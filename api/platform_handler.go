package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Rustaman254/waveUnit/service"
)

// PlatformHandler serves public platform information
type PlatformHandler struct {
	rates     service.RateSource
	reporting service.ReportingService
}

func NewPlatformHandler(rates service.RateSource, reporting service.ReportingService) *PlatformHandler {
	return &PlatformHandler{
		rates:     rates,
		reporting: reporting,
	}
}

// GetRate returns the current HBAR/KSh exchange rate
func (h *PlatformHandler) GetRate(c *gin.Context) {
	rate := h.rates.FetchRate(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"currency": "KES",
		"rate":     rate,
	})
}

func (h *PlatformHandler) ListFarms(c *gin.Context) {
	farms, err := h.reporting.ListFarms(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, farms)
}

func (h *PlatformHandler) ListReports(c *gin.Context) {
	reports, err := h.reporting.ListReports(c.Request.Context(), listLimit(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, reports)
}
