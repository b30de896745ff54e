package api

import (
	"github.com/gin-gonic/gin"
)

// Config carries the handlers the router wires up
type Config struct {
	ProfileHandler    *ProfileHandler
	InvestmentHandler *InvestmentHandler
	WithdrawalHandler *WithdrawalHandler
	PlatformHandler   *PlatformHandler
	AdminHandler      *AdminHandler
}

// NewRouter builds the gin engine with all routes registered
func NewRouter(cfg *Config) *gin.Engine {
	router := gin.Default()

	api := router.Group("/api/v1")
	registerProfileRoutes(api, cfg.ProfileHandler)
	registerInvestmentRoutes(api, cfg.InvestmentHandler)
	registerWithdrawalRoutes(api, cfg.WithdrawalHandler)
	registerPlatformRoutes(api, cfg.PlatformHandler)
	registerAdminRoutes(api, cfg.AdminHandler)

	return router
}

func registerProfileRoutes(router *gin.RouterGroup, h *ProfileHandler) {
	profiles := router.Group("/profiles")
	{
		profiles.POST("", h.Register)
		profiles.GET("/:id", h.Get)
		profiles.POST("/:id/wallet", h.LinkWallet)
		profiles.POST("/:id/kyc", h.SubmitKYC)
		profiles.GET("/:id/investments", h.ListInvestments)
		profiles.GET("/:id/withdrawals", h.ListWithdrawals)
		profiles.GET("/:id/distributions", h.ListDistributions)
	}
}

func registerInvestmentRoutes(router *gin.RouterGroup, h *InvestmentHandler) {
	investments := router.Group("/investments")
	{
		investments.POST("", h.Invest)
	}
}

func registerWithdrawalRoutes(router *gin.RouterGroup, h *WithdrawalHandler) {
	withdrawals := router.Group("/withdrawals")
	{
		withdrawals.POST("", h.Request)
	}
}

func registerPlatformRoutes(router *gin.RouterGroup, h *PlatformHandler) {
	router.GET("/rate", h.GetRate)
	router.GET("/farms", h.ListFarms)
	router.GET("/reports", h.ListReports)
}

func registerAdminRoutes(router *gin.RouterGroup, h *AdminHandler) {
	admin := router.Group("/admin")
	{
		admin.GET("/profiles", h.ListProfiles)
		admin.POST("/profiles/:id/kyc/review", h.ReviewKYC)

		admin.GET("/investments", h.ListInvestments)

		admin.GET("/withdrawals", h.ListWithdrawals)
		admin.POST("/withdrawals/:id/approve", h.ApproveWithdrawal)
		admin.POST("/withdrawals/:id/reject", h.RejectWithdrawal)

		admin.GET("/settings", h.GetSettings)
		admin.PUT("/settings", h.UpdateSettings)

		admin.POST("/farms", h.CreateFarm)
		admin.PUT("/farms/:id", h.UpdateFarm)

		admin.POST("/reports", h.PublishReport)

		admin.POST("/distributions/run", h.RunDistribution)
	}
}
