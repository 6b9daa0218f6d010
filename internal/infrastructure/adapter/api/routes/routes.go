package routes

import (
	coreport "github.com/amirhossein-jamali/stars-roulette/internal/domain/port/core"
	"github.com/amirhossein-jamali/stars-roulette/internal/domain/port/provider"
	"github.com/amirhossein-jamali/stars-roulette/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/stars-roulette/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers groups every handler the router serves
type Handlers struct {
	Account  *handler.AccountHandler
	Roulette *handler.RouletteHandler
	Internal *handler.InternalHandler
	Admin    *handler.AdminHandler
	Health   *handler.HealthHandler
}

// Guards are the authentication pieces the groups need
type Guards struct {
	Verifier      middleware.IdentityVerifier
	Users         middleware.UserEnsurer
	Admins        provider.AdminDirectory
	InternalToken string
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers, g Guards, logger coreport.Logger) {
	router.GET("/health", h.Health.Health)

	api := router.Group("/api")

	// Bot callbacks
	internal := api.Group("/internal", middleware.InternalToken(g.InternalToken))
	{
		internal.POST("/payment/confirm", h.Internal.ConfirmPayment)
		internal.POST("/referral/bind", h.Internal.BindReferral)
	}

	// Mini app
	app := api.Group("", middleware.TelegramAuth(g.Verifier, g.Users, logger))
	{
		app.GET("/me", h.Account.GetProfile)
		app.GET("/history", h.Account.History)
		app.POST("/withdraw", h.Account.Withdraw)
		app.POST("/prize/request", h.Account.RequestPrize)
		app.POST("/stars/invoice", h.Account.CreateInvoice)

		app.GET("/cases", h.Roulette.ListCases)
		app.POST("/spin", h.Roulette.Spin)
		app.POST("/sell", h.Roulette.Sell)
	}

	admin := app.Group("/admin", middleware.RequireAdmin(g.Admins))
	{
		admin.GET("/cases", h.Admin.GetCases)
		admin.PUT("/cases", h.Admin.PutCases)
		admin.GET("/prizes", h.Admin.GetPrizeWeights)
		admin.PUT("/prizes", h.Admin.PutPrizeWeights)

		admin.GET("/withdraws", h.Admin.ListWithdraws)
		admin.POST("/withdraws/:id/status", h.Admin.SetWithdrawStatus)
		admin.GET("/prize_requests", h.Admin.ListPrizeRequests)
		admin.POST("/prize_requests/:id/status", h.Admin.SetPrizeRequestStatus)

		admin.POST("/adjust", h.Admin.Adjust)
		admin.GET("/referrals/summary", h.Admin.ReferralSummary)
		admin.GET("/referrals/details", h.Admin.ReferralDetails)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, allowedOrigins []string) {
	// Logger first so the request id is set before errors are rendered
	router.Use(middleware.Logger(logger))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.CORS(allowedOrigins))
}
