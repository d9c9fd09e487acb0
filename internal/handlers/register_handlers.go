package handlers

import (
	portssvc "github.com/fxops/exchange_backoffice/internal/core/ports/services"
	"github.com/fxops/exchange_backoffice/internal/middleware"
	"github.com/fxops/exchange_backoffice/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container interfaces.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	registerUserRoutes(r, cfg, services.User)
	registerExchangeRoutes(r, cfg, services)
	setupSwaggerRoutes(r, cfg)
}

// registerUserRoutes sets up registration, login and user management.
func registerUserRoutes(r *gin.Engine, cfg *config.Config, userService portssvc.UserSvcFacade) {
	h := newUserHandler(userService, cfg)

	// 5 login attempts per minute per IP
	rate, _ := limiter.NewRateFromFormatted("5-M")
	ipLimiter := limiter.New(memory.NewStore(), rate)

	public := r.Group("/users")
	{
		public.POST("", h.register)
		public.POST("/login", middleware.RateLimit(ipLimiter), h.login)
	}

	authed := r.Group("/users", middleware.AuthMiddleware(cfg.JWTSecret))
	{
		authed.GET("/me", h.getMe)
		authed.GET("/:id", h.getUser)
		authed.PUT("/:id", h.updateUser)
	}

	admin := r.Group("/users", middleware.AuthMiddleware(cfg.JWTSecret), middleware.AdminOnly())
	{
		admin.GET("", h.listUsers)
		admin.DELETE("/:id", h.deleteUser)
	}
}

// registerExchangeRoutes sets up the currency registry, rate ledger and
// conversion endpoints. Listing active currencies and calculating are
// public; everything else requires an admin token.
func registerExchangeRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	ch := newCurrencyHandler(services.Currency)
	rh := newExchangeRateHandler(services.ExchangeRate)
	xh := newConversionHandler(services.Conversion)

	public := r.Group("/exchange")
	{
		public.GET("/currencies", ch.listActiveCurrencies)
		public.GET("/currencies/:id", ch.getCurrency)
		public.POST("/calculate", xh.calculate)
	}

	admin := r.Group("/exchange", middleware.AuthMiddleware(cfg.JWTSecret), middleware.AdminOnly())
	{
		admin.POST("/currencies", ch.createCurrency)
		admin.GET("/admin/currencies", ch.listAllCurrencies)
		admin.PATCH("/currencies/:id", ch.updateCurrency)
		admin.DELETE("/currencies/:id", ch.deleteCurrency)

		admin.POST("/rates", rh.createRate)
		admin.GET("/rates", rh.listActiveRates)
		admin.GET("/admin/rates", rh.listAllRates)
		admin.GET("/rates/:id", rh.getRate)
		admin.PATCH("/rates/:id", rh.updateRate)
		admin.PATCH("/rates/currency/:currencyId", rh.updateRateByCurrency)
		admin.DELETE("/rates/:id", rh.deleteRate)
	}
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
