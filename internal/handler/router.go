package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"grocery-admin/internal/handler/api"
	"grocery-admin/internal/handler/middleware"
	"grocery-admin/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	Auth   *api.AuthHandler
	Offer  *api.OfferHandler
	Payout *api.PayoutHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		dashboard := apiGroup.Group("")
		dashboard.Use(authMiddleware.RequireAuth(), authMiddleware.RequireDashboard())

		offers := dashboard.Group("/offers")
		{
			addRoutes(offers, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Offer.List},
				{Method: http.MethodPost, Path: "", Handler: h.Offer.Create},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Offer.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Offer.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Offer.Delete},
				{Method: http.MethodPatch, Path: "/:id/active", Handler: h.Offer.SetActive},
			})
		}

		payouts := dashboard.Group("/payouts")
		{
			addRoutes(payouts, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Payout.List},
				{Method: http.MethodPost, Path: "", Handler: h.Payout.Create},
				{Method: http.MethodGet, Path: "/summary", Handler: h.Payout.Summary},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Payout.Get},
				{Method: http.MethodPost, Path: "/:id/approve", Handler: h.Payout.Approve},
				{Method: http.MethodPost, Path: "/:id/reject", Handler: h.Payout.Reject},
				{Method: http.MethodPost, Path: "/:id/processing", Handler: h.Payout.MarkProcessing},
				{Method: http.MethodPost, Path: "/:id/transfer", Handler: h.Payout.InitiateTransfer},
				{Method: http.MethodPost, Path: "/:id/complete", Handler: h.Payout.Complete},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		g.Handle(r.Method, r.Path, r.Handler)
	}
}
