// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"strconv"

	"mealplanner/config"
	apimiddleware "mealplanner/internal/delivery/api/middleware"
	"mealplanner/internal/delivery/api/router/handler"
	"mealplanner/internal/delivery/middleware"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// receiptBodyOverhead leaves room for multipart framing around a maximum size receipt.
const receiptBodyOverhead = 64 << 10

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	MealPlanHandler *handler.MealPlanHandler
	ShoppingHandler *handler.ShoppingHandler
	SnackHandler    *handler.SnackHandler
	HealthHandler   *handler.HealthHandler
	AuthMiddleware  *apimiddleware.AuthMiddleware
	RateLimiter     *middleware.RateLimiter
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	mealPlanHandler *handler.MealPlanHandler
	shoppingHandler *handler.ShoppingHandler
	snackHandler    *handler.SnackHandler
	healthHandler   *handler.HealthHandler
	authMiddleware  *apimiddleware.AuthMiddleware
	rateLimiter     *middleware.RateLimiter
	config          *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		mealPlanHandler: params.MealPlanHandler,
		shoppingHandler: params.ShoppingHandler,
		snackHandler:    params.SnackHandler,
		healthHandler:   params.HealthHandler,
		authMiddleware:  params.AuthMiddleware,
		rateLimiter:     params.RateLimiter,
		config:          params.Config,
	}
}

// ReceiptBodyLimit is the request size allowed on the receipt upload route.
func ReceiptBodyLimit(cfg *config.Config) string {
	var maxBytes int64
	if cfg.Receipts != nil {
		maxBytes = cfg.Receipts.MaxBytes
	}

	return strconv.FormatInt(maxBytes+receiptBodyOverhead, 10)
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.Health)
	e.GET("/metrics", r.healthHandler.Metrics)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register, r.rateLimiter.Limit)
		authGroup.POST("/login", r.authHandler.Login, r.rateLimiter.Limit)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/user", r.authHandler.CurrentUser, r.authMiddleware.Authenticate)
	}

	mealPlanGroup := e.Group("/mealplan")
	mealPlanGroup.Use(r.authMiddleware.Authenticate)
	{
		mealPlanGroup.GET("", r.mealPlanHandler.List)
		mealPlanGroup.POST("", r.mealPlanHandler.Create)
		mealPlanGroup.GET("/date/:date", r.mealPlanHandler.ByDate)
		mealPlanGroup.GET("/range", r.mealPlanHandler.ByRange)
		mealPlanGroup.POST("/sessions/:sessionId/menus", r.mealPlanHandler.AddMenu)
		mealPlanGroup.GET("/:id", r.mealPlanHandler.Get)
		mealPlanGroup.PUT("/:id", r.mealPlanHandler.Update)
		mealPlanGroup.DELETE("/:id", r.mealPlanHandler.Delete)
		mealPlanGroup.POST("/:id/sessions", r.mealPlanHandler.AddSession)
	}

	shoppingGroup := e.Group("/shopping")
	shoppingGroup.Use(r.authMiddleware.Authenticate)
	{
		shoppingGroup.GET("", r.shoppingHandler.List)
		shoppingGroup.POST("", r.shoppingHandler.Create)
		shoppingGroup.PUT("/details/:detailId", r.shoppingHandler.UpdateDetail)
		shoppingGroup.DELETE("/details/:detailId", r.shoppingHandler.DeleteDetail)
		shoppingGroup.GET("/:id", r.shoppingHandler.Get)
		shoppingGroup.PUT("/:id", r.shoppingHandler.Update)
		shoppingGroup.DELETE("/:id", r.shoppingHandler.Delete)
		shoppingGroup.GET("/:id/details", r.shoppingHandler.ListDetails)
		shoppingGroup.POST("/:id/details", r.shoppingHandler.CreateDetails)
		shoppingGroup.POST("/:id/recompute", r.shoppingHandler.RecomputeTotal)
		shoppingGroup.PUT("/:id/receipt", r.shoppingHandler.UploadReceipt,
			echomiddleware.BodyLimit(ReceiptBodyLimit(r.config)))
		shoppingGroup.GET("/:id/receipt", r.shoppingHandler.DownloadReceipt)
	}

	snackGroup := e.Group("/jajanlog")
	snackGroup.Use(r.authMiddleware.Authenticate)
	{
		snackGroup.GET("", r.snackHandler.List)
		snackGroup.POST("", r.snackHandler.Create)
		snackGroup.GET("/:id", r.snackHandler.Get)
		snackGroup.PUT("/:id", r.snackHandler.Update)
		snackGroup.DELETE("/:id", r.snackHandler.Delete)
	}
}
