package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"kahramana-backend/internal/shared/i18n"
	"kahramana-backend/internal/shared/middleware"
	"kahramana-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	defaultLang := i18n.ParseOr(c.Config.Order.DefaultLanguage, i18n.Default)

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.ClientIP(),
		middleware.Language(defaultLang),
		middleware.Logger(),
	)

	cartMiddlewareConfig := middleware.DefaultCartMiddlewareConfig()
	if c.Config.App.Environment == "development" {
		cartMiddlewareConfig.CookieSecure = false
	}

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupMenuRoutes(v1, c)
		setupBranchRoutes(v1, c)
		setupCartRoutes(v1, c, cartMiddlewareConfig)
		setupAdminRoutes(v1, c)
	}

	return router
}

// ========================================
// MENU ROUTES
// ========================================
func setupMenuRoutes(v1 *gin.RouterGroup, c *container.Container) {
	menu := v1.Group("/menu")
	{
		menu.GET("", c.MenuHandler.GetMenu)
		menu.GET("/items/:id", c.MenuHandler.GetItem)
		menu.GET("/items/:id/inquiry", c.OrderHandler.Inquiry)
	}
}

// ========================================
// BRANCH ROUTES
// ========================================
func setupBranchRoutes(v1 *gin.RouterGroup, c *container.Container) {
	v1.GET("/branches", c.OrderHandler.ListBranches)
}

// ========================================
// CART ROUTES
// ========================================
func setupCartRoutes(v1 *gin.RouterGroup, c *container.Container, config middleware.CartMiddlewareConfig) {
	cart := v1.Group("/cart")
	cart.Use(middleware.CartSession(config))
	{
		cart.GET("", c.CartHandler.GetCart)
		cart.DELETE("", c.CartHandler.ClearCart)
		cart.POST("/items", c.CartHandler.AddItem)
		cart.PUT("/items/:line_id", c.CartHandler.UpdateQuantity)
		cart.PATCH("/items/:line_id/note", c.CartHandler.UpdateNote)
		cart.DELETE("/items/:line_id", c.CartHandler.RemoveItem)
		cart.POST("/restore", c.CartHandler.RestoreCart)
		cart.POST("/checkout", c.OrderHandler.Checkout)
	}
}

// ========================================
// ADMIN ROUTES
// ========================================
func setupAdminRoutes(v1 *gin.RouterGroup, c *container.Container) {
	admin := v1.Group("/admin")
	admin.Use(middleware.AdminMiddleware(c.Config.App.AdminKey))
	{
		admin.POST("/menu/reload", c.MenuHandler.Reload)
		admin.POST("/menu/import", c.MenuHandler.Import)
		admin.GET("/menu/export", c.MenuHandler.Export)
	}
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status := "ok"
		services := gin.H{}

		check := func(name string, fn func(context.Context) error) {
			if err := fn(ctx); err != nil {
				services[name] = "error: " + err.Error()
				status = "degraded"
				return
			}
			services[name] = "ok"
		}

		check("cache", appCtx.Cache.Ping)
		if appCtx.DB != nil {
			check("database", appCtx.DB.Ping)
		}
		if appCtx.Storage != nil {
			check("storage", appCtx.Storage.HealthCheck)
		}

		if _, err := appCtx.MenuService.Current(); err != nil {
			services["menu"] = "not loaded"
			status = "degraded"
		} else {
			services["menu"] = "ok"
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    status,
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
			"services":  services,
		})
	}
}
