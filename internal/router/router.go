package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sirajbinsyed/silverstar-server-local/internal/auth"
	"github.com/sirajbinsyed/silverstar-server-local/internal/category"
	"github.com/sirajbinsyed/silverstar-server-local/internal/menu"
	"github.com/sirajbinsyed/silverstar-server-local/internal/metrics"
	"github.com/sirajbinsyed/silverstar-server-local/internal/middleware"
	"github.com/sirajbinsyed/silverstar-server-local/internal/restaurant"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Deps struct {
	Log            *zap.Logger
	Metrics        *metrics.Metrics
	Tokens         *auth.TokenManager
	AllowedOrigins []string
	Store          Pinger

	Auth        *auth.Handler
	Categories  *category.Handler
	Menu        *menu.Handler
	Restaurants *restaurant.Handler
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.MaxMultipartMemory = menu.MaxImageSize + 1<<20

	r.Use(
		middleware.RequestLogger(d.Log),
		gin.Recovery(),
		cors.New(cors.Config{
			AllowOrigins:     d.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
	)
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware())
		r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		if d.Store != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := d.Store.Ping(ctx); err != nil {
				d.Log.Warn("health check failed", zap.Error(err))
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	requireAuth := middleware.AuthMiddleware(d.Tokens)
	adminOnly := []gin.HandlerFunc{requireAuth, middleware.RequireRole(auth.RoleAdmin)}

	// ───────────────────────── AUTH ─────────────────────────
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", d.Auth.Login)
		authGroup.GET("/me", requireAuth, d.Auth.Me)
		authGroup.PUT("/change-password", requireAuth, d.Auth.ChangePassword)
	}

	// ───────────────────────── CATEGORIES ─────────────────────────
	categories := r.Group("/categories")
	{
		categories.GET("", d.Categories.List)
		categories.GET("/:id", d.Categories.Get)

		admin := categories.Group("", adminOnly...)
		admin.POST("", d.Categories.Create)
		admin.PUT("/:id", d.Categories.Update)
		admin.DELETE("/:id", d.Categories.Delete)
	}

	// ───────────────────────── MENU ─────────────────────────
	menus := r.Group("/menu")
	{
		menus.GET("", d.Menu.List)
		menus.GET("/category/:categoryId", d.Menu.ListByCategory)
		menus.GET("/:id", d.Menu.Get)

		admin := menus.Group("", adminOnly...)
		admin.POST("", d.Menu.Create)
		admin.PUT("/:id", d.Menu.Update)
		admin.DELETE("/:id", d.Menu.Delete)
	}

	// ───────────────────────── RESTAURANTS ─────────────────────────
	restaurants := r.Group("/restaurants")
	{
		restaurants.GET("", d.Restaurants.List)
		restaurants.GET("/:id", d.Restaurants.Get)

		admin := restaurants.Group("", adminOnly...)
		admin.POST("", d.Restaurants.Create)
		admin.PUT("/:id", d.Restaurants.Update)
		admin.DELETE("/:id", d.Restaurants.Delete)
	}

	return r
}
