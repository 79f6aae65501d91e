package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	adminimages "storefront-backend/internal/admin/images"
	googleauth "storefront-backend/internal/auth"
	"storefront-backend/internal/catalog"
	"storefront-backend/internal/checkout"
	"storefront-backend/internal/profiles"
	"storefront-backend/internal/recommend"
	"storefront-backend/internal/services/health"
	"storefront-backend/internal/shared/config"
	"storefront-backend/internal/shared/metrics"
	"storefront-backend/internal/shared/server/middleware"
	"storefront-backend/internal/users"
	"storefront-backend/internal/visualsearch"
)

// RouterDeps carries everything the router wires up.
type RouterDeps struct {
	Config config.Config

	CatalogHandler      *catalog.Handler
	RecommendHandler    *recommend.Handler
	VisualSearchHandler *visualsearch.Handler
	CheckoutHandler     *checkout.Handler
	ProfilesHandler     *profiles.Handler
	UsersHandler        *users.Handler
	AdminImagesHandler  *adminimages.Handler
	GoogleAuth          *googleauth.GoogleService
	Health              *health.Service
}

// NewRouter builds the gin engine with the full middleware chain and all
// API routes registered under /api/v1.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	engine.GET("/metrics", metrics.Handler())

	api := engine.Group("/api/v1")
	api.Use(middleware.Auth(deps.Config.Env))
	api.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			middleware.GroupVisualSearch: {Rate: 0.5, Burst: 3},
			middleware.GroupCheckout:     {Rate: 1, Burst: 5},
		},
		GroupFor: func(c *gin.Context) string {
			switch {
			case c.FullPath() == "/api/v1/visual-search":
				return middleware.GroupVisualSearch
			case c.FullPath() == "/api/v1/checkout/session":
				return middleware.GroupCheckout
			default:
				return ""
			}
		},
	}))

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, deps.Health.Status(c.Request.Context()))
	})

	if deps.CatalogHandler != nil {
		deps.CatalogHandler.Register(api)
	}
	if deps.RecommendHandler != nil {
		deps.RecommendHandler.Register(api)
	}
	if deps.VisualSearchHandler != nil {
		deps.VisualSearchHandler.Register(api)
	}
	if deps.CheckoutHandler != nil {
		deps.CheckoutHandler.Register(api)
	}
	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}

	authed := api.Group("")
	authed.Use(middleware.RequireLogin())
	if deps.ProfilesHandler != nil {
		deps.ProfilesHandler.Register(authed)
	}
	if deps.UsersHandler != nil {
		deps.UsersHandler.Register(authed)
	}

	admin := api.Group("")
	admin.Use(middleware.RequireLogin(), middleware.RequireAdmin())
	if deps.AdminImagesHandler != nil {
		deps.AdminImagesHandler.Register(admin)
	}

	return engine
}

// Addr returns a normalized listen address for the given port.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
