package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	googleauth "schoolmatch-backend/internal/auth"
	"schoolmatch-backend/internal/documents"
	"schoolmatch-backend/internal/match"
	"schoolmatch-backend/internal/profile"
	"schoolmatch-backend/internal/schools"
	"schoolmatch-backend/internal/services/health"
	"schoolmatch-backend/internal/shared/config"
	"schoolmatch-backend/internal/shared/metrics"
	"schoolmatch-backend/internal/shared/server/middleware"
	"schoolmatch-backend/internal/shared/server/respond"
	"schoolmatch-backend/internal/uploads"
)

// RouterDeps carries the wired handlers the router mounts.
type RouterDeps struct {
	Config          config.Config
	DocumentHandler *documents.Handler
	ProfileHandler  *profile.Handler
	MatchHandler    *match.Handler
	SchoolsHandler  *schools.Handler
	GoogleAuth      *googleauth.GoogleService
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Auth(deps.Config.Env),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				"RECOMMEND": {Rate: 1, Burst: 10},
			},
			GroupFor: func(c *gin.Context) string {
				if c.Request.Method == http.MethodPost && c.FullPath() == "/api/v1/recommendations" {
					return "RECOMMEND"
				}
				return ""
			},
		}),
	)

	r.GET("/metrics", metrics.Handler())

	healthSvc := health.NewService()

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, healthSvc.Status())
	})
	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	registerMeRoutes(api)
	if deps.DocumentHandler != nil {
		deps.DocumentHandler.RegisterRoutes(api)
	}
	if deps.ProfileHandler != nil {
		deps.ProfileHandler.RegisterRoutes(api)
	}
	if deps.MatchHandler != nil {
		deps.MatchHandler.RegisterRoutes(api)
	}
	if deps.SchoolsHandler != nil {
		deps.SchoolsHandler.RegisterRoutes(api)
	}
	uploads.RegisterRoutes(api)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
