package v1

import (
	"net/http"
	"time"

	"profilecard-backend/config"
	"profilecard-backend/internal/delivery/http/middleware"
	"profilecard-backend/internal/delivery/http/response"
	"profilecard-backend/internal/domain"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ProfileUC    domain.ProfileUsecase
	ViewUC       domain.ViewUsecase
	SuggestionUC domain.SuggestionUsecase
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	v1 := r.Group("/v1")
	v1.Use(middleware.RateLimitMiddleware(middleware.DefaultRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)))

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// All routes are public: profiles are addressed by username, and the view
	// endpoint is the shareable read surface.
	NewProfileHandler(v1, deps.ProfileUC, deps.ViewUC)

	suggestLimiter := middleware.RateLimitMiddleware(middleware.SuggestRateLimitConfig(deps.Config.RateLimitSuggestThreshold, window))
	NewSuggestionHandler(v1, deps.SuggestionUC, suggestLimiter)

	return r
}
