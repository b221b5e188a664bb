package server

import (
	"github.com/gin-gonic/gin"
	"github.com/mycloudhq/mycloud/internal/account"
	"github.com/mycloudhq/mycloud/internal/config"
	"github.com/mycloudhq/mycloud/internal/hierarchy"
	"github.com/mycloudhq/mycloud/internal/logger"
	"github.com/mycloudhq/mycloud/internal/metrics"
	"github.com/mycloudhq/mycloud/internal/plan"
	"github.com/mycloudhq/mycloud/internal/upload"
	"go.uber.org/zap"
)

// Dependencies groups the services required by the HTTP router.
type Dependencies struct {
	Config           config.Config
	Logger           *zap.Logger
	AccountService   *account.Service
	HierarchyService *hierarchy.Service
	UploadService    *upload.Service
}

// NewRouter builds a Gin engine with foundational middleware and routes.
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.Middleware())
	if deps.Logger != nil {
		router.Use(logger.RequestLogger(deps.Logger))
	}
	router.Use(metrics.Middleware())

	registerHealthRoutes(router, deps)
	metrics.Register(router, deps.Config.Metrics.PrometheusPath)

	api := router.Group("/v1")
	plan.RegisterRoutes(api)

	if deps.AccountService != nil {
		account.RegisterRoutes(api, deps.AccountService)

		protected := api.Group("/")
		protected.Use(account.SessionMiddleware(deps.AccountService))

		account.RegisterMeRoutes(protected, deps.AccountService)
		if deps.HierarchyService != nil {
			hierarchy.RegisterRoutes(protected, deps.HierarchyService)
		}
		if deps.UploadService != nil {
			upload.RegisterRoutes(protected, deps.UploadService)
		}
	}

	return router
}
