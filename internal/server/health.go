package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func registerHealthRoutes(router *gin.Engine, deps Dependencies) {
	router.GET("/health/live", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// All state is process memory, so readiness only checks that the
	// services were wired.
	router.GET("/health/ready", func(c *gin.Context) {
		if deps.AccountService == nil || deps.HierarchyService == nil || deps.UploadService == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
