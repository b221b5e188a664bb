package plan

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the plan catalog endpoint.
func RegisterRoutes(group *gin.RouterGroup) {
	group.GET("/plans", listPlans)
}

func listPlans(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"plans": Catalog()})
}
