package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	ord "github.com/mardiana36/anemone-outlet-system/internal/order"
)

// @Summary  Dashboard summary
// @Tags     dashboard
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} map[string]any
// @Failure  403 {object} map[string]any
// @Router   /dashboard/summary [get]
func dashboardSummaryHandler(repo ord.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := repo.Summary(c.Request.Context())
		if err != nil {
			log.Printf("[dashboard] summary failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load summary"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": s})
	}
}
