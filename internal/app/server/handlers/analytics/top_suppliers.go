package analytics

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/isaiahriv1234/Freight-Project/internal/app/pkg/ginx"
)

// TopSuppliers returns the top-N suppliers by total spend.
// GET /api/v1/analytics/top-suppliers?limit=5
func (h *AnalyticsHandler) TopSuppliers(c *gin.Context) {
	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil || n <= 0 {
			ginx.BadRequest(c, "limit must be a positive integer")
			return
		}
		limit = n
	}

	suppliers, err := h.analyticsService.GetTopSuppliers(c.Request.Context(), limit)
	if err != nil {
		ginx.InternalError(c, err.Error())
		return
	}
	ginx.Success(c, suppliers)
}
