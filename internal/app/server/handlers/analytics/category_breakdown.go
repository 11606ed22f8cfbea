package analytics

import (
	"github.com/gin-gonic/gin"

	"github.com/isaiahriv1234/Freight-Project/internal/app/pkg/ginx"
)

// CategoryBreakdown returns spend grouped by order type.
// GET /api/v1/analytics/category-breakdown
func (h *AnalyticsHandler) CategoryBreakdown(c *gin.Context) {
	breakdown, err := h.analyticsService.GetCategoryBreakdown(c.Request.Context())
	if err != nil {
		ginx.InternalError(c, err.Error())
		return
	}
	ginx.Success(c, breakdown)
}
