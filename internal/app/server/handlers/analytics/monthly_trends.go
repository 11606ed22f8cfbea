package analytics

import (
	"github.com/gin-gonic/gin"

	"github.com/isaiahriv1234/Freight-Project/internal/app/pkg/ginx"
)

// MonthlyTrends returns spend grouped by calendar month.
// GET /api/v1/analytics/monthly-trends
func (h *AnalyticsHandler) MonthlyTrends(c *gin.Context) {
	trends, err := h.analyticsService.GetMonthlyTrends(c.Request.Context())
	if err != nil {
		ginx.InternalError(c, err.Error())
		return
	}
	ginx.Success(c, trends)
}
