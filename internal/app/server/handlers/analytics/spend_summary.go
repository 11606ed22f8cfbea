package analytics

import (
	"github.com/gin-gonic/gin"

	"github.com/isaiahriv1234/Freight-Project/internal/app/pkg/ginx"
)

// SpendSummary returns the dataset-wide spend totals.
// GET /api/v1/analytics/spend-summary
func (h *AnalyticsHandler) SpendSummary(c *gin.Context) {
	summary, err := h.analyticsService.GetSpendSummary(c.Request.Context())
	if err != nil {
		ginx.InternalError(c, err.Error())
		return
	}
	ginx.Success(c, summary)
}
