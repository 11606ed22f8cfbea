package consolidation

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/isaiahriv1234/Freight-Project/internal/app/pkg/ginx"
)

// Opportunities lists consolidatable order groups per supplier.
// GET /api/v1/consolidation/opportunities?window=7
func (h *ConsolidationHandler) Opportunities(c *gin.Context) {
	window := 0
	if windowStr := c.Query("window"); windowStr != "" {
		w, err := strconv.Atoi(windowStr)
		if err != nil || w <= 0 || w > 90 {
			ginx.BadRequest(c, "window must be between 1 and 90 days")
			return
		}
		window = w
	}

	opportunities, err := h.consolidationService.FindOpportunities(c.Request.Context(), window)
	if err != nil {
		ginx.InternalError(c, err.Error())
		return
	}
	ginx.Success(c, opportunities)
}
