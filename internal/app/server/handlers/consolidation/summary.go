package consolidation

import (
	"github.com/gin-gonic/gin"

	"github.com/isaiahriv1234/Freight-Project/internal/app/pkg/ginx"
)

// Summary rolls up all consolidation opportunities.
// GET /api/v1/consolidation/summary
func (h *ConsolidationHandler) Summary(c *gin.Context) {
	summary, err := h.consolidationService.GetSummary(c.Request.Context())
	if err != nil {
		ginx.InternalError(c, err.Error())
		return
	}
	ginx.Success(c, summary)
}
