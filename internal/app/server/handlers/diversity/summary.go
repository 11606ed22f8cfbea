package diversity

import (
	"github.com/gin-gonic/gin"

	"github.com/isaiahriv1234/Freight-Project/internal/app/pkg/ginx"
)

// Summary returns spend and order aggregates per diversity category.
// GET /api/v1/diversity/summary
func (h *DiversityHandler) Summary(c *gin.Context) {
	summary, err := h.diversityService.GetSummary(c.Request.Context())
	if err != nil {
		ginx.InternalError(c, err.Error())
		return
	}
	ginx.Success(c, summary)
}
