package shipping

import (
	"github.com/gin-gonic/gin"

	"github.com/isaiahriv1234/Freight-Project/internal/app/pkg/ginx"
)

// Performance reports per-carrier SLA performance.
// GET /api/v1/shipping/performance
func (h *ShippingHandler) Performance(c *gin.Context) {
	summary, err := h.shippingService.GetPerformance(c.Request.Context())
	if err != nil {
		ginx.InternalError(c, err.Error())
		return
	}
	ginx.Success(c, summary)
}
