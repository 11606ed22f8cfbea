package shipping

import (
	"github.com/gin-gonic/gin"

	"github.com/isaiahriv1234/Freight-Project/internal/app/domains/apimodel/request"
	"github.com/isaiahriv1234/Freight-Project/internal/app/pkg/ginx"
)

// Recommend ranks carriers for an order.
// POST /api/v1/shipping/recommend
func (h *ShippingHandler) Recommend(c *gin.Context) {
	var req request.RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	recommendations, err := h.shippingService.RecommendCarriers(c.Request.Context(), req.OrderValue, req.WeightCategory, req.Urgency)
	if err != nil {
		ginx.InternalError(c, err.Error())
		return
	}
	ginx.Success(c, recommendations)
}
