package shipping

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/isaiahriv1234/Freight-Project/internal/app/domains/apimodel/request"
	"github.com/isaiahriv1234/Freight-Project/internal/app/pkg/errorx"
	"github.com/isaiahriv1234/Freight-Project/internal/app/pkg/ginx"
)

// Track returns a shipment's event history.
// POST /api/v1/shipping/track
func (h *ShippingHandler) Track(c *gin.Context) {
	var req request.TrackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	info, err := h.shipmentService.TrackShipment(c.Request.Context(), req.TrackingNumber)
	if err != nil {
		var be *errorx.BusinessError
		if errors.As(err, &be) {
			ginx.Error(c, be.Code, be.Message)
			return
		}
		ginx.InternalError(c, err.Error())
		return
	}
	ginx.Success(c, info)
}
