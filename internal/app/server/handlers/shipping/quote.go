package shipping

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/isaiahriv1234/Freight-Project/internal/app/domains/apimodel/request"
	"github.com/isaiahriv1234/Freight-Project/internal/app/domains/services/svshipping"
	"github.com/isaiahriv1234/Freight-Project/internal/app/pkg/errorx"
	"github.com/isaiahriv1234/Freight-Project/internal/app/pkg/ginx"
)

// Quote prices a shipment.
// POST /api/v1/shipping/quote
func (h *ShippingHandler) Quote(c *gin.Context) {
	var req request.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	quote, err := h.shippingService.GetQuote(c.Request.Context(), svshipping.QuoteInput{
		PickupLocation:  req.PickupLocation,
		DropoffLocation: req.DropoffLocation,
		Items:           req.ToQuoteItems(),
		Insurance:       req.Insurance,
	})
	if err != nil {
		var be *errorx.BusinessError
		if errors.As(err, &be) {
			ginx.Error(c, be.Code, be.Message)
			return
		}
		ginx.InternalError(c, err.Error())
		return
	}
	ginx.Success(c, quote)
}
