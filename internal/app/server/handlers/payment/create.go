package payment

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/isaiahriv1234/Freight-Project/internal/app/domains/apimodel/request"
	"github.com/isaiahriv1234/Freight-Project/internal/app/domains/services/svshipment"
	"github.com/isaiahriv1234/Freight-Project/internal/app/domains/services/svshipping"
	"github.com/isaiahriv1234/Freight-Project/internal/app/pkg/errorx"
	"github.com/isaiahriv1234/Freight-Project/internal/app/pkg/ginx"
)

// Create validates the payment and books the shipment. The quote is
// re-priced server side so the charged amount is never client supplied.
// POST /api/v1/payments
func (h *PaymentHandler) Create(c *gin.Context) {
	var req request.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	quote, err := h.shippingService.GetQuote(c.Request.Context(), svshipping.QuoteInput{
		PickupLocation:  req.Quote.PickupLocation,
		DropoffLocation: req.Quote.DropoffLocation,
		Items:           req.Quote.ToQuoteItems(),
		Insurance:       req.Quote.Insurance,
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

	result, err := h.shipmentService.ProcessPayment(c.Request.Context(), svshipment.PaymentInput{
		Method:         req.Method,
		CardNumber:     req.CardNumber,
		CardExpiration: req.CardExpiration,
		Carrier:        req.Carrier,
		Quote:          quote,
	})
	if err != nil {
		if errors.Is(err, errorx.ErrInvalidPayment) {
			ginx.BadRequest(c, err.Error())
			return
		}
		ginx.InternalError(c, err.Error())
		return
	}

	ginx.Success(c, result)
}
