package purchasing

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/isaiahriv1234/Freight-Project/internal/app/domains/apimodel/response"
	"github.com/isaiahriv1234/Freight-Project/internal/app/pkg/errorx"
	"github.com/isaiahriv1234/Freight-Project/internal/app/pkg/ginx"
)

// Get returns one purchase request.
// GET /api/v1/purchase-requests/:id
func (h *PurchasingHandler) Get(c *gin.Context) {
	requestID := c.Param("id")

	pr, err := h.purchasingService.GetRequest(c.Request.Context(), requestID)
	if err != nil {
		if errors.Is(err, errorx.ErrRequestNotFound) {
			ginx.NotFound(c, "purchase request not found")
			return
		}
		ginx.InternalError(c, err.Error())
		return
	}

	ginx.Success(c, response.FromRequestEntity(pr))
}
