package purchasing

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/isaiahriv1234/Freight-Project/internal/app/domains/apimodel/request"
	"github.com/isaiahriv1234/Freight-Project/internal/app/domains/apimodel/response"
	"github.com/isaiahriv1234/Freight-Project/internal/app/pkg/errorx"
	"github.com/isaiahriv1234/Freight-Project/internal/app/pkg/ginx"
)

// Approval records a manual approve/reject decision.
// POST /api/v1/purchase-requests/:id/approval
func (h *PurchasingHandler) Approval(c *gin.Context) {
	requestID := c.Param("id")

	var req request.ApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	pr, err := h.purchasingService.DecideApproval(c.Request.Context(), requestID, req.Approver, req.Decision, req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, errorx.ErrRequestNotFound):
			ginx.NotFound(c, "purchase request not found")
		case errors.Is(err, errorx.ErrApprovalNotAllowed):
			ginx.BadRequest(c, err.Error())
		default:
			ginx.InternalError(c, err.Error())
		}
		return
	}

	ginx.Success(c, response.FromRequestEntity(pr))
}
