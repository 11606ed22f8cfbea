package purchasing

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/isaiahriv1234/Freight-Project/internal/app/domains/apimodel/request"
	"github.com/isaiahriv1234/Freight-Project/internal/app/domains/apimodel/response"
	"github.com/isaiahriv1234/Freight-Project/internal/app/domains/entity/etrequest"
	"github.com/isaiahriv1234/Freight-Project/internal/app/domains/services/svpurchasing"
	"github.com/isaiahriv1234/Freight-Project/internal/app/pkg/ginx"
)

// Submit files a purchase request and optionally smart-waits for the
// carrier optimization.
// POST /api/v1/purchase-requests?wait=10
func (h *PurchasingHandler) Submit(c *gin.Context) {
	waitSeconds := 0
	if waitStr := c.Query("wait"); waitStr != "" {
		if w, err := strconv.Atoi(waitStr); err == nil && w > 0 {
			waitSeconds = w
		}
	}

	var req request.SubmitPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	pr, err := h.purchasingService.SubmitRequest(c.Request.Context(), svpurchasing.SubmitInput{
		Requester:         req.Requester,
		Department:        req.Department,
		Supplier:          req.Supplier,
		Description:       req.Description,
		TotalAmount:       req.TotalAmount,
		Urgency:           req.Urgency,
		DiversityCategory: req.DiversityCategory,
	}, waitSeconds)
	if err != nil {
		ginx.InternalError(c, err.Error())
		return
	}

	// Still optimizing after the wait: hand back a poll URL instead of
	// the settled request.
	if pr.Status == etrequest.StatusPendingOptimization {
		pollURL := fmt.Sprintf("/api/v1/purchase-requests/%s", pr.ID)
		ginx.Processing(c, pr.ID, pollURL)
		return
	}

	ginx.Success(c, response.FromRequestEntity(pr))
}
