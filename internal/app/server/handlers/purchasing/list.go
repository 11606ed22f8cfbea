package purchasing

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/isaiahriv1234/Freight-Project/internal/app/domains/apimodel/response"
	"github.com/isaiahriv1234/Freight-Project/internal/app/domains/entity/etrequest"
	"github.com/isaiahriv1234/Freight-Project/internal/app/pkg/ginx"
)

// statusAliases maps friendly query values onto stored statuses.
var statusAliases = map[string]etrequest.RequestStatus{
	"pending":  etrequest.StatusPendingApproval,
	"approved": etrequest.StatusApproved,
	"rejected": etrequest.StatusRejected,
	"failed":   etrequest.StatusFailed,
}

// List returns purchase requests, optionally filtered by status.
// GET /api/v1/purchase-requests?status=pending&page=1&limit=20
func (h *PurchasingHandler) List(c *gin.Context) {
	var status etrequest.RequestStatus
	if statusStr := c.Query("status"); statusStr != "" {
		if alias, ok := statusAliases[strings.ToLower(statusStr)]; ok {
			status = alias
		} else {
			status = etrequest.RequestStatus(strings.ToUpper(statusStr))
		}
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	requests, total, err := h.purchasingService.ListRequests(c.Request.Context(), status, page, limit)
	if err != nil {
		ginx.InternalError(c, err.Error())
		return
	}

	ginx.Success(c, response.FromRequestEntities(requests, total, page, limit))
}
