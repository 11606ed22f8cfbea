package diversity

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/isaiahriv1234/Freight-Project/internal/app/pkg/ginx"
)

// Goals returns diversity goal tracking against a target percentage.
// GET /api/v1/diversity/goals?target=25
func (h *DiversityHandler) Goals(c *gin.Context) {
	target := 0.0
	if targetStr := c.Query("target"); targetStr != "" {
		t, err := strconv.ParseFloat(targetStr, 64)
		if err != nil || t <= 0 || t > 100 {
			ginx.BadRequest(c, "target must be a percentage between 0 and 100")
			return
		}
		target = t
	}

	tracking, err := h.diversityService.TrackGoals(c.Request.Context(), target)
	if err != nil {
		ginx.InternalError(c, err.Error())
		return
	}
	ginx.Success(c, tracking)
}
