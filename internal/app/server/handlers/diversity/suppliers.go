package diversity

import (
	"github.com/gin-gonic/gin"

	"github.com/isaiahriv1234/Freight-Project/internal/app/pkg/ginx"
)

// Suppliers returns diverse suppliers ranked by spend.
// GET /api/v1/diversity/suppliers
func (h *DiversityHandler) Suppliers(c *gin.Context) {
	suppliers, err := h.diversityService.GetDiverseSuppliers(c.Request.Context())
	if err != nil {
		ginx.InternalError(c, err.Error())
		return
	}
	ginx.Success(c, suppliers)
}
