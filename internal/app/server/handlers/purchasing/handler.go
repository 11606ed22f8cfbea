package purchasing

import "github.com/isaiahriv1234/Freight-Project/internal/app/domains/services/svpurchasing"

// PurchasingHandler serves the centralized purchase-request endpoints.
type PurchasingHandler struct {
	purchasingService *svpurchasing.PurchasingService
}

func NewPurchasingHandler(purchasingService *svpurchasing.PurchasingService) *PurchasingHandler {
	return &PurchasingHandler{
		purchasingService: purchasingService,
	}
}
