package consolidation

import "github.com/isaiahriv1234/Freight-Project/internal/app/domains/services/svconsolidation"

// ConsolidationHandler serves the order consolidation endpoints.
type ConsolidationHandler struct {
	consolidationService *svconsolidation.ConsolidationService
}

func NewConsolidationHandler(consolidationService *svconsolidation.ConsolidationService) *ConsolidationHandler {
	return &ConsolidationHandler{
		consolidationService: consolidationService,
	}
}
