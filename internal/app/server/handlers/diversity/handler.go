package diversity

import "github.com/isaiahriv1234/Freight-Project/internal/app/domains/services/svdiversity"

// DiversityHandler serves the supplier diversity endpoints.
type DiversityHandler struct {
	diversityService *svdiversity.DiversityService
}

func NewDiversityHandler(diversityService *svdiversity.DiversityService) *DiversityHandler {
	return &DiversityHandler{
		diversityService: diversityService,
	}
}
