package analytics

import "github.com/isaiahriv1234/Freight-Project/internal/app/domains/services/svanalytics"

// AnalyticsHandler serves the procurement analytics endpoints.
type AnalyticsHandler struct {
	analyticsService *svanalytics.AnalyticsService
}

func NewAnalyticsHandler(analyticsService *svanalytics.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}
