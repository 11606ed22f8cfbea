package model

// Optimization statuses published on the result channel.
const (
	OptimizeStatusSuccess = "SUCCESS"
	OptimizeStatusFailed  = "FAILED"
)

// OptimizeResultMessage is what the worker publishes to the Redis result
// channel and what the API's smart wait decodes.
type OptimizeResultMessage struct {
	RequestID          string  `json:"request_id"`
	Status             string  `json:"status"`
	RecommendedCarrier string  `json:"recommended_carrier,omitempty"`
	EstimatedShipping  float64 `json:"estimated_shipping,omitempty"`
	EstimatedDays      int     `json:"estimated_days,omitempty"`
	Confidence         int     `json:"confidence,omitempty"`
	Reasoning          string  `json:"reasoning,omitempty"`
	Error              string  `json:"error,omitempty"`
}
