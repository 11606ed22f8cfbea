package model

// Action types recognized by the worker.
const (
	ActionCarrierOptimize = "carrier_optimize"
)

// OptimizeJob is the queue envelope for a carrier-optimization job.
type OptimizeJob struct {
	Payload OptimizePayload `json:"payload"`
}

// OptimizePayload wraps the job data.
type OptimizePayload struct {
	Data OptimizeData `json:"data"`
}

// OptimizeData carries routing metadata plus the business payload.
type OptimizeData struct {
	RequestID  string               `json:"request_id"`  // trace id for the whole chain
	ActionType string               `json:"action_type"` // carrier_optimize
	ID         string               `json:"id"`          // purchase request id
	Data       OptimizeBusinessData `json:"data"`
}

// OptimizeBusinessData is everything the worker needs without touching
// the purchase_requests table first.
type OptimizeBusinessData struct {
	PurchaseRequestID string  `json:"purchase_request_id"`
	Supplier          string  `json:"supplier"`
	Department        string  `json:"department"`
	TotalAmount       float64 `json:"total_amount"`
	Urgency           string  `json:"urgency"`
	WeightCategory    string  `json:"weight_category,omitempty"`
}
