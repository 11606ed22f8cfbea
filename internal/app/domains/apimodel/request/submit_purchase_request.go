package request

// SubmitPurchaseRequest is the submission payload for a purchase request.
type SubmitPurchaseRequest struct {
	Requester         string  `json:"requester" binding:"required" example:"jsmith"`
	Department        string  `json:"department" binding:"required" example:"Facilities"`
	Supplier          string  `json:"supplier" binding:"required" example:"OFFICE DEPOT"`
	Description       string  `json:"description" example:"Replacement desk chairs"`
	TotalAmount       float64 `json:"total_amount" binding:"required,gt=0" example:"1250.00"`
	Urgency           string  `json:"urgency" binding:"omitempty,oneof=standard expedited overnight" example:"standard"`
	DiversityCategory string  `json:"diversity_category" example:"OSB"`
}

// ApprovalRequest records a manual approve/reject decision.
type ApprovalRequest struct {
	Approver string `json:"approver" binding:"required" example:"mgarcia"`
	Decision string `json:"decision" binding:"required,oneof=approved rejected" example:"approved"`
	Notes    string `json:"notes" example:"Within department budget"`
}
