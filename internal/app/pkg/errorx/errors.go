package errorx

import "errors"

// Business errors surfaced by the services.
var (
	ErrRequestNotFound    = errors.New("purchase request not found")
	ErrShipmentNotFound   = errors.New("shipment not found")
	ErrDuplicateRequest   = errors.New("duplicate purchase request")
	ErrInvalidPayment     = errors.New("invalid payment information")
	ErrOptimizeTimeout    = errors.New("carrier optimization timeout")
	ErrEmptyDataset       = errors.New("procurement dataset is empty")
	ErrAlreadyDecided     = errors.New("purchase request already decided")
	ErrApprovalNotAllowed = errors.New("approval decision not allowed for this request")
)

// BusinessError carries a code alongside the message.
type BusinessError struct {
	Code    int
	Message string
	Details []ErrorDetail
}

// ErrorDetail points at the offending field.
type ErrorDetail struct {
	Path string
	Info string
}

func (e *BusinessError) Error() string {
	return e.Message
}

// NewBusinessError creates a BusinessError.
func NewBusinessError(code int, message string) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
	}
}
