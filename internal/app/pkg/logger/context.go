package logger

import "context"

// Context keys matched by extractFields.
const (
	ctxKeyTraceID    = "trace_id"
	ctxKeyWorkerID   = "worker_id"
	ctxKeyActionType = "action_type"
)

// WithTraceID tags the context with a request trace id.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, ctxKeyTraceID, traceID)
}

// WithWorkerID tags the context with the worker goroutine index.
func WithWorkerID(ctx context.Context, workerID int) context.Context {
	return context.WithValue(ctx, ctxKeyWorkerID, workerID)
}

// WithActionType tags the context with the job action being processed.
func WithActionType(ctx context.Context, actionType string) context.Context {
	return context.WithValue(ctx, ctxKeyActionType, actionType)
}
