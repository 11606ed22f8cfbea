package jobs

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isaiahriv1234/Freight-Project/internal/app/pkg/logger"
	"github.com/isaiahriv1234/Freight-Project/internal/model"
	"github.com/isaiahriv1234/Freight-Project/internal/worker/framework"
)

type recordingHandler struct {
	received *model.OptimizeData
	result   *framework.JobResult
	panics   bool
}

func (h *recordingHandler) Handle(ctx context.Context, data *model.OptimizeData) *framework.JobResult {
	if h.panics {
		panic("handler exploded")
	}
	h.received = data
	if h.result != nil {
		return h.result
	}
	return &framework.JobResult{Action: framework.JobActionAck}
}

func jobMessage(t *testing.T, data model.OptimizeData) *framework.Message {
	t.Helper()
	raw, err := json.Marshal(model.OptimizeJob{Payload: model.OptimizePayload{Data: data}})
	require.NoError(t, err)
	return &framework.Message{ID: "job-1", Queue: "carrier_optimize", Data: raw}
}

func TestGetProcessRoutesByActionType(t *testing.T) {
	handler := &recordingHandler{}
	proc := GetProcess(logger.NewNopLogger(), map[string]Handler{
		model.ActionCarrierOptimize: handler,
	})

	result := proc(context.Background(), jobMessage(t, model.OptimizeData{
		RequestID:  "trace-1",
		ActionType: model.ActionCarrierOptimize,
		ID:         "PR-20240115-001",
		Data:       model.OptimizeBusinessData{PurchaseRequestID: "PR-20240115-001"},
	}))

	assert.Equal(t, framework.JobActionAck, result.Action)
	require.NotNil(t, handler.received)
	assert.Equal(t, "trace-1", handler.received.RequestID)
	assert.Equal(t, "PR-20240115-001", handler.received.Data.PurchaseRequestID)
}

func TestGetProcessBuriesMalformedPayload(t *testing.T) {
	proc := GetProcess(logger.NewNopLogger(), map[string]Handler{})
	result := proc(context.Background(), &framework.Message{ID: "job-2", Data: []byte("{not json")})
	assert.Equal(t, framework.JobActionBury, result.Action)
}

func TestGetProcessBuriesMissingActionType(t *testing.T) {
	proc := GetProcess(logger.NewNopLogger(), map[string]Handler{})
	result := proc(context.Background(), jobMessage(t, model.OptimizeData{ID: "PR-X"}))
	assert.Equal(t, framework.JobActionBury, result.Action)
}

func TestGetProcessBuriesUnknownActionType(t *testing.T) {
	proc := GetProcess(logger.NewNopLogger(), map[string]Handler{})
	result := proc(context.Background(), jobMessage(t, model.OptimizeData{ActionType: "unknown_action"}))
	assert.Equal(t, framework.JobActionBury, result.Action)
}

func TestGetProcessFillsMissingTraceID(t *testing.T) {
	handler := &recordingHandler{}
	proc := GetProcess(logger.NewNopLogger(), map[string]Handler{
		model.ActionCarrierOptimize: handler,
	})

	proc(context.Background(), jobMessage(t, model.OptimizeData{
		ActionType: model.ActionCarrierOptimize,
	}))
	require.NotNil(t, handler.received)
	assert.NotEmpty(t, handler.received.RequestID)
}

func TestGetProcessRecoversHandlerPanic(t *testing.T) {
	proc := GetProcess(logger.NewNopLogger(), map[string]Handler{
		model.ActionCarrierOptimize: &recordingHandler{panics: true},
	})

	result := proc(context.Background(), jobMessage(t, model.OptimizeData{
		ActionType: model.ActionCarrierOptimize,
	}))
	assert.Equal(t, framework.JobActionBury, result.Action)
}
