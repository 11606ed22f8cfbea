package jobs

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/isaiahriv1234/Freight-Project/internal/app/pkg/logger"
	"github.com/isaiahriv1234/Freight-Project/internal/model"
	"github.com/isaiahriv1234/Freight-Project/internal/worker/framework"
)

// Handler processes one decoded job.
type Handler interface {
	Handle(ctx context.Context, data *model.OptimizeData) *framework.JobResult
}

// GetProcess builds the framework.Proc that decodes the envelope and
// routes by action type. Malformed or unroutable jobs are buried rather
// than retried.
func GetProcess(log logger.Logger, handlers map[string]Handler) framework.Proc {
	return func(ctx context.Context, msg *framework.Message) *framework.JobResult {
		data, err := parseJob(msg)
		if err != nil {
			log.Errorf(ctx, "[GetProcess] parse job failed: %v", err)
			return &framework.JobResult{Action: framework.JobActionBury}
		}

		ctx = logger.WithTraceID(ctx, data.RequestID)
		ctx = logger.WithActionType(ctx, data.ActionType)

		log.Infof(ctx, "[GetProcess] Processing job: action_type=%s, request_id=%s, id=%s",
			data.ActionType, data.RequestID, data.ID)

		handler, ok := handlers[data.ActionType]
		if !ok {
			log.Errorf(ctx, "[GetProcess] handler not found for action_type: %s", data.ActionType)
			return &framework.JobResult{Action: framework.JobActionBury}
		}

		var result *framework.JobResult
		func() {
			defer func() {
				if r := recover(); r != nil {
					log.Errorf(ctx, "[GetProcess] handler panic: %v", r)
					result = &framework.JobResult{Action: framework.JobActionBury}
				}
			}()
			result = handler.Handle(ctx, data)
		}()

		return result
	}
}

func parseJob(msg *framework.Message) (*model.OptimizeData, error) {
	var job model.OptimizeJob
	if err := json.Unmarshal(msg.Data, &job); err != nil {
		return nil, fmt.Errorf("json unmarshal failed: %w", err)
	}

	data := job.Payload.Data
	if data.ActionType == "" {
		return nil, fmt.Errorf("invalid job structure: action_type is empty")
	}
	if data.RequestID == "" {
		data.RequestID = uuid.New().String()
	}

	return &data, nil
}
