package mdoptimize

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/isaiahriv1234/Freight-Project/internal/app/domains/entity/etrequest"
	"github.com/isaiahriv1234/Freight-Project/internal/app/infra/mq/lmstfy"
	"github.com/isaiahriv1234/Freight-Project/internal/app/infra/persistence/redis"
	"github.com/isaiahriv1234/Freight-Project/internal/model"
)

// Job TTL in the queue. A request nobody optimized within a day is stale.
const jobTTLSeconds = 86400

// ResultChannel is the Redis channel carrying the worker's result for
// one purchase request.
func ResultChannel(purchaseRequestID string) string {
	return fmt.Sprintf("optimize:result:%s", purchaseRequestID)
}

// OptimizeModule owns the carrier-optimization job flow: message format,
// queue publishing, and the result-channel naming the smart wait relies on.
type OptimizeModule struct {
	lmstfyClient *lmstfy.Client
	redisClient  *redis.Client
	queueName    string
}

func NewOptimizeModule(lmstfyClient *lmstfy.Client, redisClient *redis.Client, queueName string) *OptimizeModule {
	return &OptimizeModule{
		lmstfyClient: lmstfyClient,
		redisClient:  redisClient,
		queueName:    queueName,
	}
}

// PublishOptimizeJob enqueues a carrier-optimization job. The full
// business payload rides along so the worker never reads the
// purchase_requests table to start working.
func (m *OptimizeModule) PublishOptimizeJob(ctx context.Context, req *etrequest.PurchaseRequest) error {
	message := model.OptimizeJob{
		Payload: model.OptimizePayload{
			Data: model.OptimizeData{
				RequestID:  uuid.New().String(), // trace id for the whole chain
				ActionType: model.ActionCarrierOptimize,
				ID:         req.ID,
				Data: model.OptimizeBusinessData{
					PurchaseRequestID: req.ID,
					Supplier:          req.Supplier,
					Department:        req.Department,
					TotalAmount:       req.TotalAmount,
					Urgency:           req.Urgency,
				},
			},
		},
	}

	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("marshal optimize job failed: %w", err)
	}

	return m.lmstfyClient.Publish(m.queueName, data, jobTTLSeconds, 0)
}

// WaitForResult blocks for the worker's recommendation, bounded by
// timeout. The error from Subscribe is a context deadline on timeout.
func (m *OptimizeModule) WaitForResult(ctx context.Context, purchaseRequestID string, timeout time.Duration) (*model.OptimizeResultMessage, error) {
	payload, err := m.redisClient.Subscribe(ctx, ResultChannel(purchaseRequestID), timeout)
	if err != nil {
		return nil, err
	}

	var result model.OptimizeResultMessage
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return nil, fmt.Errorf("decode optimize result failed: %w", err)
	}

	return &result, nil
}

// PublishResult sends the worker's outcome to the request's channel.
// Used by the worker side of the flow.
func (m *OptimizeModule) PublishResult(ctx context.Context, result *model.OptimizeResultMessage) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal optimize result failed: %w", err)
	}
	return m.redisClient.Publish(ctx, ResultChannel(result.RequestID), string(data))
}
