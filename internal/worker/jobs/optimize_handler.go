package jobs

import (
	"context"
	"math"

	"github.com/isaiahriv1234/Freight-Project/internal/app/domains/entity/etrequest"
	"github.com/isaiahriv1234/Freight-Project/internal/app/domains/repo/rprequest"
	"github.com/isaiahriv1234/Freight-Project/internal/app/domains/services/svshipping"
	"github.com/isaiahriv1234/Freight-Project/internal/app/pkg/logger"
	"github.com/isaiahriv1234/Freight-Project/internal/model"
	"github.com/isaiahriv1234/Freight-Project/internal/worker/framework"
)

// weightCategoryForAmount falls back to a category when the submitter
// didn't supply one. Larger orders tend to ship heavier.
func weightCategoryForAmount(amount float64) string {
	switch {
	case amount > 10000:
		return "heavy"
	case amount > 2000:
		return "medium"
	default:
		return "light"
	}
}

// ResultPublisher pushes worker outcomes to anyone smart-waiting on
// them. mdoptimize.OptimizeModule is the production implementation.
type ResultPublisher interface {
	PublishResult(ctx context.Context, result *model.OptimizeResultMessage) error
}

// OptimizeHandler runs the carrier recommendation for one purchase
// request, persists it, and publishes the result for the smart wait.
type OptimizeHandler struct {
	shipping       *svshipping.ShippingService
	requests       rprequest.RequestRepository
	optimizeModule ResultPublisher
	log            logger.Logger
}

func NewOptimizeHandler(shipping *svshipping.ShippingService, requests rprequest.RequestRepository, optimizeModule ResultPublisher, log logger.Logger) *OptimizeHandler {
	return &OptimizeHandler{
		shipping:       shipping,
		requests:       requests,
		optimizeModule: optimizeModule,
		log:            log,
	}
}

// Handle computes and settles the recommendation. The job payload
// carries everything needed, the purchase_requests table is only
// written, never read.
func (h *OptimizeHandler) Handle(ctx context.Context, data *model.OptimizeData) *framework.JobResult {
	biz := data.Data
	if biz.PurchaseRequestID == "" {
		h.log.Errorf(ctx, "[OptimizeHandler] purchase_request_id is required")
		return &framework.JobResult{Action: framework.JobActionBury}
	}

	weightCategory := biz.WeightCategory
	if weightCategory == "" {
		weightCategory = weightCategoryForAmount(biz.TotalAmount)
	}

	recommendations, err := h.shipping.RecommendCarriers(ctx, biz.TotalAmount, weightCategory, biz.Urgency)
	if err != nil || len(recommendations) == 0 {
		h.log.Errorf(ctx, "[OptimizeHandler] recommendation failed: request=%s, error=%v", biz.PurchaseRequestID, err)
		h.settleFailure(ctx, biz.PurchaseRequestID, "carrier recommendation failed")
		return &framework.JobResult{Action: framework.JobActionBury}
	}

	best := recommendations[0]
	optimization := &etrequest.OptimizationResult{
		RecommendedCarrier: best.Carrier,
		EstimatedShipping:  best.PredictedCost,
		EstimatedDays:      int(math.Ceil(best.AvgLeadTime)),
		Confidence:         int(best.RecommendationScore),
		Reasoning:          best.Reasoning,
	}
	for _, alt := range recommendations[1:] {
		optimization.Alternatives = append(optimization.Alternatives, etrequest.AlternativeCarrier{
			Carrier:       alt.Carrier,
			EstimatedCost: alt.PredictedCost,
			LeadTimeDays:  alt.AvgLeadTime,
			Score:         alt.RecommendationScore,
		})
	}

	status := etrequest.StatusPendingApproval
	if etrequest.DeriveApprovalLevel(biz.TotalAmount) == etrequest.ApprovalAuto {
		status = etrequest.StatusAutoApproved
	}

	if err := h.requests.UpdateOptimization(ctx, biz.PurchaseRequestID, optimization, status); err != nil {
		h.log.Errorf(ctx, "[OptimizeHandler] persist optimization failed: request=%s, error=%v", biz.PurchaseRequestID, err)
		// Leave the job for the TTR retry, the DB may recover.
		return &framework.JobResult{Action: framework.JobActionRelease}
	}

	resultMsg := &model.OptimizeResultMessage{
		RequestID:          biz.PurchaseRequestID,
		Status:             model.OptimizeStatusSuccess,
		RecommendedCarrier: optimization.RecommendedCarrier,
		EstimatedShipping:  optimization.EstimatedShipping,
		EstimatedDays:      optimization.EstimatedDays,
		Confidence:         optimization.Confidence,
		Reasoning:          optimization.Reasoning,
	}
	if err := h.optimizeModule.PublishResult(ctx, resultMsg); err != nil {
		// The row is already settled; a poll on the request will see it.
		h.log.Warnf(ctx, "[OptimizeHandler] publish result failed: request=%s, error=%v", biz.PurchaseRequestID, err)
	}

	h.log.Infof(ctx, "[OptimizeHandler] Optimized request %s: carrier=%s, shipping=%.2f, days=%d",
		biz.PurchaseRequestID, optimization.RecommendedCarrier, optimization.EstimatedShipping, optimization.EstimatedDays)

	return &framework.JobResult{Action: framework.JobActionAck, Data: resultMsg}
}

// settleFailure marks the request FAILED and tells any waiting
// submitter.
func (h *OptimizeHandler) settleFailure(ctx context.Context, purchaseRequestID, reason string) {
	if err := h.requests.UpdateOptimization(ctx, purchaseRequestID, nil, etrequest.StatusFailed); err != nil {
		h.log.Errorf(ctx, "[OptimizeHandler] persist failed status failed: request=%s, error=%v", purchaseRequestID, err)
	}
	msg := &model.OptimizeResultMessage{
		RequestID: purchaseRequestID,
		Status:    model.OptimizeStatusFailed,
		Error:     reason,
	}
	if err := h.optimizeModule.PublishResult(ctx, msg); err != nil {
		h.log.Warnf(ctx, "[OptimizeHandler] publish failure result failed: request=%s, error=%v", purchaseRequestID, err)
	}
}
