package rprequest

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/isaiahriv1234/Freight-Project/internal/app/domains/entity/etrequest"
	"github.com/isaiahriv1234/Freight-Project/internal/app/infra/persistence/entity"
	"github.com/isaiahriv1234/Freight-Project/internal/app/pkg/errorx"
)

// RequestRepositoryImpl is the MySQL implementation.
type RequestRepositoryImpl struct {
	db *gorm.DB
}

// NewRequestRepository creates the repository.
func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &RequestRepositoryImpl{db: db}
}

func (r *RequestRepositoryImpl) Create(ctx context.Context, req *etrequest.PurchaseRequest) error {
	po, err := r.toGormModel(req)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(po).Error
}

func (r *RequestRepositoryImpl) GetByID(ctx context.Context, requestID string) (*etrequest.PurchaseRequest, error) {
	var po entity.PurchaseRequest
	err := r.db.WithContext(ctx).Where("id = ?", requestID).First(&po).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.ErrRequestNotFound
		}
		return nil, err
	}
	return r.toDomainModel(&po)
}

func (r *RequestRepositoryImpl) UpdateOptimization(ctx context.Context, requestID string, result *etrequest.OptimizationResult, status etrequest.RequestStatus) error {
	updates := map[string]interface{}{
		"status":     string(status),
		"updated_at": time.Now(),
	}

	if result != nil {
		resultJSON, err := json.Marshal(result)
		if err != nil {
			return err
		}
		updates["optimization"] = resultJSON
	}

	return r.db.WithContext(ctx).
		Model(&entity.PurchaseRequest{}).
		Where("id = ?", requestID).
		Updates(updates).Error
}

func (r *RequestRepositoryImpl) UpdateApproval(ctx context.Context, requestID string, decision *etrequest.ApprovalDecision, status etrequest.RequestStatus) error {
	decisionJSON, err := json.Marshal(decision)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Model(&entity.PurchaseRequest{}).
		Where("id = ?", requestID).
		Updates(map[string]interface{}{
			"approval":   decisionJSON,
			"status":     string(status),
			"updated_at": time.Now(),
		}).Error
}

func (r *RequestRepositoryImpl) ListByStatus(ctx context.Context, status etrequest.RequestStatus, page, limit int) ([]*etrequest.PurchaseRequest, int64, error) {
	var total int64
	var pos []entity.PurchaseRequest

	query := r.db.WithContext(ctx).Model(&entity.PurchaseRequest{})
	if status != "" {
		query = query.Where("status = ?", string(status))
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("created_at DESC").Find(&pos).Error; err != nil {
		return nil, 0, err
	}

	reqs := make([]*etrequest.PurchaseRequest, 0, len(pos))
	for i := range pos {
		req, err := r.toDomainModel(&pos[i])
		if err != nil {
			return nil, 0, err
		}
		reqs = append(reqs, req)
	}

	return reqs, total, nil
}

func (r *RequestRepositoryImpl) CountPendingBySupplierAndDepartment(ctx context.Context, supplier, department string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.PurchaseRequest{}).
		Where("supplier = ? AND department = ? AND status IN ?", supplier, department,
			[]string{string(etrequest.StatusPendingOptimization), string(etrequest.StatusPendingApproval)}).
		Count(&count).Error
	return count, err
}

func (r *RequestRepositoryImpl) toGormModel(req *etrequest.PurchaseRequest) (*entity.PurchaseRequest, error) {
	po := &entity.PurchaseRequest{
		ID:                    req.ID,
		Requester:             req.Requester,
		Department:            req.Department,
		Supplier:              req.Supplier,
		Description:           req.Description,
		TotalAmount:           req.TotalAmount,
		Urgency:               req.Urgency,
		DiversityCategory:     req.DiversityCategory,
		ApprovalLevel:         string(req.ApprovalLevel),
		Status:                string(req.Status),
		ConsolidationEligible: req.ConsolidationEligible,
		CreatedAt:             req.CreatedAt,
		UpdatedAt:             req.UpdatedAt,
	}

	if req.Optimization != nil {
		b, err := json.Marshal(req.Optimization)
		if err != nil {
			return nil, err
		}
		po.Optimization = b
	}
	if req.Approval != nil {
		b, err := json.Marshal(req.Approval)
		if err != nil {
			return nil, err
		}
		po.Approval = b
	}

	return po, nil
}

func (r *RequestRepositoryImpl) toDomainModel(po *entity.PurchaseRequest) (*etrequest.PurchaseRequest, error) {
	req := &etrequest.PurchaseRequest{
		ID:                    po.ID,
		Requester:             po.Requester,
		Department:            po.Department,
		Supplier:              po.Supplier,
		Description:           po.Description,
		TotalAmount:           po.TotalAmount,
		Urgency:               po.Urgency,
		DiversityCategory:     po.DiversityCategory,
		ApprovalLevel:         etrequest.ApprovalLevel(po.ApprovalLevel),
		Status:                etrequest.RequestStatus(po.Status),
		ConsolidationEligible: po.ConsolidationEligible,
		CreatedAt:             po.CreatedAt,
		UpdatedAt:             po.UpdatedAt,
	}

	if len(po.Optimization) > 0 {
		var result etrequest.OptimizationResult
		if err := json.Unmarshal(po.Optimization, &result); err != nil {
			return nil, err
		}
		req.Optimization = &result
	}
	if len(po.Approval) > 0 {
		var decision etrequest.ApprovalDecision
		if err := json.Unmarshal(po.Approval, &decision); err != nil {
			return nil, err
		}
		req.Approval = &decision
	}

	return req, nil
}
