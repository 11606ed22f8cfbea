package svdiversity

import (
	"context"
	"fmt"
	"sort"

	"github.com/isaiahriv1234/Freight-Project/internal/app/domains/entity/etprocurement"
	"github.com/isaiahriv1234/Freight-Project/internal/app/domains/repo/rpdataset"
	"github.com/isaiahriv1234/Freight-Project/internal/app/pkg/errorx"
)

// DefaultGoalTarget is the campus diversity spend goal in percent.
const DefaultGoalTarget = 25.0

// DiversityService tracks supplier diversity performance over the dataset.
type DiversityService struct {
	dataset rpdataset.DatasetRepository
}

// NewDiversityService creates the service.
func NewDiversityService(dataset rpdataset.DatasetRepository) *DiversityService {
	return &DiversityService{dataset: dataset}
}

// CategorySummary is the per-category slice of the diversity summary.
type CategorySummary struct {
	Category        string  `json:"category"`
	CategoryName    string  `json:"category_name"`
	TotalSpend      float64 `json:"total_spend"`
	SpendPercentage float64 `json:"spend_percentage"`
	OrderCount      int     `json:"order_count"`
	OrderPercentage float64 `json:"order_percentage"`
	SupplierCount   int     `json:"supplier_count"`
	AvgOrderValue   float64 `json:"avg_order_value"`
}

// Summary is the overall diversity performance block.
type Summary struct {
	TotalSpend               float64           `json:"total_spend"`
	TotalOrders              int               `json:"total_orders"`
	Breakdown                []CategorySummary `json:"diversity_breakdown"`
	DiversitySpendPercentage float64           `json:"diversity_spend_percentage"`
}

// DiverseSupplier is one ranked supplier entry.
type DiverseSupplier struct {
	SupplierName        string  `json:"supplier_name"`
	DiversityCategory   string  `json:"diversity_category"`
	CategoryDescription string  `json:"category_description"`
	TotalSpend          float64 `json:"total_spend"`
	OrderCount          int     `json:"order_count"`
	AvgOrderValue       float64 `json:"avg_order_value"`
	AvgLeadTime         float64 `json:"avg_lead_time"`
	PerformanceScore    float64 `json:"performance_score"`
	LastOrderDate       string  `json:"last_order_date"`
}

// GoalTracking reports progress against the diversity spend target.
type GoalTracking struct {
	TargetPercentage    float64  `json:"target_percentage"`
	CurrentPercentage   float64  `json:"current_percentage"`
	GapPercentage       float64  `json:"gap_percentage"`
	TargetSpend         float64  `json:"target_spend"`
	CurrentDiverseSpend float64  `json:"current_diverse_spend"`
	SpendGap            float64  `json:"spend_gap"`
	GoalStatus          string   `json:"goal_status"`
	Recommendations     []string `json:"recommendations"`
}

// GetSummary computes per-category spend, order and supplier metrics.
func (s *DiversityService) GetSummary(ctx context.Context) (*Summary, error) {
	records := s.dataset.All()
	if len(records) == 0 {
		return nil, errorx.ErrEmptyDataset
	}

	var totalSpend float64
	for _, rec := range records {
		totalSpend += rec.TotalAmount
	}
	totalOrders := len(records)

	type categoryAgg struct {
		spend     float64
		orders    int
		suppliers map[string]struct{}
	}
	byCategory := make(map[string]*categoryAgg)
	for _, rec := range records {
		agg, ok := byCategory[rec.SupplierDiversityCategory]
		if !ok {
			agg = &categoryAgg{suppliers: make(map[string]struct{})}
			byCategory[rec.SupplierDiversityCategory] = agg
		}
		agg.spend += rec.TotalAmount
		agg.orders++
		agg.suppliers[rec.SupplierName] = struct{}{}
	}

	categories := make([]string, 0, len(byCategory))
	for category := range byCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	summary := &Summary{
		TotalSpend:  roundTo2Decimals(totalSpend),
		TotalOrders: totalOrders,
		Breakdown:   make([]CategorySummary, 0, len(categories)),
	}

	for _, category := range categories {
		agg := byCategory[category]
		name := etprocurement.DiversityCategoryNames[category]
		if name == "" {
			name = category
		}
		entry := CategorySummary{
			Category:        category,
			CategoryName:    name,
			TotalSpend:      roundTo2Decimals(agg.spend),
			SpendPercentage: roundTo2Decimals(agg.spend / totalSpend * 100),
			OrderCount:      agg.orders,
			OrderPercentage: roundTo2Decimals(float64(agg.orders) / float64(totalOrders) * 100),
			SupplierCount:   len(agg.suppliers),
			AvgOrderValue:   roundTo2Decimals(agg.spend / float64(agg.orders)),
		}
		summary.Breakdown = append(summary.Breakdown, entry)
		if category != etprocurement.DiversityNone {
			summary.DiversitySpendPercentage += entry.SpendPercentage
		}
	}
	summary.DiversitySpendPercentage = roundTo2Decimals(summary.DiversitySpendPercentage)

	return summary, nil
}

// GetDiverseSuppliers ranks diverse suppliers by spend with a rule-based
// performance score.
func (s *DiversityService) GetDiverseSuppliers(ctx context.Context) ([]DiverseSupplier, error) {
	if len(s.dataset.All()) == 0 {
		return nil, errorx.ErrEmptyDataset
	}

	suppliers := make([]DiverseSupplier, 0)
	for _, name := range s.dataset.Suppliers() {
		records := s.dataset.BySupplier(name)
		if len(records) == 0 || !records[0].IsDiverse() {
			continue
		}

		var spend, leadTime float64
		lastOrder := records[0].PODate
		for _, rec := range records {
			spend += rec.TotalAmount
			leadTime += float64(rec.LeadTimeDays)
			if rec.PODate.After(lastOrder) {
				lastOrder = rec.PODate
			}
		}

		category := records[0].SupplierDiversityCategory
		description := etprocurement.DiversityCategoryNames[category]
		if description == "" {
			description = category
		}

		suppliers = append(suppliers, DiverseSupplier{
			SupplierName:        name,
			DiversityCategory:   category,
			CategoryDescription: description,
			TotalSpend:          roundTo2Decimals(spend),
			OrderCount:          len(records),
			AvgOrderValue:       roundTo2Decimals(spend / float64(len(records))),
			AvgLeadTime:         roundTo2Decimals(leadTime / float64(len(records))),
			PerformanceScore:    performanceScore(records),
			LastOrderDate:       lastOrder.Format("2006-01-02"),
		})
	}

	sort.Slice(suppliers, func(i, j int) bool {
		return suppliers[i].TotalSpend > suppliers[j].TotalSpend
	})

	return suppliers, nil
}

// TrackGoals compares diverse spend against the target percentage.
func (s *DiversityService) TrackGoals(ctx context.Context, targetPercentage float64) (*GoalTracking, error) {
	if targetPercentage <= 0 {
		targetPercentage = DefaultGoalTarget
	}

	summary, err := s.GetSummary(ctx)
	if err != nil {
		return nil, err
	}

	var diverseSpend float64
	for _, entry := range summary.Breakdown {
		if entry.Category != etprocurement.DiversityNone {
			diverseSpend += entry.TotalSpend
		}
	}

	targetSpend := summary.TotalSpend * targetPercentage / 100
	gap := targetSpend - diverseSpend

	tracking := &GoalTracking{
		TargetPercentage:    targetPercentage,
		CurrentPercentage:   summary.DiversitySpendPercentage,
		GapPercentage:       roundTo2Decimals(targetPercentage - summary.DiversitySpendPercentage),
		TargetSpend:         roundTo2Decimals(targetSpend),
		CurrentDiverseSpend: roundTo2Decimals(diverseSpend),
		SpendGap:            roundTo2Decimals(gap),
	}

	if summary.DiversitySpendPercentage >= targetPercentage {
		tracking.GoalStatus = "Met"
		tracking.Recommendations = []string{
			"Diversity goals are being met - maintain current performance",
		}
		return tracking, nil
	}

	tracking.GoalStatus = "Not Met"
	tracking.Recommendations = append(tracking.Recommendations,
		fmt.Sprintf("Increase diverse supplier spending by $%.2f to meet goals", gap))

	for _, entry := range summary.Breakdown {
		switch {
		case entry.Category == etprocurement.DiversityDVBE && entry.SpendPercentage < 10:
			tracking.Recommendations = append(tracking.Recommendations,
				"Increase DVBE (Disabled Veteran) supplier utilization")
		case entry.Category == etprocurement.DiversityOSB && entry.SpendPercentage < 15:
			tracking.Recommendations = append(tracking.Recommendations,
				"Expand Other Small Business supplier base")
		}
	}
	tracking.Recommendations = append(tracking.Recommendations,
		"Review procurement processes to identify more diverse supplier opportunities")

	return tracking, nil
}

// performanceScore grades a supplier from order volume, cadence and lead
// time. Base 50, capped at 100.
func performanceScore(records []*etprocurement.Record) float64 {
	score := 50.0

	orderCount := len(records)
	switch {
	case orderCount > 10:
		score += 20
	case orderCount > 5:
		score += 10
	}

	first, last := records[0].PODate, records[0].PODate
	var leadTime float64
	for _, rec := range records {
		if rec.PODate.Before(first) {
			first = rec.PODate
		}
		if rec.PODate.After(last) {
			last = rec.PODate
		}
		leadTime += float64(rec.LeadTimeDays)
	}

	if days := last.Sub(first).Hours() / 24; days > 0 {
		ordersPerMonth := float64(orderCount) / (days / 30)
		switch {
		case ordersPerMonth > 2:
			score += 15
		case ordersPerMonth > 1:
			score += 10
		}
	}

	avgLeadTime := leadTime / float64(orderCount)
	switch {
	case avgLeadTime < 10:
		score += 15
	case avgLeadTime < 20:
		score += 10
	}

	if score > 100 {
		score = 100
	}
	return score
}

func roundTo2Decimals(f float64) float64 {
	return float64(int(f*100+0.5)) / 100
}
