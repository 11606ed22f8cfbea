package svanalytics

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/isaiahriv1234/Freight-Project/internal/app/domains/repo/rpdataset"
	"github.com/isaiahriv1234/Freight-Project/internal/app/pkg/errorx"
	"github.com/isaiahriv1234/Freight-Project/internal/app/pkg/logger"
)

// Cache is the snapshot cache the service uses when one is wired.
// The Redis client in infra satisfies it; nil disables caching.
type Cache interface {
	GetCached(ctx context.Context, key string) (string, error)
	SetCached(ctx context.Context, key, value string, ttl time.Duration) error
}

const (
	cacheKeySpendSummary = "analytics:spend-summary"
	cacheTTL             = 5 * time.Minute
)

// AnalyticsService computes spend aggregates over the static dataset.
type AnalyticsService struct {
	dataset rpdataset.DatasetRepository
	cache   Cache
	logger  logger.Logger
}

// NewAnalyticsService creates the service. cache may be nil.
func NewAnalyticsService(dataset rpdataset.DatasetRepository, cache Cache, log logger.Logger) *AnalyticsService {
	return &AnalyticsService{
		dataset: dataset,
		cache:   cache,
		logger:  log,
	}
}

// SpendSummary is the headline spend metrics block.
type SpendSummary struct {
	TotalSpend      float64   `json:"total_spend"`
	TotalOrders     int       `json:"total_orders"`
	AvgOrderValue   float64   `json:"avg_order_value"`
	UniqueSuppliers int       `json:"unique_suppliers"`
	DateRange       DateRange `json:"date_range"`
}

// DateRange bounds the dataset's PO dates.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// MonthlyTrends is spend grouped by calendar month, ascending.
type MonthlyTrends struct {
	Months  []string  `json:"months"`
	Amounts []float64 `json:"amounts"`
}

// TopSuppliers ranks suppliers by total spend.
type TopSuppliers struct {
	Suppliers []string  `json:"suppliers"`
	Amounts   []float64 `json:"amounts"`
}

// CategoryBreakdown is spend grouped by order type.
type CategoryBreakdown struct {
	Categories []string  `json:"categories"`
	Amounts    []float64 `json:"amounts"`
}

// GetSpendSummary computes (or serves from cache) the headline metrics.
func (s *AnalyticsService) GetSpendSummary(ctx context.Context) (*SpendSummary, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetCached(ctx, cacheKeySpendSummary); err == nil && cached != "" {
			var summary SpendSummary
			if err := json.Unmarshal([]byte(cached), &summary); err == nil {
				return &summary, nil
			}
		}
	}

	records := s.dataset.All()
	if len(records) == 0 {
		return nil, errorx.ErrEmptyDataset
	}

	var totalSpend float64
	suppliers := make(map[string]struct{})
	minDate, maxDate := records[0].PODate, records[0].PODate

	for _, rec := range records {
		totalSpend += rec.TotalAmount
		suppliers[rec.SupplierName] = struct{}{}
		if !rec.PODate.IsZero() {
			if minDate.IsZero() || rec.PODate.Before(minDate) {
				minDate = rec.PODate
			}
			if rec.PODate.After(maxDate) {
				maxDate = rec.PODate
			}
		}
	}

	summary := &SpendSummary{
		TotalSpend:      roundTo2Decimals(totalSpend),
		TotalOrders:     len(records),
		AvgOrderValue:   roundTo2Decimals(totalSpend / float64(len(records))),
		UniqueSuppliers: len(suppliers),
		DateRange: DateRange{
			Start: minDate.Format("2006-01-02"),
			End:   maxDate.Format("2006-01-02"),
		},
	}

	if s.cache != nil {
		if b, err := json.Marshal(summary); err == nil {
			if err := s.cache.SetCached(ctx, cacheKeySpendSummary, string(b), cacheTTL); err != nil {
				s.logger.Warnf(ctx, "[Analytics] cache spend summary failed: %v", err)
			}
		}
	}

	return summary, nil
}

// GetMonthlyTrends groups spend by month.
func (s *AnalyticsService) GetMonthlyTrends(ctx context.Context) (*MonthlyTrends, error) {
	records := s.dataset.All()
	if len(records) == 0 {
		return nil, errorx.ErrEmptyDataset
	}

	byMonth := make(map[string]float64)
	for _, rec := range records {
		if rec.PODate.IsZero() {
			continue
		}
		byMonth[rec.Month()] += rec.TotalAmount
	}

	months := make([]string, 0, len(byMonth))
	for month := range byMonth {
		months = append(months, month)
	}
	sort.Strings(months)

	amounts := make([]float64, 0, len(months))
	for _, month := range months {
		amounts = append(amounts, roundTo2Decimals(byMonth[month]))
	}

	return &MonthlyTrends{Months: months, Amounts: amounts}, nil
}

// GetTopSuppliers ranks suppliers by total spend, descending.
func (s *AnalyticsService) GetTopSuppliers(ctx context.Context, limit int) (*TopSuppliers, error) {
	records := s.dataset.All()
	if len(records) == 0 {
		return nil, errorx.ErrEmptyDataset
	}
	if limit <= 0 {
		limit = 5
	}

	bySupplier := make(map[string]float64)
	for _, rec := range records {
		bySupplier[rec.SupplierName] += rec.TotalAmount
	}

	type supplierSpend struct {
		name   string
		amount float64
	}
	ranked := make([]supplierSpend, 0, len(bySupplier))
	for name, amount := range bySupplier {
		ranked = append(ranked, supplierSpend{name, amount})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].amount != ranked[j].amount {
			return ranked[i].amount > ranked[j].amount
		}
		return ranked[i].name < ranked[j].name
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	result := &TopSuppliers{
		Suppliers: make([]string, 0, len(ranked)),
		Amounts:   make([]float64, 0, len(ranked)),
	}
	for _, entry := range ranked {
		result.Suppliers = append(result.Suppliers, entry.name)
		result.Amounts = append(result.Amounts, roundTo2Decimals(entry.amount))
	}

	return result, nil
}

// GetCategoryBreakdown groups spend by order type.
func (s *AnalyticsService) GetCategoryBreakdown(ctx context.Context) (*CategoryBreakdown, error) {
	records := s.dataset.All()
	if len(records) == 0 {
		return nil, errorx.ErrEmptyDataset
	}

	byCategory := make(map[string]float64)
	for _, rec := range records {
		category := rec.OrderType
		if category == "" {
			category = "Uncategorized"
		}
		byCategory[category] += rec.TotalAmount
	}

	categories := make([]string, 0, len(byCategory))
	for category := range byCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	amounts := make([]float64, 0, len(categories))
	for _, category := range categories {
		amounts = append(amounts, roundTo2Decimals(byCategory[category]))
	}

	return &CategoryBreakdown{Categories: categories, Amounts: amounts}, nil
}

func roundTo2Decimals(f float64) float64 {
	return float64(int(f*100+0.5)) / 100
}
