package svconsolidation

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/isaiahriv1234/Freight-Project/internal/app/domains/repo/rpdataset"
	"github.com/isaiahriv1234/Freight-Project/internal/app/pkg/errorx"
)

const (
	// DefaultWindowDays is the consolidation look-ahead window.
	DefaultWindowDays = 7

	// consolidatedShippingRatio: combined shipments typically run at
	// 70% of the individual shipping costs.
	consolidatedShippingRatio = 0.7

	// minSavings filters out opportunities that aren't worth acting on.
	minSavings = 50.0
)

// ConsolidationService finds orders that could have shipped together.
type ConsolidationService struct {
	dataset rpdataset.DatasetRepository
}

// NewConsolidationService creates the service.
func NewConsolidationService(dataset rpdataset.DatasetRepository) *ConsolidationService {
	return &ConsolidationService{dataset: dataset}
}

// Opportunity is one consolidatable group of orders for a supplier.
type Opportunity struct {
	Supplier             string   `json:"supplier"`
	OrderCount           int      `json:"order_count"`
	DateRange            string   `json:"date_range"`
	TotalValue           float64  `json:"total_value"`
	CurrentShipping      float64  `json:"current_shipping"`
	ConsolidatedShipping float64  `json:"consolidated_shipping"`
	PotentialSavings     float64  `json:"potential_savings"`
	SavingsPercentage    float64  `json:"savings_percentage"`
	POIDs                []string `json:"po_ids"`
}

// Summary is the roll-up over all opportunities.
type Summary struct {
	TotalOpportunities    int            `json:"total_opportunities"`
	TotalPotentialSavings float64        `json:"total_potential_savings"`
	TotalAffectedShipping float64        `json:"total_affected_shipping"`
	AvgSavings            float64        `json:"average_savings_per_opportunity"`
	ConsolidationLevels   map[string]int `json:"consolidation_levels"`
	TopOpportunities      []Opportunity  `json:"top_opportunities"`
}

// FindOpportunities scans each supplier's orders for groups inside the
// window whose combined shipping clears the savings threshold. Results
// are sorted by savings, descending.
func (s *ConsolidationService) FindOpportunities(ctx context.Context, windowDays int) ([]Opportunity, error) {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	if len(s.dataset.All()) == 0 {
		return nil, errorx.ErrEmptyDataset
	}

	window := time.Duration(windowDays) * 24 * time.Hour
	opportunities := make([]Opportunity, 0)

	for _, supplier := range s.dataset.Suppliers() {
		records := s.dataset.BySupplier(supplier)
		if len(records) < 2 {
			continue
		}

		sorted := make([]int, len(records))
		for i := range records {
			sorted[i] = i
		}
		sort.Slice(sorted, func(a, b int) bool {
			return records[sorted[a]].PODate.Before(records[sorted[b]].PODate)
		})

		// Anchor each order and collect everything inside its window.
		// Overlapping groups for the same supplier are deduplicated by
		// keeping the best one.
		var best *Opportunity
		for _, anchor := range sorted {
			anchorDate := records[anchor].PODate
			if anchorDate.IsZero() {
				continue
			}

			var value, shipping float64
			var poIDs []string
			groupStart, groupEnd := anchorDate, anchorDate
			for _, i := range sorted {
				d := records[i].PODate
				if d.Before(anchorDate) || d.After(anchorDate.Add(window)) {
					continue
				}
				value += records[i].TotalAmount
				shipping += records[i].ShippingCost
				poIDs = append(poIDs, records[i].POID)
				if d.After(groupEnd) {
					groupEnd = d
				}
			}

			if len(poIDs) < 2 {
				continue
			}

			savings := shipping - shipping*consolidatedShippingRatio
			if savings <= minSavings {
				continue
			}

			opp := Opportunity{
				Supplier:             supplier,
				OrderCount:           len(poIDs),
				DateRange:            groupStart.Format("2006-01-02") + " to " + groupEnd.Format("2006-01-02"),
				TotalValue:           roundTo2Decimals(value),
				CurrentShipping:      roundTo2Decimals(shipping),
				ConsolidatedShipping: roundTo2Decimals(shipping * consolidatedShippingRatio),
				PotentialSavings:     roundTo2Decimals(savings),
				SavingsPercentage:    roundTo2Decimals(savings / shipping * 100),
				POIDs:                poIDs,
			}
			if best == nil || opp.PotentialSavings > best.PotentialSavings {
				best = &opp
			}
		}

		if best != nil {
			opportunities = append(opportunities, *best)
		}
	}

	sort.Slice(opportunities, func(i, j int) bool {
		return opportunities[i].PotentialSavings > opportunities[j].PotentialSavings
	})

	return opportunities, nil
}

// GetSummary rolls up the opportunity list plus the dataset's
// consolidation-level distribution.
func (s *ConsolidationService) GetSummary(ctx context.Context) (*Summary, error) {
	opportunities, err := s.FindOpportunities(ctx, DefaultWindowDays)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		TotalOpportunities:  len(opportunities),
		ConsolidationLevels: make(map[string]int),
	}

	for _, opp := range opportunities {
		summary.TotalPotentialSavings += opp.PotentialSavings
		summary.TotalAffectedShipping += opp.CurrentShipping
	}
	summary.TotalPotentialSavings = roundTo2Decimals(summary.TotalPotentialSavings)
	summary.TotalAffectedShipping = roundTo2Decimals(summary.TotalAffectedShipping)
	if len(opportunities) > 0 {
		summary.AvgSavings = roundTo2Decimals(summary.TotalPotentialSavings / float64(len(opportunities)))
	}

	for _, rec := range s.dataset.All() {
		summary.ConsolidationLevels[rec.ConsolidationOpportunity]++
	}

	top := opportunities
	if len(top) > 5 {
		top = top[:5]
	}
	summary.TopOpportunities = top

	return summary, nil
}

func roundTo2Decimals(f float64) float64 {
	return math.Round(f*100) / 100
}
