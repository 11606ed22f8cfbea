package svshipping

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/isaiahriv1234/Freight-Project/internal/app/domains/entity/etprocurement"
	"github.com/isaiahriv1234/Freight-Project/internal/app/domains/entity/etshipment"
	"github.com/isaiahriv1234/Freight-Project/internal/app/domains/repo/rpdataset"
	"github.com/isaiahriv1234/Freight-Project/internal/app/pkg/errorx"
)

// Quote pricing constants.
const (
	quoteBaseCost     = 50.0
	quotePerPound     = 2.0
	quoteDistanceCost = 25.0
)

// insuranceCost maps coverage tiers to their surcharge.
var insuranceCost = map[string]float64{
	"basic":    5.0,
	"standard": 15.0,
	"premium":  30.0,
	"custom":   20.0,
}

// slaTargets are delivery SLA targets in days per carrier.
var slaTargets = map[string]int{
	etprocurement.CarrierUPS:        5,
	etprocurement.CarrierFedEx:      4,
	etprocurement.CarrierGround:     7,
	etprocurement.CarrierFreight:    14,
	etprocurement.CarrierElectronic: 1,
}

const defaultSLATarget = 7

// carrierProfile captures a carrier's service characteristics used by the
// recommendation scorer.
type carrierProfile struct {
	costTier string
	speed    string
}

var carrierProfiles = map[string]carrierProfile{
	etprocurement.CarrierUPS:        {costTier: "medium", speed: "fast"},
	etprocurement.CarrierFedEx:      {costTier: "high", speed: "fastest"},
	etprocurement.CarrierFreight:    {costTier: "low", speed: "slow"},
	etprocurement.CarrierGround:     {costTier: "lowest", speed: "slowest"},
	etprocurement.CarrierElectronic: {costTier: "none", speed: "instant"},
}

// carrierStats are aggregates over the dataset for one carrier.
type carrierStats struct {
	avgShippingCost float64
	avgLeadTime     float64
	orderCount      int
	totalSpend      float64
	totalShipping   float64
	onTimeOrders    int
	costEfficiency  float64 // shipping as % of order value
}

// ShippingService prices quotes and recommends carriers using
// aggregates computed once over the procurement dataset.
type ShippingService struct {
	dataset rpdataset.DatasetRepository
	stats   map[string]*carrierStats
}

func NewShippingService(dataset rpdataset.DatasetRepository) *ShippingService {
	s := &ShippingService{
		dataset: dataset,
		stats:   make(map[string]*carrierStats),
	}
	s.analyzeCarriers()
	return s
}

func (s *ShippingService) analyzeCarriers() {
	for _, rec := range s.dataset.All() {
		if rec.Carrier == "" || rec.Carrier == "N/A" {
			continue
		}
		st, ok := s.stats[rec.Carrier]
		if !ok {
			st = &carrierStats{}
			s.stats[rec.Carrier] = st
		}
		st.orderCount++
		st.totalSpend += rec.TotalAmount
		st.totalShipping += rec.ShippingCost
		st.avgLeadTime += float64(rec.LeadTimeDays)

		target, ok := slaTargets[rec.Carrier]
		if !ok {
			target = defaultSLATarget
		}
		if rec.LeadTimeDays <= target {
			st.onTimeOrders++
		}
	}
	for _, st := range s.stats {
		st.avgShippingCost = roundTo2Decimals(st.totalShipping / float64(st.orderCount))
		st.avgLeadTime = roundTo2Decimals(st.avgLeadTime / float64(st.orderCount))
		if st.totalSpend > 0 {
			st.costEfficiency = roundTo2Decimals(st.totalShipping / st.totalSpend * 100)
		}
	}
}

// QuoteInput is the caller-supplied quote request, already validated at
// the transport layer.
type QuoteInput struct {
	PickupLocation  string
	DropoffLocation string
	Items           []etshipment.QuoteItem
	Insurance       string
}

// GetQuote prices a shipment and lists the carriers able to take it.
func (s *ShippingService) GetQuote(ctx context.Context, in QuoteInput) (*etshipment.Quote, error) {
	if len(in.Items) == 0 {
		return nil, errorx.NewBusinessError(400, "quote requires at least one item")
	}

	var totalWeight float64
	var totalItems int
	for _, item := range in.Items {
		qty := item.Quantity
		if qty <= 0 {
			qty = 1
		}
		totalWeight += item.Weight * float64(qty)
		totalItems += qty
	}

	insurance := in.Insurance
	surcharge, ok := insuranceCost[insurance]
	if !ok {
		insurance = "basic"
		surcharge = insuranceCost["basic"]
	}

	cost := quoteBaseCost + totalWeight*quotePerPound + quoteDistanceCost + surcharge

	options := carrierOptionsForWeight(totalWeight)
	estimates := make(map[string]string, len(options))
	for _, carrier := range options {
		estimates[carrier] = deliveryEstimate(carrier)
	}

	return &etshipment.Quote{
		PickupLocation:    in.PickupLocation,
		DropoffLocation:   in.DropoffLocation,
		Items:             in.Items,
		Insurance:         insurance,
		TotalWeight:       roundTo2Decimals(totalWeight),
		TotalItems:        totalItems,
		EstimatedCost:     roundTo2Decimals(cost),
		CarrierOptions:    options,
		DeliveryEstimates: estimates,
	}, nil
}

func carrierOptionsForWeight(totalWeight float64) []string {
	switch {
	case totalWeight <= 50:
		return []string{etprocurement.CarrierFedEx, etprocurement.CarrierUPS, etprocurement.CarrierUSPS}
	case totalWeight <= 150:
		return []string{etprocurement.CarrierFedEx, etprocurement.CarrierUPS}
	default:
		return []string{etprocurement.CarrierDHL}
	}
}

func deliveryEstimate(carrier string) string {
	switch carrier {
	case etprocurement.CarrierFedEx:
		return "1-3 business days"
	case etprocurement.CarrierUPS:
		return "2-4 business days"
	case etprocurement.CarrierUSPS:
		return "3-5 business days"
	case etprocurement.CarrierDHL:
		return "5-10 business days"
	default:
		return "3-7 business days"
	}
}

// Recommendation is one scored carrier option.
type Recommendation struct {
	Carrier             string  `json:"carrier"`
	PredictedCost       float64 `json:"predicted_cost"`
	AvgLeadTime         float64 `json:"avg_lead_time"`
	CostEfficiency      float64 `json:"cost_efficiency"`
	ReliabilityScore    float64 `json:"reliability_score"`
	RecommendationScore float64 `json:"recommendation_score"`
	Reasoning           string  `json:"reasoning"`
}

// RecommendCarriers ranks carriers for an order by score, best first.
// weightCategory is light/medium/heavy, urgency is
// standard/expedited/overnight.
func (s *ShippingService) RecommendCarriers(ctx context.Context, orderValue float64, weightCategory, urgency string) ([]Recommendation, error) {
	if len(s.stats) == 0 {
		return nil, errorx.ErrEmptyDataset
	}
	if weightCategory == "" {
		weightCategory = "medium"
	}
	if urgency == "" {
		urgency = "standard"
	}

	recommendations := make([]Recommendation, 0, len(s.stats))
	for carrier, stats := range s.stats {
		profile := carrierProfiles[carrier]
		recommendations = append(recommendations, Recommendation{
			Carrier:             carrier,
			PredictedCost:       predictCost(carrier, orderValue, stats),
			AvgLeadTime:         stats.avgLeadTime,
			CostEfficiency:      stats.costEfficiency,
			ReliabilityScore:    math.Min(100, float64(stats.orderCount)/10*100),
			RecommendationScore: scoreCarrier(carrier, orderValue, weightCategory, urgency, stats, profile),
			Reasoning:           recommendationReasoning(carrier, profile, urgency, weightCategory),
		})
	}

	sort.Slice(recommendations, func(i, j int) bool {
		if recommendations[i].RecommendationScore != recommendations[j].RecommendationScore {
			return recommendations[i].RecommendationScore > recommendations[j].RecommendationScore
		}
		return recommendations[i].Carrier < recommendations[j].Carrier
	})
	return recommendations, nil
}

func scoreCarrier(carrier string, orderValue float64, weightCategory, urgency string, stats *carrierStats, profile carrierProfile) float64 {
	score := 50.0

	if stats.costEfficiency < 5 {
		score += 20
	} else if stats.costEfficiency < 10 {
		score += 10
	}

	switch {
	case urgency == "overnight" && profile.speed == "fastest":
		score += 25
	case urgency == "expedited" && (profile.speed == "fastest" || profile.speed == "fast"):
		score += 15
	case urgency == "standard" && (profile.costTier == "low" || profile.costTier == "lowest"):
		score += 15
	}

	if weightCategory == "heavy" && carrier == etprocurement.CarrierFreight {
		score += 20
	} else if weightCategory == "light" && (carrier == etprocurement.CarrierUPS || carrier == etprocurement.CarrierFedEx) {
		score += 10
	}

	if orderValue > 10000 && carrier == etprocurement.CarrierFreight {
		score += 15
	} else if orderValue < 1000 && carrier == etprocurement.CarrierGround {
		score += 10
	}

	return math.Min(100, score)
}

func predictCost(carrier string, orderValue float64, stats *carrierStats) float64 {
	valueFactor := orderValue / 1000
	cost := stats.avgShippingCost
	switch carrier {
	case etprocurement.CarrierFreight:
		cost += valueFactor * 50
	case etprocurement.CarrierUPS, etprocurement.CarrierFedEx:
		cost += valueFactor * 25
	default:
		cost += valueFactor * 10
	}
	return roundTo2Decimals(math.Max(cost, 5.0))
}

func recommendationReasoning(carrier string, profile carrierProfile, urgency, weightCategory string) string {
	var reasons []string

	switch {
	case carrier == etprocurement.CarrierFreight && weightCategory == "heavy":
		reasons = append(reasons, "Best for heavy/bulk items")
	case carrier == etprocurement.CarrierFedEx && urgency == "overnight":
		reasons = append(reasons, "Fastest delivery option")
	case carrier == etprocurement.CarrierGround && urgency == "standard":
		reasons = append(reasons, "Most cost-effective for standard delivery")
	case carrier == etprocurement.CarrierUPS:
		reasons = append(reasons, "Good balance of cost and speed")
	}

	if profile.costTier == "lowest" {
		reasons = append(reasons, "Lowest cost option")
	} else if profile.speed == "fastest" {
		reasons = append(reasons, "Fastest delivery")
	}

	if len(reasons) == 0 {
		return "Standard option"
	}
	return strings.Join(reasons, "; ")
}

// CarrierPerformance is the SLA record for one carrier.
type CarrierPerformance struct {
	OnTimeOrders     int     `json:"on_time_orders"`
	TotalOrders      int     `json:"total_orders"`
	OnTimePercentage float64 `json:"on_time_percentage"`
	SLATargetDays    int     `json:"sla_target_days"`
	AvgActualDays    float64 `json:"avg_actual_days"`
}

// PerformanceSummary is the fleet-wide SLA report.
type PerformanceSummary struct {
	TotalOrders              int                            `json:"total_orders"`
	OverallAvgLeadTime       float64                        `json:"overall_avg_lead_time"`
	OverallOnTimePercentage  float64                        `json:"overall_on_time_percentage"`
	PerformanceGrade         string                         `json:"performance_grade"`
	Carriers                 map[string]*CarrierPerformance `json:"carrier_sla_performance"`
	ImprovementOpportunities []string                       `json:"improvement_opportunities"`
}

// GetPerformance reports each carrier's on-time rate against its SLA
// target plus an overall letter grade.
func (s *ShippingService) GetPerformance(ctx context.Context) (*PerformanceSummary, error) {
	records := s.dataset.All()
	if len(records) == 0 {
		return nil, errorx.ErrEmptyDataset
	}

	summary := &PerformanceSummary{
		TotalOrders: len(records),
		Carriers:    make(map[string]*CarrierPerformance, len(s.stats)),
	}

	var totalLeadTime float64
	for _, rec := range records {
		totalLeadTime += float64(rec.LeadTimeDays)
	}
	summary.OverallAvgLeadTime = roundTo2Decimals(totalLeadTime / float64(len(records)))

	var totalOnTime int
	for carrier, stats := range s.stats {
		target, ok := slaTargets[carrier]
		if !ok {
			target = defaultSLATarget
		}
		summary.Carriers[carrier] = &CarrierPerformance{
			OnTimeOrders:     stats.onTimeOrders,
			TotalOrders:      stats.orderCount,
			OnTimePercentage: roundTo2Decimals(float64(stats.onTimeOrders) / float64(stats.orderCount) * 100),
			SLATargetDays:    target,
			AvgActualDays:    stats.avgLeadTime,
		}
		totalOnTime += stats.onTimeOrders
	}

	summary.OverallOnTimePercentage = roundTo2Decimals(float64(totalOnTime) / float64(len(records)) * 100)
	summary.PerformanceGrade = performanceGrade(summary.OverallOnTimePercentage)
	summary.ImprovementOpportunities = improvementOpportunities(summary.Carriers)

	return summary, nil
}

func performanceGrade(onTimePct float64) string {
	switch {
	case onTimePct >= 95:
		return "A+"
	case onTimePct >= 90:
		return "A"
	case onTimePct >= 85:
		return "B+"
	case onTimePct >= 80:
		return "B"
	case onTimePct >= 75:
		return "C+"
	case onTimePct >= 70:
		return "C"
	default:
		return "D"
	}
}

func improvementOpportunities(carriers map[string]*CarrierPerformance) []string {
	var opportunities []string

	worstCarrier := ""
	worstRate := 85.0
	for carrier, perf := range carriers {
		if perf.OnTimePercentage < worstRate {
			worstRate = perf.OnTimePercentage
			worstCarrier = carrier
		}
	}
	if worstCarrier != "" {
		opportunities = append(opportunities, fmt.Sprintf("Replace or renegotiate with %s (lowest on-time rate)", worstCarrier))
	}

	names := make([]string, 0, len(carriers))
	for carrier := range carriers {
		names = append(names, carrier)
	}
	sort.Strings(names)
	for _, carrier := range names {
		perf := carriers[carrier]
		if perf.AvgActualDays > float64(perf.SLATargetDays)*1.5 {
			opportunities = append(opportunities, fmt.Sprintf("Set more realistic SLA targets for %s", carrier))
		}
	}

	var underperforming int
	for _, perf := range carriers {
		if perf.OnTimePercentage < 90 {
			underperforming++
		}
	}
	if underperforming > 1 {
		opportunities = append(opportunities,
			"Implement carrier performance monitoring dashboard",
			"Consider diversifying carrier portfolio")
	}

	if len(opportunities) > 5 {
		opportunities = opportunities[:5]
	}
	return opportunities
}

func roundTo2Decimals(f float64) float64 {
	return math.Round(f*100) / 100
}
