package svdiversity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isaiahriv1234/Freight-Project/internal/app/domains/entity/etprocurement"
	"github.com/isaiahriv1234/Freight-Project/internal/app/domains/repo/rpdataset"
	"github.com/isaiahriv1234/Freight-Project/internal/app/pkg/errorx"
)

func date(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func fixtureService() *DiversityService {
	return NewDiversityService(rpdataset.NewMemoryRepository([]*etprocurement.Record{
		{POID: "PO-1", SupplierName: "Coastal Lab Supply", SupplierDiversityCategory: etprocurement.DiversityDVBE, TotalAmount: 2000, LeadTimeDays: 8, PODate: date("2024-01-05")},
		{POID: "PO-2", SupplierName: "Coastal Lab Supply", SupplierDiversityCategory: etprocurement.DiversityDVBE, TotalAmount: 1000, LeadTimeDays: 12, PODate: date("2024-02-10")},
		{POID: "PO-3", SupplierName: "Mustang Printing", SupplierDiversityCategory: etprocurement.DiversityMB, TotalAmount: 500, LeadTimeDays: 5, PODate: date("2024-02-15")},
		{POID: "PO-4", SupplierName: "Dell Marketing LP", SupplierDiversityCategory: etprocurement.DiversityNone, TotalAmount: 6500, LeadTimeDays: 3, PODate: date("2024-03-01")},
	}))
}

func TestGetSummary(t *testing.T) {
	summary, err := fixtureService().GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 10000.0, summary.TotalSpend)
	assert.Equal(t, 4, summary.TotalOrders)
	assert.Equal(t, 35.0, summary.DiversitySpendPercentage)
	require.Len(t, summary.Breakdown, 3)

	byCategory := make(map[string]CategorySummary)
	for _, entry := range summary.Breakdown {
		byCategory[entry.Category] = entry
	}

	dvbe := byCategory[etprocurement.DiversityDVBE]
	assert.Equal(t, 3000.0, dvbe.TotalSpend)
	assert.Equal(t, 30.0, dvbe.SpendPercentage)
	assert.Equal(t, 2, dvbe.OrderCount)
	assert.Equal(t, 1, dvbe.SupplierCount)
	assert.Equal(t, 1500.0, dvbe.AvgOrderValue)
	assert.Equal(t, "Disabled Veteran Business Enterprise", dvbe.CategoryName)
}

func TestGetSummaryEmptyDataset(t *testing.T) {
	svc := NewDiversityService(rpdataset.NewMemoryRepository(nil))
	_, err := svc.GetSummary(context.Background())
	assert.ErrorIs(t, err, errorx.ErrEmptyDataset)
}

func TestGetDiverseSuppliers(t *testing.T) {
	suppliers, err := fixtureService().GetDiverseSuppliers(context.Background())
	require.NoError(t, err)

	// Non-diverse suppliers are excluded; ranking is by spend descending.
	require.Len(t, suppliers, 2)
	assert.Equal(t, "Coastal Lab Supply", suppliers[0].SupplierName)
	assert.Equal(t, 3000.0, suppliers[0].TotalSpend)
	assert.Equal(t, 2, suppliers[0].OrderCount)
	assert.Equal(t, 10.0, suppliers[0].AvgLeadTime)
	assert.Equal(t, "2024-02-10", suppliers[0].LastOrderDate)
	assert.Equal(t, "Mustang Printing", suppliers[1].SupplierName)
}

func TestPerformanceScoreBounds(t *testing.T) {
	records := []*etprocurement.Record{
		{PODate: date("2024-01-01"), LeadTimeDays: 5},
		{PODate: date("2024-01-08"), LeadTimeDays: 5},
		{PODate: date("2024-01-15"), LeadTimeDays: 5},
	}
	score := performanceScore(records)
	assert.GreaterOrEqual(t, score, 50.0)
	assert.LessOrEqual(t, score, 100.0)
}

func TestTrackGoalsNotMet(t *testing.T) {
	tracking, err := fixtureService().TrackGoals(context.Background(), 50)
	require.NoError(t, err)

	assert.Equal(t, "Not Met", tracking.GoalStatus)
	assert.Equal(t, 50.0, tracking.TargetPercentage)
	assert.Equal(t, 35.0, tracking.CurrentPercentage)
	assert.Equal(t, 15.0, tracking.GapPercentage)
	assert.Equal(t, 5000.0, tracking.TargetSpend)
	assert.Equal(t, 3500.0, tracking.CurrentDiverseSpend)
	assert.Equal(t, 1500.0, tracking.SpendGap)
	assert.NotEmpty(t, tracking.Recommendations)
}

func TestTrackGoalsMet(t *testing.T) {
	tracking, err := fixtureService().TrackGoals(context.Background(), 20)
	require.NoError(t, err)

	assert.Equal(t, "Met", tracking.GoalStatus)
	require.Len(t, tracking.Recommendations, 1)
	assert.Contains(t, tracking.Recommendations[0], "being met")
}

func TestTrackGoalsDefaultTarget(t *testing.T) {
	tracking, err := fixtureService().TrackGoals(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultGoalTarget, tracking.TargetPercentage)
}
