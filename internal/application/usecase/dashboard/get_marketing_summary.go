package dashboard

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/biz-manager/backend/internal/application/adapter"
	"github.com/biz-manager/backend/internal/domain/entity"
)

// monthlyCampaignLimit caps the monthly campaign series on the marketing dashboard.
const monthlyCampaignLimit = 12

// GetMarketingSummaryOutput represents the marketing dashboard payload.
type GetMarketingSummaryOutput struct {
	TotalCampaigns   int64
	ActiveCampaigns  int64
	TotalBudget      decimal.Decimal
	TotalLeads       int64
	TotalConversions int64
	AvgCostPerLead   decimal.Decimal
	ConversionRate   decimal.Decimal
	LeadsByPlatform  []entity.PlatformPerformance
	MonthlyCampaigns []entity.MonthlyCampaignStats
}

// GetMarketingSummaryUseCase assembles the marketing dashboard.
type GetMarketingSummaryUseCase struct {
	campaignRepo adapter.CampaignRepository
}

// NewGetMarketingSummaryUseCase creates a new GetMarketingSummaryUseCase instance.
func NewGetMarketingSummaryUseCase(campaignRepo adapter.CampaignRepository) *GetMarketingSummaryUseCase {
	return &GetMarketingSummaryUseCase{
		campaignRepo: campaignRepo,
	}
}

// Execute aggregates campaign counts, spend, lead metrics, per-platform
// performance and the monthly campaign series.
func (uc *GetMarketingSummaryUseCase) Execute(ctx context.Context) (*GetMarketingSummaryOutput, error) {
	total, err := uc.campaignRepo.Count(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to count campaigns: %w", err)
	}

	active := entity.CampaignStatusActive
	activeCount, err := uc.campaignRepo.Count(ctx, &active)
	if err != nil {
		return nil, fmt.Errorf("failed to count active campaigns: %w", err)
	}

	totals, err := uc.campaignRepo.GetTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get campaign totals: %w", err)
	}

	byPlatform, err := uc.campaignRepo.GetPlatformPerformance(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get platform performance: %w", err)
	}

	monthly, err := uc.campaignRepo.GetMonthlyStats(ctx, monthlyCampaignLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly campaign stats: %w", err)
	}

	avgCostPerLead := decimal.Zero
	if totals.TotalLeads > 0 {
		avgCostPerLead = totals.TotalBudget.Div(decimal.NewFromInt(totals.TotalLeads))
	}

	conversionRate := decimal.Zero
	if totals.TotalLeads > 0 {
		conversionRate = decimal.NewFromInt(totals.TotalConversions).
			Div(decimal.NewFromInt(totals.TotalLeads)).
			Mul(hundred)
	}

	return &GetMarketingSummaryOutput{
		TotalCampaigns:   total,
		ActiveCampaigns:  activeCount,
		TotalBudget:      totals.TotalBudget,
		TotalLeads:       totals.TotalLeads,
		TotalConversions: totals.TotalConversions,
		AvgCostPerLead:   avgCostPerLead,
		ConversionRate:   conversionRate,
		LeadsByPlatform:  byPlatform,
		MonthlyCampaigns: monthly,
	}, nil
}
