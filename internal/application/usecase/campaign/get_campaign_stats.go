package campaign

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/biz-manager/backend/internal/application/adapter"
	"github.com/biz-manager/backend/internal/domain/entity"
)

// monthlyStatsLimit caps the monthly series returned by the stats overview.
const monthlyStatsLimit = 12

// GetCampaignStatsOutput represents the campaign statistics overview.
type GetCampaignStatsOutput struct {
	TotalCampaigns   int64
	ActiveCampaigns  int64
	TotalBudget      decimal.Decimal
	TotalLeads       int64
	TotalConversions int64
	LeadsByPlatform  []entity.PlatformPerformance
	MonthlyCampaigns []entity.MonthlyCampaignStats
}

// GetCampaignStatsUseCase handles the campaign statistics overview.
type GetCampaignStatsUseCase struct {
	campaignRepo adapter.CampaignRepository
}

// NewGetCampaignStatsUseCase creates a new GetCampaignStatsUseCase instance.
func NewGetCampaignStatsUseCase(campaignRepo adapter.CampaignRepository) *GetCampaignStatsUseCase {
	return &GetCampaignStatsUseCase{
		campaignRepo: campaignRepo,
	}
}

// Execute aggregates campaign statistics: counts, totals, per-platform
// performance and the monthly series.
func (uc *GetCampaignStatsUseCase) Execute(ctx context.Context) (*GetCampaignStatsOutput, error) {
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

	monthly, err := uc.campaignRepo.GetMonthlyStats(ctx, monthlyStatsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly campaign stats: %w", err)
	}

	return &GetCampaignStatsOutput{
		TotalCampaigns:   total,
		ActiveCampaigns:  activeCount,
		TotalBudget:      totals.TotalBudget,
		TotalLeads:       totals.TotalLeads,
		TotalConversions: totals.TotalConversions,
		LeadsByPlatform:  byPlatform,
		MonthlyCampaigns: monthly,
	}, nil
}
