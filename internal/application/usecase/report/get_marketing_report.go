package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/biz-manager/backend/internal/application/adapter"
	"github.com/biz-manager/backend/internal/application/usecase/campaign"
	"github.com/biz-manager/backend/internal/domain/entity"
)

// GetMarketingReportInput represents the input for the marketing report. The
// period filters on the campaign start date.
type GetMarketingReportInput struct {
	StartDate time.Time
	EndDate   time.Time
}

// GetMarketingReportOutput represents the marketing report payload.
type GetMarketingReportOutput struct {
	Period              ReportPeriod
	TotalBudget         decimal.Decimal
	TotalLeads          int64
	TotalConversions    int64
	PlatformPerformance []entity.PlatformPerformance
	Campaigns           []*campaign.CampaignOutput
}

// GetMarketingReportUseCase builds the marketing report from the raw
// campaign rows of the period.
type GetMarketingReportUseCase struct {
	campaignRepo adapter.CampaignRepository
}

// NewGetMarketingReportUseCase creates a new GetMarketingReportUseCase instance.
func NewGetMarketingReportUseCase(campaignRepo adapter.CampaignRepository) *GetMarketingReportUseCase {
	return &GetMarketingReportUseCase{
		campaignRepo: campaignRepo,
	}
}

// Execute fetches the period's campaigns once and derives totals and the
// per-platform performance from them.
func (uc *GetMarketingReportUseCase) Execute(ctx context.Context, input GetMarketingReportInput) (*GetMarketingReportOutput, error) {
	period, err := resolvePeriod(input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	campaigns, err := uc.campaignRepo.FindByFilter(ctx, adapter.CampaignFilter{
		StartDate: &period.StartDate,
		EndDate:   &period.EndDate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch report campaigns: %w", err)
	}

	output := &GetMarketingReportOutput{
		Period:      period,
		TotalBudget: decimal.Zero,
		Campaigns:   make([]*campaign.CampaignOutput, len(campaigns)),
	}

	byPlatform := map[entity.CampaignPlatform]*entity.PlatformPerformance{}
	for i, c := range campaigns {
		output.Campaigns[i] = campaign.ToCampaignOutput(c)
		output.TotalBudget = output.TotalBudget.Add(c.Budget)
		output.TotalLeads += int64(c.LeadsGenerated)
		output.TotalConversions += int64(c.Conversions)

		row, ok := byPlatform[c.Platform]
		if !ok {
			row = &entity.PlatformPerformance{Platform: c.Platform, Budget: decimal.Zero}
			byPlatform[c.Platform] = row
		}
		row.Campaigns++
		row.Budget = row.Budget.Add(c.Budget)
		row.Leads += int64(c.LeadsGenerated)
		row.Conversions += int64(c.Conversions)
	}

	output.PlatformPerformance = make([]entity.PlatformPerformance, 0, len(byPlatform))
	for _, row := range byPlatform {
		output.PlatformPerformance = append(output.PlatformPerformance, *row)
	}
	sort.Slice(output.PlatformPerformance, func(i, j int) bool {
		return output.PlatformPerformance[i].Leads > output.PlatformPerformance[j].Leads
	})

	return output, nil
}
