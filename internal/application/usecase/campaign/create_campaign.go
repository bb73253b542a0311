package campaign

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/biz-manager/backend/internal/application/adapter"
	"github.com/biz-manager/backend/internal/domain/entity"
	domainerror "github.com/biz-manager/backend/internal/domain/error"
)

// CreateCampaignInput represents the input for campaign creation.
type CreateCampaignInput struct {
	Name           string
	Platform       entity.CampaignPlatform
	StartDate      time.Time
	EndDate        time.Time
	Budget         decimal.Decimal
	LeadsGenerated int
	Conversions    int
	Status         entity.CampaignStatus
}

// CreateCampaignOutput represents the output of campaign creation.
type CreateCampaignOutput struct {
	Campaign *CampaignOutput
}

// CreateCampaignUseCase handles campaign creation logic.
type CreateCampaignUseCase struct {
	campaignRepo adapter.CampaignRepository
}

// NewCreateCampaignUseCase creates a new CreateCampaignUseCase instance.
func NewCreateCampaignUseCase(campaignRepo adapter.CampaignRepository) *CreateCampaignUseCase {
	return &CreateCampaignUseCase{
		campaignRepo: campaignRepo,
	}
}

// Execute performs the campaign creation. Derived metrics are computed before
// persistence.
func (uc *CreateCampaignUseCase) Execute(ctx context.Context, input CreateCampaignInput) (*CreateCampaignOutput, error) {
	if err := validateCampaignFields(
		input.Name,
		input.Platform,
		input.StartDate,
		input.EndDate,
		input.Budget,
		input.LeadsGenerated,
		input.Conversions,
		input.Status,
	); err != nil {
		return nil, err
	}

	campaign := entity.NewCampaign(
		input.Name,
		input.Platform,
		input.StartDate,
		input.EndDate,
		input.Budget,
		input.LeadsGenerated,
		input.Conversions,
		input.Status,
	)

	campaign.CostPerLead, campaign.ROI = CalculateMetrics(
		campaign.Budget,
		campaign.LeadsGenerated,
		campaign.Conversions,
	)

	if err := uc.campaignRepo.Create(ctx, campaign); err != nil {
		return nil, fmt.Errorf("failed to create campaign: %w", err)
	}

	return &CreateCampaignOutput{Campaign: ToCampaignOutput(campaign)}, nil
}

// validateCampaignFields enforces the campaign write invariants shared by
// create and update.
func validateCampaignFields(
	name string,
	platform entity.CampaignPlatform,
	startDate, endDate time.Time,
	budget decimal.Decimal,
	leadsGenerated, conversions int,
	status entity.CampaignStatus,
) error {
	if name == "" {
		return domainerror.NewCampaignError(
			domainerror.ErrCodeMissingCampaignName,
			"campaign name is required",
			domainerror.ErrMissingCampaignName,
		)
	}

	if !isValidPlatform(platform) {
		return domainerror.NewCampaignError(
			domainerror.ErrCodeInvalidCampaignPlatform,
			"platform must be 'Facebook', 'Google' or 'Email'",
			domainerror.ErrInvalidCampaignPlatform,
		)
	}

	if startDate.IsZero() || endDate.IsZero() || endDate.Before(startDate) {
		return domainerror.NewCampaignError(
			domainerror.ErrCodeInvalidCampaignDateRange,
			"end date must not be before start date",
			domainerror.ErrInvalidCampaignDateRange,
		)
	}

	if budget.IsNegative() {
		return domainerror.NewCampaignError(
			domainerror.ErrCodeNegativeCampaignBudget,
			"budget cannot be negative",
			domainerror.ErrNegativeCampaignBudget,
		)
	}

	if leadsGenerated < 0 || conversions < 0 {
		return domainerror.NewCampaignError(
			domainerror.ErrCodeNegativeCampaignCounts,
			"leads and conversions cannot be negative",
			domainerror.ErrNegativeCampaignCounts,
		)
	}

	if conversions > leadsGenerated {
		return domainerror.NewCampaignError(
			domainerror.ErrCodeConversionsExceedLeads,
			"conversions cannot be greater than leads generated",
			domainerror.ErrConversionsExceedLeads,
		)
	}

	if status != "" && !isValidCampaignStatus(status) {
		return domainerror.NewCampaignError(
			domainerror.ErrCodeInvalidCampaignStatus,
			"status must be 'active', 'completed' or 'paused'",
			domainerror.ErrInvalidCampaignStatus,
		)
	}

	return nil
}

// isValidPlatform validates the campaign platform.
func isValidPlatform(platform entity.CampaignPlatform) bool {
	switch platform {
	case entity.PlatformFacebook, entity.PlatformGoogle, entity.PlatformEmail:
		return true
	}
	return false
}

// isValidCampaignStatus validates the campaign status.
func isValidCampaignStatus(status entity.CampaignStatus) bool {
	switch status {
	case entity.CampaignStatusActive, entity.CampaignStatusCompleted, entity.CampaignStatusPaused:
		return true
	}
	return false
}
