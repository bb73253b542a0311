package campaign

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/biz-manager/backend/internal/application/adapter"
	"github.com/biz-manager/backend/internal/domain/entity"
)

// UpdateCampaignInput represents the input for campaign update. Nil fields
// are left unchanged.
type UpdateCampaignInput struct {
	ID             uuid.UUID
	Name           *string
	Platform       *entity.CampaignPlatform
	StartDate      *time.Time
	EndDate        *time.Time
	Budget         *decimal.Decimal
	LeadsGenerated *int
	Conversions    *int
	Status         *entity.CampaignStatus
}

// UpdateCampaignOutput represents the output of campaign update.
type UpdateCampaignOutput struct {
	Campaign *CampaignOutput
}

// UpdateCampaignUseCase handles campaign update logic.
type UpdateCampaignUseCase struct {
	campaignRepo adapter.CampaignRepository
}

// NewUpdateCampaignUseCase creates a new UpdateCampaignUseCase instance.
func NewUpdateCampaignUseCase(campaignRepo adapter.CampaignRepository) *UpdateCampaignUseCase {
	return &UpdateCampaignUseCase{
		campaignRepo: campaignRepo,
	}
}

// Execute performs the campaign update. The merged state is re-validated and
// derived metrics are recomputed before persistence.
func (uc *UpdateCampaignUseCase) Execute(ctx context.Context, input UpdateCampaignInput) (*UpdateCampaignOutput, error) {
	campaign, err := uc.campaignRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		campaign.Name = *input.Name
	}
	if input.Platform != nil {
		campaign.Platform = *input.Platform
	}
	if input.StartDate != nil {
		campaign.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		campaign.EndDate = *input.EndDate
	}
	if input.Budget != nil {
		campaign.Budget = *input.Budget
	}
	if input.LeadsGenerated != nil {
		campaign.LeadsGenerated = *input.LeadsGenerated
	}
	if input.Conversions != nil {
		campaign.Conversions = *input.Conversions
	}
	if input.Status != nil {
		campaign.Status = *input.Status
	}

	if err := validateCampaignFields(
		campaign.Name,
		campaign.Platform,
		campaign.StartDate,
		campaign.EndDate,
		campaign.Budget,
		campaign.LeadsGenerated,
		campaign.Conversions,
		campaign.Status,
	); err != nil {
		return nil, err
	}

	campaign.CostPerLead, campaign.ROI = CalculateMetrics(
		campaign.Budget,
		campaign.LeadsGenerated,
		campaign.Conversions,
	)
	campaign.UpdatedAt = time.Now().UTC()

	if err := uc.campaignRepo.Update(ctx, campaign); err != nil {
		return nil, fmt.Errorf("failed to update campaign: %w", err)
	}

	return &UpdateCampaignOutput{Campaign: ToCampaignOutput(campaign)}, nil
}
