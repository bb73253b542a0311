package campaign

import (
	"context"

	"github.com/google/uuid"

	"github.com/biz-manager/backend/internal/application/adapter"
)

// GetCampaignInput represents the input for retrieving a single campaign.
type GetCampaignInput struct {
	ID uuid.UUID
}

// GetCampaignOutput represents the output of retrieving a single campaign.
type GetCampaignOutput struct {
	Campaign *CampaignOutput
}

// GetCampaignUseCase handles single campaign retrieval.
type GetCampaignUseCase struct {
	campaignRepo adapter.CampaignRepository
}

// NewGetCampaignUseCase creates a new GetCampaignUseCase instance.
func NewGetCampaignUseCase(campaignRepo adapter.CampaignRepository) *GetCampaignUseCase {
	return &GetCampaignUseCase{
		campaignRepo: campaignRepo,
	}
}

// Execute retrieves a campaign by ID.
func (uc *GetCampaignUseCase) Execute(ctx context.Context, input GetCampaignInput) (*GetCampaignOutput, error) {
	campaign, err := uc.campaignRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &GetCampaignOutput{Campaign: ToCampaignOutput(campaign)}, nil
}
