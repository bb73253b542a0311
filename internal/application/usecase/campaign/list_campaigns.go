package campaign

import (
	"context"
	"fmt"
	"time"

	"github.com/biz-manager/backend/internal/application/adapter"
	"github.com/biz-manager/backend/internal/domain/entity"
)

// ListCampaignsInput represents the filter criteria for listing campaigns.
type ListCampaignsInput struct {
	Status    *entity.CampaignStatus
	Platform  *entity.CampaignPlatform
	StartDate *time.Time
	EndDate   *time.Time
}

// ListCampaignsOutput represents the output of listing campaigns.
type ListCampaignsOutput struct {
	Campaigns []*CampaignOutput
	Count     int
}

// ListCampaignsUseCase handles campaign listing logic.
type ListCampaignsUseCase struct {
	campaignRepo adapter.CampaignRepository
}

// NewListCampaignsUseCase creates a new ListCampaignsUseCase instance.
func NewListCampaignsUseCase(campaignRepo adapter.CampaignRepository) *ListCampaignsUseCase {
	return &ListCampaignsUseCase{
		campaignRepo: campaignRepo,
	}
}

// Execute retrieves campaigns matching the filter, newest first.
func (uc *ListCampaignsUseCase) Execute(ctx context.Context, input ListCampaignsInput) (*ListCampaignsOutput, error) {
	campaigns, err := uc.campaignRepo.FindByFilter(ctx, adapter.CampaignFilter{
		Status:    input.Status,
		Platform:  input.Platform,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}

	outputs := make([]*CampaignOutput, len(campaigns))
	for i, c := range campaigns {
		outputs[i] = ToCampaignOutput(c)
	}

	return &ListCampaignsOutput{
		Campaigns: outputs,
		Count:     len(outputs),
	}, nil
}
