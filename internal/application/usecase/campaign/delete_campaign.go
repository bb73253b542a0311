package campaign

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/biz-manager/backend/internal/application/adapter"
)

// DeleteCampaignInput represents the input for campaign deletion.
type DeleteCampaignInput struct {
	ID uuid.UUID
}

// DeleteCampaignUseCase handles campaign deletion logic.
type DeleteCampaignUseCase struct {
	campaignRepo adapter.CampaignRepository
}

// NewDeleteCampaignUseCase creates a new DeleteCampaignUseCase instance.
func NewDeleteCampaignUseCase(campaignRepo adapter.CampaignRepository) *DeleteCampaignUseCase {
	return &DeleteCampaignUseCase{
		campaignRepo: campaignRepo,
	}
}

// Execute deletes a campaign by ID. Transactions weakly referencing the
// campaign are left untouched.
func (uc *DeleteCampaignUseCase) Execute(ctx context.Context, input DeleteCampaignInput) error {
	if _, err := uc.campaignRepo.FindByID(ctx, input.ID); err != nil {
		return err
	}

	if err := uc.campaignRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete campaign: %w", err)
	}

	return nil
}
