package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/biz-manager/backend/internal/domain/entity"
)

// CampaignFilter represents filter criteria for campaign queries. The date
// bounds apply to the campaign start date.
type CampaignFilter struct {
	Status    *entity.CampaignStatus
	Platform  *entity.CampaignPlatform
	StartDate *time.Time
	EndDate   *time.Time
}

// CampaignRepository defines the interface for campaign persistence operations.
type CampaignRepository interface {
	// Create persists a new campaign.
	Create(ctx context.Context, campaign *entity.Campaign) error

	// FindByID retrieves a campaign by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Campaign, error)

	// FindByFilter retrieves campaigns matching the filter, newest first.
	FindByFilter(ctx context.Context, filter CampaignFilter) ([]*entity.Campaign, error)

	// Update persists changes to an existing campaign.
	Update(ctx context.Context, campaign *entity.Campaign) error

	// Delete removes a campaign.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the number of campaigns, optionally restricted to a status.
	Count(ctx context.Context, status *entity.CampaignStatus) (int64, error)

	// GetTotals returns budget/leads/conversions summed over all campaigns.
	GetTotals(ctx context.Context) (*entity.CampaignTotals, error)

	// GetPlatformPerformance returns aggregated metrics per platform, most leads first.
	GetPlatformPerformance(ctx context.Context) ([]entity.PlatformPerformance, error)

	// GetMonthlyStats returns campaign activity grouped by start month,
	// chronological, capped at limit entries.
	GetMonthlyStats(ctx context.Context, limit int) ([]entity.MonthlyCampaignStats, error)
}
