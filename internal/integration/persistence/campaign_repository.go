package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/biz-manager/backend/internal/application/adapter"
	"github.com/biz-manager/backend/internal/domain/entity"
	domainerror "github.com/biz-manager/backend/internal/domain/error"
	"github.com/biz-manager/backend/internal/integration/persistence/model"
)

// campaignRepository implements the adapter.CampaignRepository interface.
type campaignRepository struct {
	db *gorm.DB
}

// NewCampaignRepository creates a new campaign repository instance.
func NewCampaignRepository(db *gorm.DB) adapter.CampaignRepository {
	return &campaignRepository{
		db: db,
	}
}

// Create creates a new campaign in the database.
func (r *campaignRepository) Create(ctx context.Context, campaign *entity.Campaign) error {
	campaignModel := model.CampaignFromEntity(campaign)
	return r.db.WithContext(ctx).Create(campaignModel).Error
}

// FindByID retrieves a campaign by its ID.
func (r *campaignRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Campaign, error) {
	var campaignModel model.CampaignModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&campaignModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCampaignNotFound
		}
		return nil, result.Error
	}
	return campaignModel.ToEntity(), nil
}

// FindByFilter retrieves campaigns based on filter criteria, newest first.
func (r *campaignRepository) FindByFilter(ctx context.Context, filter adapter.CampaignFilter) ([]*entity.Campaign, error) {
	query := r.db.WithContext(ctx).Model(&model.CampaignModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.Platform != nil {
		query = query.Where("platform = ?", string(*filter.Platform))
	}
	if filter.StartDate != nil {
		query = query.Where("start_date >= ?", filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("start_date <= ?", filter.EndDate)
	}

	var campaignModels []model.CampaignModel
	result := query.Order("created_at DESC").Find(&campaignModels)
	if result.Error != nil {
		return nil, result.Error
	}

	campaigns := make([]*entity.Campaign, len(campaignModels))
	for i, cm := range campaignModels {
		campaigns[i] = cm.ToEntity()
	}
	return campaigns, nil
}

// Update updates an existing campaign in the database.
func (r *campaignRepository) Update(ctx context.Context, campaign *entity.Campaign) error {
	campaignModel := model.CampaignFromEntity(campaign)
	result := r.db.WithContext(ctx).
		Model(&model.CampaignModel{}).
		Where("id = ?", campaign.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(campaignModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrCampaignNotFound
	}
	return nil
}

// Delete removes a campaign from the database.
func (r *campaignRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CampaignModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrCampaignNotFound
	}
	return nil
}

// Count returns the number of campaigns, optionally restricted to a status.
func (r *campaignRepository) Count(ctx context.Context, status *entity.CampaignStatus) (int64, error) {
	query := r.db.WithContext(ctx).Model(&model.CampaignModel{})
	if status != nil {
		query = query.Where("status = ?", string(*status))
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GetTotals returns budget/leads/conversions summed over all campaigns.
func (r *campaignRepository) GetTotals(ctx context.Context) (*entity.CampaignTotals, error) {
	var row struct {
		TotalBudget      decimal.Decimal
		TotalLeads       int64
		TotalConversions int64
	}

	result := r.db.WithContext(ctx).
		Model(&model.CampaignModel{}).
		Select("COALESCE(SUM(budget), 0) AS total_budget, COALESCE(SUM(leads_generated), 0) AS total_leads, COALESCE(SUM(conversions), 0) AS total_conversions").
		Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}

	return &entity.CampaignTotals{
		TotalBudget:      row.TotalBudget,
		TotalLeads:       row.TotalLeads,
		TotalConversions: row.TotalConversions,
	}, nil
}

// GetPlatformPerformance returns aggregated metrics per platform, most leads first.
func (r *campaignRepository) GetPlatformPerformance(ctx context.Context) ([]entity.PlatformPerformance, error) {
	var rows []struct {
		Platform    string
		Campaigns   int64
		Budget      decimal.Decimal
		Leads       int64
		Conversions int64
	}

	result := r.db.WithContext(ctx).
		Model(&model.CampaignModel{}).
		Select("platform, COUNT(*) AS campaigns, COALESCE(SUM(budget), 0) AS budget, COALESCE(SUM(leads_generated), 0) AS leads, COALESCE(SUM(conversions), 0) AS conversions").
		Group("platform").
		Order("leads DESC").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	performance := make([]entity.PlatformPerformance, len(rows))
	for i, row := range rows {
		performance[i] = entity.PlatformPerformance{
			Platform:    entity.CampaignPlatform(row.Platform),
			Campaigns:   row.Campaigns,
			Budget:      row.Budget,
			Leads:       row.Leads,
			Conversions: row.Conversions,
		}
	}
	return performance, nil
}

// GetMonthlyStats returns campaign activity grouped by start month,
// chronological, capped at limit entries.
func (r *campaignRepository) GetMonthlyStats(ctx context.Context, limit int) ([]entity.MonthlyCampaignStats, error) {
	var rows []struct {
		Year   int
		Month  int
		Count  int64
		Budget decimal.Decimal
		Leads  int64
	}

	result := r.db.WithContext(ctx).
		Model(&model.CampaignModel{}).
		Select("EXTRACT(YEAR FROM start_date)::int AS year, EXTRACT(MONTH FROM start_date)::int AS month, COUNT(*) AS count, COALESCE(SUM(budget), 0) AS budget, COALESCE(SUM(leads_generated), 0) AS leads").
		Group("year, month").
		Order("year DESC, month DESC").
		Limit(limit).
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	// Rows come newest first to honor the limit; present them chronologically.
	stats := make([]entity.MonthlyCampaignStats, len(rows))
	for i, row := range rows {
		stats[len(rows)-1-i] = entity.MonthlyCampaignStats{
			Year:   row.Year,
			Month:  row.Month,
			Count:  row.Count,
			Budget: row.Budget,
			Leads:  row.Leads,
		}
	}
	return stats, nil
}
