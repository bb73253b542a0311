package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/biz-manager/backend/internal/domain/entity"
)

// CampaignModel represents the campaigns table in the database.
type CampaignModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name           string          `gorm:"type:varchar(255);not null"`
	Platform       string          `gorm:"type:varchar(20);not null;index"`
	StartDate      time.Time       `gorm:"type:timestamptz;not null;index"`
	EndDate        time.Time       `gorm:"type:timestamptz;not null"`
	Budget         decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	LeadsGenerated int             `gorm:"not null;default:0"`
	Conversions    int             `gorm:"not null;default:0"`
	CostPerLead    decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	ROI            decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Status         string          `gorm:"type:varchar(20);not null;index"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`
}

// TableName returns the table name for the CampaignModel.
func (CampaignModel) TableName() string {
	return "campaigns"
}

// ToEntity converts a CampaignModel to a domain Campaign entity.
func (m *CampaignModel) ToEntity() *entity.Campaign {
	return &entity.Campaign{
		ID:             m.ID,
		Name:           m.Name,
		Platform:       entity.CampaignPlatform(m.Platform),
		StartDate:      m.StartDate,
		EndDate:        m.EndDate,
		Budget:         m.Budget,
		LeadsGenerated: m.LeadsGenerated,
		Conversions:    m.Conversions,
		CostPerLead:    m.CostPerLead,
		ROI:            m.ROI,
		Status:         entity.CampaignStatus(m.Status),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// CampaignFromEntity creates a CampaignModel from a domain Campaign entity.
func CampaignFromEntity(campaign *entity.Campaign) *CampaignModel {
	return &CampaignModel{
		ID:             campaign.ID,
		Name:           campaign.Name,
		Platform:       string(campaign.Platform),
		StartDate:      campaign.StartDate,
		EndDate:        campaign.EndDate,
		Budget:         campaign.Budget,
		LeadsGenerated: campaign.LeadsGenerated,
		Conversions:    campaign.Conversions,
		CostPerLead:    campaign.CostPerLead,
		ROI:            campaign.ROI,
		Status:         string(campaign.Status),
		CreatedAt:      campaign.CreatedAt,
		UpdatedAt:      campaign.UpdatedAt,
	}
}
