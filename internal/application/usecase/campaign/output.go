package campaign

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/biz-manager/backend/internal/domain/entity"
)

// CampaignOutput represents a campaign enriched with its derived fields, as
// returned to the caller layer for serialization.
type CampaignOutput struct {
	ID             uuid.UUID
	Name           string
	Platform       entity.CampaignPlatform
	StartDate      time.Time
	EndDate        time.Time
	Budget         decimal.Decimal
	LeadsGenerated int
	Conversions    int
	CostPerLead    decimal.Decimal
	ROI            decimal.Decimal
	ConversionRate decimal.Decimal
	Status         entity.CampaignStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ToCampaignOutput maps a campaign entity to its output, deriving the
// read-only conversion rate.
func ToCampaignOutput(c *entity.Campaign) *CampaignOutput {
	return &CampaignOutput{
		ID:             c.ID,
		Name:           c.Name,
		Platform:       c.Platform,
		StartDate:      c.StartDate,
		EndDate:        c.EndDate,
		Budget:         c.Budget,
		LeadsGenerated: c.LeadsGenerated,
		Conversions:    c.Conversions,
		CostPerLead:    c.CostPerLead,
		ROI:            c.ROI,
		ConversionRate: ConversionRate(c.LeadsGenerated, c.Conversions),
		Status:         c.Status,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}
