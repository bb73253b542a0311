// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CampaignPlatform represents the advertising platform a campaign runs on.
type CampaignPlatform string

const (
	PlatformFacebook CampaignPlatform = "Facebook"
	PlatformGoogle   CampaignPlatform = "Google"
	PlatformEmail    CampaignPlatform = "Email"
)

// CampaignStatus represents the user-set status of a campaign.
// Unlike invoice status it is never derived.
type CampaignStatus string

const (
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusCompleted CampaignStatus = "completed"
	CampaignStatusPaused    CampaignStatus = "paused"
)

// Campaign represents a marketing effort on one platform over a date range.
// CostPerLead and ROI are derived from budget/leads/conversions and persisted
// for read efficiency; they are recomputed on every create and update.
type Campaign struct {
	ID             uuid.UUID
	Name           string
	Platform       CampaignPlatform
	StartDate      time.Time
	EndDate        time.Time
	Budget         decimal.Decimal
	LeadsGenerated int
	Conversions    int
	CostPerLead    decimal.Decimal
	ROI            decimal.Decimal
	Status         CampaignStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewCampaign creates a new Campaign entity. Derived metrics are left zero;
// the campaign use cases compute them before persistence.
func NewCampaign(
	name string,
	platform CampaignPlatform,
	startDate, endDate time.Time,
	budget decimal.Decimal,
	leadsGenerated, conversions int,
	status CampaignStatus,
) *Campaign {
	now := time.Now().UTC()

	if status == "" {
		status = CampaignStatusActive
	}

	return &Campaign{
		ID:             uuid.New(),
		Name:           name,
		Platform:       platform,
		StartDate:      startDate,
		EndDate:        endDate,
		Budget:         budget,
		LeadsGenerated: leadsGenerated,
		Conversions:    conversions,
		Status:         status,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// CampaignTotals represents aggregated metrics across campaigns.
type CampaignTotals struct {
	TotalBudget      decimal.Decimal
	TotalLeads       int64
	TotalConversions int64
}

// PlatformPerformance represents aggregated campaign metrics for one platform.
type PlatformPerformance struct {
	Platform    CampaignPlatform
	Campaigns   int64
	Budget      decimal.Decimal
	Leads       int64
	Conversions int64
}

// MonthlyCampaignStats represents campaign activity grouped by start month.
type MonthlyCampaignStats struct {
	Year   int
	Month  int
	Count  int64
	Budget decimal.Decimal
	Leads  int64
}
