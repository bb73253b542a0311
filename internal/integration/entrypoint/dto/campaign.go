package dto

import (
	"time"

	"github.com/biz-manager/backend/internal/application/usecase/campaign"
	"github.com/biz-manager/backend/internal/domain/entity"
)

// CreateCampaignRequest represents the request body for campaign creation.
type CreateCampaignRequest struct {
	Name           string  `json:"name" binding:"required"`
	Platform       string  `json:"platform" binding:"required,oneof=Facebook Google Email"`
	StartDate      string  `json:"startDate" binding:"required"`
	EndDate        string  `json:"endDate" binding:"required"`
	Budget         float64 `json:"budget"`
	LeadsGenerated int     `json:"leadsGenerated,omitempty"`
	Conversions    int     `json:"conversions,omitempty"`
	Status         string  `json:"status,omitempty" binding:"omitempty,oneof=active completed paused"`
}

// UpdateCampaignRequest represents the request body for campaign update.
type UpdateCampaignRequest struct {
	Name           *string  `json:"name,omitempty"`
	Platform       *string  `json:"platform,omitempty" binding:"omitempty,oneof=Facebook Google Email"`
	StartDate      *string  `json:"startDate,omitempty"`
	EndDate        *string  `json:"endDate,omitempty"`
	Budget         *float64 `json:"budget,omitempty"`
	LeadsGenerated *int     `json:"leadsGenerated,omitempty"`
	Conversions    *int     `json:"conversions,omitempty"`
	Status         *string  `json:"status,omitempty" binding:"omitempty,oneof=active completed paused"`
}

// CampaignResponse represents a single campaign in API responses. The metric
// fields are derived server-side.
type CampaignResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Platform       string    `json:"platform"`
	StartDate      string    `json:"startDate"`
	EndDate        string    `json:"endDate"`
	Budget         string    `json:"budget"`
	LeadsGenerated int       `json:"leadsGenerated"`
	Conversions    int       `json:"conversions"`
	CostPerLead    string    `json:"costPerLead"`
	ROI            string    `json:"roi"`
	ConversionRate string    `json:"conversionRate"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// CampaignListResponse represents the campaign list payload.
type CampaignListResponse struct {
	Campaigns []CampaignResponse `json:"campaigns"`
	Count     int                `json:"count"`
}

// CampaignStatsResponse represents the campaign statistics overview payload.
type CampaignStatsResponse struct {
	TotalCampaigns   int64                         `json:"totalCampaigns"`
	ActiveCampaigns  int64                         `json:"activeCampaigns"`
	TotalBudget      string                        `json:"totalBudget"`
	TotalLeads       int64                         `json:"totalLeads"`
	TotalConversions int64                         `json:"totalConversions"`
	LeadsByPlatform  []PlatformPerformanceResponse `json:"leadsByPlatform"`
	MonthlyCampaigns []MonthlyCampaignResponse     `json:"monthlyCampaigns"`
}

// PlatformPerformanceResponse represents one platform's aggregated metrics.
type PlatformPerformanceResponse struct {
	Platform    string `json:"platform"`
	Campaigns   int64  `json:"campaigns"`
	Budget      string `json:"budget"`
	Leads       int64  `json:"leads"`
	Conversions int64  `json:"conversions"`
}

// MonthlyCampaignResponse represents one month's campaign activity.
type MonthlyCampaignResponse struct {
	Year   int    `json:"year"`
	Month  int    `json:"month"`
	Count  int64  `json:"count"`
	Budget string `json:"budget"`
	Leads  int64  `json:"leads"`
}

// ToCampaignResponse converts a use case campaign output to its response DTO.
func ToCampaignResponse(c *campaign.CampaignOutput) CampaignResponse {
	return CampaignResponse{
		ID:             c.ID.String(),
		Name:           c.Name,
		Platform:       string(c.Platform),
		StartDate:      c.StartDate.Format(DateFormat),
		EndDate:        c.EndDate.Format(DateFormat),
		Budget:         c.Budget.String(),
		LeadsGenerated: c.LeadsGenerated,
		Conversions:    c.Conversions,
		CostPerLead:    c.CostPerLead.String(),
		ROI:            c.ROI.String(),
		ConversionRate: c.ConversionRate.String(),
		Status:         string(c.Status),
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

// ToCampaignListResponse converts a list output to its response DTO.
func ToCampaignListResponse(output *campaign.ListCampaignsOutput) CampaignListResponse {
	campaigns := make([]CampaignResponse, len(output.Campaigns))
	for i, c := range output.Campaigns {
		campaigns[i] = ToCampaignResponse(c)
	}
	return CampaignListResponse{
		Campaigns: campaigns,
		Count:     output.Count,
	}
}

// ToCampaignStatsResponse converts a stats output to its response DTO.
func ToCampaignStatsResponse(output *campaign.GetCampaignStatsOutput) CampaignStatsResponse {
	return CampaignStatsResponse{
		TotalCampaigns:   output.TotalCampaigns,
		ActiveCampaigns:  output.ActiveCampaigns,
		TotalBudget:      output.TotalBudget.String(),
		TotalLeads:       output.TotalLeads,
		TotalConversions: output.TotalConversions,
		LeadsByPlatform:  ToPlatformPerformanceResponses(output.LeadsByPlatform),
		MonthlyCampaigns: ToMonthlyCampaignResponses(output.MonthlyCampaigns),
	}
}

// ToPlatformPerformanceResponses converts platform rows to their response DTOs.
func ToPlatformPerformanceResponses(rows []entity.PlatformPerformance) []PlatformPerformanceResponse {
	responses := make([]PlatformPerformanceResponse, len(rows))
	for i, row := range rows {
		responses[i] = PlatformPerformanceResponse{
			Platform:    string(row.Platform),
			Campaigns:   row.Campaigns,
			Budget:      row.Budget.String(),
			Leads:       row.Leads,
			Conversions: row.Conversions,
		}
	}
	return responses
}

// ToMonthlyCampaignResponses converts monthly rows to their response DTOs.
func ToMonthlyCampaignResponses(rows []entity.MonthlyCampaignStats) []MonthlyCampaignResponse {
	responses := make([]MonthlyCampaignResponse, len(rows))
	for i, row := range rows {
		responses[i] = MonthlyCampaignResponse{
			Year:   row.Year,
			Month:  row.Month,
			Count:  row.Count,
			Budget: row.Budget.String(),
			Leads:  row.Leads,
		}
	}
	return responses
}
