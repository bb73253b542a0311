package dto

import (
	"github.com/biz-manager/backend/internal/application/usecase/dashboard"
)

// MonthlyTrendResponse represents one month of the income/expense trend.
type MonthlyTrendResponse struct {
	Month    string `json:"month"`
	Income   string `json:"income"`
	Expenses string `json:"expenses"`
}

// FinancialSummaryResponse represents the financial dashboard payload.
type FinancialSummaryResponse struct {
	StartDate         string                  `json:"startDate"`
	EndDate           string                  `json:"endDate"`
	TotalIncome       string                  `json:"totalIncome"`
	TotalExpenses     string                  `json:"totalExpenses"`
	Profit            string                  `json:"profit"`
	ProfitMargin      string                  `json:"profitMargin"`
	ExpenseByCategory []CategoryTotalResponse `json:"expenseByCategory"`
	MonthlyTrend      []MonthlyTrendResponse  `json:"monthlyTrend"`
	OutstandingAmount string                  `json:"outstandingAmount"`
}

// MarketingSummaryResponse represents the marketing dashboard payload.
type MarketingSummaryResponse struct {
	TotalCampaigns   int64                         `json:"totalCampaigns"`
	ActiveCampaigns  int64                         `json:"activeCampaigns"`
	TotalBudget      string                        `json:"totalBudget"`
	TotalLeads       int64                         `json:"totalLeads"`
	TotalConversions int64                         `json:"totalConversions"`
	AvgCostPerLead   string                        `json:"avgCostPerLead"`
	ConversionRate   string                        `json:"conversionRate"`
	LeadsByPlatform  []PlatformPerformanceResponse `json:"leadsByPlatform"`
	MonthlyCampaigns []MonthlyCampaignResponse     `json:"monthlyCampaigns"`
}

// OverviewResponse represents the combined business overview payload.
type OverviewResponse struct {
	MonthIncome     string `json:"monthIncome"`
	MonthExpenses   string `json:"monthExpenses"`
	MonthProfit     string `json:"monthProfit"`
	ActiveCampaigns int64  `json:"activeCampaigns"`
	PendingInvoices int64  `json:"pendingInvoices"`
	OverdueInvoices int64  `json:"overdueInvoices"`
}

// ToFinancialSummaryResponse converts a financial summary output to its response DTO.
func ToFinancialSummaryResponse(output *dashboard.GetFinancialSummaryOutput) FinancialSummaryResponse {
	trend := make([]MonthlyTrendResponse, len(output.MonthlyTrend))
	for i, row := range output.MonthlyTrend {
		trend[i] = MonthlyTrendResponse{
			Month:    row.Month.Format("2006-01"),
			Income:   row.Income.String(),
			Expenses: row.Expenses.String(),
		}
	}

	return FinancialSummaryResponse{
		StartDate:         output.StartDate.Format(DateFormat),
		EndDate:           output.EndDate.Format(DateFormat),
		TotalIncome:       output.TotalIncome.String(),
		TotalExpenses:     output.TotalExpenses.String(),
		Profit:            output.Profit.String(),
		ProfitMargin:      output.ProfitMargin.String(),
		ExpenseByCategory: ToCategoryTotalResponses(output.ExpenseByCategory),
		MonthlyTrend:      trend,
		OutstandingAmount: output.OutstandingAmount.String(),
	}
}

// ToMarketingSummaryResponse converts a marketing summary output to its response DTO.
func ToMarketingSummaryResponse(output *dashboard.GetMarketingSummaryOutput) MarketingSummaryResponse {
	return MarketingSummaryResponse{
		TotalCampaigns:   output.TotalCampaigns,
		ActiveCampaigns:  output.ActiveCampaigns,
		TotalBudget:      output.TotalBudget.String(),
		TotalLeads:       output.TotalLeads,
		TotalConversions: output.TotalConversions,
		AvgCostPerLead:   output.AvgCostPerLead.String(),
		ConversionRate:   output.ConversionRate.String(),
		LeadsByPlatform:  ToPlatformPerformanceResponses(output.LeadsByPlatform),
		MonthlyCampaigns: ToMonthlyCampaignResponses(output.MonthlyCampaigns),
	}
}

// ToOverviewResponse converts an overview output to its response DTO.
func ToOverviewResponse(output *dashboard.GetOverviewOutput) OverviewResponse {
	return OverviewResponse{
		MonthIncome:     output.MonthIncome.String(),
		MonthExpenses:   output.MonthExpenses.String(),
		MonthProfit:     output.MonthProfit.String(),
		ActiveCampaigns: output.ActiveCampaigns,
		PendingInvoices: output.PendingInvoices,
		OverdueInvoices: output.OverdueInvoices,
	}
}
