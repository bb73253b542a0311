package dto

import (
	"github.com/biz-manager/backend/internal/application/usecase/report"
)

// ReportPeriodResponse represents the resolved reporting window.
type ReportPeriodResponse struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// FinancialReportResponse represents the financial report payload.
type FinancialReportResponse struct {
	Period        ReportPeriodResponse    `json:"period"`
	TotalIncome   string                  `json:"totalIncome"`
	TotalExpenses string                  `json:"totalExpenses"`
	NetProfit     string                  `json:"netProfit"`
	ByCategory    []CategoryTotalResponse `json:"byCategory"`
	Transactions  []TransactionResponse   `json:"transactions"`
}

// MarketingReportResponse represents the marketing report payload.
type MarketingReportResponse struct {
	Period              ReportPeriodResponse          `json:"period"`
	TotalBudget         string                        `json:"totalBudget"`
	TotalLeads          int64                         `json:"totalLeads"`
	TotalConversions    int64                         `json:"totalConversions"`
	PlatformPerformance []PlatformPerformanceResponse `json:"platformPerformance"`
	Campaigns           []CampaignResponse            `json:"campaigns"`
}

// InvoiceReportResponse represents the invoice report payload.
type InvoiceReportResponse struct {
	Period        ReportPeriodResponse `json:"period"`
	TotalInvoices int64                `json:"totalInvoices"`
	TotalAmount   string               `json:"totalAmount"`
	PaidAmount    string               `json:"paidAmount"`
	PendingAmount string               `json:"pendingAmount"`
	OverdueAmount string               `json:"overdueAmount"`
	PaidCount     int64                `json:"paidCount"`
	PendingCount  int64                `json:"pendingCount"`
	OverdueCount  int64                `json:"overdueCount"`
	Invoices      []InvoiceResponse    `json:"invoices"`
}

// ComprehensiveReportResponse represents the combined report payload.
type ComprehensiveReportResponse struct {
	Period    ReportPeriodResponse    `json:"period"`
	Financial FinancialReportResponse `json:"financial"`
	Marketing MarketingReportResponse `json:"marketing"`
	Invoices  InvoiceReportResponse   `json:"invoices"`
}

func toReportPeriodResponse(period report.ReportPeriod) ReportPeriodResponse {
	return ReportPeriodResponse{
		StartDate: period.StartDate.Format(DateFormat),
		EndDate:   period.EndDate.Format(DateFormat),
	}
}

// ToFinancialReportResponse converts a financial report output to its response DTO.
func ToFinancialReportResponse(output *report.GetFinancialReportOutput) FinancialReportResponse {
	transactions := make([]TransactionResponse, len(output.Transactions))
	for i, t := range output.Transactions {
		transactions[i] = transactionEntityToResponse(t)
	}

	return FinancialReportResponse{
		Period:        toReportPeriodResponse(output.Period),
		TotalIncome:   output.TotalIncome.String(),
		TotalExpenses: output.TotalExpenses.String(),
		NetProfit:     output.NetProfit.String(),
		ByCategory:    ToCategoryTotalResponses(output.ByCategory),
		Transactions:  transactions,
	}
}

// ToMarketingReportResponse converts a marketing report output to its response DTO.
func ToMarketingReportResponse(output *report.GetMarketingReportOutput) MarketingReportResponse {
	campaigns := make([]CampaignResponse, len(output.Campaigns))
	for i, c := range output.Campaigns {
		campaigns[i] = ToCampaignResponse(c)
	}

	return MarketingReportResponse{
		Period:              toReportPeriodResponse(output.Period),
		TotalBudget:         output.TotalBudget.String(),
		TotalLeads:          output.TotalLeads,
		TotalConversions:    output.TotalConversions,
		PlatformPerformance: ToPlatformPerformanceResponses(output.PlatformPerformance),
		Campaigns:           campaigns,
	}
}

// ToInvoiceReportResponse converts an invoice report output to its response DTO.
func ToInvoiceReportResponse(output *report.GetInvoiceReportOutput) InvoiceReportResponse {
	invoices := make([]InvoiceResponse, len(output.Invoices))
	for i, inv := range output.Invoices {
		invoices[i] = ToInvoiceResponse(inv)
	}

	return InvoiceReportResponse{
		Period:        toReportPeriodResponse(output.Period),
		TotalInvoices: output.TotalInvoices,
		TotalAmount:   output.TotalAmount.String(),
		PaidAmount:    output.PaidAmount.String(),
		PendingAmount: output.PendingAmount.String(),
		OverdueAmount: output.OverdueAmount.String(),
		PaidCount:     output.CountByStatus.Paid,
		PendingCount:  output.CountByStatus.Pending,
		OverdueCount:  output.CountByStatus.Overdue,
		Invoices:      invoices,
	}
}

// ToComprehensiveReportResponse converts a comprehensive report output to its response DTO.
func ToComprehensiveReportResponse(output *report.GetComprehensiveReportOutput) ComprehensiveReportResponse {
	return ComprehensiveReportResponse{
		Period:    toReportPeriodResponse(output.Period),
		Financial: ToFinancialReportResponse(output.Financial),
		Marketing: ToMarketingReportResponse(output.Marketing),
		Invoices:  ToInvoiceReportResponse(output.Invoices),
	}
}
