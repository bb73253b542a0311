package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/biz-manager/backend/internal/application/usecase/report"
	"github.com/biz-manager/backend/internal/domain/entity"
	domainerror "github.com/biz-manager/backend/internal/domain/error"
	"github.com/biz-manager/backend/internal/integration/entrypoint/dto"
)

// ReportController handles reporting endpoints.
type ReportController struct {
	financialUseCase     *report.GetFinancialReportUseCase
	marketingUseCase     *report.GetMarketingReportUseCase
	invoiceUseCase       *report.GetInvoiceReportUseCase
	comprehensiveUseCase *report.GetComprehensiveReportUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	financialUseCase *report.GetFinancialReportUseCase,
	marketingUseCase *report.GetMarketingReportUseCase,
	invoiceUseCase *report.GetInvoiceReportUseCase,
	comprehensiveUseCase *report.GetComprehensiveReportUseCase,
) *ReportController {
	return &ReportController{
		financialUseCase:     financialUseCase,
		marketingUseCase:     marketingUseCase,
		invoiceUseCase:       invoiceUseCase,
		comprehensiveUseCase: comprehensiveUseCase,
	}
}

// Financial handles GET /reports/financial requests.
func (c *ReportController) Financial(ctx *gin.Context) {
	startDate, endDate, ok := c.parsePeriod(ctx)
	if !ok {
		return
	}

	input := report.GetFinancialReportInput{
		StartDate: startDate,
		EndDate:   endDate,
	}

	if typeStr := ctx.Query("type"); typeStr != "" {
		txnType := entity.TransactionType(typeStr)
		input.Type = &txnType
	}

	output, err := c.financialUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFinancialReportResponse(output))
}

// Marketing handles GET /reports/marketing requests.
func (c *ReportController) Marketing(ctx *gin.Context) {
	startDate, endDate, ok := c.parsePeriod(ctx)
	if !ok {
		return
	}

	output, err := c.marketingUseCase.Execute(ctx.Request.Context(), report.GetMarketingReportInput{
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMarketingReportResponse(output))
}

// Invoices handles GET /reports/invoices requests.
func (c *ReportController) Invoices(ctx *gin.Context) {
	startDate, endDate, ok := c.parsePeriod(ctx)
	if !ok {
		return
	}

	input := report.GetInvoiceReportInput{
		StartDate: startDate,
		EndDate:   endDate,
	}

	if statusStr := ctx.Query("status"); statusStr != "" {
		status := entity.InvoiceStatus(statusStr)
		input.Status = &status
	}

	output, err := c.invoiceUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvoiceReportResponse(output))
}

// Comprehensive handles GET /reports/comprehensive requests.
func (c *ReportController) Comprehensive(ctx *gin.Context) {
	startDate, endDate, ok := c.parsePeriod(ctx)
	if !ok {
		return
	}

	output, err := c.comprehensiveUseCase.Execute(ctx.Request.Context(), report.GetComprehensiveReportInput{
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToComprehensiveReportResponse(output))
}

// parsePeriod reads the optional startDate and endDate query parameters.
// Defaults are resolved by the use cases.
func (c *ReportController) parsePeriod(ctx *gin.Context) (time.Time, time.Time, bool) {
	var startDate, endDate time.Time

	if startDateStr := ctx.Query("startDate"); startDateStr != "" {
		parsed, err := time.Parse(dto.DateFormat, startDateStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid startDate format. Use YYYY-MM-DD",
			})
			return startDate, endDate, false
		}
		startDate = parsed
	}
	if endDateStr := ctx.Query("endDate"); endDateStr != "" {
		parsed, err := time.Parse(dto.DateFormat, endDateStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid endDate format. Use YYYY-MM-DD",
			})
			return startDate, endDate, false
		}
		endDate = parsed
	}

	return startDate, endDate, true
}

// handleReportError handles report errors and returns appropriate HTTP responses.
func (c *ReportController) handleReportError(ctx *gin.Context, err error) {
	var rptErr *domainerror.ReportError
	if errors.As(err, &rptErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: rptErr.Message,
			Code:  string(rptErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
