package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/biz-manager/backend/internal/application/usecase/dashboard"
	"github.com/biz-manager/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	financialUseCase *dashboard.GetFinancialSummaryUseCase
	marketingUseCase *dashboard.GetMarketingSummaryUseCase
	overviewUseCase  *dashboard.GetOverviewUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	financialUseCase *dashboard.GetFinancialSummaryUseCase,
	marketingUseCase *dashboard.GetMarketingSummaryUseCase,
	overviewUseCase *dashboard.GetOverviewUseCase,
) *DashboardController {
	return &DashboardController{
		financialUseCase: financialUseCase,
		marketingUseCase: marketingUseCase,
		overviewUseCase:  overviewUseCase,
	}
}

// Summary handles GET /dashboard/summary requests.
func (c *DashboardController) Summary(ctx *gin.Context) {
	var input dashboard.GetFinancialSummaryInput

	if startDateStr := ctx.Query("startDate"); startDateStr != "" {
		startDate, err := time.Parse(dto.DateFormat, startDateStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid startDate format. Use YYYY-MM-DD",
			})
			return
		}
		input.StartDate = startDate
	}
	if endDateStr := ctx.Query("endDate"); endDateStr != "" {
		endDate, err := time.Parse(dto.DateFormat, endDateStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid endDate format. Use YYYY-MM-DD",
			})
			return
		}
		input.EndDate = endDate
	}

	output, err := c.financialUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to build financial summary",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFinancialSummaryResponse(output))
}

// Marketing handles GET /dashboard/marketing requests.
func (c *DashboardController) Marketing(ctx *gin.Context) {
	output, err := c.marketingUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to build marketing summary",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMarketingSummaryResponse(output))
}

// Overview handles GET /dashboard/overview requests.
func (c *DashboardController) Overview(ctx *gin.Context) {
	output, err := c.overviewUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to build business overview",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOverviewResponse(output))
}
