package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/biz-manager/backend/internal/application/usecase/campaign"
	"github.com/biz-manager/backend/internal/domain/entity"
	domainerror "github.com/biz-manager/backend/internal/domain/error"
	"github.com/biz-manager/backend/internal/integration/entrypoint/dto"
)

// CampaignController handles marketing campaign endpoints.
type CampaignController struct {
	listUseCase   *campaign.ListCampaignsUseCase
	getUseCase    *campaign.GetCampaignUseCase
	createUseCase *campaign.CreateCampaignUseCase
	updateUseCase *campaign.UpdateCampaignUseCase
	deleteUseCase *campaign.DeleteCampaignUseCase
	statsUseCase  *campaign.GetCampaignStatsUseCase
}

// NewCampaignController creates a new campaign controller instance.
func NewCampaignController(
	listUseCase *campaign.ListCampaignsUseCase,
	getUseCase *campaign.GetCampaignUseCase,
	createUseCase *campaign.CreateCampaignUseCase,
	updateUseCase *campaign.UpdateCampaignUseCase,
	deleteUseCase *campaign.DeleteCampaignUseCase,
	statsUseCase *campaign.GetCampaignStatsUseCase,
) *CampaignController {
	return &CampaignController{
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		statsUseCase:  statsUseCase,
	}
}

// List handles GET /campaigns requests.
func (c *CampaignController) List(ctx *gin.Context) {
	var input campaign.ListCampaignsInput

	if statusStr := ctx.Query("status"); statusStr != "" {
		status := entity.CampaignStatus(statusStr)
		input.Status = &status
	}
	if platformStr := ctx.Query("platform"); platformStr != "" {
		platform := entity.CampaignPlatform(platformStr)
		input.Platform = &platform
	}
	if startDateStr := ctx.Query("startDate"); startDateStr != "" {
		startDate, err := time.Parse(dto.DateFormat, startDateStr)
		if err == nil {
			input.StartDate = &startDate
		}
	}
	if endDateStr := ctx.Query("endDate"); endDateStr != "" {
		endDate, err := time.Parse(dto.DateFormat, endDateStr)
		if err == nil {
			input.EndDate = &endDate
		}
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve campaigns",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCampaignListResponse(output))
}

// Get handles GET /campaigns/:id requests.
func (c *CampaignController) Get(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid campaign ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), campaign.GetCampaignInput{ID: id})
	if err != nil {
		c.handleCampaignError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCampaignResponse(output.Campaign))
}

// Create handles POST /campaigns requests.
func (c *CampaignController) Create(ctx *gin.Context) {
	var req dto.CreateCampaignRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingCampaignFields),
		})
		return
	}

	startDate, err := time.Parse(dto.DateFormat, req.StartDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid startDate format. Use YYYY-MM-DD",
		})
		return
	}
	endDate, err := time.Parse(dto.DateFormat, req.EndDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid endDate format. Use YYYY-MM-DD",
		})
		return
	}

	input := campaign.CreateCampaignInput{
		Name:           req.Name,
		Platform:       entity.CampaignPlatform(req.Platform),
		StartDate:      startDate,
		EndDate:        endDate,
		Budget:         decimal.NewFromFloat(req.Budget),
		LeadsGenerated: req.LeadsGenerated,
		Conversions:    req.Conversions,
		Status:         entity.CampaignStatus(req.Status),
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCampaignError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCampaignResponse(output.Campaign))
}

// Update handles PATCH /campaigns/:id requests.
func (c *CampaignController) Update(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid campaign ID format",
		})
		return
	}

	var req dto.UpdateCampaignRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := campaign.UpdateCampaignInput{
		ID:             id,
		Name:           req.Name,
		LeadsGenerated: req.LeadsGenerated,
		Conversions:    req.Conversions,
	}

	if req.Platform != nil {
		platform := entity.CampaignPlatform(*req.Platform)
		input.Platform = &platform
	}

	if req.StartDate != nil {
		startDate, err := time.Parse(dto.DateFormat, *req.StartDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid startDate format. Use YYYY-MM-DD",
			})
			return
		}
		input.StartDate = &startDate
	}

	if req.EndDate != nil {
		endDate, err := time.Parse(dto.DateFormat, *req.EndDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid endDate format. Use YYYY-MM-DD",
			})
			return
		}
		input.EndDate = &endDate
	}

	if req.Budget != nil {
		budget := decimal.NewFromFloat(*req.Budget)
		input.Budget = &budget
	}

	if req.Status != nil {
		status := entity.CampaignStatus(*req.Status)
		input.Status = &status
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCampaignError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCampaignResponse(output.Campaign))
}

// Delete handles DELETE /campaigns/:id requests.
func (c *CampaignController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid campaign ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), campaign.DeleteCampaignInput{ID: id}); err != nil {
		c.handleCampaignError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Stats handles GET /campaigns/stats/overview requests.
func (c *CampaignController) Stats(ctx *gin.Context) {
	output, err := c.statsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve campaign statistics",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCampaignStatsResponse(output))
}

// handleCampaignError handles campaign errors and returns appropriate HTTP responses.
func (c *CampaignController) handleCampaignError(ctx *gin.Context, err error) {
	var cmpErr *domainerror.CampaignError
	if errors.As(err, &cmpErr) {
		statusCode := c.getStatusCodeForCampaignError(cmpErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: cmpErr.Message,
			Code:  string(cmpErr.Code),
		})
		return
	}

	if errors.Is(err, domainerror.ErrCampaignNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Campaign not found",
			Code:  string(domainerror.ErrCodeCampaignNotFound),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForCampaignError maps campaign error codes to HTTP status codes.
func (c *CampaignController) getStatusCodeForCampaignError(code domainerror.CampaignErrorCode) int {
	switch code {
	case domainerror.ErrCodeCampaignNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeMissingCampaignName,
		domainerror.ErrCodeInvalidCampaignPlatform,
		domainerror.ErrCodeInvalidCampaignDateRange,
		domainerror.ErrCodeNegativeCampaignBudget,
		domainerror.ErrCodeNegativeCampaignCounts,
		domainerror.ErrCodeConversionsExceedLeads,
		domainerror.ErrCodeInvalidCampaignStatus,
		domainerror.ErrCodeMissingCampaignFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
