package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/biz-manager/backend/internal/application/adapter"
	"github.com/biz-manager/backend/internal/application/usecase/invoice"
	"github.com/biz-manager/backend/internal/domain/entity"
	domainerror "github.com/biz-manager/backend/internal/domain/error"
	"github.com/biz-manager/backend/internal/integration/entrypoint/dto"
)

// InvoiceController handles client invoice endpoints.
type InvoiceController struct {
	listUseCase     *invoice.ListInvoicesUseCase
	getUseCase      *invoice.GetInvoiceUseCase
	createUseCase   *invoice.CreateInvoiceUseCase
	updateUseCase   *invoice.UpdateInvoiceUseCase
	deleteUseCase   *invoice.DeleteInvoiceUseCase
	markPaidUseCase *invoice.MarkInvoicePaidUseCase
	sendUseCase     *invoice.SendInvoiceUseCase
	statsUseCase    *invoice.GetInvoiceStatsUseCase
}

// NewInvoiceController creates a new invoice controller instance.
func NewInvoiceController(
	listUseCase *invoice.ListInvoicesUseCase,
	getUseCase *invoice.GetInvoiceUseCase,
	createUseCase *invoice.CreateInvoiceUseCase,
	updateUseCase *invoice.UpdateInvoiceUseCase,
	deleteUseCase *invoice.DeleteInvoiceUseCase,
	markPaidUseCase *invoice.MarkInvoicePaidUseCase,
	sendUseCase *invoice.SendInvoiceUseCase,
	statsUseCase *invoice.GetInvoiceStatsUseCase,
) *InvoiceController {
	return &InvoiceController{
		listUseCase:     listUseCase,
		getUseCase:      getUseCase,
		createUseCase:   createUseCase,
		updateUseCase:   updateUseCase,
		deleteUseCase:   deleteUseCase,
		markPaidUseCase: markPaidUseCase,
		sendUseCase:     sendUseCase,
		statsUseCase:    statsUseCase,
	}
}

// List handles GET /invoices requests.
func (c *InvoiceController) List(ctx *gin.Context) {
	var filter adapter.InvoiceFilter

	if statusStr := ctx.Query("status"); statusStr != "" {
		status := entity.InvoiceStatus(statusStr)
		filter.Status = &status
	}
	if startDateStr := ctx.Query("startDate"); startDateStr != "" {
		startDate, err := time.Parse(dto.DateFormat, startDateStr)
		if err == nil {
			filter.StartDate = &startDate
		}
	}
	if endDateStr := ctx.Query("endDate"); endDateStr != "" {
		endDate, err := time.Parse(dto.DateFormat, endDateStr)
		if err == nil {
			filter.EndDate = &endDate
		}
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), invoice.ListInvoicesInput{Filter: filter})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve invoices",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvoiceListResponse(output))
}

// Get handles GET /invoices/:id requests.
func (c *InvoiceController) Get(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid invoice ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), id)
	if err != nil {
		c.handleInvoiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvoiceResponse(output.Invoice))
}

// Create handles POST /invoices requests.
func (c *InvoiceController) Create(ctx *gin.Context) {
	var req dto.CreateInvoiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingInvoiceFields),
		})
		return
	}

	dueDate, err := time.Parse(dto.DateFormat, req.DueDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid dueDate format. Use YYYY-MM-DD",
		})
		return
	}

	input := invoice.CreateInvoiceInput{
		InvoiceNumber: req.InvoiceNumber,
		ClientName:    req.ClientName,
		ClientEmail:   req.ClientEmail,
		ClientAddress: req.ClientAddress,
		Items:         toInvoiceItemInputs(req.Items),
		TaxRate:       decimal.NewFromFloat(req.TaxRate),
		DueDate:       dueDate,
		Status:        entity.InvoiceStatus(req.Status),
		Notes:         req.Notes,
	}

	if req.IssueDate != "" {
		issueDate, err := time.Parse(dto.DateFormat, req.IssueDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid issueDate format. Use YYYY-MM-DD",
			})
			return
		}
		input.IssueDate = issueDate
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleInvoiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToInvoiceResponse(output.Invoice))
}

// Update handles PATCH /invoices/:id requests.
func (c *InvoiceController) Update(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid invoice ID format",
		})
		return
	}

	var req dto.UpdateInvoiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := invoice.UpdateInvoiceInput{
		ID:            id,
		ClientName:    req.ClientName,
		ClientEmail:   req.ClientEmail,
		ClientAddress: req.ClientAddress,
		Notes:         req.Notes,
	}

	if req.Items != nil {
		input.Items = toInvoiceItemInputs(req.Items)
	}

	if req.TaxRate != nil {
		taxRate := decimal.NewFromFloat(*req.TaxRate)
		input.TaxRate = &taxRate
	}

	if req.IssueDate != nil {
		issueDate, err := time.Parse(dto.DateFormat, *req.IssueDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid issueDate format. Use YYYY-MM-DD",
			})
			return
		}
		input.IssueDate = &issueDate
	}

	if req.DueDate != nil {
		dueDate, err := time.Parse(dto.DateFormat, *req.DueDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid dueDate format. Use YYYY-MM-DD",
			})
			return
		}
		input.DueDate = &dueDate
	}

	if req.Status != nil {
		status := entity.InvoiceStatus(*req.Status)
		input.Status = &status
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleInvoiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvoiceResponse(output.Invoice))
}

// Delete handles DELETE /invoices/:id requests.
func (c *InvoiceController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid invoice ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), id); err != nil {
		c.handleInvoiceError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// MarkPaid handles POST /invoices/:id/pay requests. The body is optional and
// the companion income transaction is recorded unless it is disabled there.
func (c *InvoiceController) MarkPaid(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid invoice ID format",
		})
		return
	}

	input := invoice.MarkInvoicePaidInput{
		ID:                id,
		CreateTransaction: true,
	}

	if ctx.Request.ContentLength > 0 {
		var req dto.MarkInvoicePaidRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid request body",
			})
			return
		}
		if req.PaymentDate != "" {
			paymentDate, err := time.Parse(dto.DateFormat, req.PaymentDate)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
					Error: "Invalid paymentDate format. Use YYYY-MM-DD",
				})
				return
			}
			input.PaymentDate = &paymentDate
		}
		if req.CreateTransaction != nil {
			input.CreateTransaction = *req.CreateTransaction
		}
	}

	output, err := c.markPaidUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleInvoiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMarkInvoicePaidResponse(output))
}

// Send handles POST /invoices/:id/send requests.
func (c *InvoiceController) Send(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid invoice ID format",
		})
		return
	}

	output, err := c.sendUseCase.Execute(ctx.Request.Context(), id)
	if err != nil {
		c.handleInvoiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvoiceResponse(output.Invoice))
}

// Stats handles GET /invoices/stats/overview requests.
func (c *InvoiceController) Stats(ctx *gin.Context) {
	output, err := c.statsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve invoice statistics",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvoiceStatsResponse(output))
}

func toInvoiceItemInputs(items []dto.InvoiceItemRequest) []invoice.InvoiceItemInput {
	inputs := make([]invoice.InvoiceItemInput, len(items))
	for i, item := range items {
		inputs[i] = invoice.InvoiceItemInput{
			Description: item.Description,
			Quantity:    item.Quantity,
			Price:       decimal.NewFromFloat(item.Price),
		}
	}
	return inputs
}

// handleInvoiceError handles invoice errors and returns appropriate HTTP responses.
func (c *InvoiceController) handleInvoiceError(ctx *gin.Context, err error) {
	var invErr *domainerror.InvoiceError
	if errors.As(err, &invErr) {
		statusCode := c.getStatusCodeForInvoiceError(invErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: invErr.Message,
			Code:  string(invErr.Code),
		})
		return
	}

	if errors.Is(err, domainerror.ErrInvoiceNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Invoice not found",
			Code:  string(domainerror.ErrCodeInvoiceNotFound),
		})
		return
	}

	if errors.Is(err, domainerror.ErrDuplicateInvoiceNumber) {
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{
			Error: "Invoice number already exists",
			Code:  string(domainerror.ErrCodeDuplicateInvoiceNumber),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForInvoiceError maps invoice error codes to HTTP status codes.
func (c *InvoiceController) getStatusCodeForInvoiceError(code domainerror.InvoiceErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvoiceNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeDuplicateInvoiceNumber:
		return http.StatusConflict
	case domainerror.ErrCodeMissingClientName,
		domainerror.ErrCodeEmptyInvoiceItems,
		domainerror.ErrCodeMissingItemDescription,
		domainerror.ErrCodeInvalidItemQuantity,
		domainerror.ErrCodeInvalidItemPrice,
		domainerror.ErrCodeInvalidTaxRate,
		domainerror.ErrCodeMissingDueDate,
		domainerror.ErrCodeInvalidInvoiceStatus,
		domainerror.ErrCodeMissingInvoiceFields,
		domainerror.ErrCodeMissingClientEmail:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
