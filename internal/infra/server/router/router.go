// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/biz-manager/backend/internal/integration/entrypoint/controller"
	"github.com/biz-manager/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	transactionController *controller.TransactionController
	campaignController    *controller.CampaignController
	invoiceController     *controller.InvoiceController
	dashboardController   *controller.DashboardController
	reportController      *controller.ReportController
	sendRateLimiter       *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	transactionController *controller.TransactionController,
	campaignController *controller.CampaignController,
	invoiceController *controller.InvoiceController,
	dashboardController *controller.DashboardController,
	reportController *controller.ReportController,
	sendRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:      healthController,
		transactionController: transactionController,
		campaignController:    campaignController,
		invoiceController:     invoiceController,
		dashboardController:   dashboardController,
		reportController:      reportController,
		sendRateLimiter:       sendRateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Default middleware: logger and recovery
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		transactions := v1.Group("/transactions")
		{
			transactions.GET("", r.transactionController.List)
			transactions.POST("", r.transactionController.Create)
			transactions.GET("/income/summary", r.transactionController.IncomeSummary)
			transactions.GET("/expense/summary", r.transactionController.ExpenseSummary)
			transactions.GET("/:id", r.transactionController.Get)
			transactions.PATCH("/:id", r.transactionController.Update)
			transactions.DELETE("/:id", r.transactionController.Delete)
		}

		campaigns := v1.Group("/campaigns")
		{
			campaigns.GET("", r.campaignController.List)
			campaigns.POST("", r.campaignController.Create)
			campaigns.GET("/stats/overview", r.campaignController.Stats)
			campaigns.GET("/:id", r.campaignController.Get)
			campaigns.PATCH("/:id", r.campaignController.Update)
			campaigns.DELETE("/:id", r.campaignController.Delete)
		}

		invoices := v1.Group("/invoices")
		{
			invoices.GET("", r.invoiceController.List)
			invoices.POST("", r.invoiceController.Create)
			invoices.GET("/stats/overview", r.invoiceController.Stats)
			invoices.GET("/:id", r.invoiceController.Get)
			invoices.PATCH("/:id", r.invoiceController.Update)
			invoices.DELETE("/:id", r.invoiceController.Delete)
			invoices.POST("/:id/pay", r.invoiceController.MarkPaid)

			if r.sendRateLimiter != nil {
				invoices.POST("/:id/send", r.sendRateLimiter.Middleware(), r.invoiceController.Send)
			} else {
				invoices.POST("/:id/send", r.invoiceController.Send)
			}
		}

		dashboard := v1.Group("/dashboard")
		{
			dashboard.GET("/summary", r.dashboardController.Summary)
			dashboard.GET("/marketing", r.dashboardController.Marketing)
			dashboard.GET("/overview", r.dashboardController.Overview)
		}

		reports := v1.Group("/reports")
		{
			reports.GET("/financial", r.reportController.Financial)
			reports.GET("/marketing", r.reportController.Marketing)
			reports.GET("/invoices", r.reportController.Invoices)
			reports.GET("/comprehensive", r.reportController.Comprehensive)
		}
	}
}
