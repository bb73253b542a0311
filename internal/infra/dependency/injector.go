// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/biz-manager/backend/config"
	"github.com/biz-manager/backend/internal/application/adapter"
	"github.com/biz-manager/backend/internal/application/usecase/campaign"
	"github.com/biz-manager/backend/internal/application/usecase/dashboard"
	"github.com/biz-manager/backend/internal/application/usecase/invoice"
	"github.com/biz-manager/backend/internal/application/usecase/report"
	"github.com/biz-manager/backend/internal/application/usecase/transaction"
	"github.com/biz-manager/backend/internal/domain/valueobject"
	"github.com/biz-manager/backend/internal/infra/server/router"
	"github.com/biz-manager/backend/internal/integration/email"
	"github.com/biz-manager/backend/internal/integration/entrypoint/controller"
	"github.com/biz-manager/backend/internal/integration/entrypoint/middleware"
	"github.com/biz-manager/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config     *config.Config
	DB         *gorm.DB
	Router     *router.Router
	EmailQueue adapter.EmailQueueRepository
}

// NewInjector creates a new dependency injector with all dependencies wired.
// emailSender is injected so tests can substitute a mock for the Resend client.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, emailSender adapter.EmailSender) *Injector {
	// Create repositories
	transactionRepo := persistence.NewTransactionRepository(db)
	campaignRepo := persistence.NewCampaignRepository(db)
	invoiceRepo := persistence.NewInvoiceRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)
	dashboardRepo := persistence.NewDashboardRepository(db)

	// Create services
	currency := valueobject.CurrencyFromCode(cfg.Business.CurrencyCode)
	emailService := email.NewService(emailQueueRepo, cfg.Business.Name)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	getTransactionUseCase := transaction.NewGetTransactionUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)
	transactionSummaryUseCase := transaction.NewGetTransactionSummaryUseCase(transactionRepo)

	// Create campaign use cases
	listCampaignsUseCase := campaign.NewListCampaignsUseCase(campaignRepo)
	getCampaignUseCase := campaign.NewGetCampaignUseCase(campaignRepo)
	createCampaignUseCase := campaign.NewCreateCampaignUseCase(campaignRepo)
	updateCampaignUseCase := campaign.NewUpdateCampaignUseCase(campaignRepo)
	deleteCampaignUseCase := campaign.NewDeleteCampaignUseCase(campaignRepo)
	campaignStatsUseCase := campaign.NewGetCampaignStatsUseCase(campaignRepo)

	// Create invoice use cases
	listInvoicesUseCase := invoice.NewListInvoicesUseCase(invoiceRepo)
	getInvoiceUseCase := invoice.NewGetInvoiceUseCase(invoiceRepo)
	createInvoiceUseCase := invoice.NewCreateInvoiceUseCase(invoiceRepo)
	updateInvoiceUseCase := invoice.NewUpdateInvoiceUseCase(invoiceRepo)
	deleteInvoiceUseCase := invoice.NewDeleteInvoiceUseCase(invoiceRepo)
	markInvoicePaidUseCase := invoice.NewMarkInvoicePaidUseCase(invoiceRepo, transactionRepo, emailService, currency)
	sendInvoiceUseCase := invoice.NewSendInvoiceUseCase(invoiceRepo, emailService, currency)
	invoiceStatsUseCase := invoice.NewGetInvoiceStatsUseCase(invoiceRepo)

	// Create dashboard use cases
	financialSummaryUseCase := dashboard.NewGetFinancialSummaryUseCase(transactionRepo, invoiceRepo, dashboardRepo)
	marketingSummaryUseCase := dashboard.NewGetMarketingSummaryUseCase(campaignRepo)
	overviewUseCase := dashboard.NewGetOverviewUseCase(transactionRepo, campaignRepo, invoiceRepo)

	// Create report use cases
	financialReportUseCase := report.NewGetFinancialReportUseCase(transactionRepo)
	marketingReportUseCase := report.NewGetMarketingReportUseCase(campaignRepo)
	invoiceReportUseCase := report.NewGetInvoiceReportUseCase(invoiceRepo)
	comprehensiveReportUseCase := report.NewGetComprehensiveReportUseCase(
		financialReportUseCase,
		marketingReportUseCase,
		invoiceReportUseCase,
	)

	// Create controllers
	healthController := controller.NewHealthController(
		func() bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		},
		func() bool {
			if redisClient == nil {
				return false
			}
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return redisClient.Ping(ctx).Err() == nil
		},
	)

	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		getTransactionUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
		transactionSummaryUseCase,
	)

	campaignController := controller.NewCampaignController(
		listCampaignsUseCase,
		getCampaignUseCase,
		createCampaignUseCase,
		updateCampaignUseCase,
		deleteCampaignUseCase,
		campaignStatsUseCase,
	)

	invoiceController := controller.NewInvoiceController(
		listInvoicesUseCase,
		getInvoiceUseCase,
		createInvoiceUseCase,
		updateInvoiceUseCase,
		deleteInvoiceUseCase,
		markInvoicePaidUseCase,
		sendInvoiceUseCase,
		invoiceStatsUseCase,
	)

	dashboardController := controller.NewDashboardController(
		financialSummaryUseCase,
		marketingSummaryUseCase,
		overviewUseCase,
	)

	reportController := controller.NewReportController(
		financialReportUseCase,
		marketingReportUseCase,
		invoiceReportUseCase,
		comprehensiveReportUseCase,
	)

	// Create middleware
	// Use a higher send limit in E2E/test environments to prevent flaky tests
	var sendRateLimiter *middleware.RateLimiter
	if redisClient != nil {
		if cfg.Server.Environment == "test" {
			sendRateLimiter = middleware.NewRateLimiterWithConfig(redisClient, "ratelimit:invoice-send", 100, time.Minute)
		} else {
			sendRateLimiter = middleware.NewRateLimiter(redisClient, "ratelimit:invoice-send")
		}
	}

	appRouter := router.NewRouter(
		healthController,
		transactionController,
		campaignController,
		invoiceController,
		dashboardController,
		reportController,
		sendRateLimiter,
	)

	return &Injector{
		Config:     cfg,
		DB:         db,
		Router:     appRouter,
		EmailQueue: emailQueueRepo,
	}
}
