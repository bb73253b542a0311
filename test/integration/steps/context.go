// Package steps wires the godog step definitions for the API integration suite.
// The application is assembled in-process against an in-memory sqlite database
// and a miniredis instance, with the Resend client replaced by a mock sender.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/cucumber/godog"

	"github.com/biz-manager/backend/config"
	"github.com/biz-manager/backend/internal/infra/dependency"
	"github.com/biz-manager/backend/internal/integration/email"
	"github.com/biz-manager/backend/internal/integration/persistence/model"
	"github.com/biz-manager/backend/test/integration/mock"
)

type testContext struct {
	server      *httptest.Server
	db          *mock.Db
	emailSender *email.MockEmailSender

	response     *http.Response
	responseBody []byte
	stored       map[string]string
}

var (
	tc       *testContext
	bootOnce sync.Once
)

// bootstrap assembles the application once for the whole suite. Scenarios
// share the server and reset state through the Before hook.
func bootstrap() *testContext {
	bootOnce.Do(func() {
		db := mock.NewDb(
			&model.TransactionModel{},
			&model.CampaignModel{},
			&model.InvoiceModel{},
			&model.InvoiceItemModel{},
			&model.EmailQueueModel{},
		)

		cfg := &config.Config{
			Server: config.ServerConfig{
				Environment: "test",
			},
			Business: config.BusinessConfig{
				Name:         "Acme Studio",
				CurrencyCode: "USD",
			},
		}

		sender := email.NewMockEmailSender()
		injector := dependency.NewInjector(cfg, db.DbConn, mock.NewRedis(), sender)
		engine := injector.Router.Setup(cfg.Server.Environment)

		tc = &testContext{
			server:      httptest.NewServer(engine),
			db:          db,
			emailSender: sender,
			stored:      map[string]string{},
		}
	})
	return tc
}

// InitializeTestSuite is the godog suite hook.
func InitializeTestSuite(sc *godog.TestSuiteContext) {
	sc.BeforeSuite(func() {
		bootstrap()
	})
	sc.AfterSuite(func() {
		if tc != nil && tc.server != nil {
			tc.server.Close()
		}
	})
}

// InitializeScenario registers all step definitions and resets shared state
// before each scenario.
func InitializeScenario(sc *godog.ScenarioContext) {
	t := bootstrap()

	sc.Before(func(ctx context.Context, scenario *godog.Scenario) (context.Context, error) {
		if err := t.db.ClearDB(); err != nil {
			return ctx, fmt.Errorf("failed to reset database: %w", err)
		}
		if err := mock.ClearRedis(); err != nil {
			return ctx, fmt.Errorf("failed to reset redis: %w", err)
		}
		t.emailSender.Reset()
		t.response = nil
		t.responseBody = nil
		t.stored = map[string]string{}
		return ctx, nil
	})

	t.registerHTTPSteps(sc)
	t.registerDomainSteps(sc)
}
