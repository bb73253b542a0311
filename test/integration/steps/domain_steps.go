package steps

import (
	"bytes"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/biz-manager/backend/internal/integration/persistence/model"
)

func (t *testContext) registerDomainSteps(sc *godog.ScenarioContext) {
	sc.Step(`^a campaign "([^"]*)" on "([^"]*)" with budget (\d+), (\d+) leads and (\d+) conversions exists$`, t.aCampaignExists)
	sc.Step(`^an invoice for "([^"]*)" with an item of (\d+) x (\d+) due on "([^"]*)" exists$`, t.anInvoiceExists)
	sc.Step(`^a "(income|expense)" transaction of (\d+) in category "([^"]*)" exists$`, t.aTransactionExists)
	sc.Step(`^(\d+) emails? should be queued$`, t.emailsShouldBeQueued)
	sc.Step(`^a "([^"]*)" email should be queued for "([^"]*)"$`, t.anEmailShouldBeQueuedFor)
}

// aCampaignExists seeds a campaign through the API and stores its id as
// {campaignId}.
func (t *testContext) aCampaignExists(name, platform string, budget, leads, conversions int) error {
	body := fmt.Sprintf(`{
		"name": %q,
		"platform": %q,
		"startDate": "2026-01-01",
		"endDate": "2026-03-31",
		"budget": %d,
		"leadsGenerated": %d,
		"conversions": %d
	}`, name, platform, budget, leads, conversions)

	if err := t.doRequest("POST", "/api/v1/campaigns", bytes.NewBufferString(body)); err != nil {
		return err
	}
	if err := t.theResponseStatusShouldBe(201); err != nil {
		return fmt.Errorf("failed to seed campaign: %w", err)
	}
	return t.iStoreTheResponseFieldAs("id", "campaignId")
}

// anInvoiceExists seeds an invoice through the API and stores its id as
// {invoiceId}.
func (t *testContext) anInvoiceExists(clientName string, quantity, price int, dueDate string) error {
	body := fmt.Sprintf(`{
		"clientName": %q,
		"clientEmail": "client@example.com",
		"items": [{"description": "Services rendered", "quantity": %d, "price": %d}],
		"dueDate": %q
	}`, clientName, quantity, price, dueDate)

	if err := t.doRequest("POST", "/api/v1/invoices", bytes.NewBufferString(body)); err != nil {
		return err
	}
	if err := t.theResponseStatusShouldBe(201); err != nil {
		return fmt.Errorf("failed to seed invoice: %w", err)
	}
	return t.iStoreTheResponseFieldAs("id", "invoiceId")
}

func (t *testContext) aTransactionExists(txnType string, amount int, category string) error {
	body := fmt.Sprintf(`{
		"type": %q,
		"category": %q,
		"amount": %d,
		"description": "Seeded %s"
	}`, txnType, category, amount, category)

	if err := t.doRequest("POST", "/api/v1/transactions", bytes.NewBufferString(body)); err != nil {
		return err
	}
	if err := t.theResponseStatusShouldBe(201); err != nil {
		return fmt.Errorf("failed to seed transaction: %w", err)
	}
	return nil
}

func (t *testContext) emailsShouldBeQueued(count int) error {
	var got int64
	if err := t.db.DbConn.Model(&model.EmailQueueModel{}).Count(&got).Error; err != nil {
		return fmt.Errorf("failed to count queued emails: %w", err)
	}
	if got != int64(count) {
		return fmt.Errorf("expected %d queued emails, found %d", count, got)
	}
	return nil
}

func (t *testContext) anEmailShouldBeQueuedFor(templateType, recipient string) error {
	var got int64
	err := t.db.DbConn.Model(&model.EmailQueueModel{}).
		Where("template_type = ? AND recipient_email = ?", templateType, recipient).
		Count(&got).Error
	if err != nil {
		return fmt.Errorf("failed to query email queue: %w", err)
	}
	if got == 0 {
		return fmt.Errorf("no %q email queued for %q", templateType, recipient)
	}
	return nil
}
