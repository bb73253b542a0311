// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DashboardRepository defines the interface for dashboard data operations
// that need database-side aggregation.
type DashboardRepository interface {
	// GetMonthlyTrend returns income and expense totals grouped by calendar
	// month, chronological, covering the last `months` months.
	GetMonthlyTrend(ctx context.Context, months int) ([]MonthlyTrend, error)
}

// MonthlyTrend represents one month's income and expense totals.
type MonthlyTrend struct {
	Month    time.Time
	Income   decimal.Decimal
	Expenses decimal.Decimal
}
