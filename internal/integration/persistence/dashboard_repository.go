package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/biz-manager/backend/internal/application/usecase/dashboard"
	"github.com/biz-manager/backend/internal/domain/entity"
)

// dashboardRepository implements the dashboard.DashboardRepository interface.
type dashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates a new dashboard repository instance.
func NewDashboardRepository(db *gorm.DB) dashboard.DashboardRepository {
	return &dashboardRepository{
		db: db,
	}
}

// GetMonthlyTrend returns income and expense totals grouped by calendar
// month over the last `months` months, chronological.
func (r *dashboardRepository) GetMonthlyTrend(ctx context.Context, months int) ([]dashboard.MonthlyTrend, error) {
	since := time.Now().UTC().AddDate(0, -(months - 1), 0)
	monthStart := time.Date(since.Year(), since.Month(), 1, 0, 0, 0, 0, time.UTC)

	var results []struct {
		Month    time.Time       `gorm:"column:month"`
		Income   decimal.Decimal `gorm:"column:income"`
		Expenses decimal.Decimal `gorm:"column:expenses"`
	}

	query := `
		SELECT
			date_trunc('month', date)::date as month,
			COALESCE(SUM(CASE WHEN type = ? THEN amount ELSE 0 END), 0) as income,
			COALESCE(SUM(CASE WHEN type = ? THEN amount ELSE 0 END), 0) as expenses
		FROM transactions
		WHERE date >= ?
		GROUP BY date_trunc('month', date)
		ORDER BY month ASC
	`

	err := r.db.WithContext(ctx).
		Raw(query,
			string(entity.TransactionTypeIncome),
			string(entity.TransactionTypeExpense),
			monthStart,
		).
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly trend: %w", err)
	}

	trend := make([]dashboard.MonthlyTrend, len(results))
	for i, row := range results {
		trend[i] = dashboard.MonthlyTrend{
			Month:    row.Month,
			Income:   row.Income,
			Expenses: row.Expenses,
		}
	}
	return trend, nil
}
