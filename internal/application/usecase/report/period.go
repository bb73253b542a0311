// Package report contains report-related use cases. Unlike the dashboards,
// reports compute their aggregates in the application over the fetched rows,
// so one query feeds both the line items and the totals.
package report

import (
	"time"

	domainerror "github.com/biz-manager/backend/internal/domain/error"
)

// ReportPeriod represents the inclusive date range a report covers.
type ReportPeriod struct {
	StartDate time.Time
	EndDate   time.Time
}

// resolvePeriod validates and fills the report period. Start defaults to
// January 1 of the current year, end defaults to now.
func resolvePeriod(start, end time.Time) (ReportPeriod, error) {
	now := time.Now().UTC()
	if start.IsZero() {
		start = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	if end.IsZero() {
		end = now
	}

	if end.Before(start) {
		return ReportPeriod{}, domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportDateRange,
			"end date must be after start date",
			domainerror.ErrInvalidReportDateRange,
		)
	}

	return ReportPeriod{StartDate: start, EndDate: end}, nil
}
