// Package campaign contains campaign-related use cases.
package campaign

import "github.com/shopspring/decimal"

// conversionValueMultiplier is the assumed value of a conversion relative to
// the cost per lead: each conversion is treated as worth 10x the cost of
// acquiring a lead.
var conversionValueMultiplier = decimal.NewFromInt(10)

var hundred = decimal.NewFromInt(100)

// CalculateMetrics computes the derived cost-per-lead and ROI for a campaign.
// It is a pure function invoked by the write path before persistence.
//
//   - costPerLead = budget / leadsGenerated, or 0 when there are no leads.
//   - roi = ((conversions * costPerLead * 10) - budget) / budget * 100.
//   - A campaign with no conversions (or no leads at all) is a total loss: roi = -100.
//   - A zero-budget campaign with conversions has no defined return on spend;
//     it is reported as roi = 0 rather than dividing by zero.
//
// Recomputing on unchanged inputs yields identical results.
func CalculateMetrics(budget decimal.Decimal, leadsGenerated, conversions int) (costPerLead, roi decimal.Decimal) {
	if leadsGenerated <= 0 {
		return decimal.Zero, hundred.Neg()
	}

	costPerLead = budget.Div(decimal.NewFromInt(int64(leadsGenerated)))

	if conversions <= 0 {
		return costPerLead, hundred.Neg()
	}

	if budget.IsZero() {
		// Zero spend, nonzero conversions: ROI is undefined, report break-even.
		return costPerLead, decimal.Zero
	}

	assumedValuePerConversion := costPerLead.Mul(conversionValueMultiplier)
	revenue := assumedValuePerConversion.Mul(decimal.NewFromInt(int64(conversions)))
	roi = revenue.Sub(budget).Div(budget).Mul(hundred)

	return costPerLead, roi
}

// ConversionRate computes the read-only conversion percentage. It is derived
// on every read and never persisted.
func ConversionRate(leadsGenerated, conversions int) decimal.Decimal {
	if leadsGenerated <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(conversions)).
		Div(decimal.NewFromInt(int64(leadsGenerated))).
		Mul(hundred)
}
