package refinance

import (
	"github.com/shopspring/decimal"

	"github.com/refiscope/refiscope-backend/internal/domain"
)

// ApplyBuydown prices the discount points on an offer against the given
// loan balance.
// Returns the effective rate after the per-point reduction and the upfront
// cost of the points. The effective rate is floored at zero: enough points
// can make a loan free, never negative.
func ApplyBuydown(offer domain.RefinanceOffer, balance decimal.Decimal) (effectiveRate, buydownCost decimal.Decimal) {
	offer = offer.Normalized()

	reduction := offer.Points.Mul(offer.RateReductionPerPoint)
	effectiveRate = offer.AnnualRate.Sub(reduction)
	if effectiveRate.IsNegative() {
		effectiveRate = decimal.Zero
	}

	buydownCost = balance.Mul(offer.Points).Mul(offer.CostPerPoint)
	return effectiveRate, buydownCost
}
