package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Standard buydown pricing: one discount point costs 1% of the balance and
// lowers the offered rate by 0.25 percentage points.
var (
	DefaultCostPerPoint          = decimal.NewFromFloat(0.01)
	DefaultRateReductionPerPoint = decimal.NewFromFloat(0.0025)
)

// CurrentLoan is an immutable snapshot of the borrower's existing mortgage.
// MonthlyPayment covers principal and interest only (no escrow, no taxes).
type CurrentLoan struct {
	AnnualRate      decimal.Decimal // decimal fraction, e.g. 0.0675 for 6.75%
	Balance         decimal.Decimal
	MonthlyPayment  decimal.Decimal
	RemainingMonths int // 0 means the loan is effectively paid off
}

// Validate ensures the loan snapshot adheres to domain rules
// Returns an error wrapping ErrInvalidLoan if validation fails
func (l *CurrentLoan) Validate() error {
	if l.Balance.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: balance must be positive", ErrInvalidLoan)
	}
	if l.MonthlyPayment.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: monthly payment must be positive", ErrInvalidLoan)
	}
	if l.AnnualRate.IsNegative() {
		return fmt.Errorf("%w: annual rate cannot be negative", ErrInvalidLoan)
	}
	if l.RemainingMonths < 0 {
		return fmt.Errorf("%w: remaining months cannot be negative", ErrInvalidLoan)
	}
	return nil
}

// RefinanceOffer is an immutable candidate loan to evaluate against the
// current one. Points buys down the offered rate; CostPerPoint and
// RateReductionPerPoint configure that trade and adopt the standard market
// convention when left zero (see Normalized).
type RefinanceOffer struct {
	AnnualRate            decimal.Decimal // decimal fraction, before buydown
	TermMonths            int
	ClosingCosts          decimal.Decimal
	Points                decimal.Decimal // discount points purchased, fractional allowed
	CostPerPoint          decimal.Decimal // fraction of balance per point
	RateReductionPerPoint decimal.Decimal // rate cut per point
}

// Normalized returns a copy with zero-valued buydown pricing fields replaced
// by the defaults. Offers built from sparse input (struct literals, request
// DTOs) pass through here before any computation.
func (o RefinanceOffer) Normalized() RefinanceOffer {
	if o.CostPerPoint.IsZero() {
		o.CostPerPoint = DefaultCostPerPoint
	}
	if o.RateReductionPerPoint.IsZero() {
		o.RateReductionPerPoint = DefaultRateReductionPerPoint
	}
	return o
}

// Validate ensures the offer adheres to domain rules
// Returns an error wrapping ErrInvalidOffer if validation fails
func (o *RefinanceOffer) Validate() error {
	if o.TermMonths <= 0 {
		return fmt.Errorf("%w: term months must be positive", ErrInvalidOffer)
	}
	if o.AnnualRate.IsNegative() {
		return fmt.Errorf("%w: annual rate cannot be negative", ErrInvalidOffer)
	}
	if o.ClosingCosts.IsNegative() {
		return fmt.Errorf("%w: closing costs cannot be negative", ErrInvalidOffer)
	}
	if o.Points.IsNegative() {
		return fmt.Errorf("%w: points cannot be negative", ErrInvalidOffer)
	}
	if o.CostPerPoint.IsNegative() {
		return fmt.Errorf("%w: cost per point cannot be negative", ErrInvalidOffer)
	}
	if o.RateReductionPerPoint.IsNegative() {
		return fmt.Errorf("%w: rate reduction per point cannot be negative", ErrInvalidOffer)
	}
	return nil
}

// Describe returns a short generated label for the offer, e.g.
// "6.250% rate, 30yr term" or "6.000% rate, 30yr term, 2.0 points".
func (o RefinanceOffer) Describe() string {
	desc := fmt.Sprintf("%s%% rate, %dyr term",
		o.AnnualRate.Mul(decimal.NewFromInt(100)).StringFixed(3), o.TermMonths/12)
	if o.Points.IsPositive() {
		desc += fmt.Sprintf(", %s points", o.Points.StringFixed(1))
	}
	return desc
}

// Scenario pairs a caller-supplied name with one offer to evaluate.
// Duplicate names are allowed; the comparator preserves input order.
type Scenario struct {
	Name  string
	Offer RefinanceOffer
}

// RemainingMonthsUntil counts the whole months left from now until maturity.
// A not-yet-reached day of month counts as an incomplete month. Maturities
// in the past yield 0.
func RemainingMonthsUntil(maturity, now time.Time) int {
	if !maturity.After(now) {
		return 0
	}
	months := (maturity.Year()-now.Year())*12 + int(maturity.Month()) - int(now.Month())
	if maturity.Day() < now.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}
