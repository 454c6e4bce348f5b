package domain

import "github.com/shopspring/decimal"

var monthsPerYear = decimal.NewFromInt(12)

// BreakEven is the time needed for accumulated monthly savings to repay the
// upfront cost of a refinance. It is either a finite month count or the
// explicit "never recovers" case that arises when savings are zero or
// negative. The never case is a tag, not an infinity: it compares as beyond
// every threshold and exposes no numeric value.
type BreakEven struct {
	months decimal.Decimal
	never  bool
}

// BreakEvenAfter returns a finite break-even at the given month count.
func BreakEvenAfter(months decimal.Decimal) BreakEven {
	return BreakEven{months: months}
}

// BreakEvenNever returns the break-even for an offer whose upfront cost is
// never recovered.
func BreakEvenNever() BreakEven {
	return BreakEven{never: true}
}

// Never reports whether the upfront cost is never recovered.
func (b BreakEven) Never() bool {
	return b.never
}

// Months returns the finite month count, or zero when Never. Callers must
// check Never before treating the value as meaningful.
func (b BreakEven) Months() decimal.Decimal {
	if b.never {
		return decimal.Zero
	}
	return b.months
}

// Years returns Months divided by twelve, or zero when Never.
func (b BreakEven) Years() decimal.Decimal {
	if b.never {
		return decimal.Zero
	}
	return b.months.Div(monthsPerYear)
}

// WithinYears reports whether the break-even falls inside the given number
// of years. Always false when Never.
func (b BreakEven) WithinYears(years decimal.Decimal) bool {
	if b.never {
		return false
	}
	return b.Years().LessThanOrEqual(years)
}

// String renders "18.6 months" for finite values and "never" otherwise.
func (b BreakEven) String() string {
	if b.never {
		return "never"
	}
	return b.months.StringFixed(1) + " months"
}
