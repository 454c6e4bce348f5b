package amortization

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/refiscope/refiscope-backend/internal/domain"
)

// MonthlyPayment computes the level payment for a fully amortizing
// fixed-rate loan:
//
//	payment = P * r * (1+r)^n / ((1+r)^n - 1)   with r = annualRate/12
//
// The power term is evaluated in float64, then the result moves back to
// decimal for monetary arithmetic. A zero annual rate degenerates to an
// even split of the principal across the term.
// Returns domain.ErrNonPositiveTerm or domain.ErrNonPositivePrincipal on
// invalid input.
func MonthlyPayment(principal, annualRate decimal.Decimal, months int) (decimal.Decimal, error) {
	if months <= 0 {
		return decimal.Zero, domain.ErrNonPositiveTerm
	}
	if principal.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, domain.ErrNonPositivePrincipal
	}

	if annualRate.IsZero() {
		// Zero-interest: even split.
		return principal.Div(decimal.NewFromInt(int64(months))), nil
	}

	monthlyRate := annualRate.InexactFloat64() / 12.0
	factor := math.Pow(1+monthlyRate, float64(months))
	payment := principal.InexactFloat64() * monthlyRate * factor / (factor - 1)

	return decimal.NewFromFloat(payment), nil
}

// RemainingBalance projects the balance of a loan after monthsPaid payments
// using the closed form
//
//	B * (1+r)^m - payment * ((1+r)^m - 1) / r
//
// clamped at zero. The zero-rate case is linear subtraction. Returns
// domain.ErrNegativeMonthsPaid when monthsPaid is negative.
func RemainingBalance(originalBalance, payment, annualRate decimal.Decimal, monthsPaid int) (decimal.Decimal, error) {
	if monthsPaid < 0 {
		return decimal.Zero, domain.ErrNegativeMonthsPaid
	}

	if annualRate.IsZero() {
		remaining := originalBalance.Sub(payment.Mul(decimal.NewFromInt(int64(monthsPaid))))
		if remaining.IsNegative() {
			return decimal.Zero, nil
		}
		return remaining, nil
	}

	monthlyRate := annualRate.InexactFloat64() / 12.0
	factor := math.Pow(1+monthlyRate, float64(monthsPaid))
	balance := originalBalance.InexactFloat64()*factor - payment.InexactFloat64()*(factor-1)/monthlyRate
	if balance < 0 {
		return decimal.Zero, nil
	}

	return decimal.NewFromFloat(balance), nil
}

// TotalInterest is payment*months - principal. It is a total function and
// performs no validation; contradictory inputs simply yield a negative
// value.
func TotalInterest(payment decimal.Decimal, months int, principal decimal.Decimal) decimal.Decimal {
	return payment.Mul(decimal.NewFromInt(int64(months))).Sub(principal)
}

// Entry is one period of an amortization schedule.
type Entry struct {
	Period              int
	DueDate             time.Time
	Payment             decimal.Decimal
	Interest            decimal.Decimal
	Principal           decimal.Decimal
	RemainingBalance    decimal.Decimal
	CumulativeInterest  decimal.Decimal
	CumulativePrincipal decimal.Decimal
}

// Schedule expands a loan into its per-month payment rows, first payment due
// one month after startDate. Money is rounded to cents per period and the
// final payment absorbs the rounding drift so the balance lands exactly on
// zero. The schedule ends early if rounding retires the balance before the
// nominal term.
func Schedule(principal, annualRate decimal.Decimal, months int, startDate time.Time) ([]Entry, error) {
	payment, err := MonthlyPayment(principal, annualRate, months)
	if err != nil {
		return nil, err
	}
	payment = payment.Round(2)

	monthlyRate := annualRate.Div(decimal.NewFromInt(12))
	remaining := principal
	cumulativeInterest := decimal.Zero
	cumulativePrincipal := decimal.Zero

	schedule := make([]Entry, 0, months)
	for period := 1; period <= months; period++ {
		interest := remaining.Mul(monthlyRate).Round(2)
		principalPart := payment.Sub(interest)
		rowPayment := payment

		// Last period, or the payment overshoots: retire the balance exactly.
		if period == months || principalPart.GreaterThanOrEqual(remaining) {
			principalPart = remaining
			rowPayment = principalPart.Add(interest)
		}

		remaining = remaining.Sub(principalPart)
		if remaining.IsNegative() {
			remaining = decimal.Zero
		}
		cumulativeInterest = cumulativeInterest.Add(interest)
		cumulativePrincipal = cumulativePrincipal.Add(principalPart)

		schedule = append(schedule, Entry{
			Period:              period,
			DueDate:             startDate.AddDate(0, period, 0),
			Payment:             rowPayment,
			Interest:            interest,
			Principal:           principalPart,
			RemainingBalance:    remaining,
			CumulativeInterest:  cumulativeInterest,
			CumulativePrincipal: cumulativePrincipal,
		})

		if remaining.IsZero() {
			break
		}
	}

	return schedule, nil
}
