package amortization

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/refiscope/refiscope-backend/internal/domain"
)

func TestMonthlyPayment_ZeroRateIsEvenSplit(t *testing.T) {
	principal := decimal.NewFromInt(120000)

	payment, err := MonthlyPayment(principal, decimal.Zero, 120)

	require.NoError(t, err)
	assert.True(t, payment.Equal(principal.Div(decimal.NewFromInt(120))),
		"expected exact even split, got %s", payment)
}

func TestMonthlyPayment_ThirtyYearFixed(t *testing.T) {
	// $450,000 at 6.25% over 360 months amortizes at $2,770.73/month.
	payment, err := MonthlyPayment(decimal.NewFromInt(450000), decimal.NewFromFloat(0.0625), 360)

	require.NoError(t, err)
	expected := decimal.NewFromFloat(2770.73)
	assert.True(t, payment.Sub(expected).Abs().LessThan(decimal.NewFromFloat(0.01)),
		"payment %s not within a cent of %s", payment, expected)
}

func TestMonthlyPayment_InvalidInput(t *testing.T) {
	t.Run("zero term", func(t *testing.T) {
		_, err := MonthlyPayment(decimal.NewFromInt(1000), decimal.NewFromFloat(0.05), 0)
		assert.ErrorIs(t, err, domain.ErrNonPositiveTerm)
	})

	t.Run("negative term", func(t *testing.T) {
		_, err := MonthlyPayment(decimal.NewFromInt(1000), decimal.NewFromFloat(0.05), -12)
		assert.ErrorIs(t, err, domain.ErrNonPositiveTerm)
	})

	t.Run("zero principal", func(t *testing.T) {
		_, err := MonthlyPayment(decimal.Zero, decimal.NewFromFloat(0.05), 360)
		assert.ErrorIs(t, err, domain.ErrNonPositivePrincipal)
	})
}

func TestRemainingBalance_FullTermAmortizesToZero(t *testing.T) {
	cases := []struct {
		principal decimal.Decimal
		rate      decimal.Decimal
		months    int
	}{
		{decimal.NewFromInt(450000), decimal.NewFromFloat(0.0625), 360},
		{decimal.NewFromInt(100000), decimal.NewFromFloat(0.03), 180},
		{decimal.NewFromInt(25000), decimal.NewFromFloat(0.089), 60},
	}

	for _, tc := range cases {
		payment, err := MonthlyPayment(tc.principal, tc.rate, tc.months)
		require.NoError(t, err)

		balance, err := RemainingBalance(tc.principal, payment, tc.rate, tc.months)
		require.NoError(t, err)

		assert.True(t, balance.LessThan(decimal.NewFromFloat(0.01)),
			"balance after full term should be zero, got %s", balance)
	}
}

func TestRemainingBalance_ZeroMonthsPaid(t *testing.T) {
	principal := decimal.NewFromInt(100000)

	balance, err := RemainingBalance(principal, decimal.NewFromFloat(599.55), decimal.NewFromFloat(0.06), 0)

	require.NoError(t, err)
	assert.True(t, balance.Sub(principal).Abs().LessThan(decimal.NewFromFloat(0.01)))
}

func TestRemainingBalance_ZeroRateIsLinear(t *testing.T) {
	balance, err := RemainingBalance(decimal.NewFromInt(1200), decimal.NewFromInt(100), decimal.Zero, 5)

	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(700)))
}

func TestRemainingBalance_ClampsAtZero(t *testing.T) {
	// Paying far beyond the term must never go negative.
	balance, err := RemainingBalance(decimal.NewFromInt(1200), decimal.NewFromInt(100), decimal.Zero, 50)

	require.NoError(t, err)
	assert.True(t, balance.IsZero())
}

func TestRemainingBalance_NegativeMonthsPaid(t *testing.T) {
	_, err := RemainingBalance(decimal.NewFromInt(1000), decimal.NewFromInt(10), decimal.NewFromFloat(0.05), -1)
	assert.ErrorIs(t, err, domain.ErrNegativeMonthsPaid)
}

func TestTotalInterest(t *testing.T) {
	interest := TotalInterest(decimal.NewFromInt(600), 360, decimal.NewFromInt(100000))
	assert.True(t, interest.Equal(decimal.NewFromInt(116000)))

	// Contradictory inputs go negative instead of failing.
	negative := TotalInterest(decimal.NewFromInt(1), 10, decimal.NewFromInt(100))
	assert.True(t, negative.IsNegative())
}

func TestSchedule_ZeroRate(t *testing.T) {
	start := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	schedule, err := Schedule(decimal.NewFromInt(1200), decimal.Zero, 12, start)

	require.NoError(t, err)
	require.Len(t, schedule, 12)

	first := schedule[0]
	assert.True(t, first.Payment.Equal(decimal.NewFromInt(100)))
	assert.True(t, first.Interest.IsZero())
	assert.Equal(t, start.AddDate(0, 1, 0), first.DueDate)

	last := schedule[11]
	assert.True(t, last.RemainingBalance.IsZero())
	assert.True(t, last.CumulativePrincipal.Equal(decimal.NewFromInt(1200)))
}

func TestSchedule_BalanceReachesExactlyZero(t *testing.T) {
	start := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	principal := decimal.NewFromInt(10000)

	schedule, err := Schedule(principal, decimal.NewFromFloat(0.06), 12, start)

	require.NoError(t, err)
	require.Len(t, schedule, 12)

	// First period interest is balance * monthly rate.
	expectedInterest := principal.Mul(decimal.NewFromFloat(0.005)).Round(2)
	assert.True(t, schedule[0].Interest.Equal(expectedInterest),
		"first interest %s, want %s", schedule[0].Interest, expectedInterest)

	// Balance strictly decreases and ends at exactly zero.
	previous := principal
	for _, entry := range schedule {
		assert.True(t, entry.RemainingBalance.LessThan(previous),
			"balance should shrink every period")
		previous = entry.RemainingBalance
	}
	assert.True(t, schedule[11].RemainingBalance.IsZero())

	// Principal portions sum back to the loan amount.
	assert.True(t, schedule[11].CumulativePrincipal.Equal(principal))

	// The final payment differs from the level payment only by rounding drift.
	drift := schedule[11].Payment.Sub(schedule[0].Payment).Abs()
	assert.True(t, drift.LessThan(decimal.NewFromFloat(0.25)),
		"final payment drift too large: %s", drift)
}

func TestSchedule_CumulativeInterestMatchesTotals(t *testing.T) {
	start := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)
	principal := decimal.NewFromInt(200000)
	rate := decimal.NewFromFloat(0.055)

	schedule, err := Schedule(principal, rate, 360, start)
	require.NoError(t, err)
	require.Len(t, schedule, 360)

	payment, err := MonthlyPayment(principal, rate, 360)
	require.NoError(t, err)

	// Per-period rounding plus the final adjustment keeps the schedule within
	// a few dollars of the closed-form interest total over 30 years.
	closedForm := TotalInterest(payment, 360, principal)
	diff := schedule[359].CumulativeInterest.Sub(closedForm).Abs()
	assert.True(t, diff.LessThan(decimal.NewFromInt(5)),
		"schedule interest %s vs closed form %s", schedule[359].CumulativeInterest, closedForm)
}

func TestSchedule_InvalidInput(t *testing.T) {
	start := time.Now()

	_, err := Schedule(decimal.NewFromInt(1000), decimal.NewFromFloat(0.05), 0, start)
	assert.ErrorIs(t, err, domain.ErrNonPositiveTerm)

	_, err = Schedule(decimal.NewFromInt(-5), decimal.NewFromFloat(0.05), 12, start)
	assert.ErrorIs(t, err, domain.ErrNonPositivePrincipal)
}
