package refinance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/refiscope/refiscope-backend/internal/domain"
)

func currentLoanFixture() domain.CurrentLoan {
	return domain.CurrentLoan{
		AnnualRate:      decimal.NewFromFloat(0.0675),
		Balance:         decimal.NewFromInt(450000),
		MonthlyPayment:  decimal.NewFromInt(3200),
		RemainingMonths: 300,
	}
}

func near(t *testing.T, got decimal.Decimal, want float64, tolerance float64, label string) {
	t.Helper()
	diff := got.Sub(decimal.NewFromFloat(want)).Abs()
	assert.True(t, diff.LessThanOrEqual(decimal.NewFromFloat(tolerance)),
		"%s: got %s, want %v within %v", label, got, want, tolerance)
}

func TestApplyBuydown(t *testing.T) {
	balance := decimal.NewFromInt(450000)

	t.Run("no points leaves the rate untouched", func(t *testing.T) {
		offer := domain.RefinanceOffer{
			AnnualRate: decimal.NewFromFloat(0.0625),
			TermMonths: 360,
		}

		rate, cost := ApplyBuydown(offer, balance)

		assert.True(t, rate.Equal(decimal.NewFromFloat(0.0625)))
		assert.True(t, cost.IsZero())
	})

	t.Run("one point at default pricing", func(t *testing.T) {
		offer := domain.RefinanceOffer{
			AnnualRate: decimal.NewFromFloat(0.0625),
			TermMonths: 360,
			Points:     decimal.NewFromInt(1),
		}

		rate, cost := ApplyBuydown(offer, balance)

		assert.True(t, rate.Equal(decimal.NewFromFloat(0.06)), "rate %s", rate)
		assert.True(t, cost.Equal(decimal.NewFromInt(4500)), "cost %s", cost)
	})

	t.Run("custom pricing is honored", func(t *testing.T) {
		offer := domain.RefinanceOffer{
			AnnualRate:            decimal.NewFromFloat(0.07),
			TermMonths:            360,
			Points:                decimal.NewFromInt(2),
			CostPerPoint:          decimal.NewFromFloat(0.0125),
			RateReductionPerPoint: decimal.NewFromFloat(0.003),
		}

		rate, cost := ApplyBuydown(offer, balance)

		assert.True(t, rate.Equal(decimal.NewFromFloat(0.064)))
		assert.True(t, cost.Equal(decimal.NewFromInt(11250)))
	})

	t.Run("effective rate floors at zero", func(t *testing.T) {
		offer := domain.RefinanceOffer{
			AnnualRate: decimal.NewFromFloat(0.001),
			TermMonths: 360,
			Points:     decimal.NewFromInt(1),
		}

		rate, _ := ApplyBuydown(offer, balance)

		assert.True(t, rate.IsZero(), "rate should clamp at zero, got %s", rate)
	})
}

func TestAnalyze_StandardOffer(t *testing.T) {
	offer := domain.RefinanceOffer{
		AnnualRate:   decimal.NewFromFloat(0.0625),
		TermMonths:   360,
		ClosingCosts: decimal.NewFromInt(8000),
	}

	result, err := Analyze(currentLoanFixture(), offer)

	require.NoError(t, err)
	assert.NotEqual(t, "", result.ID.String())
	assert.Equal(t, "6.250% rate, 30yr term", result.Description)

	assert.True(t, result.EffectiveRate.Equal(decimal.NewFromFloat(0.0625)))
	near(t, result.NewPayment, 2770.73, 0.01, "new payment")
	near(t, result.MonthlySavings, 429.27, 0.01, "monthly savings")
	assert.True(t, result.TotalUpfrontCost.Equal(decimal.NewFromInt(8000)))

	require.False(t, result.BreakEven.Never())
	near(t, result.BreakEven.Months(), 18.64, 0.05, "break-even months")

	// 60 and 120 month horizons net of upfront cost.
	near(t, result.Savings5Years, 17756.36, 1, "5-year savings")
	near(t, result.Savings10Years, 43512.71, 1, "10-year savings")

	// Stretching 300 remaining months into a fresh 360-month term costs more
	// over the full horizon even though the monthly payment drops.
	assert.True(t, result.SavingsFullTerm.IsNegative())
	assert.True(t, result.SavingsFullTerm.Equal(result.NetInterestSavings))

	assert.Equal(t, domain.RecommendationHighly, result.Recommendation)
	assert.Equal(t, "quick break-even", result.Reason)
}

func TestAnalyze_OnePointBuydown(t *testing.T) {
	offer := domain.RefinanceOffer{
		AnnualRate:   decimal.NewFromFloat(0.0625),
		TermMonths:   360,
		ClosingCosts: decimal.NewFromInt(8000),
		Points:       decimal.NewFromInt(1),
	}

	result, err := Analyze(currentLoanFixture(), offer)

	require.NoError(t, err)
	assert.True(t, result.EffectiveRate.Equal(decimal.NewFromFloat(0.06)))
	assert.True(t, result.BuydownCost.Equal(decimal.NewFromInt(4500)))
	assert.True(t, result.TotalUpfrontCost.Equal(decimal.NewFromInt(12500)))

	// The lower rate saves more per month, but the added upfront cost pushes
	// the break-even out past the no-points case.
	near(t, result.MonthlySavings, 502.02, 0.01, "monthly savings")
	near(t, result.BreakEven.Months(), 24.90, 0.05, "break-even months")

	// 24.9 months is just over two years, so not HIGHLY any more.
	assert.Equal(t, domain.RecommendationRecommended, result.Recommendation)
}

func TestAnalyze_HigherPaymentOffer(t *testing.T) {
	offer := domain.RefinanceOffer{
		AnnualRate:   decimal.NewFromFloat(0.08),
		TermMonths:   360,
		ClosingCosts: decimal.NewFromInt(5000),
	}

	result, err := Analyze(currentLoanFixture(), offer)

	require.NoError(t, err)
	assert.True(t, result.MonthlySavings.IsNegative())
	assert.True(t, result.BreakEven.Never())
	assert.Equal(t, domain.RecommendationNotRecommended, result.Recommendation)
	assert.Equal(t, "higher monthly payment", result.Reason)
}

func TestAnalyze_ZeroUpfrontBreaksEvenImmediately(t *testing.T) {
	offer := domain.RefinanceOffer{
		AnnualRate: decimal.NewFromFloat(0.0625),
		TermMonths: 360,
	}

	result, err := Analyze(currentLoanFixture(), offer)

	require.NoError(t, err)
	require.False(t, result.BreakEven.Never())
	assert.True(t, result.BreakEven.Months().IsZero())
	assert.Equal(t, domain.RecommendationHighly, result.Recommendation)
}

func TestAnalyze_LongBreakEven(t *testing.T) {
	t.Run("within ten years is CONSIDER", func(t *testing.T) {
		offer := domain.RefinanceOffer{
			AnnualRate:   decimal.NewFromFloat(0.0735),
			TermMonths:   360,
			ClosingCosts: decimal.NewFromInt(10000),
		}

		result, err := Analyze(currentLoanFixture(), offer)

		require.NoError(t, err)
		require.False(t, result.BreakEven.Never())
		// Roughly 100 months of savings to recover the cost.
		assert.True(t, result.BreakEven.Years().GreaterThan(decimal.NewFromInt(5)))
		assert.True(t, result.BreakEven.Years().LessThanOrEqual(decimal.NewFromInt(10)))
		assert.Equal(t, domain.RecommendationConsider, result.Recommendation)
	})

	t.Run("past ten years is NOT_RECOMMENDED", func(t *testing.T) {
		offer := domain.RefinanceOffer{
			AnnualRate:   decimal.NewFromFloat(0.0735),
			TermMonths:   360,
			ClosingCosts: decimal.NewFromInt(20000),
		}

		result, err := Analyze(currentLoanFixture(), offer)

		require.NoError(t, err)
		assert.Equal(t, domain.RecommendationNotRecommended, result.Recommendation)
		assert.Equal(t, "break-even too long", result.Reason)
	})
}

func TestAnalyze_NeverHighlyRecommendedWithoutSavings(t *testing.T) {
	// Offers at or above the current payment can never grade HIGHLY.
	rates := []float64{0.075, 0.08, 0.09, 0.12}

	for _, rate := range rates {
		offer := domain.RefinanceOffer{
			AnnualRate: decimal.NewFromFloat(rate),
			TermMonths: 360,
		}

		result, err := Analyze(currentLoanFixture(), offer)
		require.NoError(t, err)

		if result.MonthlySavings.LessThanOrEqual(decimal.Zero) {
			assert.NotEqual(t, domain.RecommendationHighly, result.Recommendation,
				"rate %v: HIGHLY with non-positive savings", rate)
			assert.True(t, result.BreakEven.Never(),
				"rate %v: break-even must be never without savings", rate)
		}
	}
}

func TestAnalyze_PaidOffLoan(t *testing.T) {
	current := currentLoanFixture()
	current.RemainingMonths = 0

	offer := domain.RefinanceOffer{
		AnnualRate:   decimal.NewFromFloat(0.0625),
		TermMonths:   360,
		ClosingCosts: decimal.NewFromInt(8000),
	}

	result, err := Analyze(current, offer)

	require.NoError(t, err)
	assert.True(t, result.CurrentTotalPayments.IsZero())
}

func TestAnalyze_InvalidInput(t *testing.T) {
	t.Run("bad offer", func(t *testing.T) {
		_, err := Analyze(currentLoanFixture(), domain.RefinanceOffer{TermMonths: 0})
		assert.ErrorIs(t, err, domain.ErrInvalidOffer)
	})

	t.Run("bad current loan", func(t *testing.T) {
		_, err := Analyze(domain.CurrentLoan{}, domain.RefinanceOffer{
			AnnualRate: decimal.NewFromFloat(0.06),
			TermMonths: 360,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidLoan)
	})
}

func TestCompare_PreservesOrderAndNames(t *testing.T) {
	scenarios := []domain.Scenario{
		{Name: "Lender A", Offer: domain.RefinanceOffer{
			AnnualRate:   decimal.NewFromFloat(0.0625),
			TermMonths:   360,
			ClosingCosts: decimal.NewFromInt(8000),
		}},
		{Name: "Lender B", Offer: domain.RefinanceOffer{
			AnnualRate:   decimal.NewFromFloat(0.0599),
			TermMonths:   180,
			ClosingCosts: decimal.NewFromInt(9500),
		}},
		{Name: "Lender A", Offer: domain.RefinanceOffer{ // duplicate name on purpose
			AnnualRate:   decimal.NewFromFloat(0.0650),
			TermMonths:   360,
			ClosingCosts: decimal.NewFromInt(3000),
		}},
	}

	results, err := Compare(currentLoanFixture(), scenarios)

	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "Lender A", results[0].ScenarioName)
	assert.Equal(t, "Lender B", results[1].ScenarioName)
	assert.Equal(t, "Lender A", results[2].ScenarioName)
	assert.True(t, results[1].OfferedRate.Equal(decimal.NewFromFloat(0.0599)))
}

func TestCompare_EmptyInput(t *testing.T) {
	results, err := Compare(currentLoanFixture(), nil)

	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Len(t, results, 0)
}

func TestCompare_FailsFastOnInvalidScenario(t *testing.T) {
	scenarios := []domain.Scenario{
		{Name: "ok", Offer: domain.RefinanceOffer{
			AnnualRate: decimal.NewFromFloat(0.0625),
			TermMonths: 360,
		}},
		{Name: "broken", Offer: domain.RefinanceOffer{TermMonths: -1}},
	}

	_, err := Compare(currentLoanFixture(), scenarios)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidOffer)
	assert.Contains(t, err.Error(), `scenario "broken"`)
}
