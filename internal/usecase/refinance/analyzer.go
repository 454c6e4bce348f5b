package refinance

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/refiscope/refiscope-backend/internal/domain"
	"github.com/refiscope/refiscope-backend/internal/usecase/amortization"
)

// Break-even thresholds (years) for the recommendation ladder.
var (
	quickBreakEven      = decimal.NewFromInt(2)
	reasonableBreakEven = decimal.NewFromInt(5)
	longBreakEven       = decimal.NewFromInt(10)
)

// Horizon lengths in months for the fixed savings projections.
var (
	fiveYears = decimal.NewFromInt(60)
	tenYears  = decimal.NewFromInt(120)
)

// Analyze evaluates one refinance offer against the current loan
// Logic:
//  1. Project the current loan's remaining payments and interest
//  2. Price the buydown (effective rate, upfront point cost)
//  3. Amortize the current balance at the effective rate over the new term
//  4. Derive monthly savings, break-even time, and savings at fixed horizons
//  5. Grade the offer with the ordered recommendation ladder
//
// The returned result is fully formed; callers never mutate it.
func Analyze(current domain.CurrentLoan, offer domain.RefinanceOffer) (*domain.AnalysisResult, error) {
	return analyzeNamed(current, "", offer)
}

// Compare runs Analyze over an ordered list of named scenarios. Output is
// one-to-one with input, in input order. Duplicate names pass through
// untouched and an empty list yields an empty (non-nil) slice.
func Compare(current domain.CurrentLoan, scenarios []domain.Scenario) ([]*domain.AnalysisResult, error) {
	results := make([]*domain.AnalysisResult, 0, len(scenarios))
	for _, scenario := range scenarios {
		result, err := analyzeNamed(current, scenario.Name, scenario.Offer)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", scenario.Name, err)
		}
		results = append(results, result)
	}
	return results, nil
}

func analyzeNamed(current domain.CurrentLoan, name string, offer domain.RefinanceOffer) (*domain.AnalysisResult, error) {
	if err := current.Validate(); err != nil {
		return nil, err
	}
	if err := offer.Validate(); err != nil {
		return nil, err
	}
	offer = offer.Normalized()

	remainingMonths := decimal.NewFromInt(int64(current.RemainingMonths))
	currentTotalPayments := current.MonthlyPayment.Mul(remainingMonths)
	currentTotalInterest := amortization.TotalInterest(current.MonthlyPayment, current.RemainingMonths, current.Balance)

	effectiveRate, buydownCost := ApplyBuydown(offer, current.Balance)

	newPayment, err := amortization.MonthlyPayment(current.Balance, effectiveRate, offer.TermMonths)
	if err != nil {
		return nil, err
	}

	totalUpfrontCost := offer.ClosingCosts.Add(buydownCost)
	monthlySavings := current.MonthlyPayment.Sub(newPayment)

	breakEven := domain.BreakEvenNever()
	if monthlySavings.IsPositive() {
		breakEven = domain.BreakEvenAfter(totalUpfrontCost.Div(monthlySavings))
	}

	newTotalPayments := newPayment.Mul(decimal.NewFromInt(int64(offer.TermMonths)))
	newTotalInterest := amortization.TotalInterest(newPayment, offer.TermMonths, current.Balance)

	savings5Years := monthlySavings.Mul(fiveYears).Sub(totalUpfrontCost)
	savings10Years := monthlySavings.Mul(tenYears).Sub(totalUpfrontCost)
	savingsFullTerm := currentTotalPayments.Sub(newTotalPayments.Add(totalUpfrontCost))
	interestSavings := currentTotalInterest.Sub(newTotalInterest)
	netInterestSavings := interestSavings.Sub(totalUpfrontCost)

	recommendation, reason := recommend(monthlySavings, breakEven, savings5Years)

	return &domain.AnalysisResult{
		ID:           uuid.New(),
		GeneratedAt:  time.Now().UTC(),
		ScenarioName: name,
		Description:  offer.Describe(),

		CurrentRate:            current.AnnualRate,
		CurrentBalance:         current.Balance,
		CurrentPayment:         current.MonthlyPayment,
		CurrentRemainingMonths: current.RemainingMonths,
		CurrentTotalPayments:   currentTotalPayments,
		CurrentTotalInterest:   currentTotalInterest,

		OfferedRate:      offer.AnnualRate,
		EffectiveRate:    effectiveRate,
		NewTermMonths:    offer.TermMonths,
		NewPayment:       newPayment,
		Points:           offer.Points,
		BuydownCost:      buydownCost,
		ClosingCosts:     offer.ClosingCosts,
		TotalUpfrontCost: totalUpfrontCost,
		NewTotalPayments: newTotalPayments,
		NewTotalInterest: newTotalInterest,

		MonthlySavings:     monthlySavings,
		BreakEven:          breakEven,
		Savings5Years:      savings5Years,
		Savings10Years:     savings10Years,
		SavingsFullTerm:    savingsFullTerm,
		InterestSavings:    interestSavings,
		NetInterestSavings: netInterestSavings,

		Recommendation: recommendation,
		Reason:         reason,
	}, nil
}

// recommend grades one offer. Rules are checked in order; the first match
// wins.
func recommend(monthlySavings decimal.Decimal, breakEven domain.BreakEven, savings5Years decimal.Decimal) (domain.Recommendation, string) {
	switch {
	case monthlySavings.LessThanOrEqual(decimal.Zero):
		return domain.RecommendationNotRecommended, "higher monthly payment"
	case breakEven.Never():
		return domain.RecommendationNotRecommended, "never breaks even"
	case breakEven.WithinYears(quickBreakEven):
		return domain.RecommendationHighly, "quick break-even"
	case breakEven.WithinYears(reasonableBreakEven) && savings5Years.IsPositive():
		return domain.RecommendationRecommended, "reasonable break-even period"
	case breakEven.WithinYears(longBreakEven):
		return domain.RecommendationConsider, "long break-even but potential savings"
	default:
		return domain.RecommendationNotRecommended, "break-even too long"
	}
}
