package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Recommendation classifies how financially attractive a refinance offer is
// on its own, before market timing is considered.
type Recommendation string

const (
	RecommendationHighly         Recommendation = "HIGHLY_RECOMMENDED"
	RecommendationRecommended    Recommendation = "RECOMMENDED"
	RecommendationConsider       Recommendation = "CONSIDER"
	RecommendationNotRecommended Recommendation = "NOT_RECOMMENDED"
)

// AnalysisResult is the outcome of evaluating one refinance offer against
// the current loan. Created once by the analyzer, never mutated.
type AnalysisResult struct {
	ID           uuid.UUID
	GeneratedAt  time.Time
	ScenarioName string // caller-supplied, may repeat across scenarios
	Description  string // generated from the offer, e.g. "6.250% rate, 30yr term"

	// Current loan side.
	CurrentRate            decimal.Decimal
	CurrentBalance         decimal.Decimal
	CurrentPayment         decimal.Decimal
	CurrentRemainingMonths int
	CurrentTotalPayments   decimal.Decimal // payment times remaining months
	CurrentTotalInterest   decimal.Decimal

	// Offer side.
	OfferedRate      decimal.Decimal // before buydown
	EffectiveRate    decimal.Decimal // after buydown, floored at zero
	NewTermMonths    int
	NewPayment       decimal.Decimal
	Points           decimal.Decimal
	BuydownCost      decimal.Decimal
	ClosingCosts     decimal.Decimal
	TotalUpfrontCost decimal.Decimal // closing costs plus buydown cost
	NewTotalPayments decimal.Decimal
	NewTotalInterest decimal.Decimal

	// Comparison.
	MonthlySavings     decimal.Decimal
	BreakEven          BreakEven
	Savings5Years      decimal.Decimal
	Savings10Years     decimal.Decimal
	SavingsFullTerm    decimal.Decimal
	InterestSavings    decimal.Decimal // current total interest minus new total interest
	NetInterestSavings decimal.Decimal // interest savings minus total upfront cost

	Recommendation Recommendation
	Reason         string // short rationale, e.g. "quick break-even"
}

// CombinedVerdict merges the financial recommendation with the market
// timing signal into one actionable label.
type CombinedVerdict string

const (
	VerdictNotRecommended       CombinedVerdict = "NOT_RECOMMENDED"
	VerdictExcellentOpportunity CombinedVerdict = "EXCELLENT_OPPORTUNITY"
	VerdictGoodOpportunity      CombinedVerdict = "GOOD_OPPORTUNITY"
	VerdictRefiNow              CombinedVerdict = "REFI_NOW"
	VerdictConsiderWaiting      CombinedVerdict = "CONSIDER_WAITING"
	VerdictWaitForBetterRates   CombinedVerdict = "WAIT_FOR_BETTER_RATES"
	VerdictMixedSignals         CombinedVerdict = "MIXED_SIGNALS"
)

// CombinedRecommendation is a derived view over one AnalysisResult and the
// market timing verdict. It carries no identity of its own.
type CombinedRecommendation struct {
	Verdict CombinedVerdict
	Summary string
}
