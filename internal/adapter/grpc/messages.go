package grpc

import "time"

// Wire messages for the RefiAdvisorService. Money and rate fields travel as
// decimal strings and are parsed server-side; rates are decimal fractions
// (0.0625 means 6.25%).

// CurrentLoanMessage describes the loan being refinanced. Exactly one of
// remaining_months or maturity_date (YYYY-MM-DD) must be set.
type CurrentLoanMessage struct {
	AnnualRate      string `json:"annual_rate"`
	Balance         string `json:"balance"`
	MonthlyPayment  string `json:"monthly_payment"`
	RemainingMonths int    `json:"remaining_months,omitempty"`
	MaturityDate    string `json:"maturity_date,omitempty"`
}

// RefinanceOfferMessage describes one candidate offer. Zero-valued point
// pricing fields fall back to the standard defaults.
type RefinanceOfferMessage struct {
	AnnualRate            string `json:"annual_rate"`
	TermMonths            int    `json:"term_months"`
	ClosingCosts          string `json:"closing_costs"`
	Points                string `json:"points,omitempty"`
	CostPerPoint          string `json:"cost_per_point,omitempty"`
	RateReductionPerPoint string `json:"rate_reduction_per_point,omitempty"`
}

// ScenarioMessage names one offer for comparison output.
type ScenarioMessage struct {
	Name  string                `json:"name"`
	Offer RefinanceOfferMessage `json:"offer"`
}

// AnalysisResultMessage mirrors one analysis outcome. A never-breaking-even
// offer carries break_even_never=true and an empty break_even_months.
type AnalysisResultMessage struct {
	ID           string    `json:"id"`
	GeneratedAt  time.Time `json:"generated_at"`
	ScenarioName string    `json:"scenario_name,omitempty"`
	Description  string    `json:"description"`

	CurrentRate            string `json:"current_rate"`
	CurrentBalance         string `json:"current_balance"`
	CurrentPayment         string `json:"current_payment"`
	CurrentRemainingMonths int    `json:"current_remaining_months"`
	CurrentTotalPayments   string `json:"current_total_payments"`
	CurrentTotalInterest   string `json:"current_total_interest"`

	OfferedRate      string `json:"offered_rate"`
	EffectiveRate    string `json:"effective_rate"`
	NewTermMonths    int    `json:"new_term_months"`
	NewPayment       string `json:"new_payment"`
	Points           string `json:"points"`
	BuydownCost      string `json:"buydown_cost"`
	ClosingCosts     string `json:"closing_costs"`
	TotalUpfrontCost string `json:"total_upfront_cost"`
	NewTotalPayments string `json:"new_total_payments"`
	NewTotalInterest string `json:"new_total_interest"`

	MonthlySavings     string `json:"monthly_savings"`
	BreakEvenMonths    string `json:"break_even_months,omitempty"`
	BreakEvenNever     bool   `json:"break_even_never,omitempty"`
	Savings5Years      string `json:"savings_5_years"`
	Savings10Years     string `json:"savings_10_years"`
	SavingsFullTerm    string `json:"savings_full_term"`
	InterestSavings    string `json:"interest_savings"`
	NetInterestSavings string `json:"net_interest_savings"`

	Recommendation string `json:"recommendation"`
	Reason         string `json:"reason"`
}

// MarketTimingMessage mirrors the market timing classification.
type MarketTimingMessage struct {
	Average30YearRate string  `json:"average_30_year_rate"`
	RateEnvironment   string  `json:"rate_environment"`
	Consensus         string  `json:"consensus"`
	Recommendation    string  `json:"recommendation"`
	Confidence        float64 `json:"confidence"`
	Reasoning         string  `json:"reasoning"`
	Outlook3Months    string  `json:"outlook_3_months"`
	Outlook6Months    string  `json:"outlook_6_months"`
}

// RateSampleMessage is one observed market rate.
type RateSampleMessage struct {
	LoanType string `json:"loan_type"`
	Rate     string `json:"rate"`
	Source   string `json:"source"`
}

// ForecastSampleMessage is one source's directional forecast.
type ForecastSampleMessage struct {
	Source    string `json:"source"`
	Direction string `json:"direction"`
	Timeframe string `json:"timeframe"`
}

// OfferAssessmentMessage pairs an analysis with the market-aware verdict.
// RateVsMarket30Year is empty when no 30-year market samples were available.
type OfferAssessmentMessage struct {
	Result             AnalysisResultMessage `json:"result"`
	CombinedVerdict    string                `json:"combined_verdict"`
	CombinedSummary    string                `json:"combined_summary"`
	RateVsMarket30Year string                `json:"rate_vs_market_30_year,omitempty"`
}

// ScheduleEntryMessage is one amortization schedule row.
type ScheduleEntryMessage struct {
	Period              int    `json:"period"`
	DueDate             string `json:"due_date"`
	Payment             string `json:"payment"`
	Interest            string `json:"interest"`
	Principal           string `json:"principal"`
	RemainingBalance    string `json:"remaining_balance"`
	CumulativeInterest  string `json:"cumulative_interest"`
	CumulativePrincipal string `json:"cumulative_principal"`
}

type AnalyzeOfferRequest struct {
	Current CurrentLoanMessage    `json:"current"`
	Offer   RefinanceOfferMessage `json:"offer"`
}

type AnalyzeOfferResponse struct {
	Result AnalysisResultMessage `json:"result"`
}

type CompareOffersRequest struct {
	Current   CurrentLoanMessage `json:"current"`
	Scenarios []ScenarioMessage  `json:"scenarios"`
}

type CompareOffersResponse struct {
	Results []AnalysisResultMessage `json:"results"`
}

type GetMarketTimingRequest struct{}

type GetMarketTimingResponse struct {
	Timing      MarketTimingMessage     `json:"timing"`
	Rates       []RateSampleMessage     `json:"rates,omitempty"`
	Forecasts   []ForecastSampleMessage `json:"forecasts,omitempty"`
	CollectedAt time.Time               `json:"collected_at"`
}

// RunAnalysisRequest drives the full pipeline. Set include_report to also
// receive the rendered plain-text market report.
type RunAnalysisRequest struct {
	Current       CurrentLoanMessage `json:"current"`
	Scenarios     []ScenarioMessage  `json:"scenarios"`
	IncludeReport bool               `json:"include_report,omitempty"`
}

type RunAnalysisResponse struct {
	RunID       string                   `json:"run_id"`
	GeneratedAt time.Time                `json:"generated_at"`
	Assessments []OfferAssessmentMessage `json:"assessments"`
	Timing      MarketTimingMessage      `json:"timing"`
	ReportText  string                   `json:"report_text,omitempty"`
}

// GetAmortizationScheduleRequest describes a loan to amortize. start_date
// is the origination date; the first payment falls due one month after it.
// When empty it defaults to the first day of the next month.
type GetAmortizationScheduleRequest struct {
	Principal  string `json:"principal"`
	AnnualRate string `json:"annual_rate"`
	TermMonths int    `json:"term_months"`
	StartDate  string `json:"start_date,omitempty"`
}

type GetAmortizationScheduleResponse struct {
	Entries []ScheduleEntryMessage `json:"entries"`
}
