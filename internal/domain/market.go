package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ForecastDirection is the categorical direction an external source expects
// rates to move.
type ForecastDirection string

const (
	DirectionUp     ForecastDirection = "up"
	DirectionDown   ForecastDirection = "down"
	DirectionStable ForecastDirection = "stable"
)

// RateSample is one observed market rate for a loan type.
type RateSample struct {
	LoanType string          // free-form label, e.g. "30-year fixed"
	Rate     decimal.Decimal // decimal fraction
	Source   string
}

// ForecastSample is one source's directional rate forecast.
type ForecastSample struct {
	Source    string
	Direction ForecastDirection
	Timeframe string // e.g. "next_6_months"
}

// MarketSnapshot bundles the rate and forecast samples one provider fetch
// produced. Empty collections are valid; the classifier degrades to its
// documented fallbacks.
type MarketSnapshot struct {
	Rates       []RateSample
	Forecasts   []ForecastSample
	CollectedAt time.Time
}

// RateEnvironment buckets the average 30-year market rate.
type RateEnvironment string

const (
	EnvironmentLow    RateEnvironment = "low"
	EnvironmentMedium RateEnvironment = "medium"
	EnvironmentHigh   RateEnvironment = "high"
)

// ForecastConsensus is the plurality classification of forecast directions.
type ForecastConsensus string

const (
	ConsensusRising    ForecastConsensus = "rates_rising"
	ConsensusFalling   ForecastConsensus = "rates_falling"
	ConsensusStable    ForecastConsensus = "rates_stable"
	ConsensusUncertain ForecastConsensus = "uncertain"
)

// TimingRecommendation says when to act on a refinance given the market.
type TimingRecommendation string

const (
	TimingRefiNow     TimingRecommendation = "refi_now"
	TimingWait3Months TimingRecommendation = "wait_3_months"
	TimingWait6Months TimingRecommendation = "wait_6_months"
	TimingUncertain   TimingRecommendation = "uncertain"
)

// MarketTiming is the classifier's verdict for one snapshot. Created once,
// never mutated.
type MarketTiming struct {
	Average30YearRate decimal.Decimal // fallback constant when no 30-year samples exist
	RateEnvironment   RateEnvironment
	Consensus         ForecastConsensus
	Recommendation    TimingRecommendation
	Confidence        float64 // 0..1
	Reasoning         string
	Outlook3Months    string
	Outlook6Months    string
}
