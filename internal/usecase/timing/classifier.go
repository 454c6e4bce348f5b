package timing

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/refiscope/refiscope-backend/internal/domain"
)

// fallback30YearRate stands in for the average when the snapshot carries no
// 30-year samples at all.
var fallback30YearRate = decimal.NewFromFloat(0.07)

// Rate environment ceilings for the average 30-year rate.
var (
	lowRateCeiling    = decimal.NewFromFloat(0.055)
	mediumRateCeiling = decimal.NewFromFloat(0.075)
)

// Classify maps one market snapshot to a timing verdict. It is total over
// its input: a nil or empty snapshot degrades to the fallback average and an
// uncertain consensus instead of failing.
func Classify(snapshot *domain.MarketSnapshot) *domain.MarketTiming {
	average, ok := Average30Year(snapshot)
	if !ok {
		average = fallback30YearRate
	}
	environment := classifyEnvironment(average)
	consensus := classifyConsensus(snapshot)
	row := timingFor(environment, consensus)

	return &domain.MarketTiming{
		Average30YearRate: average,
		RateEnvironment:   environment,
		Consensus:         consensus,
		Recommendation:    row.recommendation,
		Confidence:        row.confidence,
		Reasoning:         row.reasoning,
		Outlook3Months:    row.outlook3Months,
		Outlook6Months:    row.outlook6Months,
	}
}

// AverageRates returns the mean sampled rate per loan-type label. Labels are
// kept verbatim. Empty snapshots yield an empty map.
func AverageRates(snapshot *domain.MarketSnapshot) map[string]decimal.Decimal {
	averages := make(map[string]decimal.Decimal)
	if snapshot == nil {
		return averages
	}

	sums := make(map[string]decimal.Decimal)
	counts := make(map[string]int64)
	for _, sample := range snapshot.Rates {
		sums[sample.LoanType] = sums[sample.LoanType].Add(sample.Rate)
		counts[sample.LoanType]++
	}
	for loanType, sum := range sums {
		averages[loanType] = sum.Div(decimal.NewFromInt(counts[loanType]))
	}
	return averages
}

// Average30Year averages every sample whose loan-type label mentions
// "30-year", however it is cased. The second return reports whether any
// matching sample existed; when false the average is zero and callers pick
// their own fallback.
func Average30Year(snapshot *domain.MarketSnapshot) (decimal.Decimal, bool) {
	if snapshot == nil {
		return decimal.Zero, false
	}

	sum := decimal.Zero
	var count int64
	for _, sample := range snapshot.Rates {
		if strings.Contains(strings.ToLower(sample.LoanType), "30-year") {
			sum = sum.Add(sample.Rate)
			count++
		}
	}
	if count == 0 {
		return decimal.Zero, false
	}
	return sum.Div(decimal.NewFromInt(count)), true
}

func classifyEnvironment(average decimal.Decimal) domain.RateEnvironment {
	switch {
	case average.LessThan(lowRateCeiling):
		return domain.EnvironmentLow
	case average.LessThan(mediumRateCeiling):
		return domain.EnvironmentMedium
	default:
		return domain.EnvironmentHigh
	}
}

// classifyConsensus takes a plurality vote over forecast directions: a
// direction wins only by beating everything else combined. Ties and mixed
// splits read as stable; no forecasts at all reads as uncertain.
func classifyConsensus(snapshot *domain.MarketSnapshot) domain.ForecastConsensus {
	if snapshot == nil || len(snapshot.Forecasts) == 0 {
		return domain.ConsensusUncertain
	}

	var up, down, stable int
	for _, forecast := range snapshot.Forecasts {
		switch forecast.Direction {
		case domain.DirectionUp:
			up++
		case domain.DirectionDown:
			down++
		case domain.DirectionStable:
			stable++
		}
	}

	switch {
	case up > down+stable:
		return domain.ConsensusRising
	case down > up+stable:
		return domain.ConsensusFalling
	default:
		return domain.ConsensusStable
	}
}

type tableRow struct {
	recommendation domain.TimingRecommendation
	confidence     float64
	reasoning      string
	outlook3Months string
	outlook6Months string
}

// timingFor is the timing decision table, checked in order. Combinations no
// explicit row matches fall through to the uncertain default, which keeps
// the function total over the whole environment/consensus space.
func timingFor(environment domain.RateEnvironment, consensus domain.ForecastConsensus) tableRow {
	switch {
	case environment == domain.EnvironmentLow && consensus == domain.ConsensusRising:
		return tableRow{
			recommendation: domain.TimingRefiNow,
			confidence:     0.9,
			reasoning:      "Rates are currently low and expected to rise. Excellent time to refinance.",
			outlook3Months: "Likely higher",
			outlook6Months: "Likely higher",
		}
	case environment == domain.EnvironmentMedium && consensus == domain.ConsensusRising:
		return tableRow{
			recommendation: domain.TimingRefiNow,
			confidence:     0.8,
			reasoning:      "Rates are moderate but trending up. Good time to lock in current rates.",
			outlook3Months: "Likely higher",
			outlook6Months: "Likely higher",
		}
	case environment == domain.EnvironmentHigh && consensus == domain.ConsensusFalling:
		return tableRow{
			recommendation: domain.TimingWait6Months,
			confidence:     0.7,
			reasoning:      "Rates are high but may decline. Consider waiting for better opportunities.",
			outlook3Months: "Possibly lower",
			outlook6Months: "Likely lower",
		}
	case environment == domain.EnvironmentLow && consensus == domain.ConsensusFalling:
		return tableRow{
			recommendation: domain.TimingWait3Months,
			confidence:     0.6,
			reasoning:      "Rates are already low but may go lower. Short wait could be beneficial.",
			outlook3Months: "Possibly lower",
			outlook6Months: "Stable to lower",
		}
	case consensus == domain.ConsensusStable:
		return tableRow{
			recommendation: domain.TimingRefiNow,
			confidence:     0.7,
			reasoning:      "Rates appear stable. If refinancing makes sense financially, proceed.",
			outlook3Months: "Stable",
			outlook6Months: "Stable",
		}
	default:
		return tableRow{
			recommendation: domain.TimingUncertain,
			confidence:     0.5,
			reasoning:      "Mixed market signals. Focus on personal financial benefits rather than timing.",
			outlook3Months: "Uncertain",
			outlook6Months: "Uncertain",
		}
	}
}
