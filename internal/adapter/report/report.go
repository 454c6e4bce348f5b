package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/refiscope/refiscope-backend/internal/usecase/advisor"
	"github.com/refiscope/refiscope-backend/internal/usecase/timing"
)

var percentFactor = decimal.NewFromInt(100)

// Render formats one advisory run as a plain-text market analysis report:
// average rates by loan type, sample sources, the timing verdict, expert
// forecasts, and the combined call per offer. Missing market data renders
// as an explicit note instead of empty sections.
func Render(report *advisor.Report) string {
	var b strings.Builder

	b.WriteString("MORTGAGE MARKET ANALYSIS REPORT\n")
	b.WriteString(strings.Repeat("=", 50) + "\n")

	writeRates(&b, report)
	writeTiming(&b, report)
	writeForecasts(&b, report)
	writeAssessments(&b, report)

	return b.String()
}

func writeRates(b *strings.Builder, report *advisor.Report) {
	b.WriteString("\nCURRENT MARKET RATES\n")
	if report.Snapshot == nil || len(report.Snapshot.Rates) == 0 {
		b.WriteString("  No current rate data available\n")
		return
	}

	averages := timing.AverageRates(report.Snapshot)
	loanTypes := make([]string, 0, len(averages))
	for loanType := range averages {
		loanTypes = append(loanTypes, loanType)
	}
	sort.Strings(loanTypes)
	for _, loanType := range loanTypes {
		fmt.Fprintf(b, "  %s: %s\n", loanType, formatPercent(averages[loanType]))
	}

	counts := make(map[string]int)
	for _, sample := range report.Snapshot.Rates {
		counts[sample.Source]++
	}
	sources := make([]string, 0, len(counts))
	for source := range counts {
		sources = append(sources, source)
	}
	sort.Strings(sources)

	fmt.Fprintf(b, "\nRATE SOURCES (%d data points)\n", len(report.Snapshot.Rates))
	for _, source := range sources {
		fmt.Fprintf(b, "  %s: %d rates\n", source, counts[source])
	}
}

func writeTiming(b *strings.Builder, report *advisor.Report) {
	t := report.Timing
	if t == nil {
		return
	}

	b.WriteString("\nMARKET TIMING\n")
	fmt.Fprintf(b, "  Rate environment: %s\n", t.RateEnvironment)
	fmt.Fprintf(b, "  Expert consensus: %s\n", spaced(string(t.Consensus)))
	fmt.Fprintf(b, "  Recommendation:   %s\n", spaced(string(t.Recommendation)))
	fmt.Fprintf(b, "  Confidence:       %.0f%%\n", t.Confidence*100)
	fmt.Fprintf(b, "  3-month outlook:  %s\n", t.Outlook3Months)
	fmt.Fprintf(b, "  6-month outlook:  %s\n", t.Outlook6Months)

	b.WriteString("\nMARKET REASONING\n")
	fmt.Fprintf(b, "  %s\n", t.Reasoning)
}

func writeForecasts(b *strings.Builder, report *advisor.Report) {
	if report.Snapshot == nil || len(report.Snapshot.Forecasts) == 0 {
		return
	}

	fmt.Fprintf(b, "\nEXPERT FORECASTS (%d sources)\n", len(report.Snapshot.Forecasts))
	for _, forecast := range report.Snapshot.Forecasts {
		fmt.Fprintf(b, "  %s: %s (%s)\n",
			forecast.Source, strings.ToUpper(string(forecast.Direction)), forecast.Timeframe)
	}
}

func writeAssessments(b *strings.Builder, report *advisor.Report) {
	if len(report.Assessments) == 0 {
		return
	}

	b.WriteString("\nOFFER ASSESSMENTS\n")
	for _, assessment := range report.Assessments {
		fmt.Fprintf(b, "  %s: %s\n", assessment.Analysis.ScenarioName, assessment.Combined.Verdict)
		fmt.Fprintf(b, "    %s\n", assessment.Combined.Summary)
		if assessment.RateVsMarket30Year != nil {
			fmt.Fprintf(b, "    effective rate %s, %s vs 30-year average\n",
				formatPercent(assessment.Analysis.EffectiveRate),
				formatDelta(*assessment.RateVsMarket30Year))
		}
	}
}

func formatPercent(rate decimal.Decimal) string {
	return rate.Mul(percentFactor).StringFixed(3) + "%"
}

func formatDelta(delta decimal.Decimal) string {
	if delta.IsNegative() {
		return formatPercent(delta)
	}
	return "+" + formatPercent(delta)
}

func spaced(label string) string {
	return strings.ReplaceAll(label, "_", " ")
}
