package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/refiscope/refiscope-backend/internal/domain"
	"github.com/refiscope/refiscope-backend/internal/usecase/advisor"
	"github.com/refiscope/refiscope-backend/internal/usecase/amortization"
)

var percentFactor = decimal.NewFromInt(100)

var assessmentHeader = []string{
	"scenario", "recommendation", "reason", "combined_verdict", "combined_summary",
	"current_rate", "offered_rate", "effective_rate",
	"points", "buydown_cost", "closing_costs", "total_upfront_cost",
	"current_payment", "new_payment", "monthly_savings",
	"break_even_months", "break_even_years",
	"savings_5_years", "savings_10_years", "savings_full_term",
	"current_balance", "current_remaining_months", "new_term_months",
	"current_total_payments", "new_total_payments",
	"current_total_interest", "new_total_interest",
	"interest_savings", "net_interest_savings",
	"rate_vs_market_30y",
}

// WriteAssessments renders one advisory report as CSV, one row per offer.
// Money columns carry thousands separators and rates render as percentages,
// matching the report surface rather than a machine-exchange format.
func WriteAssessments(w io.Writer, report *advisor.Report) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(assessmentHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, assessment := range report.Assessments {
		a := assessment.Analysis
		record := []string{
			a.ScenarioName,
			string(a.Recommendation),
			a.Reason,
			string(assessment.Combined.Verdict),
			assessment.Combined.Summary,
			formatPercent(a.CurrentRate),
			formatPercent(a.OfferedRate),
			formatPercent(a.EffectiveRate),
			a.Points.String(),
			formatCurrency(a.BuydownCost),
			formatCurrency(a.ClosingCosts),
			formatCurrency(a.TotalUpfrontCost),
			formatCurrency(a.CurrentPayment),
			formatCurrency(a.NewPayment),
			formatCurrency(a.MonthlySavings),
			formatBreakEvenMonths(a.BreakEven),
			formatBreakEvenYears(a.BreakEven),
			formatCurrency(a.Savings5Years),
			formatCurrency(a.Savings10Years),
			formatCurrency(a.SavingsFullTerm),
			formatCurrency(a.CurrentBalance),
			strconv.Itoa(a.CurrentRemainingMonths),
			strconv.Itoa(a.NewTermMonths),
			formatCurrency(a.CurrentTotalPayments),
			formatCurrency(a.NewTotalPayments),
			formatCurrency(a.CurrentTotalInterest),
			formatCurrency(a.NewTotalInterest),
			formatCurrency(a.InterestSavings),
			formatCurrency(a.NetInterestSavings),
			formatRateDelta(assessment.RateVsMarket30Year),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("writing row for %q: %w", a.ScenarioName, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

var scheduleHeader = []string{
	"period", "due_date", "payment", "interest", "principal",
	"remaining_balance", "cumulative_interest", "cumulative_principal",
}

// WriteSchedule renders an amortization schedule as CSV. Values stay plain
// numbers so the output loads cleanly into spreadsheets.
func WriteSchedule(w io.Writer, entries []amortization.Entry) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(scheduleHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, entry := range entries {
		record := []string{
			strconv.Itoa(entry.Period),
			entry.DueDate.Format("2006-01-02"),
			entry.Payment.StringFixed(2),
			entry.Interest.StringFixed(2),
			entry.Principal.StringFixed(2),
			entry.RemainingBalance.StringFixed(2),
			entry.CumulativeInterest.StringFixed(2),
			entry.CumulativePrincipal.StringFixed(2),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("writing row %d: %w", entry.Period, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// formatCurrency renders "$1,234.56"; the sign leads the dollar sign.
func formatCurrency(d decimal.Decimal) string {
	fixed := d.Abs().StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")
	grouped := groupThousands(whole)
	if d.IsNegative() {
		return "-$" + grouped + "." + frac
	}
	return "$" + grouped + "." + frac
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// formatPercent renders a decimal fraction as "6.250%".
func formatPercent(rate decimal.Decimal) string {
	return rate.Mul(percentFactor).StringFixed(3) + "%"
}

func formatBreakEvenMonths(be domain.BreakEven) string {
	if be.Never() {
		return "never"
	}
	return be.Months().StringFixed(1)
}

func formatBreakEvenYears(be domain.BreakEven) string {
	if be.Never() {
		return "never"
	}
	return be.Years().StringFixed(2)
}

func formatRateDelta(delta *decimal.Decimal) string {
	if delta == nil {
		return ""
	}
	return formatPercent(*delta)
}
