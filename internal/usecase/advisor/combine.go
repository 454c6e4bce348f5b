package advisor

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/refiscope/refiscope-backend/internal/domain"
)

// Break-even ceilings under which an unfavorable timing signal is
// overridden: waiting three months is pointless when the refinance pays for
// itself within two years, waiting six when it pays off within eighteen
// months.
var (
	wait3OverrideYears = decimal.NewFromInt(2)
	wait6OverrideYears = decimal.NewFromFloat(1.5)
)

// Combine merges one offer's financial grade with the market timing verdict
// into a single actionable recommendation. Rules are checked in order; the
// first match wins. A break-even of "never" compares as beyond every
// override ceiling.
func Combine(financial domain.Recommendation, reason string, timing domain.TimingRecommendation, breakEven domain.BreakEven) domain.CombinedRecommendation {
	label := financialLabel(financial, reason)

	// A financially bad deal stays bad in any market.
	if financial == domain.RecommendationNotRecommended {
		return domain.CombinedRecommendation{
			Verdict: domain.VerdictNotRecommended,
			Summary: label + ", market timing irrelevant",
		}
	}

	switch timing {
	case domain.TimingRefiNow:
		if financial == domain.RecommendationHighly {
			return domain.CombinedRecommendation{
				Verdict: domain.VerdictExcellentOpportunity,
				Summary: "great financials and favorable market timing",
			}
		}
		return domain.CombinedRecommendation{
			Verdict: domain.VerdictGoodOpportunity,
			Summary: label + " with favorable market timing",
		}

	case domain.TimingWait3Months:
		if breakEven.WithinYears(wait3OverrideYears) {
			return domain.CombinedRecommendation{
				Verdict: domain.VerdictRefiNow,
				Summary: "benefits too good to wait despite timing concerns",
			}
		}
		return domain.CombinedRecommendation{
			Verdict: domain.VerdictConsiderWaiting,
			Summary: label + " but rates may improve",
		}

	case domain.TimingWait6Months:
		if breakEven.WithinYears(wait6OverrideYears) {
			return domain.CombinedRecommendation{
				Verdict: domain.VerdictRefiNow,
				Summary: "exceptional benefits outweigh timing",
			}
		}
		return domain.CombinedRecommendation{
			Verdict: domain.VerdictWaitForBetterRates,
			Summary: "market conditions suggest patience",
		}

	default:
		return domain.CombinedRecommendation{
			Verdict: domain.VerdictMixedSignals,
			Summary: label + " but uncertain market",
		}
	}
}

// financialLabel renders a recommendation for embedding in summary text,
// e.g. "highly recommended (quick break-even)".
func financialLabel(rec domain.Recommendation, reason string) string {
	label := strings.ToLower(strings.ReplaceAll(string(rec), "_", " "))
	if reason == "" {
		return label
	}
	return label + " (" + reason + ")"
}
