package advisor

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/refiscope/refiscope-backend/internal/domain"
	"github.com/refiscope/refiscope-backend/internal/usecase/refinance"
	"github.com/refiscope/refiscope-backend/internal/usecase/timing"
)

// OfferAssessment pairs one scenario's financial analysis with the
// market-aware combined verdict.
type OfferAssessment struct {
	Analysis *domain.AnalysisResult
	Combined domain.CombinedRecommendation

	// RateVsMarket30Year is the offer's effective rate minus the snapshot's
	// average 30-year rate. Nil when the snapshot carried no 30-year samples.
	RateVsMarket30Year *decimal.Decimal
}

// Report is the outcome of one full advisory run.
type Report struct {
	RunID       uuid.UUID
	GeneratedAt time.Time
	Current     domain.CurrentLoan
	Assessments []OfferAssessment
	Timing      *domain.MarketTiming
	Snapshot    *domain.MarketSnapshot
}

// Service orchestrates market data collection, scenario comparison, and
// recommendation combining.
type Service struct {
	Provider domain.MarketDataProvider

	log *logrus.Logger
}

// NewService creates a new advisor service instance
func NewService(provider domain.MarketDataProvider, log *logrus.Logger) *Service {
	return &Service{
		Provider: provider,
		log:      log,
	}
}

// Run evaluates every scenario against the current loan under the market
// conditions the provider reports. A provider failure degrades the run to an
// empty snapshot, which classifies as uncertain timing; scenario validation
// failures abort the run.
func (s *Service) Run(ctx context.Context, current domain.CurrentLoan, scenarios []domain.Scenario) (*Report, error) {
	snapshot := s.collectSnapshot(ctx)
	marketTiming := timing.Classify(snapshot)

	results, err := refinance.Compare(current, scenarios)
	if err != nil {
		return nil, err
	}

	assessments := make([]OfferAssessment, 0, len(results))
	for _, result := range results {
		assessments = append(assessments, OfferAssessment{
			Analysis:           result,
			Combined:           Combine(result.Recommendation, result.Reason, marketTiming.Recommendation, result.BreakEven),
			RateVsMarket30Year: rateVsMarket(result.EffectiveRate, snapshot),
		})
	}

	s.log.WithField("scenarios", len(assessments)).
		Infof("advisory run complete, timing %s", marketTiming.Recommendation)

	return &Report{
		RunID:       uuid.New(),
		GeneratedAt: time.Now().UTC(),
		Current:     current,
		Assessments: assessments,
		Timing:      marketTiming,
		Snapshot:    snapshot,
	}, nil
}

// MarketTiming fetches a fresh snapshot and classifies it without running
// any scenario analysis. Unlike Run, a provider failure is surfaced here:
// the caller asked specifically for market data.
func (s *Service) MarketTiming(ctx context.Context) (*domain.MarketTiming, *domain.MarketSnapshot, error) {
	snapshot, err := s.Provider.Snapshot(ctx)
	if err != nil {
		return nil, nil, err
	}
	return timing.Classify(snapshot), snapshot, nil
}

// collectSnapshot fetches market data, downgrading provider failures to an
// empty snapshot so a dead feed cannot block a purely financial analysis.
func (s *Service) collectSnapshot(ctx context.Context) *domain.MarketSnapshot {
	snapshot, err := s.Provider.Snapshot(ctx)
	if err != nil {
		s.log.Warnf("market data unavailable, proceeding without it: %v", err)
		return &domain.MarketSnapshot{CollectedAt: time.Now().UTC()}
	}
	return snapshot
}

func rateVsMarket(effectiveRate decimal.Decimal, snapshot *domain.MarketSnapshot) *decimal.Decimal {
	average, ok := timing.Average30Year(snapshot)
	if !ok {
		return nil
	}
	delta := effectiveRate.Sub(average)
	return &delta
}
