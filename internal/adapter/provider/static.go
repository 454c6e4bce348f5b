package provider

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/refiscope/refiscope-backend/internal/domain"
)

// staticRates are representative national survey rates, expressed as
// decimal fractions.
var staticRates = []domain.RateSample{
	{LoanType: "30-year fixed", Rate: decimal.RequireFromString("0.0638"), Source: "Freddie Mac PMMS"},
	{LoanType: "30-year fixed", Rate: decimal.RequireFromString("0.0642"), Source: "Mortgage News Daily"},
	{LoanType: "15-year fixed", Rate: decimal.RequireFromString("0.0562"), Source: "Freddie Mac PMMS"},
	{LoanType: "30-year FHA", Rate: decimal.RequireFromString("0.0611"), Source: "Mortgage News Daily"},
	{LoanType: "30-year jumbo", Rate: decimal.RequireFromString("0.0655"), Source: "Mortgage News Daily"},
}

var staticForecasts = []domain.ForecastSample{
	{Source: "Mortgage Bankers Association", Direction: domain.DirectionDown, Timeframe: "Q4 2026"},
	{Source: "Fannie Mae", Direction: domain.DirectionDown, Timeframe: "next 6 months"},
	{Source: "National Association of Realtors", Direction: domain.DirectionStable, Timeframe: "next 3 months"},
}

// StaticProvider returns a fixed market snapshot. It is intended for
// development, testing, and CI environments where no live feed is
// configured.
type StaticProvider struct {
	now func() time.Time
}

// NewStaticProvider creates a new StaticProvider.
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{now: time.Now}
}

// Snapshot returns the built-in samples stamped with the current time.
func (p *StaticProvider) Snapshot(_ context.Context) (*domain.MarketSnapshot, error) {
	rates := make([]domain.RateSample, len(staticRates))
	copy(rates, staticRates)
	forecasts := make([]domain.ForecastSample, len(staticForecasts))
	copy(forecasts, staticForecasts)

	return &domain.MarketSnapshot{
		Rates:       rates,
		Forecasts:   forecasts,
		CollectedAt: p.now().UTC(),
	}, nil
}
