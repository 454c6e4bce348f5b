package domain

import "context"

// MarketDataProvider defines the interface for fetching market observations
type MarketDataProvider interface {
	// Snapshot returns the provider's current view of the market.
	// The snapshot is non-nil whenever the error is nil; empty sample
	// collections inside it are valid.
	Snapshot(ctx context.Context) (*MarketSnapshot, error)
}
