package provider

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/refiscope/refiscope-backend/internal/domain"
)

var percentScale = decimal.NewFromInt(100)

// FeedProvider collects market data from an XML feed. The feed exposes a
// rates document at {base}/rates and a forecasts document at
// {base}/forecasts; rate values arrive as percentages and are converted to
// decimal fractions. Malformed entries are skipped, not fatal.
type FeedProvider struct {
	baseURL string
	client  *http.Client
	log     *logrus.Logger
	now     func() time.Time
}

// NewFeedProvider initializes a feed provider against the given base URL.
func NewFeedProvider(baseURL string, log *logrus.Logger) *FeedProvider {
	return &FeedProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log,
		now: time.Now,
	}
}

// Snapshot fetches both documents and assembles a snapshot. A failed rates
// document is an error; a failed forecasts document degrades to an empty
// forecast list, since rates alone still support an environment read.
func (p *FeedProvider) Snapshot(ctx context.Context) (*domain.MarketSnapshot, error) {
	ratesDoc, err := p.fetchDocument(ctx, p.baseURL+"/rates")
	if err != nil {
		return nil, fmt.Errorf("fetching rates document: %w", err)
	}
	rates := p.parseRates(ratesDoc)
	if len(rates) == 0 {
		return nil, fmt.Errorf("no usable rate entries in feed")
	}

	var forecasts []domain.ForecastSample
	forecastsDoc, err := p.fetchDocument(ctx, p.baseURL+"/forecasts")
	if err != nil {
		p.log.Warnf("forecasts document unavailable: %v", err)
	} else {
		forecasts = p.parseForecasts(forecastsDoc)
	}

	return &domain.MarketSnapshot{
		Rates:       rates,
		Forecasts:   forecasts,
		CollectedAt: p.now().UTC(),
	}, nil
}

func (p *FeedProvider) fetchDocument(ctx context.Context, url string) (*etree.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	p.log.Debugf("feed response from %s: %s", url, string(body))

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(body); err != nil {
		return nil, fmt.Errorf("failed to parse XML: %w", err)
	}
	return doc, nil
}

// parseRates extracts rate entries. A usable entry needs a loan type, a
// source, and a positive percent value.
func (p *FeedProvider) parseRates(doc *etree.Document) []domain.RateSample {
	var samples []domain.RateSample
	for _, el := range doc.FindElements("//rate") {
		loanType := strings.TrimSpace(el.SelectAttrValue("type", ""))
		source := strings.TrimSpace(el.SelectAttrValue("source", ""))
		raw := strings.TrimSpace(el.SelectAttrValue("value", ""))
		if loanType == "" || source == "" || raw == "" {
			p.log.Warnf("skipping rate entry with missing attributes: type=%q source=%q value=%q", loanType, source, raw)
			continue
		}

		percent, err := decimal.NewFromString(raw)
		if err != nil {
			p.log.Warnf("skipping rate entry for %q: bad value %q", loanType, raw)
			continue
		}
		if !percent.IsPositive() {
			p.log.Warnf("skipping rate entry for %q: non-positive value %s", loanType, percent)
			continue
		}

		samples = append(samples, domain.RateSample{
			LoanType: loanType,
			Rate:     percent.Div(percentScale),
			Source:   source,
		})
	}
	return samples
}

// parseForecasts extracts forecast entries. Directions outside up, down, or
// stable are skipped.
func (p *FeedProvider) parseForecasts(doc *etree.Document) []domain.ForecastSample {
	var samples []domain.ForecastSample
	for _, el := range doc.FindElements("//forecast") {
		source := strings.TrimSpace(el.SelectAttrValue("source", ""))
		rawDirection := strings.TrimSpace(el.SelectAttrValue("direction", ""))
		timeframe := strings.TrimSpace(el.SelectAttrValue("timeframe", ""))
		if source == "" || rawDirection == "" {
			p.log.Warnf("skipping forecast entry with missing attributes: source=%q direction=%q", source, rawDirection)
			continue
		}

		var direction domain.ForecastDirection
		switch strings.ToLower(rawDirection) {
		case "up":
			direction = domain.DirectionUp
		case "down":
			direction = domain.DirectionDown
		case "stable":
			direction = domain.DirectionStable
		default:
			p.log.Warnf("skipping forecast entry from %q: unknown direction %q", source, rawDirection)
			continue
		}

		samples = append(samples, domain.ForecastSample{
			Source:    source,
			Direction: direction,
			Timeframe: timeframe,
		})
	}
	return samples
}
