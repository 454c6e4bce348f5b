package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/refiscope/refiscope-backend/internal/adapter/report"
	"github.com/refiscope/refiscope-backend/internal/domain"
	"github.com/refiscope/refiscope-backend/internal/usecase/advisor"
	"github.com/refiscope/refiscope-backend/internal/usecase/amortization"
	"github.com/refiscope/refiscope-backend/internal/usecase/refinance"
)

// Server implements the RefiAdvisorService gRPC server
type Server struct {
	UnimplementedRefiAdvisorServiceServer

	AdvisorService *advisor.Service

	now func() time.Time
}

// NewServer creates a new gRPC server instance
func NewServer(advisorService *advisor.Service) *Server {
	return &Server{
		AdvisorService: advisorService,
		now:            time.Now,
	}
}

// AnalyzeOffer handles the AnalyzeOffer RPC
func (s *Server) AnalyzeOffer(_ context.Context, req *AnalyzeOfferRequest) (*AnalyzeOfferResponse, error) {
	current, err := s.parseCurrentLoan(req.Current)
	if err != nil {
		return nil, err
	}

	offer, err := parseOffer(req.Offer)
	if err != nil {
		return nil, err
	}

	result, err := refinance.Analyze(current, offer)
	if err != nil {
		return nil, mapError(err)
	}

	return &AnalyzeOfferResponse{Result: analysisToMessage(result)}, nil
}

// CompareOffers handles the CompareOffers RPC
func (s *Server) CompareOffers(_ context.Context, req *CompareOffersRequest) (*CompareOffersResponse, error) {
	current, err := s.parseCurrentLoan(req.Current)
	if err != nil {
		return nil, err
	}

	scenarios, err := parseScenarios(req.Scenarios)
	if err != nil {
		return nil, err
	}

	results, err := refinance.Compare(current, scenarios)
	if err != nil {
		return nil, mapError(err)
	}

	messages := make([]AnalysisResultMessage, 0, len(results))
	for _, result := range results {
		messages = append(messages, analysisToMessage(result))
	}

	return &CompareOffersResponse{Results: messages}, nil
}

// GetMarketTiming handles the GetMarketTiming RPC
func (s *Server) GetMarketTiming(ctx context.Context, _ *GetMarketTimingRequest) (*GetMarketTimingResponse, error) {
	marketTiming, snapshot, err := s.AdvisorService.MarketTiming(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Unavailable, "market data unavailable: %v", err)
	}

	resp := &GetMarketTimingResponse{
		Timing:      timingToMessage(marketTiming),
		CollectedAt: snapshot.CollectedAt,
	}
	for _, sample := range snapshot.Rates {
		resp.Rates = append(resp.Rates, RateSampleMessage{
			LoanType: sample.LoanType,
			Rate:     sample.Rate.String(),
			Source:   sample.Source,
		})
	}
	for _, forecast := range snapshot.Forecasts {
		resp.Forecasts = append(resp.Forecasts, ForecastSampleMessage{
			Source:    forecast.Source,
			Direction: string(forecast.Direction),
			Timeframe: forecast.Timeframe,
		})
	}

	return resp, nil
}

// RunAnalysis handles the RunAnalysis RPC
func (s *Server) RunAnalysis(ctx context.Context, req *RunAnalysisRequest) (*RunAnalysisResponse, error) {
	current, err := s.parseCurrentLoan(req.Current)
	if err != nil {
		return nil, err
	}

	scenarios, err := parseScenarios(req.Scenarios)
	if err != nil {
		return nil, err
	}

	run, err := s.AdvisorService.Run(ctx, current, scenarios)
	if err != nil {
		return nil, mapError(err)
	}

	resp := &RunAnalysisResponse{
		RunID:       run.RunID.String(),
		GeneratedAt: run.GeneratedAt,
		Timing:      timingToMessage(run.Timing),
	}
	for _, assessment := range run.Assessments {
		msg := OfferAssessmentMessage{
			Result:          analysisToMessage(assessment.Analysis),
			CombinedVerdict: string(assessment.Combined.Verdict),
			CombinedSummary: assessment.Combined.Summary,
		}
		if assessment.RateVsMarket30Year != nil {
			msg.RateVsMarket30Year = assessment.RateVsMarket30Year.String()
		}
		resp.Assessments = append(resp.Assessments, msg)
	}
	if req.IncludeReport {
		resp.ReportText = report.Render(run)
	}

	return resp, nil
}

// GetAmortizationSchedule handles the GetAmortizationSchedule RPC
func (s *Server) GetAmortizationSchedule(_ context.Context, req *GetAmortizationScheduleRequest) (*GetAmortizationScheduleResponse, error) {
	principal, err := parseDecimalField(req.Principal, "principal")
	if err != nil {
		return nil, err
	}
	annualRate, err := parseDecimalField(req.AnnualRate, "annual_rate")
	if err != nil {
		return nil, err
	}

	startDate, err := s.parseStartDate(req.StartDate)
	if err != nil {
		return nil, err
	}

	entries, err := amortization.Schedule(principal, annualRate, req.TermMonths, startDate)
	if err != nil {
		return nil, mapError(err)
	}

	resp := &GetAmortizationScheduleResponse{
		Entries: make([]ScheduleEntryMessage, 0, len(entries)),
	}
	for _, entry := range entries {
		resp.Entries = append(resp.Entries, ScheduleEntryMessage{
			Period:              entry.Period,
			DueDate:             entry.DueDate.Format("2006-01-02"),
			Payment:             entry.Payment.StringFixed(2),
			Interest:            entry.Interest.StringFixed(2),
			Principal:           entry.Principal.StringFixed(2),
			RemainingBalance:    entry.RemainingBalance.StringFixed(2),
			CumulativeInterest:  entry.CumulativeInterest.StringFixed(2),
			CumulativePrincipal: entry.CumulativePrincipal.StringFixed(2),
		})
	}

	return resp, nil
}

// parseCurrentLoan converts the wire message, resolving the remaining term
// from whichever of remaining_months or maturity_date the caller set.
func (s *Server) parseCurrentLoan(msg CurrentLoanMessage) (domain.CurrentLoan, error) {
	annualRate, err := parseDecimalField(msg.AnnualRate, "annual_rate")
	if err != nil {
		return domain.CurrentLoan{}, err
	}
	balance, err := parseDecimalField(msg.Balance, "balance")
	if err != nil {
		return domain.CurrentLoan{}, err
	}
	payment, err := parseDecimalField(msg.MonthlyPayment, "monthly_payment")
	if err != nil {
		return domain.CurrentLoan{}, err
	}

	remainingMonths := msg.RemainingMonths
	if msg.MaturityDate != "" {
		if msg.RemainingMonths != 0 {
			return domain.CurrentLoan{}, status.Errorf(codes.InvalidArgument,
				"set either remaining_months or maturity_date, not both")
		}
		maturity, err := time.Parse("2006-01-02", msg.MaturityDate)
		if err != nil {
			return domain.CurrentLoan{}, status.Errorf(codes.InvalidArgument,
				"invalid maturity_date format: %v", err)
		}
		remainingMonths = domain.RemainingMonthsUntil(maturity, s.now().UTC())
	}

	return domain.CurrentLoan{
		AnnualRate:      annualRate,
		Balance:         balance,
		MonthlyPayment:  payment,
		RemainingMonths: remainingMonths,
	}, nil
}

func parseOffer(msg RefinanceOfferMessage) (domain.RefinanceOffer, error) {
	annualRate, err := parseDecimalField(msg.AnnualRate, "annual_rate")
	if err != nil {
		return domain.RefinanceOffer{}, err
	}
	closingCosts, err := parseDecimalField(msg.ClosingCosts, "closing_costs")
	if err != nil {
		return domain.RefinanceOffer{}, err
	}
	points, err := parseOptionalDecimalField(msg.Points, "points")
	if err != nil {
		return domain.RefinanceOffer{}, err
	}
	costPerPoint, err := parseOptionalDecimalField(msg.CostPerPoint, "cost_per_point")
	if err != nil {
		return domain.RefinanceOffer{}, err
	}
	rateReduction, err := parseOptionalDecimalField(msg.RateReductionPerPoint, "rate_reduction_per_point")
	if err != nil {
		return domain.RefinanceOffer{}, err
	}

	return domain.RefinanceOffer{
		AnnualRate:            annualRate,
		TermMonths:            msg.TermMonths,
		ClosingCosts:          closingCosts,
		Points:                points,
		CostPerPoint:          costPerPoint,
		RateReductionPerPoint: rateReduction,
	}, nil
}

func parseScenarios(messages []ScenarioMessage) ([]domain.Scenario, error) {
	scenarios := make([]domain.Scenario, 0, len(messages))
	for i, msg := range messages {
		offer, err := parseOffer(msg.Offer)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "scenario %d: %v", i, statusMessage(err))
		}
		scenarios = append(scenarios, domain.Scenario{Name: msg.Name, Offer: offer})
	}
	return scenarios, nil
}

// parseStartDate resolves an optional YYYY-MM-DD start date, defaulting to
// the first day of the next month.
func (s *Server) parseStartDate(raw string) (time.Time, error) {
	if raw == "" {
		now := s.now().UTC()
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0), nil
	}
	startDate, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, status.Errorf(codes.InvalidArgument, "invalid start_date format: %v", err)
	}
	return startDate, nil
}

func parseDecimalField(raw, field string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Decimal{}, status.Errorf(codes.InvalidArgument, "%s is required", field)
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, status.Errorf(codes.InvalidArgument, "invalid %s format: %v", field, err)
	}
	return value, nil
}

func parseOptionalDecimalField(raw, field string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Decimal{}, nil
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, status.Errorf(codes.InvalidArgument, "invalid %s format: %v", field, err)
	}
	return value, nil
}

func analysisToMessage(result *domain.AnalysisResult) AnalysisResultMessage {
	msg := AnalysisResultMessage{
		ID:           result.ID.String(),
		GeneratedAt:  result.GeneratedAt,
		ScenarioName: result.ScenarioName,
		Description:  result.Description,

		CurrentRate:            result.CurrentRate.String(),
		CurrentBalance:         result.CurrentBalance.String(),
		CurrentPayment:         result.CurrentPayment.String(),
		CurrentRemainingMonths: result.CurrentRemainingMonths,
		CurrentTotalPayments:   result.CurrentTotalPayments.String(),
		CurrentTotalInterest:   result.CurrentTotalInterest.String(),

		OfferedRate:      result.OfferedRate.String(),
		EffectiveRate:    result.EffectiveRate.String(),
		NewTermMonths:    result.NewTermMonths,
		NewPayment:       result.NewPayment.StringFixed(2),
		Points:           result.Points.String(),
		BuydownCost:      result.BuydownCost.StringFixed(2),
		ClosingCosts:     result.ClosingCosts.StringFixed(2),
		TotalUpfrontCost: result.TotalUpfrontCost.StringFixed(2),
		NewTotalPayments: result.NewTotalPayments.StringFixed(2),
		NewTotalInterest: result.NewTotalInterest.StringFixed(2),

		MonthlySavings:     result.MonthlySavings.StringFixed(2),
		Savings5Years:      result.Savings5Years.StringFixed(2),
		Savings10Years:     result.Savings10Years.StringFixed(2),
		SavingsFullTerm:    result.SavingsFullTerm.StringFixed(2),
		InterestSavings:    result.InterestSavings.StringFixed(2),
		NetInterestSavings: result.NetInterestSavings.StringFixed(2),

		Recommendation: string(result.Recommendation),
		Reason:         result.Reason,
	}
	if result.BreakEven.Never() {
		msg.BreakEvenNever = true
	} else {
		msg.BreakEvenMonths = result.BreakEven.Months().StringFixed(2)
	}
	return msg
}

func timingToMessage(t *domain.MarketTiming) MarketTimingMessage {
	return MarketTimingMessage{
		Average30YearRate: t.Average30YearRate.String(),
		RateEnvironment:   string(t.RateEnvironment),
		Consensus:         string(t.Consensus),
		Recommendation:    string(t.Recommendation),
		Confidence:        t.Confidence,
		Reasoning:         t.Reasoning,
		Outlook3Months:    t.Outlook3Months,
		Outlook6Months:    t.Outlook6Months,
	}
}

// statusMessage strips the status wrapper so nested field errors do not
// stack "rpc error" prefixes.
func statusMessage(err error) string {
	if st, ok := status.FromError(err); ok {
		return st.Message()
	}
	return err.Error()
}

// mapError translates domain errors to gRPC status codes.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, domain.ErrInvalidLoan),
		errors.Is(err, domain.ErrInvalidOffer),
		errors.Is(err, domain.ErrNonPositivePrincipal),
		errors.Is(err, domain.ErrNonPositiveTerm),
		errors.Is(err, domain.ErrNegativeMonthsPaid):
		return status.Errorf(codes.InvalidArgument, "%s", err.Error())
	}

	return status.Errorf(codes.Internal, "%s", err.Error())
}
