package advisor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dyike/FinAdvisorGo/internal/dataflows"
)

func reported(y int, m time.Month, d int, eps float64) dataflows.EarningsRecord {
	return dataflows.EarningsRecord{Date: day(y, m, d), ReportedEPS: &eps}
}

func scheduled(y int, m time.Month, d int) dataflows.EarningsRecord {
	return dataflows.EarningsRecord{Date: day(y, m, d)}
}

func TestEarningsExtrema(t *testing.T) {
	history := []dataflows.EarningsRecord{
		reported(2024, 11, 1, 1.4),
		reported(2025, 2, 6, 1.6),
		scheduled(2025, 5, 1),
		scheduled(2025, 8, 1),
	}

	last, next, err := earningsExtrema(history)
	if err != nil {
		t.Fatalf("earningsExtrema: %v", err)
	}
	if !last.Equal(day(2025, 2, 6)) {
		t.Errorf("last = %v, want 2025-02-06", last)
	}
	if !next.Equal(day(2025, 5, 1)) {
		t.Errorf("next = %v, want 2025-05-01", next)
	}
}

func TestEarningsExtremaNoReportedEPS(t *testing.T) {
	history := []dataflows.EarningsRecord{
		scheduled(2025, 5, 1),
		scheduled(2025, 8, 1),
	}

	if _, _, err := earningsExtrema(history); !errors.Is(err, dataflows.ErrDataUnavailable) {
		t.Errorf("expected ErrDataUnavailable, got %v", err)
	}
}

func TestEarningsExtremaNoFutureDate(t *testing.T) {
	history := []dataflows.EarningsRecord{reported(2025, 2, 6, 1.6)}

	if _, _, err := earningsExtrema(history); !errors.Is(err, dataflows.ErrDataUnavailable) {
		t.Errorf("expected ErrDataUnavailable, got %v", err)
	}
}

func TestBuildSummary(t *testing.T) {
	market := &stubMarket{
		quote: &dataflows.MarketData{Symbol: "AAPL", Close: price("190.125")},
		pe:    map[string]float64{"AAPL": 31.5},
		trend: trendOf("185.00", "187.50", "190.12"),
	}
	earnings := &stubEarnings{history: []dataflows.EarningsRecord{
		reported(2025, 2, 6, 1.6),
		scheduled(2025, 5, 1),
	}}

	sum, err := BuildSummary(context.Background(), market, earnings, "aapl", 365)
	if err != nil {
		t.Fatalf("BuildSummary: %v", err)
	}

	if sum.Symbol != "AAPL" {
		t.Errorf("symbol = %q, want AAPL (normalized)", sum.Symbol)
	}
	if sum.Price != "$190.13" {
		t.Errorf("price = %q, want $190.13", sum.Price)
	}
	if sum.Quote == nil || sum.Quote.Symbol != "AAPL" {
		t.Errorf("quote = %+v, want the fetched market data", sum.Quote)
	}
	if sum.PERatio == nil || *sum.PERatio != 31.5 {
		t.Errorf("P/E = %v, want 31.5", sum.PERatio)
	}
	if len(sum.Trend) != 3 {
		t.Errorf("trend length = %d, want 3", len(sum.Trend))
	}
}

func TestBuildSummaryDegradesQuoteAndPE(t *testing.T) {
	market := &stubMarket{
		quoteErr: errProviderDown,
		pe:       map[string]float64{},
		trend:    trendOf("10.00"),
	}
	earnings := &stubEarnings{history: []dataflows.EarningsRecord{
		reported(2025, 2, 6, 1.6),
		scheduled(2025, 5, 1),
	}}

	sum, err := BuildSummary(context.Background(), market, earnings, "AAPL", 365)
	if err != nil {
		t.Fatalf("BuildSummary: %v", err)
	}
	if sum.Price != PriceUnavailable {
		t.Errorf("price = %q, want the unavailable placeholder", sum.Price)
	}
	if sum.Quote != nil {
		t.Errorf("expected nil quote after a failed fetch, got %+v", sum.Quote)
	}
	if sum.PERatio != nil {
		t.Errorf("expected nil P/E, got %v", *sum.PERatio)
	}
}

func TestBuildSummaryFailsWithoutTrend(t *testing.T) {
	market := &stubMarket{trendErr: dataflows.ErrDataUnavailable}
	earnings := &stubEarnings{}

	if _, err := BuildSummary(context.Background(), market, earnings, "NOPE", 365); !errors.Is(err, dataflows.ErrDataUnavailable) {
		t.Errorf("expected ErrDataUnavailable, got %v", err)
	}
	if earnings.calls != 0 {
		t.Error("earnings should not be fetched once the trend failed")
	}
}

func TestBuildSummaryFailsWithoutReportedEPS(t *testing.T) {
	market := &stubMarket{trend: trendOf("10.00")}
	earnings := &stubEarnings{history: []dataflows.EarningsRecord{scheduled(2025, 5, 1)}}

	if _, err := BuildSummary(context.Background(), market, earnings, "AAPL", 365); !errors.Is(err, dataflows.ErrDataUnavailable) {
		t.Errorf("expected ErrDataUnavailable, got %v", err)
	}
}
