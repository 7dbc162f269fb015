package display

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dyike/FinAdvisorGo/internal/dataflows"
)

func TestEscapeDollars(t *testing.T) {
	if got := EscapeDollars("price is $10.00"); got != "price is \\$10.00" {
		t.Errorf("EscapeDollars = %q", got)
	}
	if got := EscapeDollars("no dollars here"); got != "no dollars here" {
		t.Errorf("EscapeDollars = %q", got)
	}
}

func TestStreamMessageEscapesAndTerminates(t *testing.T) {
	var b strings.Builder
	StreamMessage(&b, "costs $5 today", 0)

	out := b.String()
	if !strings.Contains(out, "\\$5") {
		t.Errorf("expected escaped dollar sign, got %q", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Errorf("expected trailing newline, got %q", out)
	}
}

func trendPoint(dateOffset int, close string) dataflows.PricePoint {
	c, _ := decimal.NewFromString(close)
	return dataflows.PricePoint{
		Date:  time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC).AddDate(0, 0, dateOffset),
		Close: c,
	}
}

func TestRenderTrendChart(t *testing.T) {
	trend := dataflows.Trend{
		trendPoint(0, "10.00"),
		trendPoint(1, "15.00"),
		trendPoint(2, "20.00"),
	}

	chart := RenderTrendChart(trend, nil, 30, 8)
	if chart == "" {
		t.Fatal("expected a rendered chart")
	}
	if !strings.Contains(chart, "20.00") || !strings.Contains(chart, "10.00") {
		t.Errorf("chart misses the price bounds:\n%s", chart)
	}
	if !strings.Contains(chart, "2025-01-02") || !strings.Contains(chart, "2025-01-04") {
		t.Errorf("chart misses the date range:\n%s", chart)
	}
	if !strings.Contains(chart, "•") {
		t.Errorf("chart has no plotted points:\n%s", chart)
	}
}

func TestRenderTrendChartFooterShowsQuote(t *testing.T) {
	trend := dataflows.Trend{
		trendPoint(0, "10.00"),
		trendPoint(1, "15.00"),
	}
	quote := &dataflows.MarketData{
		Open:   decimal.NewFromFloat(14.5),
		High:   decimal.NewFromFloat(15.25),
		Low:    decimal.NewFromFloat(14.1),
		Volume: 123456,
	}

	chart := RenderTrendChart(trend, quote, 30, 8)
	if !strings.Contains(chart, "O $14.50") || !strings.Contains(chart, "H $15.25") ||
		!strings.Contains(chart, "L $14.10") || !strings.Contains(chart, "Vol 123456") {
		t.Errorf("footer misses the day's quote:\n%s", chart)
	}

	// Without a quote the footer stays dates-only.
	if bare := RenderTrendChart(trend, nil, 30, 8); strings.Contains(bare, "Vol") {
		t.Errorf("unexpected quote footer without a quote:\n%s", bare)
	}
}

func TestRenderTrendChartEmpty(t *testing.T) {
	if got := RenderTrendChart(nil, nil, 30, 8); got != "" {
		t.Errorf("expected empty output for empty trend, got %q", got)
	}
}

func TestRenderTrendChartFlatSeries(t *testing.T) {
	trend := dataflows.Trend{
		trendPoint(0, "10.00"),
		trendPoint(1, "10.00"),
	}
	if got := RenderTrendChart(trend, nil, 10, 4); got == "" {
		t.Error("a flat series should still render")
	}
}
