package advisor

import (
	"context"
	"fmt"
	"time"

	"github.com/dyike/FinAdvisorGo/internal/dataflows"
)

// MarketSource is the slice of the market-data accessor the responders
// need. *dataflows.YahooClient satisfies it.
type MarketSource interface {
	Quote(ctx context.Context, symbol string) (*dataflows.MarketData, error)
	TrailingPE(ctx context.Context, symbol string) (float64, error)
	DailyClosesWindow(ctx context.Context, symbol string, days int) (dataflows.Trend, error)
}

// EarningsSource supplies dated earnings events, sorted ascending.
// *dataflows.FinnhubClient satisfies it.
type EarningsSource interface {
	EarningsHistory(ctx context.Context, symbol string) ([]dataflows.EarningsRecord, error)
}

// NewsSource supplies recent company headlines. *dataflows.NewsAPIClient
// satisfies it.
type NewsSource interface {
	CompanyNews(ctx context.Context, symbol string, limit int) ([]*dataflows.NewsArticle, error)
}

// PriceUnavailable substitutes for the formatted price when the quote fetch
// fails; a missing quote alone never fails the whole summary.
const PriceUnavailable = "Price unavailable."

// StockSummary assembles everything the stock-analysis answer needs in one
// place: formatted price, trailing P/E (nil when absent), the closing-price
// trend and the two earnings extrema.
type StockSummary struct {
	Symbol       string
	Price        string
	Quote        *dataflows.MarketData
	PERatio      *float64
	Trend        dataflows.Trend
	LastEarnings time.Time
	NextEarnings time.Time
}

// BuildSummary fetches and derives the summary for a resolved symbol.
// Missing trend data or earnings extrema fail with ErrDataUnavailable; a
// failed quote or absent P/E degrade to placeholders instead.
func BuildSummary(ctx context.Context, market MarketSource, earnings EarningsSource, symbol string, lookbackDays int) (*StockSummary, error) {
	symbol = dataflows.NormalizeSymbol(symbol)
	sum := &StockSummary{Symbol: symbol, Price: PriceUnavailable}

	if q, err := market.Quote(ctx, symbol); err == nil && q != nil {
		sum.Quote = q
		sum.Price = "$" + q.Close.StringFixed(2)
	}

	if pe, err := market.TrailingPE(ctx, symbol); err == nil {
		sum.PERatio = &pe
	}

	trend, err := market.DailyClosesWindow(ctx, symbol, lookbackDays)
	if err != nil {
		return nil, fmt.Errorf("trend for %s: %w", symbol, err)
	}
	sum.Trend = trend

	history, err := earnings.EarningsHistory(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("earnings for %s: %w", symbol, err)
	}

	last, next, err := earningsExtrema(history)
	if err != nil {
		return nil, fmt.Errorf("earnings for %s: %w", symbol, err)
	}
	sum.LastEarnings = last
	sum.NextEarnings = next

	return sum, nil
}

// earningsExtrema derives the most recent event with a reported EPS and the
// first event scheduled after it. The input is expected sorted ascending;
// out-of-order records are still handled by taking max/min rather than
// first/last. Either extremum missing is ErrDataUnavailable: without a
// reported EPS there is no defensible "last earnings date" to print.
func earningsExtrema(history []dataflows.EarningsRecord) (last, next time.Time, err error) {
	for _, rec := range history {
		if rec.ReportedEPS == nil {
			continue
		}
		if rec.Date.After(last) {
			last = rec.Date
		}
	}
	if last.IsZero() {
		return time.Time{}, time.Time{}, fmt.Errorf("no reported EPS on record: %w", dataflows.ErrDataUnavailable)
	}

	for _, rec := range history {
		if !rec.Date.After(last) {
			continue
		}
		if next.IsZero() || rec.Date.Before(next) {
			next = rec.Date
		}
	}
	if next.IsZero() {
		return time.Time{}, time.Time{}, fmt.Errorf("no scheduled earnings after %s: %w",
			last.Format("2006-01-02"), dataflows.ErrDataUnavailable)
	}

	return last, next, nil
}
