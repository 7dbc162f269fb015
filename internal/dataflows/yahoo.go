package dataflows

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/equity"
	"github.com/piquette/finance-go/quote"
	"github.com/shopspring/decimal"

	"github.com/dyike/FinAdvisorGo/config"
)

// YahooClient handles Yahoo Finance data operations. The underlying
// finance-go library carries no context support, so ctx is accepted only for
// interface uniformity with the other providers.
type YahooClient struct {
	cache *CacheManager
}

func NewYahooClient(cfg *config.Config) *YahooClient {
	cacheDir := filepath.Join(cfg.DataCacheDir, "yahoo_finance")
	cache := NewCacheManager(cacheDir, 24*time.Hour, cfg.CacheEnabled)

	return &YahooClient{
		cache: cache,
	}
}

// Quote gets current quote data for a symbol.
func (yf *YahooClient) Quote(ctx context.Context, symbol string) (*MarketData, error) {
	if err := ValidateSymbol(symbol); err != nil {
		return nil, err
	}

	symbol = NormalizeSymbol(symbol)

	var cached MarketData
	if yf.cache.Get("yahoo", "quote", symbol, &cached) {
		return &cached, nil
	}

	var result *MarketData
	err := WithRetry(DefaultRetryConfig(), func() error {
		q, err := quote.Get(symbol)
		if err != nil {
			return fmt.Errorf("failed to get quote for %s: %w", symbol, err)
		}
		if q == nil {
			return fmt.Errorf("quote for %s: %w", symbol, ErrDataUnavailable)
		}

		result = &MarketData{
			Symbol:    symbol,
			Date:      time.Now(),
			Open:      decimal.NewFromFloat(q.RegularMarketOpen),
			High:      decimal.NewFromFloat(q.RegularMarketDayHigh),
			Low:       decimal.NewFromFloat(q.RegularMarketDayLow),
			Close:     decimal.NewFromFloat(q.RegularMarketPrice),
			AdjClose:  decimal.NewFromFloat(q.RegularMarketPrice),
			Volume:    int64(q.RegularMarketVolume),
			Timestamp: time.Now(),
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	yf.cache.Set("yahoo", "quote", symbol, result)

	return result, nil
}

// TrailingPE returns the trailing twelve-month P/E ratio for a symbol.
// Symbols without one (unprofitable companies, funds, unknown tickers)
// report ErrDataUnavailable.
func (yf *YahooClient) TrailingPE(ctx context.Context, symbol string) (float64, error) {
	if err := ValidateSymbol(symbol); err != nil {
		return 0, err
	}

	symbol = NormalizeSymbol(symbol)

	var cached float64
	if yf.cache.Get("yahoo", "trailing_pe", symbol, &cached) {
		return cached, nil
	}

	eq, err := equity.Get(symbol)
	if err != nil {
		return 0, fmt.Errorf("failed to get fundamentals for %s: %w", symbol, err)
	}
	if eq == nil || eq.TrailingPE == 0 {
		return 0, fmt.Errorf("trailing P/E for %s: %w", symbol, ErrDataUnavailable)
	}

	yf.cache.Set("yahoo", "trailing_pe", symbol, eq.TrailingPE)

	return eq.TrailingPE, nil
}

// DailyCloses gets the daily closing-price series for [start, end], oldest
// first. An empty series (e.g. unknown symbol) reports ErrDataUnavailable.
func (yf *YahooClient) DailyCloses(ctx context.Context, symbol string, start, end time.Time) (Trend, error) {
	if err := ValidateSymbol(symbol); err != nil {
		return nil, err
	}

	symbol = NormalizeSymbol(symbol)

	cacheKey := map[string]interface{}{
		"symbol": symbol,
		"start":  start.Format("2006-01-02"),
		"end":    end.Format("2006-01-02"),
	}

	var cached Trend
	if yf.cache.Get("yahoo", "daily_closes", cacheKey, &cached) {
		return cached, nil
	}

	var result Trend
	err := WithRetry(DefaultRetryConfig(), func() error {
		params := &chart.Params{
			Symbol:   symbol,
			Start:    datetime.New(&start),
			End:      datetime.New(&end),
			Interval: datetime.OneDay,
		}

		iter := chart.Get(params)

		result = make(Trend, 0)
		for iter.Next() {
			bar := iter.Bar()
			result = append(result, PricePoint{
				Date:  time.Unix(int64(bar.Timestamp), 0),
				Close: bar.Close,
			})
		}

		if err := iter.Err(); err != nil {
			return fmt.Errorf("failed to get historical data for %s (%s): %w",
				symbol, FormatDateRange(start, end), err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	if len(result) == 0 {
		return nil, fmt.Errorf("daily closes for %s: %w", symbol, ErrDataUnavailable)
	}

	yf.cache.Set("yahoo", "daily_closes", cacheKey, result)

	return result, nil
}

// DailyClosesWindow gets the closing-price series for a rolling window
// ending today.
func (yf *YahooClient) DailyClosesWindow(ctx context.Context, symbol string, days int) (Trend, error) {
	end := time.Now()
	start := end.AddDate(0, 0, -days)

	return yf.DailyCloses(ctx, symbol, start, end)
}
