package dataflows

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/dyike/FinAdvisorGo/config"
)

// FinnhubClient handles Finnhub API operations.
type FinnhubClient struct {
	client *resty.Client
	cache  *CacheManager
	apiKey string
}

func NewFinnhubClient(cfg *config.Config) *FinnhubClient {
	cacheDir := filepath.Join(cfg.DataCacheDir, "finnhub")
	cache := NewCacheManager(cacheDir, 6*time.Hour, cfg.CacheEnabled)

	client := resty.New()
	client.SetBaseURL("https://finnhub.io/api/v1")
	client.SetTimeout(30 * time.Second)

	return &FinnhubClient{
		client: client,
		cache:  cache,
		apiKey: cfg.FinnhubAPIKey,
	}
}

// finnhubEarnings is one row of the /stock/earnings response.
type finnhubEarnings struct {
	Actual   *float64 `json:"actual"`
	Estimate *float64 `json:"estimate"`
	Period   string   `json:"period"`
	Symbol   string   `json:"symbol"`
}

// finnhubCalendar is the /calendar/earnings response.
type finnhubCalendar struct {
	EarningsCalendar []struct {
		Date      string   `json:"date"`
		EPSActual *float64 `json:"epsActual"`
		Symbol    string   `json:"symbol"`
	} `json:"earningsCalendar"`
}

// EarningsHistory returns past and scheduled earnings events for a symbol,
// sorted ascending by date. Past events carry the reported EPS where the
// provider has one; scheduled events carry none. Responses that do not match
// the expected schema convert to ErrDataUnavailable rather than surfacing a
// decode fault mid-computation.
func (fc *FinnhubClient) EarningsHistory(ctx context.Context, symbol string) ([]EarningsRecord, error) {
	if fc.apiKey == "" {
		return nil, fmt.Errorf("Finnhub API key not configured")
	}

	if err := ValidateSymbol(symbol); err != nil {
		return nil, err
	}

	symbol = NormalizeSymbol(symbol)

	var cached []EarningsRecord
	if fc.cache.Get("finnhub", "earnings_history", symbol, &cached) {
		return cached, nil
	}

	past, err := fc.reportedEarnings(ctx, symbol)
	if err != nil {
		return nil, err
	}

	scheduled, err := fc.scheduledEarnings(ctx, symbol)
	if err != nil {
		return nil, err
	}

	records := mergeEarnings(past, scheduled)
	if len(records) == 0 {
		return nil, fmt.Errorf("earnings history for %s: %w", symbol, ErrDataUnavailable)
	}

	fc.cache.Set("finnhub", "earnings_history", symbol, records)

	return records, nil
}

// reportedEarnings fetches past quarters with actual EPS values.
func (fc *FinnhubClient) reportedEarnings(ctx context.Context, symbol string) ([]EarningsRecord, error) {
	var rows []finnhubEarnings
	err := WithRetry(DefaultRetryConfig(), func() error {
		resp, err := fc.client.R().
			SetContext(ctx).
			SetQueryParams(map[string]string{
				"symbol": symbol,
				"token":  fc.apiKey,
			}).
			Get("/stock/earnings")

		if err != nil {
			return fmt.Errorf("failed to fetch earnings for %s: %w", symbol, err)
		}

		if resp.StatusCode() != 200 {
			return fmt.Errorf("API error %d: %s", resp.StatusCode(), resp.String())
		}

		if err := json.Unmarshal(resp.Body(), &rows); err != nil {
			return fmt.Errorf("parse earnings response for %s: %w", symbol, ErrDataUnavailable)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	records := make([]EarningsRecord, 0, len(rows))
	for _, row := range rows {
		date, err := time.Parse("2006-01-02", row.Period)
		if err != nil {
			// Undated rows are dropped rather than guessed at.
			continue
		}
		records = append(records, EarningsRecord{
			Date:        date,
			ReportedEPS: row.Actual,
		})
	}

	return records, nil
}

// scheduledEarnings fetches upcoming earnings dates over the next year.
func (fc *FinnhubClient) scheduledEarnings(ctx context.Context, symbol string) ([]EarningsRecord, error) {
	from := time.Now()
	to := from.AddDate(1, 0, 0)

	var calendar finnhubCalendar
	err := WithRetry(DefaultRetryConfig(), func() error {
		resp, err := fc.client.R().
			SetContext(ctx).
			SetQueryParams(map[string]string{
				"symbol": symbol,
				"from":   from.Format("2006-01-02"),
				"to":     to.Format("2006-01-02"),
				"token":  fc.apiKey,
			}).
			Get("/calendar/earnings")

		if err != nil {
			return fmt.Errorf("failed to fetch earnings calendar for %s: %w", symbol, err)
		}

		if resp.StatusCode() != 200 {
			return fmt.Errorf("API error %d: %s", resp.StatusCode(), resp.String())
		}

		if err := json.Unmarshal(resp.Body(), &calendar); err != nil {
			return fmt.Errorf("parse earnings calendar for %s: %w", symbol, ErrDataUnavailable)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	records := make([]EarningsRecord, 0, len(calendar.EarningsCalendar))
	for _, entry := range calendar.EarningsCalendar {
		date, err := time.Parse("2006-01-02", entry.Date)
		if err != nil {
			continue
		}
		records = append(records, EarningsRecord{
			Date:        date,
			ReportedEPS: entry.EPSActual,
		})
	}

	return records, nil
}

// mergeEarnings combines past and scheduled events into one ascending
// series, keeping the record with a reported EPS when both feeds cover the
// same date.
func mergeEarnings(past, scheduled []EarningsRecord) []EarningsRecord {
	byDate := make(map[string]EarningsRecord, len(past)+len(scheduled))
	for _, rec := range append(past, scheduled...) {
		key := rec.Date.Format("2006-01-02")
		existing, ok := byDate[key]
		if !ok || (existing.ReportedEPS == nil && rec.ReportedEPS != nil) {
			byDate[key] = rec
		}
	}

	records := make([]EarningsRecord, 0, len(byDate))
	for _, rec := range byDate {
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})

	return records
}
