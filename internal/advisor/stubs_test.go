package advisor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dyike/FinAdvisorGo/internal/dataflows"
)

// stubCompleter returns a canned reply and records what it was asked.
type stubCompleter struct {
	reply      string
	err        error
	calls      int
	lastSystem string
	lastUser   string
}

func (s *stubCompleter) Generate(ctx context.Context, system, user string) (string, error) {
	s.calls++
	s.lastSystem = system
	s.lastUser = user
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

// stubMarket serves fixed quote/PE/trend data and counts accesses.
type stubMarket struct {
	quote      *dataflows.MarketData
	quoteErr   error
	pe         map[string]float64
	trend      dataflows.Trend
	trendErr   error
	quoteCalls int
	peCalls    int
	trendCalls int
}

func (m *stubMarket) Quote(ctx context.Context, symbol string) (*dataflows.MarketData, error) {
	m.quoteCalls++
	if m.quoteErr != nil {
		return nil, m.quoteErr
	}
	return m.quote, nil
}

func (m *stubMarket) TrailingPE(ctx context.Context, symbol string) (float64, error) {
	m.peCalls++
	pe, ok := m.pe[symbol]
	if !ok {
		return 0, fmt.Errorf("trailing P/E for %s: %w", symbol, dataflows.ErrDataUnavailable)
	}
	return pe, nil
}

func (m *stubMarket) DailyClosesWindow(ctx context.Context, symbol string, days int) (dataflows.Trend, error) {
	m.trendCalls++
	if m.trendErr != nil {
		return nil, m.trendErr
	}
	return m.trend, nil
}

// stubEarnings serves a fixed earnings history.
type stubEarnings struct {
	history []dataflows.EarningsRecord
	err     error
	calls   int
}

func (e *stubEarnings) EarningsHistory(ctx context.Context, symbol string) ([]dataflows.EarningsRecord, error) {
	e.calls++
	if e.err != nil {
		return nil, e.err
	}
	return e.history, nil
}

// stubNews serves fixed articles.
type stubNews struct {
	articles []*dataflows.NewsArticle
	err      error
	calls    int
}

func (n *stubNews) CompanyNews(ctx context.Context, symbol string, limit int) ([]*dataflows.NewsArticle, error) {
	n.calls++
	if n.err != nil {
		return nil, n.err
	}
	if len(n.articles) > limit {
		return n.articles[:limit], nil
	}
	return n.articles, nil
}

var errProviderDown = errors.New("provider down")

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func price(v string) decimal.Decimal {
	p, _ := decimal.NewFromString(v)
	return p
}

func trendOf(values ...string) dataflows.Trend {
	trend := make(dataflows.Trend, 0, len(values))
	start := day(2025, 1, 2)
	for i, v := range values {
		trend = append(trend, dataflows.PricePoint{
			Date:  start.AddDate(0, 0, i),
			Close: price(v),
		})
	}
	return trend
}
