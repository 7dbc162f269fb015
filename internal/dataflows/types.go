package dataflows

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrDataUnavailable marks market or earnings data that a provider could not
// supply (unknown symbol, missing fundamentals, schema drift). Callers
// surface it as a user-facing apology instead of computing on zero values.
var ErrDataUnavailable = errors.New("data unavailable")

// MarketData represents one day of stock price data.
type MarketData struct {
	Symbol    string          `json:"symbol"`
	Date      time.Time       `json:"date"`
	Open      decimal.Decimal `json:"open"`
	High      decimal.Decimal `json:"high"`
	Low       decimal.Decimal `json:"low"`
	Close     decimal.Decimal `json:"close"`
	AdjClose  decimal.Decimal `json:"adj_close"`
	Volume    int64           `json:"volume"`
	Timestamp time.Time       `json:"timestamp"`
}

// PricePoint is a dated closing price.
type PricePoint struct {
	Date  time.Time       `json:"date"`
	Close decimal.Decimal `json:"close"`
}

// Trend is a daily closing-price series ordered oldest to newest.
type Trend []PricePoint

// EarningsRecord is one earnings event. ReportedEPS is nil for scheduled
// future events and for past events the provider has no actual for.
type EarningsRecord struct {
	Date        time.Time `json:"date"`
	ReportedEPS *float64  `json:"reported_eps"`
}

// NewsArticle represents a news article.
type NewsArticle struct {
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Source      string    `json:"source"`
	PublishedAt time.Time `json:"published_at"`
}
