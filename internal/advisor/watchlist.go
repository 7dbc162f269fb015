package advisor

// WatchlistEntry pairs a display name with a ticker for the P/E table.
type WatchlistEntry struct {
	Name   string
	Ticker string
}

// DefaultWatchlist is the fixed company set the P/E responder scans. It is
// read-only process configuration, not user data.
func DefaultWatchlist() []WatchlistEntry {
	return []WatchlistEntry{
		{"Apple", "AAPL"},
		{"Microsoft", "MSFT"},
		{"Google", "GOOG"},
		{"Amazon", "AMZN"},
		{"Tesla", "TSLA"},
		{"Nvidia", "NVDA"},
		{"Meta", "META"},
		{"Berkshire Hathaway", "BRK-B"},
		{"JPMorgan Chase", "JPM"},
		{"Visa", "V"},
		{"Adobe", "ADBE"},
		{"AMD", "AMD"},
		{"Airbnb", "ABNB"},
		{"Alphabet (Google)", "GOOGL"},
		{"Amgen", "AMGN"},
		{"ASML", "ASML"},
		{"Broadcom", "AVGO"},
		{"Costco", "COST"},
		{"Netflix", "NFLX"},
		{"PayPal", "PYPL"},
		{"PepsiCo", "PEP"},
		{"Qualcomm", "QCOM"},
		{"Starbucks", "SBUX"},
		{"T-Mobile", "TMUS"},
		{"Intel", "INTC"},
		{"Intuit", "INTU"},
		{"Intuitive Surgical", "ISRG"},
		{"Lam Research", "LRCX"},
		{"Micron Technology", "MU"},
		{"Palantir", "PLTR"},
		{"Palo Alto Networks", "PANW"},
		{"Regeneron", "REGN"},
	}
}
