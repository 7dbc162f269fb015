package advisor

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/dyike/FinAdvisorGo/internal/dataflows"
	"github.com/dyike/FinAdvisorGo/internal/llm"
)

// Fixed user-facing sentences for the symbol-not-found terminal paths.
const (
	NoStockInfoMessage = "No stock information available for this company."
	NoNewsMessage      = "No news available for this company."
)

const newsIntro = "Here are some recent headlines I think you'd be interested in:\n\n"

const peTableHeader = "Here are the top five companies on Nasdaq with the lowest PE ratio:"

// maxNewsArticles caps the headline list per answer.
const maxNewsArticles = 5

// maxPETableRows caps the lowest-P/E listing.
const maxPETableRows = 5

// GeneralResponder answers broad finance questions with one chat
// completion. The model output is returned verbatim.
type GeneralResponder struct {
	llm llm.Completer
}

func NewGeneralResponder(completer llm.Completer) *GeneralResponder {
	return &GeneralResponder{llm: completer}
}

func (r *GeneralResponder) Respond(ctx context.Context, question string) (string, error) {
	return r.llm.Generate(ctx, generalSystem, fmt.Sprintf(generalPromptFmt, question))
}

// StockAnswer is everything a stock-analysis turn produces: the answer
// text, the closing-price trend for charting, and the day's quote for the
// chart footer. Trend and Quote are nil on the not-found path.
type StockAnswer struct {
	Text  string
	Trend dataflows.Trend
	Quote *dataflows.MarketData
}

// StockResponder produces the factual price/P-E/earnings sentence plus a
// model-written narrative over the closing-price trend. The trend and quote
// ride along in the answer so the caller can chart them without refetching.
type StockResponder struct {
	llm          llm.Completer
	market       MarketSource
	earnings     EarningsSource
	lookbackDays int
}

func NewStockResponder(completer llm.Completer, market MarketSource, earnings EarningsSource, lookbackDays int) *StockResponder {
	return &StockResponder{
		llm:          completer,
		market:       market,
		earnings:     earnings,
		lookbackDays: lookbackDays,
	}
}

func (r *StockResponder) Respond(ctx context.Context, symbol Symbol) (*StockAnswer, error) {
	if !symbol.Found() {
		return &StockAnswer{Text: NoStockInfoMessage}, nil
	}

	sum, err := BuildSummary(ctx, r.market, r.earnings, string(symbol), r.lookbackDays)
	if err != nil {
		return nil, err
	}

	factual := fmt.Sprintf(
		"The current stock price of %s is %s, and it's current PE (Price-to-Earnings) ratio is %s. It's most recent earnings date was %s, and it's next earnings date is %s.",
		sum.Symbol, sum.Price, formatPERatio(sum.PERatio),
		sum.LastEarnings.Format("2006-01-02"), sum.NextEarnings.Format("2006-01-02"))

	listing := FormatDayListing(sum.Trend)
	narrative, err := r.llm.Generate(ctx, analystSystem, fmt.Sprintf(analystPromptFmt, listing))
	if err != nil {
		return nil, err
	}

	return &StockAnswer{
		Text:  factual + "\n\n" + narrative,
		Trend: sum.Trend,
		Quote: sum.Quote,
	}, nil
}

// FormatDayListing renders a trend as a 1-indexed day listing, oldest
// first, one price per line with two decimals.
func FormatDayListing(trend dataflows.Trend) string {
	var b strings.Builder
	for i, point := range trend {
		fmt.Fprintf(&b, "Day %d: $%s\n", i+1, point.Close.StringFixed(2))
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatPERatio(pe *float64) string {
	if pe == nil {
		return "unavailable"
	}
	return strconv.FormatFloat(*pe, 'f', -1, 64)
}

// NewsResponder formats recent headlines for a resolved symbol.
type NewsResponder struct {
	news NewsSource
}

func NewNewsResponder(news NewsSource) *NewsResponder {
	return &NewsResponder{news: news}
}

func (r *NewsResponder) Respond(ctx context.Context, symbol Symbol) (string, error) {
	if !symbol.Found() {
		return NoNewsMessage, nil
	}

	articles, err := r.news.CompanyNews(ctx, string(symbol), maxNewsArticles)
	if err != nil {
		return "", err
	}
	if len(articles) == 0 {
		return NoNewsMessage, nil
	}

	var b strings.Builder
	b.WriteString(newsIntro)
	for i, article := range articles {
		fmt.Fprintf(&b, "%d.) %s\n%s\n\n", i+1, article.Title, article.URL)
	}
	return b.String(), nil
}

// PERatioResponder reports the watchlist companies with the lowest trailing
// P/E. It ignores the question entirely; the output depends only on current
// market data.
type PERatioResponder struct {
	market    MarketSource
	watchlist []WatchlistEntry
}

func NewPERatioResponder(market MarketSource, watchlist []WatchlistEntry) *PERatioResponder {
	return &PERatioResponder{market: market, watchlist: watchlist}
}

func (r *PERatioResponder) Respond(ctx context.Context) (string, error) {
	type row struct {
		label string
		ratio float64
	}

	rows := make([]row, 0, len(r.watchlist))
	for _, entry := range r.watchlist {
		pe, err := r.market.TrailingPE(ctx, entry.Ticker)
		if err != nil {
			// Entries without a ratio are skipped, not reported.
			continue
		}
		rows = append(rows, row{
			label: fmt.Sprintf("%s (%s)", entry.Name, entry.Ticker),
			ratio: pe,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].ratio < rows[j].ratio })
	if len(rows) > maxPETableRows {
		rows = rows[:maxPETableRows]
	}

	parts := make([]string, 0, len(rows)+1)
	parts = append(parts, peTableHeader)
	for i, entry := range rows {
		parts = append(parts, fmt.Sprintf("%d.) **%s** - PE Ratio: %.2f", i+1, entry.label, entry.ratio))
	}
	return strings.Join(parts, "\n\n"), nil
}
