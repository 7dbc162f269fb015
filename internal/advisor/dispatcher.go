package advisor

import (
	"context"
	"fmt"
	"log"

	"github.com/dyike/FinAdvisorGo/internal/dataflows"
)

// Fixed terminal messages. Whatever goes wrong inside a turn, the user sees
// one of these two sentences and nothing else.
const (
	UnsupportedMessage = "Sorry, I am unequipped to answer that question! Please re-phrase or provide an inquiry more closely related to stocks!"

	GenericErrorMessage = "Sorry, I ran into an unexpected error! Please rephrase your question. As a reminder, I am tailored to answer most questions specific to finances and stocks!"
)

// Result is everything one question produced: the answer text, the category
// the classifier assigned (zero when classification itself failed), and the
// price trend plus day quote for charting when the stock-analysis path ran.
// Failed marks turns that ended in the generic apology.
type Result struct {
	Question string
	Category Category
	Text     string
	Trend    dataflows.Trend
	Quote    *dataflows.MarketData
	Failed   bool
}

// Per-category capabilities the dispatcher routes to. Concrete responders
// satisfy these; tests substitute counting stubs.
type intentClassifier interface {
	Classify(ctx context.Context, question string) (Category, error)
}

type symbolResolver interface {
	Resolve(ctx context.Context, question string) (Symbol, error)
}

type generalResponder interface {
	Respond(ctx context.Context, question string) (string, error)
}

type stockResponder interface {
	Respond(ctx context.Context, symbol Symbol) (*StockAnswer, error)
}

type newsResponder interface {
	Respond(ctx context.Context, symbol Symbol) (string, error)
}

type tableResponder interface {
	Respond(ctx context.Context) (string, error)
}

// Dispatcher routes one question through classification to the matching
// responder and contains every fault behind the fixed apology. It holds no
// cross-question state and may be reused across turns.
type Dispatcher struct {
	classifier intentClassifier
	resolver   symbolResolver
	general    generalResponder
	stock      stockResponder
	news       newsResponder
	table      tableResponder
}

func NewDispatcher(classifier *Classifier, resolver *Resolver, general *GeneralResponder, stock *StockResponder, news *NewsResponder, table *PERatioResponder) *Dispatcher {
	return &Dispatcher{
		classifier: classifier,
		resolver:   resolver,
		general:    general,
		stock:      stock,
		news:       news,
		table:      table,
	}
}

// Ask answers one question. It never returns an error: faults are logged
// and converted to the generic apology. The symbol is resolved here, once,
// and injected into the responders that need it.
func (d *Dispatcher) Ask(ctx context.Context, question string) *Result {
	res := &Result{Question: question}

	cat, err := d.classifier.Classify(ctx, question)
	if err != nil {
		return d.fail(res, err)
	}
	res.Category = cat

	switch cat {
	case CategoryGeneralFinance:
		text, err := d.general.Respond(ctx, question)
		if err != nil {
			return d.fail(res, err)
		}
		res.Text = text

	case CategoryStockTrend:
		symbol, err := d.resolver.Resolve(ctx, question)
		if err != nil {
			return d.fail(res, err)
		}
		ans, err := d.stock.Respond(ctx, symbol)
		if err != nil {
			return d.fail(res, err)
		}
		res.Text = ans.Text
		res.Trend = ans.Trend
		res.Quote = ans.Quote

	case CategoryNews:
		symbol, err := d.resolver.Resolve(ctx, question)
		if err != nil {
			return d.fail(res, err)
		}
		text, err := d.news.Respond(ctx, symbol)
		if err != nil {
			return d.fail(res, err)
		}
		res.Text = text

	case CategoryPERatioSummary:
		text, err := d.table.Respond(ctx)
		if err != nil {
			return d.fail(res, err)
		}
		res.Text = text

	case CategoryUnsupported:
		res.Text = UnsupportedMessage

	default:
		return d.fail(res, fmt.Errorf("unhandled category %d", int(cat)))
	}

	return res
}

func (d *Dispatcher) fail(res *Result, err error) *Result {
	log.Printf("advisor: question failed: %v", err)
	res.Failed = true
	res.Text = GenericErrorMessage
	return res
}
