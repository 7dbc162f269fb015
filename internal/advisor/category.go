package advisor

import "fmt"

// Category is the intent assigned to a user question. Produced exactly once
// per question by the classifier and never mutated.
type Category int

const (
	CategoryGeneralFinance Category = iota + 1
	CategoryStockTrend
	CategoryNews
	CategoryPERatioSummary
	CategoryUnsupported
)

func (c Category) Valid() bool {
	return c >= CategoryGeneralFinance && c <= CategoryUnsupported
}

func (c Category) String() string {
	switch c {
	case CategoryGeneralFinance:
		return "general_finance"
	case CategoryStockTrend:
		return "stock_trend"
	case CategoryNews:
		return "news"
	case CategoryPERatioSummary:
		return "pe_ratio_summary"
	case CategoryUnsupported:
		return "unsupported"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// ClassificationError reports a classifier call that failed or returned
// something other than a single category number. Raw preserves the model
// output for logs; it never reaches the user.
type ClassificationError struct {
	Raw string
	Err error
}

func (e *ClassificationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("classify question: %v", e.Err)
	}
	return fmt.Sprintf("classify question: unparseable category %q", e.Raw)
}

func (e *ClassificationError) Unwrap() error { return e.Err }
