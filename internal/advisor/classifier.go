package advisor

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dyike/FinAdvisorGo/internal/llm"
)

// Classifier maps a free-form question to a Category with a single chat
// completion. No retries, no caching: one call per question.
type Classifier struct {
	llm llm.Completer
}

func NewClassifier(completer llm.Completer) *Classifier {
	return &Classifier{llm: completer}
}

func (c *Classifier) Classify(ctx context.Context, question string) (Category, error) {
	out, err := c.llm.Generate(ctx, classifierSystem, fmt.Sprintf(classifierPromptFmt, question))
	if err != nil {
		return 0, &ClassificationError{Err: err}
	}

	n, err := strconv.Atoi(strings.TrimSpace(out))
	if err != nil {
		return 0, &ClassificationError{Raw: out}
	}

	cat := Category(n)
	if !cat.Valid() {
		return 0, &ClassificationError{Raw: out}
	}

	return cat, nil
}
