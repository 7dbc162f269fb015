package advisor

import (
	"context"
	"fmt"
	"strings"

	"github.com/dyike/FinAdvisorGo/internal/llm"
)

// Symbol is either a ticker string or the SymbolNotFound sentinel. Resolved
// symbols are unverified: downstream accessors must tolerate lookup failure.
type Symbol string

// SymbolNotFound is the sentinel the resolver returns when the question
// names no identifiable company. It is a valid terminal value, not an error.
const SymbolNotFound Symbol = "Not Found"

func (s Symbol) Found() bool {
	return s != "" && s != SymbolNotFound
}

// Resolver extracts the parent-company ticker referenced by a question with
// a single chat completion.
type Resolver struct {
	llm llm.Completer
}

func NewResolver(completer llm.Completer) *Resolver {
	return &Resolver{llm: completer}
}

func (r *Resolver) Resolve(ctx context.Context, question string) (Symbol, error) {
	out, err := r.llm.Generate(ctx, resolverSystem, fmt.Sprintf(resolverPromptFmt, question))
	if err != nil {
		return "", fmt.Errorf("resolve symbol: %w", err)
	}
	return Symbol(strings.TrimSpace(out)), nil
}
