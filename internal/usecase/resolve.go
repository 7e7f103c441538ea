package usecase

import (
	"fmt"

	"docqa/internal/port"
)

// Resolver is one strategy for answering a free-text query.
type Resolver interface {
	// Name identifies the source of an answer for display.
	Name() string

	// Resolve returns an answer and whether this resolver produced one.
	Resolve(query string) (string, bool)
}

// Chain tries resolvers in priority order; the first non-empty result
// wins. Stored knowledge is placed ahead of the generative fallback, so a
// stored answer always beats a generated one when a match exists.
type Chain struct {
	resolvers []Resolver
}

func NewChain(resolvers ...Resolver) *Chain {
	return &Chain{resolvers: resolvers}
}

// Answer returns the winning answer and the name of the resolver that
// produced it.
func (c *Chain) Answer(query string) (string, string) {
	for _, r := range c.resolvers {
		if answer, ok := r.Resolve(query); ok {
			return answer, r.Name()
		}
	}
	return "No answer available.", ""
}

// StoreResolver answers from persisted QA records by case-insensitive
// substring match of the query against stored question texts.
type StoreResolver struct {
	store     port.KnowledgeStore
	namespace string
}

func NewStoreResolver(store port.KnowledgeStore, namespace string) *StoreResolver {
	return &StoreResolver{store: store, namespace: namespace}
}

func (r *StoreResolver) Name() string {
	return "document"
}

func (r *StoreResolver) Resolve(query string) (string, bool) {
	rec, found, err := r.store.FindQuestionLike(r.namespace, query)
	if err != nil || !found || rec.Answer == "" {
		return "", false
	}
	return rec.Answer, true
}

// LLMResolver answers from the general-knowledge model with the query
// alone. It always produces a result: a model failure is rendered as a
// visible error string rather than crashing the session.
type LLMResolver struct {
	llm port.LLM
}

func NewLLMResolver(llm port.LLM) *LLMResolver {
	return &LLMResolver{llm: llm}
}

func (r *LLMResolver) Name() string {
	return "model"
}

func (r *LLMResolver) Resolve(query string) (string, bool) {
	answer, err := r.llm.Generate(query)
	if err != nil {
		return fmt.Sprintf("error: model request failed: %v", err), true
	}
	return answer, true
}
