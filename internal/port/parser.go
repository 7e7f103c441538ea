package port

// Span is a text span found by the parse service.
type Span struct {
	Text  string
	Label string
}

// ParseResult holds the two span families used for answer candidates:
// named entities and noun phrases.
type ParseResult struct {
	Entities    []Span
	NounPhrases []Span
}

// SpanParser extracts entity and noun-phrase spans from text.
type SpanParser interface {
	Parse(text string) (ParseResult, error)
}
