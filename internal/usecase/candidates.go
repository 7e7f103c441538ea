package usecase

import (
	"fmt"
	"strings"

	"docqa/internal/port"
)

// CandidateExtractor derives bounded-length answer spans from a chunk.
// Two independent passes over one parse raise recall: entities catch
// proper nouns, dates and numbers; noun phrases catch general concepts.
// The union is deduplicated by exact string value.
type CandidateExtractor struct {
	parser   port.SpanParser
	minWords int
	maxWords int
}

func NewCandidateExtractor(parser port.SpanParser, minWords, maxWords int) *CandidateExtractor {
	return &CandidateExtractor{
		parser:   parser,
		minWords: minWords,
		maxWords: maxWords,
	}
}

func (e *CandidateExtractor) Candidates(text string) ([]string, error) {
	parsed, err := e.parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("span parse failed: %w", err)
	}

	seen := make(map[string]struct{})
	var candidates []string

	collect := func(spans []port.Span) {
		for _, span := range spans {
			candidate := strings.TrimSpace(span.Text)
			words := len(strings.Fields(candidate))
			if words < e.minWords || words > e.maxWords {
				continue
			}
			if _, ok := seen[candidate]; ok {
				continue
			}
			seen[candidate] = struct{}{}
			candidates = append(candidates, candidate)
		}
	}

	collect(parsed.Entities)
	collect(parsed.NounPhrases)

	return candidates, nil
}
