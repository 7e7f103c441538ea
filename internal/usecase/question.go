package usecase

import (
	"fmt"
	"strings"

	"docqa/internal/port"
)

const hlToken = "<hl>"

// QuestionGenerator synthesizes a question for a (chunk, answer) pair.
// The answer must be a verbatim substring of the chunk; candidates that
// are not (produced under a different normalization) yield no question
// rather than an error.
type QuestionGenerator struct {
	model port.QuestionModel
}

func NewQuestionGenerator(model port.QuestionModel) *QuestionGenerator {
	return &QuestionGenerator{model: model}
}

// Generate returns the generated question, or "" when the answer is not a
// substring of the chunk.
func (g *QuestionGenerator) Generate(chunk, answer string) (string, error) {
	if !strings.Contains(chunk, answer) {
		return "", nil
	}

	highlighted := strings.Replace(chunk, answer, hlToken+" "+answer+" "+hlToken, 1)

	question, err := g.model.Generate(highlighted)
	if err != nil {
		return "", fmt.Errorf("question generation failed: %w", err)
	}
	return strings.TrimSpace(question), nil
}
