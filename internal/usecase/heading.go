package usecase

import (
	"docqa/internal/adapter/analyzer"
	"docqa/internal/port"
)

const headingInstruction = "You are an AI assistant. Generate a short and meaningful title " +
	"for the following document (less than 10 words). " +
	"Return ONLY the title without quotes or punctuation:"

// HeadingClassifier produces a short topic label for a chunk or a whole
// document. It is total: a failed model call falls back to an operator-
// entered title, and an empty manual entry falls back to the default name,
// so Classify never errors and never returns an empty string.
type HeadingClassifier struct {
	llm         port.LLM
	prompter    port.Prompter
	prefixChars int
	maxChars    int
}

func NewHeadingClassifier(llm port.LLM, prompter port.Prompter, prefixChars, maxChars int) *HeadingClassifier {
	return &HeadingClassifier{
		llm:         llm,
		prompter:    prompter,
		prefixChars: prefixChars,
		maxChars:    maxChars,
	}
}

func (c *HeadingClassifier) Classify(text string) string {
	prefix := truncateRunes(text, c.prefixChars)

	label, err := c.llm.Generate(headingInstruction + "\n\n" + prefix)
	if err == nil {
		if heading := analyzer.SanitizeHeading(label, c.maxChars); heading != "" {
			return heading
		}
	}

	manual, perr := c.prompter.Prompt("Enter a title for this document: ")
	if perr == nil {
		if heading := analyzer.SanitizeHeading(manual, c.maxChars); heading != "" {
			return heading
		}
	}

	return analyzer.DefaultName
}

func truncateRunes(s string, n int) string {
	if n <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
