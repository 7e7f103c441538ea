package chunker

import (
	"strings"

	"docqa/internal/domain"
)

// ParagraphChunker splits text into blank-line-delimited blocks and keeps
// the ones whose stripped length exceeds a minimum. A document with no
// block above the threshold yields an empty sequence, which downstream
// components treat as "no topics available".
type ParagraphChunker struct {
	minChars int
}

func NewParagraphChunker(minChars int) *ParagraphChunker {
	return &ParagraphChunker{minChars: minChars}
}

func (c *ParagraphChunker) Split(text string) []domain.Chunk {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var chunks []domain.Chunk
	for _, block := range strings.Split(text, "\n\n") {
		trimmed := strings.TrimSpace(block)
		if len(trimmed) <= c.minChars {
			continue
		}
		chunks = append(chunks, domain.Chunk{
			Index: len(chunks),
			Text:  trimmed,
		})
	}
	return chunks
}
