package port

import "docqa/internal/domain"

// Chunker splits raw document text into ordered chunks.
type Chunker interface {
	Split(text string) []domain.Chunk
}
