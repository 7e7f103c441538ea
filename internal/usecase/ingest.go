package usecase

import (
	"fmt"

	"github.com/google/uuid"

	"docqa/internal/adapter/analyzer"
	"docqa/internal/domain"
	"docqa/internal/port"
)

// ProgressFunc reports chunk-loop progress to the caller.
type ProgressFunc func(processed, total int)

// IngestUseCase drives the full pipeline for one document: extract text,
// derive a title and namespace, then per chunk classify a heading, extract
// candidates, generate questions, embed, and persist record-at-a-time.
type IngestUseCase struct {
	extractor    port.Extractor
	chunker      port.Chunker
	headings     *HeadingClassifier
	candidates   *CandidateExtractor
	questions    *QuestionGenerator
	embedder     port.Embedder
	store        port.KnowledgeStore
	maxQuestions int
}

func NewIngestUseCase(
	extractor port.Extractor,
	chunker port.Chunker,
	headings *HeadingClassifier,
	candidates *CandidateExtractor,
	questions *QuestionGenerator,
	embedder port.Embedder,
	store port.KnowledgeStore,
	maxQuestions int,
) *IngestUseCase {
	return &IngestUseCase{
		extractor:    extractor,
		chunker:      chunker,
		headings:     headings,
		candidates:   candidates,
		questions:    questions,
		embedder:     embedder,
		store:        store,
		maxQuestions: maxQuestions,
	}
}

// Ingest processes one document. Failures inside a chunk are isolated:
// the chunk is logged and skipped, records persisted so far are kept, and
// the loop continues. Only a failure to extract the document at all is
// fatal and propagates.
func (u *IngestUseCase) Ingest(path string, progress ProgressFunc) (*domain.IngestResult, error) {
	text, err := u.extractor.Extract(path)
	if err != nil {
		return nil, fmt.Errorf("failed to extract document: %w", err)
	}

	title := u.headings.Classify(text)
	ns := analyzer.SanitizeName(title)
	if err := u.store.CreateNamespace(ns); err != nil {
		return nil, fmt.Errorf("failed to create namespace: %w", err)
	}

	chunks := u.chunker.Split(text)

	result := &domain.IngestResult{
		Namespace:   ns,
		Title:       title,
		TotalChunks: len(chunks),
	}

	var headings []string
	for i, chunk := range chunks {
		accepted, heading, err := u.processChunk(ns, chunk)
		if heading != "" {
			headings = append(headings, heading)
		}
		result.TotalQAPairs += accepted
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("chunk %d: %v", i+1, err))
		}
		if progress != nil {
			progress(i+1, len(chunks))
		}
	}

	meta := domain.Metadata{
		DocumentTitle: title,
		Namespace:     ns,
		TotalChunks:   len(chunks),
		TotalQAPairs:  result.TotalQAPairs,
	}
	if err := u.store.PutMetadata(ns, meta); err != nil {
		return nil, fmt.Errorf("failed to store metadata: %w", err)
	}

	result.Topics = uniqueOrdered(headings)
	return result, nil
}

// processChunk runs the per-chunk pipeline. The heading is classified
// first and reported even when a later stage fails, so the topic menu
// still lists chunks whose question generation broke down. Records are
// persisted one at a time; partial progress survives a mid-chunk failure.
func (u *IngestUseCase) processChunk(ns string, chunk domain.Chunk) (accepted int, heading string, err error) {
	heading = u.headings.Classify(chunk.Text)

	candidates, err := u.candidates.Candidates(chunk.Text)
	if err != nil {
		return 0, heading, err
	}

	for _, answer := range candidates {
		if accepted >= u.maxQuestions {
			break
		}

		question, err := u.questions.Generate(chunk.Text, answer)
		if err != nil {
			return accepted, heading, err
		}
		if question == "" {
			continue
		}

		vectors, err := u.embedder.Embed([]string{question, answer, chunk.Text})
		if err != nil {
			return accepted, heading, err
		}
		if len(vectors) != 3 {
			return accepted, heading, fmt.Errorf("embedder returned %d vectors, want 3", len(vectors))
		}

		rec := domain.QARecord{
			ID:                uuid.New().String(),
			Heading:           heading,
			Question:          question,
			Answer:            answer,
			Context:           chunk.Text,
			QuestionEmbedding: vectors[0],
			AnswerEmbedding:   vectors[1],
			ContextEmbedding:  vectors[2],
		}
		if err := u.store.AppendRecord(ns, rec); err != nil {
			return accepted, heading, err
		}
		accepted++
	}

	return accepted, heading, nil
}

// uniqueOrdered removes duplicates while preserving first-seen order. An
// ordered slice plus a membership set keeps the result deterministic
// regardless of map iteration behavior.
func uniqueOrdered(headings []string) []string {
	seen := make(map[string]struct{}, len(headings))
	var unique []string
	for _, h := range headings {
		if _, ok := seen[h]; ok {
			continue
		}
		seen[h] = struct{}{}
		unique = append(unique, h)
	}
	return unique
}
