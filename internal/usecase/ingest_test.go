package usecase

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"docqa/internal/adapter/chunker"
	"docqa/internal/adapter/embedding"
	"docqa/internal/adapter/memstore"
	"docqa/internal/port"
)

const (
	paraOne   = "The northern observatory recorded unusually strong signals during the first week of the survey period."
	paraTwo   = "PARSEFAIL the second station suffered repeated outages and its logs were discarded before analysis began."
	paraThree = "The southern array completed its full observation schedule and produced the cleanest data of the campaign."
)

type staticExtractor struct {
	text string
	err  error
}

func (e staticExtractor) Extract(path string) (string, error) {
	return e.text, e.err
}

// windowParser emits up to `spans` consecutive three-word windows of the
// text as entities, so every candidate is a verbatim substring of its
// chunk. Chunks containing failOn make the parse fail.
type windowParser struct {
	failOn string
	spans  int
}

func (p *windowParser) Parse(text string) (port.ParseResult, error) {
	if p.failOn != "" && strings.Contains(text, p.failOn) {
		return port.ParseResult{}, errors.New("parser unavailable")
	}
	words := strings.Fields(text)
	var entities []port.Span
	for i := 0; i+3 <= len(words) && len(entities) < p.spans; i += 3 {
		entities = append(entities, port.Span{Text: strings.Join(words[i:i+3], " ")})
	}
	return port.ParseResult{Entities: entities}, nil
}

type countingQuestionModel struct {
	calls int
}

func (m *countingQuestionModel) Generate(string) (string, error) {
	m.calls++
	return fmt.Sprintf("Generated question %d?", m.calls), nil
}

func newTestIngestor(llm *fakeLLM, parser port.SpanParser, st port.KnowledgeStore, extractor port.Extractor, maxQuestions int) *IngestUseCase {
	return NewIngestUseCase(
		extractor,
		chunker.NewParagraphChunker(80),
		NewHeadingClassifier(llm, &scriptPrompter{}, 2000, 50),
		NewCandidateExtractor(parser, 3, 20),
		NewQuestionGenerator(&countingQuestionModel{}),
		embedding.NewMockEmbedder(8),
		st,
		maxQuestions,
	)
}

func TestIngestFaultIsolation(t *testing.T) {
	text := paraOne + "\n\n" + paraTwo + "\n\n" + paraThree
	llm := &fakeLLM{responses: []string{"Survey Results", "North", "Outages", "South"}}
	st := memstore.NewMemoryStore()

	u := newTestIngestor(llm, &windowParser{failOn: "PARSEFAIL", spans: 1}, st, staticExtractor{text: text}, 5)

	result, err := u.Ingest("survey.txt", nil)
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}

	if result.Namespace != "survey_results" {
		t.Errorf("namespace = %q, want survey_results", result.Namespace)
	}
	if result.TotalChunks != 3 {
		t.Errorf("total chunks = %d, want 3", result.TotalChunks)
	}
	if result.TotalQAPairs != 2 {
		t.Errorf("total QA pairs = %d, want 2", result.TotalQAPairs)
	}
	if len(result.Errors) != 1 || !strings.Contains(result.Errors[0], "chunk 2") {
		t.Errorf("errors = %v, want one entry for chunk 2", result.Errors)
	}

	// The failed chunk still contributes its topic: the heading is
	// classified before candidate extraction.
	want := []string{"North", "Outages", "South"}
	if len(result.Topics) != len(want) {
		t.Fatalf("topics = %v, want %v", result.Topics, want)
	}
	for i := range want {
		if result.Topics[i] != want[i] {
			t.Errorf("topic %d = %q, want %q", i, result.Topics[i], want[i])
		}
	}

	count, err := st.CountRecords("survey_results")
	if err != nil {
		t.Fatalf("CountRecords: %v", err)
	}
	if count != 2 {
		t.Errorf("persisted records = %d, want 2", count)
	}

	meta, err := st.Metadata("survey_results")
	if err != nil {
		t.Fatalf("Metadata: %v", err)
	}
	if meta.DocumentTitle != "Survey Results" || meta.TotalChunks != 3 || meta.TotalQAPairs != 2 {
		t.Errorf("metadata = %+v", meta)
	}
}

func TestIngestRecordContents(t *testing.T) {
	llm := &fakeLLM{responses: []string{"Survey Results", "North"}}
	st := memstore.NewMemoryStore()

	u := newTestIngestor(llm, &windowParser{spans: 1}, st, staticExtractor{text: paraOne}, 5)

	if _, err := u.Ingest("survey.txt", nil); err != nil {
		t.Fatalf("Ingest: %v", err)
	}

	records, err := st.QuestionsByHeading("survey_results", "North")
	if err != nil {
		t.Fatalf("QuestionsByHeading: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	rec := records[0]
	if rec.ID == "" {
		t.Error("record has no ID")
	}
	if rec.Question != "Generated question 1?" {
		t.Errorf("question = %q", rec.Question)
	}
	if !strings.Contains(rec.Context, rec.Answer) {
		t.Errorf("answer %q is not a substring of the context", rec.Answer)
	}
	if rec.Context != paraOne {
		t.Errorf("context = %q", rec.Context)
	}
	for name, vec := range map[string][]float32{
		"question": rec.QuestionEmbedding,
		"answer":   rec.AnswerEmbedding,
		"context":  rec.ContextEmbedding,
	} {
		if len(vec) != 8 {
			t.Errorf("%s embedding has %d dimensions, want 8", name, len(vec))
		}
	}
}

func TestIngestQuestionCap(t *testing.T) {
	// 29 words give 9 distinct candidate windows, well past the per-chunk cap.
	para := "During the final month of observation our engineers catalogued every anomalous reading, " +
		"compared each against archived baselines, and published a thorough summary for " +
		"participating institutions across four continents worldwide."
	llm := &fakeLLM{responses: []string{"Title", "Heading"}}
	st := memstore.NewMemoryStore()

	u := newTestIngestor(llm, &windowParser{spans: 9}, st, staticExtractor{text: para}, 5)

	result, err := u.Ingest("doc.txt", nil)
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if result.TotalQAPairs != 5 {
		t.Errorf("total QA pairs = %d, want 5", result.TotalQAPairs)
	}

	count, err := st.CountRecords(result.Namespace)
	if err != nil {
		t.Fatalf("CountRecords: %v", err)
	}
	if count != 5 {
		t.Errorf("persisted records = %d, want 5", count)
	}
}

func TestIngestTopicDedup(t *testing.T) {
	text := paraOne + "\n\n" + paraThree + "\n\n" + paraOne
	llm := &fakeLLM{responses: []string{"Title", "Alpha", "Beta", "Alpha"}}
	st := memstore.NewMemoryStore()

	u := newTestIngestor(llm, &windowParser{spans: 1}, st, staticExtractor{text: text}, 5)

	result, err := u.Ingest("doc.txt", nil)
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if len(result.Topics) != 2 || result.Topics[0] != "Alpha" || result.Topics[1] != "Beta" {
		t.Errorf("topics = %v, want [Alpha Beta]", result.Topics)
	}
}

func TestIngestEmptyDocument(t *testing.T) {
	llm := &fakeLLM{responses: []string{"Tiny Note"}}
	st := memstore.NewMemoryStore()

	u := newTestIngestor(llm, &windowParser{spans: 1}, st, staticExtractor{text: "too short"}, 5)

	result, err := u.Ingest("note.txt", nil)
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if result.TotalChunks != 0 || result.TotalQAPairs != 0 || len(result.Topics) != 0 {
		t.Errorf("result = %+v, want empty ingest", result)
	}

	meta, err := st.Metadata("tiny_note")
	if err != nil {
		t.Fatalf("metadata should exist even for an empty ingest: %v", err)
	}
	if meta.TotalChunks != 0 || meta.TotalQAPairs != 0 {
		t.Errorf("metadata = %+v", meta)
	}
}

func TestIngestExtractFailure(t *testing.T) {
	llm := &fakeLLM{response: "Title"}
	st := memstore.NewMemoryStore()

	u := newTestIngestor(llm, &windowParser{spans: 1}, st, staticExtractor{err: errors.New("no such file")}, 5)

	_, err := u.Ingest("missing.txt", nil)
	if err == nil {
		t.Fatal("expected error when extraction fails")
	}
	if !strings.Contains(err.Error(), "failed to extract document") {
		t.Errorf("error = %v", err)
	}
}

func TestIngestReportsProgress(t *testing.T) {
	text := paraOne + "\n\n" + paraThree
	llm := &fakeLLM{responses: []string{"Title", "A", "B"}}
	st := memstore.NewMemoryStore()

	u := newTestIngestor(llm, &windowParser{spans: 1}, st, staticExtractor{text: text}, 5)

	var calls [][2]int
	_, err := u.Ingest("doc.txt", func(processed, total int) {
		calls = append(calls, [2]int{processed, total})
	})
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}

	want := [][2]int{{1, 2}, {2, 2}}
	if len(calls) != len(want) {
		t.Fatalf("progress calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("progress call %d = %v, want %v", i, calls[i], want[i])
		}
	}
}
