package domain

// Document is the unit of ingestion: one source file, one storage namespace.
type Document struct {
	Title     string
	Namespace string
	Text      string
}

// Chunk is an ordered text segment of a document. Chunks are not persisted
// on their own; they survive only as the Context of the QA records derived
// from them.
type Chunk struct {
	Index int
	Text  string
}

// QARecord is the persisted unit: a generated question, its grounding
// answer, the chunk it came from, and their embeddings. The answer is a
// verbatim substring of the context at creation time.
type QARecord struct {
	ID                string    `json:"id"`
	Heading           string    `json:"heading"`
	Question          string    `json:"question"`
	Answer            string    `json:"answer"`
	Context           string    `json:"context"`
	QuestionEmbedding []float32 `json:"question_embedding"`
	AnswerEmbedding   []float32 `json:"answer_embedding"`
	ContextEmbedding  []float32 `json:"context_embedding"`
}

// Metadata summarizes one ingested document. Exactly one per namespace,
// written after all chunks have been attempted.
type Metadata struct {
	DocumentTitle string `json:"document_title"`
	Namespace     string `json:"namespace"`
	TotalChunks   int    `json:"total_chunks"`
	TotalQAPairs  int    `json:"total_qa_pairs"`
}

// IngestResult is what an ingestion run hands to the front-end: the
// namespace to query, the topic menu in first-seen order, and totals.
type IngestResult struct {
	Namespace    string
	Title        string
	Topics       []string
	TotalChunks  int
	TotalQAPairs int
	Errors       []string
}
