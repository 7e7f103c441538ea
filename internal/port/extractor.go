package port

// Extractor turns a document path into raw text. OCR and other binary
// formats live behind this boundary; the pipeline only ever sees text.
type Extractor interface {
	Extract(path string) (string, error)
}
