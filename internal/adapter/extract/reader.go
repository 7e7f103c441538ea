package extract

import (
	"fmt"
	"os"
	"strings"
)

// FileExtractor reads pre-extracted document text from disk. OCR output is
// expected to already be page-delimited plain text; binary formats are out
// of scope and must be converted upstream.
type FileExtractor struct{}

func NewFileExtractor() *FileExtractor {
	return &FileExtractor{}
}

func (e *FileExtractor) Extract(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read document: %w", err)
	}
	return strings.ReplaceAll(string(data), "\r\n", "\n"), nil
}
