package chunker

import (
	"strings"
	"testing"
)

const longPara = "This paragraph is comfortably longer than the eighty character minimum used by the segmenter."

func TestParagraphChunkerBasic(t *testing.T) {
	c := NewParagraphChunker(80)

	text := longPara + " First." + "\n\n" + "short" + "\n\n" + longPara + " Second."

	chunks := c.Split(text)
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d", len(chunks))
	}
	if !strings.HasSuffix(chunks[0].Text, "First.") {
		t.Errorf("unexpected first chunk: %q", chunks[0].Text)
	}
	if !strings.HasSuffix(chunks[1].Text, "Second.") {
		t.Errorf("unexpected second chunk: %q", chunks[1].Text)
	}
	for i, chunk := range chunks {
		if chunk.Index != i {
			t.Errorf("chunk %d has index %d", i, chunk.Index)
		}
	}
}

func TestParagraphChunkerThreshold(t *testing.T) {
	c := NewParagraphChunker(80)

	exactly80 := strings.Repeat("a", 80)
	over80 := strings.Repeat("a", 81)

	if got := c.Split(exactly80); len(got) != 0 {
		t.Errorf("block of exactly threshold length should be dropped, got %d chunks", len(got))
	}
	if got := c.Split(over80); len(got) != 1 {
		t.Errorf("block above threshold should be kept, got %d chunks", len(got))
	}
}

func TestParagraphChunkerStripsWhitespace(t *testing.T) {
	c := NewParagraphChunker(80)

	chunks := c.Split("   " + longPara + "   \n\nmore short text")
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0].Text != longPara {
		t.Errorf("chunk not trimmed: %q", chunks[0].Text)
	}
}

func TestParagraphChunkerCRLF(t *testing.T) {
	c := NewParagraphChunker(80)

	text := longPara + "\r\n\r\n" + longPara
	chunks := c.Split(text)
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks from CRLF input, got %d", len(chunks))
	}
}

func TestParagraphChunkerEmptyDocument(t *testing.T) {
	c := NewParagraphChunker(80)

	for _, text := range []string{"", "short\n\nalso short", "\n\n\n\n"} {
		if got := c.Split(text); len(got) != 0 {
			t.Errorf("Split(%q) = %d chunks, want 0", text, len(got))
		}
	}
}
