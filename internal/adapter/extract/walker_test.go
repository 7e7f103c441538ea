package extract

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("content"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestWalkerIncludesAndExcludes(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "notes.txt"))
	writeFile(t, filepath.Join(root, "readme.md"))
	writeFile(t, filepath.Join(root, "image.png"))
	writeFile(t, filepath.Join(root, "sub", "deep.txt"))
	writeFile(t, filepath.Join(root, ".git", "config.txt"))

	w := NewWalker(
		[]string{"**/*.txt", "**/*.md"},
		[]string{"**/.git/**"},
	)

	files, err := w.Walk(root)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}

	got := make(map[string]bool, len(files))
	for _, f := range files {
		rel, err := filepath.Rel(root, f)
		if err != nil {
			t.Fatalf("Rel: %v", err)
		}
		got[filepath.ToSlash(rel)] = true
	}

	for _, want := range []string{"notes.txt", "readme.md", "sub/deep.txt"} {
		if !got[want] {
			t.Errorf("missing %s in %v", want, files)
		}
	}
	for _, skip := range []string{"image.png", ".git/config.txt"} {
		if got[skip] {
			t.Errorf("%s should have been skipped", skip)
		}
	}
}

func TestWalkerDefaultIncludesEverything(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "anything.bin"))

	w := NewWalker(nil, nil)
	files, err := w.Walk(root)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if len(files) != 1 {
		t.Errorf("files = %v, want the one file", files)
	}
}

func TestFileExtractor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	if err := os.WriteFile(path, []byte("first line\r\nsecond line"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	e := NewFileExtractor()
	text, err := e.Extract(path)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if strings.Contains(text, "\r") {
		t.Error("carriage returns not normalized")
	}
	if text != "first line\nsecond line" {
		t.Errorf("text = %q", text)
	}
}

func TestFileExtractorMissingFile(t *testing.T) {
	e := NewFileExtractor()
	_, err := e.Extract(filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "failed to read document") {
		t.Errorf("error = %v", err)
	}
}
