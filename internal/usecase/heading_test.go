package usecase

import (
	"errors"
	"io"
	"strings"
	"testing"
)

type fakeLLM struct {
	responses  []string
	response   string
	err        error
	calls      int
	lastPrompt string
}

func (f *fakeLLM) Generate(prompt string) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	if len(f.responses) > 0 {
		r := f.responses[0]
		f.responses = f.responses[1:]
		return r, nil
	}
	return f.response, nil
}

func (f *fakeLLM) GenerateWithSystem(system, user string) (string, error) {
	return f.Generate(user)
}

func (f *fakeLLM) ModelName() string {
	return "fake"
}

type scriptPrompter struct {
	lines []string
}

func (p *scriptPrompter) Prompt(label string) (string, error) {
	if len(p.lines) == 0 {
		return "", io.EOF
	}
	line := p.lines[0]
	p.lines = p.lines[1:]
	return line, nil
}

func TestClassifyFromModel(t *testing.T) {
	llm := &fakeLLM{response: "Climate Change"}
	c := NewHeadingClassifier(llm, &scriptPrompter{}, 2000, 50)

	if got := c.Classify("some document text"); got != "Climate Change" {
		t.Errorf("Classify = %q, want %q", got, "Climate Change")
	}
}

func TestClassifySanitizesModelOutput(t *testing.T) {
	llm := &fakeLLM{response: `"Climate: Change!"`}
	c := NewHeadingClassifier(llm, &scriptPrompter{}, 2000, 50)

	if got := c.Classify("text"); got != "Climate Change" {
		t.Errorf("Classify = %q, want %q", got, "Climate Change")
	}
}

func TestClassifyFallsBackToPrompt(t *testing.T) {
	llm := &fakeLLM{err: errors.New("model down")}
	c := NewHeadingClassifier(llm, &scriptPrompter{lines: []string{"My Notes"}}, 2000, 50)

	if got := c.Classify("text"); got != "My Notes" {
		t.Errorf("Classify = %q, want %q", got, "My Notes")
	}
}

func TestClassifyEmptyModelOutputFallsBackToPrompt(t *testing.T) {
	// Sanitizes to nothing, same as a failed model call.
	llm := &fakeLLM{response: "?!"}
	c := NewHeadingClassifier(llm, &scriptPrompter{lines: []string{"Backup Title"}}, 2000, 50)

	if got := c.Classify("text"); got != "Backup Title" {
		t.Errorf("Classify = %q, want %q", got, "Backup Title")
	}
}

func TestClassifyDefaultName(t *testing.T) {
	tests := []struct {
		name     string
		prompter *scriptPrompter
	}{
		{"empty manual entry", &scriptPrompter{lines: []string{""}}},
		{"input exhausted", &scriptPrompter{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			llm := &fakeLLM{err: errors.New("model down")}
			c := NewHeadingClassifier(llm, tt.prompter, 2000, 50)

			if got := c.Classify("text"); got != "document_db" {
				t.Errorf("Classify = %q, want document_db", got)
			}
		})
	}
}

func TestClassifySendsTruncatedPrefix(t *testing.T) {
	llm := &fakeLLM{response: "Title"}
	c := NewHeadingClassifier(llm, &scriptPrompter{}, 2000, 50)

	c.Classify(strings.Repeat("a", 3000))

	prefix := strings.Repeat("a", 2000)
	if !strings.HasSuffix(llm.lastPrompt, prefix) {
		t.Fatal("prompt does not end with the document prefix")
	}
	if strings.HasSuffix(llm.lastPrompt, "a"+prefix) {
		t.Error("prompt contains more than the configured prefix length")
	}
}

func TestClassifyTruncatesHeading(t *testing.T) {
	llm := &fakeLLM{response: strings.Repeat("x", 80)}
	c := NewHeadingClassifier(llm, &scriptPrompter{}, 2000, 50)

	if got := c.Classify("text"); len(got) != 50 {
		t.Errorf("heading length = %d, want 50", len(got))
	}
}
