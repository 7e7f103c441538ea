package input

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestConsolePrompt(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(strings.NewReader("  hello world  \nsecond\n"), &out)

	got, err := c.Prompt("Enter something: ")
	if err != nil {
		t.Fatalf("Prompt: %v", err)
	}
	if got != "hello world" {
		t.Errorf("input = %q, want trimmed line", got)
	}
	if out.String() != "Enter something: " {
		t.Errorf("label = %q", out.String())
	}

	got, err = c.Prompt("again: ")
	if err != nil {
		t.Fatalf("second Prompt: %v", err)
	}
	if got != "second" {
		t.Errorf("second input = %q", got)
	}
}

func TestConsolePromptUnterminatedLine(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(strings.NewReader("no newline"), &out)

	got, err := c.Prompt("> ")
	if err != nil {
		t.Fatalf("Prompt: %v", err)
	}
	if got != "no newline" {
		t.Errorf("input = %q", got)
	}
}

func TestConsolePromptEOF(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(strings.NewReader(""), &out)

	if _, err := c.Prompt("> "); err != io.EOF {
		t.Errorf("err = %v, want io.EOF", err)
	}
}
