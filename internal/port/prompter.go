package port

// Prompter is an abstract input source for interactive flows. The console
// is one provider; tests supply scripted ones.
type Prompter interface {
	// Prompt displays a label and returns the next line of input,
	// whitespace-trimmed. An error means no more input is available.
	Prompt(label string) (string, error)
}
