package port

// LLM represents a language model for text generation.
type LLM interface {
	// Generate generates text based on the prompt.
	Generate(prompt string) (string, error)

	// GenerateWithSystem generates text with a system prompt.
	GenerateWithSystem(systemPrompt, userPrompt string) (string, error)

	// ModelName returns the name of the model.
	ModelName() string
}

// QuestionModel is a sequence-generation model constrained to produce a
// question whose expected answer is the highlighted span in its input.
type QuestionModel interface {
	// Generate produces a question for text containing a highlighted span.
	Generate(highlighted string) (string, error)
}
