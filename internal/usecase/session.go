package usecase

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"docqa/internal/port"
)

// Session is the interactive front-end: a menu-driven state machine over
// topics and stored questions, with a resolver chain for free-text
// queries. It reads from an abstract prompter so the console is one
// interchangeable provider and tests can script the whole flow.
type Session struct {
	topics    []string
	store     port.KnowledgeStore
	namespace string
	chain     *Chain
	prompter  port.Prompter
	out       io.Writer
}

func NewSession(
	topics []string,
	store port.KnowledgeStore,
	namespace string,
	chain *Chain,
	prompter port.Prompter,
	out io.Writer,
) *Session {
	return &Session{
		topics:    topics,
		store:     store,
		namespace: namespace,
		chain:     chain,
		prompter:  prompter,
		out:       out,
	}
}

// Run drives the topic-selection state until the user exits or input
// runs out. A document with no topics reports that and returns.
func (s *Session) Run() error {
	if len(s.topics) == 0 {
		fmt.Fprintln(s.out, "No topics available in this document.")
		return nil
	}

	for {
		fmt.Fprintln(s.out, "\nAvailable topics:")
		for i, topic := range s.topics {
			fmt.Fprintf(s.out, "  %d. %s\n", i+1, topic)
		}

		choice, err := s.prompter.Prompt("\nEnter a topic number, 'custom' to ask your own question, or 'exit' to quit: ")
		if err != nil {
			return nil // input exhausted, same as exit
		}

		switch strings.ToLower(choice) {
		case "exit":
			fmt.Fprintln(s.out, "Goodbye.")
			return nil
		case "custom":
			s.customQuery()
			continue
		}

		n, err := strconv.Atoi(choice)
		if err != nil || n < 1 || n > len(s.topics) {
			fmt.Fprintln(s.out, "Invalid choice. Try again.")
			continue
		}

		if exit := s.drilldown(s.topics[n-1]); exit {
			return nil
		}
	}
}

// drilldown is the question-selection state for one topic. Questions are
// re-queried from the store on every listing, not cached. Returns true
// when the session should end.
func (s *Session) drilldown(topic string) bool {
	for {
		records, err := s.store.QuestionsByHeading(s.namespace, topic)
		if err != nil {
			fmt.Fprintf(s.out, "error: failed to load questions: %v\n", err)
			return false
		}
		if len(records) == 0 {
			fmt.Fprintf(s.out, "No questions found for topic: %s\n", topic)
			return false
		}

		fmt.Fprintf(s.out, "\nQuestions under %s:\n", topic)
		for i, rec := range records {
			fmt.Fprintf(s.out, "  %d. %s\n", i+1, rec.Question)
		}

		choice, err := s.prompter.Prompt("\nEnter a question number, 'back' for topics, 'custom' to ask your own, or 'exit' to quit: ")
		if err != nil {
			return true
		}

		switch strings.ToLower(choice) {
		case "exit":
			fmt.Fprintln(s.out, "Goodbye.")
			return true
		case "back":
			return false
		case "custom":
			s.customQuery()
			continue
		}

		n, err := strconv.Atoi(choice)
		if err != nil || n < 1 || n > len(records) {
			fmt.Fprintln(s.out, "Invalid choice. Try again.")
			continue
		}

		rec := records[n-1]
		fmt.Fprintf(s.out, "\nQuestion: %s\n", rec.Question)
		fmt.Fprintf(s.out, "Answer: %s\n", rec.Answer)
	}
}

// customQuery runs the resolver chain for one free-text question and
// returns to the state it was entered from.
func (s *Session) customQuery() {
	query, err := s.prompter.Prompt("\nEnter your question: ")
	if err != nil || strings.TrimSpace(query) == "" {
		return
	}

	answer, source := s.chain.Answer(query)
	switch source {
	case "document":
		fmt.Fprintf(s.out, "\nDocument answer: %s\n", answer)
	default:
		fmt.Fprintf(s.out, "\nModel answer: %s\n", answer)
	}
}
