package cli

import (
	"fmt"

	"docqa/config"
	"docqa/internal/adapter/chunker"
	"docqa/internal/adapter/embedding"
	"docqa/internal/adapter/extract"
	"docqa/internal/adapter/llm"
	"docqa/internal/adapter/parser"
	"docqa/internal/adapter/qg"
	"docqa/internal/adapter/store"
	"docqa/internal/port"
	"docqa/internal/usecase"
)

// openStore opens the shared knowledge store, creating its directory on
// first use.
func openStore(cfg *config.Config) (*store.BoltStore, error) {
	if err := config.EnsureStoreDir(cfg.Storage.Path); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	st, err := store.NewBoltStore(cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open knowledge store: %w", err)
	}
	return st, nil
}

// buildLLM creates a chat-completion client from model config.
func buildLLM(mc config.ModelConfig) (port.LLM, error) {
	switch mc.Provider {
	case "openai", "":
		return llm.NewClient(mc.APIKeyEnv, mc.Model, mc.BaseURL, mc.MaxTokens, mc.Temperature)
	case "local":
		return llm.NewLocalClient(mc.Model, mc.BaseURL, mc.MaxTokens, mc.Temperature)
	default:
		return nil, fmt.Errorf("unsupported model provider: %s", mc.Provider)
	}
}

// buildEmbedder creates an embedder from config.
func buildEmbedder(ec config.EmbeddingConfig) (port.Embedder, error) {
	switch ec.Provider {
	case "openai", "":
		return embedding.NewOpenAIEmbedder(ec.APIKeyEnv, ec.Model)
	case "ollama":
		return embedding.NewOllamaEmbedder(ec.Model, ec.BaseURL)
	case "mock":
		return embedding.NewMockEmbedder(ec.Dimension), nil
	default:
		return nil, fmt.Errorf("unsupported embedding provider: %s", ec.Provider)
	}
}

// buildIngestor wires the full ingestion pipeline onto an open store. The
// prompter serves the heading classifier's manual-title fallback.
func buildIngestor(cfg *config.Config, prompter port.Prompter, st *store.BoltStore) (*usecase.IngestUseCase, error) {
	titleLLM, err := buildLLM(cfg.TitleModel)
	if err != nil {
		return nil, fmt.Errorf("failed to create title model client: %w", err)
	}

	questionModel, err := qg.NewModel(cfg.QuestionModel.URL, cfg.QuestionModel.APIKeyEnv,
		cfg.QuestionModel.MaxNewTokens, cfg.QuestionModel.NumBeams)
	if err != nil {
		return nil, fmt.Errorf("failed to create question model client: %w", err)
	}

	embedder, err := buildEmbedder(cfg.Embedding)
	if err != nil {
		return nil, fmt.Errorf("failed to create embedder: %w", err)
	}

	headings := usecase.NewHeadingClassifier(titleLLM, prompter,
		cfg.Pipeline.HeadingPrefixChars, cfg.Pipeline.HeadingMaxChars)
	candidates := usecase.NewCandidateExtractor(parser.NewClient(cfg.Parser.BaseURL),
		cfg.Pipeline.MinAnswerWords, cfg.Pipeline.MaxAnswerWords)
	questions := usecase.NewQuestionGenerator(questionModel)

	return usecase.NewIngestUseCase(
		extract.NewFileExtractor(),
		chunker.NewParagraphChunker(cfg.Pipeline.ChunkMinChars),
		headings,
		candidates,
		questions,
		embedder,
		st,
		cfg.Pipeline.MaxQuestionsPerChunk,
	), nil
}
