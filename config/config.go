package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the docqa tool.
type Config struct {
	Storage       StorageConfig       `yaml:"storage"`
	Pipeline      PipelineConfig      `yaml:"pipeline"`
	Ingest        IngestConfig        `yaml:"ingest"`
	TitleModel    ModelConfig         `yaml:"title_model"`
	ChatModel     ModelConfig         `yaml:"chat_model"`
	QuestionModel QuestionModelConfig `yaml:"question_model"`
	Parser        ParserConfig        `yaml:"parser"`
	Embedding     EmbeddingConfig     `yaml:"embedding"`
}

// StorageConfig holds knowledge store configuration.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// PipelineConfig holds the knobs of the ingestion pipeline.
type PipelineConfig struct {
	ChunkMinChars        int `yaml:"chunk_min_chars"`
	MaxQuestionsPerChunk int `yaml:"max_questions_per_chunk"`
	MinAnswerWords       int `yaml:"min_answer_words"`
	MaxAnswerWords       int `yaml:"max_answer_words"`
	HeadingPrefixChars   int `yaml:"heading_prefix_chars"`
	HeadingMaxChars      int `yaml:"heading_max_chars"`
}

// IngestConfig holds file matching patterns for directory ingestion.
type IngestConfig struct {
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
}

// ModelConfig holds configuration for a chat-completion model.
type ModelConfig struct {
	Provider    string  `yaml:"provider"` // "openai", "local"
	BaseURL     string  `yaml:"base_url"`
	Model       string  `yaml:"model"`
	APIKeyEnv   string  `yaml:"api_key_env"`
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float64 `yaml:"temperature"`
}

// QuestionModelConfig holds configuration for the question-generation model.
type QuestionModelConfig struct {
	URL          string `yaml:"url"`
	APIKeyEnv    string `yaml:"api_key_env"`
	MaxNewTokens int    `yaml:"max_new_tokens"`
	NumBeams     int    `yaml:"num_beams"`
}

// ParserConfig holds configuration for the NER/noun-phrase parse service.
type ParserConfig struct {
	BaseURL string `yaml:"base_url"`
}

// EmbeddingConfig holds embedding configuration.
type EmbeddingConfig struct {
	Provider  string `yaml:"provider"` // "openai", "ollama", "mock"
	Model     string `yaml:"model"`
	BaseURL   string `yaml:"base_url"`
	APIKeyEnv string `yaml:"api_key_env"`
	Dimension int    `yaml:"dimension"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Path: filepath.Join(".docqa", "knowledge.db"),
		},
		Pipeline: PipelineConfig{
			ChunkMinChars:        80,
			MaxQuestionsPerChunk: 5,
			MinAnswerWords:       3,
			MaxAnswerWords:       20,
			HeadingPrefixChars:   2000,
			HeadingMaxChars:      50,
		},
		Ingest: IngestConfig{
			Includes: []string{"**/*.txt", "**/*.md"},
			Excludes: []string{"**/.git/**", "**/node_modules/**", "**/.docqa/**"},
		},
		TitleModel: ModelConfig{
			Provider:  "openai",
			Model:     "gpt-4o-mini",
			APIKeyEnv: "OPENAI_API_KEY",
			MaxTokens: 30,
		},
		ChatModel: ModelConfig{
			Provider:    "openai",
			Model:       "gpt-4o-mini",
			APIKeyEnv:   "OPENAI_API_KEY",
			MaxTokens:   400,
			Temperature: 0.5,
		},
		QuestionModel: QuestionModelConfig{
			URL:          "https://api-inference.huggingface.co/models/valhalla/t5-base-qg-hl",
			APIKeyEnv:    "HF_API_TOKEN",
			MaxNewTokens: 64,
			NumBeams:     4,
		},
		Parser: ParserConfig{
			BaseURL: "http://localhost:8000",
		},
		Embedding: EmbeddingConfig{
			Provider:  "openai",
			Model:     "text-embedding-3-small",
			APIKeyEnv: "OPENAI_API_KEY",
			Dimension: 1536,
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for docqa.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "docqa.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".docqa", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// EnsureStoreDir ensures the directory holding the store file exists.
func EnsureStoreDir(storePath string) error {
	dir := filepath.Dir(storePath)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0755)
}
