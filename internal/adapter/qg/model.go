package qg

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const inputPrefix = "generate question: "

// Model calls a hosted text2text question-generation endpoint. Decoding is
// constrained for precision: bounded output length, fixed beam width, early
// stopping, no sampling.
type Model struct {
	url          string
	apiKey       string
	maxNewTokens int
	numBeams     int
	client       *http.Client
}

type generateRequest struct {
	Inputs     string         `json:"inputs"`
	Parameters generateParams `json:"parameters"`
}

type generateParams struct {
	MaxNewTokens  int  `json:"max_new_tokens"`
	NumBeams      int  `json:"num_beams"`
	EarlyStopping bool `json:"early_stopping"`
	DoSample      bool `json:"do_sample"`
}

type generateResponse struct {
	GeneratedText string `json:"generated_text"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// NewModel creates a question-generation client. The API key environment
// variable may be empty for unauthenticated local inference servers.
func NewModel(url, apiKeyEnv string, maxNewTokens, numBeams int) (*Model, error) {
	if url == "" {
		return nil, fmt.Errorf("question model URL is required")
	}

	return &Model{
		url:          url,
		apiKey:       os.Getenv(apiKeyEnv),
		maxNewTokens: maxNewTokens,
		numBeams:     numBeams,
		client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}, nil
}

func (m *Model) Generate(highlighted string) (string, error) {
	reqBody := generateRequest{
		Inputs: inputPrefix + highlighted,
		Parameters: generateParams{
			MaxNewTokens:  m.maxNewTokens,
			NumBeams:      m.numBeams,
			EarlyStopping: true,
			DoSample:      false,
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequest("POST", m.url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if m.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+m.apiKey)
	}

	resp, err := m.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		if json.Unmarshal(body, &errResp) == nil && errResp.Error != "" {
			return "", fmt.Errorf("API error: %s", errResp.Error)
		}
		return "", fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	var outputs []generateResponse
	if err := json.Unmarshal(body, &outputs); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if len(outputs) == 0 {
		return "", fmt.Errorf("API returned no outputs")
	}

	return outputs[0].GeneratedText, nil
}
