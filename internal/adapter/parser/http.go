package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"docqa/internal/port"
)

// Client talks to a parse service exposing NER and noun-phrase extraction
// over HTTP (a spaCy model behind a small web server).
type Client struct {
	baseURL string
	client  *http.Client
}

type parseRequest struct {
	Text string `json:"text"`
}

type parseResponse struct {
	Entities    []spanPayload `json:"entities"`
	NounPhrases []spanPayload `json:"noun_phrases"`
}

type spanPayload struct {
	Text  string `json:"text"`
	Label string `json:"label,omitempty"`
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = "http://localhost:8000"
	}

	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

func (c *Client) Parse(text string) (port.ParseResult, error) {
	jsonData, err := json.Marshal(parseRequest{Text: text})
	if err != nil {
		return port.ParseResult{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequest("POST", c.baseURL+"/parse", bytes.NewBuffer(jsonData))
	if err != nil {
		return port.ParseResult{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return port.ParseResult{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return port.ParseResult{}, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return port.ParseResult{}, fmt.Errorf("parse service returned status %d: %s", resp.StatusCode, string(body))
	}

	var parsed parseResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return port.ParseResult{}, fmt.Errorf("failed to parse response: %w", err)
	}

	result := port.ParseResult{
		Entities:    make([]port.Span, 0, len(parsed.Entities)),
		NounPhrases: make([]port.Span, 0, len(parsed.NounPhrases)),
	}
	for _, e := range parsed.Entities {
		result.Entities = append(result.Entities, port.Span{Text: e.Text, Label: e.Label})
	}
	for _, np := range parsed.NounPhrases {
		result.NounPhrases = append(result.NounPhrases, port.Span{Text: np.Text})
	}

	return result, nil
}
