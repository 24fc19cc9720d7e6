package ai

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
)

const groqEndpoint = "https://api.groq.com/openai/v1/chat/completions"

// GroqProvider talks to the Groq OpenAI-compatible chat completions API.
type GroqProvider struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// NewGroqProvider builds a provider for the given API key and model.
func NewGroqProvider(apiKey, model string) *GroqProvider {
	return &GroqProvider{
		apiKey:   apiKey,
		model:    model,
		endpoint: groqEndpoint,
		client: &http.Client{
			Timeout: 25 * time.Second,
		},
	}
}

// Complete sends the conversation and returns the first choice. The request
// forces JSON object output so the reply always parses.
func (p *GroqProvider) Complete(messages []Message) (string, error) {
	payload := map[string]interface{}{
		"model":    p.model,
		"messages": messages,
		"response_format": map[string]string{
			"type": "json_object",
		},
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, p.endpoint, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("groq http %d: %s", resp.StatusCode, truncate(body, 200))
	}

	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", err
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("groq empty choices")
	}

	return parsed.Choices[0].Message.Content, nil
}

func truncate(body []byte, max int) string {
	if len(body) > max {
		body = body[:max]
	}
	return string(body)
}
