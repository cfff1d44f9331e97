package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const systemPrompt = "You are a career assistant. Given a job description or job title, " +
	"respond with a JSON array of the most relevant professional skill names, " +
	"for example [\"Go\", \"PostgreSQL\", \"Docker\"]. Respond with the JSON array only, no prose."

// Client talks to an OpenAI-compatible chat completions endpoint to turn a job
// description into a list of skill names. Callers treat any error as "no
// suggestions"; this client never needs to succeed for the edit flow to work.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

func NewClient(baseURL, apiKey, model string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
	}
}

// IsConfigured reports whether a provider endpoint was supplied.
func (c *Client) IsConfigured() bool {
	return c.baseURL != ""
}

type chatCompletionRequest struct {
	Model       string                  `json:"model"`
	Messages    []chatCompletionMessage `json:"messages"`
	Stream      bool                    `json:"stream"`
	Temperature float64                 `json:"temperature"`
}

type chatCompletionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatCompletionMessage `json:"message"`
	} `json:"choices"`
}

func (c *Client) SuggestSkills(ctx context.Context, jobDescription string) ([]string, error) {
	if !c.IsConfigured() {
		return nil, errors.New("ai: provider not configured")
	}

	reqBody := chatCompletionRequest{
		Model: c.model,
		Messages: []chatCompletionMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: jobDescription},
		},
		Stream:      false,
		Temperature: 0.2,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ai: provider returned status %d", resp.StatusCode)
	}

	var completion chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return nil, fmt.Errorf("ai: decode response: %w", err)
	}
	if len(completion.Choices) == 0 {
		return nil, errors.New("ai: empty completion")
	}

	return parseSkills(completion.Choices[0].Message.Content)
}

// parseSkills reads the model output, tolerating markdown code fences and the
// occasional {"skills": [...]} wrapper some models produce.
func parseSkills(content string) ([]string, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	var skills []string
	if err := json.Unmarshal([]byte(content), &skills); err == nil {
		return cleaned(skills), nil
	}

	var wrapped struct {
		Skills []string `json:"skills"`
	}
	if err := json.Unmarshal([]byte(content), &wrapped); err == nil && wrapped.Skills != nil {
		return cleaned(wrapped.Skills), nil
	}

	return nil, errors.New("ai: response is not a skill list")
}

func cleaned(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
