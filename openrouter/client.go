package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const DefaultEndpoint = "https://openrouter.ai/api/v1/chat/completions"

// noReply is returned when a model answers with an empty choice list
// or an empty message body.
const noReply = "No reply"

const maxTokens = 300

// DefaultModels is the fallback order: the first model to answer with
// a 2xx wins, the rest are never tried.
var DefaultModels = []string{
	"deepseek/deepseek-chat-v3-0324:free",
	"deepseek/deepseek-r1:free",
	"google/gemini-2.0-flash-exp:free",
	"google/gemma-3-27b-it:free",
	"qwen/qwen3-14b:free",
}

var ErrInvalidMessage = errors.New("invalid message")

// ModelsExhaustedError is returned when every model in the list failed.
// LastErr keeps only the most recent failure; earlier ones are dropped.
type ModelsExhaustedError struct {
	LastErr string
}

func (e *ModelsExhaustedError) Error() string {
	if e.LastErr == "" {
		return "all models failed"
	}
	return "all models failed: " + e.LastErr
}

type Completion struct {
	Reply     string `json:"reply"`
	ModelUsed string `json:"modelUsed"`
}

type Completer interface {
	Complete(ctx context.Context, message string) (*Completion, error)
}

type Client struct {
	apiKey   string
	endpoint string
	models   []string
	http     *http.Client
}

type Option func(*Client)

// WithEndpoint overrides the completion URL, used by tests to point at
// a local double.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) { c.endpoint = endpoint }
}

func WithModels(models []string) Option {
	return func(c *Client) { c.models = models }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:   apiKey,
		endpoint: DefaultEndpoint,
		models:   DefaultModels,
		http:     &http.Client{Timeout: 60 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends the message to each model in order and returns the
// first successful reply. A transport fault or non-2xx status moves on
// to the next model; only the last failure is reported on exhaustion.
func (c *Client) Complete(ctx context.Context, message string) (*Completion, error) {
	if message == "" {
		return nil, ErrInvalidMessage
	}

	messages := []chatMessage{{Role: "user", Content: message}}

	var lastErr string
	for _, model := range c.models {
		body, err := json.Marshal(chatRequest{
			Model:     model,
			Messages:  messages,
			MaxTokens: maxTokens,
		})
		if err != nil {
			lastErr = err.Error()
			continue
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
		if err != nil {
			lastErr = err.Error()
			continue
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+c.apiKey)

		res, err := c.http.Do(req)
		if err != nil {
			lastErr = err.Error()
			continue
		}

		if res.StatusCode < 200 || res.StatusCode >= 300 {
			errText, _ := io.ReadAll(res.Body)
			res.Body.Close()
			lastErr = string(errText)
			continue
		}

		var data chatResponse
		decodeErr := json.NewDecoder(res.Body).Decode(&data)
		res.Body.Close()
		if decodeErr != nil {
			lastErr = fmt.Sprintf("decode response from %q: %v", model, decodeErr)
			continue
		}

		reply := noReply
		if len(data.Choices) > 0 && data.Choices[0].Message.Content != "" {
			reply = data.Choices[0].Message.Content
		}

		return &Completion{Reply: reply, ModelUsed: model}, nil
	}

	return nil, &ModelsExhaustedError{LastErr: lastErr}
}
