package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/ollama/ollama/api"
	"google.golang.org/genai"

	"nexusfile/internal/config"
	"nexusfile/internal/logging"
)

// OllamaClient implements Client for local or remote Ollama servers.
// Ollama models here run in generated-fragment mode: the fallback prompt
// instructs the model to emit fenced JSON, which is stripped and parsed
// into the same structured calls the Gemini backend produces natively.
type OllamaClient struct {
	client      *api.Client
	model       string
	temperature float32
	maxTokens   int32
	retry       RetryConfig
}

// authTransport adds an Authorization header to HTTP requests.
type authTransport struct {
	base   http.RoundTripper
	apiKey string
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	reqClone := req.Clone(req.Context())
	reqClone.Header.Set("Authorization", "Bearer "+t.apiKey)
	return t.base.RoundTrip(reqClone)
}

// NewOllamaClient creates a new Ollama API client.
func NewOllamaClient(cfg *config.Config) (Client, error) {
	if cfg.Model.Name == "" {
		return nil, fmt.Errorf("model name is required for the ollama backend")
	}

	baseURL := cfg.API.OllamaBaseURL
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid ollama base URL: %w", err)
	}

	httpClient := &http.Client{Timeout: cfg.API.Timeout}
	if cfg.API.OllamaKey != "" {
		httpClient.Transport = &authTransport{
			base:   http.DefaultTransport,
			apiKey: cfg.API.OllamaKey,
		}
	}

	return &OllamaClient{
		client:      api.NewClient(parsed, httpClient),
		model:       cfg.Model.Name,
		temperature: cfg.Model.Temperature,
		maxTokens:   cfg.Model.MaxOutputTokens,
		retry:       DefaultRetryConfig(),
	}, nil
}

// Backend returns the backend name.
func (c *OllamaClient) Backend() string {
	return "ollama"
}

// Generate sends a single chat request. The tool declarations are
// rendered into the system prompt; the model's text output is parsed
// back into function calls after fence stripping.
func (c *OllamaClient) Generate(ctx context.Context, systemInstruction, userText string, decls []*genai.FunctionDeclaration) (*Response, error) {
	system := systemInstruction + ToolCallFallbackPrompt(decls)

	req := &api.ChatRequest{
		Model: c.model,
		Messages: []api.Message{
			{Role: "system", Content: system},
			{Role: "user", Content: userText},
		},
		Stream: Ptr(false),
		Options: map[string]any{
			"temperature": float64(c.temperature),
			"num_predict": int(c.maxTokens),
		},
	}

	return withRetry(ctx, c.retry, func() (*Response, error) {
		var text strings.Builder
		err := c.client.Chat(ctx, req, func(resp api.ChatResponse) error {
			text.WriteString(resp.Message.Content)
			return nil
		})
		if err != nil {
			return nil, err
		}

		out := &Response{Text: text.String()}
		out.FunctionCalls = ParseToolCallsFromText(out.Text)
		if len(out.FunctionCalls) > 0 {
			// The fragment is consumed once parsed; callers must never
			// see generated text as something to execute.
			out.Text = ""
		}

		logging.Debug("ollama response parsed",
			"calls", len(out.FunctionCalls),
			"text_len", len(out.Text))

		return out, nil
	})
}

// Close closes the client connection.
func (c *OllamaClient) Close() error {
	return nil
}
