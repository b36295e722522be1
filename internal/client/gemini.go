package client

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"nexusfile/internal/config"
	"nexusfile/internal/logging"
)

// GeminiClient wraps the Google Gemini API. It uses native function
// calling: proposed operations come back as structured calls validated
// elsewhere against the closed grammar.
type GeminiClient struct {
	client      *genai.Client
	model       string
	temperature float32
	maxTokens   int32
	retry       RetryConfig
}

// NewGeminiClient creates a new Gemini API client.
func NewGeminiClient(ctx context.Context, cfg *config.Config) (Client, error) {
	if cfg.API.GeminiKey == "" {
		return nil, config.ErrMissingAuth
	}

	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend: genai.BackendGeminiAPI,
		APIKey:  cfg.API.GeminiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client:      c,
		model:       cfg.Model.Name,
		temperature: cfg.Model.Temperature,
		maxTokens:   cfg.Model.MaxOutputTokens,
		retry:       DefaultRetryConfig(),
	}, nil
}

// Backend returns the backend name.
func (c *GeminiClient) Backend() string {
	return "gemini"
}

// Generate sends a single generate-content request and collects text and
// function calls from the first candidate.
func (c *GeminiClient) Generate(ctx context.Context, systemInstruction, userText string, decls []*genai.FunctionDeclaration) (*Response, error) {
	genCfg := &genai.GenerateContentConfig{
		Temperature:     Ptr(c.temperature),
		MaxOutputTokens: c.maxTokens,
	}
	if systemInstruction != "" {
		genCfg.SystemInstruction = genai.NewContentFromText(systemInstruction, genai.RoleUser)
	}
	if len(decls) > 0 {
		genCfg.Tools = []*genai.Tool{{FunctionDeclarations: decls}}
	}

	contents := []*genai.Content{
		genai.NewContentFromText(userText, genai.RoleUser),
	}

	return withRetry(ctx, c.retry, func() (*Response, error) {
		resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, genCfg)
		if err != nil {
			return nil, err
		}
		return collectResponse(resp), nil
	})
}

// collectResponse flattens a Gemini response into text and function calls.
func collectResponse(resp *genai.GenerateContentResponse) *Response {
	out := &Response{}
	if resp == nil || len(resp.Candidates) == 0 {
		return out
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil {
		return out
	}

	for _, part := range candidate.Content.Parts {
		if part == nil {
			continue
		}
		if part.Text != "" && !part.Thought {
			out.Text += part.Text
		}
		if part.FunctionCall != nil {
			out.FunctionCalls = append(out.FunctionCalls, part.FunctionCall)
		}
	}

	logging.Debug("gemini response collected",
		"calls", len(out.FunctionCalls),
		"text_len", len(out.Text))

	return out
}

// Close closes the client connection.
func (c *GeminiClient) Close() error {
	// The genai client has no explicit close method
	return nil
}

// Ptr returns a pointer to the given value.
func Ptr[T any](v T) *T {
	return &v
}
