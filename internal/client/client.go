package client

import (
	"context"

	"google.golang.org/genai"
)

// Client defines the interface for remote reasoning backends. One request
// is made per run; the response carries either structured function calls
// (native function-calling backends) or text the backend has already
// parsed into calls (generated-fragment backends).
type Client interface {
	// Generate sends the system instruction and user text together with
	// the permitted function declarations, and returns the response.
	Generate(ctx context.Context, systemInstruction, userText string, decls []*genai.FunctionDeclaration) (*Response, error)

	// Backend returns the backend name ("gemini", "ollama").
	Backend() string

	// Close closes the client connection.
	Close() error
}

// Response represents a complete response from the model.
type Response struct {
	// Text is the plain-text portion of the response, if any.
	Text string

	// FunctionCalls contains the operation calls proposed by the model.
	FunctionCalls []*genai.FunctionCall
}

// Empty reports whether the response carries neither text nor calls.
func (r *Response) Empty() bool {
	return r == nil || (r.Text == "" && len(r.FunctionCalls) == 0)
}
