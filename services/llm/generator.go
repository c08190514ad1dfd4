// Package llm is the boundary to the hosted generative model. Callers build a
// Request and get raw text back; which provider serves it is a start-up choice.
package llm

import (
	"context"
	"errors"
	"fmt"
)

// ErrEmptyResponse is returned when the provider answers with no text
var ErrEmptyResponse = errors.New("model returned an empty response")

// Schema asks for structured output matching a JSON schema, where supported
type Schema struct {
	Name        string
	Description string
	Definition  map[string]interface{}
}

// Request is one single-turn generation
type Request struct {
	System      string
	Prompt      string
	JSON        bool
	Schema      *Schema
	Temperature float64
	MaxTokens   int
}

// Generator produces text for a prompt
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
	Name() string
}

// Func adapts a function to Generator; handy in tests
type Func func(ctx context.Context, req Request) (string, error)

func (f Func) Generate(ctx context.Context, req Request) (string, error) { return f(ctx, req) }
func (f Func) Name() string                                              { return "func" }

// Unavailable is installed when no provider is configured. Every call fails,
// which the counselor turns into its generic error message.
type Unavailable struct {
	Reason string
}

func (u Unavailable) Generate(context.Context, Request) (string, error) {
	return "", fmt.Errorf("model unavailable: %s", u.Reason)
}

func (u Unavailable) Name() string { return "unavailable" }
