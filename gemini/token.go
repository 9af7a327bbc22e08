package gemini

import (
	"context"
	"strings"

	"github.com/fwojciec/coverletter"
	"google.golang.org/genai"
	"google.golang.org/genai/tokenizer"
)

var _ coverletter.TokenCounter = (*TokenCounter)(nil)

// TokenCounter counts prompt tokens using the local Gemini tokenizer.
type TokenCounter struct {
	tok   *tokenizer.LocalTokenizer
	model string
}

// NewTokenCounter creates a TokenCounter for model, or DefaultModel if empty.
func NewTokenCounter(model string) (*TokenCounter, error) {
	if model == "" {
		model = DefaultModel
	}
	tok, err := tokenizer.NewLocalTokenizer(model)
	if err != nil {
		return nil, coverletter.Errorf(coverletter.EUNAVAILABLE, "load tokenizer for %s: %v", model, err)
	}
	return &TokenCounter{tok: tok, model: model}, nil
}

// Model returns the model whose tokenizer is used.
func (tc *TokenCounter) Model() string {
	return tc.model
}

// CountTokens counts the tokens text occupies as a single user turn.
// Whitespace-only text counts as zero.
func (tc *TokenCounter) CountTokens(_ context.Context, text string) (int, error) {
	if strings.TrimSpace(text) == "" {
		return 0, nil
	}

	result, err := tc.tok.CountTokens([]*genai.Content{genai.NewContentFromText(text, "user")}, nil)
	if err != nil {
		return 0, coverletter.Errorf(coverletter.EINTERNAL, "count tokens: %v", err)
	}
	return int(result.TotalTokens), nil
}
