// Package gemini implements coverletter.Generator and
// coverletter.TokenCounter using Google Gemini.
package gemini

import (
	"context"
	"strings"

	"github.com/fwojciec/coverletter"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Generator implements coverletter.Generator at compile time.
var _ coverletter.Generator = (*Generator)(nil)

// Generator implements coverletter.Generator using Google Gemini.
type Generator struct {
	client *genai.Client
	model  string
}

// NewGenerator creates a new Generator. An empty model selects DefaultModel.
func NewGenerator(client *genai.Client, model string) *Generator {
	if model == "" {
		model = DefaultModel
	}
	return &Generator{client: client, model: model}
}

// NewClient creates a Gemini API client authenticated with apiKey.
func NewClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	if apiKey == "" {
		return nil, coverletter.Errorf(coverletter.EINVALID, "GEMINI_API_KEY required")
	}
	return genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
}

// Model returns the model name used for generation.
func (g *Generator) Model() string {
	return g.model
}

// Generate sends prompt as a single user turn and returns the response text.
func (g *Generator) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", coverletter.Errorf(coverletter.EINVALID, "prompt required")
	}
	if g.client == nil {
		return "", coverletter.Errorf(coverletter.EINTERNAL, "gemini client not configured")
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{genai.NewContentFromText(prompt, "user")},
		BuildConfig(maxTokens),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", coverletter.Errorf(coverletter.EINTERNAL, "gemini returned nil result")
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", coverletter.Errorf(coverletter.EUNAVAILABLE, "gemini returned no text")
	}
	return text, nil
}

// BuildConfig returns the GenerateContentConfig for a call limited to
// maxTokens output tokens. A non-positive maxTokens leaves the limit unset.
func BuildConfig(maxTokens int) *genai.GenerateContentConfig {
	temp := float32(0.7)
	config := &genai.GenerateContentConfig{
		Temperature: &temp,
	}
	if maxTokens > 0 {
		config.MaxOutputTokens = int32(maxTokens)
	}
	return config
}
