// Package anthropic implements coverletter.Generator using the Anthropic
// Messages API.
package anthropic

import (
	"context"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/fwojciec/coverletter"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "claude-sonnet-4-20250514"

// Ensure Generator implements coverletter.Generator at compile time.
var _ coverletter.Generator = (*Generator)(nil)

// Generator implements coverletter.Generator using Claude.
type Generator struct {
	client anthropic.Client
	model  string
}

// NewGenerator creates a Generator authenticated with apiKey. Requests are
// never retried. An empty model selects DefaultModel.
func NewGenerator(apiKey, model string, opts ...option.RequestOption) (*Generator, error) {
	if apiKey == "" {
		return nil, coverletter.Errorf(coverletter.EINVALID, "ANTHROPIC_API_KEY required")
	}
	if model == "" {
		model = DefaultModel
	}

	opts = append([]option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}, opts...)

	return &Generator{
		client: anthropic.NewClient(opts...),
		model:  model,
	}, nil
}

// Model returns the model name used for generation.
func (g *Generator) Model() string {
	return g.model
}

// Generate sends prompt as a single user message and returns the
// concatenated text blocks of the reply.
func (g *Generator) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", coverletter.Errorf(coverletter.EINVALID, "prompt required")
	}

	msg, err := g.client.Messages.New(ctx, BuildParams(g.model, prompt, maxTokens))
	if err != nil {
		return "", err
	}

	text := strings.TrimSpace(Text(msg))
	if text == "" {
		return "", coverletter.Errorf(coverletter.EUNAVAILABLE, "anthropic returned no text")
	}
	return text, nil
}

// BuildParams returns the request for a single-turn generation.
func BuildParams(model, prompt string, maxTokens int) anthropic.MessageNewParams {
	return anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: int64(maxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}
}

// Text joins the text content blocks of msg.
func Text(msg *anthropic.Message) string {
	if msg == nil {
		return ""
	}
	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	return sb.String()
}
