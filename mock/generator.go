package mock

import (
	"context"

	"github.com/fwojciec/coverletter"
)

var _ coverletter.Generator = (*Generator)(nil)

// Generator is a mock implementation of coverletter.Generator.
type Generator struct {
	GenerateFn func(ctx context.Context, prompt string, maxTokens int) (string, error)
}

func (g *Generator) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	return g.GenerateFn(ctx, prompt, maxTokens)
}

var _ coverletter.GenerationService = (*GenerationService)(nil)

// GenerationService is a mock implementation of coverletter.GenerationService.
type GenerationService struct {
	GenerateFn func(ctx context.Context, req *coverletter.GenerateRequest) (*coverletter.Session, error)
}

func (s *GenerationService) Generate(ctx context.Context, req *coverletter.GenerateRequest) (*coverletter.Session, error) {
	return s.GenerateFn(ctx, req)
}
