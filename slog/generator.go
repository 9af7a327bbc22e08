package slog

import (
	"context"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/coverletter"
)

// Ensure LoggingGenerator implements coverletter.Generator.
var _ coverletter.Generator = (*LoggingGenerator)(nil)

// LoggingGenerator wraps a Generator with logging. Prompts and outputs are
// logged by size only.
type LoggingGenerator struct {
	next   coverletter.Generator
	logger *slog.Logger
}

// NewLoggingGenerator creates a new LoggingGenerator.
func NewLoggingGenerator(next coverletter.Generator, logger *slog.Logger) *LoggingGenerator {
	return &LoggingGenerator{next: next, logger: logger}
}

// Generate delegates to the wrapped generator and logs the call.
func (g *LoggingGenerator) Generate(ctx context.Context, prompt string, maxTokens int) (text string, err error) {
	defer func(begin time.Time) {
		level := slog.LevelInfo
		if err != nil {
			level = slog.LevelError
		}
		g.logger.Log(ctx, level, "generate",
			"prompt_chars", utf8.RuneCountInString(prompt),
			"max_tokens", maxTokens,
			"chars", utf8.RuneCountInString(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.Generate(ctx, prompt, maxTokens)
}
