package slog

import (
	"context"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/coverletter"
)

var (
	_ coverletter.JobScraper     = (*LoggingJobScraper)(nil)
	_ coverletter.CompanyCrawler = (*LoggingCompanyCrawler)(nil)
)

// LoggingJobScraper wraps a JobScraper with logging.
type LoggingJobScraper struct {
	next   coverletter.JobScraper
	logger *slog.Logger
}

// NewLoggingJobScraper creates a new LoggingJobScraper.
func NewLoggingJobScraper(next coverletter.JobScraper, logger *slog.Logger) *LoggingJobScraper {
	return &LoggingJobScraper{next: next, logger: logger}
}

// Scrape delegates to the wrapped scraper and logs the outcome.
func (s *LoggingJobScraper) Scrape(ctx context.Context, url string) *coverletter.ScrapeResult {
	begin := time.Now()
	result := s.next.Scrape(ctx, url)
	s.logger.InfoContext(ctx, "scrape job",
		"url", url,
		"success", result.Success,
		"title", result.Title,
		"chars", utf8.RuneCountInString(result.Content),
		"duration", time.Since(begin),
		"error", result.Error,
	)
	return result
}

// LoggingCompanyCrawler wraps a CompanyCrawler with logging.
type LoggingCompanyCrawler struct {
	next   coverletter.CompanyCrawler
	logger *slog.Logger
}

// NewLoggingCompanyCrawler creates a new LoggingCompanyCrawler.
func NewLoggingCompanyCrawler(next coverletter.CompanyCrawler, logger *slog.Logger) *LoggingCompanyCrawler {
	return &LoggingCompanyCrawler{next: next, logger: logger}
}

// Crawl delegates to the wrapped crawler and logs the outcome.
func (c *LoggingCompanyCrawler) Crawl(ctx context.Context, url string) *coverletter.CompanyCrawlResult {
	begin := time.Now()
	result := c.next.Crawl(ctx, url)

	attrs := []any{
		"url", result.SourceURL,
		"success", result.Success,
		"duration", time.Since(begin),
	}
	if result.Data != nil {
		attrs = append(attrs,
			"name", result.Data.Name,
			"mission_chars", utf8.RuneCountInString(result.Data.Mission),
			"science_chars", utf8.RuneCountInString(result.Data.Science),
		)
	}
	if result.Error != "" {
		attrs = append(attrs, "error", result.Error)
	}
	c.logger.InfoContext(ctx, "crawl company", attrs...)
	return result
}
