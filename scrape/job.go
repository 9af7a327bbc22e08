package scrape

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/coverletter"
)

// DefaultJobTimeout bounds the job posting fetch.
const DefaultJobTimeout = 15 * time.Second

// Ensure JobScraper implements coverletter.JobScraper at compile time.
var _ coverletter.JobScraper = (*JobScraper)(nil)

// JobScraper fetches a job posting once and extracts its title and body.
// Failures are surfaced to the caller; there are no retries.
type JobScraper struct {
	Fetcher   coverletter.Fetcher
	Extractor coverletter.Extractor
	Timeout   time.Duration
}

// NewJobScraper creates a JobScraper with the default timeout.
func NewJobScraper(fetcher coverletter.Fetcher, extractor coverletter.Extractor) *JobScraper {
	return &JobScraper{
		Fetcher:   fetcher,
		Extractor: extractor,
		Timeout:   DefaultJobTimeout,
	}
}

// Scrape fetches url and extracts the posting in posting mode.
func (s *JobScraper) Scrape(ctx context.Context, url string) *coverletter.ScrapeResult {
	result := &coverletter.ScrapeResult{SourceURL: url}
	if strings.TrimSpace(url) == "" {
		result.Error = "URL is required"
		return result
	}

	timeout := s.Timeout
	if timeout <= 0 {
		timeout = DefaultJobTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	html, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		result.Error = reason(err)
		return result
	}

	extracted, err := s.Extractor.Extract(html, coverletter.ModePosting)
	if err != nil {
		result.Error = reason(err)
		return result
	}
	if extracted.Text == "" {
		result.Error = "no text content found at " + url
		return result
	}

	result.Success = true
	result.Title = coverletter.Truncate(extracted.Title, coverletter.MaxTitleLength)
	result.Content = extracted.Text
	return result
}
