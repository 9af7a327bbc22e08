package coverletter

import "context"

// MaxTitleLength is the longest posting title, in runes, that is shown to users.
const MaxTitleLength = 200

// ScrapeResult is the outcome of scraping a single job posting.
type ScrapeResult struct {
	Success   bool   `json:"success"`
	Title     string `json:"title,omitempty"`
	Content   string `json:"content,omitempty"`
	SourceURL string `json:"url"`
	Error     string `json:"error,omitempty"`
}

// JobScraper fetches and extracts a job posting.
type JobScraper interface {
	// Scrape never returns an error: failures are reported through
	// ScrapeResult.Success and ScrapeResult.Error.
	Scrape(ctx context.Context, url string) *ScrapeResult
}

// CompanyCrawlResult is the outcome of crawling a company website.
type CompanyCrawlResult struct {
	Success   bool            `json:"success"`
	Data      *CompanyProfile `json:"data,omitempty"`
	SourceURL string          `json:"url"`
	Error     string          `json:"error,omitempty"`
}

// CompanyCrawler gathers a company profile from a fixed set of pages
// under one origin.
type CompanyCrawler interface {
	// Crawl fails only when the landing page cannot be fetched.
	Crawl(ctx context.Context, url string) *CompanyCrawlResult
}
