package mock

import (
	"context"

	"github.com/fwojciec/coverletter"
)

var (
	_ coverletter.JobScraper     = (*JobScraper)(nil)
	_ coverletter.CompanyCrawler = (*CompanyCrawler)(nil)
)

// JobScraper is a mock implementation of coverletter.JobScraper.
type JobScraper struct {
	ScrapeFn func(ctx context.Context, url string) *coverletter.ScrapeResult
}

func (s *JobScraper) Scrape(ctx context.Context, url string) *coverletter.ScrapeResult {
	return s.ScrapeFn(ctx, url)
}

// CompanyCrawler is a mock implementation of coverletter.CompanyCrawler.
type CompanyCrawler struct {
	CrawlFn func(ctx context.Context, url string) *coverletter.CompanyCrawlResult
}

func (c *CompanyCrawler) Crawl(ctx context.Context, url string) *coverletter.CompanyCrawlResult {
	return c.CrawlFn(ctx, url)
}
