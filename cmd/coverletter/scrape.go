package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/coverletter"
)

// Run executes the scrape-job command.
func (c *ScrapeJobCmd) Run(deps *Dependencies) error {
	result := deps.JobScraper.Scrape(deps.Ctx, c.URL)
	if c.JSON {
		return writeJSON(deps, result)
	}
	if !result.Success {
		fmt.Fprintf(deps.Stderr, "error: %s\n", result.Error)
		return coverletter.Errorf(coverletter.EUNAVAILABLE, "scrape failed: %s", result.Error)
	}

	if result.Title != "" {
		fmt.Fprintf(deps.Stdout, "# %s\n\n", result.Title)
	}
	fmt.Fprintln(deps.Stdout, result.Content)
	return nil
}

// Run executes the scrape-company command.
func (c *ScrapeCompanyCmd) Run(deps *Dependencies) error {
	result := deps.CompanyCrawler.Crawl(deps.Ctx, c.URL)
	if c.JSON {
		return writeJSON(deps, result)
	}
	if !result.Success {
		fmt.Fprintf(deps.Stderr, "error: %s\n", result.Error)
		return coverletter.Errorf(coverletter.EUNAVAILABLE, "crawl failed: %s", result.Error)
	}

	fmt.Fprint(deps.Stdout, coverletter.SummarizeCompany(result.Data))
	return nil
}

func writeJSON(deps *Dependencies, v any) error {
	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
