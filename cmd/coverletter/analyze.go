package main

import (
	"fmt"

	"github.com/fwojciec/coverletter"
)

// Run executes the analyze-company command.
func (c *AnalyzeCompanyCmd) Run(deps *Dependencies) error {
	if deps.Orchestrator == nil {
		return coverletter.Errorf(coverletter.EINVALID, "no model API key configured: set GEMINI_API_KEY or ANTHROPIC_API_KEY")
	}

	result := deps.CompanyCrawler.Crawl(deps.Ctx, c.URL)
	if !result.Success {
		fmt.Fprintf(deps.Stderr, "error: %s\n", result.Error)
		return coverletter.Errorf(coverletter.EUNAVAILABLE, "crawl failed: %s", result.Error)
	}

	name := c.Name
	if name == "" && result.Data != nil {
		name = result.Data.Name
	}

	analysis, err := deps.Orchestrator.AnalyzeCompany(deps.Ctx, coverletter.SummarizeCompany(result.Data), name)
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, analysis)
	return nil
}
