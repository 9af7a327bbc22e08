package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fwojciec/coverletter"
	"github.com/fwojciec/coverletter/fs"
	"github.com/fwojciec/coverletter/generate"
)

// Run executes the generate command.
func (c *GenerateCmd) Run(deps *Dependencies) error {
	req := &coverletter.GenerateRequest{
		ResumeText:  deps.Profile.Text(),
		RoleTitle:   c.Role,
		CompanyName: c.Company,
	}

	jobText, title, err := c.jobText(deps)
	if err != nil {
		return err
	}
	req.JobText = jobText
	if req.RoleTitle == "" {
		req.RoleTitle = title
	}

	if c.CompanyURL != "" {
		result := deps.CompanyCrawler.Crawl(deps.Ctx, c.CompanyURL)
		if result.Success {
			req.CompanyText = coverletter.SummarizeCompany(result.Data)
			if req.CompanyName == "" && result.Data != nil {
				req.CompanyName = result.Data.Name
			}
		} else {
			fmt.Fprintf(deps.Stderr, "warning: company research skipped: %s\n", result.Error)
		}
	}

	if c.DryRun {
		return c.dryRun(deps, req)
	}

	if deps.Orchestrator == nil {
		return coverletter.Errorf(coverletter.EINVALID, "no model API key configured: set GEMINI_API_KEY or ANTHROPIC_API_KEY")
	}

	session, err := deps.Orchestrator.Generate(deps.Ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "## Cover Letter\n\n%s\n\n## Resume Bullets\n\n%s\n", session.CoverLetter, session.Bullets)

	if c.Out == "" {
		return nil
	}
	return c.writeDocuments(deps, session)
}

// jobText returns the posting text and, for scraped postings, its title.
func (c *GenerateCmd) jobText(deps *Dependencies) (string, string, error) {
	if c.JobURL != "" {
		result := deps.JobScraper.Scrape(deps.Ctx, c.JobURL)
		if !result.Success {
			return "", "", coverletter.Errorf(coverletter.EUNAVAILABLE, "scrape failed: %s", result.Error)
		}
		return result.Content, result.Title, nil
	}

	var (
		data []byte
		err  error
	)
	if c.JobFile == "-" {
		data, err = io.ReadAll(deps.Stdin)
	} else {
		data, err = os.ReadFile(c.JobFile)
	}
	if err != nil {
		return "", "", fmt.Errorf("read job description: %w", err)
	}
	return strings.TrimSpace(string(data)), "", nil
}

func (c *GenerateCmd) dryRun(deps *Dependencies, req *coverletter.GenerateRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if deps.TokenCounter == nil {
		return coverletter.Errorf(coverletter.EINTERNAL, "no token counter configured")
	}

	letterPrompt, err := generate.CoverLetterPrompt(req)
	if err != nil {
		return err
	}
	bulletsPrompt, err := generate.BulletsPrompt(req)
	if err != nil {
		return err
	}

	for _, p := range []struct{ name, prompt string }{
		{"cover letter", letterPrompt},
		{"bullets", bulletsPrompt},
	} {
		n, err := deps.TokenCounter.CountTokens(deps.Ctx, p.prompt)
		if err != nil {
			return err
		}
		fmt.Fprintf(deps.Stdout, "%s prompt: %d tokens\n", p.name, n)
	}
	return nil
}

func (c *GenerateCmd) writeDocuments(deps *Dependencies, session *coverletter.Session) error {
	paths, err := fs.NewWriter(c.Out, deps.Renderer).WriteSession(deps.Ctx, session, deps.Profile.Name)
	if err != nil {
		return fmt.Errorf("write documents: %w", err)
	}
	for _, p := range paths {
		fmt.Fprintf(deps.Stderr, "wrote %s\n", p)
	}
	return nil
}
