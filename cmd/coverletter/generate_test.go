package main_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/fwojciec/coverletter"
	main "github.com/fwojciec/coverletter/cmd/coverletter"
	"github.com/fwojciec/coverletter/generate"
	"github.com/fwojciec/coverletter/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// echoGenerator answers each prompt with a fixed text per artifact and
// records the prompts it saw.
func echoGenerator(prompts *[]string) *mock.Generator {
	var mu sync.Mutex
	return &mock.Generator{
		GenerateFn: func(_ context.Context, prompt string, _ int) (string, error) {
			mu.Lock()
			*prompts = append(*prompts, prompt)
			mu.Unlock()
			if strings.Contains(prompt, "Generate a professional cover letter") {
				return "I am excited to apply.", nil
			}
			return "• Built pipelines", nil
		},
	}
}

func TestGenerateCmd_Run(t *testing.T) {
	t.Parallel()

	profile := &coverletter.Profile{Name: "Ada Byron"}

	t.Run("generates from a job file", func(t *testing.T) {
		t.Parallel()

		jobFile := filepath.Join(t.TempDir(), "job.txt")
		require.NoError(t, os.WriteFile(jobFile, []byte("  Senior Scientist, assay development  \n"), 0o600))

		var prompts []string
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:          context.Background(),
			Stdout:       stdout,
			Stderr:       &bytes.Buffer{},
			Profile:      profile,
			Orchestrator: generate.NewOrchestrator(echoGenerator(&prompts), nil),
		}

		err := (&main.GenerateCmd{JobFile: jobFile, Role: "Senior Scientist", Company: "Acme"}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "## Cover Letter\n\nI am excited to apply.")
		assert.Contains(t, stdout.String(), "## Resume Bullets\n\n• Built pipelines")
		require.Len(t, prompts, 2)
		for _, p := range prompts {
			assert.Contains(t, p, "Senior Scientist, assay development")
			assert.Contains(t, p, "# Ada Byron")
		}
	})

	t.Run("reads the job from stdin", func(t *testing.T) {
		t.Parallel()

		var prompts []string
		deps := &main.Dependencies{
			Ctx:          context.Background(),
			Stdin:        strings.NewReader("Lab manager wanted"),
			Stdout:       &bytes.Buffer{},
			Stderr:       &bytes.Buffer{},
			Profile:      profile,
			Orchestrator: generate.NewOrchestrator(echoGenerator(&prompts), nil),
		}

		require.NoError(t, (&main.GenerateCmd{JobFile: "-"}).Run(deps))
		require.Len(t, prompts, 2)
		assert.Contains(t, prompts[0], "Lab manager wanted")
	})

	t.Run("scrapes the job and researches the company", func(t *testing.T) {
		t.Parallel()

		scraper := &mock.JobScraper{
			ScrapeFn: func(_ context.Context, url string) *coverletter.ScrapeResult {
				return &coverletter.ScrapeResult{Success: true, Title: "Bioinformatician", Content: "Analyze sequencing data.", SourceURL: url}
			},
		}
		crawler := &mock.CompanyCrawler{
			CrawlFn: func(_ context.Context, url string) *coverletter.CompanyCrawlResult {
				return &coverletter.CompanyCrawlResult{
					Success:   true,
					SourceURL: url,
					Data:      &coverletter.CompanyProfile{Name: "Helix Labs", Mission: "Decode disease."},
				}
			},
		}

		var got *coverletter.Session
		sessions := &mock.SessionStore{
			PutFn: func(_ context.Context, s *coverletter.Session) (string, error) {
				got = s
				return "sess-1", nil
			},
		}
		gen := &mock.Generator{
			GenerateFn: func(context.Context, string, int) (string, error) { return "text", nil },
		}

		deps := &main.Dependencies{
			Ctx:            context.Background(),
			Stdout:         &bytes.Buffer{},
			Stderr:         &bytes.Buffer{},
			Profile:        profile,
			JobScraper:     scraper,
			CompanyCrawler: crawler,
			Sessions:       sessions,
			Orchestrator:   generate.NewOrchestrator(gen, sessions),
		}

		err := (&main.GenerateCmd{JobURL: "https://jobs.example.com/9", CompanyURL: "https://helix.example"}).Run(deps)

		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Bioinformatician", got.RoleTitle)
		assert.Equal(t, "Helix Labs", got.CompanyName)
	})

	t.Run("continues when company research fails", func(t *testing.T) {
		t.Parallel()

		crawler := &mock.CompanyCrawler{
			CrawlFn: func(_ context.Context, url string) *coverletter.CompanyCrawlResult {
				return &coverletter.CompanyCrawlResult{Success: false, SourceURL: url, Error: "HTTP 500"}
			},
		}

		var prompts []string
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:            context.Background(),
			Stdin:          strings.NewReader("Research associate"),
			Stdout:         &bytes.Buffer{},
			Stderr:         stderr,
			Profile:        profile,
			CompanyCrawler: crawler,
			Orchestrator:   generate.NewOrchestrator(echoGenerator(&prompts), nil),
		}

		err := (&main.GenerateCmd{JobFile: "-", CompanyURL: "https://down.example"}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "company research skipped: HTTP 500")
		require.Len(t, prompts, 2)
		for _, p := range prompts {
			assert.NotContains(t, p, "HTTP 500")
		}
	})

	t.Run("fails when the job cannot be scraped", func(t *testing.T) {
		t.Parallel()

		scraper := &mock.JobScraper{
			ScrapeFn: func(_ context.Context, url string) *coverletter.ScrapeResult {
				return &coverletter.ScrapeResult{Success: false, Error: "HTTP 403", SourceURL: url}
			},
		}
		deps := &main.Dependencies{
			Ctx:        context.Background(),
			Stdout:     &bytes.Buffer{},
			Stderr:     &bytes.Buffer{},
			Profile:    profile,
			JobScraper: scraper,
		}

		err := (&main.GenerateCmd{JobURL: "https://jobs.example.com/9"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, "scrape failed: HTTP 403", coverletter.ErrorMessage(err))
	})

	t.Run("requires a model", func(t *testing.T) {
		t.Parallel()

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdin:   strings.NewReader("job"),
			Stdout:  &bytes.Buffer{},
			Stderr:  &bytes.Buffer{},
			Profile: profile,
		}

		err := (&main.GenerateCmd{JobFile: "-"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, coverletter.EINVALID, coverletter.ErrorCode(err))
	})

	t.Run("rejects an empty job description", func(t *testing.T) {
		t.Parallel()

		var prompts []string
		deps := &main.Dependencies{
			Ctx:          context.Background(),
			Stdin:        strings.NewReader("   \n"),
			Stdout:       &bytes.Buffer{},
			Stderr:       &bytes.Buffer{},
			Profile:      profile,
			Orchestrator: generate.NewOrchestrator(echoGenerator(&prompts), nil),
		}

		err := (&main.GenerateCmd{JobFile: "-"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, "Job description is required", coverletter.ErrorMessage(err))
		assert.Empty(t, prompts)
	})

	t.Run("surfaces generation failure", func(t *testing.T) {
		t.Parallel()

		gen := &mock.Generator{
			GenerateFn: func(context.Context, string, int) (string, error) {
				return "", errors.New("rate limited")
			},
		}
		deps := &main.Dependencies{
			Ctx:          context.Background(),
			Stdin:        strings.NewReader("job"),
			Stdout:       &bytes.Buffer{},
			Stderr:       &bytes.Buffer{},
			Profile:      profile,
			Orchestrator: generate.NewOrchestrator(gen, nil),
		}

		err := (&main.GenerateCmd{JobFile: "-"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, "cover letter generation failed: rate limited", coverletter.ErrorMessage(err))
	})

	t.Run("prints token counts on dry run", func(t *testing.T) {
		t.Parallel()

		counter := &mock.TokenCounter{
			CountTokensFn: func(_ context.Context, text string) (int, error) {
				return len(strings.Fields(text)), nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:          context.Background(),
			Stdin:        strings.NewReader("Process engineer"),
			Stdout:       stdout,
			Stderr:       &bytes.Buffer{},
			Profile:      profile,
			TokenCounter: counter,
		}

		err := (&main.GenerateCmd{JobFile: "-", DryRun: true}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "cover letter prompt: ")
		assert.Contains(t, stdout.String(), "bullets prompt: ")
		assert.Contains(t, stdout.String(), " tokens\n")
	})

	t.Run("writes documents to the output directory", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "out")
		renderer := &mock.DocumentRenderer{
			RenderCoverLetterFn: func(letter, candidate, role, company string) ([]byte, error) {
				assert.Equal(t, "Ada Byron", candidate)
				return []byte("letter:" + letter), nil
			},
			RenderBulletsFn: func(bullets, role, company string) ([]byte, error) {
				return []byte("bullets:" + bullets), nil
			},
		}

		var prompts []string
		deps := &main.Dependencies{
			Ctx:          context.Background(),
			Stdin:        strings.NewReader("job"),
			Stdout:       &bytes.Buffer{},
			Stderr:       &bytes.Buffer{},
			Profile:      profile,
			Renderer:     renderer,
			Orchestrator: generate.NewOrchestrator(echoGenerator(&prompts), nil),
		}

		err := (&main.GenerateCmd{JobFile: "-", Company: "Acme", Out: dir}).Run(deps)
		require.NoError(t, err)

		letter, err := os.ReadFile(filepath.Join(dir, "Cover_Letter_Acme_Ada_Byron.docx"))
		require.NoError(t, err)
		assert.Equal(t, "letter:I am excited to apply.", string(letter))

		bullets, err := os.ReadFile(filepath.Join(dir, "Resume_Bullets_Acme_Ada_Byron.docx"))
		require.NoError(t, err)
		assert.Equal(t, "bullets:• Built pipelines", string(bullets))
	})
}
