// Package generate produces a cover letter and resume bullets from a job
// posting, a candidate resume and optional company research.
package generate

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/coverletter"
	"golang.org/x/sync/errgroup"
)

// Default output token budgets.
const (
	DefaultCoverLetterTokens = 1500
	DefaultBulletsTokens     = 1000
	DefaultAnalysisTokens    = 500
)

// polisher rewrites dashes that read as machine-written.
var polisher = strings.NewReplacer("—", ",", "–", "-")

// Polish replaces em dashes with commas and en dashes with hyphens.
func Polish(s string) string {
	return polisher.Replace(s)
}

// Ensure Orchestrator implements coverletter.GenerationService at compile time.
var _ coverletter.GenerationService = (*Orchestrator)(nil)

// Orchestrator runs the cover letter and bullets generations concurrently
// and records successful results in a session store.
type Orchestrator struct {
	Generator coverletter.Generator

	// Sessions, if set, receives every successful result.
	Sessions coverletter.SessionStore

	CoverLetterTokens int
	BulletsTokens     int
	AnalysisTokens    int

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// NewOrchestrator creates an Orchestrator with default token budgets.
func NewOrchestrator(generator coverletter.Generator, sessions coverletter.SessionStore) *Orchestrator {
	return &Orchestrator{
		Generator:         generator,
		Sessions:          sessions,
		CoverLetterTokens: DefaultCoverLetterTokens,
		BulletsTokens:     DefaultBulletsTokens,
		AnalysisTokens:    DefaultAnalysisTokens,
		Now:               time.Now,
	}
}

// Generate produces both artifacts for req. Both calls always run to
// completion; if either fails no session is created and the cover letter
// failure takes precedence.
func (o *Orchestrator) Generate(ctx context.Context, req *coverletter.GenerateRequest) (*coverletter.Session, error) {
	if o.Generator == nil {
		return nil, coverletter.Errorf(coverletter.EINTERNAL, "no generator configured")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	letterPrompt, err := CoverLetterPrompt(req)
	if err != nil {
		return nil, err
	}
	bulletsPrompt, err := BulletsPrompt(req)
	if err != nil {
		return nil, err
	}

	var (
		letter, bullets       string
		letterErr, bulletsErr error
	)

	// Plain group: a failure on one side must not cancel the other.
	var g errgroup.Group
	g.Go(func() error {
		letter, letterErr = o.Generator.Generate(ctx, letterPrompt, orDefault(o.CoverLetterTokens, DefaultCoverLetterTokens))
		return nil
	})
	g.Go(func() error {
		bullets, bulletsErr = o.Generator.Generate(ctx, bulletsPrompt, orDefault(o.BulletsTokens, DefaultBulletsTokens))
		return nil
	})
	_ = g.Wait()

	if letterErr != nil {
		return nil, coverletter.Errorf(coverletter.EUNAVAILABLE, "cover letter generation failed: %s", reason(letterErr))
	}
	if bulletsErr != nil {
		return nil, coverletter.Errorf(coverletter.EUNAVAILABLE, "bullets generation failed: %s", reason(bulletsErr))
	}

	now := time.Now
	if o.Now != nil {
		now = o.Now
	}
	session := &coverletter.Session{
		CoverLetter: Polish(letter),
		Bullets:     Polish(bullets),
		RoleTitle:   req.RoleTitle,
		CompanyName: req.CompanyName,
		CreatedAt:   now(),
	}

	if o.Sessions != nil {
		id, err := o.Sessions.Put(ctx, session)
		if err != nil {
			return nil, err
		}
		session.ID = id
	}
	return session, nil
}

// AnalyzeCompany asks the generator for a short, application-oriented
// summary of scraped company content.
func (o *Orchestrator) AnalyzeCompany(ctx context.Context, companyText, companyName string) (string, error) {
	if o.Generator == nil {
		return "", coverletter.Errorf(coverletter.EINTERNAL, "no generator configured")
	}
	if strings.TrimSpace(companyText) == "" {
		return "", coverletter.Errorf(coverletter.EINVALID, "Company information is required")
	}

	prompt, err := CompanyAnalysisPrompt(companyText, companyName)
	if err != nil {
		return "", err
	}
	out, err := o.Generator.Generate(ctx, prompt, orDefault(o.AnalysisTokens, DefaultAnalysisTokens))
	if err != nil {
		return "", coverletter.Errorf(coverletter.EUNAVAILABLE, "company analysis failed: %s", reason(err))
	}
	return Polish(out), nil
}

// reason returns the most specific message available for err.
func reason(err error) string {
	if coverletter.ErrorCode(err) == coverletter.EINTERNAL {
		return err.Error()
	}
	return coverletter.ErrorMessage(err)
}

func orDefault(n, def int) int {
	if n <= 0 {
		return def
	}
	return n
}
