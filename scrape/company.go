package scrape

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/coverletter"
	"golang.org/x/sync/errgroup"
)

// Crawl timeouts.
const (
	DefaultLandingTimeout = 10 * time.Second
	DefaultPageTimeout    = 5 * time.Second
)

// Content limits, in runes.
const (
	MaxRawContentLength  = 5000
	MaxPageContentLength = 3000
)

// DefaultSubPaths are the well-known pages fetched under a company origin.
var DefaultSubPaths = []string{"/about", "/about-us", "/our-science", "/pipeline"}

// Category is the profile field a sub-page contributes to.
type Category int

const (
	CategoryNone Category = iota
	CategoryMission
	CategoryScience
)

// Classify routes a sub-page path to a profile category by substring match.
// Mission keywords win when a path matches both.
func Classify(path string) Category {
	p := strings.ToLower(path)
	switch {
	case strings.Contains(p, "about") || strings.Contains(p, "mission"):
		return CategoryMission
	case strings.Contains(p, "science") || strings.Contains(p, "pipeline"):
		return CategoryScience
	}
	return CategoryNone
}

// Ensure CompanyCrawler implements coverletter.CompanyCrawler at compile time.
var _ coverletter.CompanyCrawler = (*CompanyCrawler)(nil)

// CompanyCrawler builds a company profile from a landing page and a fixed
// set of sub-pages. Only the landing page is required; every sub-page is
// fetched independently and its failure contributes nothing.
type CompanyCrawler struct {
	Fetcher   coverletter.Fetcher
	Extractor coverletter.Extractor

	// Limiter, if set, gates sub-page fetches per host.
	Limiter coverletter.HostLimiter

	LandingTimeout time.Duration
	PageTimeout    time.Duration
	SubPaths       []string
}

// NewCompanyCrawler creates a CompanyCrawler with default timeouts and paths.
func NewCompanyCrawler(fetcher coverletter.Fetcher, extractor coverletter.Extractor) *CompanyCrawler {
	return &CompanyCrawler{
		Fetcher:        fetcher,
		Extractor:      extractor,
		LandingTimeout: DefaultLandingTimeout,
		PageTimeout:    DefaultPageTimeout,
		SubPaths:       DefaultSubPaths,
	}
}

// Crawl fetches the origin of rawURL and its well-known sub-pages.
func (c *CompanyCrawler) Crawl(ctx context.Context, rawURL string) *coverletter.CompanyCrawlResult {
	result := &coverletter.CompanyCrawlResult{SourceURL: rawURL}

	origin, err := Origin(rawURL)
	if err != nil {
		result.Error = reason(err)
		return result
	}
	result.SourceURL = origin

	html, err := c.fetch(ctx, origin, orDefault(c.LandingTimeout, DefaultLandingTimeout))
	if err != nil {
		result.Error = reason(err)
		return result
	}

	profile := &coverletter.CompanyProfile{}
	if landing, err := c.Extractor.Extract(html, coverletter.ModeLanding); err == nil {
		profile.Name = landing.Title
		profile.RawContent = coverletter.Truncate(landing.Text, MaxRawContentLength)
	}

	paths := c.SubPaths
	if paths == nil {
		paths = DefaultSubPaths
	}

	// Each goroutine writes only its own slot, so results stay in path
	// order regardless of completion order.
	pages := make([]string, len(paths))
	var g errgroup.Group
	for i, path := range paths {
		g.Go(func() error {
			pages[i] = c.crawlPage(ctx, origin, path)
			return nil
		})
	}
	_ = g.Wait()

	buckets := make(map[Category][]string)
	for i, path := range paths {
		if pages[i] == "" {
			continue
		}
		category := Classify(path)
		buckets[category] = append(buckets[category], pages[i])
	}
	profile.Mission = strings.Join(buckets[CategoryMission], " ")
	profile.Science = strings.Join(buckets[CategoryScience], " ")

	result.Success = true
	result.Data = profile
	return result
}

// crawlPage returns the truncated generic-mode text of a sub-page, or an
// empty string if the page could not be fetched or extracted.
func (c *CompanyCrawler) crawlPage(ctx context.Context, origin, path string) string {
	if c.Limiter != nil {
		u, err := url.Parse(origin)
		if err != nil {
			return ""
		}
		if err := c.Limiter.Wait(ctx, u.Host); err != nil {
			return ""
		}
	}

	html, err := c.fetch(ctx, origin+path, orDefault(c.PageTimeout, DefaultPageTimeout))
	if err != nil {
		return ""
	}

	page, err := c.Extractor.Extract(html, coverletter.ModeGeneric)
	if err != nil {
		return ""
	}
	return coverletter.Truncate(page.Text, MaxPageContentLength)
}

func (c *CompanyCrawler) fetch(ctx context.Context, url string, timeout time.Duration) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return c.Fetcher.Fetch(ctx, url)
}

// Origin normalizes rawURL, prefixing https:// when no scheme is present,
// and returns its scheme and host.
func Origin(rawURL string) (string, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return "", coverletter.Errorf(coverletter.EINVALID, "URL is required")
	}

	lower := strings.ToLower(rawURL)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		rawURL = "https://" + rawURL
	}

	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "", coverletter.Errorf(coverletter.EINVALID, "invalid URL %q", rawURL)
	}
	return u.Scheme + "://" + u.Host, nil
}

func orDefault(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}
