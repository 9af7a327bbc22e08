// Package goquery implements coverletter.Extractor with CSS selector
// cascades evaluated over a goquery document.
package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/coverletter"
)

// MinContentLength is the rune count a cascade candidate must exceed to be
// accepted before the body fallback.
const MinContentLength = 200

// Title length bounds, in runes, inclusive.
const (
	MinTitleLength = 5
	MaxTitleLength = coverletter.MaxTitleLength
)

// NoiseSelector matches elements that never contribute text in any mode.
const NoiseSelector = "script, style, noscript, iframe, nav, footer, header, aside"

// PostingCascade lists job description containers in priority order.
// The final entry is the body fallback.
var PostingCascade = []string{
	".job-description",
	".description",
	"#job-description",
	`[data-automation="jobDescription"]`,
	".jobs-description",
	".job-details",
	".posting-requirements",
	"article",
	".content",
	"main",
	"body",
}

// GenericCascade lists main content containers for arbitrary site pages.
var GenericCascade = []string{
	"main",
	"article",
	".content",
	"body",
}

// TitleCascade lists posting title candidates in priority order.
var TitleCascade = []string{
	"h1",
	".job-title",
	".posting-title",
	`[data-automation="job-title"]`,
}

// Ensure Extractor implements coverletter.Extractor at compile time.
var _ coverletter.Extractor = (*Extractor)(nil)

// Extractor extracts readable text from HTML using selector cascades.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses html and returns the cleaned text for the given mode.
func (e *Extractor) Extract(html string, mode coverletter.ExtractMode) (*coverletter.ExtractResult, error) {
	if strings.TrimSpace(html) == "" {
		return nil, coverletter.Errorf(coverletter.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, coverletter.Errorf(coverletter.EINVALID, "failed to parse HTML: %v", err)
	}

	switch mode {
	case coverletter.ModePosting:
		doc.Find(NoiseSelector).Remove()
		text, selector := SelectText(doc.Selection, PostingCascade)
		return &coverletter.ExtractResult{
			Title:    SelectTitle(doc.Selection, TitleCascade),
			Text:     text,
			Selector: selector,
		}, nil

	case coverletter.ModeGeneric:
		doc.Find(NoiseSelector).Remove()
		text, selector := SelectText(doc.Selection, GenericCascade)
		return &coverletter.ExtractResult{Text: text, Selector: selector}, nil

	case coverletter.ModeLanding:
		// The name comes from the head and headings, so derive it before
		// headers are stripped.
		name := CompanyName(doc.Selection)
		doc.Find(NoiseSelector).Remove()
		return &coverletter.ExtractResult{
			Title:    name,
			Text:     NormalizeText(doc.Find("body").Text()),
			Selector: "body",
		}, nil
	}

	return nil, coverletter.Errorf(coverletter.EINVALID, "unknown extract mode %d", mode)
}

// SelectText evaluates cascade in order and returns the normalized text of
// the first selector whose text exceeds MinContentLength, along with that
// selector. Selectors that match nothing are skipped. When no candidate is
// long enough, the last matching candidate is returned regardless of length.
func SelectText(root *goquery.Selection, cascade []string) (text, selector string) {
	for _, sel := range cascade {
		found := root.Find(sel)
		if found.Length() == 0 {
			continue
		}
		text, selector = NormalizeText(found.Text()), sel
		if utf8.RuneCountInString(text) > MinContentLength {
			break
		}
	}
	return text, selector
}

// SelectTitle returns the normalized text of the first element matched by
// cascade whose length is within [MinTitleLength, MaxTitleLength].
// Returns an empty string when no candidate qualifies.
func SelectTitle(root *goquery.Selection, cascade []string) string {
	for _, sel := range cascade {
		found := root.Find(sel).First()
		if found.Length() == 0 {
			continue
		}
		title := NormalizeText(found.Text())
		n := utf8.RuneCountInString(title)
		if n >= MinTitleLength && n <= MaxTitleLength {
			return title
		}
	}
	return ""
}

// CompanyName derives a company name from the document title, taking the
// text before the first "|" and then before the first "-". Falls back to
// the first h1 when the title yields nothing.
func CompanyName(root *goquery.Selection) string {
	title := root.Find("title").First().Text()
	title, _, _ = strings.Cut(title, "|")
	title, _, _ = strings.Cut(title, "-")
	if name := NormalizeText(title); name != "" {
		return name
	}
	return NormalizeText(root.Find("h1").First().Text())
}

// NormalizeText collapses runs of whitespace, including newlines, into a
// single space and trims the result.
func NormalizeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
