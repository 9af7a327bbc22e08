package coverletter

import (
	"strings"
	"unicode/utf8"
)

// Summary section limits, in runes.
const (
	MaxSummaryMissionLength = 2000
	MaxSummaryScienceLength = 2000
	MaxSummaryRawLength     = 3000
)

// NoCompanyInfo is returned by SummarizeCompany when the profile is empty.
const NoCompanyInfo = "No detailed company information could be extracted."

// CompanyProfile accumulates text scraped from a company website.
// Empty fields are a valid outcome of a sparse crawl.
type CompanyProfile struct {
	Name    string `json:"name"`
	Mission string `json:"mission"`
	Science string `json:"science"`

	// RawContent is a bounded snapshot of the landing page body text.
	RawContent string `json:"rawContent"`
}

// SummarizeCompany reduces a profile into a bounded block of text suitable
// for a prompt. The result is never empty.
func SummarizeCompany(p *CompanyProfile) string {
	if p == nil {
		return NoCompanyInfo
	}

	name := strings.TrimSpace(p.Name)
	mission := strings.TrimSpace(p.Mission)
	science := strings.TrimSpace(p.Science)
	raw := strings.TrimSpace(p.RawContent)

	var sb strings.Builder
	if name != "" {
		sb.WriteString("Company: ")
		sb.WriteString(name)
		sb.WriteString("\n\n")
	}
	if mission != "" {
		sb.WriteString("About/Mission:\n")
		sb.WriteString(Truncate(mission, MaxSummaryMissionLength))
		sb.WriteString("\n\n")
	}
	if science != "" {
		sb.WriteString("Science/Pipeline:\n")
		sb.WriteString(Truncate(science, MaxSummaryScienceLength))
		sb.WriteString("\n\n")
	}
	if mission == "" && science == "" && raw != "" {
		sb.WriteString("Website Content:\n")
		sb.WriteString(Truncate(raw, MaxSummaryRawLength))
		sb.WriteString("\n")
	}

	if sb.Len() == 0 {
		return NoCompanyInfo
	}
	return sb.String()
}

// Truncate returns the first n runes of s.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
