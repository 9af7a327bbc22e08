package coverletter

// ExtractMode selects the selector cascade used by an Extractor.
type ExtractMode int

const (
	// ModePosting extracts a job description and a posting title.
	ModePosting ExtractMode = iota

	// ModeGeneric extracts the main content of an arbitrary site page.
	ModeGeneric

	// ModeLanding extracts the whole body text of a company landing page
	// and derives the company name from the document title.
	ModeLanding
)

// String returns the mode name used in logs.
func (m ExtractMode) String() string {
	switch m {
	case ModePosting:
		return "posting"
	case ModeGeneric:
		return "generic"
	case ModeLanding:
		return "landing"
	}
	return "unknown"
}

// ExtractResult holds the cleaned text extracted from an HTML page.
type ExtractResult struct {
	// Title is the posting title in ModePosting and the company name in
	// ModeLanding. It may be empty.
	Title string

	// Text is whitespace-normalized natural-language text.
	Text string

	// Selector is the cascade entry the text was taken from.
	Selector string
}

// Extractor extracts readable text from raw HTML.
type Extractor interface {
	// Extract parses html and returns the cleaned text for the given mode.
	// Short content is never an error: the body text is used as a fallback.
	Extract(html string, mode ExtractMode) (*ExtractResult, error)
}
