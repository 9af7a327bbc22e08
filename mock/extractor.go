package mock

import "github.com/fwojciec/coverletter"

var _ coverletter.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of coverletter.Extractor.
type Extractor struct {
	ExtractFn func(html string, mode coverletter.ExtractMode) (*coverletter.ExtractResult, error)
}

func (e *Extractor) Extract(html string, mode coverletter.ExtractMode) (*coverletter.ExtractResult, error) {
	return e.ExtractFn(html, mode)
}
