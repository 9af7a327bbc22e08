// Package scrape fetches job postings and company websites and turns them
// into cleaned text using a coverletter.Fetcher and coverletter.Extractor.
package scrape

import (
	"github.com/fwojciec/coverletter"
)

// reason returns a human-readable failure message for err.
func reason(err error) string {
	if coverletter.ErrorCode(err) == coverletter.EINTERNAL {
		return err.Error()
	}
	return coverletter.ErrorMessage(err)
}
