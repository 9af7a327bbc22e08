package mock

import "github.com/fwojciec/coverletter"

var _ coverletter.DocumentRenderer = (*DocumentRenderer)(nil)

// DocumentRenderer is a mock implementation of coverletter.DocumentRenderer.
type DocumentRenderer struct {
	RenderCoverLetterFn func(letter, candidateName, roleTitle, companyName string) ([]byte, error)
	RenderBulletsFn     func(bullets, roleTitle, companyName string) ([]byte, error)
}

func (r *DocumentRenderer) RenderCoverLetter(letter, candidateName, roleTitle, companyName string) ([]byte, error) {
	return r.RenderCoverLetterFn(letter, candidateName, roleTitle, companyName)
}

func (r *DocumentRenderer) RenderBullets(bullets, roleTitle, companyName string) ([]byte, error) {
	return r.RenderBulletsFn(bullets, roleTitle, companyName)
}
