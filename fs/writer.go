// Package fs writes rendered application documents to disk.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/coverletter"
)

// Sanitize makes a generated filename safe to use as a single path element.
// Example: Cover_Letter_R/D_Labs.docx → Cover_Letter_R_D_Labs.docx
func Sanitize(name string) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', 0:
			return '_'
		}
		return r
	}, name)
	if name == "" || name == "." || name == ".." {
		return "_"
	}
	return name
}

// Writer renders sessions and writes them as .docx files to a directory.
type Writer struct {
	baseDir  string
	renderer coverletter.DocumentRenderer
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string, renderer coverletter.DocumentRenderer) *Writer {
	return &Writer{baseDir: baseDir, renderer: renderer}
}

// WriteSession renders the cover letter and bullets of session and writes
// both documents, returning the paths written.
func (w *Writer) WriteSession(ctx context.Context, session *coverletter.Session, candidateName string) ([]string, error) {
	if session == nil {
		return nil, coverletter.Errorf(coverletter.EINVALID, "session required")
	}

	letter, err := w.renderer.RenderCoverLetter(session.CoverLetter, candidateName, session.RoleTitle, session.CompanyName)
	if err != nil {
		return nil, err
	}
	bullets, err := w.renderer.RenderBullets(session.Bullets, session.RoleTitle, session.CompanyName)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return nil, err
	}

	docs := []struct {
		name string
		data []byte
	}{
		{coverletter.CoverLetterFilename(session.CompanyName, candidateName), letter},
		{coverletter.BulletsFilename(session.CompanyName, candidateName), bullets},
	}

	paths := make([]string, 0, len(docs))
	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return paths, err
		}
		fullPath := filepath.Join(w.baseDir, Sanitize(doc.name))
		if err := os.WriteFile(fullPath, doc.data, 0644); err != nil {
			return paths, err
		}
		paths = append(paths, fullPath)
	}
	return paths, nil
}
