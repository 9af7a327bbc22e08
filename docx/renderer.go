// Package docx implements coverletter.DocumentRenderer by writing minimal
// WordprocessingML packages with etree.
package docx

import (
	"archive/zip"
	"bytes"
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/fwojciec/coverletter"
)

// XML namespaces used in the package parts.
const (
	nsWordML        = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsContentTypes  = "http://schemas.openxmlformats.org/package/2006/content-types"
	nsRelationships = "http://schemas.openxmlformats.org/package/2006/relationships"
	relOfficeDoc    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	ctDocumentMain  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"
	ctRelationships = "application/vnd.openxmlformats-package.relationships+xml"
)

// Fixed document text.
const (
	Greeting        = "Dear Hiring Manager,"
	Closing         = "Sincerely,"
	BulletsHeading  = "ATS-Optimized Resume Bullet Points"
	DefaultRole     = "Target Role"
	Instructions    = "Replace or supplement your existing resume bullet points with these tailored versions. Prioritize bullets that most closely match the job requirements."
	DateLayout      = "January 2, 2006"
	DefaultFontName = "Calibri"
)

// Font sizes in half-points.
const (
	sizeHeading = 28
	sizeBody    = 22
	sizeNote    = 20
)

const mutedColor = "666666"

// Ensure Renderer implements coverletter.DocumentRenderer at compile time.
var _ coverletter.DocumentRenderer = (*Renderer)(nil)

// Renderer renders generated text into .docx files.
type Renderer struct {
	// Font is the typeface used for every run.
	Font string

	// Now returns the date printed on cover letters. Defaults to time.Now.
	Now func() time.Time
}

// NewRenderer creates a Renderer using DefaultFontName.
func NewRenderer() *Renderer {
	return &Renderer{Font: DefaultFontName, Now: time.Now}
}

type run struct {
	text   string
	bold   bool
	italic bool
	size   int
	color  string
}

type paragraph struct {
	runs      []run
	before    int
	after     int
	justified bool
}

// RenderCoverLetter renders letter with the candidate name, date, greeting
// and closing. Paragraphs are separated by blank lines in letter.
func (r *Renderer) RenderCoverLetter(letter, candidateName, roleTitle, companyName string) ([]byte, error) {
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}

	paras := []paragraph{
		{runs: []run{{text: candidateName, bold: true, size: sizeHeading}}, after: 100},
		{runs: []run{{text: now().Format(DateLayout), size: sizeBody}}, after: 400},
		{runs: []run{{text: Greeting, size: sizeBody}}, after: 200},
	}
	for _, p := range Paragraphs(letter) {
		paras = append(paras, paragraph{
			runs:      []run{{text: p, size: sizeBody}},
			after:     200,
			justified: true,
		})
	}
	paras = append(paras,
		paragraph{runs: []run{{text: Closing, size: sizeBody}}, before: 200, after: 100},
		paragraph{runs: []run{{text: candidateName, size: sizeBody}}},
	)

	return r.pack(paras)
}

// RenderBullets renders the bullet lines of bullets under a heading naming
// the target role and company.
func (r *Renderer) RenderBullets(bullets, roleTitle, companyName string) ([]byte, error) {
	paras := []paragraph{
		{runs: []run{{text: BulletsHeading, bold: true, size: sizeHeading}}, after: 100},
		{runs: []run{{text: Subtitle(roleTitle, companyName), italic: true, size: sizeBody, color: mutedColor}}, after: 300},
	}
	for _, b := range ParseBullets(bullets) {
		paras = append(paras, paragraph{
			runs:  []run{{text: "• " + b, size: sizeBody}},
			after: 120,
		})
	}
	paras = append(paras, paragraph{
		runs: []run{
			{text: "Instructions: ", bold: true, size: sizeNote},
			{text: Instructions, size: sizeNote, color: mutedColor},
		},
		before: 400,
	})

	return r.pack(paras)
}

// Paragraphs splits text on blank lines, trimming each paragraph and
// dropping empty ones.
func Paragraphs(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var out []string
	for _, p := range strings.Split(text, "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ParseBullets returns the lines of text that start with a bullet marker
// ("•", "-" or "*"), with the marker and following whitespace removed.
// Other lines are ignored.
func ParseBullets(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		for _, marker := range []string{"•", "-", "*"} {
			if rest, ok := strings.CutPrefix(line, marker); ok {
				out = append(out, strings.TrimSpace(rest))
				break
			}
		}
	}
	return out
}

// Subtitle returns the "Tailored for" line of the bullets document.
func Subtitle(roleTitle, companyName string) string {
	if roleTitle == "" {
		roleTitle = DefaultRole
	}
	s := "Tailored for: " + roleTitle
	if companyName != "" {
		s += " at " + companyName
	}
	return s
}

// pack zips the document parts into a .docx package.
func (r *Renderer) pack(paras []paragraph) ([]byte, error) {
	font := r.Font
	if font == "" {
		font = DefaultFontName
	}

	parts := []struct {
		name string
		doc  *etree.Document
	}{
		{"[Content_Types].xml", contentTypes()},
		{"_rels/.rels", packageRels()},
		{"word/document.xml", document(paras, font)},
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, part := range parts {
		w, err := zw.Create(part.name)
		if err != nil {
			return nil, coverletter.Errorf(coverletter.EINTERNAL, "create %s: %v", part.name, err)
		}
		if _, err := part.doc.WriteTo(w); err != nil {
			return nil, coverletter.Errorf(coverletter.EINTERNAL, "write %s: %v", part.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, coverletter.Errorf(coverletter.EINTERNAL, "close docx: %v", err)
	}
	return buf.Bytes(), nil
}

func newXMLDocument() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)
	return doc
}

func contentTypes() *etree.Document {
	doc := newXMLDocument()
	types := doc.CreateElement("Types")
	types.CreateAttr("xmlns", nsContentTypes)

	rels := types.CreateElement("Default")
	rels.CreateAttr("Extension", "rels")
	rels.CreateAttr("ContentType", ctRelationships)

	plain := types.CreateElement("Default")
	plain.CreateAttr("Extension", "xml")
	plain.CreateAttr("ContentType", "application/xml")

	override := types.CreateElement("Override")
	override.CreateAttr("PartName", "/word/document.xml")
	override.CreateAttr("ContentType", ctDocumentMain)
	return doc
}

func packageRels() *etree.Document {
	doc := newXMLDocument()
	rels := doc.CreateElement("Relationships")
	rels.CreateAttr("xmlns", nsRelationships)

	rel := rels.CreateElement("Relationship")
	rel.CreateAttr("Id", "rId1")
	rel.CreateAttr("Type", relOfficeDoc)
	rel.CreateAttr("Target", "word/document.xml")
	return doc
}

func document(paras []paragraph, font string) *etree.Document {
	doc := newXMLDocument()
	root := doc.CreateElement("w:document")
	root.CreateAttr("xmlns:w", nsWordML)
	body := root.CreateElement("w:body")

	for _, p := range paras {
		wp := body.CreateElement("w:p")
		ppr := wp.CreateElement("w:pPr")
		spacing := ppr.CreateElement("w:spacing")
		spacing.CreateAttr("w:before", strconv.Itoa(p.before))
		spacing.CreateAttr("w:after", strconv.Itoa(p.after))
		if p.justified {
			ppr.CreateElement("w:jc").CreateAttr("w:val", "both")
		}

		for _, r := range p.runs {
			wr := wp.CreateElement("w:r")
			rpr := wr.CreateElement("w:rPr")
			fonts := rpr.CreateElement("w:rFonts")
			fonts.CreateAttr("w:ascii", font)
			fonts.CreateAttr("w:hAnsi", font)
			if r.bold {
				rpr.CreateElement("w:b")
			}
			if r.italic {
				rpr.CreateElement("w:i")
			}
			if r.color != "" {
				rpr.CreateElement("w:color").CreateAttr("w:val", r.color)
			}
			rpr.CreateElement("w:sz").CreateAttr("w:val", strconv.Itoa(r.size))

			t := wr.CreateElement("w:t")
			t.CreateAttr("xml:space", "preserve")
			t.SetText(r.text)
		}
	}

	// US Letter with one inch margins, in twentieths of a point.
	sect := body.CreateElement("w:sectPr")
	size := sect.CreateElement("w:pgSz")
	size.CreateAttr("w:w", "12240")
	size.CreateAttr("w:h", "15840")
	margins := sect.CreateElement("w:pgMar")
	for _, side := range []string{"w:top", "w:right", "w:bottom", "w:left"} {
		margins.CreateAttr(side, "1440")
	}
	return doc
}
