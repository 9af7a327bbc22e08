package coverletter

import "strings"

// DocumentRenderer lays finalized text into downloadable documents.
type DocumentRenderer interface {
	RenderCoverLetter(letter, candidateName, roleTitle, companyName string) ([]byte, error)
	RenderBullets(bullets, roleTitle, companyName string) ([]byte, error)
}

// CoverLetterFilename returns the download filename for a cover letter.
func CoverLetterFilename(companyName, candidateName string) string {
	if companyName == "" {
		companyName = "Application"
	}
	return "Cover_Letter_" + companyName + "_" + underscore(candidateName) + ".docx"
}

// BulletsFilename returns the download filename for resume bullets.
func BulletsFilename(companyName, candidateName string) string {
	if companyName == "" {
		companyName = "Optimized"
	}
	return "Resume_Bullets_" + companyName + "_" + underscore(candidateName) + ".docx"
}

func underscore(s string) string {
	return strings.Join(strings.Fields(s), "_")
}
