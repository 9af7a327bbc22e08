package coverletter_test

import (
	"testing"

	"github.com/fwojciec/coverletter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile_Text(t *testing.T) {
	t.Parallel()

	p := &coverletter.Profile{
		Name:    "Jordan Avery",
		Contact: coverletter.Contact{Email: "jordan@example.com", Phone: "555-0100"},
		Education: []coverletter.Education{
			{Degree: "M.S. Bioengineering", School: "State University", GPA: "3.8/4.0", Date: "2025"},
		},
		Experience: []coverletter.Position{
			{Title: "QA Engineer", Organization: "Devices Inc", Dates: "2023 - 2024", Bullets: []string{"Validated firmware."}},
		},
		Skills: []coverletter.SkillGroup{
			{Name: "Regulatory", Items: []string{"ISO 13485", "IEC 62304"}},
		},
	}

	text := p.Text()

	assert.Contains(t, text, "# Jordan Avery\n")
	assert.Contains(t, text, "jordan@example.com | 555-0100\n")
	assert.Contains(t, text, "## Education\n**M.S. Bioengineering** | State University | GPA: 3.8/4.0 | 2025\n")
	assert.Contains(t, text, "## Experience\n**QA Engineer** | Devices Inc | 2023 - 2024\n- Validated firmware.\n")
	assert.Contains(t, text, "**Regulatory:** ISO 13485, IEC 62304\n")
	assert.NotContains(t, text, "## Projects")
}

func TestProfile_Validate(t *testing.T) {
	t.Parallel()

	err := (&coverletter.Profile{}).Validate()

	require.Error(t, err)
	assert.Equal(t, coverletter.EINVALID, coverletter.ErrorCode(err))
	assert.NoError(t, (&coverletter.Profile{Name: "Jordan"}).Validate())
}

func TestFilenames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Cover_Letter_Acme_Jordan_Avery.docx", coverletter.CoverLetterFilename("Acme", "Jordan Avery"))
	assert.Equal(t, "Cover_Letter_Application_Jordan_Avery.docx", coverletter.CoverLetterFilename("", "Jordan Avery"))
	assert.Equal(t, "Resume_Bullets_Acme_Jordan_Avery.docx", coverletter.BulletsFilename("Acme", "Jordan Avery"))
	assert.Equal(t, "Resume_Bullets_Optimized_Jordan_Avery.docx", coverletter.BulletsFilename("", "Jordan Avery"))
}
