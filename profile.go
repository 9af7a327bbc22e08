package coverletter

import (
	"fmt"
	"strings"
)

// Profile is the candidate whose documents are generated.
type Profile struct {
	Name       string       `json:"name"`
	Contact    Contact      `json:"contact"`
	Education  []Education  `json:"education"`
	Experience []Position   `json:"experience"`
	Projects   []Position   `json:"projects"`
	Skills     []SkillGroup `json:"skills"`
}

// Contact holds the candidate's contact details.
type Contact struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	LinkedIn string `json:"linkedin"`
}

// Education is a single degree.
type Education struct {
	Degree   string `json:"degree"`
	School   string `json:"school"`
	Location string `json:"location"`
	GPA      string `json:"gpa"`
	Date     string `json:"date"`
	Details  string `json:"details"`
}

// Position is a job or project with achievement bullets.
type Position struct {
	Title        string   `json:"title"`
	Organization string   `json:"organization"`
	Location     string   `json:"location"`
	Dates        string   `json:"dates"`
	Bullets      []string `json:"bullets"`
}

// SkillGroup is a named list of skills.
type SkillGroup struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

// Validate returns an error if the profile contains invalid fields.
func (p *Profile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return Errorf(EINVALID, "profile name required")
	}
	return nil
}

// Text renders the profile as the resume text given to prompts.
func (p *Profile) Text() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n", p.Name)
	fmt.Fprintf(&sb, "%s\n\n", joinNonEmpty(" | ", p.Contact.Email, p.Contact.Phone, p.Contact.LinkedIn))

	if len(p.Education) > 0 {
		sb.WriteString("## Education\n")
		for _, edu := range p.Education {
			gpa := ""
			if edu.GPA != "" {
				gpa = "GPA: " + edu.GPA
			}
			fmt.Fprintf(&sb, "**%s** | %s\n", edu.Degree, joinNonEmpty(" | ", edu.School, edu.Location, gpa, edu.Date))
			if edu.Details != "" {
				fmt.Fprintf(&sb, "%s\n", edu.Details)
			}
			sb.WriteString("\n")
		}
	}

	writePositions(&sb, "Experience", p.Experience)
	writePositions(&sb, "Projects", p.Projects)

	if len(p.Skills) > 0 {
		sb.WriteString("## Skills\n")
		for _, g := range p.Skills {
			fmt.Fprintf(&sb, "**%s:** %s\n", g.Name, strings.Join(g.Items, ", "))
		}
	}

	return sb.String()
}

func writePositions(sb *strings.Builder, heading string, positions []Position) {
	if len(positions) == 0 {
		return
	}
	fmt.Fprintf(sb, "## %s\n", heading)
	for _, pos := range positions {
		fmt.Fprintf(sb, "**%s** | %s\n", pos.Title, joinNonEmpty(" | ", pos.Organization, pos.Location, pos.Dates))
		for _, b := range pos.Bullets {
			fmt.Fprintf(sb, "- %s\n", b)
		}
		sb.WriteString("\n")
	}
}

func joinNonEmpty(sep string, parts ...string) string {
	var out []string
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}
