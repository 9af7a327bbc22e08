// Package yaml loads coverletter.Profile values from YAML documents.
package yaml

import (
	"bytes"
	_ "embed"
	"errors"
	"io"
	"os"

	"github.com/fwojciec/coverletter"
	"gopkg.in/yaml.v3"
)

//go:embed profile.yaml
var defaultProfile []byte

// ProfileLoader reads the candidate profile from Path, or from the embedded
// sample profile when Path is empty.
type ProfileLoader struct {
	Path string
}

// NewProfileLoader creates a ProfileLoader for path.
func NewProfileLoader(path string) *ProfileLoader {
	return &ProfileLoader{Path: path}
}

// Load reads, decodes and validates the profile.
func (l *ProfileLoader) Load() (*coverletter.Profile, error) {
	if l.Path == "" {
		return Parse(defaultProfile)
	}

	data, err := os.ReadFile(l.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, coverletter.Errorf(coverletter.ENOTFOUND, "profile file %q not found", l.Path)
		}
		return nil, coverletter.Errorf(coverletter.EINTERNAL, "read profile: %v", err)
	}
	return Parse(data)
}

// DefaultProfile returns the embedded sample profile.
func DefaultProfile() *coverletter.Profile {
	p, err := Parse(defaultProfile)
	if err != nil {
		panic("embedded profile is invalid: " + err.Error())
	}
	return p
}

// rawProfile mirrors the YAML layout (snake_case keys, flat contact block).
type rawProfile struct {
	Name       string          `yaml:"name"`
	Contact    rawContact      `yaml:"contact"`
	Education  []rawEducation  `yaml:"education"`
	Experience []rawPosition   `yaml:"experience"`
	Projects   []rawPosition   `yaml:"projects"`
	Skills     []rawSkillGroup `yaml:"skills"`
}

type rawContact struct {
	Email    string `yaml:"email"`
	Phone    string `yaml:"phone"`
	LinkedIn string `yaml:"linkedin"`
}

type rawEducation struct {
	Degree   string `yaml:"degree"`
	School   string `yaml:"school"`
	Location string `yaml:"location"`
	GPA      string `yaml:"gpa"`
	Date     string `yaml:"date"`
	Details  string `yaml:"details"`
}

type rawPosition struct {
	Title        string   `yaml:"title"`
	Organization string   `yaml:"organization"`
	Location     string   `yaml:"location"`
	Dates        string   `yaml:"dates"`
	Bullets      []string `yaml:"bullets"`
}

type rawSkillGroup struct {
	Name  string   `yaml:"name"`
	Items []string `yaml:"items"`
}

// Parse decodes and validates a YAML profile. Unknown keys are rejected.
func Parse(data []byte) (*coverletter.Profile, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var raw rawProfile
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, coverletter.Errorf(coverletter.EINVALID, "profile is empty")
		}
		return nil, coverletter.Errorf(coverletter.EINVALID, "parse profile: %v", err)
	}

	p := &coverletter.Profile{
		Name: raw.Name,
		Contact: coverletter.Contact{
			Email:    raw.Contact.Email,
			Phone:    raw.Contact.Phone,
			LinkedIn: raw.Contact.LinkedIn,
		},
		Experience: positions(raw.Experience),
		Projects:   positions(raw.Projects),
	}
	for _, e := range raw.Education {
		p.Education = append(p.Education, coverletter.Education(e))
	}
	for _, s := range raw.Skills {
		p.Skills = append(p.Skills, coverletter.SkillGroup(s))
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func positions(raw []rawPosition) []coverletter.Position {
	var out []coverletter.Position
	for _, r := range raw {
		out = append(out, coverletter.Position(r))
	}
	return out
}
