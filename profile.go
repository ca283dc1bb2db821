package portfolio

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/alnah/go-portfolio/internal/pipeline"
	"github.com/alnah/go-portfolio/internal/yamlutil"
)

// Hard input limits. Callers may enforce tighter ones with CheckLimits.
const (
	MaxFieldLength = 1000 // Characters per text field
	MaxItems       = 10   // Entries per list
)

// validate is safe for concurrent use and caches struct metadata.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Profile is everything a portfolio page shows about one person.
// Empty strings and empty lists are valid.
type Profile struct {
	Name      string      `yaml:"name" validate:"max=1000"`
	Bio       string      `yaml:"bio" validate:"max=1000"`
	About     string      `yaml:"about" validate:"max=1000"`
	Contact   string      `yaml:"contact" validate:"max=1000"`
	Skills    []string    `yaml:"skills" validate:"max=10,dive,max=1000"`
	Education []Education `yaml:"education" validate:"max=10,dive"`
	Projects  []Project   `yaml:"projects" validate:"max=10,dive"`
}

// Education is one school entry.
type Education struct {
	School string `yaml:"school" validate:"max=1000"`
	Degree string `yaml:"degree" validate:"max=1000"`
	Year   string `yaml:"year" validate:"max=1000"`
}

// Project is one project entry.
type Project struct {
	Title       string `yaml:"title" validate:"max=1000"`
	Description string `yaml:"description" validate:"max=1000"`
}

// Validate checks the hard limits on text length and list size.
func (p *Profile) Validate() error {
	if p == nil {
		return ErrNilProfile
	}
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidProfile, describeValidation(err))
	}
	return nil
}

// CheckLimits enforces limits tighter than the hard ones.
// Non-positive maxField disables the text check.
func (p *Profile) CheckLimits(maxField, maxItems int) error {
	if err := p.Validate(); err != nil {
		return err
	}

	lists := []struct {
		name string
		n    int
	}{
		{"skills", len(p.Skills)},
		{"education", len(p.Education)},
		{"projects", len(p.Projects)},
	}
	for _, l := range lists {
		if l.n > maxItems {
			return fmt.Errorf("%w: %s has %d entries (max %d)", ErrInvalidProfile, l.name, l.n, maxItems)
		}
	}

	if maxField <= 0 {
		return nil
	}
	for field, value := range p.textFields() {
		if n := utf8.RuneCountInString(value); n > maxField {
			return fmt.Errorf("%w: %s is %d characters (max %d)", ErrInvalidProfile, field, n, maxField)
		}
	}
	return nil
}

// textFields returns every free-text value keyed by its YAML path.
func (p *Profile) textFields() map[string]string {
	fields := map[string]string{
		"name":    p.Name,
		"bio":     p.Bio,
		"about":   p.About,
		"contact": p.Contact,
	}
	for i, s := range p.Skills {
		fields[fmt.Sprintf("skills[%d]", i)] = s
	}
	for i, e := range p.Education {
		fields[fmt.Sprintf("education[%d].school", i)] = e.School
		fields[fmt.Sprintf("education[%d].degree", i)] = e.Degree
		fields[fmt.Sprintf("education[%d].year", i)] = e.Year
	}
	for i, pr := range p.Projects {
		fields[fmt.Sprintf("projects[%d].title", i)] = pr.Title
		fields[fmt.Sprintf("projects[%d].description", i)] = pr.Description
	}
	return fields
}

// describeValidation turns validator errors into a short message.
func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.TrimPrefix(fe.Namespace(), "Profile.")
		msgs = append(msgs, fmt.Sprintf("%s exceeds %s=%s", field, fe.Tag(), fe.Param()))
	}
	return strings.Join(msgs, "; ")
}

// values builds the placeholder values for p. about replaces p.About so
// callers can pass a rendered version.
func (p *Profile) values(about, picture string) pipeline.Values {
	education := make([]pipeline.EducationEntry, len(p.Education))
	for i, e := range p.Education {
		education[i] = pipeline.EducationEntry{School: e.School, Degree: e.Degree, Year: e.Year}
	}
	projects := make([]pipeline.ProjectEntry, len(p.Projects))
	for i, pr := range p.Projects {
		projects[i] = pipeline.ProjectEntry{Title: pr.Title, Description: pr.Description}
	}

	return pipeline.Values{
		Name:      p.Name,
		Bio:       p.Bio,
		About:     about,
		Contact:   p.Contact,
		Skills:    pipeline.SkillsHTML(p.Skills),
		Education: pipeline.EducationHTML(education),
		Projects:  pipeline.ProjectsHTML(projects),
		Picture:   picture,
	}
}

// LoadProfile reads a YAML profile file and validates it.
// Unknown keys are rejected.
func LoadProfile(path string) (*Profile, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrProfileNotFound)
	}

	p := &Profile{}
	if err := yamlutil.ReadFileStrict(path, p); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, path)
		}
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return nil, fmt.Errorf("reading profile: %w", err)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// MarshalProfile encodes p as YAML.
func MarshalProfile(p *Profile) ([]byte, error) {
	if p == nil {
		return nil, ErrNilProfile
	}
	return yamlutil.Marshal(p)
}

// ExampleProfile returns a filled-in profile used to scaffold profile.yaml.
func ExampleProfile() *Profile {
	return &Profile{
		Name:    "Ada Lovelace",
		Bio:     "Analyst, metaphysician, and founder of scientific computing",
		About:   "I write programs for machines that do not exist yet.",
		Contact: "ada@example.com",
		Skills:  []string{"Mathematics", "Algorithms", "Technical writing"},
		Education: []Education{
			{School: "Home tutoring", Degree: "Mathematics and science", Year: "1828-1835"},
		},
		Projects: []Project{
			{Title: "Notes on the Analytical Engine", Description: "First published algorithm intended for a machine."},
		},
	}
}
