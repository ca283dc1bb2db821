package pipeline

import (
	"fmt"
	"strings"
)

// Per-item fragment formats. The trailing whitespace keeps the generated
// markup aligned with the indentation of the default template.
const (
	skillFormat = "<li>%s</li>\n                "

	educationFormat = "<div class=\"education-entry\">\n" +
		"                <h4>%s</h4>\n" +
		"                <p class=\"degree\">%s</p>\n" +
		"                <p class=\"year\">%s</p>\n" +
		"            </div>\n\n            "

	projectFormat = "<div class=\"project\">\n" +
		"                <h4>%d. %s</h4>\n" +
		"                <p>%s</p>\n" +
		"            </div>\n\n            "
)

// EducationEntry is one school, degree and year triple.
type EducationEntry struct {
	School string
	Degree string
	Year   string
}

// ProjectEntry is one project title and description.
type ProjectEntry struct {
	Title       string
	Description string
}

// SkillsHTML renders skills as consecutive list items.
// User text is inserted verbatim; no HTML escaping is applied.
func SkillsHTML(skills []string) string {
	var b strings.Builder
	for _, s := range skills {
		fmt.Fprintf(&b, skillFormat, s)
	}
	return b.String()
}

// EducationHTML renders each entry as an education-entry block.
func EducationHTML(entries []EducationEntry) string {
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, educationFormat, e.School, e.Degree, e.Year)
	}
	return b.String()
}

// ProjectsHTML renders each project as a numbered block, starting at 1.
func ProjectsHTML(projects []ProjectEntry) string {
	var b strings.Builder
	for i, p := range projects {
		fmt.Fprintf(&b, projectFormat, i+1, p.Title, p.Description)
	}
	return b.String()
}
