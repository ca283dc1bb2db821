package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrRender indicates the substitution pipeline did not complete.
var ErrRender = errors.New("template rendering failed")

// Key names a placeholder. The token in the template is "{{" + key + "}}".
type Key string

// Known placeholder keys.
const (
	KeyName      Key = "NAME"
	KeyBio       Key = "BIO"
	KeyAbout     Key = "ABOUT"
	KeyContact   Key = "CONTACT"
	KeySkills    Key = "SKILLS"
	KeyEducation Key = "EDUCATION"
	KeyProjects  Key = "PROJECTS"
	KeyPicture   Key = "PFP"
)

// Keys returns the placeholder keys in substitution order.
func Keys() []Key {
	return []Key{
		KeyName,
		KeyBio,
		KeyAbout,
		KeyContact,
		KeySkills,
		KeyEducation,
		KeyProjects,
		KeyPicture,
	}
}

// Token returns the literal placeholder marker for k, e.g. "{{NAME}}".
func (k Key) Token() string {
	return "{{" + string(k) + "}}"
}

// Values binds one replacement string to each placeholder key.
// List fields (Skills, Education, Projects) hold already-built HTML fragments.
type Values struct {
	Name      string
	Bio       string
	About     string
	Contact   string
	Skills    string
	Education string
	Projects  string
	Picture   string
}

// Lookup returns the value bound to k.
func (v Values) Lookup(k Key) (string, bool) {
	switch k {
	case KeyName:
		return v.Name, true
	case KeyBio:
		return v.Bio, true
	case KeyAbout:
		return v.About, true
	case KeyContact:
		return v.Contact, true
	case KeySkills:
		return v.Skills, true
	case KeyEducation:
		return v.Education, true
	case KeyProjects:
		return v.Projects, true
	case KeyPicture:
		return v.Picture, true
	}
	return "", false
}

// ReplaceFirst returns source with the first occurrence of token replaced by
// replacement. Later occurrences of token are left as they are.
// If token is empty or absent, source is returned unchanged.
func ReplaceFirst(source, token, replacement string) string {
	if token == "" {
		return source
	}

	idx := strings.Index(source, token)
	if idx == -1 {
		return source
	}

	return source[:idx] + replacement + source[idx+len(token):]
}

// Substitute replaces each known placeholder once, in Keys() order.
// A placeholder that appears twice keeps its second occurrence.
func Substitute(template string, values Values) string {
	doc := template
	for _, k := range Keys() {
		v, _ := values.Lookup(k)
		doc = ReplaceFirst(doc, k.Token(), v)
	}
	return doc
}

// Renderer runs the substitution steps with cancellation checks between them.
type Renderer interface {
	Render(ctx context.Context, template string, values Values) (string, error)
}

// Substitution is the default Renderer.
type Substitution struct{}

// Render applies every placeholder substitution to template.
// It returns the finished document only after all steps ran; a cancelled
// context yields an error and no partial document.
func (s *Substitution) Render(ctx context.Context, template string, values Values) (string, error) {
	doc := template
	for _, k := range Keys() {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("%w: before %s: %v", ErrRender, k.Token(), err)
		}
		v, _ := values.Lookup(k)
		doc = ReplaceFirst(doc, k.Token(), v)
	}
	return doc, nil
}

// Compile-time interface check.
var _ Renderer = (*Substitution)(nil)
