package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestReplaceFirst(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		source      string
		token       string
		replacement string
		expected    string
	}{
		{
			name:        "token absent returns source unchanged",
			source:      "<p>hello</p>",
			token:       "{{NAME}}",
			replacement: "Ada",
			expected:    "<p>hello</p>",
		},
		{
			name:        "token absent with empty replacement",
			source:      "<p>hello</p>",
			token:       "{{NAME}}",
			replacement: "",
			expected:    "<p>hello</p>",
		},
		{
			name:        "single occurrence replaced",
			source:      "<p>{{NAME}}</p>",
			token:       "{{NAME}}",
			replacement: "Ada",
			expected:    "<p>Ada</p>",
		},
		{
			name:        "only first of two occurrences replaced",
			source:      "<h1>{{NAME}}</h1><p>{{NAME}}</p>",
			token:       "{{NAME}}",
			replacement: "Ada",
			expected:    "<h1>Ada</h1><p>{{NAME}}</p>",
		},
		{
			name:        "token at start",
			source:      "{{BIO}} tail",
			token:       "{{BIO}}",
			replacement: "x",
			expected:    "x tail",
		},
		{
			name:        "token at end",
			source:      "head {{BIO}}",
			token:       "{{BIO}}",
			replacement: "x",
			expected:    "head x",
		},
		{
			name:        "empty replacement removes token",
			source:      "<ul>{{SKILLS}}</ul>",
			token:       "{{SKILLS}}",
			replacement: "",
			expected:    "<ul></ul>",
		},
		{
			name:        "replacement containing the token is not rescanned",
			source:      "a {{NAME}} b",
			token:       "{{NAME}}",
			replacement: "{{NAME}}{{NAME}}",
			expected:    "a {{NAME}}{{NAME}} b",
		},
		{
			name:        "no regex semantics",
			source:      "a.b a+b",
			token:       "a+b",
			replacement: "sum",
			expected:    "a.b sum",
		},
		{
			name:        "empty token is not found",
			source:      "abc",
			token:       "",
			replacement: "x",
			expected:    "abc",
		},
		{
			name:        "empty source",
			source:      "",
			token:       "{{NAME}}",
			replacement: "x",
			expected:    "",
		},
		{
			name:        "multibyte text around token",
			source:      "héllo {{NAME}} wörld",
			token:       "{{NAME}}",
			replacement: "Zoë",
			expected:    "héllo Zoë wörld",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ReplaceFirst(tt.source, tt.token, tt.replacement)
			if got != tt.expected {
				t.Errorf("ReplaceFirst(%q, %q, %q) = %q, want %q",
					tt.source, tt.token, tt.replacement, got, tt.expected)
			}
		})
	}
}

func TestReplaceFirst_SourceUntouched(t *testing.T) {
	t.Parallel()

	source := "<p>{{NAME}}</p>"
	original := strings.Clone(source)

	_ = ReplaceFirst(source, "{{NAME}}", "Ada")

	if source != original {
		t.Errorf("source changed to %q, want %q", source, original)
	}
}

func TestKeys_Order(t *testing.T) {
	t.Parallel()

	want := []string{"NAME", "BIO", "ABOUT", "CONTACT", "SKILLS", "EDUCATION", "PROJECTS", "PFP"}
	got := Keys()

	if len(got) != len(want) {
		t.Fatalf("len(Keys()) = %d, want %d", len(got), len(want))
	}
	for i, k := range got {
		if string(k) != want[i] {
			t.Errorf("Keys()[%d] = %q, want %q", i, k, want[i])
		}
	}
}

func TestKey_Token(t *testing.T) {
	t.Parallel()

	if got := KeyPicture.Token(); got != "{{PFP}}" {
		t.Errorf("KeyPicture.Token() = %q, want {{PFP}}", got)
	}
}

func TestValues_Lookup(t *testing.T) {
	t.Parallel()

	v := Values{Name: "n", Bio: "b", About: "a", Contact: "c", Skills: "s", Education: "e", Projects: "p", Picture: "f"}
	want := map[Key]string{
		KeyName: "n", KeyBio: "b", KeyAbout: "a", KeyContact: "c",
		KeySkills: "s", KeyEducation: "e", KeyProjects: "p", KeyPicture: "f",
	}

	for k, w := range want {
		got, ok := v.Lookup(k)
		if !ok || got != w {
			t.Errorf("Lookup(%s) = %q, %v; want %q, true", k, got, ok, w)
		}
	}

	if _, ok := v.Lookup(Key("UNKNOWN")); ok {
		t.Error("Lookup(UNKNOWN) ok = true, want false")
	}
}

func TestSubstitute(t *testing.T) {
	t.Parallel()

	t.Run("name and skills scenario", func(t *testing.T) {
		t.Parallel()

		tmpl := "<p>{{NAME}}</p><ul>{{SKILLS}}</ul>"
		values := Values{
			Name:   "Ada",
			Skills: SkillsHTML([]string{"C", "Math"}),
		}

		got := Substitute(tmpl, values)
		want := "<p>Ada</p><ul><li>C</li>\n                <li>Math</li>\n                </ul>"
		if got != want {
			t.Errorf("Substitute() = %q, want %q", got, want)
		}
	})

	t.Run("all placeholders with empty lists", func(t *testing.T) {
		t.Parallel()

		tmpl := "{{NAME}}|{{BIO}}|{{ABOUT}}|{{CONTACT}}|{{SKILLS}}|{{EDUCATION}}|{{PROJECTS}}|{{PFP}}"
		values := Values{
			Name:      "Ada",
			Bio:       "Analyst",
			About:     "Engines",
			Contact:   "ada@example.com",
			Skills:    SkillsHTML(nil),
			Education: EducationHTML(nil),
			Projects:  ProjectsHTML(nil),
			Picture:   "assets/defaultpfp.jpg",
		}

		got := Substitute(tmpl, values)
		want := "Ada|Analyst|Engines|ada@example.com||||assets/defaultpfp.jpg"
		if got != want {
			t.Errorf("Substitute() = %q, want %q", got, want)
		}
	})

	t.Run("repeated placeholder keeps second copy", func(t *testing.T) {
		t.Parallel()

		got := Substitute("<title>{{NAME}}</title><h1>{{NAME}}</h1>", Values{Name: "Ada"})
		want := "<title>Ada</title><h1>{{NAME}}</h1>"
		if got != want {
			t.Errorf("Substitute() = %q, want %q", got, want)
		}
	})

	t.Run("user text containing a later token is substituted by later step", func(t *testing.T) {
		t.Parallel()

		// NAME runs before BIO, so a literal {{BIO}} typed as the name is
		// found first when the BIO step scans the document.
		got := Substitute("<h1>{{NAME}}</h1><p>{{BIO}}</p>", Values{Name: "{{BIO}}", Bio: "x"})
		want := "<h1>x</h1><p>{{BIO}}</p>"
		if got != want {
			t.Errorf("Substitute() = %q, want %q", got, want)
		}
	})

	t.Run("template without placeholders is unchanged", func(t *testing.T) {
		t.Parallel()

		tmpl := "<html><body>static</body></html>"
		if got := Substitute(tmpl, Values{Name: "Ada"}); got != tmpl {
			t.Errorf("Substitute() = %q, want %q", got, tmpl)
		}
	})

	t.Run("html in user text is not escaped", func(t *testing.T) {
		t.Parallel()

		got := Substitute("<p>{{BIO}}</p>", Values{Bio: `<b>"bold" & co</b>`})
		want := `<p><b>"bold" & co</b></p>`
		if got != want {
			t.Errorf("Substitute() = %q, want %q", got, want)
		}
	})
}

func TestSubstitution_Render(t *testing.T) {
	t.Parallel()

	renderer := &Substitution{}

	t.Run("matches Substitute", func(t *testing.T) {
		t.Parallel()

		tmpl := "<h1>{{NAME}}</h1><img src=\"{{PFP}}\">"
		values := Values{Name: "Ada", Picture: "assets/pfp.jpg"}

		got, err := renderer.Render(context.Background(), tmpl, values)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := Substitute(tmpl, values); got != want {
			t.Errorf("Render() = %q, want %q", got, want)
		}
	})

	t.Run("cancelled context returns no document", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		got, err := renderer.Render(ctx, "<h1>{{NAME}}</h1>", Values{Name: "Ada"})
		if !errors.Is(err, ErrRender) {
			t.Errorf("error = %v, want ErrRender", err)
		}
		if got != "" {
			t.Errorf("Render() = %q, want empty document", got)
		}
	})
}
