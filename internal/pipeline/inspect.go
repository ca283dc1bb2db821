package pipeline

import (
	"fmt"
	"path"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// TemplateReport describes how a page template uses placeholders and assets.
type TemplateReport struct {
	Missing      []Key    // Placeholders absent from the template
	Repeated     []Key    // Placeholders present more than once; only the first is filled
	Stylesheets  []string // href of each <link rel="stylesheet">
	PictureInImg bool     // The picture token sits in an <img src>
}

// LinksStylesheet reports whether any stylesheet link ends in name.
func (r TemplateReport) LinksStylesheet(name string) bool {
	for _, href := range r.Stylesheets {
		if path.Base(href) == name {
			return true
		}
	}
	return false
}

// InspectTemplate reports placeholder usage and linked assets in tmpl.
// It never modifies the template; substitution still treats it as text.
func InspectTemplate(tmpl string) (TemplateReport, error) {
	var r TemplateReport
	for _, k := range Keys() {
		switch n := strings.Count(tmpl, k.Token()); {
		case n == 0:
			r.Missing = append(r.Missing, k)
		case n > 1:
			r.Repeated = append(r.Repeated, k)
		}
	}

	doc, err := parseHTML(tmpl)
	if err != nil {
		return r, fmt.Errorf("parsing template: %w", err)
	}
	walk(doc, &r)
	return r, nil
}

// parseHTML parses a full document, or a fragment in a body context.
func parseHTML(content string) (*html.Node, error) {
	trimmed := strings.ToLower(strings.TrimSpace(content))
	if strings.HasPrefix(trimmed, "<!doctype") || strings.HasPrefix(trimmed, "<html") {
		return html.Parse(strings.NewReader(content))
	}

	body := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), body)
	if err != nil {
		return nil, err
	}

	// Wrap nodes in a container for uniform traversal
	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return container, nil
}

// walk traverses the DOM collecting stylesheet links and the picture slot.
func walk(n *html.Node, r *TemplateReport) {
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.Link:
			if strings.EqualFold(attr(n, "rel"), "stylesheet") {
				r.Stylesheets = append(r.Stylesheets, attr(n, "href"))
			}
		case atom.Img:
			if strings.Contains(attr(n, "src"), KeyPicture.Token()) {
				r.PictureInImg = true
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, r)
	}
}

// attr returns the value of the named attribute, or "".
func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
