package source

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// HTML extracts tree listings from saved HTML pages (tree -H output, or a
// listing pasted into a page). Listings survive inside <pre> blocks; when no
// block carries one, the page's visible text is used instead.
type HTML struct{}

func (p *HTML) Extract(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	var pres []string
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "pre" {
			if t := textContent(n); looksLikeTree(t) {
				pres = append(pres, t)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(doc)

	if len(pres) > 0 {
		return strings.Join(pres, "\n"), nil
	}

	// Fall back to visible text, skipping non-content elements.
	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "head":
				return
			}
		}
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return buf.String(), nil
}

// textContent concatenates the text nodes under n without reflowing, so the
// indentation tree lines depend on survives.
func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return buf.String()
}
