// Package htmlx provides HTML extraction primitives over the x/net/html
// node tree: visible-text flattening with deterministic whitespace
// collapsing, and matchers used to locate result blocks.
package htmlx

import (
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/net/html"
)

// skipTags never contribute visible text.
var skipTags = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
	"head":     true,
	"iframe":   true,
	"svg":      true,
}

// Parse builds the node tree for a raw HTML document.
func Parse(rawHTML string) (*html.Node, error) {
	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse html")
	}
	return doc, nil
}

// Text returns the visible text of the document as a single string,
// with scripts and styles stripped. Identical input yields identical output.
func Text(rawHTML string) (string, error) {
	doc, err := Parse(rawHTML)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	collectText(doc, &sb)
	return Collapse(sb.String()), nil
}

func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.ElementNode && skipTags[n.Data] {
		return
	}
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		sb.WriteByte(' ')
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}

// Collapse normalizes all whitespace runs to single spaces.
func Collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Attr returns the value of the named attribute, or empty.
func Attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// HasClass reports whether the element carries the given class.
func HasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(Attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

// Find returns the first element node in the subtree matching the predicate.
func Find(n *html.Node, match func(*html.Node) bool) *html.Node {
	if n.Type == html.ElementNode && match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := Find(c, match); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns all element nodes in the subtree matching the predicate,
// in document order.
func FindAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var res []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && match(n) {
			res = append(res, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return res
}

// InnerText returns the collapsed visible text of the subtree.
func InnerText(n *html.Node) string {
	var sb strings.Builder
	collectText(n, &sb)
	return Collapse(sb.String())
}
