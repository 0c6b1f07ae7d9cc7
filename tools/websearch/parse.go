package websearch

import (
	"net/url"
	"strings"

	"github.com/effective-security/agentools/pkg/htmlx"
	"golang.org/x/net/html"
)

// parseResults extracts up to MaxResults organic entries from the results
// page. Ad blocks and blocks missing a title or link are skipped; a missing
// container means no results, not a failure.
func parseResults(rawHTML string) ([]SearchResult, error) {
	doc, err := htmlx.Parse(rawHTML)
	if err != nil {
		return nil, err
	}

	container := htmlx.Find(doc, func(n *html.Node) bool {
		return n.Data == "div" && (htmlx.Attr(n, "id") == "links" || htmlx.HasClass(n, "results"))
	})
	if container == nil {
		return nil, nil
	}

	blocks := htmlx.FindAll(container, func(n *html.Node) bool {
		return n.Data == "div" && htmlx.HasClass(n, "result")
	})

	var results []SearchResult
	for _, block := range blocks {
		if len(results) == MaxResults {
			break
		}
		if htmlx.HasClass(block, "result--ad") {
			continue
		}

		anchor := htmlx.Find(block, func(n *html.Node) bool {
			return n.Data == "a" && htmlx.HasClass(n, "result__a")
		})
		if anchor == nil {
			continue
		}
		title := htmlx.InnerText(anchor)
		link := resolveLink(htmlx.Attr(anchor, "href"))
		if title == "" || link == "" {
			continue
		}

		var snippet string
		if sn := htmlx.Find(block, func(n *html.Node) bool {
			return htmlx.HasClass(n, "result__snippet")
		}); sn != nil {
			snippet = htmlx.InnerText(sn)
		}

		results = append(results, SearchResult{
			Title:   title,
			Link:    link,
			Snippet: snippet,
		})
	}
	return results, nil
}

// resolveLink unwraps the engine's redirect href
// ("//duckduckgo.com/l/?uddg=<url>") to the destination URL.
func resolveLink(href string) string {
	if href == "" {
		return ""
	}
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if strings.HasSuffix(u.Host, "duckduckgo.com") && u.Path == "/l/" {
		if dest := u.Query().Get("uddg"); dest != "" {
			return dest
		}
	}
	if u.Scheme == "" && strings.HasPrefix(href, "//") {
		return "https:" + href
	}
	return href
}
