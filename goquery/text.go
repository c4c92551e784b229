package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// DirectText returns the first non-blank text node that is a direct child
// of n, trimmed. Text inside nested elements is ignored, so a label such as
// <h3>Life</h3> in front of the value does not leak into the result.
// A nil node yields "".
func DirectText(n *html.Node) string {
	if n == nil {
		return ""
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.TextNode {
			continue
		}
		if s := strings.TrimSpace(c.Data); s != "" {
			return s
		}
	}
	return ""
}

// selectionDirectText applies DirectText to the first node of sel.
func selectionDirectText(sel *goquery.Selection) string {
	if sel.Length() == 0 {
		return ""
	}
	return DirectText(sel.Get(0))
}

// firstText returns the trimmed text of the first element matching selector
// within sel, including nested elements.
func firstText(sel *goquery.Selection, selector string) string {
	return strings.TrimSpace(sel.Find(selector).First().Text())
}
