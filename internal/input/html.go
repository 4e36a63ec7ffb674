package input

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ReadHTMLLinks returns the href of every anchor in an HTML page, in
// document order. Fragment-only links are skipped and duplicates keep their
// first position.
func ReadHTMLLinks(r io.Reader) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("invalid HTML: %w", err)
	}

	seen := make(map[string]bool)
	var items []string
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" || strings.HasPrefix(href, "#") {
			return
		}
		if seen[href] {
			return
		}
		seen[href] = true
		items = append(items, href)
	})
	return items, nil
}
