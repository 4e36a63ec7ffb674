package input

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ReadSitemap returns the <loc> values of an XML sitemap in document order.
// Both <urlset> sitemaps and <sitemapindex> files are accepted.
func ReadSitemap(r io.Reader) ([]string, error) {
	decoder := xml.NewDecoder(r)

	var items []string
	root := ""
	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("invalid sitemap XML: %w", err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if root == "" {
			root = start.Name.Local
			if root != "urlset" && root != "sitemapindex" {
				return nil, fmt.Errorf("unexpected sitemap root element <%s> (want <urlset> or <sitemapindex>)", root)
			}
			continue
		}
		if start.Name.Local != "loc" {
			continue
		}

		var loc string
		if err := decoder.DecodeElement(&loc, &start); err != nil {
			return nil, fmt.Errorf("invalid <loc> element: %w", err)
		}
		if loc = strings.TrimSpace(loc); loc != "" {
			items = append(items, loc)
		}
	}

	if root == "" {
		return nil, errors.New("empty sitemap document")
	}
	return items, nil
}
