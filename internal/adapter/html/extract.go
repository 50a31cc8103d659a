// Package html extracts indexable text from downloaded pages.
package html

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// dropSelector matches elements whose text never belongs in the index.
const dropSelector = "script, style, noscript, header, footer, nav"

// ExtractText parses an HTML page and returns its visible text with
// scripts, styles and boilerplate chrome removed.
func ExtractText(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", err
	}

	doc.Find(dropSelector).Remove()

	sel := doc.Find("body")
	if sel.Length() == 0 {
		sel = doc.Selection
	}

	var b strings.Builder
	sel.Each(func(_ int, s *goquery.Selection) {
		b.WriteString(s.Text())
		b.WriteString(" ")
	})
	return strings.TrimSpace(b.String()), nil
}
