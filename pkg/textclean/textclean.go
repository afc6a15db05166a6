// Package textclean reduces free-text form input to plain text. Dashboard
// rich-text inputs submit HTML fragments for the notes field.
package textclean

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var blockSel = "p,div,li,h1,h2,h3,h4,h5,h6,tr,blockquote"

func PlainText(s string) string {
	s = strings.TrimSpace(s)
	if !strings.ContainsAny(s, "<&") {
		return s
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	body := doc.Find("body")
	if body.Children().Length() == 0 {
		// entities only; keep the author's line breaks
		return strings.TrimSpace(body.Text())
	}
	doc.Find("script,style").Remove()
	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find(blockSel).Each(func(_ int, sel *goquery.Selection) {
		sel.AppendHtml("\n")
	})
	return collapse(doc.Text())
}

func collapse(s string) string {
	lines := strings.Split(strings.ReplaceAll(s, "\r", ""), "\n")
	out := lines[:0]
	for _, ln := range lines {
		ln = strings.Join(strings.Fields(ln), " ")
		if ln != "" {
			out = append(out, ln)
		}
	}
	return strings.Join(out, "\n")
}
