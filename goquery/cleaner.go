// Package goquery reduces provider markup to plain text for terminal display.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/crosscheck"
)

var _ crosscheck.TextCleaner = (*TextCleaner)(nil)

// TextCleaner strips tags and decodes entities in titles and snippets.
type TextCleaner struct{}

// NewTextCleaner creates a new TextCleaner.
func NewTextCleaner() *TextCleaner {
	return &TextCleaner{}
}

// Clean returns the text content of s with runs of whitespace collapsed
// to single spaces. Input that cannot be parsed is returned with only its
// whitespace collapsed.
func (c *TextCleaner) Clean(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return collapseWhitespace(s)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return collapseWhitespace(s)
	}

	// Script and style bodies are not display text.
	doc.Find("script, style").Remove()

	return collapseWhitespace(doc.Text())
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
