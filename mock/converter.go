package mock

import "github.com/fwojciec/crosscheck"

var (
	_ crosscheck.Converter   = (*Converter)(nil)
	_ crosscheck.TextCleaner = (*TextCleaner)(nil)
)

// Converter is a mock implementation of crosscheck.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

// TextCleaner is a mock implementation of crosscheck.TextCleaner.
type TextCleaner struct {
	CleanFn func(s string) string
}

func (c *TextCleaner) Clean(s string) string {
	return c.CleanFn(s)
}
