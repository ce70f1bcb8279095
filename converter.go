package crosscheck

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms an HTML fragment into Markdown.
	Convert(html string) (string, error)
}

// TextCleaner reduces provider text that may carry markup or entities
// (e.g. "<b>coffee</b> &amp; health") to plain display text.
type TextCleaner interface {
	Clean(s string) string
}
