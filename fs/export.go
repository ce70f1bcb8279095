// Package fs exports saved comparisons as markdown files.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fwojciec/crosscheck"
)

var _ crosscheck.ComparisonExporter = (*Exporter)(nil)

// maxSlugLength bounds the query part of exported file names.
const maxSlugLength = 48

// markerFile marks a directory as written by Exporter. Only such
// directories, or empty ones, are ever replaced.
const markerFile = ".crosscheck-export"

// Exporter writes comparisons with update-all-or-nothing semantics.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
// An existing baseDir/name is replaced only when it is empty or holds a
// previous export.
type Exporter struct {
	baseDir string
	name    string
	conv    crosscheck.Converter

	prepared bool
}

// NewExporter creates a new Exporter. conv converts snippets to markdown
// and may be nil.
func NewExporter(baseDir, name string, conv crosscheck.Converter) *Exporter {
	return &Exporter{
		baseDir: baseDir,
		name:    name,
		conv:    conv,
	}
}

func (e *Exporter) tempDir() string {
	return filepath.Join(e.baseDir, e.name+".tmp")
}

func (e *Exporter) finalDir() string {
	return filepath.Join(e.baseDir, e.name)
}

// prepare checks that both directories may be replaced, then starts a
// fresh temp dir so files left by an interrupted export are never published.
func (e *Exporter) prepare() error {
	if e.prepared {
		return nil
	}
	if err := checkReplaceable(e.finalDir()); err != nil {
		return err
	}
	if err := checkReplaceable(e.tempDir()); err != nil {
		return err
	}
	if err := os.RemoveAll(e.tempDir()); err != nil {
		return err
	}
	if err := os.MkdirAll(e.tempDir(), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(e.tempDir(), markerFile), nil, 0644); err != nil {
		return err
	}
	e.prepared = true
	return nil
}

// checkReplaceable returns ECONFLICT when dir exists, is not empty and
// does not carry the export marker.
func checkReplaceable(dir string) error {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}
	if _, err := os.Stat(filepath.Join(dir, markerFile)); err == nil {
		return nil
	}
	return crosscheck.Errorf(crosscheck.ECONFLICT, "%s is not empty and was not created by crosscheck export", dir)
}

// Save writes one comparison into the pending export.
func (e *Exporter) Save(ctx context.Context, c *crosscheck.Comparison) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := e.prepare(); err != nil {
		return err
	}

	fullPath := filepath.Join(e.tempDir(), ComparisonPath(c))
	return os.WriteFile(fullPath, []byte(FormatComparison(c, e.conv)), 0644)
}

// Commit replaces the export directory with everything saved so far.
func (e *Exporter) Commit() error {
	if err := e.prepare(); err != nil {
		return err
	}
	// The target may have changed since the first Save.
	if err := checkReplaceable(e.finalDir()); err != nil {
		return err
	}

	if err := os.RemoveAll(e.finalDir()); err != nil {
		return err
	}
	if err := os.Rename(e.tempDir(), e.finalDir()); err != nil {
		return err
	}
	e.prepared = false
	return nil
}

// Abort discards everything saved so far. A temp dir this Exporter did not
// create is left alone.
func (e *Exporter) Abort() error {
	if !e.prepared {
		return nil
	}
	e.prepared = false
	return os.RemoveAll(e.tempDir())
}

// ComparisonPath returns the file name for c:
// <saved date>-<query slug>-<first 8 characters of the ID>.md.
func ComparisonPath(c *crosscheck.Comparison) string {
	parts := []string{c.CreatedAt.UTC().Format("2006-01-02")}
	if slug := Slugify(c.Query); slug != "" {
		parts = append(parts, slug)
	}
	id := c.ID
	if len(id) > 8 {
		id = id[:8]
	}
	if id != "" {
		parts = append(parts, id)
	}
	return strings.Join(parts, "-") + ".md"
}

// Slugify lowercases s and joins its runs of letters and digits with
// dashes. Whole words are kept while the slug fits in maxSlugLength bytes;
// an over-long first word is cut on a rune boundary.
func Slugify(s string) string {
	words := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	var b strings.Builder
	for _, w := range words {
		if b.Len() == 0 {
			b.WriteString(cutRunes(w, maxSlugLength))
			continue
		}
		if b.Len()+1+len(w) > maxSlugLength {
			break
		}
		b.WriteByte('-')
		b.WriteString(w)
	}
	return b.String()
}

func cutRunes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// FormatComparison formats a comparison with YAML frontmatter.
func FormatComparison(c *crosscheck.Comparison, conv crosscheck.Converter) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("id: ")
	b.WriteString(c.ID)
	b.WriteString("\nquery: ")
	b.WriteString(quoteYAML(c.Query))
	b.WriteString("\nsaved: ")
	b.WriteString(c.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"))
	if c.ReportHash != "" {
		b.WriteString("\nreport_hash: ")
		b.WriteString(c.ReportHash)
	}
	b.WriteString("\n---\n\n")
	b.WriteString(crosscheck.FormatMarkdown(c.State(), conv))
	return b.String()
}

// quoteYAML double-quotes s so queries containing ':' or '#' stay scalars.
func quoteYAML(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", " ")
	return `"` + r.Replace(s) + `"`
}
