// Package normalize prepares raw feed text for storage and for pattern
// matching. Display forms keep their case; match forms are reduced to a flat
// lowercase alphanumeric surface that every classifier operates on.
package normalize

import (
	"html"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	punctRe      = regexp.MustCompile(`[^a-z0-9\s]`)
	nonAlnumRe   = regexp.MustCompile(`[^a-z0-9]+`)
)

// unicodePunct folds curly quotes, long dashes, and other typographic
// punctuation to ASCII so downstream patterns see one surface.
var unicodePunct = strings.NewReplacer(
	"‘", "'", // left single quote
	"’", "'", // right single quote
	"‚", "'",
	"“", `"`, // left double quote
	"”", `"`, // right double quote
	"„", `"`,
	"–", "-", // en dash
	"—", "-", // em dash
	"…", "...",
	" ", " ",
)

// Display collapses whitespace runs and trims, preserving case and
// punctuation. Used for the stored title and snippet.
func Display(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// Title lowercases, strips everything outside [a-z0-9\s], and collapses
// whitespace. This is the surface the dedupe key hashes.
func Title(s string) string {
	t := strings.ToLower(strings.TrimSpace(s))
	t = punctRe.ReplaceAllString(t, " ")
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(t, " "))
}

// ForMatch decodes HTML entities, folds unicode punctuation, lowercases, and
// replaces every run of non-alphanumeric characters with a single space. All
// classifier patterns run against this form.
func ForMatch(s string) string {
	t := html.UnescapeString(s)
	t = unicodePunct.Replace(t)
	t = strings.ToLower(t)
	t = nonAlnumRe.ReplaceAllString(t, " ")
	return strings.TrimSpace(t)
}

// StripHTML extracts readable text from feed snippets that arrive as markup,
// then collapses whitespace. Plain text passes through Display untouched.
func StripHTML(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return Display(s)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return Display(unicodePunct.Replace(html.UnescapeString(s)))
	}
	// non-breaking spaces survive goquery text extraction; fold them too
	return Display(unicodePunct.Replace(doc.Text()))
}
