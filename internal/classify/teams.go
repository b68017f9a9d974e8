package classify

import (
	"regexp"
	"sort"
	"strings"

	"sportshub/internal/normalize"
)

type aliasPattern struct {
	re *regexp.Regexp
	// all entries sharing this normalized alias phrase, in table order
	entries []AliasEntry
}

var (
	aliasPatterns []aliasPattern
	knownCodes    map[string]struct{}
)

func init() {
	index := make(map[string]int)
	knownCodes = make(map[string]struct{})
	for _, e := range teamAliases {
		knownCodes[e.Code] = struct{}{}
		key := normalize.ForMatch(e.Alias)
		if key == "" {
			continue
		}
		if i, ok := index[key]; ok {
			aliasPatterns[i].entries = append(aliasPatterns[i].entries, e)
			continue
		}
		index[key] = len(aliasPatterns)
		aliasPatterns = append(aliasPatterns, aliasPattern{
			re:      wordPattern(key),
			entries: []AliasEntry{e},
		})
	}
}

// wordPattern matches the alias phrase on whole-word boundaries. The phrase
// is already match-normalized, so spaces are the only separators left.
func wordPattern(phrase string) *regexp.Regexp {
	p := `\b` + strings.ReplaceAll(regexp.QuoteMeta(phrase), ` `, `\s+`) + `\b`
	return regexp.MustCompile(p)
}

type teamHit struct {
	code string
	pos  int
}

// Teams extracts team codes from text. The text must already be
// match-normalized (see normalize.ForMatch). When an alias belongs to more
// than one league, sport picks the matching entry; with no sport, or no entry
// for that sport, the first table entry wins.
//
// Alias matches are reported in order of first appearance in the text. Bare
// code tokens ("KC", "LAL") that no alias caught are appended after them.
func Teams(text, sport string) []string {
	var hits []teamHit
	for _, ap := range aliasPatterns {
		loc := ap.re.FindStringIndex(text)
		if loc == nil {
			continue
		}
		hits = append(hits, teamHit{code: resolveLeague(ap.entries, sport), pos: loc[0]})
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })

	hits = append(hits, codeTokenHits(text)...)

	seen := make(map[string]struct{}, len(hits))
	var out []string
	for _, h := range hits {
		if _, ok := seen[h.code]; ok {
			continue
		}
		seen[h.code] = struct{}{}
		out = append(out, h.code)
	}
	return out
}

func resolveLeague(entries []AliasEntry, sport string) string {
	if sport != "" {
		for _, e := range entries {
			if e.League == sport {
				return e.Code
			}
		}
	}
	return entries[0].Code
}

// codeTokenHits catches codes written out literally, e.g. "KC @ BUF".
// Match-normalized text is lowercased, so the tokens come back folded; any
// short token whose upper-cased form is a known code counts.
func codeTokenHits(text string) []teamHit {
	var hits []teamHit
	pos := 0
	for _, tok := range strings.Split(text, " ") {
		if n := len(tok); n >= 2 && n <= 4 {
			if code := strings.ToUpper(tok); hasCode(code) {
				hits = append(hits, teamHit{code: code, pos: pos})
			}
		}
		pos += len(tok) + 1
	}
	return hits
}

func hasCode(code string) bool {
	_, ok := knownCodes[code]
	return ok
}
