// Package classify holds the rule-based enrichment classifiers: sport, topic
// tags, and team codes. All rule tables are built once at init and are
// read-only afterwards, so they are safe for concurrent source workers.
package classify

import (
	"regexp"
	"strings"
)

// urlHint lists cheap URL substrings per sport; checked before keyword rules
// because feed URLs are rarely ambiguous. Order is the priority order.
var urlHints = []struct {
	sport string
	hints []string
}{
	{"nba", []string{"/nba", "nba."}},
	{"nfl", []string{"/nfl", "nfl."}},
	{"cfb", []string{"/college-football", "/ncf", "ncaaf", "collegefootball"}},
	{"mlb", []string{"/mlb", "mlb."}},
	{"nhl", []string{"/nhl", "nhl."}},
	{"f1", []string{"/f1", "formula1", "f1."}},
	{"nascar", []string{"/nascar", "nascar."}},
}

// sportRules are last-resort keyword matches. More specific leagues come
// first: college football shares "bowl"/"playoffs" vocabulary with the NFL.
var sportRules = []struct {
	sport    string
	patterns []*regexp.Regexp
}{
	{"cfb", compileAll(
		`\bcollege football\b`, `\bncaa football\b`, `\bncaaf\b`, `\bcfb\b`,
		`\bbowl\b`, `\bsec\b`, `\bbig ten\b`, `\bacc\b`, `\bbig 12\b`, `\bpac-?12\b`,
	)},
	{"nfl", compileAll(
		`\bnfl\b`, `\bsuper bowl\b`, `\bplayoffs\b`, `\bquarterback\b`,
		`\btouchdown\b`, `\bqb\b`, `\bafc\b`, `\bnfc\b`,
	)},
	{"nba", compileAll(
		`\bnba\b`, `\bplayoffs\b`, `\bfinals\b`, `\btrade deadline\b`,
		`\ball-?star\b`, `\b3-?pointer\b`,
	)},
	{"nhl", compileAll(
		`\bnhl\b`, `\bstanley cup\b`, `\bpower play\b`, `\bgoalie\b`, `\bpuck\b`,
	)},
	{"mlb", compileAll(
		`\bmlb\b`, `\bhome run\b`, `\bpitcher\b`, `\binnings?\b`,
		`\bworld series\b`, `\bspring training\b`,
	)},
	{"f1", compileAll(
		`\bformula 1\b`, `\bf1\b`, `\bgrand prix\b`, `\bqualifying\b`,
		`\bpole\b`, `\bpaddock\b`,
	)},
	{"nascar", compileAll(
		`\bnascar\b`, `\bdaytona\b`, `\b(indycar|indy car)\b`, `\btrack\b`, `\bpit road\b`,
	)},
}

func compileAll(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp.MustCompile(p))
	}
	return out
}

// Sport infers a sport tag from the entry URL and text. URL hints win over
// keyword rules; an empty return means no inference and the caller keeps
// whatever hint it already has.
func Sport(title, snippet, url string) string {
	if url != "" {
		u := strings.ToLower(url)
		for _, h := range urlHints {
			for _, hint := range h.hints {
				if strings.Contains(u, hint) {
					return h.sport
				}
			}
		}
	}

	text := strings.ToLower(title + " " + snippet)
	for _, r := range sportRules {
		for _, p := range r.patterns {
			if p.MatchString(text) {
				return r.sport
			}
		}
	}
	return ""
}
