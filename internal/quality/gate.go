// Package quality filters out obviously junk entries before any enrichment
// work is spent on them. Rules run in a fixed order and the first failing rule
// names the drop reason, so ingestion logs stay comparable across runs.
package quality

import (
	"regexp"
	"strings"

	"sportshub/internal/normalize"
)

// badTitleSubstrings mark promo and boilerplate items that carry no news.
var badTitleSubstrings = []string{
	"subscribe",
	"newsletter",
	"sign up",
	"shop",
	"merch",
	"tickets",
	"watch live",
	"podcast:",
	"advertisement",
}

// lowInfoTitleHints: with no snippet at all, these titles are almost always
// bare media links.
var lowInfoTitleHints = []string{"video", "highlights", "recap", "score"}

var domainRe = regexp.MustCompile(`https?://([^/]+)/?`)

// Decision reports whether an entry passes the gate. Reason is empty when OK
// and otherwise carries a stable machine-readable code, with a ":<detail>"
// suffix for the rules that have one.
type Decision struct {
	OK     bool
	Reason string
}

// Gate holds the configurable part of the ruleset.
type Gate struct {
	blockedDomains []string
}

func NewGate(blockedDomains []string) *Gate {
	lowered := make([]string, 0, len(blockedDomains))
	for _, d := range blockedDomains {
		if d = strings.ToLower(strings.TrimSpace(d)); d != "" {
			lowered = append(lowered, d)
		}
	}
	return &Gate{blockedDomains: lowered}
}

// Check runs the rules in order against a raw entry. Title and snippet are
// whitespace-normalized here, the same way they are before persistence, so
// the length rule sees what would actually be stored.
func (g *Gate) Check(title, url, snippet string) Decision {
	titleN := normalize.Display(title)
	if titleN == "" {
		return Decision{Reason: "missing_title"}
	}
	if len(titleN) < 15 {
		return Decision{Reason: "title_too_short"}
	}

	titleLow := strings.ToLower(titleN)
	for _, bad := range badTitleSubstrings {
		if strings.Contains(titleLow, bad) {
			return Decision{Reason: "bad_title:" + bad}
		}
	}

	if url == "" {
		return Decision{Reason: "missing_url"}
	}
	if dom := DomainFromURL(url); dom != "" && g.blocked(dom) {
		return Decision{Reason: "bad_domain:" + dom}
	}

	if normalize.Display(snippet) == "" {
		for _, hint := range lowInfoTitleHints {
			if strings.Contains(titleLow, hint) {
				return Decision{Reason: "low_info_no_snippet"}
			}
		}
	}

	return Decision{OK: true}
}

func (g *Gate) blocked(domain string) bool {
	for _, b := range g.blockedDomains {
		if domain == b || strings.HasSuffix(domain, b) {
			return true
		}
	}
	return false
}

// DomainFromURL pulls the host out of a URL with a lightweight regexp. Feed
// links are well-formed enough that a full parse buys nothing here.
func DomainFromURL(url string) string {
	m := domainRe.FindStringSubmatch(url)
	if m == nil {
		return ""
	}
	return strings.ToLower(m[1])
}
