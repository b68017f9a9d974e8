package classify

import "regexp"

// topicRules map each topic tag to its trigger patterns. Patterns are written
// against the match-normalized surface, where punctuation has already been
// flattened to spaces ("over/under" arrives as "over under").
var topicRules = []struct {
	topic    string
	patterns []*regexp.Regexp
}{
	{"injury", compileAll(
		`\binjur`, `\bout\b`, `\bquestionable\b`, `\bdoubtful\b`,
		`\bday to day\b`, `\bir\b`,
	)},
	{"trade", compileAll(
		`\btrade\b`, `\btraded\b`, `\bblockbuster\b`, `\bdeal\b`,
		`\bacquire\b`, `\bsigns?\b`,
	)},
	{"betting", compileAll(
		`\bodds\b`, `\bspread\b`, `\bline\b`, `\bparlay\b`,
		`\bover under\b`, `\bo u\b`,
	)},
	{"analysis", compileAll(
		`\banalysis\b`, `\bbreakdown\b`, `\bfilm\b`, `\bwhat it means\b`, `\bpreview\b`,
	)},
	{"suspension", compileAll(
		`\bsuspend`, `\bfined\b`, `\bdiscipline\b`,
	)},
}

// Topics tags match-normalized text against the fixed topic vocabulary.
// A topic is included on its first matching trigger; output keeps the fixed
// vocabulary order and contains no duplicates.
func Topics(text string) []string {
	var topics []string
	for _, r := range topicRules {
		for _, p := range r.patterns {
			if p.MatchString(text) {
				topics = append(topics, r.topic)
				break
			}
		}
	}
	return topics
}
