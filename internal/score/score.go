// Package score turns publication time, source reputation, and topic tags
// into the numeric fields the feed sorts on. All functions take the clock as
// an argument, scores are computed once at ingestion and stored, never
// re-derived on read.
package score

import (
	"strings"
	"time"
)

var tier1Sources = []string{"ap", "associated press", "reuters", "espn", "the athletic"}
var tier2Sources = []string{"yahoo", "cbs", "nbc", "fox", "bleacher report"}

// SourceTier buckets a source name into reputation tiers 1..3 by substring,
// tier 3 is the default for anything unrecognized.
func SourceTier(source string) int {
	s := strings.ToLower(source)
	for _, t := range tier1Sources {
		if strings.Contains(s, t) {
			return 1
		}
	}
	for _, t := range tier2Sources {
		if strings.Contains(s, t) {
			return 2
		}
	}
	return 3
}

// Urgency scores how time-critical an item is, in [0, 1]. Recency fades
// linearly over 24h; injury, trade, and suspension tags bump the score.
// A missing timestamp means no urgency at all.
func Urgency(publishedAt time.Time, topics []string, now time.Time) float64 {
	if publishedAt.IsZero() {
		return 0
	}
	ageHours := maxf(0, now.Sub(publishedAt).Hours())
	recency := maxf(0, 1-ageHours/24)

	bump := 0.0
	for _, t := range topics {
		switch t {
		case "injury":
			bump += 0.15
		case "trade":
			bump += 0.15
		case "suspension":
			bump += 0.10
		}
	}
	return minf(1, recency+bump)
}

// Rank combines recency (48h fade), a tier bonus, weighted urgency, and a
// duplicate penalty into the feed ordering score. Unlike Urgency it is not
// clamped to [0, 1].
func Rank(publishedAt time.Time, tier int, urgency float64, isDuplicate bool, now time.Time) float64 {
	rec := 0.0
	if !publishedAt.IsZero() {
		ageHours := maxf(0, now.Sub(publishedAt).Hours())
		rec = maxf(0, 1-ageHours/48)
	}

	bonus := 0.0
	switch tier {
	case 1:
		bonus = 0.25
	case 2:
		bonus = 0.10
	}

	penalty := 0.0
	if isDuplicate {
		penalty = 0.35
	}
	return rec + bonus + urgency*0.6 - penalty
}

// SocialRank orders embedded posts by recency alone, harmonically decaying
// with a 6h half-life point (score 0.5 at 6h old).
func SocialRank(createdAt time.Time, now time.Time) float64 {
	if createdAt.IsZero() {
		return 0
	}
	ageHours := maxf(0, now.Sub(createdAt).Hours())
	return 1 / (1 + ageHours/6)
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
