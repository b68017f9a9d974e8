// Package dedupe derives the stable identity that groups near-identical
// stories from different outlets into one cluster.
package dedupe

import (
	"crypto/sha1"
	"encoding/hex"
	"sort"
	"strings"

	"sportshub/internal/normalize"
)

// Key hashes the normalized title plus the sorted, lowercased team codes into
// a 40-char hex group id. Two items about the same story land on the same key
// no matter which source wrote the headline or in what order teams were
// extracted. Changing the recipe re-splits every existing cluster, so treat
// it as a persisted format.
func Key(title string, teams []string) string {
	base := normalize.Title(title)
	if len(teams) > 0 {
		lowered := make([]string, len(teams))
		for i, t := range teams {
			lowered[i] = strings.ToLower(t)
		}
		sort.Strings(lowered)
		base += "|" + strings.Join(lowered, "|")
	}
	sum := sha1.Sum([]byte(base))
	return hex.EncodeToString(sum[:])
}

// CanonicalID is the cluster-wide story identity. It is the group key today;
// keeping the extra name leaves room to split the two later without a schema
// change.
func CanonicalID(dedupeGroupID string) string {
	return dedupeGroupID
}
