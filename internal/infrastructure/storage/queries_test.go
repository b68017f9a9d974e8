package storage

import (
	"strings"
	"testing"

	"sportshub/internal/domain"
)

func TestTopItemsQueryDefaults(t *testing.T) {
	t.Parallel()

	sqlStr, args, err := topItemsQuery(domain.FeedFilter{}).ToSql()
	if err != nil {
		t.Fatalf("ToSql() error: %v", err)
	}

	for _, want := range []string{
		"FROM content_items",
		"(SELECT COUNT(*) FROM content_items members",
		"is_duplicate = $1",
		"ORDER BY rank_score DESC NULLS LAST, published_at DESC",
		"LIMIT 50",
	} {
		if !strings.Contains(sqlStr, want) {
			t.Fatalf("query missing %q:\n%s", want, sqlStr)
		}
	}
	if len(args) != 1 || args[0] != false {
		t.Fatalf("args = %v, want just the duplicate flag", args)
	}
	if strings.Contains(sqlStr, "sport =") {
		t.Fatal("zero filter must not constrain sport")
	}
}

func TestTopItemsQueryClusterSizeCountsHiddenDuplicates(t *testing.T) {
	t.Parallel()

	sqlStr, _, err := topItemsQuery(domain.FeedFilter{}).ToSql()
	if err != nil {
		t.Fatalf("ToSql() error: %v", err)
	}

	start := strings.Index(sqlStr, "(SELECT COUNT(*)")
	end := strings.Index(sqlStr, "AS cluster_size")
	if start < 0 || end < start {
		t.Fatalf("cluster size subquery not found:\n%s", sqlStr)
	}
	sub := sqlStr[start:end]

	// The subquery sees the whole table; the outer duplicate exclusion
	// must not shrink the reported cluster size to 1.
	if strings.Contains(sub, "is_duplicate") {
		t.Fatalf("cluster size must count duplicate members too:\n%s", sub)
	}
	if !strings.Contains(sub, "COALESCE(content_items.dedupe_group_id, content_items.url)") {
		t.Fatalf("cluster size must key on the outer row's cluster:\n%s", sub)
	}
}

func TestTopItemsQueryFilters(t *testing.T) {
	t.Parallel()

	minRank := 0.5
	f := domain.FeedFilter{
		Sport:             "nba",
		Topic:             "injury",
		Team:              "LAL",
		MinUrgency:        0.7,
		MinRank:           &minRank,
		MaxTier:           2,
		IncludeDuplicates: true,
		Limit:             10,
	}
	sqlStr, args, err := topItemsQuery(f).ToSql()
	if err != nil {
		t.Fatalf("ToSql() error: %v", err)
	}

	for _, want := range []string{
		"sport = $1",
		"topics @> $2",
		"teams @> $3",
		"urgency >= $4",
		"rank_score >= $5",
		"source_tier <= $6",
		"LIMIT 10",
	} {
		if !strings.Contains(sqlStr, want) {
			t.Fatalf("query missing %q:\n%s", want, sqlStr)
		}
	}
	if strings.Contains(sqlStr, "is_duplicate") {
		t.Fatal("IncludeDuplicates must drop the duplicate filter")
	}
	if len(args) != 6 {
		t.Fatalf("args = %d, want 6", len(args))
	}
	if args[0] != "nba" || args[3] != 0.7 || args[4] != 0.5 || args[5] != 2 {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestClusterMembersQuery(t *testing.T) {
	t.Parallel()

	sqlStr, args, err := clusterMembersQuery("abc123").ToSql()
	if err != nil {
		t.Fatalf("ToSql() error: %v", err)
	}
	if !strings.Contains(sqlStr, "COALESCE(dedupe_group_id, url) = $1") {
		t.Fatalf("cluster key match missing:\n%s", sqlStr)
	}
	if !strings.Contains(sqlStr, "ORDER BY rank_score DESC NULLS LAST, source_tier DESC, published_at DESC") {
		t.Fatalf("member ordering missing:\n%s", sqlStr)
	}
	if len(args) != 1 || args[0] != "abc123" {
		t.Fatalf("args = %v", args)
	}
}

func TestRelatedQueryExcludesOwnCluster(t *testing.T) {
	t.Parallel()

	ref := domain.ContentItem{
		ID:            7,
		URL:           "http://a.com/x",
		DedupeGroupID: "group-1",
		Topics:        []string{"injury"},
		Teams:         []string{"KC"},
	}
	sqlStr, args, err := relatedQuery(ref, 5).ToSql()
	if err != nil {
		t.Fatalf("ToSql() error: %v", err)
	}

	for _, want := range []string{
		"id <> $1",
		"COALESCE(dedupe_group_id, url) <> $2",
		"topics && $3",
		"teams && $4",
		"LIMIT 5",
	} {
		if !strings.Contains(sqlStr, want) {
			t.Fatalf("query missing %q:\n%s", want, sqlStr)
		}
	}
	if args[1] != "group-1" {
		t.Fatalf("cluster exclusion arg = %v, want the group id", args[1])
	}
}

func TestRelatedQueryFallsBackToURLKey(t *testing.T) {
	t.Parallel()

	ref := domain.ContentItem{ID: 7, URL: "http://a.com/x", Topics: []string{"trade"}}
	_, args, err := relatedQuery(ref, 0).ToSql()
	if err != nil {
		t.Fatalf("ToSql() error: %v", err)
	}
	if args[1] != "http://a.com/x" {
		t.Fatalf("unclustered ref must key on url, got %v", args[1])
	}
}

func TestMissingTeamsQuery(t *testing.T) {
	t.Parallel()

	sqlStr, args, err := missingTeamsQuery(42, 500).ToSql()
	if err != nil {
		t.Fatalf("ToSql() error: %v", err)
	}
	for _, want := range []string{
		"id > $1",
		"COALESCE(cardinality(teams), 0) = 0",
		"entities IS NULL",
		"COALESCE(jsonb_array_length(entities->'teams'), 0) = 0",
		"ORDER BY id ASC",
		"LIMIT 500",
	} {
		if !strings.Contains(sqlStr, want) {
			t.Fatalf("query missing %q:\n%s", want, sqlStr)
		}
	}
	if len(args) != 1 || args[0] != int64(42) {
		t.Fatalf("args = %v", args)
	}
}

func TestClusterSourcesQuery(t *testing.T) {
	t.Parallel()

	sqlStr, args, err := clusterSourcesQuery([]string{"k1", "k2"}).ToSql()
	if err != nil {
		t.Fatalf("ToSql() error: %v", err)
	}
	if !strings.Contains(sqlStr, "array_agg(DISTINCT source)") {
		t.Fatalf("aggregation missing:\n%s", sqlStr)
	}
	if !strings.Contains(sqlStr, "GROUP BY COALESCE(dedupe_group_id, url)") {
		t.Fatalf("grouping missing:\n%s", sqlStr)
	}
	if len(args) != 1 {
		t.Fatalf("args = %v, want the key array", args)
	}
}
