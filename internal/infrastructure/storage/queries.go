package storage

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"sportshub/internal/domain"
)

const defaultFeedLimit = 50

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// itemColumns is the canonical select list; every scan helper assumes this
// order.
var itemColumns = []string{
	"id", "source", "sport", "title", "url", "published_at",
	"snippet", "summary", "topics", "teams", "entities",
	"urgency", "confidence", "sentiment", "key_points",
	"canonical_id", "dedupe_group_id", "is_duplicate",
	"source_tier", "rank_score", "created_at",
}

// clusterSizeColumn counts every member of the item's cluster, not just rows
// that survive the feed filters. A window over the filtered set would report
// 1 for every leader whenever duplicates are excluded.
const clusterSizeColumn = "(SELECT COUNT(*) FROM content_items members" +
	" WHERE COALESCE(members.dedupe_group_id, members.url) =" +
	" COALESCE(content_items.dedupe_group_id, content_items.url)) AS cluster_size"

// topItemsQuery builds the ranked feed query. Filters compose; zero filter
// values stay out of the WHERE clause entirely.
func topItemsQuery(f domain.FeedFilter) sq.SelectBuilder {
	q := psql.Select(append(append([]string{}, itemColumns...), clusterSizeColumn)...).
		From("content_items")

	if f.Sport != "" {
		q = q.Where(sq.Eq{"sport": f.Sport})
	}
	if !f.IncludeDuplicates {
		q = q.Where(sq.Eq{"is_duplicate": false})
	}
	if f.Topic != "" {
		q = q.Where("topics @> ?", pq.Array([]string{f.Topic}))
	}
	if f.Team != "" {
		q = q.Where("teams @> ?", pq.Array([]string{f.Team}))
	}
	if f.MinUrgency > 0 {
		q = q.Where(sq.GtOrEq{"urgency": f.MinUrgency})
	}
	if f.MinRank != nil {
		q = q.Where(sq.GtOrEq{"rank_score": *f.MinRank})
	}
	if f.MaxTier > 0 {
		q = q.Where(sq.LtOrEq{"source_tier": f.MaxTier})
	}

	limit := f.Limit
	if limit == 0 {
		limit = defaultFeedLimit
	}
	return q.OrderBy("rank_score DESC NULLS LAST", "published_at DESC").Limit(limit)
}

// clusterSourcesQuery aggregates the distinct outlets per cluster key for a
// page of feed results.
func clusterSourcesQuery(keys []string) sq.SelectBuilder {
	return psql.Select(
		"COALESCE(dedupe_group_id, url) AS cluster_key",
		"array_agg(DISTINCT source) AS sources",
	).
		From("content_items").
		Where("COALESCE(dedupe_group_id, url) = ANY(?)", pq.Array(keys)).
		GroupBy("COALESCE(dedupe_group_id, url)")
}

// clusterMembersQuery lists every item sharing one cluster key, best first.
func clusterMembersQuery(key string) sq.SelectBuilder {
	return psql.Select(itemColumns...).
		From("content_items").
		Where("COALESCE(dedupe_group_id, url) = ?", key).
		OrderBy("rank_score DESC NULLS LAST", "source_tier DESC", "published_at DESC")
}

// relatedQuery finds items overlapping the reference on topics or teams,
// excluding the reference's own cluster.
func relatedQuery(ref domain.ContentItem, limit uint64) sq.SelectBuilder {
	if limit == 0 {
		limit = defaultFeedLimit
	}
	return psql.Select(itemColumns...).
		From("content_items").
		Where(sq.NotEq{"id": ref.ID}).
		Where("COALESCE(dedupe_group_id, url) <> ?", ref.ClusterKey()).
		Where(sq.Or{
			sq.Expr("topics && ?", pq.Array(ref.Topics)),
			sq.Expr("teams && ?", pq.Array(ref.Teams)),
		}).
		OrderBy("rank_score DESC NULLS LAST", "published_at DESC").
		Limit(limit)
}

// missingTeamsQuery pages items still lacking team enrichment, in id order
// for cursor traversal.
func missingTeamsQuery(afterID int64, limit uint64) sq.SelectBuilder {
	return psql.Select(itemColumns...).
		From("content_items").
		Where(sq.Gt{"id": afterID}).
		Where("(COALESCE(cardinality(teams), 0) = 0" +
			" OR entities IS NULL" +
			" OR COALESCE(jsonb_array_length(entities->'teams'), 0) = 0)").
		OrderBy("id ASC").
		Limit(limit)
}
