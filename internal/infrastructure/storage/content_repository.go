// Package storage implements the persistence ports on Postgres.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/lib/pq"

	"sportshub/internal/domain"
	"sportshub/internal/ports"
)

// ContentRepository persists and serves enriched content items.
type ContentRepository struct {
	db *sql.DB
}

var _ ports.ContentRepository = (*ContentRepository)(nil)

func NewContentRepository(db *sql.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

// FilterExistingURLs returns the subset of urls already stored.
func (r *ContentRepository) FilterExistingURLs(ctx context.Context, urls []string) (map[string]bool, error) {
	result := make(map[string]bool)
	if len(urls) == 0 {
		return result, nil
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT url FROM content_items WHERE url = ANY($1)`, pq.StringArray(urls))
	if err != nil {
		return nil, fmt.Errorf("query existing urls: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var url string
		if err := rows.Scan(&url); err != nil {
			return nil, fmt.Errorf("scan url: %w", err)
		}
		result[url] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return result, nil
}

// ExistingClusters returns the dedupe group ids among keys that already have
// a stored member.
func (r *ContentRepository) ExistingClusters(ctx context.Context, keys []string) (map[string]bool, error) {
	result := make(map[string]bool)
	if len(keys) == 0 {
		return result, nil
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT DISTINCT dedupe_group_id FROM content_items WHERE dedupe_group_id = ANY($1)`,
		pq.StringArray(keys))
	if err != nil {
		return nil, fmt.Errorf("query clusters: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("scan cluster key: %w", err)
		}
		result[key] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return result, nil
}

const insertItemQuery = `INSERT INTO content_items (
		source, sport, title, url, published_at, snippet, summary,
		topics, teams, entities, urgency, confidence, sentiment, key_points,
		canonical_id, dedupe_group_id, is_duplicate, source_tier, rank_score
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	ON CONFLICT (url) DO NOTHING`

// SaveBatch inserts the batch in one transaction. URLs that raced in since
// the existence check hit the unique constraint and are skipped silently;
// the return value counts actual inserts.
func (r *ContentRepository) SaveBatch(ctx context.Context, items []domain.ContentItem) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, insertItemQuery)
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, item := range items {
		entities, err := json.Marshal(item.Entities)
		if err != nil {
			return 0, fmt.Errorf("marshal entities: %w", err)
		}
		res, err := stmt.ExecContext(ctx,
			item.Source,
			nullString(item.Sport),
			item.Title,
			item.URL,
			item.PublishedAt,
			nullString(item.Snippet),
			nullString(item.Summary),
			pq.StringArray(orEmpty(item.Topics)),
			pq.StringArray(orEmpty(item.Teams)),
			entities,
			item.Urgency,
			item.Confidence,
			nullString(item.Sentiment),
			pq.StringArray(item.KeyPoints),
			item.CanonicalID,
			item.DedupeGroupID,
			item.IsDuplicate,
			item.SourceTier,
			item.RankScore,
		)
		if err != nil {
			return 0, fmt.Errorf("insert item %s: %w", item.URL, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("rows affected: %w", err)
		}
		inserted += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit batch: %w", err)
	}
	return inserted, nil
}

// TopItems serves the ranked feed.
func (r *ContentRepository) TopItems(ctx context.Context, f domain.FeedFilter) ([]domain.RankedItem, error) {
	query, args, err := topItemsQuery(f).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build feed query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query feed: %w", err)
	}
	defer rows.Close()

	var items []domain.RankedItem
	for rows.Next() {
		item, err := scanRankedItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}

	if f.WithSources && len(items) > 0 {
		if err := r.attachClusterSources(ctx, items); err != nil {
			return nil, err
		}
	}
	return items, nil
}

// BreakingItems is the feed restricted to high-urgency stories. A zero
// MinUrgency falls back to the breaking threshold instead of "no filter".
func (r *ContentRepository) BreakingItems(ctx context.Context, f domain.FeedFilter) ([]domain.RankedItem, error) {
	if f.MinUrgency <= 0 {
		f.MinUrgency = 0.9
	}
	return r.TopItems(ctx, f)
}

// ClusterMembers lists every stored version of one story.
func (r *ContentRepository) ClusterMembers(ctx context.Context, groupID string) ([]domain.ContentItem, error) {
	query, args, err := clusterMembersQuery(groupID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build cluster query: %w", err)
	}
	return r.queryItems(ctx, query, args...)
}

// Related finds stories overlapping the reference on topics or teams.
func (r *ContentRepository) Related(ctx context.Context, ref domain.ContentItem, limit uint64) ([]domain.ContentItem, error) {
	if len(ref.Topics) == 0 && len(ref.Teams) == 0 {
		return nil, nil
	}
	query, args, err := relatedQuery(ref, limit).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build related query: %w", err)
	}
	return r.queryItems(ctx, query, args...)
}

// ItemWithCluster loads one item plus its full cluster. The cluster
// aggregates on the returned item are derived from the members list.
func (r *ContentRepository) ItemWithCluster(ctx context.Context, id int64) (domain.RankedItem, []domain.ContentItem, error) {
	query, args, err := psql.Select(itemColumns...).
		From("content_items").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return domain.RankedItem{}, nil, fmt.Errorf("build item query: %w", err)
	}

	items, err := r.queryItems(ctx, query, args...)
	if err != nil {
		return domain.RankedItem{}, nil, err
	}
	if len(items) == 0 {
		return domain.RankedItem{}, nil, sql.ErrNoRows
	}
	item := items[0]

	members, err := r.ClusterMembers(ctx, item.ClusterKey())
	if err != nil {
		return domain.RankedItem{}, nil, err
	}

	ranked := domain.RankedItem{ContentItem: item, ClusterSize: len(members)}
	seen := make(map[string]bool, len(members))
	for _, m := range members {
		if !seen[m.Source] {
			seen[m.Source] = true
			ranked.ClusterSources = append(ranked.ClusterSources, m.Source)
		}
	}
	return ranked, members, nil
}

// MissingTeams pages items with empty team enrichment.
func (r *ContentRepository) MissingTeams(ctx context.Context, afterID int64, limit uint64) ([]domain.ContentItem, error) {
	query, args, err := missingTeamsQuery(afterID, limit).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build backfill query: %w", err)
	}
	return r.queryItems(ctx, query, args...)
}

// FillTeams writes backfilled enrichment for one item.
func (r *ContentRepository) FillTeams(ctx context.Context, id int64, teams []string, entities domain.Entities) error {
	payload, err := json.Marshal(entities)
	if err != nil {
		return fmt.Errorf("marshal entities: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`UPDATE content_items SET teams = $1, entities = $2 WHERE id = $3`,
		pq.StringArray(orEmpty(teams)), payload, id)
	if err != nil {
		return fmt.Errorf("update teams for item %d: %w", id, err)
	}
	return nil
}

func (r *ContentRepository) attachClusterSources(ctx context.Context, items []domain.RankedItem) error {
	keys := make([]string, 0, len(items))
	for _, it := range items {
		keys = append(keys, it.ClusterKey())
	}

	query, args, err := clusterSourcesQuery(keys).ToSql()
	if err != nil {
		return fmt.Errorf("build sources query: %w", err)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("query cluster sources: %w", err)
	}
	defer rows.Close()

	sources := make(map[string][]string)
	for rows.Next() {
		var key string
		var agg pq.StringArray
		if err := rows.Scan(&key, &agg); err != nil {
			return fmt.Errorf("scan cluster sources: %w", err)
		}
		sources[key] = agg
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("rows iteration: %w", err)
	}

	for i := range items {
		items[i].ClusterSources = sources[items[i].ClusterKey()]
	}
	return nil
}

func (r *ContentRepository) queryItems(ctx context.Context, query string, args ...any) ([]domain.ContentItem, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	var items []domain.ContentItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return items, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// nullable holds the scan targets for columns the domain type stores as
// plain values.
type nullable struct {
	sport, snippet, summary, sentiment sql.NullString
	canonical, groupID                 sql.NullString
	topics, teams, keyPoints           pq.StringArray
	entities                           []byte
	confidence, rank                   sql.NullFloat64
}

func scanContentItem(row rowScanner, item *domain.ContentItem, extra ...any) error {
	var n nullable
	dest := []any{
		&item.ID, &item.Source, &n.sport, &item.Title, &item.URL, &item.PublishedAt,
		&n.snippet, &n.summary, &n.topics, &n.teams, &n.entities,
		&item.Urgency, &n.confidence, &n.sentiment, &n.keyPoints,
		&n.canonical, &n.groupID, &item.IsDuplicate,
		&item.SourceTier, &n.rank, &item.CreatedAt,
	}
	dest = append(dest, extra...)
	if err := row.Scan(dest...); err != nil {
		return fmt.Errorf("scan item: %w", err)
	}

	item.Sport = n.sport.String
	item.Snippet = n.snippet.String
	item.Summary = n.summary.String
	item.Sentiment = n.sentiment.String
	item.Topics = n.topics
	item.Teams = n.teams
	item.KeyPoints = n.keyPoints
	item.Confidence = n.confidence.Float64
	item.RankScore = n.rank.Float64
	item.CanonicalID = n.canonical.String
	item.DedupeGroupID = n.groupID.String

	if len(n.entities) > 0 {
		if err := json.Unmarshal(n.entities, &item.Entities); err != nil {
			return fmt.Errorf("unmarshal entities for item %d: %w", item.ID, err)
		}
	}
	return nil
}

func scanItem(row rowScanner) (domain.ContentItem, error) {
	var item domain.ContentItem
	if err := scanContentItem(row, &item); err != nil {
		return domain.ContentItem{}, err
	}
	return item, nil
}

func scanRankedItem(row rowScanner) (domain.RankedItem, error) {
	var item domain.RankedItem
	if err := scanContentItem(row, &item.ContentItem, &item.ClusterSize); err != nil {
		return domain.RankedItem{}, err
	}
	return item, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
