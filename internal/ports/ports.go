package ports

import (
	"context"
	"time"

	"sportshub/internal/domain"
)

// FeedFetcher retrieves and parses one feed URL.
type FeedFetcher interface {
	Fetch(ctx context.Context, feedURL string) (domain.FetchResult, error)
}

// ContentRepository persists enriched items and serves the read path.
type ContentRepository interface {
	// FilterExistingURLs returns the subset of urls already stored.
	FilterExistingURLs(ctx context.Context, urls []string) (map[string]bool, error)
	// ExistingClusters returns the dedupe group ids among keys that already
	// have at least one stored member.
	ExistingClusters(ctx context.Context, keys []string) (map[string]bool, error)
	// SaveBatch inserts items in a single transaction, skipping URLs that
	// raced in since the existence check. Returns the number inserted.
	SaveBatch(ctx context.Context, items []domain.ContentItem) (int, error)

	TopItems(ctx context.Context, f domain.FeedFilter) ([]domain.RankedItem, error)
	BreakingItems(ctx context.Context, f domain.FeedFilter) ([]domain.RankedItem, error)
	ClusterMembers(ctx context.Context, groupID string) ([]domain.ContentItem, error)
	Related(ctx context.Context, ref domain.ContentItem, limit uint64) ([]domain.ContentItem, error)
	ItemWithCluster(ctx context.Context, id int64) (domain.RankedItem, []domain.ContentItem, error)

	// MissingTeams pages items with empty team enrichment for the backfill
	// pass, ordered by id ascending starting after afterID.
	MissingTeams(ctx context.Context, afterID int64, limit uint64) ([]domain.ContentItem, error)
	// FillTeams writes backfilled enrichment for one item.
	FillTeams(ctx context.Context, id int64, teams []string, entities domain.Entities) error
}

// RunRepository persists ingestion run records.
type RunRepository interface {
	CreateRun(ctx context.Context, run domain.IngestRun) error
	FinishRun(ctx context.Context, run domain.IngestRun) error
}

// SocialRepository persists bulk-ingested social posts.
type SocialRepository interface {
	HasPost(ctx context.Context, platform, postID string) (bool, error)
	// SavePosts commits the batch in one transaction; individual conflicts
	// are skipped, the rest still land. Returns the number inserted.
	SavePosts(ctx context.Context, posts []domain.SocialPost) (int, error)
}

// Notifier pushes digests to an outbound channel.
type Notifier interface {
	PublishDigest(ctx context.Context, digest string) error
}

// Scheduler controls when recurring ingestion runs execute.
type Scheduler interface {
	Start(ctx context.Context, job func(time.Time)) error
	Stop(ctx context.Context) error
}
