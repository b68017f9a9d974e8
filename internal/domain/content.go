package domain

import "time"

// Entities is the structured entity bag attached to every item. Players and
// leagues are carried for forward compatibility; today players stays empty and
// leagues holds at most the item's sport.
type Entities struct {
	Teams   []string `json:"teams"`
	Players []string `json:"players"`
	Leagues []string `json:"leagues"`
}

// ContentItem is one ingested story. Created once by the ingestion pipeline on
// first sight of a URL; the pipeline never updates it afterwards. A backfill
// pass may fill previously-empty enrichment fields, but never overwrites.
type ContentItem struct {
	ID     int64
	Source string
	Sport  string

	Title       string
	URL         string
	PublishedAt time.Time // always UTC, stored without offset
	Snippet     string
	Summary     string

	Topics     []string
	Teams      []string
	Entities   Entities
	Urgency    float64
	Confidence float64
	Sentiment  string   // reserved
	KeyPoints  []string // reserved

	CanonicalID   string
	DedupeGroupID string
	IsDuplicate   bool

	SourceTier int
	RankScore  float64

	CreatedAt time.Time
}

// ClusterKey identifies the story cluster this item belongs to. Items never
// clustered fall back to their own URL, forming a singleton cluster of one.
func (c ContentItem) ClusterKey() string {
	if c.DedupeGroupID != "" {
		return c.DedupeGroupID
	}
	return c.URL
}

// RankedItem is a ContentItem decorated with query-time cluster aggregates.
type RankedItem struct {
	ContentItem
	ClusterSize    int
	ClusterSources []string
}

// FeedFilter narrows feed queries. Zero values mean "no filter"; MinRank is a
// pointer because rank scores may legitimately be negative.
type FeedFilter struct {
	Sport             string
	Topic             string
	Team              string
	MinUrgency        float64
	MinRank           *float64
	MaxTier           int
	IncludeDuplicates bool
	WithSources       bool
	Limit             uint64
}

// RunStatus enumerates ingestion run outcomes.
type RunStatus string

const (
	RunRunning RunStatus = "running"
	RunSuccess RunStatus = "success"
	RunFailed  RunStatus = "failed"
)

// IngestRun records one pipeline execution. It is created at run start and
// mutated exactly once at run end.
type IngestRun struct {
	ID            string
	StartedAt     time.Time
	FinishedAt    time.Time // zero while the run is in flight
	Status        RunStatus
	InsertedCount int
	Error         string // truncated to 2000 chars
}

// FeedSource is one configured ingestion input. Sport may be a real sport tag
// or a sentinel ("general", "top", "") meaning infer from content.
type FeedSource struct {
	Source string
	Sport  string
	URL    string
}

// InferSport reports whether the sport hint asks the classifier to decide.
func (f FeedSource) InferSport() bool {
	return f.Sport == "" || f.Sport == "general" || f.Sport == "top"
}

// FeedEntry is the normalized shape of one raw feed entry as consumed by the
// pipeline. Snippet is raw feed HTML; the normalizer cleans it downstream.
type FeedEntry struct {
	Title     string
	Link      string
	Published time.Time
	Snippet   string
}

// FetchResult carries parsed entries plus a parse-quality signal instead of a
// hard failure when individual entries are unusable.
type FetchResult struct {
	Entries []FeedEntry
	Skipped int // entries dropped for missing link, title, or timestamp
}

// Degraded reports whether the feed parsed with losses.
func (r FetchResult) Degraded() bool { return r.Skipped > 0 }

// SocialPost is an embedded social item ingested in bulk alongside news.
type SocialPost struct {
	ID         int64
	Platform   string // "x" or "instagram"
	Handle     string
	PostID     string
	Permalink  string
	Text       string
	CreatedAt  time.Time
	MediaURLs  []string
	Metrics    map[string]float64
	SourceTier int
	RankScore  float64
}
