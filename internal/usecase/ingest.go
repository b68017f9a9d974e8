// Package usecase orchestrates the ingestion, backfill, and digest workflows
// on top of the driven ports.
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"sportshub/internal/classify"
	"sportshub/internal/dedupe"
	"sportshub/internal/domain"
	"sportshub/internal/normalize"
	"sportshub/internal/ports"
	"sportshub/internal/quality"
	"sportshub/internal/score"
)

const (
	maxTitleLen   = 300
	maxURLLen     = 600
	maxSummaryLen = 800
	maxErrorLen   = 2000

	defaultConcurrency = 4
	enrichConfidence   = 0.6
)

// RunnerDeps wires the driven adapters into the ingestion runner.
type RunnerDeps struct {
	Fetcher ports.FeedFetcher
	Content ports.ContentRepository
	Runs    ports.RunRepository
	Logger  *slog.Logger

	Feeds          []domain.FeedSource
	Concurrency    int
	BlockedDomains []string

	// Now is the run clock; tests pin it.
	Now func() time.Time
}

// Runner executes the full ingestion pipeline: fetch, parse, gate, enrich,
// deduplicate, score, persist. Sources run concurrently and are isolated from
// each other: one broken feed never fails the run for the rest.
type Runner struct {
	fetcher     ports.FeedFetcher
	content     ports.ContentRepository
	runs        ports.RunRepository
	log         *slog.Logger
	feeds       []domain.FeedSource
	concurrency int
	gate        *quality.Gate
	now         func() time.Time
}

// NewRunner constructs the pipeline orchestrator.
func NewRunner(deps RunnerDeps) *Runner {
	r := &Runner{
		fetcher:     deps.Fetcher,
		content:     deps.Content,
		runs:        deps.Runs,
		log:         deps.Logger,
		feeds:       deps.Feeds,
		concurrency: deps.Concurrency,
		gate:        quality.NewGate(deps.BlockedDomains),
		now:         deps.Now,
	}
	if r.log == nil {
		r.log = slog.Default()
	}
	if r.concurrency <= 0 {
		r.concurrency = defaultConcurrency
	}
	if r.now == nil {
		r.now = time.Now
	}
	return r
}

// Run executes one full ingestion pass wrapped in a run record. The returned
// run carries the final status; the error is non-nil only when every source
// failed or the run record itself could not be written.
func (r *Runner) Run(ctx context.Context) (domain.IngestRun, error) {
	run := domain.IngestRun{
		ID:        uuid.NewString(),
		StartedAt: r.now().UTC(),
		Status:    domain.RunRunning,
	}
	if r.runs != nil {
		if err := r.runs.CreateRun(ctx, run); err != nil {
			return run, fmt.Errorf("create run record: %w", err)
		}
	}

	inserted, sourceErrs := r.ingestAll(ctx)

	run.FinishedAt = r.now().UTC()
	run.InsertedCount = inserted

	var runErr error
	if len(r.feeds) > 0 && len(sourceErrs) == len(r.feeds) {
		run.Status = domain.RunFailed
		run.Error = truncate(joinErrors(sourceErrs), maxErrorLen)
		runErr = fmt.Errorf("all %d sources failed", len(r.feeds))
	} else {
		run.Status = domain.RunSuccess
	}

	if r.runs != nil {
		if err := r.runs.FinishRun(ctx, run); err != nil {
			return run, fmt.Errorf("finish run record: %w", err)
		}
	}

	r.log.Info("ingestion run finished",
		"run_id", run.ID,
		"status", string(run.Status),
		"inserted", run.InsertedCount,
		"failed_sources", len(sourceErrs),
	)
	return run, runErr
}

// ingestAll fans the configured sources out over a bounded worker group.
func (r *Runner) ingestAll(ctx context.Context) (int, []error) {
	var (
		mu       sync.Mutex
		inserted int
		errs     []error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for _, src := range r.feeds {
		src := src
		g.Go(func() error {
			n, err := r.ingestSource(gctx, src)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				r.log.Error("source ingestion failed",
					"source", src.Source, "sport", src.Sport, "url", src.URL, "error", err)
				errs = append(errs, fmt.Errorf("%s %s: %w", src.Source, src.Sport, err))
				return nil
			}
			inserted += n
			return nil
		})
	}
	// workers record their errors instead of returning them
	_ = g.Wait()

	return inserted, errs
}

// ingestSource runs the pipeline for one feed and persists its batch in a
// single transaction.
func (r *Runner) ingestSource(ctx context.Context, src domain.FeedSource) (int, error) {
	res, err := r.fetcher.Fetch(ctx, src.URL)
	if err != nil {
		return 0, fmt.Errorf("fetch feed: %w", err)
	}
	if res.Degraded() {
		r.log.Warn("feed parsed with losses",
			"source", src.Source, "url", src.URL, "skipped", res.Skipped)
	}
	if len(res.Entries) == 0 {
		return 0, nil
	}

	urls := make([]string, 0, len(res.Entries))
	for _, e := range res.Entries {
		urls = append(urls, truncate(e.Link, maxURLLen))
	}
	existing, err := r.content.FilterExistingURLs(ctx, urls)
	if err != nil {
		return 0, fmt.Errorf("filter existing urls: %w", err)
	}

	now := r.now().UTC()
	seenURLs := make(map[string]bool, len(res.Entries))

	var candidates []domain.ContentItem
	for _, entry := range res.Entries {
		url := truncate(entry.Link, maxURLLen)
		if existing[url] || seenURLs[url] {
			continue
		}
		seenURLs[url] = true

		item, ok := r.enrich(src, entry, url, now)
		if !ok {
			continue
		}
		candidates = append(candidates, item)
	}
	if len(candidates) == 0 {
		return 0, nil
	}

	keys := make([]string, 0, len(candidates))
	for _, c := range candidates {
		keys = append(keys, c.DedupeGroupID)
	}
	clusters, err := r.content.ExistingClusters(ctx, keys)
	if err != nil {
		return 0, fmt.Errorf("check clusters: %w", err)
	}

	// First unseen member of a cluster is the leader; everything after it,
	// in this batch or already stored, is a duplicate.
	seenGroups := make(map[string]bool, len(candidates))
	for i := range candidates {
		c := &candidates[i]
		c.IsDuplicate = clusters[c.DedupeGroupID] || seenGroups[c.DedupeGroupID]
		seenGroups[c.DedupeGroupID] = true
		c.RankScore = score.Rank(c.PublishedAt, c.SourceTier, c.Urgency, c.IsDuplicate, now)
	}

	inserted, err := r.content.SaveBatch(ctx, candidates)
	if err != nil {
		return 0, fmt.Errorf("save batch: %w", err)
	}

	r.log.Info("source ingested",
		"source", src.Source, "sport", src.Sport,
		"entries", len(res.Entries), "inserted", inserted)
	return inserted, nil
}

// enrich runs gate, classification, and scoring for one entry. Duplicate and
// rank fields are filled later, once cluster membership is known.
func (r *Runner) enrich(src domain.FeedSource, entry domain.FeedEntry, url string, now time.Time) (domain.ContentItem, bool) {
	snippet := normalize.StripHTML(entry.Snippet)

	effectiveSport := src.Sport
	if src.InferSport() {
		if inferred := classify.Sport(entry.Title, snippet, url); inferred != "" {
			effectiveSport = inferred
		}
	}

	if d := r.gate.Check(entry.Title, url, snippet); !d.OK {
		r.log.Debug("entry dropped",
			"source", src.Source, "reason", d.Reason, "url", url)
		return domain.ContentItem{}, false
	}

	title := normalize.Display(entry.Title)
	matchText := normalize.ForMatch(title + " " + snippet)

	teams := classify.Teams(matchText, effectiveSport)
	topics := classify.Topics(matchText)

	groupID := dedupe.Key(title, teams)
	tier := score.SourceTier(src.Source)

	leagues := []string{}
	if effectiveSport != "" {
		leagues = []string{effectiveSport}
	}

	return domain.ContentItem{
		Source:      src.Source,
		Sport:       effectiveSport,
		Title:       truncate(title, maxTitleLen),
		URL:         url,
		PublishedAt: entry.Published,
		Snippet:     snippet,
		Summary:     truncate(snippet, maxSummaryLen),
		Topics:      topics,
		Teams:       teams,
		Entities: domain.Entities{
			Teams:   teams,
			Players: []string{},
			Leagues: leagues,
		},
		Urgency:       score.Urgency(entry.Published, topics, now),
		Confidence:    enrichConfidence,
		CanonicalID:   dedupe.CanonicalID(groupID),
		DedupeGroupID: groupID,
		SourceTier:    tier,
	}, true
}

// truncate limits s to n characters, never splitting a multibyte rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func joinErrors(errs []error) string {
	parts := make([]string, len(errs))
	for i, err := range errs {
		parts[i] = err.Error()
	}
	return strings.Join(parts, "; ")
}
