package usecase

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"sportshub/internal/domain"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return testNow }

func feedEntry(title, link string) domain.FeedEntry {
	return domain.FeedEntry{
		Title:     title,
		Link:      link,
		Published: testNow.Add(-time.Hour),
		Snippet:   "Details from the beat reporter.",
	}
}

func TestRunClustersDuplicateStories(t *testing.T) {
	t.Parallel()

	content := newFakeContentRepo()
	runs := &fakeRunRepo{}
	fetcher := &fakeFetcher{results: map[string]domain.FetchResult{
		"http://feed/nfl": {Entries: []domain.FeedEntry{
			feedEntry("Star quarterback suffers ankle injury at practice", "http://a.com/1"),
			feedEntry("Star quarterback suffers ankle injury at practice", "http://b.com/1"),
			feedEntry("Completely different story about the draft class", "http://a.com/2"),
		}},
	}}

	r := NewRunner(RunnerDeps{
		Fetcher: fetcher,
		Content: content,
		Runs:    runs,
		Feeds:   []domain.FeedSource{{Source: "ESPN", Sport: "nfl", URL: "http://feed/nfl"}},
		Now:     fixedNow,
	})

	run, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if run.Status != domain.RunSuccess {
		t.Fatalf("run status = %s, want success", run.Status)
	}
	if run.InsertedCount != 3 {
		t.Fatalf("inserted = %d, want 3", run.InsertedCount)
	}

	leader, ok := content.byURL("http://a.com/1")
	if !ok {
		t.Fatal("leader not stored")
	}
	dup, ok := content.byURL("http://b.com/1")
	if !ok {
		t.Fatal("duplicate not stored")
	}

	if leader.IsDuplicate {
		t.Fatal("first cluster member must be the leader")
	}
	if !dup.IsDuplicate {
		t.Fatal("second cluster member must be flagged duplicate")
	}
	if leader.DedupeGroupID != dup.DedupeGroupID {
		t.Fatal("same story must share a dedupe group")
	}
	if got := leader.RankScore - dup.RankScore; math.Abs(got-0.35) > 1e-9 {
		t.Fatalf("duplicate rank penalty = %v, want 0.35", got)
	}

	if leader.SourceTier != 1 {
		t.Fatalf("ESPN tier = %d, want 1", leader.SourceTier)
	}
	if leader.CanonicalID != leader.DedupeGroupID {
		t.Fatal("canonical id should equal the dedupe group for now")
	}
	if len(leader.Topics) == 0 || leader.Topics[0] != "injury" {
		t.Fatalf("topics = %v, want injury first", leader.Topics)
	}
}

func TestRunIsIdempotent(t *testing.T) {
	t.Parallel()

	content := newFakeContentRepo()
	fetcher := &fakeFetcher{results: map[string]domain.FetchResult{
		"http://feed/nba": {Entries: []domain.FeedEntry{
			feedEntry("Veteran forward agrees to a contract extension", "http://a.com/x"),
		}},
	}}

	r := NewRunner(RunnerDeps{
		Fetcher: fetcher,
		Content: content,
		Runs:    &fakeRunRepo{},
		Feeds:   []domain.FeedSource{{Source: "CBS Sports", Sport: "nba", URL: "http://feed/nba"}},
		Now:     fixedNow,
	})

	first, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("first run error: %v", err)
	}
	if first.InsertedCount != 1 {
		t.Fatalf("first run inserted = %d, want 1", first.InsertedCount)
	}

	second, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("second run error: %v", err)
	}
	if second.InsertedCount != 0 {
		t.Fatalf("second run inserted = %d, want 0", second.InsertedCount)
	}
	if content.count() != 1 {
		t.Fatalf("stored items = %d, want 1", content.count())
	}
}

func TestRunIsolatesBrokenSources(t *testing.T) {
	t.Parallel()

	content := newFakeContentRepo()
	fetcher := &fakeFetcher{
		results: map[string]domain.FetchResult{
			"http://feed/good": {Entries: []domain.FeedEntry{
				feedEntry("Closer placed on the injured list before the series", "http://a.com/y"),
			}},
		},
		errs: map[string]error{
			"http://feed/bad": errors.New("connection refused"),
		},
	}

	r := NewRunner(RunnerDeps{
		Fetcher: fetcher,
		Content: content,
		Runs:    &fakeRunRepo{},
		Feeds: []domain.FeedSource{
			{Source: "Broken Feed", Sport: "mlb", URL: "http://feed/bad"},
			{Source: "ESPN", Sport: "mlb", URL: "http://feed/good"},
		},
		Now: fixedNow,
	})

	run, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if run.Status != domain.RunSuccess {
		t.Fatalf("run status = %s, want success despite one broken source", run.Status)
	}
	if run.InsertedCount != 1 {
		t.Fatalf("inserted = %d, want 1", run.InsertedCount)
	}
}

func TestRunFailsWhenAllSourcesFail(t *testing.T) {
	t.Parallel()

	runs := &fakeRunRepo{}
	fetcher := &fakeFetcher{errs: map[string]error{
		"http://feed/bad": errors.New("boom"),
	}}

	r := NewRunner(RunnerDeps{
		Fetcher: fetcher,
		Content: newFakeContentRepo(),
		Runs:    runs,
		Feeds:   []domain.FeedSource{{Source: "Broken", Sport: "nhl", URL: "http://feed/bad"}},
		Now:     fixedNow,
	})

	run, err := r.Run(context.Background())
	if err == nil {
		t.Fatal("expected error when every source fails")
	}
	if run.Status != domain.RunFailed {
		t.Fatalf("run status = %s, want failed", run.Status)
	}
	if run.Error == "" {
		t.Fatal("failed run must record an error summary")
	}

	if len(runs.created) != 1 || len(runs.finished) != 1 {
		t.Fatalf("run records: created=%d finished=%d, want 1/1", len(runs.created), len(runs.finished))
	}
	if runs.created[0].Status != domain.RunRunning {
		t.Fatalf("created status = %s, want running", runs.created[0].Status)
	}
	if runs.finished[0].ID != runs.created[0].ID {
		t.Fatal("finish must target the created run")
	}
	if runs.finished[0].FinishedAt.IsZero() {
		t.Fatal("finished run needs a finish timestamp")
	}
}

func TestRunGatesJunkEntries(t *testing.T) {
	t.Parallel()

	content := newFakeContentRepo()
	fetcher := &fakeFetcher{results: map[string]domain.FetchResult{
		"http://feed/nfl": {Entries: []domain.FeedEntry{
			feedEntry("Subscribe to our newsletter for the best coverage", "http://a.com/promo"),
			feedEntry("Too short", "http://a.com/short"),
			feedEntry("Running back carted off during Thursday walkthrough", "http://a.com/real"),
		}},
	}}

	r := NewRunner(RunnerDeps{
		Fetcher: fetcher,
		Content: content,
		Runs:    &fakeRunRepo{},
		Feeds:   []domain.FeedSource{{Source: "ESPN", Sport: "nfl", URL: "http://feed/nfl"}},
		Now:     fixedNow,
	})

	run, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if run.InsertedCount != 1 {
		t.Fatalf("inserted = %d, want only the real story", run.InsertedCount)
	}
	if _, ok := content.byURL("http://a.com/real"); !ok {
		t.Fatal("real story missing")
	}
}

func TestRunInfersSportForGeneralFeeds(t *testing.T) {
	t.Parallel()

	content := newFakeContentRepo()
	fetcher := &fakeFetcher{results: map[string]domain.FetchResult{
		"http://feed/general": {Entries: []domain.FeedEntry{
			{
				Title:     "Walk-off home run caps a wild ninth inning",
				Link:      "http://a.com/mlb-story",
				Published: testNow.Add(-time.Hour),
				Snippet:   "The pitcher left one over the plate.",
			},
		}},
	}}

	r := NewRunner(RunnerDeps{
		Fetcher: fetcher,
		Content: content,
		Runs:    &fakeRunRepo{},
		Feeds:   []domain.FeedSource{{Source: "Yahoo Sports", Sport: "general", URL: "http://feed/general"}},
		Now:     fixedNow,
	})

	if _, err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	item, ok := content.byURL("http://a.com/mlb-story")
	if !ok {
		t.Fatal("item not stored")
	}
	if item.Sport != "mlb" {
		t.Fatalf("sport = %q, want mlb", item.Sport)
	}
	if len(item.Entities.Leagues) != 1 || item.Entities.Leagues[0] != "mlb" {
		t.Fatalf("entity leagues = %v, want [mlb]", item.Entities.Leagues)
	}
}

func TestTruncateKeepsRuneBoundaries(t *testing.T) {
	t.Parallel()

	// 299 ASCII bytes plus a two-byte rune: 301 bytes but exactly 300
	// characters, so nothing should be cut.
	exact := strings.Repeat("a", 299) + "é"
	if got := truncate(exact, 300); got != exact {
		t.Fatalf("truncate cut a string of 300 characters: %q", got[len(got)-4:])
	}

	long := strings.Repeat("é", 300) + "x"
	got := truncate(long, 300)
	if !utf8.ValidString(got) {
		t.Fatalf("truncate produced invalid UTF-8: last bytes %x", got[len(got)-3:])
	}
	if n := utf8.RuneCountInString(got); n != 300 {
		t.Fatalf("truncated to %d characters, want 300", n)
	}
	if got != strings.Repeat("é", 300) {
		t.Fatal("truncation dropped the wrong tail")
	}
}
