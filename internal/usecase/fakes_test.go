package usecase

import (
	"context"
	"errors"
	"sync"

	"sportshub/internal/domain"
	"sportshub/internal/ports"
)

type fakeFetcher struct {
	results map[string]domain.FetchResult
	errs    map[string]error
}

func (f *fakeFetcher) Fetch(_ context.Context, feedURL string) (domain.FetchResult, error) {
	if err, ok := f.errs[feedURL]; ok {
		return domain.FetchResult{}, err
	}
	res, ok := f.results[feedURL]
	if !ok {
		return domain.FetchResult{}, errors.New("unexpected feed url " + feedURL)
	}
	return res, nil
}

// fakeContentRepo is an in-memory ContentRepository good enough to exercise
// the write path and the backfill cursor.
type fakeContentRepo struct {
	mu       sync.Mutex
	items    []domain.ContentItem
	nextID   int64
	breaking []domain.RankedItem
	filled   map[int64][]string
}

var _ ports.ContentRepository = (*fakeContentRepo)(nil)

func newFakeContentRepo() *fakeContentRepo {
	return &fakeContentRepo{filled: map[int64][]string{}}
}

func (f *fakeContentRepo) FilterExistingURLs(_ context.Context, urls []string) (map[string]bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]bool)
	for _, u := range urls {
		for _, it := range f.items {
			if it.URL == u {
				out[u] = true
			}
		}
	}
	return out, nil
}

func (f *fakeContentRepo) ExistingClusters(_ context.Context, keys []string) (map[string]bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]bool)
	for _, k := range keys {
		for _, it := range f.items {
			if it.DedupeGroupID == k {
				out[k] = true
			}
		}
	}
	return out, nil
}

func (f *fakeContentRepo) SaveBatch(_ context.Context, items []domain.ContentItem) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	inserted := 0
	for _, item := range items {
		conflict := false
		for _, it := range f.items {
			if it.URL == item.URL {
				conflict = true
				break
			}
		}
		if conflict {
			continue
		}
		f.nextID++
		item.ID = f.nextID
		f.items = append(f.items, item)
		inserted++
	}
	return inserted, nil
}

func (f *fakeContentRepo) TopItems(context.Context, domain.FeedFilter) ([]domain.RankedItem, error) {
	return nil, nil
}

func (f *fakeContentRepo) BreakingItems(context.Context, domain.FeedFilter) ([]domain.RankedItem, error) {
	return f.breaking, nil
}

func (f *fakeContentRepo) ClusterMembers(context.Context, string) ([]domain.ContentItem, error) {
	return nil, nil
}

func (f *fakeContentRepo) Related(context.Context, domain.ContentItem, uint64) ([]domain.ContentItem, error) {
	return nil, nil
}

func (f *fakeContentRepo) ItemWithCluster(context.Context, int64) (domain.RankedItem, []domain.ContentItem, error) {
	return domain.RankedItem{}, nil, errors.New("not found")
}

func (f *fakeContentRepo) MissingTeams(_ context.Context, afterID int64, limit uint64) ([]domain.ContentItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.ContentItem
	for _, it := range f.items {
		if it.ID > afterID && len(it.Teams) == 0 {
			out = append(out, it)
			if uint64(len(out)) == limit {
				break
			}
		}
	}
	return out, nil
}

func (f *fakeContentRepo) FillTeams(_ context.Context, id int64, teams []string, entities domain.Entities) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].Teams = teams
			f.items[i].Entities = entities
			f.filled[id] = teams
			return nil
		}
	}
	return errors.New("item not found")
}

func (f *fakeContentRepo) byURL(url string) (domain.ContentItem, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, it := range f.items {
		if it.URL == url {
			return it, true
		}
	}
	return domain.ContentItem{}, false
}

func (f *fakeContentRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.items)
}

type fakeRunRepo struct {
	mu       sync.Mutex
	created  []domain.IngestRun
	finished []domain.IngestRun
}

var _ ports.RunRepository = (*fakeRunRepo)(nil)

func (f *fakeRunRepo) CreateRun(_ context.Context, run domain.IngestRun) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, run)
	return nil
}

func (f *fakeRunRepo) FinishRun(_ context.Context, run domain.IngestRun) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.finished = append(f.finished, run)
	return nil
}

type fakeSocialRepo struct {
	mu    sync.Mutex
	posts []domain.SocialPost
}

var _ ports.SocialRepository = (*fakeSocialRepo)(nil)

func (f *fakeSocialRepo) HasPost(_ context.Context, platform, postID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.posts {
		if p.Platform == platform && p.PostID == postID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeSocialRepo) SavePosts(_ context.Context, posts []domain.SocialPost) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	inserted := 0
	for _, post := range posts {
		conflict := false
		for _, p := range f.posts {
			if p.Platform == post.Platform && p.PostID == post.PostID {
				conflict = true
				break
			}
		}
		if conflict {
			continue
		}
		f.posts = append(f.posts, post)
		inserted++
	}
	return inserted, nil
}

type fakeNotifier struct {
	mu      sync.Mutex
	digests []string
	err     error
}

var _ ports.Notifier = (*fakeNotifier)(nil)

func (f *fakeNotifier) PublishDigest(_ context.Context, digest string) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.digests = append(f.digests, digest)
	return nil
}
