package usecase

import (
	"context"
	"testing"
	"time"
)

func TestSocialBulkAdd(t *testing.T) {
	t.Parallel()

	repo := &fakeSocialRepo{}
	s := NewSocialIngest(repo, nil, fixedNow)

	res, err := s.BulkAdd(context.Background(), []SocialItem{
		{Platform: "X", Handle: "@SportsCenter", Permalink: "https://x.com/sc/1", Text: "big news"},
		{Platform: "tiktok", Handle: "someone", Permalink: "https://t.example/2"},
		{Platform: "instagram", Handle: "   ", Permalink: "https://ig.example/3"},
		{Platform: "instagram", Handle: "nba", Permalink: ""},
	})
	if err != nil {
		t.Fatalf("BulkAdd() error: %v", err)
	}

	if res.Total != 4 || res.Inserted != 1 || res.Skipped != 3 {
		t.Fatalf("result = %+v, want total 4 inserted 1 skipped 3", res)
	}
	if len(res.Errors) != 3 {
		t.Fatalf("errors = %d, want 3", len(res.Errors))
	}
	wantReasons := []string{"platform_must_be_x_or_instagram", "missing_handle", "missing_permalink"}
	for i, want := range wantReasons {
		if res.Errors[i].Reason != want {
			t.Fatalf("error[%d] = %q, want %q", i, res.Errors[i].Reason, want)
		}
	}

	post := repo.posts[0]
	if post.Platform != "x" {
		t.Fatalf("platform = %q, want folded to x", post.Platform)
	}
	if post.Handle != "SportsCenter" {
		t.Fatalf("handle = %q, want @ stripped", post.Handle)
	}
	if post.PostID != "x:https://x.com/sc/1" {
		t.Fatalf("post id = %q", post.PostID)
	}
	if post.SourceTier != defaultSocialTier {
		t.Fatalf("tier = %d, want default %d", post.SourceTier, defaultSocialTier)
	}
	if !post.CreatedAt.Equal(testNow) {
		t.Fatalf("created at = %v, want run clock", post.CreatedAt)
	}
	if post.RankScore != 1 {
		t.Fatalf("rank = %v, want 1 for a fresh post", post.RankScore)
	}
}

func TestSocialBulkAddSkipsDuplicates(t *testing.T) {
	t.Parallel()

	repo := &fakeSocialRepo{}
	s := NewSocialIngest(repo, nil, fixedNow)

	item := SocialItem{Platform: "x", Handle: "nfl", Permalink: "https://x.com/nfl/9"}
	if _, err := s.BulkAdd(context.Background(), []SocialItem{item}); err != nil {
		t.Fatalf("first add error: %v", err)
	}

	res, err := s.BulkAdd(context.Background(), []SocialItem{item})
	if err != nil {
		t.Fatalf("second add error: %v", err)
	}
	if res.Inserted != 0 || res.Skipped != 1 || len(res.Errors) != 0 {
		t.Fatalf("duplicate result = %+v, want clean skip", res)
	}
}

func TestSocialRankDecaysWithProvidedTimestamp(t *testing.T) {
	t.Parallel()

	repo := &fakeSocialRepo{}
	s := NewSocialIngest(repo, nil, fixedNow)

	_, err := s.BulkAdd(context.Background(), []SocialItem{{
		Platform:  "instagram",
		Handle:    "mlb",
		Permalink: "https://ig.example/old",
		CreatedAt: testNow.Add(-6 * time.Hour),
	}})
	if err != nil {
		t.Fatalf("BulkAdd() error: %v", err)
	}
	if got := repo.posts[0].RankScore; got != 0.5 {
		t.Fatalf("rank = %v, want 0.5 at 6h old", got)
	}
}
