package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"sportshub/internal/domain"
	"sportshub/internal/ports"
	"sportshub/internal/score"
)

const defaultSocialTier = 2

// SocialItem is one inbound embed request before validation.
type SocialItem struct {
	Platform   string
	Handle     string
	Permalink  string
	Text       string
	MediaURLs  []string
	SourceTier int
	CreatedAt  time.Time // zero means "now"
}

// SocialItemError records why one item of a bulk request was refused.
type SocialItemError struct {
	Permalink string
	Reason    string
}

// SocialBulkResult summarizes a bulk add: every item is either inserted,
// skipped as a known duplicate, or refused with a per-item reason.
type SocialBulkResult struct {
	Inserted int
	Skipped  int
	Errors   []SocialItemError
	Total    int
}

// SocialIngest validates and persists embedded social posts.
type SocialIngest struct {
	repo ports.SocialRepository
	log  *slog.Logger
	now  func() time.Time
}

func NewSocialIngest(repo ports.SocialRepository, log *slog.Logger, now func() time.Time) *SocialIngest {
	if log == nil {
		log = slog.Default()
	}
	if now == nil {
		now = time.Now
	}
	return &SocialIngest{repo: repo, log: log, now: now}
}

// BulkAdd processes the whole batch even when individual items are invalid
// and commits the valid remainder in one transaction.
func (s *SocialIngest) BulkAdd(ctx context.Context, items []SocialItem) (SocialBulkResult, error) {
	res := SocialBulkResult{Total: len(items)}

	var toSave []domain.SocialPost
	for _, it := range items {
		post, reason := s.validate(ctx, it)
		if reason != "" {
			if reason == "duplicate" {
				res.Skipped++
				continue
			}
			res.Errors = append(res.Errors, SocialItemError{Permalink: it.Permalink, Reason: reason})
			res.Skipped++
			continue
		}
		toSave = append(toSave, post)
	}

	if len(toSave) > 0 {
		inserted, err := s.repo.SavePosts(ctx, toSave)
		if err != nil {
			return res, fmt.Errorf("save social posts: %w", err)
		}
		res.Inserted = inserted
		// conflicts that raced in between HasPost and the insert
		res.Skipped += len(toSave) - inserted
	}

	s.log.Info("social bulk add",
		"total", res.Total, "inserted", res.Inserted,
		"skipped", res.Skipped, "errors", len(res.Errors))
	return res, nil
}

func (s *SocialIngest) validate(ctx context.Context, it SocialItem) (domain.SocialPost, string) {
	platform := strings.ToLower(strings.TrimSpace(it.Platform))
	if platform != "x" && platform != "instagram" {
		return domain.SocialPost{}, "platform_must_be_x_or_instagram"
	}

	handle := strings.TrimPrefix(strings.TrimSpace(it.Handle), "@")
	if handle == "" {
		return domain.SocialPost{}, "missing_handle"
	}

	permalink := strings.TrimSpace(it.Permalink)
	if permalink == "" {
		return domain.SocialPost{}, "missing_permalink"
	}

	// stable identity even if per-platform URL parsing changes later
	postID := platform + ":" + permalink

	exists, err := s.repo.HasPost(ctx, platform, postID)
	if err != nil {
		s.log.Error("social duplicate check failed", "post_id", postID, "error", err)
		return domain.SocialPost{}, "duplicate_check_failed"
	}
	if exists {
		return domain.SocialPost{}, "duplicate"
	}

	createdAt := it.CreatedAt
	if createdAt.IsZero() {
		createdAt = s.now().UTC()
	}
	tier := it.SourceTier
	if tier == 0 {
		tier = defaultSocialTier
	}
	media := it.MediaURLs
	if media == nil {
		media = []string{}
	}

	return domain.SocialPost{
		Platform:   platform,
		Handle:     handle,
		PostID:     postID,
		Permalink:  permalink,
		Text:       it.Text,
		CreatedAt:  createdAt,
		MediaURLs:  media,
		Metrics:    map[string]float64{},
		SourceTier: tier,
		RankScore:  score.SocialRank(createdAt, s.now().UTC()),
	}, ""
}
