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

// SocialRepository persists embedded social posts.
type SocialRepository struct {
	db *sql.DB
}

var _ ports.SocialRepository = (*SocialRepository)(nil)

func NewSocialRepository(db *sql.DB) *SocialRepository {
	return &SocialRepository{db: db}
}

// HasPost reports whether a post with this platform identity is stored.
func (r *SocialRepository) HasPost(ctx context.Context, platform, postID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM social_posts WHERE platform = $1 AND post_id = $2)`,
		platform, postID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check post %s: %w", postID, err)
	}
	return exists, nil
}

// SavePosts inserts the batch in one transaction. Identity conflicts are
// skipped, the rest still land.
func (r *SocialRepository) SavePosts(ctx context.Context, posts []domain.SocialPost) (int, error) {
	if len(posts) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO social_posts (
			platform, handle, post_id, permalink, text, created_at,
			media_urls, metrics, source_tier, rank_score
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (platform, post_id) DO NOTHING`)
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, post := range posts {
		metrics, err := json.Marshal(post.Metrics)
		if err != nil {
			return 0, fmt.Errorf("marshal metrics: %w", err)
		}
		res, err := stmt.ExecContext(ctx,
			post.Platform,
			post.Handle,
			post.PostID,
			post.Permalink,
			nullString(post.Text),
			post.CreatedAt,
			pq.StringArray(orEmpty(post.MediaURLs)),
			metrics,
			post.SourceTier,
			post.RankScore,
		)
		if err != nil {
			return 0, fmt.Errorf("insert post %s: %w", post.PostID, err)
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
