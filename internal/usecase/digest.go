package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"sportshub/internal/domain"
	"sportshub/internal/ports"
)

const (
	defaultDigestMinUrgency = 0.9
	defaultDigestLimit      = 10
)

// BreakingDigest publishes the current high-urgency stories to a notifier
// channel after ingestion runs.
type BreakingDigest struct {
	content    ports.ContentRepository
	notifier   ports.Notifier
	log        *slog.Logger
	minUrgency float64
	limit      uint64
}

func NewBreakingDigest(content ports.ContentRepository, notifier ports.Notifier, log *slog.Logger, minUrgency float64, limit uint64) *BreakingDigest {
	if log == nil {
		log = slog.Default()
	}
	if minUrgency <= 0 {
		minUrgency = defaultDigestMinUrgency
	}
	if limit == 0 {
		limit = defaultDigestLimit
	}
	return &BreakingDigest{
		content:    content,
		notifier:   notifier,
		log:        log,
		minUrgency: minUrgency,
		limit:      limit,
	}
}

// Publish sends the digest. No breaking items means no message at all.
func (d *BreakingDigest) Publish(ctx context.Context) error {
	items, err := d.content.BreakingItems(ctx, domain.FeedFilter{
		MinUrgency: d.minUrgency,
		Limit:      d.limit,
	})
	if err != nil {
		return fmt.Errorf("load breaking items: %w", err)
	}
	if len(items) == 0 {
		d.log.Debug("no breaking items, digest skipped")
		return nil
	}

	if err := d.notifier.PublishDigest(ctx, FormatBreakingDigest(items)); err != nil {
		return fmt.Errorf("publish digest: %w", err)
	}
	d.log.Info("breaking digest published", "items", len(items))
	return nil
}

// FormatBreakingDigest renders the plain-text digest body.
func FormatBreakingDigest(items []domain.RankedItem) string {
	var b strings.Builder
	b.WriteString("Breaking sports news\n")
	for i, it := range items {
		b.WriteString(fmt.Sprintf("%d. ", i+1))
		if it.Sport != "" {
			b.WriteString("[" + strings.ToUpper(it.Sport) + "] ")
		}
		b.WriteString(it.Title)
		if len(it.Teams) > 0 {
			b.WriteString(" (" + strings.Join(it.Teams, ", ") + ")")
		}
		b.WriteString("\n")
		b.WriteString("   " + it.URL + "\n")
	}
	return b.String()
}
