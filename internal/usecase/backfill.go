package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"sportshub/internal/classify"
	"sportshub/internal/normalize"
	"sportshub/internal/ports"
)

const defaultBackfillBatch = 500

// BackfillStats reports one backfill pass.
type BackfillStats struct {
	Scanned int
	Updated int
}

// TeamBackfill re-runs team extraction over stored items whose enrichment
// came up empty, typically after the alias table grew. It only fills empty
// fields and never overwrites values the pipeline already produced.
type TeamBackfill struct {
	content   ports.ContentRepository
	log       *slog.Logger
	batchSize uint64
}

func NewTeamBackfill(content ports.ContentRepository, log *slog.Logger, batchSize uint64) *TeamBackfill {
	if log == nil {
		log = slog.Default()
	}
	if batchSize == 0 {
		batchSize = defaultBackfillBatch
	}
	return &TeamBackfill{content: content, log: log, batchSize: batchSize}
}

// Run pages through unenriched items with an id cursor. A full batch where
// the extractor tags nothing means the remainder is not taggable either, so
// the pass stops early instead of scanning to the end of the table.
func (b *TeamBackfill) Run(ctx context.Context) (BackfillStats, error) {
	var stats BackfillStats
	var lastID int64

	for {
		items, err := b.content.MissingTeams(ctx, lastID, b.batchSize)
		if err != nil {
			return stats, fmt.Errorf("load backfill batch: %w", err)
		}
		if len(items) == 0 {
			break
		}

		batchUpdated := 0
		for _, item := range items {
			lastID = item.ID
			stats.Scanned++

			text := item.Snippet
			if text == "" {
				text = item.Summary
			}
			teams := classify.Teams(normalize.ForMatch(item.Title+" "+text), item.Sport)
			if len(teams) == 0 {
				continue
			}

			entities := item.Entities
			if len(entities.Teams) == 0 {
				entities.Teams = teams
			}
			if entities.Players == nil {
				entities.Players = []string{}
			}
			if entities.Leagues == nil {
				entities.Leagues = []string{}
			}

			filled := item.Teams
			if len(filled) == 0 {
				filled = teams
			}

			if err := b.content.FillTeams(ctx, item.ID, filled, entities); err != nil {
				return stats, fmt.Errorf("fill teams for item %d: %w", item.ID, err)
			}
			batchUpdated++
			stats.Updated++
		}

		b.log.Info("backfill progress",
			"scanned", stats.Scanned, "updated", stats.Updated, "last_id", lastID)

		if batchUpdated == 0 {
			b.log.Info("backfill stopping early, batch produced no updates")
			break
		}
	}

	b.log.Info("backfill done", "scanned", stats.Scanned, "updated", stats.Updated)
	return stats, nil
}
