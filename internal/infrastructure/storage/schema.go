package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// schemaStatements create the full schema. Every statement is idempotent so
// startup can run them unconditionally.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS content_items (
		id              BIGSERIAL PRIMARY KEY,
		source          TEXT NOT NULL,
		sport           TEXT,
		title           TEXT NOT NULL,
		url             TEXT NOT NULL UNIQUE,
		published_at    TIMESTAMP NOT NULL,
		snippet         TEXT,
		summary         TEXT,
		topics          TEXT[] NOT NULL DEFAULT '{}',
		teams           TEXT[] NOT NULL DEFAULT '{}',
		entities        JSONB,
		urgency         DOUBLE PRECISION NOT NULL DEFAULT 0,
		confidence      DOUBLE PRECISION,
		sentiment       TEXT,
		key_points      TEXT[],
		canonical_id    TEXT,
		dedupe_group_id TEXT,
		is_duplicate    BOOLEAN NOT NULL DEFAULT FALSE,
		source_tier     INTEGER NOT NULL DEFAULT 3,
		rank_score      DOUBLE PRECISION,
		created_at      TIMESTAMP NOT NULL DEFAULT (NOW() AT TIME ZONE 'utc')
	)`,
	`CREATE INDEX IF NOT EXISTS ix_content_sport_published ON content_items (sport, published_at)`,
	`CREATE INDEX IF NOT EXISTS ix_content_rank ON content_items (rank_score DESC)`,
	`CREATE INDEX IF NOT EXISTS ix_content_dedupe_group ON content_items (dedupe_group_id)`,
	`CREATE INDEX IF NOT EXISTS ix_content_urgency ON content_items (urgency)`,

	`CREATE TABLE IF NOT EXISTS ingest_runs (
		id             UUID PRIMARY KEY,
		started_at     TIMESTAMP NOT NULL,
		finished_at    TIMESTAMP,
		status         TEXT NOT NULL DEFAULT 'running',
		inserted_count INTEGER NOT NULL DEFAULT 0,
		error          VARCHAR(2000)
	)`,
	`CREATE INDEX IF NOT EXISTS ix_ingest_runs_started ON ingest_runs (started_at)`,

	`CREATE TABLE IF NOT EXISTS social_posts (
		id          BIGSERIAL PRIMARY KEY,
		platform    TEXT NOT NULL,
		handle      TEXT NOT NULL,
		post_id     TEXT NOT NULL,
		permalink   TEXT NOT NULL,
		text        TEXT,
		created_at  TIMESTAMP NOT NULL,
		media_urls  TEXT[] NOT NULL DEFAULT '{}',
		metrics     JSONB NOT NULL DEFAULT '{}',
		source_tier INTEGER NOT NULL DEFAULT 2,
		rank_score  DOUBLE PRECISION,
		UNIQUE (platform, post_id)
	)`,
}

// InitSchema creates the tables and indexes on startup.
func InitSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement: %w", err)
		}
	}
	return nil
}
