// Package app wires configuration to adapters and use cases and owns the
// process lifecycle.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"sportshub/internal/config"
	"sportshub/internal/domain"
	"sportshub/internal/feed"
	"sportshub/internal/infrastructure/scheduler"
	"sportshub/internal/infrastructure/storage"
	"sportshub/internal/infrastructure/telegram"
	"sportshub/internal/logging"
	"sportshub/internal/ports"
	"sportshub/internal/usecase"
)

// Application holds the assembled pipeline and its collaborators.
type Application struct {
	cfg      config.Config
	log      *slog.Logger
	db       *sql.DB
	runner   *usecase.Runner
	digest   *usecase.BreakingDigest
	backfill *usecase.TeamBackfill
	social   *usecase.SocialIngest
	sched    ports.Scheduler
}

// New connects to the database, applies the schema, and assembles every use
// case behind its adapters.
func New(ctx context.Context, cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if err := storage.InitSchema(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	content := storage.NewContentRepository(db)
	runs := storage.NewRunRepository(db)
	socialRepo := storage.NewSocialRepository(db)

	fetcher := feed.NewHTTPFetcher(
		feed.WithClient(&http.Client{Timeout: time.Duration(cfg.Fetch.TimeoutSeconds) * time.Second}),
		feed.WithUserAgent(cfg.Fetch.UserAgent),
	)

	feeds := make([]domain.FeedSource, 0, len(cfg.Feeds))
	for _, f := range cfg.Feeds {
		feeds = append(feeds, domain.FeedSource{Source: f.Source, Sport: f.Sport, URL: f.URL})
	}

	runner := usecase.NewRunner(usecase.RunnerDeps{
		Fetcher:        fetcher,
		Content:        content,
		Runs:           runs,
		Logger:         logging.Component(baseLogger, "ingest"),
		Feeds:          feeds,
		Concurrency:    cfg.Ingest.Concurrency,
		BlockedDomains: cfg.Quality.BlockedDomains,
	})

	a := &Application{
		cfg:    cfg,
		log:    baseLogger,
		db:     db,
		runner: runner,
		backfill: usecase.NewTeamBackfill(content,
			logging.Component(baseLogger, "backfill"), 0),
		social: usecase.NewSocialIngest(socialRepo,
			logging.Component(baseLogger, "social"), nil),
		sched: scheduler.NewIntervalScheduler(
			time.Duration(cfg.Scheduler.IntervalMinutes) * time.Minute),
	}

	tg := cfg.Notifications.Telegram
	if tg.BotToken != "" && tg.ChatID != "" {
		a.digest = usecase.NewBreakingDigest(content,
			telegram.NewNotifier(tg.BotToken, tg.ChatID),
			logging.Component(baseLogger, "digest"),
			tg.MinUrgency, 0)
	}

	return a, nil
}

// RunOnce executes a single ingestion run and, when configured, publishes the
// breaking digest afterwards. A failed digest never fails the run.
func (a *Application) RunOnce(ctx context.Context) error {
	run, err := a.runner.Run(ctx)
	if err != nil {
		return fmt.Errorf("ingestion run %s: %w", run.ID, err)
	}

	if a.digest != nil {
		if err := a.digest.Publish(ctx); err != nil {
			a.log.Error("digest publish failed", "error", err)
		}
	}
	return nil
}

// RunScheduled keeps ingesting on the configured interval until the context
// is cancelled.
func (a *Application) RunScheduled(ctx context.Context) error {
	err := a.sched.Start(ctx, func(time.Time) {
		if err := a.RunOnce(ctx); err != nil {
			a.log.Error("scheduled run failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("start scheduler: %w", err)
	}

	<-ctx.Done()
	return a.sched.Stop(context.Background())
}

// Backfill re-runs team extraction over stored items missing enrichment.
func (a *Application) Backfill(ctx context.Context) error {
	stats, err := a.backfill.Run(ctx)
	if err != nil {
		return fmt.Errorf("team backfill: %w", err)
	}
	a.log.Info("team backfill complete", "scanned", stats.Scanned, "updated", stats.Updated)
	return nil
}

// Social exposes the bulk social ingestion use case.
func (a *Application) Social() *usecase.SocialIngest {
	return a.social
}

// Close releases the database handle.
func (a *Application) Close() error {
	return a.db.Close()
}
