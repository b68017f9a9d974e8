package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sportshub/internal/app"
	"sportshub/internal/config"
	"sportshub/internal/logging"
	"sportshub/internal/usecase"
)

func main() {
	loop := flag.Bool("loop", false, "run ingestion on the configured interval instead of once")
	backfill := flag.Bool("backfill-teams", false, "re-run team extraction over stored items and exit")
	socialFile := flag.String("social-import", "", "bulk-import social posts from a JSON file and exit")
	flag.Parse()

	cfg := config.Load()
	logger := logging.New(cfg.Logging.Level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("startup failed", "error", err)
		os.Exit(1)
	}

	switch {
	case *backfill:
		err = application.Backfill(ctx)
	case *socialFile != "":
		err = importSocial(ctx, application, *socialFile)
	case *loop:
		err = application.RunScheduled(ctx)
	default:
		err = application.RunOnce(ctx)
	}

	if closeErr := application.Close(); closeErr != nil {
		logger.Error("database close failed", "error", closeErr)
	}
	if err != nil {
		logger.Error("application stopped", "error", err)
		os.Exit(1)
	}
}

type socialImportItem struct {
	Platform   string    `json:"platform"`
	Handle     string    `json:"handle"`
	Permalink  string    `json:"permalink"`
	Text       string    `json:"text"`
	MediaURLs  []string  `json:"media_urls"`
	SourceTier int       `json:"source_tier"`
	CreatedAt  time.Time `json:"created_at"`
}

type socialImportFile struct {
	Items []socialImportItem `json:"items"`
}

func importSocial(ctx context.Context, application *app.Application, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read social import file: %w", err)
	}

	var file socialImportFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("parse social import file: %w", err)
	}

	items := make([]usecase.SocialItem, 0, len(file.Items))
	for _, it := range file.Items {
		items = append(items, usecase.SocialItem{
			Platform:   it.Platform,
			Handle:     it.Handle,
			Permalink:  it.Permalink,
			Text:       it.Text,
			MediaURLs:  it.MediaURLs,
			SourceTier: it.SourceTier,
			CreatedAt:  it.CreatedAt,
		})
	}

	res, err := application.Social().BulkAdd(ctx, items)
	if err != nil {
		return fmt.Errorf("social bulk add: %w", err)
	}
	for _, e := range res.Errors {
		fmt.Fprintf(os.Stderr, "skipped %s: %s\n", e.Permalink, e.Reason)
	}
	fmt.Printf("social import: total=%d inserted=%d skipped=%d\n", res.Total, res.Inserted, res.Skipped)
	return nil
}
