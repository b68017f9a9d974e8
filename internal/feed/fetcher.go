// Package feed downloads and parses RSS/Atom sources into the neutral entry
// shape the ingestion pipeline consumes.
package feed

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"

	"sportshub/internal/domain"
	"sportshub/internal/ports"
)

const (
	defaultTimeout   = 20 * time.Second
	defaultUserAgent = "SportsHubBot/1.0 (RSS aggregator; contact: ops@sportshub.local)"
	acceptHeader     = "application/rss+xml, application/xml;q=0.9, text/xml;q=0.8, */*;q=0.1"
)

// HTTPFetcher fetches a feed over HTTP and parses it with gofeed. Safe for
// concurrent use: gofeed parsers are not, so one is built per call.
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
}

var _ ports.FeedFetcher = (*HTTPFetcher)(nil)

type FetcherOption func(*HTTPFetcher)

func WithClient(c *http.Client) FetcherOption {
	return func(f *HTTPFetcher) { f.client = c }
}

func WithUserAgent(ua string) FetcherOption {
	return func(f *HTTPFetcher) {
		if ua != "" {
			f.userAgent = ua
		}
	}
}

func NewHTTPFetcher(opts ...FetcherOption) *HTTPFetcher {
	f := &HTTPFetcher{
		client:    &http.Client{Timeout: defaultTimeout},
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch downloads and parses one feed. Entries missing a link, a title, or
// any usable timestamp are counted as skipped rather than failing the whole
// feed; transport and parse errors fail it.
func (f *HTTPFetcher) Fetch(ctx context.Context, feedURL string) (domain.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return domain.FetchResult{}, fmt.Errorf("build request for %s: %w", feedURL, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("Accept-Encoding", "identity")

	resp, err := f.client.Do(req)
	if err != nil {
		return domain.FetchResult{}, fmt.Errorf("fetch %s: %w", feedURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.FetchResult{}, fmt.Errorf("fetch %s: unexpected status %d", feedURL, resp.StatusCode)
	}

	parsed, err := gofeed.NewParser().Parse(resp.Body)
	if err != nil {
		return domain.FetchResult{}, fmt.Errorf("parse %s: %w", feedURL, err)
	}

	var res domain.FetchResult
	for _, item := range parsed.Items {
		if item.Link == "" || item.Title == "" {
			res.Skipped++
			continue
		}
		published, ok := itemTime(item)
		if !ok {
			res.Skipped++
			continue
		}
		res.Entries = append(res.Entries, domain.FeedEntry{
			Title:     item.Title,
			Link:      item.Link,
			Published: published,
			Snippet:   firstNonEmpty(item.Description, item.Content),
		})
	}
	return res, nil
}

// itemTime prefers the timestamps gofeed already parsed and falls back to
// parsing the raw strings, which catches the US-abbreviation zones gofeed
// leaves at offset zero.
func itemTime(item *gofeed.Item) (time.Time, bool) {
	for _, raw := range []string{item.Published, item.Updated} {
		if raw == "" {
			continue
		}
		if t, err := ParseTimestamp(raw); err == nil {
			return t, true
		}
	}
	if item.PublishedParsed != nil {
		return item.PublishedParsed.UTC(), true
	}
	if item.UpdatedParsed != nil {
		return item.UpdatedParsed.UTC(), true
	}
	return time.Time{}, false
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
