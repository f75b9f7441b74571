// Package usecase contains application-level services.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"cloud.google.com/go/civil"
	"github.com/tesso57/rssreader/internal/domain/reading"
	"github.com/tesso57/rssreader/internal/domain/subscription"
)

// FeedFetcher abstracts RSS fetching.
type FeedFetcher interface {
	Fetch(ctx context.Context, sub subscription.Subscription) (reading.RawFeed, error)
}

// FeedNormalizer turns a fetched document into a feed.
type FeedNormalizer interface {
	Normalize(raw reading.RawFeed) (reading.Feed, error)
}

// Sink receives every successfully processed feed.
type Sink interface {
	Push(feed reading.Feed) error
}

// FeedFetchReport summarizes one Collect run.
type FeedFetchReport struct {
	Requested   int
	Succeeded   int
	Failed      int
	Undelivered int
}

// ReadingService coordinates concurrent feed fetching.
type ReadingService struct {
	Fetcher    FeedFetcher
	Normalizer FeedNormalizer
	Log        *slog.Logger
}

// NewReadingService constructs a ReadingService.
func NewReadingService(fetcher FeedFetcher, normalizer FeedNormalizer, log *slog.Logger) ReadingService {
	return ReadingService{
		Fetcher:    fetcher,
		Normalizer: normalizer,
		Log:        log,
	}
}

type outcome struct {
	source string
	line   int
	feed   reading.Feed
	err    error
}

// Collect processes every subscription in its own goroutine and pushes each
// successful feed to sink as soon as it is ready. A nil cutoff disables date
// filtering. It returns once every task has reported.
func (s ReadingService) Collect(ctx context.Context, subs []subscription.Subscription, cutoff *civil.Date, sink Sink) FeedFetchReport {
	if ctx == nil {
		ctx = context.Background()
	}
	log := s.logger()
	report := FeedFetchReport{Requested: len(subs)}

	var since *civil.Date
	if cutoff != nil {
		c := *cutoff
		since = &c
	}

	results := make(chan outcome, len(subs))
	var wg sync.WaitGroup
	for _, sub := range subs {
		wg.Go(func() {
			results <- s.process(ctx, sub, since)
		})
	}

	for range len(subs) {
		res := <-results
		if res.err != nil {
			report.Failed++
			log.Error("feed failed",
				slog.String("feed", res.source),
				slog.Int("line", res.line),
				slog.String("stage", stageOf(res.err)),
				slog.Any("error", res.err),
			)
			continue
		}

		report.Succeeded++
		log.Debug("feed ready",
			slog.String("feed", res.source),
			slog.Int("entries", len(res.feed.Entries)),
			slog.Duration("latency", res.feed.Latency),
		)
		if err := sink.Push(res.feed); err != nil {
			report.Undelivered++
			log.Warn("feed not delivered",
				slog.String("feed", res.source),
				slog.Any("error", err),
			)
		}
	}
	wg.Wait()

	return report
}

func (s ReadingService) process(ctx context.Context, sub subscription.Subscription, cutoff *civil.Date) (res outcome) {
	res.source = sub.URL
	res.line = sub.Line
	defer func() {
		if r := recover(); r != nil {
			res.feed = reading.Feed{}
			res.err = fmt.Errorf("panic while processing %s: %v", sub.URL, r)
		}
	}()

	raw, err := s.Fetcher.Fetch(ctx, sub)
	if err != nil {
		res.err = err
		return res
	}
	feed, err := s.Normalizer.Normalize(raw)
	if err != nil {
		res.err = err
		return res
	}
	if cutoff != nil {
		feed = feed.Since(*cutoff)
	}
	res.feed = feed
	return res
}

func stageOf(err error) string {
	var fetchErr *reading.FetchError
	if errors.As(err, &fetchErr) {
		return "fetch"
	}
	var parseErr *reading.ParseError
	if errors.As(err, &parseErr) {
		return "parse"
	}
	return "internal"
}

func (s ReadingService) logger() *slog.Logger {
	if s.Log != nil {
		return s.Log
	}
	return slog.New(slog.DiscardHandler)
}
