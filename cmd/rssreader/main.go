// Command rssreader fetches RSS feeds concurrently and prints their entries.
package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/tesso57/rssreader/internal/application/usecase"
	"github.com/tesso57/rssreader/internal/infrastructure/config"
	"github.com/tesso57/rssreader/internal/infrastructure/feed"
	"github.com/tesso57/rssreader/internal/infrastructure/logging"
	"github.com/tesso57/rssreader/internal/infrastructure/sink"
	"github.com/tesso57/rssreader/internal/infrastructure/source"
	"github.com/tesso57/rssreader/internal/presentation/console"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin, stdout *os.File, stderr io.Writer) int {
	cfg, err := config.Load(args)
	if err != nil {
		logging.New("info", stderr).Error("invalid configuration", slog.Any("error", err))
		return 1
	}
	logger := logging.New(cfg.LogLevel, stderr)

	list, err := source.Open(stdin, cfg.File)
	if err != nil {
		logger.Error("couldn't open the feed list", slog.Any("error", err))
		return 1
	}
	subs, err := source.Read(list)
	_ = list.Close()
	if err != nil {
		logger.Error("couldn't read the feed list", slog.Any("error", err))
		return 1
	}

	renderer, err := console.NewRenderer(cfg.Format, stdout, console.TerminalWidth(stdout))
	if err != nil {
		logger.Error("invalid configuration", slog.Any("error", err))
		return 1
	}

	svc := usecase.NewReadingService(feed.NewFetcher(cfg.UserAgent, cfg.Timeout), feed.Normalizer{}, logger)
	out := sink.NewChannel(len(subs))

	reports := make(chan usecase.FeedFetchReport, 1)
	go func() {
		defer out.CloseSend()
		reports <- svc.Collect(ctx, subs, cfg.Cutoff(), out)
	}()

	for f := range out.C() {
		if err := renderer.Render(f); err != nil {
			logger.Error("couldn't write output", slog.Any("error", err))
			out.Close()
			break
		}
	}
	report := <-reports

	logger.Info("done",
		slog.Int("requested", report.Requested),
		slog.Int("succeeded", report.Succeeded),
		slog.Int("failed", report.Failed),
		slog.Int("undelivered", report.Undelivered),
	)
	return 0
}
