// Package source reads the list of feeds to fetch.
package source

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/tesso57/rssreader/internal/domain/subscription"
	"golang.org/x/term"
)

// ErrNoInput is returned when neither a file nor a piped stdin is available.
var ErrNoInput = errors.New("no feed list: pipe one on stdin or pass --file")

const maxLineSize = 1 << 20

// Open returns the feed list to read. An explicit path wins; otherwise stdin
// is used when it is not a terminal.
func Open(stdin *os.File, path string) (io.ReadCloser, error) {
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open feed list: %w", err)
		}
		return f, nil
	}
	if stdin != nil && !term.IsTerminal(int(stdin.Fd())) {
		return io.NopCloser(stdin), nil
	}
	return nil, ErrNoInput
}

// Read parses a feed list. The first line is a header and is skipped; on every
// other line the first comma-separated field must be an absolute http(s) URL.
// Blank lines are only allowed at the end of the list.
func Read(r io.Reader) ([]subscription.Subscription, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var subs []subscription.Subscription
	line, blank := 0, 0
	for scanner.Scan() {
		line++
		if line == 1 {
			continue
		}

		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			if blank == 0 {
				blank = line
			}
			continue
		}
		if blank != 0 {
			return nil, fmt.Errorf("line %d: couldn't parse the url \"\": %w", blank, errEmptyURL)
		}
		field, _, _ := strings.Cut(text, ",")
		field = strings.TrimSpace(field)

		if err := validateURL(field); err != nil {
			return nil, fmt.Errorf("line %d: couldn't parse the url %q: %w", line, field, err)
		}
		subs = append(subs, subscription.Subscription{URL: field, Line: line})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read feed list: %w", err)
	}
	return subs, nil
}

var errEmptyURL = errors.New("empty url")

func validateURL(raw string) error {
	if raw == "" {
		return errEmptyURL
	}
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("missing host")
	}
	return nil
}
