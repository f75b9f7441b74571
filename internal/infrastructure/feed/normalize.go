package feed

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/mmcdole/gofeed"
	"github.com/mmcdole/gofeed/rss"
	"github.com/tesso57/rssreader/internal/domain/reading"
)

// ErrNotRSS is returned for well-formed Atom or JSON feeds.
var ErrNotRSS = errors.New("not an RSS document")

// ParserFunc is exposed for testing.
// It allows mocking the document parsing step.
var ParserFunc = defaultParser

// The universal parser only detects the document type. Items are read from
// the RSS parser so that pubDate is never substituted by dc:date.
func defaultParser(r io.Reader) (*rss.Feed, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	switch gofeed.DetectFeedType(bytes.NewReader(body)) {
	case gofeed.FeedTypeRSS:
		return (&rss.Parser{}).Parse(bytes.NewReader(body))
	case gofeed.FeedTypeAtom:
		return nil, fmt.Errorf("%w: found Atom", ErrNotRSS)
	case gofeed.FeedTypeJSON:
		return nil, fmt.Errorf("%w: found JSON Feed", ErrNotRSS)
	default:
		return nil, gofeed.ErrFeedTypeNotDetected
	}
}

// Normalizer turns raw feed documents into reading.Feed values.
type Normalizer struct{}

// Normalize parses raw into a feed. Items without a title or a pubDate are
// dropped; a pubDate that is not RFC 2822 fails the whole feed.
func (Normalizer) Normalize(raw reading.RawFeed) (reading.Feed, error) {
	parsed, err := ParserFunc(bytes.NewReader(raw.Body))
	if err != nil {
		return reading.Feed{}, &reading.ParseError{Source: raw.Source, Err: fmt.Errorf("invalid feed content: %w", err)}
	}
	if parsed == nil {
		return reading.Feed{}, &reading.ParseError{Source: raw.Source, Err: fmt.Errorf("invalid feed content: empty document")}
	}

	entries := make([]reading.Entry, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if item == nil || strings.TrimSpace(item.Title) == "" || strings.TrimSpace(item.PubDate) == "" {
			continue
		}

		t, err := ParsePubDate(item.PubDate)
		if err != nil {
			return reading.Feed{}, &reading.ParseError{
				Source: raw.Source,
				Err:    fmt.Errorf("couldn't parse %q publish date, RFC 2822 date format needed: %w", item.PubDate, err),
			}
		}
		entries = append(entries, reading.Entry{Title: item.Title, Date: civil.DateOf(t)})
	}

	return reading.Feed{
		Name:    parsed.Title,
		Source:  raw.Source,
		Latency: raw.Latency,
		Entries: entries,
	}, nil
}
