// Package reading defines core reading models.
package reading

import (
	"time"

	"cloud.google.com/go/civil"
)

// Entry represents a single normalized feed entry.
type Entry struct {
	Title string
	Date  civil.Date
}

// Feed represents a normalized feed ready to be handed to a sink.
type Feed struct {
	Name    string
	Source  string
	Latency time.Duration
	Entries []Entry
}

// RawFeed holds the bytes of a fetched feed document.
type RawFeed struct {
	Source  string
	Body    []byte
	Latency time.Duration
}

// Since returns a copy of the feed keeping only entries dated on or after cutoff.
// Entry order is preserved and the receiver is left untouched.
func (f Feed) Since(cutoff civil.Date) Feed {
	entries := make([]Entry, 0, len(f.Entries))
	for _, entry := range f.Entries {
		if entry.Date.Before(cutoff) {
			continue
		}
		entries = append(entries, entry)
	}
	f.Entries = entries
	return f
}
