// Package console writes normalized feeds to a terminal or pipe.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	jsoniter "github.com/json-iterator/go"
	"github.com/kr/pretty"
	"github.com/tesso57/rssreader/internal/application/settings"
	"github.com/tesso57/rssreader/internal/domain/reading"
	"golang.org/x/term"
)

// DefaultWidth is used when the output is not a terminal.
const DefaultWidth = 100

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Renderer writes one record per feed.
type Renderer interface {
	Render(feed reading.Feed) error
}

// NewRenderer returns the renderer for format. width only affects the text format.
func NewRenderer(format string, w io.Writer, width int) (Renderer, error) {
	switch format {
	case "", settings.FormatDebug:
		return debugRenderer{w: w}, nil
	case settings.FormatJSON:
		return jsonRenderer{enc: json.NewEncoder(w)}, nil
	case settings.FormatText:
		if width <= 0 {
			width = DefaultWidth
		}
		return textRenderer{w: w, width: width}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// TerminalWidth reports the column count of f, or DefaultWidth when f is not a terminal.
func TerminalWidth(f *os.File) int {
	if f == nil {
		return DefaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	return width
}

type debugRenderer struct {
	w io.Writer
}

func (r debugRenderer) Render(feed reading.Feed) error {
	_, err := pretty.Fprintf(r.w, "%# v\n", feed)
	return err
}

type entryRecord struct {
	Title string `json:"title"`
	Date  string `json:"date"`
}

type feedRecord struct {
	Name      string        `json:"name"`
	Source    string        `json:"source"`
	LatencyMS int64         `json:"latency_ms"`
	Entries   []entryRecord `json:"entries"`
}

func newFeedRecord(feed reading.Feed) feedRecord {
	entries := make([]entryRecord, 0, len(feed.Entries))
	for _, e := range feed.Entries {
		entries = append(entries, entryRecord{Title: e.Title, Date: e.Date.String()})
	}
	return feedRecord{
		Name:      feed.Name,
		Source:    feed.Source,
		LatencyMS: feed.Latency.Milliseconds(),
		Entries:   entries,
	}
}

type jsonRenderer struct {
	enc *jsoniter.Encoder
}

func (r jsonRenderer) Render(feed reading.Feed) error {
	return r.enc.Encode(newFeedRecord(feed))
}

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	sourceStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type textRenderer struct {
	w     io.Writer
	width int
}

func (r textRenderer) Render(feed reading.Feed) error {
	name := fitLine(feed.Name, r.width)
	if name == "" {
		name = fitLine(feed.Source, r.width)
	}
	heading := headingStyle.Render(name)
	meta := sourceStyle.Render(cut(fmt.Sprintf("%s  %dms", feed.Source, feed.Latency.Milliseconds()), r.width))
	if _, err := fmt.Fprintf(r.w, "%s\n%s\n", heading, meta); err != nil {
		return err
	}

	for _, e := range feed.Entries {
		line := cut(e.Date.String()+"  "+fitLine(e.Title, r.width), r.width)
		if _, err := fmt.Fprintln(r.w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(r.w)
	return err
}
