// Package sink delivers normalized feeds to their consumer.
package sink

import (
	"errors"
	"sync"

	"github.com/tesso57/rssreader/internal/domain/reading"
)

// ErrClosed is returned by Push once the receiving side has gone away.
var ErrClosed = errors.New("sink: receiver closed")

// Channel is a channel-backed sink. Push is safe for concurrent use.
type Channel struct {
	out       chan reading.Feed
	done      chan struct{}
	closeOnce sync.Once
	sendOnce  sync.Once
}

// NewChannel returns a sink whose channel holds up to buffer feeds.
func NewChannel(buffer int) *Channel {
	if buffer < 0 {
		buffer = 0
	}
	return &Channel{
		out:  make(chan reading.Feed, buffer),
		done: make(chan struct{}),
	}
}

// Push hands feed to the receiver, blocking while the buffer is full.
func (c *Channel) Push(feed reading.Feed) error {
	select {
	case <-c.done:
		return ErrClosed
	default:
	}

	select {
	case c.out <- feed:
		return nil
	case <-c.done:
		return ErrClosed
	}
}

// C is the receiving end.
func (c *Channel) C() <-chan reading.Feed {
	return c.out
}

// Close disconnects the receiver. Pending and later pushes fail with ErrClosed.
func (c *Channel) Close() {
	c.closeOnce.Do(func() { close(c.done) })
}

// CloseSend is called by the producer after its last Push so that ranging
// over C terminates.
func (c *Channel) CloseSend() {
	c.sendOnce.Do(func() { close(c.out) })
}
