// Package history keeps whole-buffer snapshots so strokes can be undone.
package history

import (
	"time"

	"github.com/example/pixelstretcher/internal/raster"
)

const (
	// DefaultLimit is the number of snapshots kept when no limit is configured.
	DefaultLimit = 32
	// MinLimit holds the seed plus one stroke, the least that keeps undo
	// working.
	MinLimit     = 2
)

// Entry describes one snapshot. The pixels themselves are private and never
// handed out, so an entry cannot be changed after it is recorded.
type Entry struct {
	Seq  uint64
	Time time.Time
	pix  []uint8
}

// Option configures a History.
type Option func(*History)

// WithLimit bounds the number of snapshots. Values below MinLimit are raised
// to it.
func WithLimit(n int) Option {
	return func(h *History) {
		h.limit = max(n, MinLimit)
	}
}

// WithClock replaces the time source used to stamp entries.
func WithClock(now func() time.Time) Option {
	return func(h *History) {
		if now != nil {
			h.now = now
		}
	}
}

// History is an undo stack of buffer snapshots. The first entry is the seed
// taken at load time and is never removed, so Depth is always at least one.
type History struct {
	entries []Entry
	seq     uint64
	limit   int
	now     func() time.Time
}

// New returns a history seeded with the current contents of buf.
func New(buf *raster.Buffer, opts ...Option) *History {
	h := &History{limit: DefaultLimit, now: time.Now}
	for _, o := range opts {
		o(h)
	}
	h.push(buf)
	return h
}

func (h *History) push(buf *raster.Buffer) Entry {
	h.seq++
	e := Entry{Seq: h.seq, Time: h.now(), pix: buf.Pix()}
	h.entries = append(h.entries, e)
	return e
}

// Commit records the state of buf after a finished stroke. When the limit is
// reached the oldest entry after the seed is dropped.
func (h *History) Commit(buf *raster.Buffer) Entry {
	if len(h.entries) >= h.limit {
		h.entries = append(h.entries[:1], h.entries[2:]...)
	}
	return h.push(buf)
}

// Undo drops the newest snapshot and restores buf to the one before it. At
// the seed it does nothing and returns false.
func (h *History) Undo(buf *raster.Buffer) bool {
	if len(h.entries) <= 1 {
		return false
	}
	h.entries[len(h.entries)-1] = Entry{}
	h.entries = h.entries[:len(h.entries)-1]
	return buf.Restore(h.entries[len(h.entries)-1].pix)
}

// Reset restores buf to the seed and records the result as a new entry so
// the reset itself can be undone.
func (h *History) Reset(buf *raster.Buffer) Entry {
	buf.Restore(h.entries[0].pix)
	return h.Commit(buf)
}

// Depth returns the number of snapshots held.
func (h *History) Depth() int { return len(h.entries) }

// Latest returns the newest entry.
func (h *History) Latest() Entry { return h.entries[len(h.entries)-1] }

// Limit returns the configured bound.
func (h *History) Limit() int { return h.limit }
