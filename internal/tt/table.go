package tt

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"protochess/internal/move"
)

// Flag says how Entry.Score relates to the true value of the position.
type Flag uint8

const (
	None  Flag = iota
	Exact      // score is the exact value
	Lower      // fail-high: true value >= score (the "beta" flag)
	Upper      // fail-low: true value <= score (the "alpha" flag)
)

func (f Flag) String() string {
	switch f {
	case Exact:
		return "exact"
	case Lower:
		return "lower"
	case Upper:
		return "upper"
	}
	return "none"
}

type Entry struct {
	Key   uint64
	Flag  Flag
	Score int
	Move  move.Move
	Depth int
}

const defaultSize = 1 << 18

// Table is a map-backed transposition table. Insert always overwrites the
// entry for a key; there is no depth- or age-preferred replacement.
type Table struct {
	m        map[uint64]Entry
	capacity int

	hits   uint64
	misses uint64
}

// New returns a table that is dropped and reallocated whenever it grows past
// capacity entries. capacity <= 0 means unbounded.
func New(capacity int) *Table {
	return &Table{
		m:        make(map[uint64]Entry, defaultSize),
		capacity: capacity,
	}
}

func (t *Table) Retrieve(key uint64) (Entry, bool) {
	e, ok := t.m[key]
	if ok {
		t.hits++
	} else {
		t.misses++
	}
	return e, ok
}

func (t *Table) Insert(key uint64, e Entry) {
	if t.capacity > 0 && len(t.m) >= t.capacity {
		if _, ok := t.m[key]; !ok {
			t.m = make(map[uint64]Entry, defaultSize)
		}
	}
	e.Key = key
	t.m[key] = e
}

func (t *Table) Len() int { return len(t.m) }

func (t *Table) Clear() {
	t.m = make(map[uint64]Entry, defaultSize)
	t.hits, t.misses = 0, 0
}

func (t *Table) Stats() string {
	return fmt.Sprintf("entries: %v, hits: %v, misses: %v",
		humanize.Comma(int64(len(t.m))), humanize.Comma(int64(t.hits)), humanize.Comma(int64(t.misses)))
}
