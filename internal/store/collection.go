package store

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rbmartins/secretaria/internal/model"
)

// Backend persists one serialized collection per logical key.
// Load returns (nil, nil) when the key has never been written.
type Backend interface {
	Load(key string) ([]byte, error)
	Save(key string, data []byte) error
}

// Option tunes a store; used mainly by tests to pin the clock, the id
// source and the random source of derived behavior.
type Option func(*settings)

type settings struct {
	clock func() time.Time
	newID func() string
}

func defaultSettings() settings {
	return settings{clock: time.Now, newID: uuid.NewString}
}

func WithClock(clock func() time.Time) Option {
	return func(s *settings) { s.clock = clock }
}

func WithIDSource(newID func() string) Option {
	return func(s *settings) { s.newID = newID }
}

// Collection is an insertion-ordered in-memory record set with
// write-through persistence. Mutations update memory synchronously and
// flush the full document in the background; a flush failure is logged
// and never rolls back the in-memory change.
type Collection[T model.Entity] struct {
	key     string
	backend Backend
	items   []T
	clock   func() time.Time
	newID   func() string

	flushMu  sync.Mutex
	pending  []byte
	flushing bool
	flushes  sync.WaitGroup
}

func NewCollection[T model.Entity](key string, b Backend, opts ...Option) *Collection[T] {
	s := defaultSettings()
	for _, o := range opts {
		o(&s)
	}
	c := &Collection[T]{key: key, backend: b, clock: s.clock, newID: s.newID}
	c.load()
	return c
}

func (c *Collection[T]) load() {
	b, err := c.backend.Load(c.key)
	if err != nil {
		log.Printf("store %s: load: %v", c.key, err)
		return
	}
	if len(b) == 0 {
		return
	}
	var items []T
	if err := json.Unmarshal(b, &items); err != nil {
		// Incompatible document: start empty rather than refuse to run.
		log.Printf("store %s: unreadable document, starting empty: %v", c.key, err)
		return
	}
	c.items = items
}

// Items returns a copy of the collection in insertion order.
func (c *Collection[T]) Items() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Collection[T]) Len() int { return len(c.items) }

// Now exposes the store clock so derived accessors and callers share a
// single notion of "current time".
func (c *Collection[T]) Now() time.Time { return c.clock() }

func (c *Collection[T]) Get(id string) (T, bool) {
	for _, it := range c.items {
		if it.EntityID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// Add stamps the record with a fresh id and timestamps, appends it and
// triggers persistence.
func (c *Collection[T]) Add(item T) T {
	item.Stamp(c.newID(), c.clock())
	c.items = append(c.items, item)
	c.flush()
	return item
}

// Update applies the mutation to the record with the given id and
// refreshes UpdatedAt. A missing id is not an error; the false result
// lets callers that care tell a stale id from a successful merge.
func (c *Collection[T]) Update(id string, apply func(T)) bool {
	for _, it := range c.items {
		if it.EntityID() == id {
			if apply != nil {
				apply(it)
			}
			it.Touch(c.clock())
			c.flush()
			return true
		}
	}
	return false
}

// Delete removes by id; a missing id is a no-op signalled by false.
func (c *Collection[T]) Delete(id string) bool {
	for i, it := range c.items {
		if it.EntityID() == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.flush()
			return true
		}
	}
	return false
}

// ReplaceAll swaps the whole collection, keeping ids and timestamps as
// given. Used for import/restore.
func (c *Collection[T]) ReplaceAll(items []T) {
	c.items = append([]T(nil), items...)
	c.flush()
}

// flush marshals immediately, so the snapshot matches the mutation that
// caused it, and hands the bytes to a single background drainer. One
// drainer per collection keeps writes ordered: a newer snapshot can
// coalesce over a queued older one, never the other way around.
func (c *Collection[T]) flush() {
	b, err := json.MarshalIndent(c.items, "", "  ")
	if err != nil {
		log.Printf("store %s: marshal: %v", c.key, err)
		return
	}
	c.flushMu.Lock()
	c.pending = b
	if c.flushing {
		c.flushMu.Unlock()
		return
	}
	c.flushing = true
	c.flushes.Add(1)
	c.flushMu.Unlock()
	go c.drain()
}

func (c *Collection[T]) drain() {
	defer c.flushes.Done()
	for {
		c.flushMu.Lock()
		b := c.pending
		c.pending = nil
		if b == nil {
			c.flushing = false
			c.flushMu.Unlock()
			return
		}
		c.flushMu.Unlock()
		if err := c.backend.Save(c.key, b); err != nil {
			log.Printf("store %s: save: %v", c.key, err)
		}
	}
}

// Wait blocks until every pending flush has finished. The CLI drains
// all stores before exiting.
func (c *Collection[T]) Wait() { c.flushes.Wait() }
