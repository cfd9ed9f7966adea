// Package record implements the per-collection record store: every collection
// lives under one storage key as a serialized JSON list, and every mutation is
// a whole-collection read-modify-write.
package record

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"sync"

	"kaju/pkg/kvstore"
)

// Collection is a typed record list persisted under a single key.
// id extracts the record identity; less fixes the on-disk ordering after
// every mutation.
type Collection[T any] struct {
	kv   kvstore.Store
	key  string
	id   func(T) string
	less func(a, b T) bool

	// Guards the read-modify-write cycle. The browser original relied on
	// same-tab serialization; request handlers and the async sync goroutine
	// genuinely run concurrently here, so Save must not interleave.
	mu sync.Mutex
}

func NewCollection[T any](kv kvstore.Store, key string, id func(T) string, less func(a, b T) bool) *Collection[T] {
	return &Collection[T]{kv: kv, key: key, id: id, less: less}
}

func (c *Collection[T]) Key() string { return c.key }

// GetAll returns the stored records, newest ordering per the collection's
// sort key. An absent key and an unparseable value both yield an empty slice;
// corruption is logged but never raised, so a bad value cannot take the whole
// app down.
func (c *Collection[T]) GetAll() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	recs, _, _ := c.loadLocked()
	return recs
}

// GetAllStrict is GetAll with the degraded cases made visible: corrupt reports
// that a stored value existed but failed to parse, err reports a substrate
// read failure. Both still yield an empty record list.
func (c *Collection[T]) GetAllStrict() (recs []T, corrupt bool, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loadLocked()
}

func (c *Collection[T]) loadLocked() ([]T, bool, error) {
	raw, ok, err := c.kv.Get(c.key)
	if err != nil {
		log.Printf("[store] read %q: %v", c.key, err)
		return []T{}, false, err
	}
	if !ok {
		return []T{}, false, nil
	}
	var recs []T
	if err := json.Unmarshal([]byte(raw), &recs); err != nil {
		log.Printf("[store] parse %q: %v", c.key, err)
		return []T{}, true, nil
	}
	if recs == nil {
		recs = []T{}
	}
	return recs, false, nil
}

// Save upserts by id: an existing record with the same id is replaced in
// place, otherwise the record is appended. The collection is then re-sorted
// and written back in full. Write failures propagate to the caller.
func (c *Collection[T]) Save(rec T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	recs, _, _ := c.loadLocked()
	id := c.id(rec)
	replaced := false
	for i := range recs {
		if c.id(recs[i]) == id {
			recs[i] = rec
			replaced = true
			break
		}
	}
	if !replaced {
		recs = append(recs, rec)
	}
	return c.writeLocked(recs)
}

// Delete removes the record with the given id. Deleting an absent id is a
// no-op, not an error.
func (c *Collection[T]) Delete(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	recs, _, _ := c.loadLocked()
	for i := range recs {
		if c.id(recs[i]) == id {
			recs = append(recs[:i], recs[i+1:]...)
			return c.writeLocked(recs)
		}
	}
	return nil
}

// ReplaceAll swaps the entire collection in one write.
func (c *Collection[T]) ReplaceAll(recs []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.writeLocked(recs)
}

// ClearAll removes the collection key entirely.
func (c *Collection[T]) ClearAll() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.kv.Delete(c.key)
}

func (c *Collection[T]) writeLocked(recs []T) error {
	if c.less != nil {
		sort.SliceStable(recs, func(i, j int) bool { return c.less(recs[i], recs[j]) })
	}
	b, err := json.Marshal(recs)
	if err != nil {
		return fmt.Errorf("marshal %q: %w", c.key, err)
	}
	if err := c.kv.Put(c.key, string(b)); err != nil {
		return fmt.Errorf("write %q: %w", c.key, err)
	}
	return nil
}
