// Package memory provides the in-memory repository implementations. All
// state lives in process memory and is lost on restart; there is no
// durability contract.
package memory

import (
	"sync"
)

// uniqueness rejects an insert when an existing record already satisfies
// its predicate. Checks run in the order supplied and the message of the
// first violated check is surfaced to the caller.
type uniqueness[T any] struct {
	violated func(existing *T) bool
	message  string
}

// collection is a concurrency-safe, insertion-ordered keyed store shared by
// the entity repositories. The write lock covers compound operations, so
// check-then-insert and scan-then-remove are atomic with respect to other
// callers of the same collection.
//
// Stored records never escape the lock: insert copies the caller's record,
// and get, mutate and list return copies. Mutations must replace
// reference-typed fields (slices, maps) wholesale rather than editing their
// elements, so that copies handed out earlier stay read-only.
type collection[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
	order []string
}

func newCollection[T any]() *collection[T] {
	return &collection[T]{
		items: make(map[string]*T),
		order: make([]string, 0),
	}
}

// insert adds the item under id after evaluating every uniqueness check
// against all current records. Returns the message of the first violated
// check, or "" on success.
func (c *collection[T]) insert(id string, item *T, checks ...uniqueness[T]) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, check := range checks {
		for _, existingID := range c.order {
			if check.violated(c.items[existingID]) {
				return check.message
			}
		}
	}

	stored := *item
	c.items[id] = &stored
	c.order = append(c.order, id)
	return ""
}

// get returns a copy of the item for id, or nil.
func (c *collection[T]) get(id string) *T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	item, ok := c.items[id]
	if !ok {
		return nil
	}
	snapshot := *item
	return &snapshot
}

// exists reports whether id is present.
func (c *collection[T]) exists(id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.items[id]
	return ok
}

// mutate applies fn to the item for id under the write lock. Returns a copy
// of the mutated item, or nil if id is absent.
func (c *collection[T]) mutate(id string, fn func(*T)) *T {
	c.mu.Lock()
	defer c.mu.Unlock()
	item, ok := c.items[id]
	if !ok {
		return nil
	}
	fn(item)
	snapshot := *item
	return &snapshot
}

// remove deletes the item for id. Returns false if id is absent.
func (c *collection[T]) remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[id]; !ok {
		return false
	}
	delete(c.items, id)
	c.removeFromOrder(id)
	return true
}

// removeWhere deletes every item matching pred in one pass and returns the
// number removed.
func (c *collection[T]) removeWhere(pred func(*T) bool) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	kept := c.order[:0]
	for _, id := range c.order {
		if pred(c.items[id]) {
			delete(c.items, id)
			removed++
			continue
		}
		kept = append(kept, id)
	}
	c.order = kept
	return removed
}

// list returns copies of the items matching pred in insertion order. A nil
// pred matches everything. The slice is built fresh from current state on
// every call.
func (c *collection[T]) list(pred func(*T) bool) []*T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]*T, 0, len(c.order))
	for _, id := range c.order {
		item := c.items[id]
		if pred == nil || pred(item) {
			snapshot := *item
			result = append(result, &snapshot)
		}
	}
	return result
}

// len returns the number of stored items.
func (c *collection[T]) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *collection[T]) removeFromOrder(id string) {
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}

// paginate slices items to the half-open range [skip, skip+limit).
// Out-of-range values yield an empty slice, never an error.
func paginate[T any](items []*T, skip, limit int) []*T {
	if skip < 0 {
		skip = 0
	}
	if limit < 0 {
		limit = 0
	}
	if skip >= len(items) {
		return []*T{}
	}
	end := skip + limit
	if end > len(items) {
		end = len(items)
	}
	return items[skip:end]
}
