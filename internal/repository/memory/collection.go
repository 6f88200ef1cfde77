// Package memory implements the repositories on top of process memory. Documents keep
// insertion order, matching the natural order of an unsorted store query.
package memory

import (
	"reflect"
	"sync"

	"scholarstream/internal/common"
	"scholarstream/internal/domain/store"
)

type collection[T any] struct {
	mu    sync.RWMutex
	order []common.ID
	items map[common.ID]T
}

func newCollection[T any]() *collection[T] {
	return &collection[T]{items: make(map[common.ID]T)}
}

// insert stores item unless conflicts reports a clash with an existing item.
func (c *collection[T]) insert(id common.ID, item T, conflicts func(T) bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if conflicts != nil {
		for _, existing := range c.items {
			if conflicts(existing) {
				return false
			}
		}
	}
	c.items[id] = item
	c.order = append(c.order, id)
	return true
}

func (c *collection[T]) find(match func(common.ID, T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		item := c.items[id]
		if match == nil || match(id, item) {
			out = append(out, item)
		}
	}
	return out
}

func (c *collection[T]) first(match func(common.ID, T) bool) (common.ID, T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.firstLocked(match)
}

func (c *collection[T]) firstLocked(match func(common.ID, T) bool) (common.ID, T, bool) {
	for _, id := range c.order {
		if item := c.items[id]; match(id, item) {
			return id, item, true
		}
	}
	var zero T
	return common.ID{}, zero, false
}

func (c *collection[T]) get(id common.ID) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	item, ok := c.items[id]
	return item, ok
}

// updateFirst applies apply to the first item matching match. Modified is reported only
// when the stored value actually changes.
func (c *collection[T]) updateFirst(match func(common.ID, T) bool, apply func(T) T) *store.UpdateResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	result := &store.UpdateResult{Acknowledged: true}
	id, item, ok := c.firstLocked(match)
	if !ok {
		return result
	}
	result.MatchedCount = 1
	updated := apply(item)
	if !reflect.DeepEqual(item, updated) {
		c.items[id] = updated
		result.ModifiedCount = 1
	}
	return result
}

func (c *collection[T]) deleteFirst(match func(common.ID, T) bool) *store.DeleteResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	result := &store.DeleteResult{Acknowledged: true}
	id, _, ok := c.firstLocked(match)
	if !ok {
		return result
	}
	delete(c.items, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	result.DeletedCount = 1
	return result
}

func (c *collection[T]) count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func cloneDocument(doc store.Document) store.Document {
	if doc == nil {
		return nil
	}
	out := make(store.Document, len(doc))
	for key, value := range doc {
		out[key] = value
	}
	return out
}

func cloneDocuments(docs []store.Document) []store.Document {
	out := make([]store.Document, 0, len(docs))
	for _, doc := range docs {
		out = append(out, cloneDocument(doc))
	}
	return out
}

func hasID[T any](id common.ID) func(common.ID, T) bool {
	return func(candidate common.ID, _ T) bool { return candidate == id }
}
