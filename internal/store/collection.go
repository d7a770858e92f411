package store

import (
	"slices"

	"github.com/sandeepkv93/studyd/internal/storage"
)

// collection is the id-keyed list behind every entity store. Mutations build
// a new slice, so slices handed out earlier never change underneath a caller.
type collection[T any] struct {
	slot *storage.Slot[[]T]
	id   func(T) string
}

func (c collection[T]) all() []T {
	return slices.Clone(c.slot.Get())
}

func (c collection[T]) get(id string) (T, bool) {
	for _, item := range c.slot.Get() {
		if c.id(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func (c collection[T]) filter(keep func(T) bool) []T {
	items := c.slot.Get()
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

func (c collection[T]) add(item T) error {
	return c.slot.Update(func(prev []T) []T {
		next := make([]T, 0, len(prev)+1)
		next = append(next, prev...)
		return append(next, item)
	})
}

func (c collection[T]) prepend(item T) error {
	return c.slot.Update(func(prev []T) []T {
		next := make([]T, 0, len(prev)+1)
		next = append(next, item)
		return append(next, prev...)
	})
}

// replace rewrites the item with the given id in place. An unknown id leaves
// the slot untouched and skips the write.
func (c collection[T]) replace(id string, fn func(T) T) error {
	return c.slot.Mutate(func(prev []T) ([]T, bool) {
		idx := slices.IndexFunc(prev, func(item T) bool { return c.id(item) == id })
		if idx < 0 {
			return prev, false
		}
		next := slices.Clone(prev)
		next[idx] = fn(next[idx])
		return next, true
	})
}

func (c collection[T]) remove(id string) error {
	return c.slot.Mutate(func(prev []T) ([]T, bool) {
		if !slices.ContainsFunc(prev, func(item T) bool { return c.id(item) == id }) {
			return prev, false
		}
		next := make([]T, 0, len(prev)-1)
		for _, item := range prev {
			if c.id(item) != id {
				next = append(next, item)
			}
		}
		return next, true
	})
}
