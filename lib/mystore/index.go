package mystore

import (
	"context"
	"fmt"
	"sort"
)

// Reader is the read side of a keyed collection.
type Reader[T any] interface {
	Get(c context.Context, uid string) (T, bool, error)
	List(c context.Context) ([]T, error)
}

// Index is an immutable in-memory collection, safe for concurrent reads.
type Index[T any] struct {
	items  map[string]T
	sorted []T
}

// NewIndex keys items by keyOf and lists them in the order given by less.
// Duplicate keys are rejected.
func NewIndex[T any](items []T, keyOf func(T) string, less func(a, b T) bool) (*Index[T], error) {
	index := make(map[string]T, len(items))
	for _, item := range items {
		uid := keyOf(item)
		if _, exists := index[uid]; exists {
			return nil, fmt.Errorf("duplicate key %q", uid)
		}
		index[uid] = item
	}

	sorted := make([]T, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })

	return &Index[T]{
		items:  index,
		sorted: sorted,
	}, nil
}

func (s *Index[T]) Get(c context.Context, uid string) (T, bool, error) {
	result, exists := s.items[uid]
	return result, exists, nil
}

func (s *Index[T]) List(c context.Context) ([]T, error) {
	result := make([]T, len(s.sorted))
	copy(result, s.sorted)
	return result, nil
}
