package collection

import (
	"math/rand/v2"
	"slices"
)

// DefaultPageSize is used by Page when size is not positive.
const DefaultPageSize = 10

// IsEmpty reports whether s has no elements. A nil slice is empty.
func IsEmpty[T any](s []T) bool {
	return len(s) == 0
}

// AddIfNotContains appends item to *s unless it is already present.
// It reports whether the item was added.
func AddIfNotContains[T comparable](s *[]T, item T) bool {
	if slices.Contains(*s, item) {
		return false
	}
	*s = append(*s, item)
	return true
}

// AddIfNotContainsFunc appends the value produced by create unless some
// element satisfies match. create is only called when the value is added.
func AddIfNotContainsFunc[T any](s *[]T, match func(T) bool, create func() T) bool {
	if slices.ContainsFunc(*s, match) {
		return false
	}
	*s = append(*s, create())
	return true
}

// AddMissing appends every item not yet present in *s and returns the added
// items in order. Duplicates within items are added once.
func AddMissing[T comparable](s *[]T, items ...T) []T {
	added := make([]T, 0)
	for _, item := range items {
		if AddIfNotContains(s, item) {
			added = append(added, item)
		}
	}
	return added
}

// RemoveAll deletes every occurrence of the given items from *s.
func RemoveAll[T comparable](s *[]T, items ...T) {
	if len(items) == 0 {
		return
	}
	drop := make(map[T]struct{}, len(items))
	for _, item := range items {
		drop[item] = struct{}{}
	}
	*s = slices.DeleteFunc(*s, func(v T) bool {
		_, ok := drop[v]
		return ok
	})
}

// Page returns the 1-based page of s with the given size.
// page < 1 is treated as 1, size < 1 as DefaultPageSize.
// A page past the end yields an empty slice.
func Page[T any](s []T, page, size int) []T {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = DefaultPageSize
	}

	if len(s) == 0 || page-1 > (len(s)-1)/size {
		return []T{}
	}
	start := (page - 1) * size
	end := start + min(size, len(s)-start)
	return slices.Clone(s[start:end])
}

// Shuffle returns a randomly permuted copy of s.
func Shuffle[T any](s []T) []T {
	out := slices.Clone(s)
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
