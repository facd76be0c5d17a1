package query

import (
	"cmp"
	"slices"
)

// Ordered is a pending stable sort over a copy of a slice.
// Keys added with ThenBy break ties left by earlier keys.
// Ordered values are immutable; every call returns a new one.
type Ordered[T any] struct {
	items []T
	keys  []func(a, b T) int
}

// OrderBy starts an ordering by key.
func OrderBy[T any, K cmp.Ordered](s []T, key func(T) K, ascending bool) *Ordered[T] {
	return OrderByIf(s, true, key, ascending)
}

// OrderByIf starts an ordering by key when cond is true. Otherwise the
// result keeps the original order and later ThenBy keys still apply.
func OrderByIf[T any, K cmp.Ordered](s []T, cond bool, key func(T) K, ascending bool) *Ordered[T] {
	o := &Ordered[T]{items: slices.Clone(s)}
	if cond {
		o.keys = append(o.keys, compareBy(key, ascending))
	}
	return o
}

// ThenBy adds a secondary key.
func ThenBy[T any, K cmp.Ordered](o *Ordered[T], key func(T) K, ascending bool) *Ordered[T] {
	return ThenByIf(o, true, key, ascending)
}

// ThenByIf adds a secondary key when cond is true.
func ThenByIf[T any, K cmp.Ordered](o *Ordered[T], cond bool, key func(T) K, ascending bool) *Ordered[T] {
	if !cond {
		return o
	}
	return &Ordered[T]{
		items: o.items,
		keys:  append(slices.Clip(o.keys), compareBy(key, ascending)),
	}
}

// Items returns a newly sorted slice.
func (o *Ordered[T]) Items() []T {
	out := slices.Clone(o.items)
	if len(o.keys) == 0 {
		return out
	}
	slices.SortStableFunc(out, func(a, b T) int {
		for _, k := range o.keys {
			if c := k(a, b); c != 0 {
				return c
			}
		}
		return 0
	})
	return out
}

func compareBy[T any, K cmp.Ordered](key func(T) K, ascending bool) func(a, b T) int {
	if ascending {
		return func(a, b T) int { return cmp.Compare(key(a), key(b)) }
	}
	return func(a, b T) int { return cmp.Compare(key(b), key(a)) }
}
