package convert

import "slices"

// In reports whether v equals any of set.
func In[T comparable](v T, set ...T) bool {
	return slices.Contains(set, v)
}

// DoIf returns fn(v) when cond is true, otherwise v.
func DoIf[T any](v T, cond bool, fn func(T) T) T {
	if !cond {
		return v
	}
	return fn(v)
}

// TapIf calls fn with v when cond is true and returns v.
// It is meant for side effects through reference values.
func TapIf[T any](v T, cond bool, fn func(T)) T {
	if cond {
		fn(v)
	}
	return v
}
