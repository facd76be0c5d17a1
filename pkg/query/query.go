package query

import "slices"

// WhereIf keeps the elements matching pred when cond is true.
func WhereIf[T any](s []T, cond bool, pred func(T) bool) []T {
	if !cond {
		return s
	}
	out := make([]T, 0, len(s))
	for _, v := range s {
		if pred(v) {
			out = append(out, v)
		}
	}
	return out
}

// SkipIf drops the first n elements when cond is true. n <= 0 skips nothing.
func SkipIf[T any](s []T, cond bool, n int) []T {
	if !cond {
		return s
	}
	n = clamp(n, len(s))
	return slices.Clone(s[n:])
}

// TakeIf keeps at most the first n elements when cond is true. n <= 0 yields an empty slice.
func TakeIf[T any](s []T, cond bool, n int) []T {
	if !cond {
		return s
	}
	n = clamp(n, len(s))
	return slices.Clone(s[:n])
}

// SelectIf projects every element with then when cond is true, otherwise with otherwise.
func SelectIf[T, R any](s []T, cond bool, then, otherwise func(T) R) []R {
	fn := otherwise
	if cond {
		fn = then
	}
	out := make([]R, len(s))
	for i, v := range s {
		out[i] = fn(v)
	}
	return out
}

func clamp(n, size int) int {
	return max(0, min(n, size))
}
