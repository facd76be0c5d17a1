package collection

// MergeMissing copies entries of src whose keys are absent from dst.
// Existing keys in dst are never overwritten. dst must be non-nil when src
// is not empty. It returns the number of keys added.
func MergeMissing[K comparable, V any](dst, src map[K]V) int {
	added := 0
	for k, v := range src {
		if _, exists := dst[k]; exists {
			continue
		}
		dst[k] = v
		added++
	}
	return added
}

// ValueOr returns m[key] when present, otherwise fallback.
func ValueOr[K comparable, V any](m map[K]V, key K, fallback V) V {
	if v, ok := m[key]; ok {
		return v
	}
	return fallback
}
