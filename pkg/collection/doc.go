// Package collection provides small generic helpers for slices and maps.
//
// Read-only helpers (IsEmpty, Page, Shuffle, ValueOr) never modify their input.
// Helpers that take a *[]T or a map mutate it in place and are not safe for
// concurrent use on the same value:
//
//	tags := []string{"go", "api"}
//	collection.AddIfNotContains(&tags, "go")  // false, tags unchanged
//	collection.AddMissing(&tags, "api", "db") // []string{"db"}
//
//	defaults := map[string]int{"retries": 3, "timeout": 30}
//	collection.MergeMissing(cfg, defaults)    // fills only absent keys
//
// Page uses 1-based page numbers and falls back to page 1 and DefaultPageSize
// for non-positive arguments.
package collection
