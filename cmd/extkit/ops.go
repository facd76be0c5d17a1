package main

import (
	"maps"
	"slices"

	"github.com/dmitrymomot/extkit/pkg/hashing"
	"github.com/dmitrymomot/extkit/pkg/normalize"
	"github.com/dmitrymomot/extkit/pkg/sanitizer"
	"github.com/dmitrymomot/extkit/pkg/slug"
)

type transform func(string) string

// operations returns the line transforms keyed by their command-line name.
func operations(cfg appConfig) map[string]transform {
	slugOpts := []slug.Option{slug.Separator(cfg.SlugSeparator)}
	if cfg.SlugMaxLength > 0 {
		slugOpts = append(slugOpts, slug.MaxLength(cfg.SlugMaxLength))
	}

	return map[string]transform{
		"normalize": normalize.Value,
		"latin":     normalize.ReplaceToLatin,
		"fold":      normalize.Fold,
		"slug": func(s string) string {
			return slug.Make(s, slugOpts...)
		},
		"strip-html": sanitizer.Compose(
			func(s string) string { return sanitizer.RemoveHTMLTags(s, " ") },
			sanitizer.RemoveExtraWhitespace,
		),
		"title": sanitizer.Compose(
			sanitizer.RemoveExtraWhitespace,
			sanitizer.ToTitleCase,
		),
		"md5":     hashing.MD5,
		"sha256":  hashing.SHA256,
		"blake2b": hashing.Blake2b256,
	}
}

func operationNames(ops map[string]transform) []string {
	return slices.Sorted(maps.Keys(ops))
}
