// Package query composes conditional slice operations.
//
// Each helper applies its operation only when cond is true, so optional
// filters read as a single chain without branching:
//
//	users = query.WhereIf(users, f.ActiveOnly, func(u User) bool { return u.Active })
//	users = query.SkipIf(users, f.Page > 1, (f.Page-1)*f.Size)
//	users = query.TakeIf(users, f.Size > 0, f.Size)
//
// Sorting goes through Ordered, a stable multi-key sort built with OrderBy
// and ThenBy (or their conditional forms):
//
//	sorted := query.ThenByIf(
//		query.OrderByIf(users, f.Sort == "name", func(u User) string { return u.Name }, true),
//		true, func(u User) int { return u.ID }, true,
//	).Items()
//
// Input slices are never modified. When cond is false the input is returned as is.
package query
