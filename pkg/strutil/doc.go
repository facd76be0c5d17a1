// Package strutil collects string helpers that do not transform text content:
// fixed-width splitting, case-insensitive matching, random identifiers and UUID parsing.
//
// SplitInParts distinguishes a bad argument from a missing one:
//
//	parts, err := strutil.SplitInParts("1234567890", 4) // ["1234" "5678" "90"]
//	_, err = strutil.SplitInParts("abc", 0)             // errors.Is(err, strutil.ErrInvalidPartLength)
//	_, err = strutil.SplitInPartsPtr(nil, 4)            // errors.Is(err, strutil.ErrNilInput)
package strutil
