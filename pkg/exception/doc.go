// Package exception describes errors for diagnostics: stable fingerprints, the
// flattened cause chain, an attached data bag and a captured stack trace.
//
// # Error type
//
// Error carries a kind (the logical type name), a message, an optional cause, an
// insertion-ordered data bag and the call stack captured at construction:
//
//	err := exception.New("InvalidOperation", "order is already shipped").
//	    With("order_id", 42).
//	    With("status", "shipped")
//
//	wrapped := exception.Wrap(dbErr, "StorageFailure", "update order")
//
// Any error works with the helpers below; Error only adds the data bag, the kind
// and the stack.
//
// # Fingerprints
//
// Fingerprint hashes the type name and top-level message with SHA-256 and encodes
// the digest as standard base64. It never looks at causes, data or stacks, so
// two errors with the same type and message always share a fingerprint:
//
//	exception.Fingerprint(errors.New("boom")) == exception.Fingerprint(errors.New("boom")) // true
//
// TypeName is the error's own TypeName() when it has one (Error returns its kind),
// otherwise the dynamic Go type such as "*errors.errorString".
//
// # Cause chain
//
// InnerErrors walks errors.Unwrap starting at the immediate cause. Depth is
// stored as decimal text, "0" being the immediate cause. Joined errors
// (Unwrap() []error) end the walk. A custom Unwrap may form a cycle; the walk
// stops at the first comparable error it has already visited.
//
// # Data bag
//
// DataMap and DataJSON read the bag of the error itself (not of its causes) and
// drop nil values. JSON output keeps insertion order; an empty bag is "{}".
//
// # Reports
//
// Describe gathers everything into a Report that encodes to JSON or YAML.
//
// Error values are not safe for concurrent mutation through With; populate the
// bag before sharing the error.
package exception
