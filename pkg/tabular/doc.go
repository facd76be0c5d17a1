// Package tabular flattens slices of structs into tables and CSV.
//
// Columns are the exported fields of the record type in declaration order.
// A `csv` struct tag renames a column and `csv:"-"` skips the field:
//
//	type Row struct {
//		ID     int     `csv:"Id"`
//		Name   string
//		Value  float64
//		secret string // unexported, skipped
//	}
//
//	out, err := tabular.ToCSV(rows, true)
//	// Id,Name,Value
//	// 1,Test1,10.5
//
// Records may be structs or pointers to structs. Nil pointers produce empty
// cells. CSV output follows RFC 4180 quoting via encoding/csv, so values
// containing commas, quotes or newlines are quoted.
package tabular
