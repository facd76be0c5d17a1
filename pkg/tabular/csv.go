package tabular

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"
)

// ToCSV renders records as CSV text with "\n" line endings.
func ToCSV[T any](records []T, includeHeader bool) (string, error) {
	var b strings.Builder
	if err := WriteCSV(&b, records, includeHeader); err != nil {
		return "", err
	}
	return b.String(), nil
}

// WriteCSV streams records as CSV to w.
func WriteCSV[T any](w io.Writer, records []T, includeHeader bool) error {
	t, err := FromRecords(records)
	if err != nil {
		return err
	}
	return t.WriteCSV(w, includeHeader)
}

// WriteCSV writes the table to w.
func (t *Table) WriteCSV(w io.Writer, includeHeader bool) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(t.Records(includeHeader)); err != nil {
		return errors.Join(ErrWriteCSV, err)
	}
	return nil
}
