package tabular

import (
	"fmt"
	"reflect"
	"strings"
	"time"
)

// tagName is the struct tag consulted for column names.
const tagName = "csv"

// Table is a rectangular view of a record slice.
type Table struct {
	Columns []string
	Rows    [][]any
}

type column struct {
	name  string
	index int
}

// FromRecords builds a Table from records. The column set is derived from T,
// so an empty slice still yields the header.
func FromRecords[T any](records []T) (*Table, error) {
	rt := reflect.TypeFor[T]()
	if rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	if rt.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: got %s", ErrNotStruct, rt)
	}

	cols := columnsOf(rt)
	t := &Table{
		Columns: make([]string, len(cols)),
		Rows:    make([][]any, 0, len(records)),
	}
	for i, c := range cols {
		t.Columns[i] = c.name
	}

	for _, rec := range records {
		rv := reflect.ValueOf(&rec).Elem()
		if rv.Kind() == reflect.Pointer {
			if rv.IsNil() {
				t.Rows = append(t.Rows, make([]any, len(cols)))
				continue
			}
			rv = rv.Elem()
		}

		row := make([]any, len(cols))
		for i, c := range cols {
			row[i] = cellValue(rv.Field(c.index))
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// Records returns the table as string cells, optionally preceded by the header.
func (t *Table) Records(includeHeader bool) [][]string {
	out := make([][]string, 0, len(t.Rows)+1)
	if includeHeader {
		out = append(out, append([]string(nil), t.Columns...))
	}
	for _, row := range t.Rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = formatCell(v)
		}
		out = append(out, cells)
	}
	return out
}

func columnsOf(rt reflect.Type) []column {
	cols := make([]column, 0, rt.NumField())
	for i := range rt.NumField() {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}
		name, skip := parseFieldTag(f)
		if skip {
			continue
		}
		cols = append(cols, column{name: name, index: i})
	}
	return cols
}

// parseFieldTag returns the column name for field and whether to skip it.
func parseFieldTag(field reflect.StructField) (name string, skip bool) {
	tag := field.Tag.Get(tagName)
	if tag == "-" {
		return "", true
	}
	name, _, _ = strings.Cut(tag, ",")
	if name == "" {
		name = field.Name
	}
	return name, false
}

// cellValue dereferences pointer fields. Nil pointers become nil.
func cellValue(fv reflect.Value) any {
	for fv.Kind() == reflect.Pointer {
		if fv.IsNil() {
			return nil
		}
		fv = fv.Elem()
	}
	return fv.Interface()
}

func formatCell(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case time.Time:
		return val.Format(time.RFC3339)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}
