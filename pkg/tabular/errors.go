package tabular

import "errors"

var (
	ErrNotStruct = errors.New("tabular: record type must be a struct or pointer to struct")
	ErrWriteCSV  = errors.New("tabular: failed to write csv")
)
