package convert

import "errors"

var (
	ErrConversion      = errors.New("convert: value cannot be converted")
	ErrUnsupportedType = errors.New("convert: unsupported target type")
)
