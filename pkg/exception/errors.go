package exception

import "errors"

// ErrEncoding is returned when a data bag value or report cannot be encoded.
var ErrEncoding = errors.New("exception: encoding failed")
