package exception

import (
	"encoding/json"
	"errors"
)

// DataMap copies the non-nil entries of err's data bag into a new map.
// Values keep their original types. Errors without a bag yield an empty map.
func DataMap(err error) map[string]any {
	out := make(map[string]any)
	for k, v := range bagOf(err).All() {
		if v != nil {
			out[k] = v
		}
	}
	return out
}

// DataJSON encodes the non-nil entries of err's data bag as a JSON object,
// keeping insertion order. Errors without a bag yield "{}".
func DataJSON(err error) (string, error) {
	b, jerr := json.Marshal(bagOf(err).Compact())
	if jerr != nil {
		if errors.Is(jerr, ErrEncoding) {
			return "", jerr
		}
		return "", errors.Join(ErrEncoding, jerr)
	}
	return string(b), nil
}

// bagOf returns the bag carried by err itself, or nil.
func bagOf(err error) *Data {
	if c, ok := err.(DataCarrier); ok {
		return c.Data()
	}
	return nil
}
