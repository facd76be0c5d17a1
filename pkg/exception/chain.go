package exception

import (
	"encoding/json"
	"errors"
	"reflect"
	"strconv"
)

// Inner describes one error in a cause chain.
type Inner struct {
	Depth   string `json:"depth" yaml:"depth"`
	Message string `json:"message" yaml:"message"`
	Type    string `json:"type" yaml:"type"`
}

// InnerErrors flattens the cause chain of err, starting at its immediate cause.
// It returns an empty, non-nil slice when err has no cause.
func InnerErrors(err error) []Inner {
	out := make([]Inner, 0)
	if err == nil {
		return out
	}

	seen := make(map[error]struct{})
	markSeen(seen, err)

	depth := 0
	for cur := errors.Unwrap(err); cur != nil; cur = errors.Unwrap(cur) {
		if !markSeen(seen, cur) {
			break
		}
		out = append(out, Inner{
			Depth:   strconv.Itoa(depth),
			Message: Message(cur),
			Type:    TypeName(cur),
		})
		depth++
	}
	return out
}

// InnerErrorsJSON returns InnerErrors encoded as a JSON array ("[]" when empty).
func InnerErrorsJSON(err error) (string, error) {
	b, jerr := json.Marshal(InnerErrors(err))
	if jerr != nil {
		return "", errors.Join(ErrEncoding, jerr)
	}
	return string(b), nil
}

// markSeen records err and reports false if it was already recorded.
// Only pointer errors are tracked: a cycle always passes through one, and
// value errors may hold non-comparable fields.
func markSeen(seen map[error]struct{}, err error) bool {
	if reflect.TypeOf(err).Kind() != reflect.Pointer {
		return true
	}
	if _, ok := seen[err]; ok {
		return false
	}
	seen[err] = struct{}{}
	return true
}
