package convert

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"time"
)

var durationType = reflect.TypeFor[time.Duration]()

// As returns v as T when the dynamic type of v is T or implements T.
func As[T any](v any) (T, bool) {
	t, ok := v.(T)
	return t, ok
}

// To converts v to T through its textual form.
// Values already of type T are returned unchanged.
func To[T any](v any) (T, error) {
	var zero T
	if v == nil {
		return zero, fmt.Errorf("%w: nil value", ErrConversion)
	}
	if t, ok := v.(T); ok {
		return t, nil
	}

	text, err := textOf(v)
	if err != nil {
		return zero, err
	}

	out := reflect.New(reflect.TypeFor[T]()).Elem()
	if err := parseInto(out, text); err != nil {
		return zero, err
	}
	return out.Interface().(T), nil
}

// ToOr is like To but returns fallback when the conversion fails.
func ToOr[T any](v any, fallback T) T {
	t, err := To[T](v)
	if err != nil {
		return fallback
	}
	return t
}

func textOf(v any) (string, error) {
	switch val := v.(type) {
	case string:
		return val, nil
	case []byte:
		return string(val), nil
	case encoding.TextMarshaler:
		b, err := val.MarshalText()
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrConversion, err)
		}
		return string(b), nil
	case fmt.Stringer:
		return val.String(), nil
	default:
		return fmt.Sprint(val), nil
	}
}

// parseInto sets field from its textual form.
func parseInto(field reflect.Value, value string) error {
	if tu, ok := field.Addr().Interface().(encoding.TextUnmarshaler); ok {
		if err := tu.UnmarshalText([]byte(value)); err != nil {
			return fmt.Errorf("%w: %q to %s: %v", ErrConversion, value, field.Type(), err)
		}
		return nil
	}

	fieldType := field.Type()
	if fieldType == durationType {
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("%w: invalid duration %q", ErrConversion, value)
		}
		field.SetInt(int64(d))
		return nil
	}

	switch fieldType.Kind() {
	case reflect.String:
		field.SetString(value)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(value, 10, fieldType.Bits())
		if err != nil {
			return fmt.Errorf("%w: invalid int value %q", ErrConversion, value)
		}
		field.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(value, 10, fieldType.Bits())
		if err != nil {
			return fmt.Errorf("%w: invalid uint value %q", ErrConversion, value)
		}
		field.SetUint(n)

	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(value, fieldType.Bits())
		if err != nil {
			return fmt.Errorf("%w: invalid float value %q", ErrConversion, value)
		}
		field.SetFloat(n)

	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: invalid bool value %q", ErrConversion, value)
		}
		field.SetBool(b)

	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedType, fieldType)
	}

	return nil
}
