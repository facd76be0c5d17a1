package logger

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/dmitrymomot/extkit/pkg/exception"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups non-nil errors under "errors", keyed by their position.
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return Group("errors", as...)
}

// Error records err under "error". A nil err yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Exception describes err under "exception" with its message, type,
// fingerprint, data bag and cause chain. A nil err yields an empty Attr.
func Exception(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}

	attrs := []slog.Attr{
		slog.String("message", err.Error()),
		slog.String("type", exception.TypeName(err)),
		slog.String("fingerprint", exception.Fingerprint(err)),
	}

	if c, ok := err.(exception.DataCarrier); ok {
		data := make([]slog.Attr, 0, c.Data().Len())
		for k, v := range c.Data().All() {
			if v != nil {
				data = append(data, slog.Any(k, v))
			}
		}
		if len(data) > 0 {
			attrs = append(attrs, Group("data", data...))
		}
	}

	if inner := exception.InnerErrors(err); len(inner) > 0 {
		attrs = append(attrs, slog.Any("inner", inner))
	}

	return Group("exception", attrs...)
}

// Fingerprint records the error fingerprint under "fingerprint".
// A nil err yields an empty Attr.
func Fingerprint(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String("fingerprint", exception.Fingerprint(err))
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Op records the operation name under "op".
func Op(name string) slog.Attr {
	return slog.String("op", name)
}

// Line records a 1-based input line number under "line".
func Line(n int) slog.Attr {
	return slog.Int("line", n)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
