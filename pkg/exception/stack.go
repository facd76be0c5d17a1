package exception

import (
	"runtime"
	"strconv"
	"strings"
	"time"
)

const (
	maxStackDepth   = 64
	timestampLayout = "2006-01-02 15:04:05.000"
)

func callers(skip int) []uintptr {
	pc := make([]uintptr, maxStackDepth)
	n := runtime.Callers(skip+1, pc)
	return pc[:n]
}

// StackTracer is implemented by errors that captured a call stack.
type StackTracer interface {
	StackFrames() []runtime.Frame
}

// StackFrames resolves the captured program counters into frames.
func (e *Error) StackFrames() []runtime.Frame {
	if e == nil || len(e.stack) == 0 {
		return nil
	}
	frames := runtime.CallersFrames(e.stack)
	out := make([]runtime.Frame, 0, len(e.stack))
	for {
		fr, more := frames.Next()
		out = append(out, fr)
		if !more {
			break
		}
	}
	return out
}

// StackOption configures StackTrace output.
type StackOption func(*stackConfig)

type stackConfig struct {
	source    bool
	timestamp bool
}

// IncludeSource appends " in file:line" to every frame.
func IncludeSource() StackOption {
	return func(c *stackConfig) { c.source = true }
}

// IncludeTimestamp prefixes the trace with the capture time
// formatted as [2006-01-02 15:04:05.000]. It needs an error with CapturedAt.
func IncludeTimestamp() StackOption {
	return func(c *stackConfig) { c.timestamp = true }
}

// StackTrace formats the stack captured by err, one "at function" line per frame.
// It returns "" when err did not capture a stack.
func StackTrace(err error, opts ...StackOption) string {
	st, ok := err.(StackTracer)
	if !ok {
		return ""
	}
	frames := st.StackFrames()
	if len(frames) == 0 {
		return ""
	}

	cfg := &stackConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	var b strings.Builder
	if cfg.timestamp {
		if ts, ok := err.(interface{ CapturedAt() time.Time }); ok {
			b.WriteString("[" + ts.CapturedAt().Format(timestampLayout) + "]\n")
		}
	}
	for i, fr := range frames {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("   at ")
		b.WriteString(fr.Function)
		if cfg.source && fr.File != "" {
			b.WriteString(" in ")
			b.WriteString(fr.File)
			b.WriteByte(':')
			b.WriteString(strconv.Itoa(fr.Line))
		}
	}
	return b.String()
}
