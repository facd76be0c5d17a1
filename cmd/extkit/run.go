package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/dmitrymomot/extkit/pkg/exception"
	"github.com/dmitrymomot/extkit/pkg/logger"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2

	maxLineSize = 1 << 20
)

// run applies the operation named by args[0] to every line of in.
func run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer, cfg appConfig, log *slog.Logger) int {
	ops := operations(cfg)

	if len(args) != 1 {
		usage(errOut, ops)
		return exitUsage
	}
	name := args[0]
	if name == "-h" || name == "--help" || name == "help" {
		usage(out, ops)
		return exitOK
	}

	op, ok := ops[name]
	if !ok {
		log.ErrorContext(ctx, "unknown operation", logger.Op(name))
		usage(errOut, ops)
		return exitUsage
	}

	start := time.Now()
	lines, err := process(ctx, in, out, op)
	if err != nil {
		werr := exception.Wrap(err, "ProcessError", "process input").
			With("op", name).
			With("line", lines+1)
		log.ErrorContext(ctx, "processing failed", logger.Exception(werr))
		return exitFailure
	}

	log.DebugContext(ctx, "done",
		logger.Op(name),
		slog.Int("lines", lines),
		logger.Duration(time.Since(start)),
	)
	return exitOK
}

// process streams in to out line by line and returns the number of lines written.
func process(ctx context.Context, in io.Reader, out io.Writer, op transform) (int, error) {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	w := bufio.NewWriter(out)

	n := 0
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return n, errors.Join(err, w.Flush())
		}
		if _, err := w.WriteString(op(sc.Text())); err != nil {
			return n, err
		}
		if err := w.WriteByte('\n'); err != nil {
			return n, err
		}
		n++
	}
	if err := sc.Err(); err != nil {
		return n, errors.Join(err, w.Flush())
	}
	return n, w.Flush()
}

func usage(w io.Writer, ops map[string]transform) {
	fmt.Fprintf(w, "usage: extkit <%s>\n", strings.Join(operationNames(ops), "|"))
}
