// Command extkit applies text transforms to standard input, one line at a time.
//
//	echo "Straße in München" | extkit slug
//	strasse-in-munchen
//
// Configuration comes from the environment (and ./.env):
//
//	APP_ENV                 development, staging or production
//	EXTKIT_LOG_LEVEL        debug, info, warn or error
//	EXTKIT_LOG_FORMAT       text or json
//	EXTKIT_SLUG_SEPARATOR   slug separator, default "-"
//	EXTKIT_SLUG_MAX_LENGTH  maximum slug length, 0 for none
//
// Logs go to stderr.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/extkit/pkg/config"
	"github.com/dmitrymomot/extkit/pkg/environment"
	"github.com/dmitrymomot/extkit/pkg/logger"
)

const serviceName = "extkit"

func main() {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, "extkit:", err)
		os.Exit(exitFailure)
	}

	log, err := newLogger(cfg, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "extkit:", err)
		os.Exit(exitFailure)
	}
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr, cfg, log)
	stop()
	os.Exit(code)
}

// newLogger applies environment defaults, then explicit level and format.
func newLogger(cfg appConfig, w io.Writer) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(environment.Parse(cfg.Env), serviceName),
		logger.WithOutput(w),
	}
	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithLevel(level))
	}
	if cfg.LogFormat != "" {
		format, err := logger.ParseFormat(cfg.LogFormat)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithFormat(format))
	}
	return logger.New(opts...), nil
}
