// Package telemetry reports command failures to Sentry when a DSN is
// configured. Without a DSN every method is a no-op.
package telemetry

import (
	"errors"
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
)

// EnvDSN is the environment variable consulted before the config file.
const EnvDSN = "SENTRY_DSN"

const flushTimeout = 2 * time.Second

// Options configures a Reporter.
type Options struct {
	DSN         string
	Release     string
	Environment string

	beforeSend func(*sentry.Event, *sentry.EventHint) *sentry.Event
}

// Reporter sends captured errors to Sentry.
type Reporter struct {
	hub *sentry.Hub
}

// New creates a Reporter. An empty DSN yields a disabled Reporter.
func New(opts Options) (*Reporter, error) {
	if opts.DSN == "" {
		return &Reporter{}, nil
	}
	client, err := sentry.NewClient(sentry.ClientOptions{
		Dsn:         opts.DSN,
		Release:     opts.Release,
		Environment: opts.Environment,
		BeforeSend:  opts.beforeSend,
	})
	if err != nil {
		return nil, fmt.Errorf("initializing sentry: %w", err)
	}
	return &Reporter{hub: sentry.NewHub(client, sentry.NewScope())}, nil
}

// Enabled reports whether errors are sent anywhere.
func (r *Reporter) Enabled() bool {
	return r != nil && r.hub != nil
}

// Capture sends err unless it is nil or matches one of skip.
func (r *Reporter) Capture(err error, skip ...error) {
	if !r.Enabled() || err == nil {
		return
	}
	for _, s := range skip {
		if errors.Is(err, s) {
			return
		}
	}
	r.hub.CaptureException(err)
}

// Flush waits for queued events to be sent.
func (r *Reporter) Flush() {
	if !r.Enabled() {
		return
	}
	r.hub.Flush(flushTimeout)
}
