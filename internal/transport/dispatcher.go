package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gyaneshwarpardhi/gacollect/internal/config"
	"github.com/gyaneshwarpardhi/gacollect/internal/metrics"
	"github.com/gyaneshwarpardhi/gacollect/internal/params"
)

// HTTPClient is the subset of *http.Client the dispatcher needs.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Dispatcher sends hits to the configured endpoint. It holds no state of its
// own besides the shared config and may be used from several goroutines.
type Dispatcher struct {
	cfg    *config.Collect
	client HTTPClient
	log    *slog.Logger
}

// Option is a functional option for configuring the Dispatcher.
type Option func(*Dispatcher)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c HTTPClient) Option {
	return func(d *Dispatcher) {
		d.client = c
	}
}

// WithLogger sets the logger used for hit logging.
func WithLogger(l *slog.Logger) Option {
	return func(d *Dispatcher) {
		d.log = l
	}
}

// NewDispatcher returns a Dispatcher for cfg.
func NewDispatcher(cfg *config.Collect, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		cfg:    cfg,
		client: http.DefaultClient,
		log:    slog.Default().With("component", "transport"),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Fire sends p. With no endpoint configured nothing is sent and Fire returns
// (nil, nil). The response body is read in full before Fire returns, so the
// caller may inspect it after the request timeout has passed; it must still
// be closed. HTTP status codes are not interpreted.
func (d *Dispatcher) Fire(ctx context.Context, p *params.Parameters) (*http.Response, error) {
	query := p.Encode()
	hitType := p.Get(params.HitType)

	if d.cfg.Simulate() {
		metrics.HitsSimulated.WithLabelValues(hitType).Inc()
		d.log.Info("simulated hit", "hit_type", hitType, "query", query)
		return nil, nil
	}

	prep, err := Prepare(d.cfg.Endpoint, query, p.Get(params.UserAgent))
	if err != nil {
		return nil, err
	}

	if timeout := d.cfg.Timeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	req, err := prep.HTTPRequest(ctx)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := d.client.Do(req)
	if err != nil {
		metrics.TransportErrors.Inc()
		d.log.Debug("hit failed",
			"hit_type", hitType,
			"method", prep.Method,
			"err", err,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return nil, fmt.Errorf("send %s hit: %w", hitType, err)
	}
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		metrics.TransportErrors.Inc()
		return nil, fmt.Errorf("read %s hit response: %w", hitType, err)
	}
	resp.Body = io.NopCloser(bytes.NewReader(body))

	elapsed := time.Since(start)
	metrics.HitsSent.WithLabelValues(prep.Method).Inc()
	metrics.SendDuration.Observe(float64(elapsed.Milliseconds()))
	d.log.Debug("hit sent",
		"hit_type", hitType,
		"method", prep.Method,
		"length", len(query),
		"status", resp.StatusCode,
		"duration_ms", elapsed.Milliseconds(),
	)
	return resp, nil
}
