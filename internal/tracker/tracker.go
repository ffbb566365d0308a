// Package tracker is the entry point callers use: a Tracker binds a property
// id and host name to the shared collect configuration and sends hits.
package tracker

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gyaneshwarpardhi/gacollect/internal/config"
	"github.com/gyaneshwarpardhi/gacollect/internal/entity"
	"github.com/gyaneshwarpardhi/gacollect/internal/metrics"
	"github.com/gyaneshwarpardhi/gacollect/internal/params"
	"github.com/gyaneshwarpardhi/gacollect/internal/request"
	"github.com/gyaneshwarpardhi/gacollect/internal/transport"
)

// Tracker sends hits for one web property. Several trackers may share one
// *config.Collect; none of them modify it.
//
// A Tracker is safe for concurrent use, but the Visitor and Session handed to
// it are not: callers serialize access per session.
type Tracker struct {
	AccountID string // "tid"
	HostName  string // "dh"

	cfg        *config.Collect
	dispatcher *transport.Dispatcher
}

// Option configures a Tracker.
type Option func(*options)

type options struct {
	transport []transport.Option
}

// WithHTTPClient sets the HTTP client hits are sent with.
func WithHTTPClient(c transport.HTTPClient) Option {
	return func(o *options) {
		o.transport = append(o.transport, transport.WithHTTPClient(c))
	}
}

// WithLogger sets the logger used by the dispatcher.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.transport = append(o.transport, transport.WithLogger(l))
	}
}

// New returns a Tracker. A nil cfg means config.Default().
func New(accountID, hostName string, cfg *config.Collect, opts ...Option) *Tracker {
	if cfg == nil {
		def := config.Default()
		cfg = &def
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Tracker{
		AccountID:  accountID,
		HostName:   hostName,
		cfg:        cfg,
		dispatcher: transport.NewDispatcher(cfg, o.transport...),
	}
}

// Config returns the configuration the tracker was built with.
func (t *Tracker) Config() *config.Collect {
	return t.cfg
}

// TrackPageview sends a pageview hit.
func (t *Tracker) TrackPageview(ctx context.Context, page *entity.Page, session *entity.Session, visitor *entity.Visitor) (*http.Response, error) {
	return t.Track(ctx, request.PageView{}, page, session, visitor)
}

// TrackEvent validates event and sends an event hit.
func (t *Tracker) TrackEvent(ctx context.Context, event *entity.Event, session *entity.Session, visitor *entity.Visitor, page *entity.Page) (*http.Response, error) {
	return t.Track(ctx, request.EventHit{Event: event}, page, session, visitor)
}

// TrackException sends an exception hit.
func (t *Tracker) TrackException(ctx context.Context, exc *entity.Exception, session *entity.Session, visitor *entity.Visitor, page *entity.Page) (*http.Response, error) {
	return t.Track(ctx, request.ExceptionHit{Exception: exc}, page, session, visitor)
}

// Build returns the parameter set for hit without sending it.
func (t *Tracker) Build(hit request.Hit, page *entity.Page, session *entity.Session, visitor *entity.Visitor) (*params.Parameters, error) {
	p, err := request.Build(request.Context{
		AccountID: t.AccountID,
		HostName:  t.HostName,
		Config:    t.cfg,
		Visitor:   visitor,
		Session:   session,
		Page:      page,
	}, hit)
	if err != nil {
		metrics.HitsRejected.WithLabelValues(hit.Type()).Inc()
		return nil, err
	}
	metrics.HitsBuilt.WithLabelValues(hit.Type()).Inc()
	return p, nil
}

// Track builds and sends any hit.
func (t *Tracker) Track(ctx context.Context, hit request.Hit, page *entity.Page, session *entity.Session, visitor *entity.Visitor) (*http.Response, error) {
	p, err := t.Build(hit, page, session, visitor)
	if err != nil {
		return nil, fmt.Errorf("track %s: %w", hit.Type(), err)
	}
	return t.Send(ctx, p, session)
}

// Send fires an already built parameter set. The session's track count goes
// up once the hit has been handed off (or simulated); failed sends leave it
// unchanged.
func (t *Tracker) Send(ctx context.Context, p *params.Parameters, session *entity.Session) (*http.Response, error) {
	if session == nil {
		return nil, request.ErrNoSession
	}
	resp, err := t.dispatcher.Fire(ctx, p)
	if err != nil {
		return nil, err
	}
	session.IncrementTrackCount()
	return resp, nil
}
