package request

import (
	"errors"

	"github.com/gyaneshwarpardhi/gacollect/internal/entity"
	"github.com/gyaneshwarpardhi/gacollect/internal/params"
)

// Hit types.
const (
	TypePageView  = "pageview"
	TypeEvent     = "event"
	TypeException = "exception"
)

// PageView is a page load.
type PageView struct{}

// Type implements Hit.
func (PageView) Type() string { return TypePageView }

// Validate implements Hit. A page view has no fields of its own.
func (PageView) Validate() error { return nil }

// Apply implements Hit. The base mapping already covers the page.
func (PageView) Apply(*params.Parameters) {}

// EventHit carries an entity.Event.
type EventHit struct {
	Event *entity.Event
}

// Type implements Hit.
func (h EventHit) Type() string { return TypeEvent }

// Validate requires an event with a category and an action.
func (h EventHit) Validate() error {
	if h.Event == nil {
		return errors.New("event is required")
	}
	return h.Event.Validate()
}

// Apply sets ec, ea, el and ev when the value was set.
func (h EventHit) Apply(p *params.Parameters) {
	p.Set(params.EventCategory, h.Event.Category)
	p.Set(params.EventAction, h.Event.Action)
	p.Set(params.EventLabel, h.Event.Label)
	if v, ok := h.Event.Value(); ok {
		p.SetInt(params.EventValue, v)
	}
}

// ExceptionHit carries an entity.Exception.
type ExceptionHit struct {
	Exception *entity.Exception
}

// Type implements Hit.
func (h ExceptionHit) Type() string { return TypeException }

// Validate requires an exception.
func (h ExceptionHit) Validate() error {
	if h.Exception == nil {
		return errors.New("exception is required")
	}
	return nil
}

// Apply sets exd and exf.
func (h ExceptionHit) Apply(p *params.Parameters) {
	p.Set(params.ExceptionDescription, h.Exception.Description)
	p.SetFlag(params.ExceptionFatal, h.Exception.Fatal)
}
