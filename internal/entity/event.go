package entity

import "fmt"

// Event is a user interaction that is not a page load.
type Event struct {
	Category string // required, "ec"
	Action   string // required, "ea"
	Label    string // "el"

	value    int
	hasValue bool
}

// NewEvent returns an event for category and action. It is not validated
// until Validate is called.
func NewEvent(category, action string) *Event {
	return &Event{Category: category, Action: action}
}

// SetValue attaches an integer value to the event. The collect endpoint only
// accepts non-negative "ev" values, so negatives are rejected here.
func (e *Event) SetValue(v int) error {
	if v < 0 {
		return invalid("event", "value", fmt.Sprintf("must be a non-negative integer, got %d", v))
	}
	e.value = v
	e.hasValue = true
	return nil
}

// Value returns the event value and whether it was set.
func (e *Event) Value() (int, bool) {
	return e.value, e.hasValue
}

// Validate checks that category and action are both set.
func (e *Event) Validate() error {
	if e.Category == "" || e.Action == "" {
		return invalid("event", "category/action", "events need at least a category and an action")
	}
	return nil
}
