package entity

import (
	"fmt"

	"github.com/gyaneshwarpardhi/gacollect/internal/codec"
)

// Visitor is the end user behind a hit. Callers persist it across sessions
// (the ga.js "__utma" cookie played the same role).
type Visitor struct {
	IPAddress string // sent as "uip"
	UserAgent string // sent as "ua" and as the User-Agent header
	Locale    string // sent as "ul"
	Source    string // sent as "ds"

	uniqueID    uint32
	hasUniqueID bool
}

// NewVisitor returns a Visitor with no fields set.
func NewVisitor() *Visitor {
	return &Visitor{}
}

// SetUniqueID assigns the visitor id, which must lie in [0, 0x7fffffff].
func (v *Visitor) SetUniqueID(id int64) error {
	if id < 0 || id > codec.MaxID {
		return invalid("visitor", "unique_id",
			fmt.Sprintf("must be a 32-bit integer between 0 and 0x7fffffff, got %d", id))
	}
	v.uniqueID = uint32(id)
	v.hasUniqueID = true
	return nil
}

// UniqueID returns the visitor id and whether one was set.
func (v *Visitor) UniqueID() (uint32, bool) {
	return v.uniqueID, v.hasUniqueID
}

// ClearUniqueID forgets the visitor id.
func (v *Visitor) ClearUniqueID() {
	v.uniqueID, v.hasUniqueID = 0, false
}
