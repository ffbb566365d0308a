package entity

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gyaneshwarpardhi/gacollect/internal/codec"
)

// utmbParts is the number of dot separated fields in a serialized session.
const utmbParts = 4

// Session groups the hits of one visit. Store the result of Serialize
// between requests and feed it back through ExtractFromUTMB.
type Session struct {
	ID         uint32    // sent as "uid" (unless the visitor has an id) and hashed into "cid"
	TrackCount int       // hits tracked in this session so far
	StartTime  time.Time // UTC
}

// NewSession starts a session with a random id.
func NewSession() *Session {
	return &Session{
		ID:        GenerateSessionID(),
		StartTime: time.Now().UTC(),
	}
}

// GenerateSessionID returns a fresh random session id.
func GenerateSessionID() uint32 {
	return codec.Random32()
}

// ExtractFromUTMB restores TrackCount and StartTime from a value of the form
// "<domain hash>.<track count>.<unused>.<start timestamp>". The session is
// left untouched when the value is malformed.
func (s *Session) ExtractFromUTMB(utmb string) error {
	parts := strings.Split(utmb, ".")
	if len(parts) != utmbParts {
		return &ValidationError{
			Entity: "session",
			Field:  "utmb",
			Reason: fmt.Sprintf("expected %d dot separated parts, got %d", utmbParts, len(parts)),
			Err:    ErrInvalidCookie,
		}
	}
	count, err := strconv.Atoi(parts[1])
	if err != nil {
		return &ValidationError{Entity: "session", Field: "utmb", Reason: "track count is not an integer", Err: ErrInvalidCookie}
	}
	start, err := codec.ConvertGATimestamp(parts[3])
	if err != nil {
		return &ValidationError{Entity: "session", Field: "utmb", Reason: "bad start time", Err: ErrInvalidCookie}
	}
	s.TrackCount = count
	s.StartTime = start
	return nil
}

// Serialize renders the session in the layout ExtractFromUTMB reads back.
// The first part is the hash of domain, as in the old "__utmb" cookie.
func (s *Session) Serialize(domain string) string {
	return fmt.Sprintf("%d.%d.10.%d", codec.Hash(domain), s.TrackCount, s.StartTime.Unix())
}

// IncrementTrackCount records one more tracked hit.
func (s *Session) IncrementTrackCount() {
	s.TrackCount++
}
