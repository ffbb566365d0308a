package codec

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// maxSeconds is the largest value still read as seconds; anything above it
// comes from a millisecond-resolution cookie.
const maxSeconds = math.MaxInt32

// ConvertGATimestamp turns a cookie timestamp into a UTC instant.
func ConvertGATimestamp(s string) (time.Time, error) {
	ts, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	if math.IsNaN(ts) || math.IsInf(ts, 0) {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: not a finite number", s)
	}
	if ts > maxSeconds {
		ts /= 1000
	}
	if ts < math.MinInt64 || ts >= math.MaxInt64 {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: out of range", s)
	}
	sec, frac := math.Modf(ts)
	return time.Unix(int64(sec), int64(frac*float64(time.Second))).UTC(), nil
}
