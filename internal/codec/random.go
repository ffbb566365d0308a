package codec

import "math/rand"

// MaxID is the upper bound of visitor and session identifiers.
const MaxID = 0x7fffffff

// Random32 returns a uniformly distributed id in [0, MaxID].
func Random32() uint32 {
	return rand.Uint32() & MaxID
}
