package codec

// Hash is the domain hash the legacy ga.js client stores as the first part of
// its cookies. The empty string hashes to 1.
func Hash(s string) uint64 {
	if s == "" {
		return 1
	}
	runes := []rune(s)
	var h uint64
	for i := len(runes) - 1; i >= 0; i-- {
		c := uint64(runes[i])
		h = ((h << 6) & 0xfffffff) + c + (c << 14)
		if left := h & 0xfe00000; left != 0 {
			h ^= left >> 21
		}
	}
	return h
}
