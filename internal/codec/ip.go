// Package codec holds the small encoding helpers the collect pipeline relies
// on: IP handling, locale parsing, legacy cookie timestamps, and the escaping
// rules that keep query strings identical to the browser client's.
package codec

import "regexp"

var (
	reIP          = regexp.MustCompile(`^\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}$`)
	rePrivateIP   = regexp.MustCompile(`^(?:127\.0\.0\.1|10\.|192\.168\.|172\.(?:1[6-9]|2[0-9]|3[0-1])\.)`)
	reFirstOctets = regexp.MustCompile(`^((?:\d{1,3}\.){3})\d{1,3}$`)
)

// IsValidIP reports whether ip is a dotted quad.
func IsValidIP(ip string) bool {
	return reIP.MatchString(ip)
}

// IsPrivateIP reports whether ip falls in loopback or an RFC 1918 range.
func IsPrivateIP(ip string) bool {
	return rePrivateIP.MatchString(ip)
}

// AnonymizeIP keeps the first three octets of a dotted quad and zeroes the
// last one. Anything that is not a dotted quad yields "".
func AnonymizeIP(ip string) string {
	m := reFirstOctets.FindStringSubmatch(ip)
	if m == nil {
		return ""
	}
	return m[1] + "0"
}
