package codec

import (
	"net/url"
	"strings"
)

// uriReplacer undoes the escapes that encodeURIComponent() leaves alone.
var uriReplacer = strings.NewReplacer(
	"%21", "!",
	"%2A", "*",
	"%27", "'",
	"%28", "(",
	"%29", ")",
)

// ConvertToURIEncoding rewrites an already escaped string so it matches what
// the JavaScript client would have produced.
func ConvertToURIEncoding(s string) string {
	return uriReplacer.Replace(s)
}

// EncodeURIComponent mirrors JavaScript's encodeURIComponent().
func EncodeURIComponent(s string) string {
	return ConvertToURIEncoding(strings.ReplaceAll(url.QueryEscape(s), "+", "%20"))
}
