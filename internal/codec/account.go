package codec

import "regexp"

var reAccountID = regexp.MustCompile(`^(UA|MO)-[0-9]*-[0-9]*$`)

// IsValidAccountID reports whether id looks like a web property id
// ("UA-12345-1" or the mobile "MO-" variant).
func IsValidAccountID(id string) bool {
	return reAccountID.MatchString(id)
}
