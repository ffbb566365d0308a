package entity

// Exception describes an error seen by the tracked application.
type Exception struct {
	Description string // "exd"
	Fatal       bool   // "exf"
}

// NewException returns an exception hit payload.
func NewException(description string, fatal bool) *Exception {
	return &Exception{Description: description, Fatal: fatal}
}
