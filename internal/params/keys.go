package params

// Measurement protocol keys. Only the ones the builders fill are listed.
const (
	Version              = "v"
	TrackingID           = "tid"
	AnonymizeIP          = "aip"
	DataSource           = "ds"
	UserID               = "uid"
	ClientID             = "cid"
	IPOverride           = "uip"
	UserAgent            = "ua"
	UserLanguage         = "ul"
	DocumentHost         = "dh"
	DocumentLocation     = "dl"
	DocumentPath         = "dp"
	DocumentTitle        = "dt"
	DocumentReferrer     = "dr"
	DocumentEncoding     = "de"
	PageLoadTime         = "plt"
	HitType              = "t"
	EventCategory        = "ec"
	EventAction          = "ea"
	EventLabel           = "el"
	EventValue           = "ev"
	ExceptionDescription = "exd"
	ExceptionFatal       = "exf"
)

// CookiePrefix marks keys that carry cookie state and never go on the wire.
const CookiePrefix = "_"

// Defaults every hit starts from.
var defaults = []Pair{
	{DocumentEncoding, "UTF-8"},
	{DataSource, "web"},
	{DocumentPath, "/"},
}
