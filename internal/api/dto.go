package api

import (
	"net"
	"net/http"
	"strings"

	"github.com/mileusna/useragent"

	"github.com/gyaneshwarpardhi/gacollect/internal/codec"
	"github.com/gyaneshwarpardhi/gacollect/internal/entity"
)

// hitRequest is the JSON body accepted by the /v1 hit routes.
type hitRequest struct {
	Visitor   visitorBody    `json:"visitor"`
	Session   sessionBody    `json:"session"`
	Page      pageBody       `json:"page"`
	Event     *eventBody     `json:"event,omitempty"`
	Exception *exceptionBody `json:"exception,omitempty"`
}

type visitorBody struct {
	UniqueID  *int64 `json:"unique_id,omitempty"`
	IPAddress string `json:"ip_address"`
	UserAgent string `json:"user_agent"`
	Locale    string `json:"locale"`
	Source    string `json:"source"`
}

type sessionBody struct {
	ID   *uint32 `json:"id,omitempty"`
	UTMB string  `json:"utmb"` // value returned as "session" by an earlier hit
}

type pageBody struct {
	Path     string `json:"path"`
	Title    string `json:"title"`
	Charset  string `json:"charset"`
	Referrer string `json:"referrer"`
	LoadTime *int   `json:"load_time,omitempty"`
}

type eventBody struct {
	Category string `json:"category"`
	Action   string `json:"action"`
	Label    string `json:"label"`
	Value    *int   `json:"value,omitempty"`
}

type exceptionBody struct {
	Description string `json:"description"`
	Fatal       bool   `json:"fatal"`
}

// hitResponse reports what was built and whether it went out.
type hitResponse struct {
	RequestID string `json:"request_id"`
	HitType   string `json:"hit_type"`
	Simulated bool   `json:"simulated"`
	Method    string `json:"method,omitempty"`
	Status    int    `json:"status,omitempty"`
	Query     string `json:"query"`
	SessionID uint32 `json:"session_id"`
	Session   string `json:"session"`
	Device    string `json:"device"`
}

// visitor builds the entity, filling IP, user agent and locale from the
// incoming request when the body leaves them empty.
func (b visitorBody) visitor(r *http.Request) (*entity.Visitor, error) {
	v := entity.NewVisitor()
	if b.UniqueID != nil {
		if err := v.SetUniqueID(*b.UniqueID); err != nil {
			return nil, err
		}
	}
	v.IPAddress = b.IPAddress
	if v.IPAddress == "" {
		v.IPAddress = clientIP(r)
	}
	v.UserAgent = b.UserAgent
	if v.UserAgent == "" {
		v.UserAgent = r.UserAgent()
	}
	v.Locale = strings.ToLower(b.Locale)
	if v.Locale == "" {
		v.Locale = codec.PrimaryLocale(r.Header.Get("Accept-Language"))
	}
	v.Source = b.Source
	return v, nil
}

// session restores the caller's session. The serialized cookie does not
// carry the id, so continued sessions must send back session_id as "id".
func (b sessionBody) session() (*entity.Session, error) {
	s := entity.NewSession()
	if b.ID != nil {
		s.ID = *b.ID
	}
	if b.UTMB != "" {
		if err := s.ExtractFromUTMB(b.UTMB); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (b pageBody) page() (*entity.Page, error) {
	p, err := entity.NewPage(b.Path)
	if err != nil {
		return nil, err
	}
	p.Title = b.Title
	p.Charset = b.Charset
	p.Referrer = b.Referrer
	if b.LoadTime != nil {
		if err := p.SetLoadTime(*b.LoadTime); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (b *eventBody) event() (*entity.Event, error) {
	e := entity.NewEvent(b.Category, b.Action)
	e.Label = b.Label
	if b.Value != nil {
		if err := e.SetValue(*b.Value); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// clientIP prefers proxy headers over the socket address.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		return strings.TrimSpace(first)
	}
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return strings.TrimSpace(ip)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// deviceClass buckets a user agent for metrics.
func deviceClass(ua string) string {
	if ua == "" {
		return "unknown"
	}
	parsed := useragent.Parse(ua)
	switch {
	case parsed.Bot:
		return "bot"
	case parsed.Tablet:
		return "tablet"
	case parsed.Mobile:
		return "mobile"
	case parsed.Desktop:
		return "desktop"
	default:
		return "unknown"
	}
}
