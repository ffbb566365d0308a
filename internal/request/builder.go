// Package request maps entities onto the measurement protocol parameter set.
// A shared base mapping fills the fields every hit carries; each Hit then adds
// its own fields and the hit type discriminator.
package request

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/gyaneshwarpardhi/gacollect/internal/codec"
	"github.com/gyaneshwarpardhi/gacollect/internal/config"
	"github.com/gyaneshwarpardhi/gacollect/internal/entity"
	"github.com/gyaneshwarpardhi/gacollect/internal/params"
)

// DefaultLocale is sent as "ul" when the visitor has no locale.
const DefaultLocale = "en-us"

// ErrNoSession is returned when a hit is built without a session.
var ErrNoSession = errors.New("request: session is required")

// Context is what every hit is built from. Visitor and Page may be nil.
type Context struct {
	AccountID string
	HostName  string
	Config    *config.Collect
	Visitor   *entity.Visitor
	Session   *entity.Session
	Page      *entity.Page
}

// Hit adds hit specific fields on top of the base mapping.
type Hit interface {
	// Type returns the value sent as "t".
	Type() string
	// Validate runs before anything is built.
	Validate() error
	// Apply sets the hit's own parameters.
	Apply(p *params.Parameters)
}

// Build validates hit and returns the full parameter set for it.
func Build(c Context, hit Hit) (*params.Parameters, error) {
	if err := hit.Validate(); err != nil {
		return nil, fmt.Errorf("%s hit: %w", hit.Type(), err)
	}
	p, err := Base(c)
	if err != nil {
		return nil, err
	}
	hit.Apply(p)
	p.Set(params.HitType, hit.Type())
	return p, nil
}

// Base maps the tracker, visitor, session and page onto a fresh set.
func Base(c Context) (*params.Parameters, error) {
	if c.Session == nil {
		return nil, ErrNoSession
	}
	cfg := c.Config
	if cfg == nil {
		def := config.Default()
		cfg = &def
	}
	v := c.Visitor
	if v == nil {
		v = entity.NewVisitor()
	}
	page := c.Page
	if page == nil {
		page = &entity.Page{}
	}

	p := params.New()
	p.SetInt(params.Version, cfg.ProtocolVersion)
	p.Set(params.TrackingID, c.AccountID)
	p.SetFlag(params.AnonymizeIP, cfg.AnonymizeIP)
	p.Set(params.DataSource, v.Source)
	if id, ok := v.UniqueID(); ok {
		p.Set(params.UserID, strconv.FormatUint(uint64(id), 10))
	} else {
		p.Set(params.UserID, strconv.FormatUint(uint64(c.Session.ID), 10))
	}
	p.Set(params.ClientID, ClientID(c.Session.ID))
	ip := v.IPAddress
	if cfg.AnonymizeIP && codec.IsValidIP(ip) {
		ip = codec.AnonymizeIP(ip)
	}
	p.Set(params.IPOverride, ip)
	p.Set(params.UserAgent, v.UserAgent)
	locale := v.Locale
	if locale == "" {
		locale = DefaultLocale
	}
	p.Set(params.UserLanguage, locale)
	p.Set(params.DocumentHost, c.HostName)
	p.Set(params.DocumentPath, page.Path())
	p.Set(params.DocumentTitle, page.Title)
	if ms, ok := page.LoadTime(); ok {
		p.SetInt(params.PageLoadTime, ms)
	}
	p.Set(params.DocumentReferrer, page.Referrer)
	if page.Charset != "" {
		p.Set(params.DocumentEncoding, page.Charset)
	}
	return p, nil
}

// ClientID derives the "cid" value: a name based (MD5, version 3) UUID of the
// decimal session id in the DNS namespace.
func ClientID(sessionID uint32) string {
	return uuid.NewMD5(uuid.NameSpaceDNS, []byte(strconv.FormatUint(uint64(sessionID), 10))).String()
}
