package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gyaneshwarpardhi/gacollect/internal/config"
	"github.com/gyaneshwarpardhi/gacollect/internal/entity"
	"github.com/gyaneshwarpardhi/gacollect/internal/tracker"
)

type globalFlags struct {
	configPath string
	accountID  string
	hostName   string
	endpoint   string
	dryRun     bool
	anonymize  bool
	logLevel   string

	visitorID int64
	ip        string
	userAgent string
	locale    string
	source    string

	sessionID int64
	utmb      string

	path     string
	title    string
	referrer string
	charset  string
	loadTime int
}

func (g *globalFlags) register(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.StringVar(&g.configPath, "config", "", "YAML config file")
	f.StringVar(&g.accountID, "account", "", "web property id, e.g. UA-12345-1 (overrides config)")
	f.StringVar(&g.hostName, "host", "", "document host name (overrides config)")
	f.StringVar(&g.endpoint, "endpoint", "", "collection endpoint (overrides config)")
	f.BoolVar(&g.dryRun, "dry-run", false, "build and print the hit without sending it")
	f.BoolVar(&g.anonymize, "anonymize-ip", false, "anonymize the visitor ip")
	f.StringVar(&g.logLevel, "log-level", "warn", "log level")

	f.Int64Var(&g.visitorID, "visitor-id", -1, "visitor unique id (0..2147483647)")
	f.StringVar(&g.ip, "ip", "", "visitor ip address")
	f.StringVar(&g.userAgent, "ua", "", "visitor user agent")
	f.StringVar(&g.locale, "locale", "", "visitor locale, Accept-Language syntax allowed")
	f.StringVar(&g.source, "source", "", "data source")

	f.Int64Var(&g.sessionID, "session-id", -1, "session id (random when unset)")
	f.StringVar(&g.utmb, "utmb", "", "serialized session to continue")

	f.StringVar(&g.path, "path", "", "page path, must start with /")
	f.StringVar(&g.title, "title", "", "page title")
	f.StringVar(&g.referrer, "referrer", "", "page referrer")
	f.StringVar(&g.charset, "charset", "", "page charset")
	f.IntVar(&g.loadTime, "load-time", -1, "page load time in milliseconds")
}

// collect resolves the shared config: file first, then flag overrides.
func (g *globalFlags) collect() (*config.File, error) {
	file := config.DefaultFile()
	if g.configPath != "" {
		loaded, err := config.Load(g.configPath)
		if err != nil {
			return nil, err
		}
		file = *loaded
	}
	if g.accountID != "" {
		file.Tracker.AccountID = g.accountID
	}
	if g.hostName != "" {
		file.Tracker.HostName = g.hostName
	}
	if g.endpoint != "" {
		file.Collect.Endpoint = g.endpoint
	}
	if g.dryRun {
		file.Collect.Endpoint = ""
	}
	if g.anonymize {
		file.Collect.AnonymizeIP = true
	}
	file.Logging.Level = g.logLevel
	if err := config.Validate(&file); err != nil {
		return nil, err
	}
	return &file, nil
}

func (g *globalFlags) tracker(file *config.File) *tracker.Tracker {
	return tracker.New(file.Tracker.AccountID, file.Tracker.HostName, &file.Collect)
}

func (g *globalFlags) visitor() (*entity.Visitor, error) {
	v := entity.NewVisitor()
	if g.visitorID >= 0 {
		if err := v.SetUniqueID(g.visitorID); err != nil {
			return nil, err
		}
	}
	v.IPAddress = g.ip
	v.UserAgent = g.userAgent
	v.Locale = g.locale
	v.Source = g.source
	return v, nil
}

func (g *globalFlags) session() (*entity.Session, error) {
	s := entity.NewSession()
	if g.sessionID >= 0 {
		if g.sessionID > 0x7fffffff {
			return nil, fmt.Errorf("--session-id out of range: %d", g.sessionID)
		}
		s.ID = uint32(g.sessionID)
	}
	if g.utmb != "" {
		if err := s.ExtractFromUTMB(g.utmb); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (g *globalFlags) page() (*entity.Page, error) {
	p, err := entity.NewPage(g.path)
	if err != nil {
		return nil, err
	}
	p.Title = g.title
	p.Referrer = g.referrer
	p.Charset = g.charset
	if g.loadTime >= 0 {
		if err := p.SetLoadTime(g.loadTime); err != nil {
			return nil, err
		}
	}
	return p, nil
}
