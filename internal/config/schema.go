package config

import "time"

// DefaultEndpoint is the public collection endpoint.
const DefaultEndpoint = "http://www.google-analytics.com/collect"

// File is the top-level YAML structure.
type File struct {
	Version string      `yaml:"version"`
	Collect Collect     `yaml:"collect"`
	Tracker TrackerConf `yaml:"tracker"`
	Server  ServerConf  `yaml:"server"`
	Logging LogConf     `yaml:"logging"`
}

// Collect is the configuration shared by every tracker in the process.
// Treat it as read-only once trackers hold it.
type Collect struct {
	// Endpoint is the collection URL. Empty selects simulate mode: hits are
	// built and logged but never sent.
	Endpoint        string  `yaml:"endpoint"`
	AnonymizeIP     bool    `yaml:"anonimize_ip_address"`
	ProtocolVersion int     `yaml:"protocol_version"`
	RequestTimeout  float64 `yaml:"request_timeout"` // seconds
}

// Simulate reports whether hits should be built without being sent.
func (c *Collect) Simulate() bool {
	return c.Endpoint == ""
}

// Timeout returns RequestTimeout as a duration.
func (c *Collect) Timeout() time.Duration {
	return time.Duration(c.RequestTimeout * float64(time.Second))
}

// TrackerConf names the property hits are recorded under.
type TrackerConf struct {
	AccountID string `yaml:"account_id"`
	HostName  string `yaml:"host_name"`
}

// ServerConf holds the relay server settings.
type ServerConf struct {
	Addr string `yaml:"addr"`
}

// LogConf mirrors logging.Config.
type LogConf struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"` // empty = stderr
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// Default returns the collect settings used when nothing is configured.
func Default() Collect {
	return Collect{
		Endpoint:        DefaultEndpoint,
		AnonymizeIP:     false,
		ProtocolVersion: 1,
		RequestTimeout:  1,
	}
}

// DefaultFile returns a File with every default applied.
func DefaultFile() File {
	return File{
		Version: "v1",
		Collect: Default(),
		Server:  ServerConf{Addr: ":8080"},
		Logging: LogConf{
			Level:      "info",
			MaxSizeMB:  100,
			MaxBackups: 3,
			MaxAgeDays: 28,
			Compress:   true,
		},
	}
}
