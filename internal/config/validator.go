package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/gyaneshwarpardhi/gacollect/internal/codec"
)

// Validate checks the config for:
//   - a protocol version of at least 1 and a positive request timeout
//   - an absolute http(s) endpoint, unless simulate mode is selected
//   - a well-formed tracker account id, when one is set
func Validate(cfg *File) error {
	if cfg.Version == "" {
		return fmt.Errorf("config: version is required")
	}
	errs := ValidateCollect(&cfg.Collect)

	if id := cfg.Tracker.AccountID; id != "" && !codec.IsValidAccountID(id) {
		errs = append(errs, fmt.Sprintf("tracker.account_id %q is not a valid property id", id))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation errors:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

// ValidateCollect returns one message per problem in c.
func ValidateCollect(c *Collect) []string {
	var errs []string
	if c.ProtocolVersion < 1 {
		errs = append(errs, fmt.Sprintf("collect.protocol_version must be >= 1, got %d", c.ProtocolVersion))
	}
	if c.RequestTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("collect.request_timeout must be > 0, got %v", c.RequestTimeout))
	}
	if c.Endpoint != "" {
		u, err := url.Parse(c.Endpoint)
		switch {
		case err != nil:
			errs = append(errs, fmt.Sprintf("collect.endpoint: %s", err))
		case u.Scheme != "http" && u.Scheme != "https":
			errs = append(errs, fmt.Sprintf("collect.endpoint %q must be an http(s) URL", c.Endpoint))
		case u.Host == "":
			errs = append(errs, fmt.Sprintf("collect.endpoint %q has no host", c.Endpoint))
		}
	}
	return errs
}
