// Package transport turns a parameter set into an HTTP request and hands it
// to an HTTP client.
package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// MaxGetLength is the longest query string still sent with GET. Longer ones
// go in a POST body.
const MaxGetLength = 2036

// Prepared is a fully built hit request, before it is bound to a context.
type Prepared struct {
	Method string
	URL    string
	Body   string // empty for GET
	Header http.Header
}

// Prepare chooses GET or POST for query and fills in the headers.
func Prepare(endpoint, query, userAgent string) (*Prepared, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint: %w", err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("endpoint %q has no host", endpoint)
	}

	h := make(http.Header)
	h.Set("Host", u.Host)
	if userAgent != "" {
		h.Set("User-Agent", userAgent)
	}

	if Method(query) == http.MethodPost {
		h.Set("Content-Type", "text/plain")
		h.Set("Content-Length", strconv.Itoa(len(query)))
		return &Prepared{Method: http.MethodPost, URL: endpoint, Body: query, Header: h}, nil
	}
	return &Prepared{Method: http.MethodGet, URL: endpoint + "?" + query, Header: h}, nil
}

// Method returns the HTTP method a hit with query is sent with.
func Method(query string) string {
	if len(query) > MaxGetLength {
		return http.MethodPost
	}
	return http.MethodGet
}

// HTTPRequest binds p to ctx.
func (p *Prepared) HTTPRequest(ctx context.Context) (*http.Request, error) {
	var body io.Reader
	if p.Method == http.MethodPost {
		body = strings.NewReader(p.Body)
	}
	req, err := http.NewRequestWithContext(ctx, p.Method, p.URL, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header = p.Header.Clone()
	req.Host = p.Header.Get("Host")
	return req, nil
}
