package entity

import (
	"fmt"
	"strings"
)

// Page is the document a hit refers to.
type Page struct {
	Title    string // "dt"
	Charset  string // "de"
	Referrer string // "dr"

	path        string
	loadTime    int
	hasLoadTime bool
}

// NewPage returns a Page for path, which may be empty.
func NewPage(path string) (*Page, error) {
	p := &Page{}
	if err := p.SetPath(path); err != nil {
		return nil, err
	}
	return p, nil
}

// SetPath sets the request URI. A non-empty path must start with "/".
func (p *Page) SetPath(path string) error {
	if path != "" && !strings.HasPrefix(path, "/") {
		return invalid("page", "path", fmt.Sprintf("should always start with a slash (\"/\"), got %q", path))
	}
	p.path = path
	return nil
}

// Path returns the request URI.
func (p *Page) Path() string {
	return p.path
}

// SetLoadTime records the page load time in milliseconds.
func (p *Page) SetLoadTime(ms int) error {
	if ms < 0 {
		return invalid("page", "load_time", fmt.Sprintf("must be non-negative integer milliseconds, got %d", ms))
	}
	p.loadTime = ms
	p.hasLoadTime = true
	return nil
}

// LoadTime returns the load time and whether it was set.
func (p *Page) LoadTime() (int, bool) {
	return p.loadTime, p.hasLoadTime
}
