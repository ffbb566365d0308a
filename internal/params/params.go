// Package params is the flat key/value set a hit is serialized from.
package params

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/gyaneshwarpardhi/gacollect/internal/codec"
)

// Pair is one protocol key and its value.
type Pair struct {
	Key   string
	Value string
}

// Parameters holds protocol defaults plus the values a builder set on top of
// them. Empty values are never emitted, and an empty override leaves the
// default in place.
type Parameters struct {
	keys   []string
	values map[string]string
}

// New returns a set holding only the defaults.
func New() *Parameters {
	return &Parameters{values: make(map[string]string)}
}

// Set records value for key. Setting a key twice keeps its first position.
func (p *Parameters) Set(key, value string) {
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// SetInt records an integer value.
func (p *Parameters) SetInt(key string, v int) {
	p.Set(key, strconv.Itoa(v))
}

// SetFlag records "1" for true and clears key for false.
func (p *Parameters) SetFlag(key string, on bool) {
	if on {
		p.Set(key, "1")
		return
	}
	p.Set(key, "")
}

// Get returns the value key would be serialized with, or "".
func (p *Parameters) Get(key string) string {
	for _, kv := range p.Values() {
		if kv.Key == key {
			return kv.Value
		}
	}
	return ""
}

// Values merges defaults and overrides. Defaults come first, overrides
// follow in the order they were first set; empty values and cookie keys are
// skipped.
func (p *Parameters) Values() []Pair {
	out := make([]Pair, 0, len(defaults)+len(p.keys))
	index := make(map[string]int, cap(out))
	add := func(key, value string) {
		if value == "" || strings.HasPrefix(key, CookiePrefix) {
			return
		}
		if i, ok := index[key]; ok {
			out[i].Value = value
			return
		}
		index[key] = len(out)
		out = append(out, Pair{key, value})
	}
	for _, kv := range defaults {
		add(kv.Key, kv.Value)
	}
	for _, k := range p.keys {
		add(k, p.values[k])
	}
	return out
}

// Map returns Values as a map.
func (p *Parameters) Map() map[string]string {
	vals := p.Values()
	m := make(map[string]string, len(vals))
	for _, kv := range vals {
		m[kv.Key] = kv.Value
	}
	return m
}

// Encode form-encodes the set the way the JavaScript client does: spaces
// become %20 and !*'() stay literal.
func (p *Parameters) Encode() string {
	var b strings.Builder
	for i, kv := range p.Values() {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(kv.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(kv.Value))
	}
	return codec.ConvertToURIEncoding(strings.ReplaceAll(b.String(), "+", "%20"))
}
