package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gyaneshwarpardhi/gacollect/internal/config"
)

func newLoader(t *testing.T, yaml string) *config.Loader {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gacollect.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
	l, err := config.NewLoader(path)
	require.NoError(t, err)
	return l
}

const simulateConfig = `
version: v1
collect:
  endpoint: ""
tracker:
  account_id: UA-123-1
  host_name: example.com
`

func post(t *testing.T, h http.Handler, path, body string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) hitResponse {
	t.Helper()
	var res hitResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	return res
}

func TestPageview_Simulated(t *testing.T) {
	h := New(newLoader(t, simulateConfig), nil)

	rec := post(t, h, "/v1/pageview", `{"page":{"path":"/home","title":"Home"},"session":{"id":12345}}`, map[string]string{
		"User-Agent":      "Mozilla/5.0 (iPhone; CPU iPhone OS 17_5 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.5 Mobile/15E148 Safari/604.1",
		"Accept-Language": "de-CH,de;q=0.9",
		"X-Forwarded-For": "203.0.113.9, 10.0.0.1",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	res := decode(t, rec)
	assert.True(t, res.Simulated)
	assert.Equal(t, "pageview", res.HitType)
	assert.Empty(t, res.Method)
	assert.Equal(t, "mobile", res.Device)
	assert.NotEmpty(t, res.RequestID)
	assert.True(t, strings.HasPrefix(res.Session, "60493049.1.10."), res.Session)

	q, err := url.ParseQuery(res.Query)
	require.NoError(t, err)
	assert.Equal(t, "pageview", q.Get("t"))
	assert.Equal(t, "UA-123-1", q.Get("tid"))
	assert.Equal(t, "/home", q.Get("dp"))
	assert.Equal(t, "Home", q.Get("dt"))
	assert.Equal(t, "de-ch", q.Get("ul"))
	assert.Equal(t, "203.0.113.9", q.Get("uip"))
	assert.Equal(t, "12345", q.Get("uid"))
	assert.Equal(t, "example.com", q.Get("dh"))
}

func TestEvent_RestoresSession(t *testing.T) {
	h := New(newLoader(t, simulateConfig), nil)

	rec := post(t, h, "/v1/event",
		`{"event":{"category":"video","action":"play","value":3},"session":{"utmb":"60493049.4.10.1400000000"}}`, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	res := decode(t, rec)
	assert.Equal(t, "60493049.5.10.1400000000", res.Session)
	assert.Contains(t, res.Query, "ec=video")
	assert.Contains(t, res.Query, "ev=3")
}

func TestPageview_ContinuedSessionKeepsClientID(t *testing.T) {
	h := New(newLoader(t, simulateConfig), nil)

	first := decode(t, post(t, h, "/v1/pageview", `{"page":{"path":"/"}}`, nil))
	require.NotZero(t, first.SessionID)

	body, err := json.Marshal(map[string]interface{}{
		"page":    map[string]string{"path": "/next"},
		"session": map[string]interface{}{"id": first.SessionID, "utmb": first.Session},
	})
	require.NoError(t, err)
	rec := post(t, h, "/v1/pageview", string(body), nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	second := decode(t, rec)

	q1, err := url.ParseQuery(first.Query)
	require.NoError(t, err)
	q2, err := url.ParseQuery(second.Query)
	require.NoError(t, err)
	assert.Equal(t, first.SessionID, second.SessionID)
	assert.Equal(t, q1.Get("cid"), q2.Get("cid"))
	assert.Equal(t, q1.Get("uid"), q2.Get("uid"))
	assert.True(t, strings.HasPrefix(second.Session, "60493049.2.10."), second.Session)
}

func TestEvent_ValidationErrors(t *testing.T) {
	h := New(newLoader(t, simulateConfig), nil)

	cases := map[string]string{
		"missing action": `{"event":{"category":"video"}}`,
		"missing event":  `{}`,
		"bad path":       `{"event":{"category":"c","action":"a"},"page":{"path":"home"}}`,
		"bad visitor id": `{"event":{"category":"c","action":"a"},"visitor":{"unique_id":-1}}`,
		"bad cookie":     `{"event":{"category":"c","action":"a"},"session":{"utmb":"1.2.3"}}`,
		"bad json":       `{`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rec := post(t, h, "/v1/event", body, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}
}

func TestException_SentUpstream(t *testing.T) {
	var got url.Values
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.WriteHeader(http.StatusOK)
	}))
	defer upstream.Close()

	h := New(newLoader(t, "version: v1\ncollect:\n  endpoint: "+upstream.URL+"/collect\ntracker:\n  account_id: UA-9-1\n"), upstream.Client())

	rec := post(t, h, "/v1/exception", `{"exception":{"description":"db down","fatal":true}}`, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	res := decode(t, rec)
	assert.False(t, res.Simulated)
	assert.Equal(t, http.MethodGet, res.Method)
	assert.Equal(t, http.StatusOK, res.Status)
	assert.Equal(t, "exception", got.Get("t"))
	assert.Equal(t, "db down", got.Get("exd"))
	assert.Equal(t, "1", got.Get("exf"))
}

func TestTrack_NoAccountID(t *testing.T) {
	h := New(newLoader(t, "version: v1\ncollect:\n  endpoint: \"\"\n"), nil)
	rec := post(t, h, "/v1/pageview", `{}`, nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestConfigRoutes(t *testing.T) {
	h := New(newLoader(t, simulateConfig), nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/config", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var cfg map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cfg))
	assert.Equal(t, true, cfg["simulate"])
	assert.Equal(t, "UA-123-1", cfg["account_id"])

	rec = post(t, h, "/v1/config/reload", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeviceClass(t *testing.T) {
	assert.Equal(t, "unknown", deviceClass(""))
	assert.Equal(t, "desktop", deviceClass("Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/125.0.0.0 Safari/537.36"))
	assert.Equal(t, "bot", deviceClass("Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)"))
}

func TestClientIP(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "198.51.100.7:5555"
	assert.Equal(t, "198.51.100.7", clientIP(r))

	r.Header.Set("X-Real-IP", "192.0.2.1")
	assert.Equal(t, "192.0.2.1", clientIP(r))

	r.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	assert.Equal(t, "203.0.113.9", clientIP(r))
}
