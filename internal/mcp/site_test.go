package mcp

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"wpmcp/internal/config"
	"wpmcp/internal/logging"
)

// hit is one request received by a fakeSite.
type hit struct {
	Method  string
	RawPath string
	Query   string
	Auth    string
	Body    string
}

// fakeSite answers every request with a fixed status and body.
type fakeSite struct {
	*httptest.Server

	mu   sync.Mutex
	hits []hit
}

func newFakeSite(t *testing.T, status int, body string) *fakeSite {
	t.Helper()
	fs := &fakeSite{}
	fs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		fs.mu.Lock()
		fs.hits = append(fs.hits, hit{
			Method:  r.Method,
			RawPath: r.URL.EscapedPath(),
			Query:   r.URL.RawQuery,
			Auth:    r.Header.Get("Authorization"),
			Body:    string(data),
		})
		fs.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(fs.Close)
	return fs
}

func (fs *fakeSite) Hits() []hit {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return append([]hit(nil), fs.hits...)
}

// newTestServer returns a Server pointed at siteURL and the buffer its
// logger writes to.
func newTestServer(t *testing.T, siteURL string) (*Server, *bytes.Buffer) {
	t.Helper()
	logger, buf := logging.NewTestLogger()
	cfg := &config.Config{
		SiteURL:             siteURL,
		Username:            "admin",
		ApplicationPassword: "abcd efgh ijkl",
	}
	return NewServer(cfg, logger), buf
}
