package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"wpmcp/internal/config"
	"wpmcp/internal/logging"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

const testPassword = "abcd efgh ijkl mnop qrst uvwx"

func TestMain(m *testing.M) {
	keyring.MockInit()
	os.Exit(m.Run())
}

// isolate points XDG at temp dirs and clears the WordPress environment.
func isolate(t *testing.T) {
	t.Helper()
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	xdg.Reload()

	for _, key := range []string{config.EnvSiteURL, config.EnvUsername, config.EnvApplicationPassword, "DEBUG"} {
		t.Setenv(key, "")
	}
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	logger, _ := logging.NewTestLogger()
	root := newRootCmd(logger)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--no-color"}, args...))

	err := root.Execute()
	return out.String(), err
}

type siteHit struct {
	Path string
	Body string
}

func newSite(t *testing.T, status int, body string) (*httptest.Server, func() []siteHit) {
	t.Helper()
	var mu sync.Mutex
	var hits []siteHit
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		mu.Lock()
		hits = append(hits, siteHit{Path: r.URL.Path, Body: string(data)})
		mu.Unlock()
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, func() []siteHit {
		mu.Lock()
		defer mu.Unlock()
		return append([]siteHit(nil), hits...)
	}
}

func TestConfigInitShowPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.yaml")

	out, err := execute(t, "", "config", "init", "--config", path,
		"--url", "https://example.com/", "--username", "editor", "--password", testPassword)
	require.NoError(t, err, out)
	assert.Contains(t, out, "Configuration written to "+path)
	assert.Contains(t, out, "system keyring")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "uvwx", "keyring password must not be written to the file")

	out, err = execute(t, "", "config", "show", "--config", path)
	require.NoError(t, err, out)
	assert.Contains(t, out, "https://example.com")
	assert.Contains(t, out, "editor")
	assert.Contains(t, out, strings.Repeat("*", 20)+"uvwx (from keyring)")
	assert.NotContains(t, out, "abcd")

	out, err = execute(t, "", "config", "path", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, path+"\n", out)
}

func TestConfigInit_RefusesOverwrite(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.yaml")

	_, err := execute(t, "", "config", "init", "--config", path, "--url", "https://a.example", "--username", "a")
	require.NoError(t, err)

	_, err = execute(t, "", "config", "init", "--config", path, "--url", "https://b.example", "--username", "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")

	_, err = execute(t, "", "config", "init", "--config", path, "--url", "https://b.example", "--username", "b", "--force")
	require.NoError(t, err)

	cfg, err := config.LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "https://b.example", cfg.SiteURL)
}

func TestConfigInit_Validation(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.yaml")

	_, err := execute(t, "", "config", "init", "--config", path, "--username", "a")
	assert.Error(t, err, "--url is required")

	_, err = execute(t, "", "config", "init", "--config", path, "--url", "ftp://example.com", "--username", "a")
	assert.Error(t, err)

	_, err = execute(t, "", "config", "init", "--config", path, "--url", "https://example.com", "--username", "a", "--password", "short")
	assert.Error(t, err)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "nothing may be written when validation fails")
}

func TestCredentials_SetStatusDelete(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	_, err := execute(t, "", "config", "init", "--config", path, "--url", "https://example.com", "--username", "writer")
	require.NoError(t, err)

	out, err := execute(t, testPassword+"\n", "credentials", "set", "--config", path)
	require.NoError(t, err, out)
	assert.Contains(t, out, "stored for writer")

	out, err = execute(t, "", "credentials", "status", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "stored for writer")

	out, err = execute(t, "", "credentials", "delete", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "removed for writer")

	out, err = execute(t, "", "credentials", "status", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "nothing stored for writer")
}

func TestCredentialsSet_RequiresUsername(t *testing.T) {
	isolate(t)

	_, err := execute(t, testPassword, "credentials", "set")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no username configured")
}

func TestDoctor_AllChecksPass(t *testing.T) {
	isolate(t)
	site, hits := newSite(t, http.StatusOK, `[{"id":1,"name":"Uncategorized"},{"id":2,"name":"News"}]`)

	path := filepath.Join(t.TempDir(), "config.yaml")
	_, err := execute(t, "", "config", "init", "--config", path, "--url", site.URL, "--username", "admin")
	require.NoError(t, err)
	t.Setenv(config.EnvApplicationPassword, testPassword)

	out, err := execute(t, "", "doctor", "--config", path)
	require.NoError(t, err, out)
	assert.Contains(t, out, "reachable, 2 categories visible")
	assert.Contains(t, out, "password from environment")
	assert.Contains(t, out, "All checks passed")

	require.Len(t, hits(), 1)
	assert.Equal(t, "/wp-json/wp/v2/categories", hits()[0].Path)
}

func TestDoctor_RejectedCredentials(t *testing.T) {
	isolate(t)
	site, _ := newSite(t, http.StatusUnauthorized, `{"code":"incorrect_password"}`)
	t.Setenv(config.EnvSiteURL, site.URL)
	t.Setenv(config.EnvUsername, "admin")
	t.Setenv(config.EnvApplicationPassword, testPassword)

	out, err := execute(t, "", "doctor")
	require.Error(t, err)
	assert.Contains(t, out, `HTTP 401: {"code":"incorrect_password"}`)
}

func TestDoctor_MissingSettings(t *testing.T) {
	isolate(t)

	out, err := execute(t, "", "doctor")
	require.Error(t, err)
	assert.Contains(t, out, "missing WORDPRESS_URL, WORDPRESS_USERNAME, APPLICATION_PASSWORD")
	assert.NotContains(t, out, "WordPress API")
}

func TestDraft_CreatesDraftPost(t *testing.T) {
	isolate(t)
	site, hits := newSite(t, http.StatusCreated, `{"id":12,"link":"https://example.com/?p=12","status":"draft"}`)
	t.Setenv(config.EnvSiteURL, site.URL)
	t.Setenv(config.EnvUsername, "admin")
	t.Setenv(config.EnvApplicationPassword, testPassword)

	file := filepath.Join(t.TempDir(), "notes.md")
	require.NoError(t, os.WriteFile(file, []byte("---\ntitle: Release notes\n---\n<p>Hello</p>\n"), 0644))

	out, err := execute(t, "", "draft", file)
	require.NoError(t, err, out)
	assert.Contains(t, out, "Draft created: ID 12")
	assert.Contains(t, out, "https://example.com/?p=12")

	require.Len(t, hits(), 1)
	var body map[string]string
	require.NoError(t, json.Unmarshal([]byte(hits()[0].Body), &body))
	assert.Equal(t, map[string]string{"title": "Release notes", "content": "<p>Hello</p>", "status": "draft"}, body)
}

func TestDraft_IncompleteConfig(t *testing.T) {
	isolate(t)
	file := filepath.Join(t.TempDir(), "notes.md")
	require.NoError(t, os.WriteFile(file, []byte("---\ntitle: x\n---\nbody\n"), 0644))

	_, err := execute(t, "", "draft", file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration incomplete")
}

func TestRoot_RejectsUnknownArguments(t *testing.T) {
	isolate(t)

	_, err := execute(t, "", "publish-everything")
	assert.Error(t, err)
}

func TestRoot_InvalidLogLevel(t *testing.T) {
	isolate(t)

	_, err := execute(t, "", "--log-level", "loud", "config", "path")
	assert.Error(t, err)
}

func TestClientConfig(t *testing.T) {
	isolate(t)
	t.Setenv(config.EnvSiteURL, "https://example.com")
	t.Setenv(config.EnvUsername, "editor")
	t.Setenv(config.EnvApplicationPassword, testPassword)

	out, err := execute(t, "", "client-config")
	require.NoError(t, err)
	assert.Contains(t, out, "claude-desktop")
	assert.Contains(t, out, "vscode")

	out, err = execute(t, "", "client-config", "cursor")
	require.NoError(t, err, out)

	var doc struct {
		MCPServers map[string]struct {
			Command string            `json:"command"`
			Args    []string          `json:"args"`
			Env     map[string]string `json:"env"`
		} `json:"mcpServers"`
	}
	require.NoError(t, json.NewDecoder(strings.NewReader(out)).Decode(&doc))

	server, ok := doc.MCPServers["wordpress"]
	require.True(t, ok, out)
	assert.Equal(t, []string{"serve"}, server.Args)
	assert.Equal(t, "https://example.com", server.Env[config.EnvSiteURL])
	assert.Equal(t, "editor", server.Env[config.EnvUsername])
	assert.NotContains(t, out, "uvwx", "the password is never printed")

	_, err = execute(t, "", "client-config", "notepad")
	assert.Error(t, err)
}
