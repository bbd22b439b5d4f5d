package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type fakeStore map[string]string

func (f fakeStore) Get(username string) (string, error) {
	if p, ok := f[username]; ok {
		return p, nil
	}
	return "", errors.New("not found")
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvSiteURL, EnvUsername, EnvApplicationPassword} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, cfg Config) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, cfg.SaveTo(path))
	return path
}

func TestResolve_EnvironmentOnly(t *testing.T) {
	useTempConfigHome(t)
	clearEnv(t)
	t.Setenv(EnvSiteURL, "https://env.example.com")
	t.Setenv(EnvUsername, "env-user")
	t.Setenv(EnvApplicationPassword, "env pass")

	cfg, err := Resolve("", nil)
	require.NoError(t, err)

	creds := cfg.Credentials()
	assert.Equal(t, "https://env.example.com", creds.BaseURL)
	assert.Equal(t, "env-user", creds.Username)
	assert.Equal(t, "env pass", creds.Password)
	assert.Equal(t, SourceEnv, cfg.PasswordSource)
	assert.Empty(t, cfg.Missing())
}

func TestResolve_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, Config{
		SiteURL:             "https://file.example.com",
		Username:            "file-user",
		ApplicationPassword: "file pass",
	})
	t.Setenv(EnvSiteURL, "https://env.example.com")

	cfg, err := Resolve(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "https://env.example.com", cfg.SiteURL)
	assert.Equal(t, "file-user", cfg.Username)
	assert.Equal(t, "file pass", cfg.ApplicationPassword)
	assert.Equal(t, SourceFile, cfg.PasswordSource)
}

func TestResolve_KeyringFallback(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, Config{SiteURL: "https://example.com", Username: "editor"})

	cfg, err := Resolve(path, fakeStore{"editor": "from keyring"})
	require.NoError(t, err)

	assert.Equal(t, "from keyring", cfg.ApplicationPassword)
	assert.Equal(t, SourceKeyring, cfg.PasswordSource)
}

func TestResolve_KeyringNotConsultedWhenPasswordSet(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, Config{Username: "editor"})
	t.Setenv(EnvApplicationPassword, "from env")

	cfg, err := Resolve(path, fakeStore{"editor": "from keyring"})
	require.NoError(t, err)
	assert.Equal(t, "from env", cfg.ApplicationPassword)
}

func TestResolve_MissingValuesAreNotAnError(t *testing.T) {
	useTempConfigHome(t)
	clearEnv(t)

	cfg, err := Resolve("", fakeStore{})
	require.NoError(t, err)

	assert.Equal(t, []string{EnvSiteURL, EnvUsername, EnvApplicationPassword}, cfg.Missing())
	assert.Error(t, cfg.Validate())
}

func TestResolve_ExplicitPathMustExist(t *testing.T) {
	clearEnv(t)

	_, err := Resolve(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	assert.Error(t, err)
}

func TestSaveTo_DoesNotPersistBorrowedPassword(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, Config{SiteURL: "https://example.com", Username: "editor"})
	t.Setenv(EnvApplicationPassword, "secret from env")

	cfg, err := Resolve(path, nil)
	require.NoError(t, err)
	require.NoError(t, cfg.SaveTo(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var onDisk map[string]any
	require.NoError(t, yaml.Unmarshal(data, &onDisk))
	assert.NotContains(t, onDisk, "application_password")
	assert.NotContains(t, string(data), "secret from env")
}

func TestValidate(t *testing.T) {
	cfg := Config{SiteURL: "example.com", Username: "editor", ApplicationPassword: "x"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http or https")

	cfg.SiteURL = "https://example.com"
	assert.NoError(t, cfg.Validate())

	cfg.RequestTimeout = -1
	assert.Error(t, cfg.Validate())
}
