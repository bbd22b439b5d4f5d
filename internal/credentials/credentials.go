// Package credentials stores WordPress application passwords in the OS
// credential store (macOS Keychain, Windows Credential Manager, Linux Secret
// Service) through go-keyring.
//
// Passwords are keyed by WordPress username under a single service name, so
// one machine can hold passwords for several accounts.
package credentials

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/zalando/go-keyring"
)

const (
	// Service name for OS credential store
	credentialService = "wpmcp"

	// WordPress generates 24 alphanumeric characters, displayed in groups of four.
	applicationPasswordLength = 24
)

// ErrNotFound is returned when no password is stored for a username.
var ErrNotFound = errors.New("no application password stored")

// Manager handles secure storage and retrieval of application passwords.
type Manager struct {
	service string
}

// NewManager creates a new credential manager instance
func NewManager() *Manager {
	return &Manager{
		service: credentialService,
	}
}

// Store validates password and saves it for username, replacing any
// previous value.
//
// Parameters:
//   - username: WordPress username the password belongs to
//   - password: application password, with or without the display spaces
//
// Returns:
//   - error: Storage errors or validation failures
func (m *Manager) Store(username, password string) error {
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("username cannot be empty")
	}
	if strings.TrimSpace(password) == "" {
		return fmt.Errorf("application password cannot be empty")
	}

	if err := ValidateApplicationPassword(password); err != nil {
		return fmt.Errorf("invalid application password: %w", err)
	}

	if err := keyring.Set(m.service, username, strings.TrimSpace(password)); err != nil {
		return fmt.Errorf("failed to store application password in credential store: %w", err)
	}

	return nil
}

// Get returns the stored application password for username. It returns an
// error wrapping ErrNotFound when nothing is stored.
func (m *Manager) Get(username string) (string, error) {
	password, err := keyring.Get(m.service, username)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", fmt.Errorf("%w for %q - run 'wpmcp credentials set'", ErrNotFound, username)
		}
		return "", fmt.Errorf("failed to retrieve application password from credential store: %w", err)
	}

	if strings.TrimSpace(password) == "" {
		return "", fmt.Errorf("stored application password for %q is empty - run 'wpmcp credentials set'", username)
	}

	return password, nil
}

// Delete removes the stored password for username. Missing entries are not
// an error.
func (m *Manager) Delete(username string) error {
	err := keyring.Delete(m.service, username)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("failed to delete application password from credential store: %w", err)
	}
	return nil
}

// Has reports whether a password is stored for username without returning it.
func (m *Manager) Has(username string) bool {
	_, err := keyring.Get(m.service, username)
	return err == nil
}

// ValidateApplicationPassword checks the shape WordPress uses for
// application passwords: 24 letters or digits, optionally grouped with
// spaces ("abcd efgh ijkl mnop qrst uvwx").
func ValidateApplicationPassword(password string) error {
	compact := strings.ReplaceAll(strings.TrimSpace(password), " ", "")

	if len(compact) != applicationPasswordLength {
		return fmt.Errorf("expected %d characters (ignoring spaces), got %d", applicationPasswordLength, len(compact))
	}

	for _, r := range compact {
		if r > unicode.MaxASCII || !(unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return fmt.Errorf("application passwords contain only letters and digits")
		}
	}

	return nil
}

// Status reports whether the credential store is usable by writing,
// reading back and deleting a probe value.
//
// Returns:
//   - map[string]any: Status information including availability and any errors
func (m *Manager) Status() map[string]any {
	status := make(map[string]any)

	testKey := "wpmcp_probe"
	testValue := "probe_value"

	if err := keyring.Set(m.service, testKey, testValue); err != nil {
		status["available"] = false
		status["error"] = err.Error()
		return status
	}

	retrieved, err := keyring.Get(m.service, testKey)
	if err != nil {
		status["available"] = false
		status["error"] = err.Error()
		keyring.Delete(m.service, testKey)
		return status
	}

	if retrieved != testValue {
		status["available"] = false
		status["error"] = "credential store corrupted - values don't match"
		keyring.Delete(m.service, testKey)
		return status
	}

	if err := keyring.Delete(m.service, testKey); err != nil {
		status["available"] = true
		status["warning"] = "credential store works but cleanup failed: " + err.Error()
		return status
	}

	status["available"] = true
	status["error"] = nil
	return status
}
