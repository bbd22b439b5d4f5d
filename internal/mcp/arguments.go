package mcp

import (
	"fmt"
	"strings"
)

// argumentError reports arguments that do not match a tool's schema.
type argumentError struct {
	msg string
}

func (e *argumentError) Error() string { return e.msg }

func argErrorf(format string, args ...any) error {
	return &argumentError{msg: fmt.Sprintf(format, args...)}
}

// arguments wraps the decoded JSON arguments of a tool call. Types are
// checked strictly: a number where a string is declared is rejected.
type arguments map[string]any

func (a arguments) requiredString(key string) (string, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return "", argErrorf("%s is required", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", argErrorf("%s must be a string, got %T", key, v)
	}
	return s, nil
}

// requiredID is requiredString for path ids, which must not be blank.
func (a arguments) requiredID(key string) (string, error) {
	s, err := a.requiredString(key)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(s) == "" {
		return "", argErrorf("%s must not be empty", key)
	}
	return s, nil
}

// optionalString returns "" when key is absent or null.
func (a arguments) optionalString(key string) (string, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", argErrorf("%s must be a string, got %T", key, v)
	}
	return s, nil
}

// optionalBool returns false when key is absent or null.
func (a arguments) optionalBool(key string) (bool, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return false, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, argErrorf("%s must be a boolean, got %T", key, v)
	}
	return b, nil
}

// optionalStringList returns nil when key is absent or null, and a non-nil
// slice (possibly empty) when it is present.
func (a arguments) optionalStringList(key string) ([]string, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return nil, nil
	}
	switch list := v.(type) {
	case []string:
		return append(make([]string, 0, len(list)), list...), nil
	case []any:
		out := make([]string, 0, len(list))
		for i, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, argErrorf("%s[%d] must be a string, got %T", key, i, item)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, argErrorf("%s must be an array of strings, got %T", key, v)
	}
}
