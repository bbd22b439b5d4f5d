package validation

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ParseIDList converts numeric strings to integers. Every item must be a
// base-10 integer; the first item that is not is reported with its index.
// A nil input yields nil, an empty one an empty non-nil slice.
func ParseIDList(items []string) ([]int, error) {
	if items == nil {
		return nil, nil
	}
	ids := make([]int, 0, len(items))
	for i, item := range items {
		id, err := strconv.Atoi(strings.TrimSpace(item))
		if err != nil {
			return nil, fmt.Errorf("item %d (%q) is not an integer", i, item)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ParseID converts a single numeric string to an integer.
func ParseID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer", s)
	}
	return id, nil
}

// ValidateSiteURL checks that raw is an absolute http(s) URL.
// Returns nil if valid, or an error describing the problem.
func ValidateSiteURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return fmt.Errorf("site URL is empty")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("cannot parse site URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("site URL must use http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("site URL has no host")
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return fmt.Errorf("site URL must not contain a query or fragment")
	}
	return nil
}
