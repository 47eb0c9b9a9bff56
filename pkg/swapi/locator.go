package swapi

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ExtractID returns the trailing path segment of a locator.
//
// The locator is split on "/" and empty segments are dropped, so
// "https://swapi.py4e.com/api/people/1/" yields "1". Empty or blank input
// yields ("", false). ExtractID never fails loudly.
func ExtractID(locator string) (string, bool) {
	trimmed := strings.TrimSpace(locator)
	if trimmed == "" {
		return "", false
	}

	if parsed, err := url.Parse(trimmed); err == nil && parsed.Path != "" {
		trimmed = parsed.Path
	}

	segments := strings.Split(trimmed, "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i] != "" {
			return segments[i], true
		}
	}

	return "", false
}

// Locator is a parsed entity locator.
type Locator struct {
	Type EntityType
	ID   string
}

// String returns the locator in "<type>/<id>" form.
func (l Locator) String() string {
	return string(l.Type) + "/" + l.ID
}

// ParseLocator parses a full entity locator such as
// "https://swapi.py4e.com/api/films/1/" into its type and numeric id.
func ParseLocator(locator string) (Locator, error) {
	trimmed := strings.TrimSpace(locator)
	if parsed, err := url.Parse(trimmed); err == nil && parsed.Path != "" {
		trimmed = parsed.Path
	}

	segments := make([]string, 0, 4)
	for _, segment := range strings.Split(trimmed, "/") {
		if segment != "" {
			segments = append(segments, segment)
		}
	}

	if len(segments) < 2 {
		return Locator{}, fmt.Errorf("%w: %q", ErrInvalidLocator, locator)
	}

	id := segments[len(segments)-1]
	if _, err := strconv.Atoi(id); err != nil {
		return Locator{}, fmt.Errorf("%w: non-numeric id in %q", ErrInvalidLocator, locator)
	}

	entityType := EntityType(segments[len(segments)-2])
	if !entityType.Valid() {
		return Locator{}, fmt.Errorf("%w: %q", ErrUnknownEntityType, segments[len(segments)-2])
	}

	return Locator{Type: entityType, ID: id}, nil
}
