package registry

import (
	"fmt"
	"strings"

	"github.com/xraph/worlds"
)

// normalizeID trims whitespace before validation and lookup.
func normalizeID(id string) string {
	return strings.TrimSpace(id)
}

// validateID enforces the identifier rules: non-empty, chars limited to
// [A-Za-z0-9._-]. Keeps identifiers stable and log-friendly.
func validateID(id string) error {
	if id == "" {
		return fmt.Errorf("%w: empty identifier", worlds.ErrInvalidID)
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '.' || c == '_' || c == '-':
		default:
			return fmt.Errorf("%w: %q contains invalid character (allowed: [A-Za-z0-9._-])", worlds.ErrInvalidID, id)
		}
	}

	return nil
}
