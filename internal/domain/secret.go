package domain

import (
	"fmt"
	"strings"
)

// CleanAPIKey trims a pasted collaborator API key. Keys are single tokens.
func CleanAPIKey(value string) (string, error) {
	key := strings.TrimSpace(value)
	if key == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidSecret)
	}
	if strings.ContainsAny(key, " \t\r\n") {
		return "", fmt.Errorf("%w: must be a single token", ErrInvalidSecret)
	}
	return key, nil
}
