package cipher

import (
	"fmt"
	"strings"
)

// normalizeKey case-folds key and returns it as runes.
func normalizeKey(stage, key string) ([]rune, error) {
	if key == "" {
		return nil, fmt.Errorf("%s: %w: key must not be empty", stage, ErrInvalidKey)
	}
	return []rune(strings.ToLower(key)), nil
}

func isLower(r rune) bool {
	return r >= 'a' && r <= 'z'
}

func isUpper(r rune) bool {
	return r >= 'A' && r <= 'Z'
}
