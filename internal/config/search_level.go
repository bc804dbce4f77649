package config

import (
	"fmt"
	"strconv"
)

// ParseSearchLevel parses a search depth. Deep searches block the caller until
// the whole tree is enumerated, so the depth is capped.
func ParseSearchLevel(value string) (int, error) {
	level, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("search level is not a number: %w", err)
	}

	if level < 1 || level > MaxSearchLevel {
		return 0, fmt.Errorf("search level must be between 1 and %d, got %d", MaxSearchLevel, level)
	}

	return level, nil
}
