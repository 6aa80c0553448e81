package validate

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// playerIdRx matches the upstream public player identifier: uppercase hex,
// 1-32 chars.
var playerIdRx = regexp.MustCompile(`^[0-9A-Fa-f]{1,32}$`)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PlayerID validates the public player identifier from the request path.
func PlayerID(v string) error {
	if v == "" {
		return fmt.Errorf("playerId is required")
	}
	if !playerIdRx.MatchString(v) {
		return fmt.Errorf("playerId must be a hexadecimal identifier")
	}
	return nil
}

// FileName validates the file name from the request path.
func FileName(v string) error {
	if v == "" {
		return fmt.Errorf("fileName is required")
	}
	if len(v) > 128 {
		return fmt.Errorf("fileName exceeds 128 characters")
	}
	return nil
}

// PageNumber parses a 1-based page number, defaulting to 1 when absent.
func PageNumber(v string) (int, error) {
	if v == "" {
		return 1, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("pageNumber must be a positive integer")
	}
	return n, nil
}

// PageSize parses the page size, defaulting and clamping to the allowed range.
func PageSize(v string) (int, error) {
	if v == "" {
		return DefaultPageSize, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("pageSize must be a positive integer")
	}
	if n > MaxPageSize {
		return 0, fmt.Errorf("pageSize exceeds %d", MaxPageSize)
	}
	return n, nil
}

// Timestamp parses an optional RFC3339 bound; nil when absent.
func Timestamp(field, v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return nil, fmt.Errorf("%s must be an RFC3339 timestamp", field)
	}
	return &t, nil
}
