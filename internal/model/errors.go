package model

import (
	"errors"
	"fmt"
)

// ErrNotFound marks a domain-level absence (no such player, no such file),
// as opposed to an upstream call failing. Handlers map it to 404.
var ErrNotFound = errors.New("not found")

// AuthError means the title token could not be obtained or refreshed.
type AuthError struct {
	Detail string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication failed: %s", e.Detail)
}

// IdentityError means a public player id could not be mapped to an upstream
// entity id.
type IdentityError struct {
	PlayerID string
	Detail   string
}

func (e *IdentityError) Error() string {
	return fmt.Sprintf("failed to resolve entity id for player %s: %s", e.PlayerID, e.Detail)
}

// UpstreamError is a generic upstream failure on a call where the caller must
// be able to tell "fetch failed" apart from "no data".
type UpstreamError struct {
	Op     string
	Detail string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s failed: %s", e.Op, e.Detail)
}
