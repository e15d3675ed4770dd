package id

import "github.com/google/uuid"

// Generator creates opaque identifiers.
type Generator interface {
	New() string
}

// UUID issues random (v4) identifiers used to correlate submission log lines.
type UUID struct{}

func (UUID) New() string {
	return uuid.NewString()
}

// Static always returns Value. Useful for tests that assert on log fields or outputs.
type Static struct{ Value string }

func (s Static) New() string { return s.Value }
