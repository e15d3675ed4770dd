package domain

import "time"

// Receipt records one finished submission attempt.
type Receipt struct {
	ID        string
	Kind      Kind
	Goal      Goal
	Endpoint  string
	Outcome   Outcome
	StartedAt time.Time
	Elapsed   time.Duration
}
