package clock

import "time"

// Clock abstracts time so elapsed-time reporting stays deterministic in tests.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// Stepped returns start on the first call and advances by step on every call after.
type Stepped struct {
	At   time.Time
	Step time.Duration
}

func (s *Stepped) Now() time.Time {
	now := s.At
	s.At = s.At.Add(s.Step)
	return now
}
