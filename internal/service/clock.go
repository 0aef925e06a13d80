package service

import "time"

// Clock supplies the current time. The date-derived task and project
// queries take it injected so tests can pin "today".
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// NewRealClock returns a Clock backed by time.Now.
func NewRealClock() Clock { return realClock{} }

// dateOnly truncates a time to its calendar date in UTC. Due-date
// comparisons are date-granular, not instant-granular.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
