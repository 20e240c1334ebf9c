package domain

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// reportClock stamps GeneratedAt. Assessments themselves carry no time.
var reportClock clockwork.Clock = clockwork.NewRealClock()

// SetClock replaces the report clock and returns a func that restores the
// previous one. A nil clock selects real time.
func SetClock(c clockwork.Clock) (restore func()) {
	prev := reportClock
	if c == nil {
		c = clockwork.NewRealClock()
	}
	reportClock = c
	return func() { reportClock = prev }
}

func reportTime() time.Time {
	return reportClock.Now().UTC()
}
