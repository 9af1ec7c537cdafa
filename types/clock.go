package types

import "time"

// ------------------------
// Clock
// ------------------------

// ClockSnapshot is the last fully rendered instant. Month is 1..12.
type ClockSnapshot struct {
	Hour, Minute, Second int
	Day, Month, Year     int
}

// UnknownSnapshot means nothing is on screen yet; the next refresh must
// redraw every dynamic element.
var UnknownSnapshot = ClockSnapshot{-1, -1, -1, -1, -1, -1}

// SnapshotOf captures the wall-clock fields of t.
func SnapshotOf(t time.Time) ClockSnapshot {
	return ClockSnapshot{
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
		Day:    t.Day(),
		Month:  int(t.Month()),
		Year:   t.Year(),
	}
}

// Known reports whether the snapshot holds a rendered instant.
func (s ClockSnapshot) Known() bool { return s != UnknownSnapshot }
