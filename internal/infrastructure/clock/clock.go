package clock

import "time"

// System reads the wall clock in a fixed location, so "today" follows the
// configured time zone rather than the host's.
type System struct {
	Location *time.Location
}

func NewSystem(loc *time.Location) *System {
	if loc == nil {
		loc = time.Local
	}
	return &System{Location: loc}
}

func (c *System) Now() time.Time { return time.Now().In(c.Location) }

// Fixed always returns the same instant.
type Fixed struct {
	T time.Time
}

func (c Fixed) Now() time.Time { return c.T }
