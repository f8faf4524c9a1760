package store

import "time"

// inRange reports whether t falls inside the optional inclusive [from, to]
// window. A nil bound is open.
func inRange(t time.Time, from, to *time.Time) bool {
	if from != nil && t.Before(*from) {
		return false
	}
	if to != nil && t.After(*to) {
		return false
	}
	return true
}
