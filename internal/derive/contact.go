package derive

import "time"

// ContactStatus is the derived staleness state of a contact.
type ContactStatus string

// Derived contact states.
const (
	ContactGood    ContactStatus = "good"
	ContactWarn    ContactStatus = "warn"
	ContactOverdue ContactStatus = "overdue"
)

// ContactStatusOf derives how stale a contact is at the reference instant.
//
// A nil lastContact means the person has never been contacted and is always
// ContactOverdue. Otherwise the boundaries are strict: more than 60 whole
// days since last contact is ContactOverdue, more than 21 is ContactWarn,
// anything else is ContactGood.
func ContactStatusOf(lastContact *time.Time, now time.Time) ContactStatus {
	if lastContact == nil {
		return ContactOverdue
	}

	daysSince := daysBetween(*lastContact, now)
	switch {
	case daysSince > 60:
		return ContactOverdue
	case daysSince > 21:
		return ContactWarn
	default:
		return ContactGood
	}
}
