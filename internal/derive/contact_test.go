package derive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func daysAgo(days int) *time.Time {
	d := now.AddDate(0, 0, -days)
	return &d
}

func TestContactStatusOf_NeverContactedIsOverdue(t *testing.T) {
	assert.Equal(t, ContactOverdue, ContactStatusOf(nil, now))
}

func TestContactStatusOf_Boundaries(t *testing.T) {
	tests := []struct {
		name string
		days int
		want ContactStatus
	}{
		{"today", 0, ContactGood},
		{"10 days ago", 10, ContactGood},
		{"21 days ago is still good", 21, ContactGood},
		{"22 days ago warns", 22, ContactWarn},
		{"25 days ago warns", 25, ContactWarn},
		{"60 days ago is still warn", 60, ContactWarn},
		{"61 days ago is overdue", 61, ContactOverdue},
		{"180 days ago is overdue", 180, ContactOverdue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ContactStatusOf(daysAgo(tt.days), now))
		})
	}
}

// The 60-day boundary is strictly greater-than: exactly 60 whole days since
// last contact must not be overdue, 61 must be.
func TestContactStatusOf_StrictOverdueBoundary(t *testing.T) {
	assert.Equal(t, ContactWarn, ContactStatusOf(daysAgo(60), now))
	assert.Equal(t, ContactOverdue, ContactStatusOf(daysAgo(61), now))
}
