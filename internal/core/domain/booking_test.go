package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hoteldesk/hms_backend/internal/core/domain"
)

func TestBookingStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from domain.BookingStatus
		to   domain.BookingStatus
		want bool
	}{
		{"confirmed to checked_in", domain.BookingConfirmed, domain.BookingCheckedIn, true},
		{"confirmed to cancelled", domain.BookingConfirmed, domain.BookingCancelled, true},
		{"confirmed to checked_out", domain.BookingConfirmed, domain.BookingCheckedOut, false},
		{"confirmed to confirmed", domain.BookingConfirmed, domain.BookingConfirmed, false},
		{"checked_in to checked_out", domain.BookingCheckedIn, domain.BookingCheckedOut, true},
		{"checked_in to cancelled", domain.BookingCheckedIn, domain.BookingCancelled, true},
		{"checked_in to confirmed", domain.BookingCheckedIn, domain.BookingConfirmed, false},
		{"checked_out to anything", domain.BookingCheckedOut, domain.BookingCancelled, false},
		{"cancelled to anything", domain.BookingCancelled, domain.BookingConfirmed, false},
		{"unknown status", domain.BookingStatus("pending"), domain.BookingConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.from.CanTransitionTo(tt.to)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDatesOverlap(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2024, 5, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name                string
		aCheckIn, aCheckOut time.Time
		bCheckIn, bCheckOut time.Time
		want                bool
	}{
		{"identical range", day(10), day(12), day(10), day(12), true},
		{"partial overlap at end", day(10), day(12), day(11), day(13), true},
		{"partial overlap at start", day(11), day(13), day(10), day(12), true},
		{"fully contained", day(10), day(15), day(11), day(13), true},
		{"back to back, second starts on first checkout", day(10), day(12), day(12), day(14), false},
		{"back to back, first starts on second checkout", day(12), day(14), day(10), day(12), false},
		{"disjoint", day(10), day(12), day(20), day(22), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.DatesOverlap(tt.aCheckIn, tt.aCheckOut, tt.bCheckIn, tt.bCheckOut)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBookingStatus_IsTerminal(t *testing.T) {
	assert.False(t, domain.BookingConfirmed.IsTerminal())
	assert.False(t, domain.BookingCheckedIn.IsTerminal())
	assert.True(t, domain.BookingCheckedOut.IsTerminal())
	assert.True(t, domain.BookingCancelled.IsTerminal())
}

func TestBookingStatus_IsValid(t *testing.T) {
	assert.True(t, domain.BookingConfirmed.IsValid())
	assert.True(t, domain.BookingCheckedIn.IsValid())
	assert.True(t, domain.BookingCheckedOut.IsValid())
	assert.True(t, domain.BookingCancelled.IsValid())
	assert.False(t, domain.BookingStatus("pending").IsValid())
	assert.False(t, domain.BookingStatus("").IsValid())
}
