package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingStatus represents the current state of a booking in its lifecycle.
type BookingStatus string

const (
	BookingConfirmed  BookingStatus = "confirmed"
	BookingCheckedIn  BookingStatus = "checked_in"
	BookingCheckedOut BookingStatus = "checked_out"
	BookingCancelled  BookingStatus = "cancelled"
)

// validTransitions defines the state machine for booking status transitions.
// Terminal states map to an empty slice.
var validTransitions = map[BookingStatus][]BookingStatus{
	BookingConfirmed:  {BookingCheckedIn, BookingCancelled},
	BookingCheckedIn:  {BookingCheckedOut, BookingCancelled},
	BookingCheckedOut: {},
	BookingCancelled:  {},
}

// IsValid returns true if the status is a recognized booking status.
func (s BookingStatus) IsValid() bool {
	_, exists := validTransitions[s]
	return exists
}

// CanTransitionTo returns true if a transition from this status to the target is allowed.
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	for _, t := range validTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// IsTerminal returns true if no further transitions are possible from this status.
func (s BookingStatus) IsTerminal() bool {
	return len(validTransitions[s]) == 0
}

// DatesOverlap reports whether the half-open stay intervals
// [aCheckIn, aCheckOut) and [bCheckIn, bCheckOut) share at least one night.
// Back-to-back stays, where one ends on the day the other begins, do not
// overlap. The repository overlap and availability queries implement this
// same predicate in SQL.
func DatesOverlap(aCheckIn, aCheckOut, bCheckIn, bCheckOut time.Time) bool {
	return aCheckIn.Before(bCheckOut) && aCheckOut.After(bCheckIn)
}

// PaymentMethod identifies how a sale was settled.
type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "cash"
	PaymentCard         PaymentMethod = "card"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
	PaymentOther        PaymentMethod = "other"
)

// Booking represents a reservation linking a guest to a room for a date range.
// CheckIn/CheckOut are calendar dates stored at UTC midnight; the interval is
// half-open, so a stay ending on a given date does not overlap one starting
// on the same date.
type Booking struct {
	BookingID       string          `json:"bookingID"`
	RoomID          string          `json:"roomID"`
	GuestID         string          `json:"guestID"`
	CheckIn         time.Time       `json:"checkIn"`
	CheckOut        time.Time       `json:"checkOut"`
	GuestsCount     int             `json:"guestsCount"`
	SpecialRequests string          `json:"specialRequests"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	AdvancePayment  decimal.Decimal `json:"advancePayment"`
	Status          BookingStatus   `json:"status"`
	Notes           string          `json:"notes"`
	AuditFields
}

// BookingTransition is the outcome of a successful status transition.
// BalanceDue is set only when the transition checked the booking out; its sign
// is preserved, a negative value means the guest overpaid. Sale is the revenue
// row generated at checkout, nil for every other transition.
type BookingTransition struct {
	Booking    Booking
	BalanceDue *decimal.Decimal
	Sale       *Sale
}

// BookingWithDetails is a booking joined with the room and guest fields the
// front desk displays in list views.
type BookingWithDetails struct {
	Booking
	RoomNumber string `json:"roomNumber"`
	RoomType   string `json:"roomType"`
	GuestName  string `json:"guestName"`
	GuestEmail string `json:"guestEmail"`
	GuestPhone string `json:"guestPhone"`
}
