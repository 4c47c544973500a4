package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Booking represents a row in the bookings table. CheckIn and CheckOut are
// DATE columns scanned as UTC midnight.
type Booking struct {
	BookingID       string          `json:"bookingID" db:"booking_id"`
	RoomID          string          `json:"roomID" db:"room_id"`
	GuestID         string          `json:"guestID" db:"guest_id"`
	CheckIn         time.Time       `json:"checkIn" db:"check_in"`
	CheckOut        time.Time       `json:"checkOut" db:"check_out"`
	GuestsCount     int             `json:"guestsCount" db:"guests_count"`
	SpecialRequests string          `json:"specialRequests" db:"special_requests"`
	TotalAmount     decimal.Decimal `json:"totalAmount" db:"total_amount"`
	AdvancePayment  decimal.Decimal `json:"advancePayment" db:"advance_payment"`
	Status          string          `json:"status" db:"status"`
	Notes           string          `json:"notes" db:"notes"`
	AuditFields
}
