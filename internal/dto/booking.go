package dto

import (
	"time"

	"github.com/hoteldesk/hms_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBookingRequest defines the data needed to create a booking.
// Dates travel as calendar-date strings; AdvancePayment defaults to zero and
// GuestsCount to one when omitted.
type CreateBookingRequest struct {
	RoomID          string          `json:"room_id" binding:"required"`
	GuestID         string          `json:"guest_id" binding:"required"`
	CheckIn         string          `json:"check_in" binding:"required,datetime=2006-01-02"`
	CheckOut        string          `json:"check_out" binding:"required,datetime=2006-01-02"`
	GuestsCount     int             `json:"guests_count" binding:"omitempty,gt=0"`
	SpecialRequests string          `json:"special_requests"`
	AdvancePayment  decimal.Decimal `json:"advance_payment"`
}

// UpdateBookingStatusRequest carries a requested status transition and its
// optional payment fields. Notes is a pointer so an absent value leaves the
// stored notes untouched.
type UpdateBookingStatusRequest struct {
	Status                 domain.BookingStatus  `json:"status" binding:"required,oneof=confirmed checked_in checked_out cancelled"`
	AdditionalCharges      decimal.Decimal       `json:"additional_charges"`
	AdvancePaymentReceived decimal.Decimal       `json:"advance_payment_received"`
	PaymentMethod          *domain.PaymentMethod `json:"payment_method" binding:"omitempty,oneof=cash card bank_transfer other"`
	Notes                  *string               `json:"notes"`
}

// BookingResponse defines the data returned for a booking.
type BookingResponse struct {
	BookingID       string               `json:"bookingID"`
	RoomID          string               `json:"roomID"`
	GuestID         string               `json:"guestID"`
	CheckIn         string               `json:"checkIn"`
	CheckOut        string               `json:"checkOut"`
	GuestsCount     int                  `json:"guestsCount"`
	SpecialRequests string               `json:"specialRequests"`
	TotalAmount     decimal.Decimal      `json:"totalAmount"`
	AdvancePayment  decimal.Decimal      `json:"advancePayment"`
	Status          domain.BookingStatus `json:"status"`
	Notes           string               `json:"notes"`
	CreatedAt       time.Time            `json:"createdAt"`
}

// ToBookingResponse converts a domain.Booking to BookingResponse DTO.
func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		BookingID:       b.BookingID,
		RoomID:          b.RoomID,
		GuestID:         b.GuestID,
		CheckIn:         FormatDate(b.CheckIn),
		CheckOut:        FormatDate(b.CheckOut),
		GuestsCount:     b.GuestsCount,
		SpecialRequests: b.SpecialRequests,
		TotalAmount:     b.TotalAmount,
		AdvancePayment:  b.AdvancePayment,
		Status:          b.Status,
		Notes:           b.Notes,
		CreatedAt:       b.CreatedAt,
	}
}

// BookingDetailsResponse is a booking joined with room and guest display fields.
type BookingDetailsResponse struct {
	BookingResponse
	RoomNumber string `json:"roomNumber"`
	RoomType   string `json:"roomType"`
	GuestName  string `json:"guestName"`
	GuestEmail string `json:"guestEmail"`
	GuestPhone string `json:"guestPhone"`
}

// ToBookingDetailsResponse converts a domain.BookingWithDetails to its DTO.
func ToBookingDetailsResponse(b *domain.BookingWithDetails) BookingDetailsResponse {
	return BookingDetailsResponse{
		BookingResponse: ToBookingResponse(&b.Booking),
		RoomNumber:      b.RoomNumber,
		RoomType:        b.RoomType,
		GuestName:       b.GuestName,
		GuestEmail:      b.GuestEmail,
		GuestPhone:      b.GuestPhone,
	}
}

// ListBookingsResponse wraps the list of bookings with details.
type ListBookingsResponse struct {
	Bookings []BookingDetailsResponse `json:"bookings"`
}

// BookingStatusResponse is returned from the status-transition endpoint.
// BalanceDue is present only when the transition checked the booking out; the
// sign is preserved, a negative value means the guest overpaid.
type BookingStatusResponse struct {
	BookingResponse
	BalanceDue *decimal.Decimal `json:"balanceDue,omitempty"`
}
