package services

import (
	"context"

	"github.com/hoteldesk/hms_backend/internal/core/domain"
	"github.com/hoteldesk/hms_backend/internal/dto"
)

// BookingSvcFacade defines the operations offered by the booking service,
// including the status-transition controller.
type BookingSvcFacade interface {
	CreateBooking(ctx context.Context, req dto.CreateBookingRequest, creatorID string) (*domain.Booking, error)
	GetBookingByID(ctx context.Context, bookingID string) (*domain.BookingWithDetails, error)
	ListBookings(ctx context.Context) ([]domain.BookingWithDetails, error)

	// UpdateBookingStatus validates the requested transition against the
	// booking state machine, computes the derived monetary fields, and
	// persists the result atomically.
	UpdateBookingStatus(ctx context.Context, bookingID string, req dto.UpdateBookingStatusRequest, updaterID string) (*domain.BookingTransition, error)
}
