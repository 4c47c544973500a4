package repositories

import (
	"context"
	"time"

	"github.com/hoteldesk/hms_backend/internal/core/domain"
)

// BookingReader defines read operations for booking data.
type BookingReader interface {
	// FindBookingByID retrieves a specific booking by its unique identifier.
	FindBookingByID(ctx context.Context, bookingID string) (*domain.Booking, error)

	// FindBookingWithDetailsByID retrieves a booking joined with its room and
	// guest display fields.
	FindBookingWithDetailsByID(ctx context.Context, bookingID string) (*domain.BookingWithDetails, error)

	// ListBookingsWithDetails retrieves all bookings joined with room and
	// guest display fields, newest first.
	ListBookingsWithDetails(ctx context.Context) ([]domain.BookingWithDetails, error)

	// CountOverlappingBookings counts confirmed or checked-in bookings for the
	// room overlapping [checkIn, checkOut) with half-open semantics.
	CountOverlappingBookings(ctx context.Context, roomID string, checkIn, checkOut time.Time) (int, error)

	// ListBookingsCoveringDate retrieves confirmed and checked-in bookings
	// whose stay covers the given date.
	ListBookingsCoveringDate(ctx context.Context, date time.Time) ([]domain.Booking, error)
}

// BookingWriter defines write operations for booking data.
type BookingWriter interface {
	// SaveBooking persists a new booking.
	SaveBooking(ctx context.Context, booking domain.Booking) error

	// ApplyStatusTransition persists a computed status transition with
	// compare-and-set semantics: the update only applies while the stored
	// status still equals expectedStatus, and the optional sale row is
	// written in the same transaction. A lost race yields ErrConflict.
	ApplyStatusTransition(ctx context.Context, booking domain.Booking, expectedStatus domain.BookingStatus, sale *domain.Sale) error
}

// BookingRepositoryFacade combines all booking-related repository interfaces.
type BookingRepositoryFacade interface {
	BookingReader
	BookingWriter
}
