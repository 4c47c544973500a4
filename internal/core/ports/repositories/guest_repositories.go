package repositories

import (
	"context"

	"github.com/hoteldesk/hms_backend/internal/core/domain"
)

// GuestReader defines read operations for guest data.
type GuestReader interface {
	// FindGuestByID retrieves a specific guest by their unique identifier.
	FindGuestByID(ctx context.Context, guestID string) (*domain.Guest, error)

	// ListGuests retrieves all guests.
	ListGuests(ctx context.Context) ([]domain.Guest, error)
}

// GuestWriter defines write operations for guest data.
type GuestWriter interface {
	// SaveGuest persists a new guest.
	SaveGuest(ctx context.Context, guest domain.Guest) error
}

// GuestRepositoryFacade combines all guest-related repository interfaces.
type GuestRepositoryFacade interface {
	GuestReader
	GuestWriter
}
