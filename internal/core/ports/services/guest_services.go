package services

import (
	"context"

	"github.com/hoteldesk/hms_backend/internal/core/domain"
	"github.com/hoteldesk/hms_backend/internal/dto"
)

// GuestSvcFacade defines the operations offered by the guest service.
type GuestSvcFacade interface {
	CreateGuest(ctx context.Context, req dto.CreateGuestRequest, creatorID string) (*domain.Guest, error)
	GetGuestByID(ctx context.Context, guestID string) (*domain.Guest, error)
	ListGuests(ctx context.Context) ([]domain.Guest, error)
}
