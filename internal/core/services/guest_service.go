package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hoteldesk/hms_backend/internal/core/domain"
	portsrepo "github.com/hoteldesk/hms_backend/internal/core/ports/repositories"
	portssvc "github.com/hoteldesk/hms_backend/internal/core/ports/services"
	"github.com/hoteldesk/hms_backend/internal/dto"
)

// guestService implements the GuestSvcFacade interface.
type guestService struct {
	BaseService
	guestRepo portsrepo.GuestRepositoryFacade
}

// NewGuestService creates a new guest service.
func NewGuestService(guestRepo portsrepo.GuestRepositoryFacade) portssvc.GuestSvcFacade {
	return &guestService{guestRepo: guestRepo}
}

var _ portssvc.GuestSvcFacade = (*guestService)(nil)

func (s *guestService) CreateGuest(ctx context.Context, req dto.CreateGuestRequest, creatorID string) (*domain.Guest, error) {
	now := time.Now().UTC()
	guest := domain.Guest{
		GuestID: uuid.NewString(),
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		IDProof: req.IDProof,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}

	if err := s.guestRepo.SaveGuest(ctx, guest); err != nil {
		s.LogError(ctx, err, "Failed to save guest", slog.String("email", req.Email))
		return nil, err
	}

	s.LogInfo(ctx, "Guest registered", slog.String("guest_id", guest.GuestID))
	return &guest, nil
}

func (s *guestService) GetGuestByID(ctx context.Context, guestID string) (*domain.Guest, error) {
	return s.guestRepo.FindGuestByID(ctx, guestID)
}

func (s *guestService) ListGuests(ctx context.Context) ([]domain.Guest, error) {
	guests, err := s.guestRepo.ListGuests(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list guests")
		return nil, err
	}
	if guests == nil {
		return []domain.Guest{}, nil
	}
	return guests, nil
}
