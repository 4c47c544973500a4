package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hoteldesk/hms_backend/internal/apperrors"
	"github.com/hoteldesk/hms_backend/internal/core/domain"
	portsrepo "github.com/hoteldesk/hms_backend/internal/core/ports/repositories"
	portssvc "github.com/hoteldesk/hms_backend/internal/core/ports/services"
	"github.com/hoteldesk/hms_backend/internal/dto"
)

// roomService implements the RoomSvcFacade interface.
type roomService struct {
	BaseService
	roomRepo portsrepo.RoomRepositoryFacade
}

// NewRoomService creates a new room service.
func NewRoomService(roomRepo portsrepo.RoomRepositoryFacade) portssvc.RoomSvcFacade {
	return &roomService{roomRepo: roomRepo}
}

var _ portssvc.RoomSvcFacade = (*roomService)(nil)

func (s *roomService) CreateRoom(ctx context.Context, req dto.CreateRoomRequest, creatorID string) (*domain.Room, error) {
	if req.PricePerNight.IsNegative() {
		return nil, fmt.Errorf("price_per_night must not be negative: %w", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	room := domain.Room{
		RoomID:        uuid.NewString(),
		RoomNumber:    req.RoomNumber,
		RoomType:      req.RoomType,
		PricePerNight: req.PricePerNight,
		Amenities:     req.Amenities,
		Status:        domain.RoomAvailable,
		MaxOccupancy:  req.MaxOccupancy,
		Description:   req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}
	if room.Amenities == nil {
		room.Amenities = []string{}
	}

	if err := s.roomRepo.SaveRoom(ctx, room); err != nil {
		s.LogError(ctx, err, "Failed to save room", slog.String("room_number", req.RoomNumber))
		return nil, err
	}

	s.LogInfo(ctx, "Room created",
		slog.String("room_id", room.RoomID),
		slog.String("room_number", room.RoomNumber))
	return &room, nil
}

func (s *roomService) GetRoomByID(ctx context.Context, roomID string) (*domain.Room, error) {
	return s.roomRepo.FindRoomByID(ctx, roomID)
}

func (s *roomService) ListRooms(ctx context.Context) ([]domain.Room, error) {
	rooms, err := s.roomRepo.ListRooms(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list rooms")
		return nil, err
	}
	if rooms == nil {
		return []domain.Room{}, nil
	}
	return rooms, nil
}

func (s *roomService) UpdateRoom(ctx context.Context, roomID string, req dto.UpdateRoomRequest, updaterID string) (*domain.Room, error) {
	room, err := s.roomRepo.FindRoomByID(ctx, roomID)
	if err != nil {
		return nil, err
	}

	if req.RoomNumber != nil {
		room.RoomNumber = *req.RoomNumber
	}
	if req.RoomType != nil {
		room.RoomType = *req.RoomType
	}
	if req.PricePerNight != nil {
		if req.PricePerNight.IsNegative() {
			return nil, fmt.Errorf("price_per_night must not be negative: %w", apperrors.ErrValidation)
		}
		room.PricePerNight = *req.PricePerNight
	}
	if req.Amenities != nil {
		room.Amenities = *req.Amenities
	}
	if req.Status != nil {
		room.Status = *req.Status
	}
	if req.MaxOccupancy != nil {
		room.MaxOccupancy = *req.MaxOccupancy
	}
	if req.Description != nil {
		room.Description = *req.Description
	}
	room.LastUpdatedAt = time.Now().UTC()
	room.LastUpdatedBy = updaterID

	if err := s.roomRepo.UpdateRoom(ctx, *room); err != nil {
		s.LogError(ctx, err, "Failed to update room", slog.String("room_id", roomID))
		return nil, err
	}
	return room, nil
}

func (s *roomService) DeleteRoom(ctx context.Context, roomID string) error {
	if err := s.roomRepo.DeleteRoom(ctx, roomID); err != nil {
		s.LogError(ctx, err, "Failed to delete room", slog.String("room_id", roomID))
		return err
	}
	s.LogInfo(ctx, "Room deleted", slog.String("room_id", roomID))
	return nil
}

func (s *roomService) FindAvailableRooms(ctx context.Context, req dto.AvailabilityRequest) ([]domain.Room, error) {
	checkIn, err := dto.ParseDate(req.CheckIn)
	if err != nil {
		return nil, fmt.Errorf("invalid check_in date: %w", apperrors.ErrValidation)
	}
	checkOut, err := dto.ParseDate(req.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("invalid check_out date: %w", apperrors.ErrValidation)
	}
	if !checkOut.After(checkIn) {
		return nil, fmt.Errorf("check_out must be after check_in: %w", apperrors.ErrValidation)
	}

	rooms, err := s.roomRepo.FindAvailableRooms(ctx, checkIn, checkOut, req.RoomType)
	if err != nil {
		s.LogError(ctx, err, "Failed to find available rooms")
		return nil, err
	}
	if rooms == nil {
		return []domain.Room{}, nil
	}
	return rooms, nil
}
