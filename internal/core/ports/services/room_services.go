package services

import (
	"context"

	"github.com/hoteldesk/hms_backend/internal/core/domain"
	"github.com/hoteldesk/hms_backend/internal/dto"
)

// RoomSvcFacade defines the operations offered by the room service.
type RoomSvcFacade interface {
	CreateRoom(ctx context.Context, req dto.CreateRoomRequest, creatorID string) (*domain.Room, error)
	GetRoomByID(ctx context.Context, roomID string) (*domain.Room, error)
	ListRooms(ctx context.Context) ([]domain.Room, error)
	UpdateRoom(ctx context.Context, roomID string, req dto.UpdateRoomRequest, updaterID string) (*domain.Room, error)
	DeleteRoom(ctx context.Context, roomID string) error

	// FindAvailableRooms returns rooms free for the requested date range,
	// optionally filtered by room type.
	FindAvailableRooms(ctx context.Context, req dto.AvailabilityRequest) ([]domain.Room, error)
}
