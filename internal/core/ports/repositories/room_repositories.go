package repositories

import (
	"context"
	"time"

	"github.com/hoteldesk/hms_backend/internal/core/domain"
)

// RoomReader defines read operations for room data.
type RoomReader interface {
	// FindRoomByID retrieves a specific room by its unique identifier.
	FindRoomByID(ctx context.Context, roomID string) (*domain.Room, error)

	// FindRoomByNumber retrieves a room by its display number.
	FindRoomByNumber(ctx context.Context, roomNumber string) (*domain.Room, error)

	// ListRooms retrieves all rooms.
	ListRooms(ctx context.Context) ([]domain.Room, error)

	// FindAvailableRooms retrieves rooms with no confirmed or checked-in
	// booking overlapping [checkIn, checkOut). The interval is half-open:
	// a booking ending on checkIn does not block the room.
	FindAvailableRooms(ctx context.Context, checkIn, checkOut time.Time, roomType *domain.RoomType) ([]domain.Room, error)
}

// RoomWriter defines write operations for room data.
type RoomWriter interface {
	// SaveRoom persists a new room.
	SaveRoom(ctx context.Context, room domain.Room) error

	// UpdateRoom updates an existing room's details.
	UpdateRoom(ctx context.Context, room domain.Room) error

	// DeleteRoom removes a room.
	DeleteRoom(ctx context.Context, roomID string) error
}

// RoomRepositoryFacade combines all room-related repository interfaces.
type RoomRepositoryFacade interface {
	RoomReader
	RoomWriter
}
