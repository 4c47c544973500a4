package dto

import (
	"time"

	"github.com/hoteldesk/hms_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateRoomRequest defines the data needed to register a new room.
type CreateRoomRequest struct {
	RoomNumber    string          `json:"roomNumber" binding:"required"`
	RoomType      domain.RoomType `json:"roomType" binding:"required,oneof=single double suite deluxe"`
	PricePerNight decimal.Decimal `json:"pricePerNight" binding:"required"`
	Amenities     []string        `json:"amenities"`
	MaxOccupancy  int             `json:"maxOccupancy" binding:"required,gt=0"`
	Description   string          `json:"description"`
}

// UpdateRoomRequest defines the fields that may be changed on a room.
// Pointers distinguish omitted fields from zero values.
type UpdateRoomRequest struct {
	RoomNumber    *string           `json:"roomNumber"`
	RoomType      *domain.RoomType  `json:"roomType" binding:"omitempty,oneof=single double suite deluxe"`
	PricePerNight *decimal.Decimal  `json:"pricePerNight"`
	Amenities     *[]string         `json:"amenities"`
	Status        *domain.RoomStatus `json:"status" binding:"omitempty,oneof=available occupied maintenance"`
	MaxOccupancy  *int              `json:"maxOccupancy" binding:"omitempty,gt=0"`
	Description   *string           `json:"description"`
}

// RoomResponse defines the data returned for a room.
type RoomResponse struct {
	RoomID        string            `json:"roomID"`
	RoomNumber    string            `json:"roomNumber"`
	RoomType      domain.RoomType   `json:"roomType"`
	PricePerNight decimal.Decimal   `json:"pricePerNight"`
	Amenities     []string          `json:"amenities"`
	Status        domain.RoomStatus `json:"status"`
	MaxOccupancy  int               `json:"maxOccupancy"`
	Description   string            `json:"description"`
	CreatedAt     time.Time         `json:"createdAt"`
}

// ToRoomResponse converts a domain.Room to RoomResponse DTO.
func ToRoomResponse(r *domain.Room) RoomResponse {
	return RoomResponse{
		RoomID:        r.RoomID,
		RoomNumber:    r.RoomNumber,
		RoomType:      r.RoomType,
		PricePerNight: r.PricePerNight,
		Amenities:     r.Amenities,
		Status:        r.Status,
		MaxOccupancy:  r.MaxOccupancy,
		Description:   r.Description,
		CreatedAt:     r.CreatedAt,
	}
}

// ToListRoomResponse converts a slice of domain.Room to RoomResponse DTOs.
func ToListRoomResponse(rooms []domain.Room) []RoomResponse {
	res := make([]RoomResponse, len(rooms))
	for i, r := range rooms {
		res[i] = ToRoomResponse(&r)
	}
	return res
}

// ListRoomsResponse wraps the list of rooms.
type ListRoomsResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// AvailabilityRequest defines the date range and optional room-type filter for
// an availability query.
type AvailabilityRequest struct {
	CheckIn  string           `json:"check_in" binding:"required,datetime=2006-01-02"`
	CheckOut string           `json:"check_out" binding:"required,datetime=2006-01-02"`
	RoomType *domain.RoomType `json:"room_type" binding:"omitempty,oneof=single double suite deluxe"`
}
