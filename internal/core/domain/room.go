package domain

import (
	"github.com/shopspring/decimal"
)

// RoomType classifies a room for pricing and availability filtering.
type RoomType string

const (
	RoomSingle RoomType = "single"
	RoomDouble RoomType = "double"
	RoomSuite  RoomType = "suite"
	RoomDeluxe RoomType = "deluxe"
)

// RoomStatus is the stored operational status of a room, maintained by staff.
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomMaintenance RoomStatus = "maintenance"
)

// OccupancyState is the status of a room derived from the bookings that cover
// the current date. It is computed, never stored.
type OccupancyState string

const (
	OccupancyAvailable OccupancyState = "available"
	OccupancyOccupied  OccupancyState = "occupied"
	OccupancyReserved  OccupancyState = "reserved"
)

// Room represents one physical hotel room.
type Room struct {
	RoomID        string          `json:"roomID"`
	RoomNumber    string          `json:"roomNumber"`
	RoomType      RoomType        `json:"roomType"`
	PricePerNight decimal.Decimal `json:"pricePerNight"`
	Amenities     []string        `json:"amenities"`
	Status        RoomStatus      `json:"status"`
	MaxOccupancy  int             `json:"maxOccupancy"`
	Description   string          `json:"description"`
	AuditFields
}
