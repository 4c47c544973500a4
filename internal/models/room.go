package models

import "github.com/shopspring/decimal"

// Room represents a row in the rooms table.
type Room struct {
	RoomID        string          `json:"roomID" db:"room_id"`
	RoomNumber    string          `json:"roomNumber" db:"room_number"`
	RoomType      string          `json:"roomType" db:"room_type"`
	PricePerNight decimal.Decimal `json:"pricePerNight" db:"price_per_night"`
	Amenities     []string        `json:"amenities" db:"amenities"`
	Status        string          `json:"status" db:"status"`
	MaxOccupancy  int             `json:"maxOccupancy" db:"max_occupancy"`
	Description   string          `json:"description" db:"description"`
	AuditFields
}
