package domain

import "github.com/shopspring/decimal"

// DashboardStats aggregates the figures shown on the dashboard landing page.
type DashboardStats struct {
	TotalRooms     int             `json:"totalRooms"`
	OccupiedRooms  int             `json:"occupiedRooms"`
	AvailableRooms int             `json:"availableRooms"`
	TotalBookings  int             `json:"totalBookings"`
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`
	TotalExpenses  decimal.Decimal `json:"totalExpenses"`
	NetProfit      decimal.Decimal `json:"netProfit"`
	OccupancyRate  decimal.Decimal `json:"occupancyRate"` // percentage, 0 when no rooms
}

// RoomOccupancy pairs a room with its occupancy state derived from the
// bookings covering the current date.
type RoomOccupancy struct {
	Room
	Occupancy OccupancyState `json:"occupancy"`
}
