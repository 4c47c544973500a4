package dto

import (
	"github.com/hoteldesk/hms_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DashboardStatsResponse mirrors domain.DashboardStats for the API surface.
type DashboardStatsResponse struct {
	TotalRooms     int             `json:"total_rooms"`
	OccupiedRooms  int             `json:"occupied_rooms"`
	AvailableRooms int             `json:"available_rooms"`
	TotalBookings  int             `json:"total_bookings"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	TotalExpenses  decimal.Decimal `json:"total_expenses"`
	NetProfit      decimal.Decimal `json:"net_profit"`
	OccupancyRate  decimal.Decimal `json:"occupancy_rate"`
}

// ToDashboardStatsResponse converts domain.DashboardStats to its DTO.
func ToDashboardStatsResponse(s *domain.DashboardStats) DashboardStatsResponse {
	return DashboardStatsResponse{
		TotalRooms:     s.TotalRooms,
		OccupiedRooms:  s.OccupiedRooms,
		AvailableRooms: s.AvailableRooms,
		TotalBookings:  s.TotalBookings,
		TotalRevenue:   s.TotalRevenue,
		TotalExpenses:  s.TotalExpenses,
		NetProfit:      s.NetProfit,
		OccupancyRate:  s.OccupancyRate,
	}
}

// RoomOccupancyResponse pairs a room with its derived occupancy state.
type RoomOccupancyResponse struct {
	RoomResponse
	Occupancy domain.OccupancyState `json:"occupancy"`
}

// RoomStatusBoardResponse wraps the per-room occupancy board.
type RoomStatusBoardResponse struct {
	Rooms []RoomOccupancyResponse `json:"rooms"`
}
