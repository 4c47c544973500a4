package services

import (
	"context"
	"time"

	"github.com/hoteldesk/hms_backend/internal/core/domain"
)

// ReportingSvcFacade defines the dashboard aggregation operations.
type ReportingSvcFacade interface {
	// GetDashboardStats aggregates room, booking, revenue and expense figures
	// as of the given date.
	GetDashboardStats(ctx context.Context, now time.Time) (*domain.DashboardStats, error)

	// GetRoomStatusBoard derives a per-room occupancy state from the bookings
	// covering the given date.
	GetRoomStatusBoard(ctx context.Context, now time.Time) ([]domain.RoomOccupancy, error)
}
