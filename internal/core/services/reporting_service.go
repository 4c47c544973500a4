package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hoteldesk/hms_backend/internal/core/domain"
	portsrepo "github.com/hoteldesk/hms_backend/internal/core/ports/repositories"
	portssvc "github.com/hoteldesk/hms_backend/internal/core/ports/services"
)

var hundred = decimal.NewFromInt(100)

// reportingService implements the ReportingSvcFacade interface.
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	roomRepo      portsrepo.RoomReader
	bookingRepo   portsrepo.BookingReader
}

// NewReportingService creates a new reporting service.
func NewReportingService(reportingRepo portsrepo.ReportingRepository, roomRepo portsrepo.RoomReader, bookingRepo portsrepo.BookingReader) portssvc.ReportingSvcFacade {
	return &reportingService{
		reportingRepo: reportingRepo,
		roomRepo:      roomRepo,
		bookingRepo:   bookingRepo,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) GetDashboardStats(ctx context.Context, now time.Time) (*domain.DashboardStats, error) {
	today := dateOnly(now)

	totalRooms, err := s.reportingRepo.CountRooms(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to count rooms")
		return nil, err
	}
	occupiedRooms, err := s.reportingRepo.CountOccupiedRooms(ctx, today)
	if err != nil {
		s.LogError(ctx, err, "Failed to count occupied rooms")
		return nil, err
	}
	totalBookings, err := s.reportingRepo.CountBookings(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to count bookings")
		return nil, err
	}
	totalRevenue, err := s.reportingRepo.SumSales(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum sales")
		return nil, err
	}
	totalExpenses, err := s.reportingRepo.SumExpenses(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum expenses")
		return nil, err
	}

	occupancyRate := decimal.Zero
	if totalRooms > 0 {
		occupancyRate = decimal.NewFromInt(int64(occupiedRooms)).
			Div(decimal.NewFromInt(int64(totalRooms))).
			Mul(hundred).
			Round(2)
	}

	return &domain.DashboardStats{
		TotalRooms:     totalRooms,
		OccupiedRooms:  occupiedRooms,
		AvailableRooms: totalRooms - occupiedRooms,
		TotalBookings:  totalBookings,
		TotalRevenue:   totalRevenue,
		TotalExpenses:  totalExpenses,
		NetProfit:      totalRevenue.Sub(totalExpenses),
		OccupancyRate:  occupancyRate,
	}, nil
}

// GetRoomStatusBoard derives each room's occupancy from the bookings covering
// the given date. A checked-in booking wins over a confirmed one when both
// reference the same room.
func (s *reportingService) GetRoomStatusBoard(ctx context.Context, now time.Time) ([]domain.RoomOccupancy, error) {
	today := dateOnly(now)

	rooms, err := s.roomRepo.ListRooms(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list rooms")
		return nil, err
	}
	bookings, err := s.bookingRepo.ListBookingsCoveringDate(ctx, today)
	if err != nil {
		s.LogError(ctx, err, "Failed to list bookings covering date")
		return nil, err
	}

	stateByRoom := make(map[string]domain.OccupancyState, len(bookings))
	for _, b := range bookings {
		switch b.Status {
		case domain.BookingCheckedIn:
			stateByRoom[b.RoomID] = domain.OccupancyOccupied
		case domain.BookingConfirmed:
			if stateByRoom[b.RoomID] != domain.OccupancyOccupied {
				stateByRoom[b.RoomID] = domain.OccupancyReserved
			}
		}
	}

	board := make([]domain.RoomOccupancy, len(rooms))
	for i, room := range rooms {
		state := domain.OccupancyAvailable
		if st, ok := stateByRoom[room.RoomID]; ok {
			state = st
		}
		board[i] = domain.RoomOccupancy{Room: room, Occupancy: state}
	}
	return board, nil
}
