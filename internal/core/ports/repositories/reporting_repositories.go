package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ReportingRepository defines the aggregate queries behind the dashboard.
type ReportingRepository interface {
	// CountRooms returns the total number of rooms.
	CountRooms(ctx context.Context) (int, error)

	// CountOccupiedRooms returns the number of rooms with a checked-in
	// booking covering the given date.
	CountOccupiedRooms(ctx context.Context, date time.Time) (int, error)

	// CountBookings returns the total number of bookings ever created.
	CountBookings(ctx context.Context) (int, error)

	// SumSales returns the total recognized revenue.
	SumSales(ctx context.Context) (decimal.Decimal, error)

	// SumExpenses returns the total recorded expenses.
	SumExpenses(ctx context.Context) (decimal.Decimal, error)
}
