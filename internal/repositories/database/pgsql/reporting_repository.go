package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	portsrepo "github.com/hoteldesk/hms_backend/internal/core/ports/repositories"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// CountRooms returns the total number of rooms.
func (r *reportingRepository) CountRooms(ctx context.Context) (int, error) {
	var count int
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM rooms;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting rooms: %w", err)
	}
	return count, nil
}

// CountOccupiedRooms returns the number of rooms with a checked-in booking
// covering the given date.
func (r *reportingRepository) CountOccupiedRooms(ctx context.Context, date time.Time) (int, error) {
	query := `
		SELECT COUNT(DISTINCT room_id) FROM bookings
		WHERE status = 'checked_in'
		AND check_in <= $1
		AND check_out > $1;
	`
	var count int
	if err := r.Pool.QueryRow(ctx, query, date).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting occupied rooms: %w", err)
	}
	return count, nil
}

// CountBookings returns the total number of bookings ever created.
func (r *reportingRepository) CountBookings(ctx context.Context) (int, error) {
	var count int
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM bookings;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting bookings: %w", err)
	}
	return count, nil
}

// SumSales returns the total recognized revenue.
func (r *reportingRepository) SumSales(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, `SELECT COALESCE(SUM(amount), 0) FROM sales;`).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("error summing sales: %w", err)
	}
	return total, nil
}

// SumExpenses returns the total recorded expenses.
func (r *reportingRepository) SumExpenses(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, `SELECT COALESCE(SUM(amount), 0) FROM expenses;`).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("error summing expenses: %w", err)
	}
	return total, nil
}
