package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hoteldesk/hms_backend/internal/apperrors"
	"github.com/hoteldesk/hms_backend/internal/core/domain"
	portsrepo "github.com/hoteldesk/hms_backend/internal/core/ports/repositories"
	"github.com/hoteldesk/hms_backend/internal/models"
	"github.com/hoteldesk/hms_backend/internal/utils/mapping"
)

const bookingColumns = `booking_id, room_id, guest_id, check_in, check_out, guests_count, special_requests, total_amount, advance_payment, status, notes, created_at, created_by, last_updated_at, last_updated_by`

type PgxBookingRepository struct {
	BaseRepository
}

// newPgxBookingRepository creates a new repository for booking data.
func newPgxBookingRepository(pool *pgxpool.Pool) portsrepo.BookingRepositoryFacade {
	return &PgxBookingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.BookingRepositoryFacade = (*PgxBookingRepository)(nil)

func scanBooking(row pgx.Row) (models.Booking, error) {
	var m models.Booking
	err := row.Scan(
		&m.BookingID,
		&m.RoomID,
		&m.GuestID,
		&m.CheckIn,
		&m.CheckOut,
		&m.GuestsCount,
		&m.SpecialRequests,
		&m.TotalAmount,
		&m.AdvancePayment,
		&m.Status,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveBooking inserts a new booking.
func (r *PgxBookingRepository) SaveBooking(ctx context.Context, booking domain.Booking) error {
	modelBooking := mapping.ToModelBooking(booking)

	query := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`

	_, err := r.Pool.Exec(ctx, query,
		modelBooking.BookingID,
		modelBooking.RoomID,
		modelBooking.GuestID,
		modelBooking.CheckIn,
		modelBooking.CheckOut,
		modelBooking.GuestsCount,
		modelBooking.SpecialRequests,
		modelBooking.TotalAmount,
		modelBooking.AdvancePayment,
		modelBooking.Status,
		modelBooking.Notes,
		modelBooking.CreatedAt,
		modelBooking.CreatedBy,
		modelBooking.LastUpdatedAt,
		modelBooking.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save booking %s: %w", modelBooking.BookingID, err)
	}
	return nil
}

// FindBookingByID retrieves a booking by its unique identifier.
func (r *PgxBookingRepository) FindBookingByID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE booking_id = $1;`

	modelBooking, err := scanBooking(r.Pool.QueryRow(ctx, query, bookingID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find booking by id %s: %w", bookingID, err)
	}

	domainBooking := mapping.ToDomainBooking(modelBooking)
	return &domainBooking, nil
}

const bookingDetailsQuery = `
	SELECT b.booking_id, b.room_id, b.guest_id, b.check_in, b.check_out, b.guests_count,
		b.special_requests, b.total_amount, b.advance_payment, b.status, b.notes,
		b.created_at, b.created_by, b.last_updated_at, b.last_updated_by,
		r.room_number, r.room_type, g.name, g.email, g.phone
	FROM bookings b
	JOIN rooms r ON b.room_id = r.room_id
	JOIN guests g ON b.guest_id = g.guest_id
`

func scanBookingWithDetails(row pgx.Row) (domain.BookingWithDetails, error) {
	var m models.Booking
	var d domain.BookingWithDetails
	err := row.Scan(
		&m.BookingID,
		&m.RoomID,
		&m.GuestID,
		&m.CheckIn,
		&m.CheckOut,
		&m.GuestsCount,
		&m.SpecialRequests,
		&m.TotalAmount,
		&m.AdvancePayment,
		&m.Status,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&d.RoomNumber,
		&d.RoomType,
		&d.GuestName,
		&d.GuestEmail,
		&d.GuestPhone,
	)
	d.Booking = mapping.ToDomainBooking(m)
	return d, err
}

// FindBookingWithDetailsByID retrieves a booking joined with its room and
// guest display fields.
func (r *PgxBookingRepository) FindBookingWithDetailsByID(ctx context.Context, bookingID string) (*domain.BookingWithDetails, error) {
	query := bookingDetailsQuery + ` WHERE b.booking_id = $1;`

	details, err := scanBookingWithDetails(r.Pool.QueryRow(ctx, query, bookingID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find booking details for %s: %w", bookingID, err)
	}
	return &details, nil
}

// ListBookingsWithDetails retrieves all bookings joined with room and guest
// display fields, newest first.
func (r *PgxBookingRepository) ListBookingsWithDetails(ctx context.Context) ([]domain.BookingWithDetails, error) {
	query := bookingDetailsQuery + ` ORDER BY b.created_at DESC;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer rows.Close()

	details, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.BookingWithDetails, error) {
		return scanBookingWithDetails(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan bookings: %w", err)
	}
	return details, nil
}

// CountOverlappingBookings counts confirmed or checked-in bookings for the
// room overlapping [checkIn, checkOut). The WHERE clause is the SQL form of
// domain.DatesOverlap, so a stay ending on checkIn does not count.
func (r *PgxBookingRepository) CountOverlappingBookings(ctx context.Context, roomID string, checkIn, checkOut time.Time) (int, error) {
	query := `
		SELECT COUNT(*) FROM bookings
		WHERE room_id = $1
		AND status IN ('confirmed', 'checked_in')
		AND check_in < $3
		AND check_out > $2;
	`

	var count int
	if err := r.Pool.QueryRow(ctx, query, roomID, checkIn, checkOut).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count overlapping bookings for room %s: %w", roomID, err)
	}
	return count, nil
}

// ListBookingsCoveringDate retrieves confirmed and checked-in bookings whose
// stay covers the given date.
func (r *PgxBookingRepository) ListBookingsCoveringDate(ctx context.Context, date time.Time) ([]domain.Booking, error) {
	query := `
		SELECT ` + bookingColumns + ` FROM bookings
		WHERE status IN ('confirmed', 'checked_in')
		AND check_in <= $1
		AND check_out > $1;
	`

	rows, err := r.Pool.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings covering date: %w", err)
	}
	defer rows.Close()

	modelBookings, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Booking, error) {
		return scanBooking(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan bookings covering date: %w", err)
	}
	return mapping.ToDomainBookingSlice(modelBookings), nil
}

// ApplyStatusTransition persists a computed status transition. The booking row
// is updated only while its stored status still equals expectedStatus; losing
// that race yields ErrConflict and nothing is written. The optional sale row
// is inserted in the same transaction.
func (r *PgxBookingRepository) ApplyStatusTransition(ctx context.Context, booking domain.Booking, expectedStatus domain.BookingStatus, sale *domain.Sale) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	updateQuery := `
		UPDATE bookings SET
			advance_payment = $3,
			status = $4,
			notes = $5,
			last_updated_at = $6,
			last_updated_by = $7
		WHERE booking_id = $1 AND status = $2;
	`

	modelBooking := mapping.ToModelBooking(booking)
	tag, err := tx.Exec(ctx, updateQuery,
		modelBooking.BookingID,
		string(expectedStatus),
		modelBooking.AdvancePayment,
		modelBooking.Status,
		modelBooking.Notes,
		modelBooking.LastUpdatedAt,
		modelBooking.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update booking %s status: %w", modelBooking.BookingID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("booking %s changed concurrently: %w", modelBooking.BookingID, apperrors.ErrConflict)
	}

	if sale != nil {
		modelSale := mapping.ToModelSale(*sale)
		saleQuery := `
			INSERT INTO sales (` + saleColumns + `)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
		`
		_, err := tx.Exec(ctx, saleQuery,
			modelSale.SaleID,
			modelSale.BookingID,
			modelSale.Amount,
			modelSale.PaymentMethod,
			modelSale.Date,
			modelSale.CreatedAt,
			modelSale.CreatedBy,
			modelSale.LastUpdatedAt,
			modelSale.LastUpdatedBy,
		)
		if err != nil {
			return fmt.Errorf("failed to insert sale for booking %s: %w", modelSale.BookingID, err)
		}
	}

	return r.Commit(ctx, tx)
}
