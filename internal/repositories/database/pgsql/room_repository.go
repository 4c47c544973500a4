package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hoteldesk/hms_backend/internal/apperrors"
	"github.com/hoteldesk/hms_backend/internal/core/domain"
	portsrepo "github.com/hoteldesk/hms_backend/internal/core/ports/repositories"
	"github.com/hoteldesk/hms_backend/internal/models"
	"github.com/hoteldesk/hms_backend/internal/utils/mapping"
)

const roomColumns = `room_id, room_number, room_type, price_per_night, amenities, status, max_occupancy, description, created_at, created_by, last_updated_at, last_updated_by`

type PgxRoomRepository struct {
	BaseRepository
}

// newPgxRoomRepository creates a new repository for room data.
func newPgxRoomRepository(pool *pgxpool.Pool) portsrepo.RoomRepositoryFacade {
	return &PgxRoomRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.RoomRepositoryFacade = (*PgxRoomRepository)(nil)

func scanRoom(row pgx.Row) (models.Room, error) {
	var m models.Room
	err := row.Scan(
		&m.RoomID,
		&m.RoomNumber,
		&m.RoomType,
		&m.PricePerNight,
		&m.Amenities,
		&m.Status,
		&m.MaxOccupancy,
		&m.Description,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveRoom inserts a new room.
func (r *PgxRoomRepository) SaveRoom(ctx context.Context, room domain.Room) error {
	modelRoom := mapping.ToModelRoom(room)

	query := `
		INSERT INTO rooms (` + roomColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`

	_, err := r.Pool.Exec(ctx, query,
		modelRoom.RoomID,
		modelRoom.RoomNumber,
		modelRoom.RoomType,
		modelRoom.PricePerNight,
		modelRoom.Amenities,
		modelRoom.Status,
		modelRoom.MaxOccupancy,
		modelRoom.Description,
		modelRoom.CreatedAt,
		modelRoom.CreatedBy,
		modelRoom.LastUpdatedAt,
		modelRoom.LastUpdatedBy,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: room number %s already exists", apperrors.ErrDuplicate, modelRoom.RoomNumber)
		}
		return fmt.Errorf("failed to save room %s: %w", modelRoom.RoomID, err)
	}
	return nil
}

// FindRoomByID retrieves a room by its unique identifier.
func (r *PgxRoomRepository) FindRoomByID(ctx context.Context, roomID string) (*domain.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE room_id = $1;`

	modelRoom, err := scanRoom(r.Pool.QueryRow(ctx, query, roomID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find room by id %s: %w", roomID, err)
	}

	domainRoom := mapping.ToDomainRoom(modelRoom)
	return &domainRoom, nil
}

// FindRoomByNumber retrieves a room by its display number.
func (r *PgxRoomRepository) FindRoomByNumber(ctx context.Context, roomNumber string) (*domain.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE room_number = $1;`

	modelRoom, err := scanRoom(r.Pool.QueryRow(ctx, query, roomNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find room by number %s: %w", roomNumber, err)
	}

	domainRoom := mapping.ToDomainRoom(modelRoom)
	return &domainRoom, nil
}

// ListRooms retrieves all rooms ordered by room number.
func (r *PgxRoomRepository) ListRooms(ctx context.Context) ([]domain.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms ORDER BY room_number;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query rooms: %w", err)
	}
	defer rows.Close()

	modelRooms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Room, error) {
		return scanRoom(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan rooms: %w", err)
	}

	return mapping.ToDomainRoomSlice(modelRooms), nil
}

// FindAvailableRooms retrieves rooms with no confirmed or checked-in booking
// overlapping the half-open interval [checkIn, checkOut). The NOT EXISTS
// subquery is the SQL form of domain.DatesOverlap.
func (r *PgxRoomRepository) FindAvailableRooms(ctx context.Context, checkIn, checkOut time.Time, roomType *domain.RoomType) ([]domain.Room, error) {
	query := `
		SELECT ` + roomColumns + `
		FROM rooms r
		WHERE ($3::text IS NULL OR r.room_type = $3)
		AND NOT EXISTS (
			SELECT 1 FROM bookings b
			WHERE b.room_id = r.room_id
			AND b.status IN ('confirmed', 'checked_in')
			AND b.check_in < $2
			AND b.check_out > $1
		)
		ORDER BY r.room_number;
	`

	var typeArg *string
	if roomType != nil {
		s := string(*roomType)
		typeArg = &s
	}

	rows, err := r.Pool.Query(ctx, query, checkIn, checkOut, typeArg)
	if err != nil {
		return nil, fmt.Errorf("failed to query available rooms: %w", err)
	}
	defer rows.Close()

	modelRooms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Room, error) {
		return scanRoom(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan available rooms: %w", err)
	}

	return mapping.ToDomainRoomSlice(modelRooms), nil
}

// UpdateRoom updates an existing room.
func (r *PgxRoomRepository) UpdateRoom(ctx context.Context, room domain.Room) error {
	modelRoom := mapping.ToModelRoom(room)

	query := `
		UPDATE rooms SET
			room_number = $2,
			room_type = $3,
			price_per_night = $4,
			amenities = $5,
			status = $6,
			max_occupancy = $7,
			description = $8,
			last_updated_at = $9,
			last_updated_by = $10
		WHERE room_id = $1;
	`

	tag, err := r.Pool.Exec(ctx, query,
		modelRoom.RoomID,
		modelRoom.RoomNumber,
		modelRoom.RoomType,
		modelRoom.PricePerNight,
		modelRoom.Amenities,
		modelRoom.Status,
		modelRoom.MaxOccupancy,
		modelRoom.Description,
		modelRoom.LastUpdatedAt,
		modelRoom.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: room number %s already exists", apperrors.ErrDuplicate, modelRoom.RoomNumber)
		}
		return fmt.Errorf("failed to update room %s: %w", modelRoom.RoomID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteRoom removes a room.
func (r *PgxRoomRepository) DeleteRoom(ctx context.Context, roomID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM rooms WHERE room_id = $1;`, roomID)
	if err != nil {
		return fmt.Errorf("failed to delete room %s: %w", roomID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
