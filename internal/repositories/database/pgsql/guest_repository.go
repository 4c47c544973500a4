package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hoteldesk/hms_backend/internal/apperrors"
	"github.com/hoteldesk/hms_backend/internal/core/domain"
	portsrepo "github.com/hoteldesk/hms_backend/internal/core/ports/repositories"
	"github.com/hoteldesk/hms_backend/internal/models"
	"github.com/hoteldesk/hms_backend/internal/utils/mapping"
)

const guestColumns = `guest_id, name, email, phone, address, id_proof, created_at, created_by, last_updated_at, last_updated_by`

type PgxGuestRepository struct {
	BaseRepository
}

// newPgxGuestRepository creates a new repository for guest data.
func newPgxGuestRepository(pool *pgxpool.Pool) portsrepo.GuestRepositoryFacade {
	return &PgxGuestRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.GuestRepositoryFacade = (*PgxGuestRepository)(nil)

func scanGuest(row pgx.Row) (models.Guest, error) {
	var m models.Guest
	err := row.Scan(
		&m.GuestID,
		&m.Name,
		&m.Email,
		&m.Phone,
		&m.Address,
		&m.IDProof,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveGuest inserts a new guest.
func (r *PgxGuestRepository) SaveGuest(ctx context.Context, guest domain.Guest) error {
	modelGuest := mapping.ToModelGuest(guest)

	query := `
		INSERT INTO guests (` + guestColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`

	_, err := r.Pool.Exec(ctx, query,
		modelGuest.GuestID,
		modelGuest.Name,
		modelGuest.Email,
		modelGuest.Phone,
		modelGuest.Address,
		modelGuest.IDProof,
		modelGuest.CreatedAt,
		modelGuest.CreatedBy,
		modelGuest.LastUpdatedAt,
		modelGuest.LastUpdatedBy,
	)

	if err != nil {
		return fmt.Errorf("failed to save guest %s: %w", modelGuest.GuestID, err)
	}
	return nil
}

// FindGuestByID retrieves a guest by their unique identifier.
func (r *PgxGuestRepository) FindGuestByID(ctx context.Context, guestID string) (*domain.Guest, error) {
	query := `SELECT ` + guestColumns + ` FROM guests WHERE guest_id = $1;`

	modelGuest, err := scanGuest(r.Pool.QueryRow(ctx, query, guestID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find guest by id %s: %w", guestID, err)
	}

	domainGuest := mapping.ToDomainGuest(modelGuest)
	return &domainGuest, nil
}

// ListGuests retrieves all guests, most recently registered first.
func (r *PgxGuestRepository) ListGuests(ctx context.Context) ([]domain.Guest, error) {
	query := `SELECT ` + guestColumns + ` FROM guests ORDER BY created_at DESC;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query guests: %w", err)
	}
	defer rows.Close()

	modelGuests, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Guest, error) {
		return scanGuest(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan guests: %w", err)
	}

	return mapping.ToDomainGuestSlice(modelGuests), nil
}
