package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hoteldesk/hms_backend/internal/apperrors"
	"github.com/hoteldesk/hms_backend/internal/core/domain"
	portsrepo "github.com/hoteldesk/hms_backend/internal/core/ports/repositories"
	"github.com/hoteldesk/hms_backend/internal/models"
	"github.com/hoteldesk/hms_backend/internal/utils/mapping"
)

const adminColumns = `admin_id, username, password_hash, role, created_at, created_by, last_updated_at, last_updated_by`

type PgxAdminRepository struct {
	BaseRepository
}

// newPgxAdminRepository creates a new repository for operator accounts.
func newPgxAdminRepository(pool *pgxpool.Pool) portsrepo.AdminRepositoryFacade {
	return &PgxAdminRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.AdminRepositoryFacade = (*PgxAdminRepository)(nil)

// SaveAdmin inserts a new operator account.
func (r *PgxAdminRepository) SaveAdmin(ctx context.Context, admin domain.Admin) error {
	modelAdmin := mapping.ToModelAdmin(admin)

	query := `
		INSERT INTO admins (` + adminColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`

	_, err := r.Pool.Exec(ctx, query,
		modelAdmin.AdminID,
		modelAdmin.Username,
		modelAdmin.PasswordHash,
		modelAdmin.Role,
		modelAdmin.CreatedAt,
		modelAdmin.CreatedBy,
		modelAdmin.LastUpdatedAt,
		modelAdmin.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: username %s already taken", apperrors.ErrDuplicate, modelAdmin.Username)
		}
		return fmt.Errorf("failed to save admin %s: %w", modelAdmin.AdminID, err)
	}
	return nil
}

// FindAdminByUsername retrieves an operator account by username.
func (r *PgxAdminRepository) FindAdminByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins WHERE username = $1;`

	var m models.Admin
	err := r.Pool.QueryRow(ctx, query, username).Scan(
		&m.AdminID,
		&m.Username,
		&m.PasswordHash,
		&m.Role,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find admin by username: %w", err)
	}

	domainAdmin := mapping.ToDomainAdmin(m)
	return &domainAdmin, nil
}
