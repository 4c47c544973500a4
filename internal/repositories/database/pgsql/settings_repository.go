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

type PgxSettingsRepository struct {
	BaseRepository
}

// newPgxSettingsRepository creates a new repository for the settings row.
func newPgxSettingsRepository(pool *pgxpool.Pool) portsrepo.SettingsRepositoryFacade {
	return &PgxSettingsRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.SettingsRepositoryFacade = (*PgxSettingsRepository)(nil)

// GetSettings retrieves the hotel settings. The table is seeded with exactly
// one row by the migrations.
func (r *PgxSettingsRepository) GetSettings(ctx context.Context) (*domain.Settings, error) {
	query := `
		SELECT hotel_name, currency_code, check_in_time, check_out_time, tax_rate,
			created_at, created_by, last_updated_at, last_updated_by
		FROM settings
		LIMIT 1;
	`

	var m models.Settings
	err := r.Pool.QueryRow(ctx, query).Scan(
		&m.HotelName,
		&m.CurrencyCode,
		&m.CheckInTime,
		&m.CheckOutTime,
		&m.TaxRate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	domainSettings := mapping.ToDomainSettings(m)
	return &domainSettings, nil
}

// UpdateSettings replaces the hotel settings.
func (r *PgxSettingsRepository) UpdateSettings(ctx context.Context, settings domain.Settings) error {
	modelSettings := mapping.ToModelSettings(settings)

	query := `
		UPDATE settings SET
			hotel_name = $1,
			currency_code = $2,
			check_in_time = $3,
			check_out_time = $4,
			tax_rate = $5,
			last_updated_at = $6,
			last_updated_by = $7;
	`

	tag, err := r.Pool.Exec(ctx, query,
		modelSettings.HotelName,
		modelSettings.CurrencyCode,
		modelSettings.CheckInTime,
		modelSettings.CheckOutTime,
		modelSettings.TaxRate,
		modelSettings.LastUpdatedAt,
		modelSettings.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
