package repositories

import (
	"context"

	"github.com/hoteldesk/hms_backend/internal/core/domain"
)

// SettingsRepositoryFacade defines operations on the single settings row.
type SettingsRepositoryFacade interface {
	// GetSettings retrieves the hotel settings.
	GetSettings(ctx context.Context) (*domain.Settings, error)

	// UpdateSettings replaces the hotel settings.
	UpdateSettings(ctx context.Context, settings domain.Settings) error
}
