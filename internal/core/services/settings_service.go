package services

import (
	"context"
	"time"

	"github.com/hoteldesk/hms_backend/internal/core/domain"
	portsrepo "github.com/hoteldesk/hms_backend/internal/core/ports/repositories"
	portssvc "github.com/hoteldesk/hms_backend/internal/core/ports/services"
	"github.com/hoteldesk/hms_backend/internal/dto"
)

// settingsService implements the SettingsSvcFacade interface.
type settingsService struct {
	BaseService
	settingsRepo portsrepo.SettingsRepositoryFacade
}

// NewSettingsService creates a new settings service.
func NewSettingsService(settingsRepo portsrepo.SettingsRepositoryFacade) portssvc.SettingsSvcFacade {
	return &settingsService{settingsRepo: settingsRepo}
}

var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

func (s *settingsService) GetSettings(ctx context.Context) (*domain.Settings, error) {
	return s.settingsRepo.GetSettings(ctx)
}

func (s *settingsService) UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest, updaterID string) (*domain.Settings, error) {
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	if req.HotelName != nil {
		settings.HotelName = *req.HotelName
	}
	if req.CurrencyCode != nil {
		settings.CurrencyCode = *req.CurrencyCode
	}
	if req.CheckInTime != nil {
		settings.CheckInTime = *req.CheckInTime
	}
	if req.CheckOutTime != nil {
		settings.CheckOutTime = *req.CheckOutTime
	}
	if req.TaxRate != nil {
		settings.TaxRate = *req.TaxRate
	}
	settings.LastUpdatedAt = time.Now().UTC()
	settings.LastUpdatedBy = updaterID

	if err := s.settingsRepo.UpdateSettings(ctx, *settings); err != nil {
		s.LogError(ctx, err, "Failed to update settings")
		return nil, err
	}

	s.LogInfo(ctx, "Settings updated")
	return settings, nil
}
