package dto

import (
	"github.com/hoteldesk/hms_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpdateSettingsRequest defines the hotel-wide settings fields that may be
// changed. Pointers distinguish omitted fields from zero values.
type UpdateSettingsRequest struct {
	HotelName    *string          `json:"hotelName"`
	CurrencyCode *string          `json:"currencyCode" binding:"omitempty,len=3"`
	CheckInTime  *string          `json:"checkInTime" binding:"omitempty,datetime=15:04"`
	CheckOutTime *string          `json:"checkOutTime" binding:"omitempty,datetime=15:04"`
	TaxRate      *decimal.Decimal `json:"taxRate"`
}

// SettingsResponse defines the data returned for the hotel settings.
type SettingsResponse struct {
	HotelName    string          `json:"hotelName"`
	CurrencyCode string          `json:"currencyCode"`
	CheckInTime  string          `json:"checkInTime"`
	CheckOutTime string          `json:"checkOutTime"`
	TaxRate      decimal.Decimal `json:"taxRate"`
}

// ToSettingsResponse converts domain.Settings to SettingsResponse DTO.
func ToSettingsResponse(s *domain.Settings) SettingsResponse {
	return SettingsResponse{
		HotelName:    s.HotelName,
		CurrencyCode: s.CurrencyCode,
		CheckInTime:  s.CheckInTime,
		CheckOutTime: s.CheckOutTime,
		TaxRate:      s.TaxRate,
	}
}
