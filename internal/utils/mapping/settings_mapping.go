package mapping

import (
	"github.com/hoteldesk/hms_backend/internal/core/domain"
	"github.com/hoteldesk/hms_backend/internal/models"
)

// ToModelSettings converts domain Settings to model Settings
func ToModelSettings(d domain.Settings) models.Settings {
	return models.Settings{
		HotelName:    d.HotelName,
		CurrencyCode: d.CurrencyCode,
		CheckInTime:  d.CheckInTime,
		CheckOutTime: d.CheckOutTime,
		TaxRate:      d.TaxRate,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSettings converts model Settings to domain Settings
func ToDomainSettings(m models.Settings) domain.Settings {
	return domain.Settings{
		HotelName:    m.HotelName,
		CurrencyCode: m.CurrencyCode,
		CheckInTime:  m.CheckInTime,
		CheckOutTime: m.CheckOutTime,
		TaxRate:      m.TaxRate,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
