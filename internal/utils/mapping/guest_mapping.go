package mapping

import (
	"github.com/hoteldesk/hms_backend/internal/core/domain"
	"github.com/hoteldesk/hms_backend/internal/models"
)

// ToModelGuest converts a domain Guest to a model Guest
func ToModelGuest(d domain.Guest) models.Guest {
	return models.Guest{
		GuestID:     d.GuestID,
		Name:        d.Name,
		Email:       d.Email,
		Phone:       d.Phone,
		Address:     d.Address,
		IDProof:     d.IDProof,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainGuest converts a model Guest to a domain Guest
func ToDomainGuest(m models.Guest) domain.Guest {
	return domain.Guest{
		GuestID:     m.GuestID,
		Name:        m.Name,
		Email:       m.Email,
		Phone:       m.Phone,
		Address:     m.Address,
		IDProof:     m.IDProof,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainGuestSlice converts a slice of model Guests to a slice of domain Guests
func ToDomainGuestSlice(ms []models.Guest) []domain.Guest {
	ds := make([]domain.Guest, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainGuest(m)
	}
	return ds
}
