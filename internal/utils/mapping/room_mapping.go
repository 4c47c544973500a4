package mapping

import (
	"github.com/hoteldesk/hms_backend/internal/core/domain"
	"github.com/hoteldesk/hms_backend/internal/models"
)

// ToModelRoom converts a domain Room to a model Room
func ToModelRoom(d domain.Room) models.Room {
	return models.Room{
		RoomID:        d.RoomID,
		RoomNumber:    d.RoomNumber,
		RoomType:      string(d.RoomType),
		PricePerNight: d.PricePerNight,
		Amenities:     d.Amenities,
		Status:        string(d.Status),
		MaxOccupancy:  d.MaxOccupancy,
		Description:   d.Description,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRoom converts a model Room to a domain Room
func ToDomainRoom(m models.Room) domain.Room {
	return domain.Room{
		RoomID:        m.RoomID,
		RoomNumber:    m.RoomNumber,
		RoomType:      domain.RoomType(m.RoomType),
		PricePerNight: m.PricePerNight,
		Amenities:     m.Amenities,
		Status:        domain.RoomStatus(m.Status),
		MaxOccupancy:  m.MaxOccupancy,
		Description:   m.Description,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainRoomSlice converts a slice of model Rooms to a slice of domain Rooms
func ToDomainRoomSlice(ms []models.Room) []domain.Room {
	ds := make([]domain.Room, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRoom(m)
	}
	return ds
}
