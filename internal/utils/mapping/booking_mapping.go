package mapping

import (
	"github.com/hoteldesk/hms_backend/internal/core/domain"
	"github.com/hoteldesk/hms_backend/internal/models"
)

// ToModelBooking converts a domain Booking to a model Booking
func ToModelBooking(d domain.Booking) models.Booking {
	return models.Booking{
		BookingID:       d.BookingID,
		RoomID:          d.RoomID,
		GuestID:         d.GuestID,
		CheckIn:         d.CheckIn,
		CheckOut:        d.CheckOut,
		GuestsCount:     d.GuestsCount,
		SpecialRequests: d.SpecialRequests,
		TotalAmount:     d.TotalAmount,
		AdvancePayment:  d.AdvancePayment,
		Status:          string(d.Status),
		Notes:           d.Notes,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBooking converts a model Booking to a domain Booking
func ToDomainBooking(m models.Booking) domain.Booking {
	return domain.Booking{
		BookingID:       m.BookingID,
		RoomID:          m.RoomID,
		GuestID:         m.GuestID,
		CheckIn:         m.CheckIn,
		CheckOut:        m.CheckOut,
		GuestsCount:     m.GuestsCount,
		SpecialRequests: m.SpecialRequests,
		TotalAmount:     m.TotalAmount,
		AdvancePayment:  m.AdvancePayment,
		Status:          domain.BookingStatus(m.Status),
		Notes:           m.Notes,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainBookingSlice converts a slice of model Bookings to a slice of domain Bookings
func ToDomainBookingSlice(ms []models.Booking) []domain.Booking {
	ds := make([]domain.Booking, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBooking(m)
	}
	return ds
}
