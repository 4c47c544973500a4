package dto

import (
	"time"

	"github.com/hoteldesk/hms_backend/internal/core/domain"
)

// CreateGuestRequest defines the data needed to register a guest.
type CreateGuestRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required"`
	Address string `json:"address" binding:"required"`
	IDProof string `json:"idProof" binding:"required"`
}

// GuestResponse defines the data returned for a guest.
type GuestResponse struct {
	GuestID   string    `json:"guestID"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	IDProof   string    `json:"idProof"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToGuestResponse converts a domain.Guest to GuestResponse DTO.
func ToGuestResponse(g *domain.Guest) GuestResponse {
	return GuestResponse{
		GuestID:   g.GuestID,
		Name:      g.Name,
		Email:     g.Email,
		Phone:     g.Phone,
		Address:   g.Address,
		IDProof:   g.IDProof,
		CreatedAt: g.CreatedAt,
	}
}

// ToListGuestResponse converts a slice of domain.Guest to GuestResponse DTOs.
func ToListGuestResponse(guests []domain.Guest) []GuestResponse {
	res := make([]GuestResponse, len(guests))
	for i, g := range guests {
		res[i] = ToGuestResponse(&g)
	}
	return res
}

// ListGuestsResponse wraps the list of guests.
type ListGuestsResponse struct {
	Guests []GuestResponse `json:"guests"`
}
