package dto

import (
	"time"

	"github.com/hoteldesk/hms_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SaleResponse defines the data returned for a sale.
type SaleResponse struct {
	SaleID        string               `json:"saleID"`
	BookingID     string               `json:"bookingID"`
	Amount        decimal.Decimal      `json:"amount"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod"`
	Date          string               `json:"date"`
	CreatedAt     time.Time            `json:"createdAt"`
}

// ToSaleResponse converts a domain.Sale to SaleResponse DTO.
func ToSaleResponse(s *domain.Sale) SaleResponse {
	return SaleResponse{
		SaleID:        s.SaleID,
		BookingID:     s.BookingID,
		Amount:        s.Amount,
		PaymentMethod: s.PaymentMethod,
		Date:          FormatDate(s.Date),
		CreatedAt:     s.CreatedAt,
	}
}

// ListSalesResponse wraps the list of sales.
type ListSalesResponse struct {
	Sales []SaleResponse `json:"sales"`
}
