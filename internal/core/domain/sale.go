package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale represents revenue recognized against a booking. One sale row is
// written when a booking is checked out, in the same transaction as the
// status change.
type Sale struct {
	SaleID        string          `json:"saleID"`
	BookingID     string          `json:"bookingID"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Date          time.Time       `json:"date"` // calendar date at UTC midnight
	AuditFields
}
