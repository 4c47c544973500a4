package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale represents a row in the sales table.
type Sale struct {
	SaleID        string          `json:"saleID" db:"sale_id"`
	BookingID     string          `json:"bookingID" db:"booking_id"`
	Amount        decimal.Decimal `json:"amount" db:"amount"`
	PaymentMethod string          `json:"paymentMethod" db:"payment_method"`
	Date          time.Time       `json:"date" db:"date"`
	AuditFields
}
