package domain

import "github.com/shopspring/decimal"

// Settings holds the hotel-wide configuration. Exactly one row exists.
type Settings struct {
	HotelName    string          `json:"hotelName"`
	CurrencyCode string          `json:"currencyCode"`
	CheckInTime  string          `json:"checkInTime"`  // "15:04"
	CheckOutTime string          `json:"checkOutTime"` // "15:04"
	TaxRate      decimal.Decimal `json:"taxRate"`
	AuditFields
}
