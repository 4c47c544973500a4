package models

import "github.com/shopspring/decimal"

// Settings represents the single row in the settings table.
type Settings struct {
	HotelName    string          `json:"hotelName" db:"hotel_name"`
	CurrencyCode string          `json:"currencyCode" db:"currency_code"`
	CheckInTime  string          `json:"checkInTime" db:"check_in_time"`
	CheckOutTime string          `json:"checkOutTime" db:"check_out_time"`
	TaxRate      decimal.Decimal `json:"taxRate" db:"tax_rate"`
	AuditFields
}
