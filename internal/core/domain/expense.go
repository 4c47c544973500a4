package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents one operational expense entry.
type Expense struct {
	ExpenseID   string          `json:"expenseID"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"` // calendar date at UTC midnight
	AuditFields
}
