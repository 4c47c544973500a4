package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents a row in the expenses table.
type Expense struct {
	ExpenseID   string          `json:"expenseID" db:"expense_id"`
	Category    string          `json:"category" db:"category"`
	Amount      decimal.Decimal `json:"amount" db:"amount"`
	Description string          `json:"description" db:"description"`
	Date        time.Time       `json:"date" db:"date"`
	AuditFields
}
