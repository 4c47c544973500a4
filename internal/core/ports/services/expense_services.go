package services

import (
	"context"

	"github.com/hoteldesk/hms_backend/internal/core/domain"
	"github.com/hoteldesk/hms_backend/internal/dto"
)

// ExpenseSvcFacade defines the operations offered by the expense service.
type ExpenseSvcFacade interface {
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, creatorID string) (*domain.Expense, error)
	ListExpenses(ctx context.Context) ([]domain.Expense, error)
}
