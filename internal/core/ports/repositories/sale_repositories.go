package repositories

import (
	"context"

	"github.com/hoteldesk/hms_backend/internal/core/domain"
)

// SaleReader defines read operations for sale data.
type SaleReader interface {
	// ListSales retrieves all sales, newest first.
	ListSales(ctx context.Context) ([]domain.Sale, error)
}

// SaleRepositoryFacade combines all sale-related repository interfaces.
// Sales are written only by the booking checkout transition, inside the same
// transaction as the status change, so there is no standalone writer.
type SaleRepositoryFacade interface {
	SaleReader
}
