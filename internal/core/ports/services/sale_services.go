package services

import (
	"context"

	"github.com/hoteldesk/hms_backend/internal/core/domain"
)

// SaleSvcFacade defines the operations offered by the sale service. Sales are
// created by the booking checkout transition, so only reads are exposed.
type SaleSvcFacade interface {
	ListSales(ctx context.Context) ([]domain.Sale, error)
}
