package services

import (
	"context"

	"github.com/hoteldesk/hms_backend/internal/core/domain"
	portsrepo "github.com/hoteldesk/hms_backend/internal/core/ports/repositories"
	portssvc "github.com/hoteldesk/hms_backend/internal/core/ports/services"
)

// saleService implements the SaleSvcFacade interface.
type saleService struct {
	BaseService
	saleRepo portsrepo.SaleRepositoryFacade
}

// NewSaleService creates a new sale service.
func NewSaleService(saleRepo portsrepo.SaleRepositoryFacade) portssvc.SaleSvcFacade {
	return &saleService{saleRepo: saleRepo}
}

var _ portssvc.SaleSvcFacade = (*saleService)(nil)

func (s *saleService) ListSales(ctx context.Context) ([]domain.Sale, error) {
	sales, err := s.saleRepo.ListSales(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list sales")
		return nil, err
	}
	if sales == nil {
		return []domain.Sale{}, nil
	}
	return sales, nil
}
