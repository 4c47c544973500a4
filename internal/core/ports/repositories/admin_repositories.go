package repositories

import (
	"context"

	"github.com/hoteldesk/hms_backend/internal/core/domain"
)

// AdminReader defines read operations for operator accounts.
type AdminReader interface {
	// FindAdminByUsername retrieves an operator account by username.
	FindAdminByUsername(ctx context.Context, username string) (*domain.Admin, error)
}

// AdminWriter defines write operations for operator accounts.
type AdminWriter interface {
	// SaveAdmin persists a new operator account.
	SaveAdmin(ctx context.Context, admin domain.Admin) error
}

// AdminRepositoryFacade combines all admin-related repository interfaces.
type AdminRepositoryFacade interface {
	AdminReader
	AdminWriter
}
