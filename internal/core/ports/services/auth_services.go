package services

import (
	"context"

	"github.com/hoteldesk/hms_backend/internal/core/domain"
	"github.com/hoteldesk/hms_backend/internal/dto"
)

// AuthSvcFacade defines credential verification and operator registration.
type AuthSvcFacade interface {
	// Authenticate verifies the credentials and returns the operator account.
	// Invalid credentials yield ErrUnauthorized.
	Authenticate(ctx context.Context, username, password string) (*domain.Admin, error)

	// CreateAdmin registers a new operator account with a bcrypt-hashed
	// password. A taken username yields ErrDuplicate.
	CreateAdmin(ctx context.Context, req dto.CreateAdminRequest) (*domain.Admin, error)
}
