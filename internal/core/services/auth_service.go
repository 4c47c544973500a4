package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hoteldesk/hms_backend/internal/apperrors"
	"github.com/hoteldesk/hms_backend/internal/core/domain"
	portsrepo "github.com/hoteldesk/hms_backend/internal/core/ports/repositories"
	portssvc "github.com/hoteldesk/hms_backend/internal/core/ports/services"
	"github.com/hoteldesk/hms_backend/internal/dto"
	"github.com/hoteldesk/hms_backend/internal/utils"
)

// authService implements the AuthSvcFacade interface.
type authService struct {
	BaseService
	adminRepo portsrepo.AdminRepositoryFacade
}

// NewAuthService creates a new auth service.
func NewAuthService(adminRepo portsrepo.AdminRepositoryFacade) portssvc.AuthSvcFacade {
	return &authService{adminRepo: adminRepo}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Authenticate verifies the credentials. A missing account and a wrong
// password both yield ErrUnauthorized so the response does not reveal which
// usernames exist.
func (s *authService) Authenticate(ctx context.Context, username, password string) (*domain.Admin, error) {
	admin, err := s.adminRepo.FindAdminByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("invalid credentials: %w", apperrors.ErrUnauthorized)
		}
		s.LogError(ctx, err, "Failed to look up operator account", slog.String("username", username))
		return nil, err
	}

	if !utils.CheckPasswordHash(password, admin.PasswordHash) {
		s.LogWarn(ctx, "Failed login attempt", slog.String("username", username))
		return nil, fmt.Errorf("invalid credentials: %w", apperrors.ErrUnauthorized)
	}

	return admin, nil
}

func (s *authService) CreateAdmin(ctx context.Context, req dto.CreateAdminRequest) (*domain.Admin, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, err
	}

	now := time.Now().UTC()
	admin := domain.Admin{
		AdminID:      uuid.NewString(),
		Username:     req.Username,
		PasswordHash: hash,
		Role:         "admin",
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.adminRepo.SaveAdmin(ctx, admin); err != nil {
		s.LogError(ctx, err, "Failed to save operator account", slog.String("username", req.Username))
		return nil, err
	}

	s.LogInfo(ctx, "Operator account created", slog.String("admin_id", admin.AdminID))
	return &admin, nil
}
