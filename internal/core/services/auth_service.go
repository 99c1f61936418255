package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/KilauLaundry/laundry_pos_app/internal/apperrors"
	"github.com/KilauLaundry/laundry_pos_app/internal/core/domain"
	portssvc "github.com/KilauLaundry/laundry_pos_app/internal/core/ports/services"
	"github.com/KilauLaundry/laundry_pos_app/internal/dto"
	"github.com/KilauLaundry/laundry_pos_app/internal/platform/config"
	"github.com/KilauLaundry/laundry_pos_app/internal/utils"
)

// authService issues and rotates POS session tokens. Access tokens are short
// lived JWTs carrying role, branch and shift; refresh tokens are longer lived
// JWTs whose SHA256 hash is stored on the employee row so rotation invalidates
// older tokens.
type authService struct {
	BaseService
	cfg         *config.Config
	employeeSvc portssvc.EmployeeSvcFacade
}

// NewAuthService creates a new auth service.
func NewAuthService(cfg *config.Config, employeeSvc portssvc.EmployeeSvcFacade) portssvc.AuthSvcFacade {
	return &authService{cfg: cfg, employeeSvc: employeeSvc}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	employee, err := s.employeeSvc.GetEmployeeByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
		}
		return nil, err
	}
	if employee.DeletedAt != nil {
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}
	if employee.AuthProvider != domain.ProviderLocal || !utils.CheckPasswordHash(req.Password, employee.PasswordHash) {
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}

	shift := domain.Shift(req.Shift)
	if employee.Role == domain.RoleCashier && !shift.IsValid() {
		return nil, fmt.Errorf("%w: cashier login requires a shift", apperrors.ErrValidation)
	}

	s.LogInfo(ctx, "employee logged in",
		slog.String("employee_id", employee.EmployeeID),
		slog.String("role", string(employee.Role)))
	return s.IssueTokens(ctx, employee, shift)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error) {
	claims, err := utils.ParseAndValidateJWT(refreshToken, s.cfg.RefreshTokenSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid refresh token", apperrors.ErrUnauthorized)
	}

	employee, err := s.employeeSvc.GetEmployeeByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid refresh token", apperrors.ErrUnauthorized)
		}
		return nil, err
	}
	if employee.DeletedAt != nil {
		return nil, fmt.Errorf("%w: invalid refresh token", apperrors.ErrUnauthorized)
	}

	// Rotation check: only the most recently issued refresh token is accepted.
	if !utils.CompareRefreshTokenHash(refreshToken, employee.RefreshTokenHash) {
		return nil, fmt.Errorf("%w: refresh token has been superseded", apperrors.ErrUnauthorized)
	}

	return s.IssueTokens(ctx, employee, domain.Shift(claims.Shift))
}

func (s *authService) IssueTokens(ctx context.Context, employee *domain.Employee, shift domain.Shift) (*dto.LoginResponse, error) {
	branchID := ""
	if employee.BranchID != nil {
		branchID = *employee.BranchID
	}

	accessToken, err := utils.GenerateJWT(employee.EmployeeID, string(employee.Role), branchID, string(shift),
		s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := utils.GenerateJWT(employee.EmployeeID, string(employee.Role), branchID, string(shift),
		s.cfg.RefreshTokenSecret, s.cfg.RefreshTokenExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	if err := s.employeeSvc.StoreRefreshTokenHash(ctx, employee.EmployeeID, utils.HashRefreshToken(refreshToken)); err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token:        accessToken,
		RefreshToken: refreshToken,
		Employee:     dto.ToEmployeeResponse(employee),
	}, nil
}
