package services

import (
	"context"

	"github.com/KilauLaundry/laundry_pos_app/internal/core/domain"
	"github.com/KilauLaundry/laundry_pos_app/internal/dto"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// AuthSvcFacade issues and refreshes POS session tokens.
type AuthSvcFacade interface {
	// Login verifies credentials and issues an access/refresh token pair. The
	// shift in the request is stamped into the cashier session claims.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)

	// Refresh rotates a refresh token and issues a fresh access token.
	Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error)

	// IssueTokens generates a token pair for an already-authenticated employee.
	IssueTokens(ctx context.Context, employee *domain.Employee, shift domain.Shift) (*dto.LoginResponse, error)
}

// GoogleOAuthSvcFacade wraps the Google sign-in flow used by the owner dashboard.
type GoogleOAuthSvcFacade interface {
	// ExchangeCodeForToken exchanges the frontend's authorization code for Google tokens.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)

	// ValidateGoogleIDToken verifies the ID token's signature and audience.
	ValidateGoogleIDToken(ctx context.Context, idToken string) (*idtoken.Payload, error)
}
