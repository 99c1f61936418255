package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KilauLaundry/laundry_pos_app/internal/core/domain"
	portssvc "github.com/KilauLaundry/laundry_pos_app/internal/core/ports/services"
	"github.com/KilauLaundry/laundry_pos_app/internal/middleware"
)

type googleOAuthHandler struct {
	oauthService    portssvc.GoogleOAuthSvcFacade
	employeeService portssvc.EmployeeSvcFacade
	authService     portssvc.AuthSvcFacade
}

func newGoogleOAuthHandler(
	os portssvc.GoogleOAuthSvcFacade,
	es portssvc.EmployeeSvcFacade,
	as portssvc.AuthSvcFacade,
) *googleOAuthHandler {
	return &googleOAuthHandler{
		oauthService:    os,
		employeeService: es,
		authService:     as,
	}
}

// googleLoginRequest carries the token the owner dashboard obtained from
// Google's sign-in widget. Either an ID token or an authorization code is
// accepted; the code path is exchanged server-side first.
type googleLoginRequest struct {
	IDToken string `json:"idToken"`
	Code    string `json:"code"`
}

// loginWithGoogle godoc
// @Summary Sign in with Google
// @Description Validates a Google ID token (or exchanges an authorization code), finds or creates the linked employee, and issues a POS session.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body googleLoginRequest true "Google credential"
// @Success 200 {object} dto.LoginResponse "Token pair"
// @Failure 400 {object} ErrorResponse "Missing credential"
// @Failure 401 {object} ErrorResponse "Invalid Google credential"
// @Router /auth/google [post]
func (h *googleOAuthHandler) loginWithGoogle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req googleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	idToken := req.IDToken
	if idToken == "" {
		if req.Code == "" {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Either idToken or code is required"})
			return
		}
		token, err := h.oauthService.ExchangeCodeForToken(c.Request.Context(), req.Code)
		if err != nil {
			logger.Warn("Google code exchange failed", "error", err)
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid authorization code"})
			return
		}
		raw, ok := token.Extra("id_token").(string)
		if !ok || raw == "" {
			logger.Warn("Google token response missing id_token")
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid authorization code"})
			return
		}
		idToken = raw
	}

	payload, err := h.oauthService.ValidateGoogleIDToken(c.Request.Context(), idToken)
	if err != nil {
		logger.Warn("Google ID token validation failed", "error", err)
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid Google credential"})
		return
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	if email == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Google credential has no email"})
		return
	}

	employee, err := h.employeeService.CreateOAuthEmployee(c.Request.Context(), name, email, domain.ProviderGoogle, payload.Subject)
	if err != nil {
		logger.Error("Failed to resolve OAuth employee", "email", email, "error", err)
		c.JSON(statusFromError(err), ErrorResponse{Error: err.Error()})
		return
	}

	// Google sign-in is for the owner dashboard; shift does not apply.
	resp, err := h.authService.IssueTokens(c.Request.Context(), employee, "")
	if err != nil {
		logger.Error("Failed to issue tokens for OAuth login", "employee_id", employee.EmployeeID, "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
